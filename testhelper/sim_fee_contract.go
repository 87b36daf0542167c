package testhelper

import (
	"context"
	"sync"
	"time"

	"github.com/haven1-network/pricer/feecontract"
	"github.com/haven1-network/pricer/types"
)

var _ feecontract.IFeeContract = (*SimFeeContract)(nil)

// SimFeeContract is an in-memory fee contract. UpdateFee moves the oracle
// figure into the enforced fee once the reset window elapsed, the way the
// hosted contract does. A zero nextResetTime keeps the enforced fee pinned
// so tests stay deterministic.
type SimFeeContract struct {
	lk sync.Mutex

	fee           types.Int
	oracleFee     types.Int
	nextResetTime uint64
	epochLength   uint64

	updateCalls int
	grace       map[types.Address]bool
	errs        map[string]error
}

func NewSimFeeContract(fee types.Int) *SimFeeContract {
	return &SimFeeContract{
		fee:         fee.Copy(),
		oracleFee:   fee.Copy(),
		epochLength: 86400,
		grace:       make(map[types.Address]bool),
		errs:        make(map[string]error),
	}
}

func (s *SimFeeContract) GetFee(ctx context.Context) (types.Int, error) {
	s.lk.Lock()
	defer s.lk.Unlock()

	if err := s.errs["GetFee"]; err != nil {
		return types.Int{}, err
	}

	return s.fee.Copy(), nil
}

func (s *SimFeeContract) UpdateFee(ctx context.Context) error {
	s.lk.Lock()
	defer s.lk.Unlock()

	if err := s.errs["UpdateFee"]; err != nil {
		return err
	}

	s.updateCalls++
	now := uint64(time.Now().Unix())
	if s.nextResetTime != 0 && now >= s.nextResetTime {
		s.fee = s.oracleFee.Copy()
		s.nextResetTime = now + s.epochLength
	}

	return nil
}

func (s *SimFeeContract) QueryOracle(ctx context.Context) (types.Int, error) {
	s.lk.Lock()
	defer s.lk.Unlock()

	if err := s.errs["QueryOracle"]; err != nil {
		return types.Int{}, err
	}

	return s.oracleFee.Copy(), nil
}

func (s *SimFeeContract) NextResetTime(ctx context.Context) (uint64, error) {
	s.lk.Lock()
	defer s.lk.Unlock()

	if err := s.errs["NextResetTime"]; err != nil {
		return 0, err
	}

	return s.nextResetTime, nil
}

func (s *SimFeeContract) SetGraceContract(ctx context.Context, contract types.Address, enable bool) error {
	s.lk.Lock()
	defer s.lk.Unlock()

	if err := s.errs["SetGraceContract"]; err != nil {
		return err
	}

	s.grace[contract] = enable
	return nil
}

func (s *SimFeeContract) SetFee(fee types.Int) {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.fee = fee.Copy()
}

func (s *SimFeeContract) SetOracleFee(fee types.Int) {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.oracleFee = fee.Copy()
}

func (s *SimFeeContract) SetNextResetTime(t uint64) {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.nextResetTime = t
}

func (s *SimFeeContract) UpdateCalls() int {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.updateCalls
}

func (s *SimFeeContract) InGrace(addr types.Address) bool {
	s.lk.Lock()
	defer s.lk.Unlock()
	return s.grace[addr]
}

// Fail pins the named method to err until cleared with a nil err.
func (s *SimFeeContract) Fail(method string, err error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	if err == nil {
		delete(s.errs, method)
		return
	}
	s.errs[method] = err
}
