package fee

import (
	"context"
	"math/big"
	"sync"
	"time"

	"go.opencensus.io/stats"
	"go.opencensus.io/tag"
	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/feecontract"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/metrics"
	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

// residualValue is the transient value-after-fee slot. It is set while a
// payable protected call runs and cleared on every exit path, including
// inner failures.
type residualValue struct {
	value types.Int
	l     sync.Mutex
}

func newResidualValue() *residualValue {
	return &residualValue{value: types.Zero()}
}

func (rv *residualValue) set(v types.Int) {
	rv.l.Lock()
	defer rv.l.Unlock()
	rv.value = v.Copy()
}

func (rv *residualValue) clear() {
	rv.l.Lock()
	defer rv.l.Unlock()
	rv.value = types.Zero()
}

func (rv *residualValue) get() types.Int {
	rv.l.Lock()
	defer rv.l.Unlock()
	return rv.value.Copy()
}

// FeeModule enforces the protocol fee around business logic. All of its
// state lives in this struct; applications compose one as a field, so no
// application state can collide with it. Calls serialize on the module
// and each one runs inside a single db transaction.
type FeeModule struct {
	repo repo.Repo
	log  *log.Logger

	l sync.Mutex

	contract *feecontract.Ref
	appAddr  types.Address

	residual *residualValue
}

func NewFeeModule(repo repo.Repo, logger *log.Logger) *FeeModule {
	return &FeeModule{
		repo:     repo,
		log:      logger,
		residual: newResidualValue(),
	}
}

// Initialize binds the fee contract exactly once and marks the application
// as grace-period managed on it. The binding is immutable afterwards.
func (fm *FeeModule) Initialize(ctx context.Context, contract *feecontract.Ref, appAddr types.Address) error {
	fm.l.Lock()
	defer fm.l.Unlock()

	if fm.contract != nil {
		return ErrAlreadyInitialized
	}
	if contract == nil || contract.IFeeContract == nil || contract.Address().IsZero() {
		return ErrInvalidFeeContract
	}

	if err := contract.SetGraceContract(ctx, appAddr, true); err != nil {
		return xerrors.Errorf("enable grace period: %w", err)
	}

	fm.contract = contract
	fm.appAddr = appAddr
	fm.log.Infof("fee module initialized, fee contract %s, application %s", contract.Address(), appAddr)

	return nil
}

// ProtectedCall runs inner under the fee protocol: refresh the fee, read
// it, verify the supplied value and the application balance both cover it,
// take the fee, run the inner logic, optionally refund what is left to the
// caller. The attached value enters the ledger before the checks, exactly
// once, and everything commits or rolls back together.
func (fm *FeeModule) ProtectedCall(ctx context.Context, call *Call, inner InnerFunc) error {
	fm.l.Lock()
	defer fm.l.Unlock()

	if fm.contract == nil {
		return ErrNotInitialized
	}

	value := call.Value
	if value.Nil() {
		value = types.Zero()
	}

	ctx, _ = tag.New(ctx, tag.Upsert(metrics.Method, call.Method))
	start := time.Now()

	var event *types.FeeEvent
	err := fm.repo.Transaction(func(txRepo repo.TxRepo) error {
		if value.GreaterThan(types.Zero()) {
			if err := txRepo.AccountRepo().Deposit(ctx, fm.appAddr, value); err != nil {
				return err
			}
		}

		var innerErr error
		event, innerErr = fm.runProtected(ctx, txRepo, call, value, inner)
		return innerErr
	})
	recordOutcome(ctx, start, err)
	if err == nil {
		recordEvent(ctx, event)
	}

	return err
}

// Multicall runs a batch of inner funcs as one atomic protected call. The
// attached value is deposited once, yet every sub-call claims the full
// figure while the balance reflects what earlier sub-calls spent. The
// value/balance dual check is what stands between this aggregation and
// fee underpayment.
func (fm *FeeModule) Multicall(ctx context.Context, call *Call, inners []InnerFunc) error {
	fm.l.Lock()
	defer fm.l.Unlock()

	if fm.contract == nil {
		return ErrNotInitialized
	}

	value := call.Value
	if value.Nil() {
		value = types.Zero()
	}

	ctx, _ = tag.New(ctx, tag.Upsert(metrics.Method, call.Method))
	start := time.Now()

	var events []*types.FeeEvent
	err := fm.repo.Transaction(func(txRepo repo.TxRepo) error {
		events = events[:0]
		if value.GreaterThan(types.Zero()) {
			if err := txRepo.AccountRepo().Deposit(ctx, fm.appAddr, value); err != nil {
				return err
			}
		}

		for i, inner := range inners {
			event, err := fm.runProtected(ctx, txRepo, call, value, inner)
			if err != nil {
				return xerrors.Errorf("call %d of %d: %w", i, len(inners), err)
			}
			events = append(events, event)
		}

		return nil
	})
	recordOutcome(ctx, start, err)
	if err == nil {
		for _, event := range events {
			recordEvent(ctx, event)
		}
	}

	return err
}

// ResidualValue reports the value left once the running protected call's
// fee was taken, zero at rest.
func (fm *FeeModule) ResidualValue() types.Int {
	return fm.residual.get()
}

func (fm *FeeModule) runProtected(ctx context.Context, txRepo repo.TxRepo, call *Call, value types.Int, inner InnerFunc) (*types.FeeEvent, error) {
	if err := fm.contract.UpdateFee(ctx); err != nil {
		return nil, xerrors.Errorf("update fee: %w", err)
	}

	fee, err := fm.contract.GetFee(ctx)
	if err != nil {
		return nil, xerrors.Errorf("get fee: %w", err)
	}

	balance, err := txRepo.AccountRepo().Balance(ctx, fm.appAddr)
	if err != nil {
		return nil, err
	}
	if value.LessThan(fee) || balance.LessThan(fee) {
		return nil, &InsufficientFundsError{Balance: balance, Fee: fee}
	}

	residual := types.Zero()
	if call.Payable {
		residual = types.Sub(value, fee)
		fm.residual.set(residual)
	}
	defer fm.residual.clear()

	if fee.GreaterThan(types.Zero()) {
		if err := txRepo.AccountRepo().Transfer(ctx, fm.appAddr, fm.contract.Address(), fee); err != nil {
			return nil, xerrors.Errorf("transfer fee: %w", err)
		}
	}

	if err := inner(ctx, &CallScope{module: fm, txRepo: txRepo}); err != nil {
		return nil, err
	}

	refund := types.Zero()
	if call.RefundRemaining {
		remaining, err := txRepo.AccountRepo().Balance(ctx, fm.appAddr)
		if err != nil {
			return nil, err
		}
		if remaining.GreaterThan(types.Zero()) {
			if err := txRepo.AccountRepo().Transfer(ctx, fm.appAddr, call.Caller, remaining); err != nil {
				return nil, xerrors.Errorf("refund remaining: %w", err)
			}
			refund = remaining
		}
	}

	event := &types.FeeEvent{
		ID:       types.NewUUID(),
		Caller:   call.Caller,
		Method:   call.Method,
		Fee:      fee,
		Value:    value.Copy(),
		Residual: residual,
		Refund:   refund,
	}
	if err := txRepo.FeeEventRepo().CreateFeeEvent(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func recordOutcome(ctx context.Context, start time.Time, err error) {
	stats.Record(ctx, metrics.GuardedCallTotal.M(1),
		metrics.GuardedCallDuration.M(time.Since(start).Milliseconds()))
	if err != nil {
		stats.Record(ctx, metrics.GuardedCallFailed.M(1))
	}
}

func recordEvent(ctx context.Context, event *types.FeeEvent) {
	if event == nil {
		return
	}
	if event.Fee.GreaterThan(types.Zero()) {
		stats.Record(ctx, metrics.FeeCollected.M(weiToFloat(event.Fee)))
	}
	if event.Refund.GreaterThan(types.Zero()) {
		stats.Record(ctx, metrics.RefundIssued.M(weiToFloat(event.Refund)))
	}
}

func weiToFloat(v types.Int) float64 {
	if v.Nil() {
		return 0
	}
	f, _ := new(big.Float).SetInt(v.Int).Float64()
	return f
}
