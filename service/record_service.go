package service

import (
	"context"
	"math/big"

	"go.opencensus.io/stats"
	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/fee"
	"github.com/haven1-network/pricer/feecontract"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/metrics"
	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

// Method names stamped on fee events.
const (
	MethodSubmitRecord  = "submitRecord"
	MethodSubmitRecords = "submitRecords"
)

var ErrEmptyContent = xerrors.New("record content is empty")

// RecordService is the application around the fee module. It owns no
// enforcement state of its own, every charging rule lives in the composed
// module, the service only supplies the inner record logic.
type RecordService struct {
	repo repo.Repo
	log  *log.Logger

	fm       *fee.FeeModule
	contract *feecontract.Ref
	appAddr  types.Address
}

func NewRecordService(ctx context.Context, repo repo.Repo, logger *log.Logger, fm *fee.FeeModule, contract *feecontract.Ref, cfg *config.AppConfig) (*RecordService, error) {
	appAddr, err := types.ParseAddress(cfg.Address)
	if err != nil {
		return nil, xerrors.Errorf("parse application address: %w", err)
	}

	if err := fm.Initialize(ctx, contract, appAddr); err != nil {
		return nil, err
	}

	return &RecordService{
		repo:     repo,
		log:      logger,
		fm:       fm,
		contract: contract,
		appAddr:  appAddr,
	}, nil
}

// SubmitRecord writes a record under fee protection. The attached value
// enters the ledger, the current fee moves to the fee contract and the
// record keeps what is left as its payment.
func (rs *RecordService) SubmitRecord(ctx context.Context, caller types.Address, content string, value types.Int) (types.UUID, error) {
	record := &types.Record{
		ID:      types.NewUUID(),
		Creator: caller,
		Content: content,
	}

	call := &fee.Call{
		Caller:  caller,
		Method:  MethodSubmitRecord,
		Value:   value,
		Payable: true,
	}
	err := rs.fm.ProtectedCall(ctx, call, func(ctx context.Context, scope *fee.CallScope) error {
		if len(record.Content) == 0 {
			return ErrEmptyContent
		}
		record.Paid = scope.ValueAfterFee()
		return scope.Repo().RecordRepo().CreateRecord(ctx, record)
	})
	if err != nil {
		return types.UUID{}, err
	}

	rs.log.Infof("record %s submitted by %s, paid %v", record.ID, caller, record.Paid)
	return record.ID, nil
}

// SubmitRecordAndRefund writes a record charging the protocol fee only.
// Everything attached beyond the fee returns to the caller after the
// record is in, so the record itself carries no payment.
func (rs *RecordService) SubmitRecordAndRefund(ctx context.Context, caller types.Address, content string, value types.Int) (types.UUID, error) {
	record := &types.Record{
		ID:      types.NewUUID(),
		Creator: caller,
		Content: content,
		Paid:    types.Zero(),
	}

	call := &fee.Call{
		Caller:          caller,
		Method:          MethodSubmitRecord,
		Value:           value,
		Payable:         true,
		RefundRemaining: true,
	}
	err := rs.fm.ProtectedCall(ctx, call, func(ctx context.Context, scope *fee.CallScope) error {
		if len(record.Content) == 0 {
			return ErrEmptyContent
		}
		return scope.Repo().RecordRepo().CreateRecord(ctx, record)
	})
	if err != nil {
		return types.UUID{}, err
	}

	rs.log.Infof("record %s submitted by %s, remainder refunded", record.ID, caller)
	return record.ID, nil
}

// SubmitRecords writes a batch of records as one protected multicall. The
// value is attached once yet each record claims the full figure, so the
// batch either pays the fee for every entry or rolls back whole.
func (rs *RecordService) SubmitRecords(ctx context.Context, caller types.Address, contents []string, value types.Int) ([]types.UUID, error) {
	if len(contents) == 0 {
		return nil, xerrors.Errorf("empty batch")
	}

	ids := make([]types.UUID, 0, len(contents))
	inners := make([]fee.InnerFunc, 0, len(contents))
	for _, content := range contents {
		record := &types.Record{
			ID:      types.NewUUID(),
			Creator: caller,
			Content: content,
		}
		ids = append(ids, record.ID)
		inners = append(inners, func(ctx context.Context, scope *fee.CallScope) error {
			if len(record.Content) == 0 {
				return ErrEmptyContent
			}
			record.Paid = scope.ValueAfterFee()
			return scope.Repo().RecordRepo().CreateRecord(ctx, record)
		})
	}

	call := &fee.Call{
		Caller:  caller,
		Method:  MethodSubmitRecords,
		Value:   value,
		Payable: true,
	}
	if err := rs.fm.Multicall(ctx, call, inners); err != nil {
		return nil, err
	}

	rs.log.Infof("batch of %d records submitted by %s", len(ids), caller)
	return ids, nil
}

// Deposit credits an account on the ledger outside any protected call and
// reports the new balance.
func (rs *RecordService) Deposit(ctx context.Context, addr types.Address, amount types.Int) (types.Int, error) {
	if err := rs.repo.AccountRepo().Deposit(ctx, addr, amount); err != nil {
		return types.Int{}, err
	}
	deposited, _ := new(big.Float).SetInt(amount.Int).Float64()
	stats.Record(ctx, metrics.DepositReceived.M(deposited))

	return rs.repo.AccountRepo().Balance(ctx, addr)
}

func (rs *RecordService) Balance(ctx context.Context, addr types.Address) (types.Int, error) {
	return rs.repo.AccountRepo().Balance(ctx, addr)
}

func (rs *RecordService) GetRecord(ctx context.Context, id types.UUID) (*types.Record, error) {
	return rs.repo.RecordRepo().GetRecord(ctx, id)
}

func (rs *RecordService) ListRecord(ctx context.Context) ([]*types.Record, error) {
	return rs.repo.RecordRepo().ListRecord(ctx)
}

func (rs *RecordService) ListRecordByCreator(ctx context.Context, creator types.Address) ([]*types.Record, error) {
	return rs.repo.RecordRepo().ListRecordByCreator(ctx, creator)
}

func (rs *RecordService) ListFeeEvent(ctx context.Context) ([]*types.FeeEvent, error) {
	return rs.repo.FeeEventRepo().ListFeeEvent(ctx)
}

func (rs *RecordService) ListFeeEventByCaller(ctx context.Context, caller types.Address) ([]*types.FeeEvent, error) {
	return rs.repo.FeeEventRepo().ListFeeEventByCaller(ctx, caller)
}

// FeeState reads the fee contract's charging state in one shot.
func (rs *RecordService) FeeState(ctx context.Context) (*types.FeeState, error) {
	feeVal, err := rs.contract.GetFee(ctx)
	if err != nil {
		return nil, xerrors.Errorf("get fee: %w", err)
	}
	oracleFee, err := rs.contract.QueryOracle(ctx)
	if err != nil {
		return nil, xerrors.Errorf("query fee oracle: %w", err)
	}
	nextReset, err := rs.contract.NextResetTime(ctx)
	if err != nil {
		return nil, xerrors.Errorf("next reset time: %w", err)
	}

	return &types.FeeState{
		Fee:           feeVal,
		OracleFee:     oracleFee,
		NextResetTime: nextReset,
	}, nil
}
