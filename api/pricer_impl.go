package api

import (
	"context"

	"github.com/filecoin-project/go-jsonrpc/auth"
	"github.com/filecoin-project/venus-auth/core"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/service"
	"github.com/haven1-network/pricer/types"
	"github.com/haven1-network/pricer/version"
)

var ErrPermissionDenied = xerrors.New("permission denied")

type ImplParams struct {
	fx.In
	RecordService *service.RecordService
	QuoteService  *service.QuoteService
	RateService   *service.RateService
	Logger        *log.Logger
}

func NewPricerImpl(implParams ImplParams) *PricerImpl {
	return &PricerImpl{
		RecordSrv: implParams.RecordService,
		QuoteSrv:  implParams.QuoteService,
		RateSrv:   implParams.RateService,
		Logger:    implParams.Logger,
	}
}

// PricerImpl is the rpc surface. Reads pass through, writes need the write
// permission and operational methods need admin.
type PricerImpl struct {
	RecordSrv *service.RecordService
	QuoteSrv  *service.QuoteService
	RateSrv   *service.RateService
	Logger    *log.Logger
}

func (p PricerImpl) Quote(ctx context.Context, name string, expires uint64, duration uint64) (*types.PriceQuote, error) {
	return p.QuoteSrv.Quote(ctx, name, expires, duration)
}

func (p PricerImpl) Premium(ctx context.Context, name string, expires uint64, duration uint64) (types.Int, error) {
	return p.QuoteSrv.Premium(ctx, name, expires, duration)
}

func (p PricerImpl) AttoUSDToWei(ctx context.Context, amount types.Int) (types.Int, error) {
	return p.QuoteSrv.AttoUSDToWei(ctx, amount)
}

func (p PricerImpl) WeiToAttoUSD(ctx context.Context, amount types.Int) (types.Int, error) {
	return p.QuoteSrv.WeiToAttoUSD(ctx, amount)
}

func (p PricerImpl) Supports(ctx context.Context, capability string) (bool, error) {
	return p.QuoteSrv.Supports(ctx, capability)
}

func (p PricerImpl) Capabilities(ctx context.Context) ([]string, error) {
	return p.QuoteSrv.Capabilities(ctx)
}

func (p PricerImpl) SubmitRecord(ctx context.Context, caller types.Address, content string, value types.Int) (types.UUID, error) {
	if !hasPerm(ctx, core.PermWrite) {
		return types.UUID{}, ErrPermissionDenied
	}
	return p.RecordSrv.SubmitRecord(ctx, caller, content, value)
}

func (p PricerImpl) SubmitRecordAndRefund(ctx context.Context, caller types.Address, content string, value types.Int) (types.UUID, error) {
	if !hasPerm(ctx, core.PermWrite) {
		return types.UUID{}, ErrPermissionDenied
	}
	return p.RecordSrv.SubmitRecordAndRefund(ctx, caller, content, value)
}

func (p PricerImpl) SubmitRecords(ctx context.Context, caller types.Address, contents []string, value types.Int) ([]types.UUID, error) {
	if !hasPerm(ctx, core.PermWrite) {
		return nil, ErrPermissionDenied
	}
	return p.RecordSrv.SubmitRecords(ctx, caller, contents, value)
}

func (p PricerImpl) Deposit(ctx context.Context, addr types.Address, amount types.Int) (types.Int, error) {
	if !hasPerm(ctx, core.PermWrite) {
		return types.Int{}, ErrPermissionDenied
	}
	return p.RecordSrv.Deposit(ctx, addr, amount)
}

func (p PricerImpl) Balance(ctx context.Context, addr types.Address) (types.Int, error) {
	return p.RecordSrv.Balance(ctx, addr)
}

func (p PricerImpl) GetRecord(ctx context.Context, id types.UUID) (*types.Record, error) {
	return p.RecordSrv.GetRecord(ctx, id)
}

func (p PricerImpl) ListRecord(ctx context.Context) ([]*types.Record, error) {
	return p.RecordSrv.ListRecord(ctx)
}

func (p PricerImpl) ListRecordByCreator(ctx context.Context, creator types.Address) ([]*types.Record, error) {
	return p.RecordSrv.ListRecordByCreator(ctx, creator)
}

// ListFeeEvent exposes the full audit trail, so only admin reads it.
func (p PricerImpl) ListFeeEvent(ctx context.Context) ([]*types.FeeEvent, error) {
	if !isAdmin(ctx) {
		return nil, ErrPermissionDenied
	}
	return p.RecordSrv.ListFeeEvent(ctx)
}

func (p PricerImpl) ListFeeEventByCaller(ctx context.Context, caller types.Address) ([]*types.FeeEvent, error) {
	return p.RecordSrv.ListFeeEventByCaller(ctx, caller)
}

func (p PricerImpl) FeeState(ctx context.Context) (*types.FeeState, error) {
	return p.RecordSrv.FeeState(ctx)
}

func (p PricerImpl) LatestRate(ctx context.Context) (types.Int, error) {
	return p.RateSrv.LatestRate(ctx)
}

func (p PricerImpl) RefreshRate(ctx context.Context) (types.Int, error) {
	if !isAdmin(ctx) {
		return types.Int{}, ErrPermissionDenied
	}
	return p.RateSrv.RefreshRate(ctx)
}

func (p PricerImpl) ListRateSnapshot(ctx context.Context, limit int) ([]*types.RateSnapshot, error) {
	return p.RateSrv.ListRateSnapshot(ctx, limit)
}

func (p PricerImpl) Version(ctx context.Context) (string, error) {
	return version.Version, nil
}

func (p PricerImpl) SetLogLevel(ctx context.Context, level string) error {
	if !isAdmin(ctx) {
		return ErrPermissionDenied
	}
	return p.Logger.SetLogLevel(ctx, level)
}

func isAdmin(ctx context.Context) bool {
	return auth.HasPerm(ctx, nil, core.PermAdmin)
}

func hasPerm(ctx context.Context, perm core.Permission) bool {
	return auth.HasPerm(ctx, nil, perm)
}
