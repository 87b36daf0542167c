package client

import (
	"context"

	"github.com/haven1-network/pricer/types"
)

type IPricer interface {
	Quote(ctx context.Context, name string, expires uint64, duration uint64) (*types.PriceQuote, error)
	Premium(ctx context.Context, name string, expires uint64, duration uint64) (types.Int, error)
	AttoUSDToWei(ctx context.Context, amount types.Int) (types.Int, error)
	WeiToAttoUSD(ctx context.Context, amount types.Int) (types.Int, error)
	Supports(ctx context.Context, capability string) (bool, error)
	Capabilities(ctx context.Context) ([]string, error)

	SubmitRecord(ctx context.Context, caller types.Address, content string, value types.Int) (types.UUID, error)
	SubmitRecordAndRefund(ctx context.Context, caller types.Address, content string, value types.Int) (types.UUID, error)
	SubmitRecords(ctx context.Context, caller types.Address, contents []string, value types.Int) ([]types.UUID, error)
	Deposit(ctx context.Context, addr types.Address, amount types.Int) (types.Int, error)
	Balance(ctx context.Context, addr types.Address) (types.Int, error)

	GetRecord(ctx context.Context, id types.UUID) (*types.Record, error)
	ListRecord(ctx context.Context) ([]*types.Record, error)
	ListRecordByCreator(ctx context.Context, creator types.Address) ([]*types.Record, error)
	ListFeeEvent(ctx context.Context) ([]*types.FeeEvent, error)
	ListFeeEventByCaller(ctx context.Context, caller types.Address) ([]*types.FeeEvent, error)
	FeeState(ctx context.Context) (*types.FeeState, error)

	LatestRate(ctx context.Context) (types.Int, error)
	RefreshRate(ctx context.Context) (types.Int, error)
	ListRateSnapshot(ctx context.Context, limit int) ([]*types.RateSnapshot, error)

	Version(ctx context.Context) (string, error)
	SetLogLevel(ctx context.Context, level string) error
}

var _ IPricer = (*Pricer)(nil)

type Pricer struct {
	Internal struct {
		Quote        func(ctx context.Context, name string, expires uint64, duration uint64) (*types.PriceQuote, error)
		Premium      func(ctx context.Context, name string, expires uint64, duration uint64) (types.Int, error)
		AttoUSDToWei func(ctx context.Context, amount types.Int) (types.Int, error)
		WeiToAttoUSD func(ctx context.Context, amount types.Int) (types.Int, error)
		Supports     func(ctx context.Context, capability string) (bool, error)
		Capabilities func(ctx context.Context) ([]string, error)

		SubmitRecord          func(ctx context.Context, caller types.Address, content string, value types.Int) (types.UUID, error)
		SubmitRecordAndRefund func(ctx context.Context, caller types.Address, content string, value types.Int) (types.UUID, error)
		SubmitRecords         func(ctx context.Context, caller types.Address, contents []string, value types.Int) ([]types.UUID, error)
		Deposit               func(ctx context.Context, addr types.Address, amount types.Int) (types.Int, error)
		Balance               func(ctx context.Context, addr types.Address) (types.Int, error)

		GetRecord            func(ctx context.Context, id types.UUID) (*types.Record, error)
		ListRecord           func(ctx context.Context) ([]*types.Record, error)
		ListRecordByCreator  func(ctx context.Context, creator types.Address) ([]*types.Record, error)
		ListFeeEvent         func(ctx context.Context) ([]*types.FeeEvent, error)
		ListFeeEventByCaller func(ctx context.Context, caller types.Address) ([]*types.FeeEvent, error)
		FeeState             func(ctx context.Context) (*types.FeeState, error)

		LatestRate       func(ctx context.Context) (types.Int, error)
		RefreshRate      func(ctx context.Context) (types.Int, error)
		ListRateSnapshot func(ctx context.Context, limit int) ([]*types.RateSnapshot, error)

		Version     func(ctx context.Context) (string, error)
		SetLogLevel func(ctx context.Context, level string) error
	}
}

func (pricer *Pricer) Quote(ctx context.Context, name string, expires uint64, duration uint64) (*types.PriceQuote, error) {
	return pricer.Internal.Quote(ctx, name, expires, duration)
}

func (pricer *Pricer) Premium(ctx context.Context, name string, expires uint64, duration uint64) (types.Int, error) {
	return pricer.Internal.Premium(ctx, name, expires, duration)
}

func (pricer *Pricer) AttoUSDToWei(ctx context.Context, amount types.Int) (types.Int, error) {
	return pricer.Internal.AttoUSDToWei(ctx, amount)
}

func (pricer *Pricer) WeiToAttoUSD(ctx context.Context, amount types.Int) (types.Int, error) {
	return pricer.Internal.WeiToAttoUSD(ctx, amount)
}

func (pricer *Pricer) Supports(ctx context.Context, capability string) (bool, error) {
	return pricer.Internal.Supports(ctx, capability)
}

func (pricer *Pricer) Capabilities(ctx context.Context) ([]string, error) {
	return pricer.Internal.Capabilities(ctx)
}

func (pricer *Pricer) SubmitRecord(ctx context.Context, caller types.Address, content string, value types.Int) (types.UUID, error) {
	return pricer.Internal.SubmitRecord(ctx, caller, content, value)
}

func (pricer *Pricer) SubmitRecordAndRefund(ctx context.Context, caller types.Address, content string, value types.Int) (types.UUID, error) {
	return pricer.Internal.SubmitRecordAndRefund(ctx, caller, content, value)
}

func (pricer *Pricer) SubmitRecords(ctx context.Context, caller types.Address, contents []string, value types.Int) ([]types.UUID, error) {
	return pricer.Internal.SubmitRecords(ctx, caller, contents, value)
}

func (pricer *Pricer) Deposit(ctx context.Context, addr types.Address, amount types.Int) (types.Int, error) {
	return pricer.Internal.Deposit(ctx, addr, amount)
}

func (pricer *Pricer) Balance(ctx context.Context, addr types.Address) (types.Int, error) {
	return pricer.Internal.Balance(ctx, addr)
}

func (pricer *Pricer) GetRecord(ctx context.Context, id types.UUID) (*types.Record, error) {
	return pricer.Internal.GetRecord(ctx, id)
}

func (pricer *Pricer) ListRecord(ctx context.Context) ([]*types.Record, error) {
	return pricer.Internal.ListRecord(ctx)
}

func (pricer *Pricer) ListRecordByCreator(ctx context.Context, creator types.Address) ([]*types.Record, error) {
	return pricer.Internal.ListRecordByCreator(ctx, creator)
}

func (pricer *Pricer) ListFeeEvent(ctx context.Context) ([]*types.FeeEvent, error) {
	return pricer.Internal.ListFeeEvent(ctx)
}

func (pricer *Pricer) ListFeeEventByCaller(ctx context.Context, caller types.Address) ([]*types.FeeEvent, error) {
	return pricer.Internal.ListFeeEventByCaller(ctx, caller)
}

func (pricer *Pricer) FeeState(ctx context.Context) (*types.FeeState, error) {
	return pricer.Internal.FeeState(ctx)
}

func (pricer *Pricer) LatestRate(ctx context.Context) (types.Int, error) {
	return pricer.Internal.LatestRate(ctx)
}

func (pricer *Pricer) RefreshRate(ctx context.Context) (types.Int, error) {
	return pricer.Internal.RefreshRate(ctx)
}

func (pricer *Pricer) ListRateSnapshot(ctx context.Context, limit int) ([]*types.RateSnapshot, error) {
	return pricer.Internal.ListRateSnapshot(ctx, limit)
}

func (pricer *Pricer) Version(ctx context.Context) (string, error) {
	return pricer.Internal.Version(ctx)
}

func (pricer *Pricer) SetLogLevel(ctx context.Context, level string) error {
	return pricer.Internal.SetLogLevel(ctx, level)
}
