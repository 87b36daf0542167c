package service

import (
	"context"

	"go.opencensus.io/stats"

	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/metrics"
	"github.com/haven1-network/pricer/pricing"
	"github.com/haven1-network/pricer/types"
)

// QuoteService exposes the price oracle. Quotes are computed on demand and
// never stored, only the rate readings behind them are.
type QuoteService struct {
	log    *log.Logger
	oracle *pricing.StableOracle
}

func NewQuoteService(logger *log.Logger, oracle *pricing.StableOracle) *QuoteService {
	return &QuoteService{
		log:    logger,
		oracle: oracle,
	}
}

func (qs *QuoteService) Quote(ctx context.Context, name string, expires uint64, duration uint64) (*types.PriceQuote, error) {
	quote, err := qs.oracle.Quote(ctx, name, expires, duration)
	if err != nil {
		return nil, err
	}
	stats.Record(ctx, metrics.QuoteTotal.M(1))
	qs.log.Debugf("quote %s for %ds: base %v premium %v fee %v", name, duration, quote.Base, quote.Premium, quote.Fee)

	return quote, nil
}

func (qs *QuoteService) Premium(ctx context.Context, name string, expires uint64, duration uint64) (types.Int, error) {
	return qs.oracle.Premium(ctx, name, expires, duration)
}

func (qs *QuoteService) AttoUSDToWei(ctx context.Context, amount types.Int) (types.Int, error) {
	return qs.oracle.AttoUSDToWei(ctx, amount)
}

func (qs *QuoteService) WeiToAttoUSD(ctx context.Context, amount types.Int) (types.Int, error) {
	return qs.oracle.WeiToAttoUSD(ctx, amount)
}

func (qs *QuoteService) Supports(ctx context.Context, capability string) (bool, error) {
	return qs.oracle.Supports(capability), nil
}

func (qs *QuoteService) Capabilities(ctx context.Context) ([]string, error) {
	return qs.oracle.Capabilities(), nil
}
