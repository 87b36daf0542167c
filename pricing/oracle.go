package pricing

import (
	"context"
	"errors"
	"unicode/utf8"

	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/feecontract"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/ratefeed"
	"github.com/haven1-network/pricer/types"
	"github.com/haven1-network/pricer/utils"
)

const (
	CapabilityQuote           = "quote"
	CapabilityDiscovery       = "discovery"
	CapabilityDecayingPremium = "decaying-premium"
)

// ErrInvalidRate is returned when the rate feed reports a zero or negative
// figure. No conversion ever divides by such a reading.
var ErrInvalidRate = errors.New("invalid rate")

// rateMultiplier is the 8-decimal fixed-point base of the rate feed.
var rateMultiplier = types.NewInt(100000000)

// StableOracle prices names from five per-length USD unit prices and the
// live native/USD rate. Base price scales with duration, the premium comes
// from the configured strategy and the enforcement fee rides along on every
// quote so callers can budget the full cost.
type StableOracle struct {
	prices   [5]types.Int
	feed     ratefeed.IRateFeed
	contract feecontract.IFeeContract
	strategy PremiumStrategy
	log      *log.Logger
}

func NewStableOracle(cfg *config.PricingConfig, feed ratefeed.IRateFeed, contract feecontract.IFeeContract, logger *log.Logger) (*StableOracle, error) {
	var prices [5]types.Int
	for i, raw := range []string{cfg.Price1Letter, cfg.Price2Letter, cfg.Price3Letter, cfg.Price4Letter, cfg.Price5Letter} {
		price, err := types.FromString(raw)
		if err != nil {
			return nil, xerrors.Errorf("parse unit price %d %s: %w", i+1, raw, err)
		}
		prices[i] = price
	}

	strategy, err := NewPremiumStrategy(&cfg.Premium)
	if err != nil {
		return nil, err
	}

	return &StableOracle{
		prices:   prices,
		feed:     feed,
		contract: contract,
		strategy: strategy,
		log:      logger,
	}, nil
}

// Quote prices a registration: base by length tier and duration, premium by
// strategy, both in wei, plus the current oracle fee in native units.
func (o *StableOracle) Quote(ctx context.Context, name string, expires uint64, duration uint64) (*types.PriceQuote, error) {
	rate, err := o.rate(ctx)
	if err != nil {
		return nil, err
	}

	baseUSD := types.Mul(o.unitPrice(name), types.NewIntUnsigned(duration))
	premiumUSD, err := o.strategy.Premium(ctx, name, expires, duration)
	if err != nil {
		return nil, err
	}

	fee, err := o.contract.QueryOracle(ctx)
	if err != nil {
		return nil, xerrors.Errorf("query fee oracle: %w", err)
	}

	return &types.PriceQuote{
		Base:    attoUSDToWei(baseUSD, rate),
		Premium: attoUSDToWei(premiumUSD, rate),
		Fee:     fee,
	}, nil
}

// Premium reports the strategy premium alone, in wei.
func (o *StableOracle) Premium(ctx context.Context, name string, expires uint64, duration uint64) (types.Int, error) {
	rate, err := o.rate(ctx)
	if err != nil {
		return types.Int{}, err
	}

	premiumUSD, err := o.strategy.Premium(ctx, name, expires, duration)
	if err != nil {
		return types.Int{}, err
	}

	return attoUSDToWei(premiumUSD, rate), nil
}

func (o *StableOracle) AttoUSDToWei(ctx context.Context, amount types.Int) (types.Int, error) {
	rate, err := o.rate(ctx)
	if err != nil {
		return types.Int{}, err
	}

	return attoUSDToWei(amount, rate), nil
}

func (o *StableOracle) WeiToAttoUSD(ctx context.Context, amount types.Int) (types.Int, error) {
	rate, err := o.rate(ctx)
	if err != nil {
		return types.Int{}, err
	}

	return weiToAttoUSD(amount, rate), nil
}

// Supports reports whether the oracle carries the named capability, the
// strategy contributing its own on top of quoting and discovery.
func (o *StableOracle) Supports(capability string) bool {
	if capability == CapabilityQuote || capability == CapabilityDiscovery {
		return true
	}

	return utils.Contains(o.strategy.Capabilities(), capability)
}

func (o *StableOracle) Capabilities() []string {
	return append([]string{CapabilityQuote, CapabilityDiscovery}, o.strategy.Capabilities()...)
}

func (o *StableOracle) rate(ctx context.Context) (types.Int, error) {
	rate, err := o.feed.LatestAnswer(ctx)
	if err != nil {
		return types.Int{}, xerrors.Errorf("read rate feed: %w", err)
	}
	if rate.Nil() || rate.LessThanEqual(types.Zero()) {
		return types.Int{}, ErrInvalidRate
	}

	return rate, nil
}

// unitPrice selects the per-second USD price by rune count, every name of
// five or more runes sharing the last tier.
func (o *StableOracle) unitPrice(name string) types.Int {
	length := utf8.RuneCountInString(name)
	switch {
	case length >= 5:
		return o.prices[4]
	case length == 4:
		return o.prices[3]
	case length == 3:
		return o.prices[2]
	case length == 2:
		return o.prices[1]
	default:
		return o.prices[0]
	}
}

func attoUSDToWei(amount, rate types.Int) types.Int {
	return types.Div(types.Mul(amount, rateMultiplier), rate)
}

func weiToAttoUSD(amount, rate types.Int) types.Int {
	return types.Div(types.Mul(amount, rate), rateMultiplier)
}
