package pricing

import (
	"context"
	"time"

	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/types"
)

// GracePeriod is how long an expired name stays reclaimable before the
// premium auction starts.
const GracePeriod = uint64(90 * 24 * 60 * 60)

const secondsPerDay = 86400

// precision is the 1e18 fixed-point base of the decay factors.
var precision = types.MustFromString("1000000000000000000")

// premiumBitFactors[i] is 0.5^(2^i/65536) at 1e18 precision. Multiplying
// the factors picked by the bits of a 16-bit day fraction resolves
// 0.5^fraction without floating point.
var premiumBitFactors = [16]types.Int{
	types.MustFromString("999989423469314432"),
	types.MustFromString("999978847050491904"),
	types.MustFromString("999957694548431104"),
	types.MustFromString("999915390886613504"),
	types.MustFromString("999830788931929088"),
	types.MustFromString("999661606496243712"),
	types.MustFromString("999323327502650752"),
	types.MustFromString("998647112890970240"),
	types.MustFromString("997296056085470080"),
	types.MustFromString("994599423483633152"),
	types.MustFromString("989228013193975424"),
	types.MustFromString("978572062087700096"),
	types.MustFromString("957603280698573696"),
	types.MustFromString("917004043204671232"),
	types.MustFromString("840896415253714560"),
	types.MustFromString("707106781186547584"),
}

// PremiumStrategy prices the name-expiry premium in USD atto-units. The
// oracle converts the figure to native units with the live rate.
type PremiumStrategy interface {
	Premium(ctx context.Context, name string, expires uint64, duration uint64) (types.Int, error)
	Capabilities() []string
}

func NewPremiumStrategy(cfg *config.PremiumConfig) (PremiumStrategy, error) {
	switch cfg.Type {
	case "", "zero":
		return &ZeroPremium{}, nil
	case "exponential":
		startPremium, err := types.FromString(cfg.StartPremium)
		if err != nil {
			return nil, xerrors.Errorf("parse start premium %s: %w", cfg.StartPremium, err)
		}
		if cfg.TotalDays <= 0 {
			return nil, xerrors.Errorf("premium total days must be positive, got %d", cfg.TotalDays)
		}
		return NewExponentialPremium(startPremium, uint64(cfg.TotalDays)), nil
	default:
		return nil, xerrors.Errorf("unexpected premium type %s, (%s, %s)", cfg.Type, "zero", "exponential")
	}
}

// ZeroPremium is the default strategy, every name prices at its base.
type ZeroPremium struct{}

func (z *ZeroPremium) Premium(ctx context.Context, name string, expires uint64, duration uint64) (types.Int, error) {
	return types.Zero(), nil
}

func (z *ZeroPremium) Capabilities() []string {
	return nil
}

// ExponentialPremium runs a dutch auction on released names: the premium
// opens at startPremium when the grace period ends and halves daily over
// totalDays. endValue, the price the curve reaches on the final day, is
// subtracted from every reading so the curve hits exactly zero.
type ExponentialPremium struct {
	startPremium types.Int
	endValue     types.Int
	totalDays    uint64

	now func() uint64
}

func NewExponentialPremium(startPremium types.Int, totalDays uint64) *ExponentialPremium {
	return &ExponentialPremium{
		startPremium: startPremium.Copy(),
		endValue:     types.Rsh(startPremium, uint(totalDays)),
		totalDays:    totalDays,
		now:          func() uint64 { return uint64(time.Now().Unix()) },
	}
}

func (e *ExponentialPremium) Premium(ctx context.Context, name string, expires uint64, duration uint64) (types.Int, error) {
	releasedAt := expires + GracePeriod
	now := e.now()
	if releasedAt > now {
		return e.startPremium.Copy(), nil
	}

	premium := e.decayedPremium(now - releasedAt)
	if premium.GreaterThanEqual(e.endValue) {
		return types.Sub(premium, e.endValue), nil
	}

	return types.Zero(), nil
}

func (e *ExponentialPremium) Capabilities() []string {
	return []string{CapabilityDecayingPremium}
}

// decayedPremium computes startPremium * 0.5^(elapsed/1 day). Whole days
// shift the premium right, the fractional day resolves through the bit
// factor table.
func (e *ExponentialPremium) decayedPremium(elapsed uint64) types.Int {
	daysPast := types.Div(types.Mul(types.NewIntUnsigned(elapsed), precision), types.NewInt(secondsPerDay))
	intDays := types.Div(daysPast, precision)

	premium := types.Rsh(e.startPremium, uint(intDays.Uint64()))

	partDay := types.Sub(daysPast, types.Mul(intDays, precision))
	fraction := types.Div(types.Mul(partDay, types.NewInt(1<<16)), precision).Uint64()
	for i, factor := range premiumBitFactors {
		if fraction&(1<<uint(i)) != 0 {
			premium = types.Div(types.Mul(premium, factor), precision)
		}
	}

	return premium
}
