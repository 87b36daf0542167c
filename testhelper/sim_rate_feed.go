package testhelper

import (
	"context"
	"sync"

	"github.com/haven1-network/pricer/ratefeed"
	"github.com/haven1-network/pricer/types"
)

var _ ratefeed.IRateFeed = (*SimRateFeed)(nil)

// SimRateFeed reports a settable native/USD rate, 8-decimal fixed point.
// Negative and zero rates are allowed so callers can exercise their guards.
type SimRateFeed struct {
	lk sync.Mutex

	rate types.Int
	err  error
}

func NewSimRateFeed(rate types.Int) *SimRateFeed {
	return &SimRateFeed{rate: rate.Copy()}
}

func (s *SimRateFeed) LatestAnswer(ctx context.Context) (types.Int, error) {
	s.lk.Lock()
	defer s.lk.Unlock()

	if s.err != nil {
		return types.Int{}, s.err
	}

	return s.rate.Copy(), nil
}

func (s *SimRateFeed) SetRate(rate types.Int) {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.rate = rate.Copy()
}

func (s *SimRateFeed) Fail(err error) {
	s.lk.Lock()
	defer s.lk.Unlock()
	s.err = err
}
