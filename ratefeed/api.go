package ratefeed

import (
	"context"

	"github.com/haven1-network/pricer/types"
)

// IRateFeed is a chainlink style aggregator, LatestAnswer reporting the
// native/USD rate as a signed 8-decimal fixed-point figure.
type IRateFeed interface {
	LatestAnswer(ctx context.Context) (types.Int, error)
}
