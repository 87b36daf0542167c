package ratefeed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haven1-network/pricer/ratefeed"
	"github.com/haven1-network/pricer/testhelper"
	"github.com/haven1-network/pricer/types"
)

func TestRateFeedRPC(t *testing.T) {
	ctx := context.Background()

	sim := testhelper.NewSimRateFeed(types.NewInt(160000000000))
	srv, err := testhelper.MockRPCServer(t, "RateFeed", sim)
	assert.NoError(t, err)
	defer func() {
		assert.NoError(t, srv.Stop(ctx))
	}()

	cli, closer, err := ratefeed.NewRateFeedRPC(ctx, srv.Addr, "")
	assert.NoError(t, err)
	defer closer()

	rate, err := cli.LatestAnswer(ctx)
	assert.NoError(t, err)
	assert.True(t, rate.Equals(types.NewInt(160000000000)))

	// a broken feed may answer with zero or less, the client passes it on
	sim.SetRate(types.NewInt(-5))
	rate, err = cli.LatestAnswer(ctx)
	assert.NoError(t, err)
	assert.True(t, rate.Equals(types.NewInt(-5)))

	sim.Fail(errors.New("feed down"))
	_, err = cli.LatestAnswer(ctx)
	assert.Error(t, err)
}
