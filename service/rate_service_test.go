package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/testhelper"
	"github.com/haven1-network/pricer/types"
)

func setupRateService(t *testing.T, rate int64) (*RateService, *testhelper.SimRateFeed, repo.Repo) {
	r := testhelper.SetupRepo(t)
	feed := testhelper.NewSimRateFeed(types.NewInt(rate))
	cfg := config.DefaultConfig().RateFeed

	return NewRateService(r, log.New(), &cfg, feed), feed, r
}

func TestLatestRate(t *testing.T) {
	ctx := context.Background()
	rs, feed, _ := setupRateService(t, 160000000000)

	rate, err := rs.LatestRate(ctx)
	assert.NoError(t, err)
	assert.True(t, rate.Equals(types.NewInt(160000000000)))

	// cached, so a feed change is not visible until expiry
	feed.SetRate(types.NewInt(170000000000))
	rate, err = rs.LatestRate(ctx)
	assert.NoError(t, err)
	assert.True(t, rate.Equals(types.NewInt(160000000000)))
}

func TestLatestRateFallback(t *testing.T) {
	ctx := context.Background()
	rs, feed, r := setupRateService(t, 160000000000)

	_, err := rs.RefreshRate(ctx)
	assert.NoError(t, err)

	// fresh service, empty cache, dead feed: the snapshot serves the rate
	feed.Fail(xerrors.Errorf("feed offline"))
	cfg := config.DefaultConfig().RateFeed
	fallback := NewRateService(r, log.New(), &cfg, feed)

	rate, err := fallback.LatestRate(ctx)
	assert.NoError(t, err)
	assert.True(t, rate.Equals(types.NewInt(160000000000)))

	// no snapshot either: the feed error surfaces
	bare := NewRateService(testhelper.SetupRepo(t), log.New(), &cfg, feed)
	_, err = bare.LatestRate(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read rate feed")
}

func TestRefreshRate(t *testing.T) {
	ctx := context.Background()
	rs, feed, _ := setupRateService(t, 160000000000)

	rate, err := rs.RefreshRate(ctx)
	assert.NoError(t, err)
	assert.True(t, rate.Equals(types.NewInt(160000000000)))

	feed.SetRate(types.NewInt(170000000000))
	rate, err = rs.RefreshRate(ctx)
	assert.NoError(t, err)
	assert.True(t, rate.Equals(types.NewInt(170000000000)))

	snapshots, err := rs.ListRateSnapshot(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(snapshots))
	assert.True(t, snapshots[0].Rate.Equals(types.NewInt(170000000000)))

	// refresh refills the cache, so reads see the new figure at once
	latest, err := rs.LatestRate(ctx)
	assert.NoError(t, err)
	assert.True(t, latest.Equals(types.NewInt(170000000000)))

	feed.Fail(xerrors.Errorf("feed offline"))
	_, err = rs.RefreshRate(ctx)
	assert.Error(t, err)
}

func TestRateServiceAsFeed(t *testing.T) {
	ctx := context.Background()
	rs, _, _ := setupRateService(t, 160000000000)

	rate, err := rs.LatestAnswer(ctx)
	assert.NoError(t, err)
	assert.True(t, rate.Equals(types.NewInt(160000000000)))
}
