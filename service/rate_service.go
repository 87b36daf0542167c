package service

import (
	"context"
	"math/big"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opencensus.io/stats"
	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/metrics"
	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/ratefeed"
	"github.com/haven1-network/pricer/types"
)

const latestRateKey = "latest"

// snapshots older than this are pruned on every refresh tick
const snapshotRetention = time.Hour * 24 * 7

// RateService reads the native/USD rate feed, keeps the latest answer in a
// short-lived cache and persists periodic snapshots so quotes survive feed
// outages.
type RateService struct {
	repo repo.Repo
	log  *log.Logger
	cfg  *config.RateFeedConfig

	feed      ratefeed.IRateFeed
	rateCache *cache.Cache
}

func NewRateService(repo repo.Repo, logger *log.Logger, cfg *config.RateFeedConfig, feed ratefeed.IRateFeed) *RateService {
	return &RateService{
		repo:      repo,
		log:       logger,
		cfg:       cfg,
		feed:      feed,
		rateCache: cache.New(time.Duration(cfg.DefaultExpiration)*time.Second, time.Duration(cfg.CleanupInterval)*time.Second),
	}
}

// LatestRate serves the cached answer while fresh, asks the feed otherwise
// and falls back to the last persisted snapshot when the feed is down.
func (rs *RateService) LatestRate(ctx context.Context) (types.Int, error) {
	if v, ok := rs.rateCache.Get(latestRateKey); ok {
		return v.(types.Int), nil
	}

	rate, err := rs.feed.LatestAnswer(ctx)
	if err != nil {
		rs.log.Warnf("read rate feed %v", err)
		snapshot, snapErr := rs.repo.RateSnapshotRepo().LatestRateSnapshot(ctx)
		if snapErr != nil {
			return types.Int{}, xerrors.Errorf("read rate feed: %w", err)
		}
		return snapshot.Rate, nil
	}

	rs.rateCache.SetDefault(latestRateKey, rate)
	return rate, nil
}

// RefreshRate polls the feed once, refills the cache and persists the
// reading as a snapshot.
func (rs *RateService) RefreshRate(ctx context.Context) (types.Int, error) {
	rate, err := rs.feed.LatestAnswer(ctx)
	if err != nil {
		stats.Record(ctx, metrics.RateRefreshFailure.M(1))
		return types.Int{}, xerrors.Errorf("read rate feed: %w", err)
	}

	answer, _ := new(big.Float).SetInt(rate.Int).Float64()
	stats.Record(ctx, metrics.RateAnswer.M(answer))

	rs.rateCache.SetDefault(latestRateKey, rate)
	if err := rs.repo.RateSnapshotRepo().SaveRateSnapshot(ctx, &types.RateSnapshot{
		ID:   types.NewUUID(),
		Rate: rate,
	}); err != nil {
		return types.Int{}, err
	}

	return rate, nil
}

func (rs *RateService) ListRateSnapshot(ctx context.Context, limit int) ([]*types.RateSnapshot, error) {
	return rs.repo.RateSnapshotRepo().ListRateSnapshot(ctx, limit)
}

// LatestAnswer makes the service a drop-in rate source for the oracle, so
// quotes read through the cache instead of hitting the feed every time.
func (rs *RateService) LatestAnswer(ctx context.Context) (types.Int, error) {
	return rs.LatestRate(ctx)
}

func (rs *RateService) refreshRateLoop() {
	go func() {
		ticker := time.NewTicker(rs.cfg.RefreshInterval)
		defer ticker.Stop()

		for range ticker.C {
			ctx := context.TODO()
			if _, err := rs.RefreshRate(ctx); err != nil {
				rs.log.Warnf("refresh rate %v", err)
				continue
			}
			if err := rs.repo.RateSnapshotRepo().DelRateSnapshotBefore(ctx, time.Now().Add(-snapshotRetention)); err != nil {
				rs.log.Warnf("prune rate snapshots %v", err)
			}
		}
	}()
}
