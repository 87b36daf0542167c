package repo

import (
	"context"
	"time"

	"github.com/haven1-network/pricer/types"
)

type RateSnapshotRepo interface {
	SaveRateSnapshot(ctx context.Context, snapshot *types.RateSnapshot) error
	LatestRateSnapshot(ctx context.Context) (*types.RateSnapshot, error)
	ListRateSnapshot(ctx context.Context, limit int) ([]*types.RateSnapshot, error)
	DelRateSnapshotBefore(ctx context.Context, before time.Time) error
}
