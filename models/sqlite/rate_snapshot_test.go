package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/haven1-network/pricer/types"
)

func TestRateSnapshot(t *testing.T) {
	r := setupRepo(t).RateSnapshotRepo()

	ctx := context.Background()
	snapshot := &types.RateSnapshot{
		ID:        types.NewUUID(),
		Rate:      types.NewInt(160000000000),
		CreatedAt: time.Now(),
	}
	assert.NoError(t, r.SaveRateSnapshot(ctx, snapshot))

	res, err := r.LatestRateSnapshot(ctx)
	assert.NoError(t, err)
	assert.Equal(t, snapshot.ID, res.ID)
	assert.Equal(t, snapshot.Rate, res.Rate)
}
