package models

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/haven1-network/pricer/models/repo"
)

func TestRateSnapshot(t *testing.T) {
	sqliteRepo, mysqlRepo := setupRepo(t)

	rateSnapshotRepoTest := func(t *testing.T, rateSnapshotRepo repo.RateSnapshotRepo) {
		now := time.Now()
		snapshot := NewRateSnapshot(158000000000)
		snapshot.CreatedAt = now.Add(-time.Hour * 2)
		snapshot2 := NewRateSnapshot(159000000000)
		snapshot2.CreatedAt = now.Add(-time.Hour)
		snapshot3 := NewRateSnapshot(160000000000)
		snapshot3.CreatedAt = now

		ctx := context.Background()

		t.Run("SaveRateSnapshot", func(t *testing.T) {
			assert.NoError(t, rateSnapshotRepo.SaveRateSnapshot(ctx, snapshot))
			assert.NoError(t, rateSnapshotRepo.SaveRateSnapshot(ctx, snapshot2))
			assert.NoError(t, rateSnapshotRepo.SaveRateSnapshot(ctx, snapshot3))
		})

		t.Run("LatestRateSnapshot", func(t *testing.T) {
			r, err := rateSnapshotRepo.LatestRateSnapshot(ctx)
			assert.NoError(t, err)
			assert.Equal(t, snapshot3.ID, r.ID)
			assert.Equal(t, snapshot3.Rate, r.Rate)
		})

		t.Run("ListRateSnapshot", func(t *testing.T) {
			rs, err := rateSnapshotRepo.ListRateSnapshot(ctx, 2)
			assert.NoError(t, err)
			assert.Equal(t, 2, len(rs))
			assert.Equal(t, snapshot3.ID, rs[0].ID)
			assert.Equal(t, snapshot2.ID, rs[1].ID)
		})

		t.Run("DelRateSnapshotBefore", func(t *testing.T) {
			assert.NoError(t, rateSnapshotRepo.DelRateSnapshotBefore(ctx, now.Add(-time.Minute*30)))

			rs, err := rateSnapshotRepo.ListRateSnapshot(ctx, 10)
			assert.NoError(t, err)
			assert.Equal(t, 1, len(rs))
			assert.Equal(t, snapshot3.ID, rs[0].ID)
		})
	}

	t.Run("TestRateSnapshot", func(t *testing.T) {
		t.Run("sqlite", func(t *testing.T) {
			rateSnapshotRepoTest(t, sqliteRepo.RateSnapshotRepo())
		})
		t.Run("mysql", func(t *testing.T) {
			t.SkipNow()
			rateSnapshotRepoTest(t, mysqlRepo.RateSnapshotRepo())
		})
	})
}
