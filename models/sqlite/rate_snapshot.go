package sqlite

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

type sqliteRateSnapshot struct {
	ID types.UUID `gorm:"column:id;type:varchar(256);primary_key;"`

	Rate types.Int `gorm:"column:rate;type:varchar(256);NOT NULL"`

	CreatedAt time.Time `gorm:"column:created_at;index;NOT NULL"`
}

func FromRateSnapshot(snapshot types.RateSnapshot) *sqliteRateSnapshot {
	return &sqliteRateSnapshot{
		ID:        snapshot.ID,
		Rate:      snapshot.Rate,
		CreatedAt: snapshot.CreatedAt,
	}
}

func (srs sqliteRateSnapshot) RateSnapshot() *types.RateSnapshot {
	return &types.RateSnapshot{
		ID:        srs.ID,
		Rate:      srs.Rate,
		CreatedAt: srs.CreatedAt,
	}
}

func (srs sqliteRateSnapshot) TableName() string {
	return "rate_snapshots"
}

var _ repo.RateSnapshotRepo = (*sqliteRateSnapshotRepo)(nil)

type sqliteRateSnapshotRepo struct {
	*gorm.DB
}

func newSqliteRateSnapshotRepo(db *gorm.DB) sqliteRateSnapshotRepo {
	return sqliteRateSnapshotRepo{DB: db}
}

func (s sqliteRateSnapshotRepo) SaveRateSnapshot(ctx context.Context, snapshot *types.RateSnapshot) error {
	return s.DB.Save(FromRateSnapshot(*snapshot)).Error
}

func (s sqliteRateSnapshotRepo) LatestRateSnapshot(ctx context.Context) (*types.RateSnapshot, error) {
	var srs sqliteRateSnapshot
	if err := s.DB.Order("created_at desc").Take(&srs).Error; err != nil {
		return nil, err
	}
	return srs.RateSnapshot(), nil
}

func (s sqliteRateSnapshotRepo) ListRateSnapshot(ctx context.Context, limit int) ([]*types.RateSnapshot, error) {
	var srsList []sqliteRateSnapshot
	if err := s.DB.Order("created_at desc").Limit(limit).Find(&srsList).Error; err != nil {
		return nil, err
	}

	list := make([]*types.RateSnapshot, 0, len(srsList))
	for _, srs := range srsList {
		list = append(list, srs.RateSnapshot())
	}

	return list, nil
}

func (s sqliteRateSnapshotRepo) DelRateSnapshotBefore(ctx context.Context, before time.Time) error {
	return s.DB.Where("created_at < ?", before).Delete(&sqliteRateSnapshot{}).Error
}
