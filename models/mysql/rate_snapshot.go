package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

type mysqlRateSnapshot struct {
	ID types.UUID `gorm:"column:id;type:varchar(256);primary_key;"`

	Rate types.Int `gorm:"column:rate;type:varchar(256);NOT NULL"`

	CreatedAt time.Time `gorm:"column:created_at;index;NOT NULL"`
}

func FromRateSnapshot(snapshot types.RateSnapshot) *mysqlRateSnapshot {
	return &mysqlRateSnapshot{
		ID:        snapshot.ID,
		Rate:      snapshot.Rate,
		CreatedAt: snapshot.CreatedAt,
	}
}

func (mrs mysqlRateSnapshot) RateSnapshot() *types.RateSnapshot {
	return &types.RateSnapshot{
		ID:        mrs.ID,
		Rate:      mrs.Rate,
		CreatedAt: mrs.CreatedAt,
	}
}

func (mrs mysqlRateSnapshot) TableName() string {
	return "rate_snapshots"
}

var _ repo.RateSnapshotRepo = (*mysqlRateSnapshotRepo)(nil)

type mysqlRateSnapshotRepo struct {
	*gorm.DB
}

func newMysqlRateSnapshotRepo(db *gorm.DB) mysqlRateSnapshotRepo {
	return mysqlRateSnapshotRepo{DB: db}
}

func (m mysqlRateSnapshotRepo) SaveRateSnapshot(ctx context.Context, snapshot *types.RateSnapshot) error {
	return m.DB.Save(FromRateSnapshot(*snapshot)).Error
}

func (m mysqlRateSnapshotRepo) LatestRateSnapshot(ctx context.Context) (*types.RateSnapshot, error) {
	var mrs mysqlRateSnapshot
	if err := m.DB.Order("created_at desc").Take(&mrs).Error; err != nil {
		return nil, err
	}
	return mrs.RateSnapshot(), nil
}

func (m mysqlRateSnapshotRepo) ListRateSnapshot(ctx context.Context, limit int) ([]*types.RateSnapshot, error) {
	var mrsList []mysqlRateSnapshot
	if err := m.DB.Order("created_at desc").Limit(limit).Find(&mrsList).Error; err != nil {
		return nil, err
	}

	list := make([]*types.RateSnapshot, 0, len(mrsList))
	for _, mrs := range mrsList {
		list = append(list, mrs.RateSnapshot())
	}

	return list, nil
}

func (m mysqlRateSnapshotRepo) DelRateSnapshotBefore(ctx context.Context, before time.Time) error {
	return m.DB.Where("created_at < ?", before).Delete(&mysqlRateSnapshot{}).Error
}
