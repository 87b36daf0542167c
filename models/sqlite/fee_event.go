package sqlite

import (
	"context"
	"time"

	"github.com/hunjixin/automapper"
	"gorm.io/gorm"

	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

type sqliteFeeEvent struct {
	ID types.UUID `gorm:"column:id;type:varchar(256);primary_key;"`

	Caller   types.Address `gorm:"column:caller;type:varchar(256);index;NOT NULL"`
	Method   string        `gorm:"column:method;type:varchar(256);NOT NULL"`
	Fee      types.Int     `gorm:"column:fee;type:varchar(256);NOT NULL"`
	Value    types.Int     `gorm:"column:value;type:varchar(256);NOT NULL"`
	Residual types.Int     `gorm:"column:residual;type:varchar(256);NOT NULL"`
	Refund   types.Int     `gorm:"column:refund;type:varchar(256);NOT NULL"`

	CreatedAt time.Time `gorm:"column:created_at;index;NOT NULL"`
}

func (sqlFeeEvent *sqliteFeeEvent) TableName() string {
	return "fee_events"
}

func fromFeeEvent(event *types.FeeEvent) *sqliteFeeEvent {
	return automapper.MustMapper(event, TSqliteFeeEvent).(*sqliteFeeEvent)
}

func feeEvent(se sqliteFeeEvent) *types.FeeEvent {
	return automapper.MustMapper(&se, TFeeEvent).(*types.FeeEvent)
}

type sqliteFeeEventRepo struct {
	*gorm.DB
}

func newSqliteFeeEventRepo(db *gorm.DB) *sqliteFeeEventRepo {
	return &sqliteFeeEventRepo{db}
}

func (s *sqliteFeeEventRepo) CreateFeeEvent(ctx context.Context, event *types.FeeEvent) error {
	return s.Create(fromFeeEvent(event)).Error
}

func (s *sqliteFeeEventRepo) ListFeeEvent(ctx context.Context) ([]*types.FeeEvent, error) {
	var seList []sqliteFeeEvent
	if err := s.Find(&seList).Error; err != nil {
		return nil, err
	}

	list := make([]*types.FeeEvent, 0, len(seList))
	for _, se := range seList {
		list = append(list, feeEvent(se))
	}

	return list, nil
}

func (s *sqliteFeeEventRepo) ListFeeEventByCaller(ctx context.Context, caller types.Address) ([]*types.FeeEvent, error) {
	var seList []sqliteFeeEvent
	if err := s.Find(&seList, "caller = ?", caller).Error; err != nil {
		return nil, err
	}

	list := make([]*types.FeeEvent, 0, len(seList))
	for _, se := range seList {
		list = append(list, feeEvent(se))
	}

	return list, nil
}

var _ repo.FeeEventRepo = (*sqliteFeeEventRepo)(nil)
