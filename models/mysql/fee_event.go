package mysql

import (
	"context"
	"time"

	"github.com/hunjixin/automapper"
	"gorm.io/gorm"

	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

type mysqlFeeEvent struct {
	ID types.UUID `gorm:"column:id;type:varchar(256);primary_key;"`

	Caller   types.Address `gorm:"column:caller;type:varchar(256);index;NOT NULL"`
	Method   string        `gorm:"column:method;type:varchar(256);NOT NULL"`
	Fee      types.Int     `gorm:"column:fee;type:varchar(256);NOT NULL"`
	Value    types.Int     `gorm:"column:value;type:varchar(256);NOT NULL"`
	Residual types.Int     `gorm:"column:residual;type:varchar(256);NOT NULL"`
	Refund   types.Int     `gorm:"column:refund;type:varchar(256);NOT NULL"`

	CreatedAt time.Time `gorm:"column:created_at;index;NOT NULL"`
}

func (mysqlFeeEvent *mysqlFeeEvent) TableName() string {
	return "fee_events"
}

func fromFeeEvent(event *types.FeeEvent) *mysqlFeeEvent {
	return automapper.MustMapper(event, TMysqlFeeEvent).(*mysqlFeeEvent)
}

func feeEvent(me mysqlFeeEvent) *types.FeeEvent {
	return automapper.MustMapper(&me, TFeeEvent).(*types.FeeEvent)
}

type mysqlFeeEventRepo struct {
	*gorm.DB
}

func newMysqlFeeEventRepo(db *gorm.DB) *mysqlFeeEventRepo {
	return &mysqlFeeEventRepo{db}
}

func (m *mysqlFeeEventRepo) CreateFeeEvent(ctx context.Context, event *types.FeeEvent) error {
	return m.Create(fromFeeEvent(event)).Error
}

func (m *mysqlFeeEventRepo) ListFeeEvent(ctx context.Context) ([]*types.FeeEvent, error) {
	var meList []mysqlFeeEvent
	if err := m.Find(&meList).Error; err != nil {
		return nil, err
	}

	list := make([]*types.FeeEvent, 0, len(meList))
	for _, me := range meList {
		list = append(list, feeEvent(me))
	}

	return list, nil
}

func (m *mysqlFeeEventRepo) ListFeeEventByCaller(ctx context.Context, caller types.Address) ([]*types.FeeEvent, error) {
	var meList []mysqlFeeEvent
	if err := m.Find(&meList, "caller = ?", caller).Error; err != nil {
		return nil, err
	}

	list := make([]*types.FeeEvent, 0, len(meList))
	for _, me := range meList {
		list = append(list, feeEvent(me))
	}

	return list, nil
}

var _ repo.FeeEventRepo = (*mysqlFeeEventRepo)(nil)
