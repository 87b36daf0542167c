package mysql

import (
	"context"
	"time"

	"github.com/hunjixin/automapper"
	"gorm.io/gorm"

	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

type mysqlRecord struct {
	ID types.UUID `gorm:"column:id;type:varchar(256);primary_key;"`

	Creator types.Address `gorm:"column:creator;type:varchar(256);index;NOT NULL"`
	Content string        `gorm:"column:content;type:varchar(2048);"`
	Paid    types.Int     `gorm:"column:paid;type:varchar(256);"`

	IsDeleted int       `gorm:"column:is_deleted;index;default:-1;NOT NULL"`
	CreatedAt time.Time `gorm:"column:created_at;index;NOT NULL"`
	UpdatedAt time.Time `gorm:"column:updated_at;index;NOT NULL"`
}

func (mysqlRecord *mysqlRecord) TableName() string {
	return "records"
}

func fromRecord(record *types.Record) *mysqlRecord {
	return automapper.MustMapper(record, TMysqlRecord).(*mysqlRecord)
}

func record(mr mysqlRecord) *types.Record {
	return automapper.MustMapper(&mr, TRecord).(*types.Record)
}

type mysqlRecordRepo struct {
	*gorm.DB
}

func newMysqlRecordRepo(db *gorm.DB) *mysqlRecordRepo {
	return &mysqlRecordRepo{db}
}

func (m *mysqlRecordRepo) CreateRecord(ctx context.Context, r *types.Record) error {
	return m.Create(fromRecord(r)).Error
}

func (m *mysqlRecordRepo) GetRecord(ctx context.Context, id types.UUID) (*types.Record, error) {
	var r mysqlRecord
	if err := m.Take(&r, "id = ? and is_deleted = ?", id, repo.NotDeleted).Error; err != nil {
		return nil, err
	}

	return record(r), nil
}

func (m *mysqlRecordRepo) HasRecord(ctx context.Context, id types.UUID) (bool, error) {
	var count int64
	if err := m.Model((*mysqlRecord)(nil)).Where("id = ? and is_deleted = ?", id, repo.NotDeleted).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *mysqlRecordRepo) ListRecord(ctx context.Context) ([]*types.Record, error) {
	var mrList []mysqlRecord
	if err := m.Find(&mrList, "is_deleted = ?", repo.NotDeleted).Error; err != nil {
		return nil, err
	}

	list := make([]*types.Record, 0, len(mrList))
	for _, mr := range mrList {
		list = append(list, record(mr))
	}

	return list, nil
}

func (m *mysqlRecordRepo) ListRecordByCreator(ctx context.Context, creator types.Address) ([]*types.Record, error) {
	var mrList []mysqlRecord
	if err := m.Find(&mrList, "creator = ? and is_deleted = ?", creator, repo.NotDeleted).Error; err != nil {
		return nil, err
	}

	list := make([]*types.Record, 0, len(mrList))
	for _, mr := range mrList {
		list = append(list, record(mr))
	}

	return list, nil
}

func (m *mysqlRecordRepo) DelRecord(ctx context.Context, id types.UUID) error {
	return m.Model((*mysqlRecord)(nil)).Where("id = ? and is_deleted = ?", id, repo.NotDeleted).
		UpdateColumns(map[string]interface{}{"is_deleted": repo.Deleted}).Error
}

var _ repo.RecordRepo = (*mysqlRecordRepo)(nil)
