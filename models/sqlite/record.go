package sqlite

import (
	"context"
	"time"

	"github.com/hunjixin/automapper"
	"gorm.io/gorm"

	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

type sqliteRecord struct {
	ID types.UUID `gorm:"column:id;type:varchar(256);primary_key;"`

	Creator types.Address `gorm:"column:creator;type:varchar(256);index;NOT NULL"`
	Content string        `gorm:"column:content;type:varchar(2048);"`
	Paid    types.Int     `gorm:"column:paid;type:varchar(256);"`

	IsDeleted int       `gorm:"column:is_deleted;index;default:-1;NOT NULL"`
	CreatedAt time.Time `gorm:"column:created_at;index;NOT NULL"`
	UpdatedAt time.Time `gorm:"column:updated_at;index;NOT NULL"`
}

func (sqlRecord *sqliteRecord) TableName() string {
	return "records"
}

func fromRecord(record *types.Record) *sqliteRecord {
	return automapper.MustMapper(record, TSqliteRecord).(*sqliteRecord)
}

func record(sr sqliteRecord) *types.Record {
	return automapper.MustMapper(&sr, TRecord).(*types.Record)
}

type sqliteRecordRepo struct {
	*gorm.DB
}

func newSqliteRecordRepo(db *gorm.DB) *sqliteRecordRepo {
	return &sqliteRecordRepo{db}
}

func (s *sqliteRecordRepo) CreateRecord(ctx context.Context, r *types.Record) error {
	return s.Create(fromRecord(r)).Error
}

func (s *sqliteRecordRepo) GetRecord(ctx context.Context, id types.UUID) (*types.Record, error) {
	var r sqliteRecord
	if err := s.Take(&r, "id = ? and is_deleted = ?", id, repo.NotDeleted).Error; err != nil {
		return nil, err
	}

	return record(r), nil
}

func (s *sqliteRecordRepo) HasRecord(ctx context.Context, id types.UUID) (bool, error) {
	var count int64
	if err := s.Model((*sqliteRecord)(nil)).Where("id = ? and is_deleted = ?", id, repo.NotDeleted).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *sqliteRecordRepo) ListRecord(ctx context.Context) ([]*types.Record, error) {
	var srList []sqliteRecord
	if err := s.Find(&srList, "is_deleted = ?", repo.NotDeleted).Error; err != nil {
		return nil, err
	}

	list := make([]*types.Record, 0, len(srList))
	for _, sr := range srList {
		list = append(list, record(sr))
	}

	return list, nil
}

func (s *sqliteRecordRepo) ListRecordByCreator(ctx context.Context, creator types.Address) ([]*types.Record, error) {
	var srList []sqliteRecord
	if err := s.Find(&srList, "creator = ? and is_deleted = ?", creator, repo.NotDeleted).Error; err != nil {
		return nil, err
	}

	list := make([]*types.Record, 0, len(srList))
	for _, sr := range srList {
		list = append(list, record(sr))
	}

	return list, nil
}

func (s *sqliteRecordRepo) DelRecord(ctx context.Context, id types.UUID) error {
	return s.Model((*sqliteRecord)(nil)).Where("id = ? and is_deleted = ?", id, repo.NotDeleted).
		UpdateColumns(map[string]interface{}{"is_deleted": repo.Deleted}).Error
}

var _ repo.RecordRepo = (*sqliteRecordRepo)(nil)
