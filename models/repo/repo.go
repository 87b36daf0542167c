package repo

import (
	"gorm.io/gorm"
)

const (
	NotDeleted = -1
	Deleted    = 1
)

type Repo interface {
	GetDb() *gorm.DB
	DbClose() error
	AutoMigrate() error
	Transaction(cb func(txRepo TxRepo) error) error

	AccountRepo() AccountRepo
	RecordRepo() RecordRepo
	FeeEventRepo() FeeEventRepo
	RateSnapshotRepo() RateSnapshotRepo
}

// TxRepo carries the repos bound to one open transaction. Everything
// written through it commits or rolls back together.
type TxRepo interface {
	AccountRepo() AccountRepo
	RecordRepo() RecordRepo
	FeeEventRepo() FeeEventRepo
}
