package sqlite

import (
	"golang.org/x/xerrors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/models/repo"
)

type SqlLiteRepo struct {
	*gorm.DB
}

func (d SqlLiteRepo) AccountRepo() repo.AccountRepo {
	return newSqliteAccountRepo(d.DB)
}

func (d SqlLiteRepo) RecordRepo() repo.RecordRepo {
	return newSqliteRecordRepo(d.DB)
}

func (d SqlLiteRepo) FeeEventRepo() repo.FeeEventRepo {
	return newSqliteFeeEventRepo(d.DB)
}

func (d SqlLiteRepo) RateSnapshotRepo() repo.RateSnapshotRepo {
	return newSqliteRateSnapshotRepo(d.DB)
}

func (d SqlLiteRepo) AutoMigrate() error {
	err := d.GetDb().AutoMigrate(sqliteAccount{})
	if err != nil {
		return err
	}

	if err := d.GetDb().AutoMigrate(sqliteRecord{}); err != nil {
		return err
	}

	if err := d.GetDb().AutoMigrate(sqliteFeeEvent{}); err != nil {
		return err
	}

	return d.GetDb().AutoMigrate(sqliteRateSnapshot{})
}

func (d SqlLiteRepo) GetDb() *gorm.DB {
	return d.DB
}

func (d SqlLiteRepo) Transaction(cb func(txRepo repo.TxRepo) error) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		txRepo := &TxSqlliteRepo{tx}
		return cb(txRepo)
	})
}

var _ repo.TxRepo = (*TxSqlliteRepo)(nil)

type TxSqlliteRepo struct {
	*gorm.DB
}

func (t *TxSqlliteRepo) AccountRepo() repo.AccountRepo {
	return newSqliteAccountRepo(t.DB)
}

func (t *TxSqlliteRepo) RecordRepo() repo.RecordRepo {
	return newSqliteRecordRepo(t.DB)
}

func (t *TxSqlliteRepo) FeeEventRepo() repo.FeeEventRepo {
	return newSqliteFeeEventRepo(t.DB)
}

func (d SqlLiteRepo) DbClose() error {
	return nil
}

func OpenSqlite(cfg *config.SqliteConfig) (repo.Repo, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path+"?cache=shared&_journal_mode=wal&sync=normal"), &gorm.Config{})
	if err != nil {
		return nil, xerrors.Errorf("fail to connect sqlite: %s %w", cfg.Path, err)
	}

	if cfg.Debug {
		db = db.Debug()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return &SqlLiteRepo{
		db,
	}, nil
}
