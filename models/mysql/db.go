package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/models/repo"
)

type Repo struct {
	*gorm.DB
}

func (d Repo) AccountRepo() repo.AccountRepo {
	return newMysqlAccountRepo(d.DB)
}

func (d Repo) RecordRepo() repo.RecordRepo {
	return newMysqlRecordRepo(d.DB)
}

func (d Repo) FeeEventRepo() repo.FeeEventRepo {
	return newMysqlFeeEventRepo(d.DB)
}

func (d Repo) RateSnapshotRepo() repo.RateSnapshotRepo {
	return newMysqlRateSnapshotRepo(d.DB)
}

func (d Repo) AutoMigrate() error {
	err := d.GetDb().AutoMigrate(mysqlAccount{})
	if err != nil {
		return err
	}

	if err := d.GetDb().AutoMigrate(mysqlRecord{}); err != nil {
		return err
	}

	if err := d.GetDb().AutoMigrate(mysqlFeeEvent{}); err != nil {
		return err
	}

	return d.GetDb().AutoMigrate(mysqlRateSnapshot{})
}

func (d Repo) GetDb() *gorm.DB {
	return d.DB
}

func (d Repo) DbClose() error {
	return nil
}

func (d Repo) Transaction(cb func(txRepo repo.TxRepo) error) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		txRepo := &TxMysqlRepo{tx}
		return cb(txRepo)
	})
}

var _ repo.TxRepo = (*TxMysqlRepo)(nil)

type TxMysqlRepo struct {
	*gorm.DB
}

func (t *TxMysqlRepo) AccountRepo() repo.AccountRepo {
	return newMysqlAccountRepo(t.DB)
}

func (t *TxMysqlRepo) RecordRepo() repo.RecordRepo {
	return newMysqlRecordRepo(t.DB)
}

func (t *TxMysqlRepo) FeeEventRepo() repo.FeeEventRepo {
	return newMysqlFeeEventRepo(t.DB)
}

func OpenMysql(cfg *config.MySqlConfig) (repo.Repo, error) {
	db, err := gorm.Open(mysql.Open(cfg.ConnectionString), &gorm.Config{})

	if err != nil {
		return nil, fmt.Errorf("[db connection failed] Database name: %s %w", cfg.ConnectionString, err)
	}

	db.Set("gorm:table_options", "CHARSET=utf8mb4")
	if cfg.Debug {
		db = db.Debug()
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConn)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConn)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifeTime)

	return &Repo{
		db,
	}, nil
}
