package models

import (
	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/models/mysql"
	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/models/sqlite"
)

func SetDataBase(cfg *config.DbConfig) (repo.Repo, error) {
	switch cfg.Type {
	case "sqlite":
		return sqlite.OpenSqlite(&cfg.Sqlite)
	case "mysql":
		return mysql.OpenMysql(&cfg.MySql)
	default:
		return nil, xerrors.Errorf("unsupport db type,(%s, %s)", "sqlite", "mysql")
	}
}

func AutoMigrate(repo repo.Repo) error {
	return repo.AutoMigrate()
}
