package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haven1-network/pricer/filestore"
	"github.com/haven1-network/pricer/models/repo"
)

func setupRepo(t *testing.T) repo.Repo {
	fs := filestore.NewMockFileStore(t.TempDir())
	cfg := fs.Config()
	cfg.DB.Sqlite.Path = fs.SqliteFile()
	sqliteRepo, err := OpenSqlite(&cfg.DB.Sqlite)
	assert.NoError(t, err)
	assert.NoError(t, sqliteRepo.AutoMigrate())

	return sqliteRepo
}
