package testhelper

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/models/sqlite"
	"github.com/haven1-network/pricer/types"
)

func SetupRepo(t *testing.T) repo.Repo {
	sqliteRepo, err := sqlite.OpenSqlite(&config.SqliteConfig{Path: filepath.Join(t.TempDir(), "pricer.db")})
	assert.NoError(t, err)
	assert.NoError(t, sqliteRepo.AutoMigrate())

	return sqliteRepo
}

func RandAddress() types.Address {
	uid, _ := uuid.NewUUID()
	var addr types.Address
	copy(addr[:], uid[:])
	return addr
}
