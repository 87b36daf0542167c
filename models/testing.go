package models

import (
	"encoding/json"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/models/sqlite"
	"github.com/haven1-network/pricer/types"
)

func NewRandAddress() types.Address {
	uid, _ := uuid.NewUUID()
	var addr types.Address
	copy(addr[:], uid[:])
	return addr
}

func NewAccounts(count int) []*types.Account {
	accounts := make([]*types.Account, count)
	for i := 0; i < count; i++ {
		accounts[i] = NewAccount()
	}

	return accounts
}

func NewAccount() *types.Account {
	rand.Seed(time.Now().Unix())
	return &types.Account{
		ID:        types.NewUUID(),
		Address:   NewRandAddress(),
		Balance:   types.NewInt(rand.Int63n(1024) + 16),
		IsDeleted: repo.NotDeleted,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func NewRecords(count int) []*types.Record {
	records := make([]*types.Record, count)
	for i := 0; i < count; i++ {
		records[i] = NewRecord()
	}

	return records
}

func NewRecord() *types.Record {
	return &types.Record{
		ID:        types.NewUUID(),
		Creator:   NewRandAddress(),
		Content:   uuid.New().String(),
		Paid:      types.NewInt(rand.Int63n(1024) + 1),
		IsDeleted: repo.NotDeleted,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func NewFeeEvent(caller types.Address) *types.FeeEvent {
	return &types.FeeEvent{
		ID:       types.NewUUID(),
		Caller:   caller,
		Method:   "submitRecord",
		Fee:      types.NewInt(rand.Int63n(1024) + 1),
		Value:    types.NewInt(rand.Int63n(1024) + 1024),
		Residual: types.NewInt(0),
		Refund:   types.NewInt(0),
	}
}

func NewRateSnapshot(rate int64) *types.RateSnapshot {
	return &types.RateSnapshot{
		ID:   types.NewUUID(),
		Rate: types.NewInt(rate),
	}
}

func ObjectToString(i interface{}) string {
	res, _ := json.MarshalIndent(i, "", " ")
	return string(res)
}

func setupRepo(t *testing.T) (repo.Repo, repo.Repo) {
	sqliteRepo, err := sqlite.OpenSqlite(&config.SqliteConfig{Path: filepath.Join(t.TempDir(), "pricer.db"), Debug: true})
	assert.NoError(t, err)

	/*	mysqlRepo, err := mysql.OpenMysql(&config.MySqlConfig{
		ConnectionString: "root:12345678@(192.168.1.177:3306)/pricer?parseTime=true&loc=Local",
		MaxOpenConn:      1,
		MaxIdleConn:      1,
		ConnMaxLifeTime:  time.Second * 1,
		Debug:            true,
	})*/
	assert.NoError(t, err)
	assert.NoError(t, sqliteRepo.AutoMigrate())
	//assert.NoError(t, mysqlRepo.AutoMigrate())
	return sqliteRepo, nil
}
