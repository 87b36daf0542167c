package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

func TestAccount(t *testing.T) {
	sqliteRepo, mysqlRepo := setupRepo(t)

	accountRepoTest := func(t *testing.T, accountRepo repo.AccountRepo) {
		account := NewAccount()
		account2 := NewAccount()
		account3 := NewAccount()

		ctx := context.Background()

		t.Run("SaveAccount", func(t *testing.T) {
			assert.NoError(t, accountRepo.SaveAccount(ctx, account))
			assert.NoError(t, accountRepo.SaveAccount(ctx, account2))
			assert.NoError(t, accountRepo.SaveAccount(ctx, account3))
		})

		t.Run("GetAccount", func(t *testing.T) {
			r, err := accountRepo.GetAccount(ctx, account.Address)
			assert.NoError(t, err)
			assert.Equal(t, account.ID, r.ID)
			assert.Equal(t, account.Balance, r.Balance)

			r2, err2 := accountRepo.GetAccount(ctx, types.ZeroAddress)
			assert.Equal(t, gorm.ErrRecordNotFound, err2)
			assert.Nil(t, r2)
		})

		t.Run("HasAccount", func(t *testing.T) {
			has, err := accountRepo.HasAccount(ctx, account.Address)
			assert.NoError(t, err)
			assert.True(t, has)

			has, err = accountRepo.HasAccount(ctx, NewRandAddress())
			assert.NoError(t, err)
			assert.False(t, has)
		})

		t.Run("ListAccount", func(t *testing.T) {
			rs, err := accountRepo.ListAccount(ctx)
			assert.NoError(t, err)
			assert.LessOrEqual(t, 3, len(rs))
		})

		t.Run("Balance", func(t *testing.T) {
			b, err := accountRepo.Balance(ctx, account.Address)
			assert.NoError(t, err)
			assert.Equal(t, account.Balance, b)

			b, err = accountRepo.Balance(ctx, NewRandAddress())
			assert.NoError(t, err)
			assert.True(t, b.IsZero())
		})

		t.Run("Deposit", func(t *testing.T) {
			assert.NoError(t, accountRepo.Deposit(ctx, account.Address, types.NewInt(100)))
			b, err := accountRepo.Balance(ctx, account.Address)
			assert.NoError(t, err)
			assert.Equal(t, types.Add(account.Balance, types.NewInt(100)), b)

			newAddr := NewRandAddress()
			assert.NoError(t, accountRepo.Deposit(ctx, newAddr, types.NewInt(7)))
			b, err = accountRepo.Balance(ctx, newAddr)
			assert.NoError(t, err)
			assert.Equal(t, types.NewInt(7), b)

			assert.Error(t, accountRepo.Deposit(ctx, account.Address, types.NewInt(-1)))
		})

		t.Run("Transfer", func(t *testing.T) {
			fromBalance, err := accountRepo.Balance(ctx, account.Address)
			assert.NoError(t, err)
			toBalance, err := accountRepo.Balance(ctx, account2.Address)
			assert.NoError(t, err)

			amount := types.NewInt(10)
			assert.NoError(t, accountRepo.Transfer(ctx, account.Address, account2.Address, amount))

			b, err := accountRepo.Balance(ctx, account.Address)
			assert.NoError(t, err)
			assert.Equal(t, types.Sub(fromBalance, amount), b)
			b, err = accountRepo.Balance(ctx, account2.Address)
			assert.NoError(t, err)
			assert.Equal(t, types.Add(toBalance, amount), b)

			assert.Error(t, accountRepo.Transfer(ctx, account.Address, account2.Address, types.NewInt(-1)))
			assert.Error(t, accountRepo.Transfer(ctx, NewRandAddress(), account2.Address, types.NewInt(1)))

			// self transfer leaves the balance alone
			before, err := accountRepo.Balance(ctx, account3.Address)
			assert.NoError(t, err)
			assert.NoError(t, accountRepo.Transfer(ctx, account3.Address, account3.Address, types.NewInt(5)))
			after, err := accountRepo.Balance(ctx, account3.Address)
			assert.NoError(t, err)
			assert.Equal(t, before, after)
		})

		t.Run("DelAccount", func(t *testing.T) {
			assert.NoError(t, accountRepo.DelAccount(ctx, account2.Address))

			r, err := accountRepo.GetAccount(ctx, account2.Address)
			assert.Error(t, err)
			assert.Nil(t, r)

			has, err := accountRepo.HasAccount(ctx, account2.Address)
			assert.NoError(t, err)
			assert.False(t, has)

			b, err := accountRepo.Balance(ctx, account2.Address)
			assert.NoError(t, err)
			assert.True(t, b.IsZero())
		})
	}

	t.Run("TestAccount", func(t *testing.T) {
		t.Run("sqlite", func(t *testing.T) {
			accountRepoTest(t, sqliteRepo.AccountRepo())
		})
		t.Run("mysql", func(t *testing.T) {
			t.SkipNow()
			accountRepoTest(t, mysqlRepo.AccountRepo())
		})
	})
}
