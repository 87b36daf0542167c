package mysql

import (
	"context"
	"time"

	"github.com/hunjixin/automapper"
	"golang.org/x/xerrors"
	"gorm.io/gorm"

	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

type mysqlAccount struct {
	ID types.UUID `gorm:"column:id;type:varchar(256);primary_key;"`

	Address types.Address `gorm:"column:address;type:varchar(256);index;NOT NULL"`
	Balance types.Int     `gorm:"column:balance;type:varchar(256);NOT NULL"`

	IsDeleted int       `gorm:"column:is_deleted;index;default:-1;NOT NULL"`
	CreatedAt time.Time `gorm:"column:created_at;index;NOT NULL"`
	UpdatedAt time.Time `gorm:"column:updated_at;index;NOT NULL"`
}

func (mysqlAccount *mysqlAccount) TableName() string {
	return "accounts"
}

func fromAccount(account *types.Account) *mysqlAccount {
	return automapper.MustMapper(account, TMysqlAccount).(*mysqlAccount)
}

func account(ma mysqlAccount) *types.Account {
	return automapper.MustMapper(&ma, TAccount).(*types.Account)
}

type mysqlAccountRepo struct {
	*gorm.DB
}

func newMysqlAccountRepo(db *gorm.DB) *mysqlAccountRepo {
	return &mysqlAccountRepo{db}
}

func (m *mysqlAccountRepo) SaveAccount(ctx context.Context, a *types.Account) error {
	return m.Save(fromAccount(a)).Error
}

func (m *mysqlAccountRepo) GetAccount(ctx context.Context, addr types.Address) (*types.Account, error) {
	var a mysqlAccount
	if err := m.Take(&a, "address = ? and is_deleted = ?", addr, repo.NotDeleted).Error; err != nil {
		return nil, err
	}

	return account(a), nil
}

func (m *mysqlAccountRepo) HasAccount(ctx context.Context, addr types.Address) (bool, error) {
	var count int64
	if err := m.Model((*mysqlAccount)(nil)).Where("address = ? and is_deleted = ?", addr, repo.NotDeleted).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *mysqlAccountRepo) ListAccount(ctx context.Context) ([]*types.Account, error) {
	var maList []mysqlAccount
	if err := m.Find(&maList, "is_deleted = ?", repo.NotDeleted).Error; err != nil {
		return nil, err
	}

	list := make([]*types.Account, 0, len(maList))
	for _, ma := range maList {
		list = append(list, account(ma))
	}

	return list, nil
}

// Balance reads as zero for accounts the ledger has never seen.
func (m *mysqlAccountRepo) Balance(ctx context.Context, addr types.Address) (types.Int, error) {
	a, err := m.GetAccount(ctx, addr)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return types.Zero(), nil
		}
		return types.Int{}, err
	}

	return a.Balance, nil
}

func (m *mysqlAccountRepo) Deposit(ctx context.Context, addr types.Address, amount types.Int) error {
	if amount.LessThan(types.Zero()) {
		return xerrors.Errorf("deposit negative amount %s to %s", amount, addr)
	}

	var a mysqlAccount
	if err := m.Take(&a, "address = ? and is_deleted = ?", addr, repo.NotDeleted).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return m.Save(&mysqlAccount{
				ID:      types.NewUUID(),
				Address: addr,
				Balance: amount.Copy(),
			}).Error
		}
		return err
	}

	a.Balance = types.Add(a.Balance, amount)
	return m.Save(&a).Error
}

func (m *mysqlAccountRepo) Transfer(ctx context.Context, from, to types.Address, amount types.Int) error {
	if amount.LessThan(types.Zero()) {
		return xerrors.Errorf("transfer negative amount %s from %s", amount, from)
	}

	balance, err := m.Balance(ctx, from)
	if err != nil {
		return err
	}
	if balance.LessThan(amount) {
		return xerrors.Errorf("transfer %s from %s: insufficient balance %s", amount, from, balance)
	}
	if from == to || amount.IsZero() {
		return nil
	}

	var a mysqlAccount
	if err := m.Take(&a, "address = ? and is_deleted = ?", from, repo.NotDeleted).Error; err != nil {
		return err
	}
	a.Balance = types.Sub(a.Balance, amount)
	if err := m.Save(&a).Error; err != nil {
		return err
	}

	return m.Deposit(ctx, to, amount)
}

func (m *mysqlAccountRepo) DelAccount(ctx context.Context, addr types.Address) error {
	return m.Model((*mysqlAccount)(nil)).Where("address = ? and is_deleted = ?", addr, repo.NotDeleted).
		UpdateColumns(map[string]interface{}{"is_deleted": repo.Deleted}).Error
}

var _ repo.AccountRepo = (*mysqlAccountRepo)(nil)
