package sqlite

import (
	"context"
	"time"

	"github.com/hunjixin/automapper"
	"golang.org/x/xerrors"
	"gorm.io/gorm"

	"github.com/haven1-network/pricer/models/repo"
	"github.com/haven1-network/pricer/types"
)

type sqliteAccount struct {
	ID types.UUID `gorm:"column:id;type:varchar(256);primary_key;"`

	Address types.Address `gorm:"column:address;type:varchar(256);index;NOT NULL"`
	Balance types.Int     `gorm:"column:balance;type:varchar(256);NOT NULL"`

	IsDeleted int       `gorm:"column:is_deleted;index;default:-1;NOT NULL"`
	CreatedAt time.Time `gorm:"column:created_at;index;NOT NULL"`
	UpdatedAt time.Time `gorm:"column:updated_at;index;NOT NULL"`
}

func (sqlAccount *sqliteAccount) TableName() string {
	return "accounts"
}

func fromAccount(account *types.Account) *sqliteAccount {
	return automapper.MustMapper(account, TSqliteAccount).(*sqliteAccount)
}

func account(sa sqliteAccount) *types.Account {
	return automapper.MustMapper(&sa, TAccount).(*types.Account)
}

type sqliteAccountRepo struct {
	*gorm.DB
}

func newSqliteAccountRepo(db *gorm.DB) *sqliteAccountRepo {
	return &sqliteAccountRepo{db}
}

func (s *sqliteAccountRepo) SaveAccount(ctx context.Context, a *types.Account) error {
	return s.Save(fromAccount(a)).Error
}

func (s *sqliteAccountRepo) GetAccount(ctx context.Context, addr types.Address) (*types.Account, error) {
	var a sqliteAccount
	if err := s.Take(&a, "address = ? and is_deleted = ?", addr, repo.NotDeleted).Error; err != nil {
		return nil, err
	}

	return account(a), nil
}

func (s *sqliteAccountRepo) HasAccount(ctx context.Context, addr types.Address) (bool, error) {
	var count int64
	if err := s.Model((*sqliteAccount)(nil)).Where("address = ? and is_deleted = ?", addr, repo.NotDeleted).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (s *sqliteAccountRepo) ListAccount(ctx context.Context) ([]*types.Account, error) {
	var saList []sqliteAccount
	if err := s.Find(&saList, "is_deleted = ?", repo.NotDeleted).Error; err != nil {
		return nil, err
	}

	list := make([]*types.Account, 0, len(saList))
	for _, sa := range saList {
		list = append(list, account(sa))
	}

	return list, nil
}

// Balance reads as zero for accounts the ledger has never seen.
func (s *sqliteAccountRepo) Balance(ctx context.Context, addr types.Address) (types.Int, error) {
	a, err := s.GetAccount(ctx, addr)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return types.Zero(), nil
		}
		return types.Int{}, err
	}

	return a.Balance, nil
}

func (s *sqliteAccountRepo) Deposit(ctx context.Context, addr types.Address, amount types.Int) error {
	if amount.LessThan(types.Zero()) {
		return xerrors.Errorf("deposit negative amount %s to %s", amount, addr)
	}

	var a sqliteAccount
	if err := s.Take(&a, "address = ? and is_deleted = ?", addr, repo.NotDeleted).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return s.Save(&sqliteAccount{
				ID:      types.NewUUID(),
				Address: addr,
				Balance: amount.Copy(),
			}).Error
		}
		return err
	}

	a.Balance = types.Add(a.Balance, amount)
	return s.Save(&a).Error
}

func (s *sqliteAccountRepo) Transfer(ctx context.Context, from, to types.Address, amount types.Int) error {
	if amount.LessThan(types.Zero()) {
		return xerrors.Errorf("transfer negative amount %s from %s", amount, from)
	}

	balance, err := s.Balance(ctx, from)
	if err != nil {
		return err
	}
	if balance.LessThan(amount) {
		return xerrors.Errorf("transfer %s from %s: insufficient balance %s", amount, from, balance)
	}
	if from == to || amount.IsZero() {
		return nil
	}

	var a sqliteAccount
	if err := s.Take(&a, "address = ? and is_deleted = ?", from, repo.NotDeleted).Error; err != nil {
		return err
	}
	a.Balance = types.Sub(a.Balance, amount)
	if err := s.Save(&a).Error; err != nil {
		return err
	}

	return s.Deposit(ctx, to, amount)
}

func (s *sqliteAccountRepo) DelAccount(ctx context.Context, addr types.Address) error {
	return s.Model((*sqliteAccount)(nil)).Where("address = ? and is_deleted = ?", addr, repo.NotDeleted).
		UpdateColumns(map[string]interface{}{"is_deleted": repo.Deleted}).Error
}

var _ repo.AccountRepo = (*sqliteAccountRepo)(nil)
