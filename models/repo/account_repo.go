package repo

import (
	"context"

	"github.com/haven1-network/pricer/types"
)

// AccountRepo is the native-value ledger. Missing accounts read as zero
// balance, matching empty-account semantics on the ledger host.
type AccountRepo interface {
	SaveAccount(ctx context.Context, account *types.Account) error
	GetAccount(ctx context.Context, addr types.Address) (*types.Account, error)
	HasAccount(ctx context.Context, addr types.Address) (bool, error)
	ListAccount(ctx context.Context) ([]*types.Account, error)
	Balance(ctx context.Context, addr types.Address) (types.Int, error)
	Deposit(ctx context.Context, addr types.Address, amount types.Int) error
	Transfer(ctx context.Context, from, to types.Address, amount types.Int) error
	DelAccount(ctx context.Context, addr types.Address) error
}
