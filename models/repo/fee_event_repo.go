package repo

import (
	"context"

	"github.com/haven1-network/pricer/types"
)

type FeeEventRepo interface {
	CreateFeeEvent(ctx context.Context, event *types.FeeEvent) error
	ListFeeEvent(ctx context.Context) ([]*types.FeeEvent, error)
	ListFeeEventByCaller(ctx context.Context, caller types.Address) ([]*types.FeeEvent, error)
}
