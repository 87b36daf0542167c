package repo

import (
	"context"

	"github.com/haven1-network/pricer/types"
)

type RecordRepo interface {
	CreateRecord(ctx context.Context, record *types.Record) error
	GetRecord(ctx context.Context, id types.UUID) (*types.Record, error)
	HasRecord(ctx context.Context, id types.UUID) (bool, error)
	ListRecord(ctx context.Context) ([]*types.Record, error)
	ListRecordByCreator(ctx context.Context, creator types.Address) ([]*types.Record, error)
	DelRecord(ctx context.Context, id types.UUID) error
}
