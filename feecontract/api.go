package feecontract

import (
	"context"

	"github.com/haven1-network/pricer/types"
)

// IFeeContract is the authority on the protocol fee. GetFee returns the
// enforced figure, QueryOracle the oracle-fresh figure without touching
// contract state, UpdateFee refreshes the enforced figure once the reset
// window has elapsed.
type IFeeContract interface {
	GetFee(ctx context.Context) (types.Int, error)
	UpdateFee(ctx context.Context) error
	QueryOracle(ctx context.Context) (types.Int, error)
	NextResetTime(ctx context.Context) (uint64, error)
	SetGraceContract(ctx context.Context, contract types.Address, enable bool) error
}

// Ref binds a fee contract client to the ledger address its fees are paid
// to. The fee base holds one of these for the process lifetime.
type Ref struct {
	IFeeContract
	addr types.Address
}

func NewRef(client IFeeContract, addr types.Address) *Ref {
	return &Ref{IFeeContract: client, addr: addr}
}

func (r *Ref) Address() types.Address {
	return r.addr
}
