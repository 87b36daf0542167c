package feecontract

import (
	"context"
	"net/http"

	"github.com/filecoin-project/go-jsonrpc"

	"github.com/haven1-network/pricer/types"
	"github.com/haven1-network/pricer/utils"
)

var _ IFeeContract = (*FeeContract)(nil)

type FeeContract struct {
	Internal struct {
		GetFee           func(ctx context.Context) (types.Int, error)
		UpdateFee        func(ctx context.Context) error
		QueryOracle      func(ctx context.Context) (types.Int, error)
		NextResetTime    func(ctx context.Context) (uint64, error)
		SetGraceContract func(ctx context.Context, contract types.Address, enable bool) error
	}
}

func (fc *FeeContract) GetFee(ctx context.Context) (types.Int, error) {
	return fc.Internal.GetFee(ctx)
}

func (fc *FeeContract) UpdateFee(ctx context.Context) error {
	return fc.Internal.UpdateFee(ctx)
}

func (fc *FeeContract) QueryOracle(ctx context.Context) (types.Int, error) {
	return fc.Internal.QueryOracle(ctx)
}

func (fc *FeeContract) NextResetTime(ctx context.Context) (uint64, error) {
	return fc.Internal.NextResetTime(ctx)
}

func (fc *FeeContract) SetGraceContract(ctx context.Context, contract types.Address, enable bool) error {
	return fc.Internal.SetGraceContract(ctx, contract, enable)
}

// NewFeeContractRPC creates a new http jsonrpc client against the fee
// contract host. url may be a multiaddr or a plain http url.
func NewFeeContractRPC(ctx context.Context, url, token string) (IFeeContract, jsonrpc.ClientCloser, error) {
	addr, err := utils.DialArgs(url)
	if err != nil {
		return nil, nil, err
	}

	header := http.Header{}
	if len(token) != 0 {
		header.Set("Authorization", "Bearer "+token)
	}

	var res FeeContract
	closer, err := jsonrpc.NewMergeClient(ctx, addr, "FeeContract",
		[]interface{}{
			&res.Internal,
		},
		header,
	)

	return &res, closer, err
}
