package client

import (
	"context"
	"net/http"

	"github.com/filecoin-project/go-jsonrpc"

	"github.com/haven1-network/pricer/utils"
)

// NewPricerRPC creates a new http jsonrpc client. addr may be a multiaddr
// or a plain http url.
func NewPricerRPC(ctx context.Context, addr, token string) (IPricer, jsonrpc.ClientCloser, error) {
	url, err := utils.DialArgs(addr)
	if err != nil {
		return nil, nil, err
	}

	header := http.Header{}
	if len(token) > 0 {
		header.Set("Authorization", "Bearer "+token)
	}

	var res Pricer
	closer, err := jsonrpc.NewMergeClient(ctx, url, "Pricer",
		[]interface{}{
			&res.Internal,
		},
		header,
	)

	return &res, closer, err
}
