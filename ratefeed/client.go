package ratefeed

import (
	"context"
	"net/http"

	"github.com/filecoin-project/go-jsonrpc"

	"github.com/haven1-network/pricer/types"
	"github.com/haven1-network/pricer/utils"
)

var _ IRateFeed = (*RateFeed)(nil)

type RateFeed struct {
	Internal struct {
		LatestAnswer func(ctx context.Context) (types.Int, error)
	}
}

func (rf *RateFeed) LatestAnswer(ctx context.Context) (types.Int, error) {
	return rf.Internal.LatestAnswer(ctx)
}

// NewRateFeedRPC creates a new http jsonrpc client against the rate feed
// host. url may be a multiaddr or a plain http url.
func NewRateFeedRPC(ctx context.Context, url, token string) (IRateFeed, jsonrpc.ClientCloser, error) {
	addr, err := utils.DialArgs(url)
	if err != nil {
		return nil, nil, err
	}

	header := http.Header{}
	if len(token) != 0 {
		header.Set("Authorization", "Bearer "+token)
	}

	var res RateFeed
	closer, err := jsonrpc.NewMergeClient(ctx, addr, "RateFeed",
		[]interface{}{
			&res.Internal,
		},
		header,
	)

	return &res, closer, err
}
