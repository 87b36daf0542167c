package cli

import (
	"github.com/filecoin-project/go-jsonrpc"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v2"

	"github.com/haven1-network/pricer/api/client"
	"github.com/haven1-network/pricer/filestore"
)

func getAPI(ctx *cli.Context) (client.IPricer, jsonrpc.ClientCloser, error) {
	repoPath, err := homedir.Expand(ctx.String("repo"))
	if err != nil {
		return nil, nil, err
	}
	fsRepo, err := filestore.NewFSRepo(repoPath)
	if err != nil {
		return nil, nil, err
	}
	cfg := fsRepo.Config()

	return client.NewPricerRPC(ctx.Context, cfg.API.Address, cfg.JWT.Local.Token)
}
