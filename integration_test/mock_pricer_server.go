package integration

import (
	"context"
	"encoding/hex"
	"fmt"
	"net"
	"strings"

	"github.com/filecoin-project/go-jsonrpc"
	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"go.uber.org/fx"

	"github.com/haven1-network/pricer/api"
	"github.com/haven1-network/pricer/api/client"
	"github.com/haven1-network/pricer/api/jwt"
	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/fee"
	"github.com/haven1-network/pricer/feecontract"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/metrics"
	"github.com/haven1-network/pricer/models"
	"github.com/haven1-network/pricer/ratefeed"
	"github.com/haven1-network/pricer/service"
	"github.com/haven1-network/pricer/testhelper"
	"github.com/haven1-network/pricer/types"
)

type pricerServer struct {
	log         *log.Logger
	feeContract *testhelper.SimFeeContract
	rateFeed    *testhelper.SimRateFeed

	token string
	port  string

	app         *fx.App
	appStartErr chan error
}

// mockPricerServer assembles the whole app against simulated external
// services, listening on an OS-picked port.
func mockPricerServer(ctx context.Context, cfg *config.Config) (*pricerServer, error) {
	secret, token, err := jwt.GenSecretAndToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate local auth secret %v", err)
	}
	cfg.JWT.Local.Secret = hex.EncodeToString(secret)
	cfg.JWT.Local.Token = string(token)

	jwtCli, err := jwt.NewJwtClient(&cfg.JWT)
	if err != nil {
		return nil, err
	}

	logger, err := log.SetLogger(&cfg.Log)
	if err != nil {
		return nil, err
	}

	feeContract := testhelper.NewSimFeeContract(types.NewInt(25))
	rateFeed := testhelper.NewSimRateFeed(types.NewInt(100000000))

	contractAddr, err := types.ParseAddress(cfg.FeeContract.Address)
	if err != nil {
		return nil, err
	}

	mAddr, err := ma.NewMultiaddr(cfg.API.Address)
	if err != nil {
		return nil, err
	}

	// Listen on the configured address in order to bind the port number in
	// case it has been configured as zero (i.e. OS-provided)
	apiListener, err := manet.Listen(mAddr)
	if err != nil {
		return nil, err
	}
	lst := manet.NetListener(apiListener)

	provider := fx.Options(
		fx.Supply(cfg, &cfg.DB, &cfg.API, &cfg.JWT, &cfg.Log, &cfg.App,
			&cfg.FeeContract, &cfg.RateFeed, &cfg.Pricing, cfg.Trace, cfg.Metrics),
		fx.Supply(logger),
		fx.Provide(func() jwt.IJwtClient {
			return jwtCli
		}),
		fx.Provide(func() *feecontract.Ref {
			return feecontract.NewRef(feeContract, contractAddr)
		}),
		fx.Provide(func() ratefeed.IRateFeed {
			return rateFeed
		}),

		// db
		fx.Provide(models.SetDataBase),
		fx.Provide(fee.NewFeeModule),
		// service
		service.PricerService(),
		// api
		fx.Provide(api.NewPricerImpl),

		fx.Provide(func() context.Context {
			return ctx
		}),
		fx.Provide(func() net.Listener {
			return lst
		}),
	)

	invoker := fx.Options(
		fx.Invoke(models.AutoMigrate),
		fx.Invoke(service.LogRegisteredServices),
		fx.Invoke(service.StartRateRefresh),
		fx.Invoke(metrics.SetupJaeger),
		fx.Invoke(metrics.SetupMetrics),
	)

	apiOption := fx.Invoke(api.RunAPI)

	app := fx.New(provider, invoker, apiOption)

	return &pricerServer{
		log:         logger,
		feeContract: feeContract,
		rateFeed:    rateFeed,
		token:       string(token),
		port:        strings.Split(lst.Addr().String(), ":")[1],
		app:         app,
		appStartErr: make(chan error),
	}, nil
}

func (ps *pricerServer) start(ctx context.Context) {
	ps.appStartErr <- ps.app.Start(ctx)
}

func (ps *pricerServer) stop(ctx context.Context) error {
	return ps.app.Stop(ctx)
}

func newPricerClient(ctx context.Context, port, token string) (client.IPricer, jsonrpc.ClientCloser, error) {
	return client.NewPricerRPC(ctx, fmt.Sprintf("/ip4/127.0.0.1/tcp/%s", port), token)
}
