package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	_ "net/http/pprof"
	"os"

	"github.com/mitchellh/go-homedir"
	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"github.com/haven1-network/pricer/api"
	"github.com/haven1-network/pricer/api/jwt"
	ccli "github.com/haven1-network/pricer/cli"
	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/fee"
	"github.com/haven1-network/pricer/feecontract"
	"github.com/haven1-network/pricer/filestore"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/metrics"
	"github.com/haven1-network/pricer/models"
	"github.com/haven1-network/pricer/ratefeed"
	"github.com/haven1-network/pricer/service"
	"github.com/haven1-network/pricer/types"
	"github.com/haven1-network/pricer/version"
)

func main() {
	app := &cli.App{
		Name:  "pricer",
		Usage: "fee guarded pricing service for name registrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "repo",
				Value: "~/.pricer",
			},
		},
		Commands: []*cli.Command{
			ccli.QuoteCmds,
			ccli.RecordCmds,
			ccli.FeeCmds,
			ccli.RateCmds,
			ccli.LogCmds,
			ccli.VersionCmd,
			runCmd,
		},
	}

	app.Version = version.Version
	app.Setup()
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		return
	}
}

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "run pricer",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "auth-url",
			Usage: "url for auth server",
		},

		// fee contract
		&cli.StringFlag{
			Name:  "fee-contract-url",
			Usage: "url for the fee contract service",
		},
		&cli.StringFlag{
			Name:  "fee-contract-token",
			Usage: "token auth for the fee contract service",
		},
		&cli.StringFlag{
			Name:  "fee-contract-address",
			Usage: "ledger address the fee is paid to",
		},

		// rate feed
		&cli.StringFlag{
			Name:  "rate-feed-url",
			Usage: "url for the native/USD rate feed",
		},
		&cli.StringFlag{
			Name:  "rate-feed-token",
			Usage: "token auth for the rate feed",
		},

		&cli.StringFlag{
			Name:  "app-address",
			Usage: "ledger address the application charges fees against",
		},

		// database
		&cli.StringFlag{
			Name:  "db-type",
			Usage: "which db to use. sqlite/mysql",
		},
		&cli.StringFlag{
			Name:  "mysql-dsn",
			Usage: "mysql connection string",
		},
	},
	Action: runAction,
}

func runAction(ctx *cli.Context) error {
	var fsRepo filestore.FSRepo
	cfg := config.DefaultConfig()

	repoPath, err := homedir.Expand(ctx.String("repo"))
	if err != nil {
		return err
	}
	hasFSRepo, err := hasFSRepo(repoPath)
	if err != nil {
		return err
	}
	if hasFSRepo {
		fsRepo, err = filestore.NewFSRepo(repoPath)
		if err != nil {
			return err
		}
		cfg = fsRepo.Config()
	}

	if err = updateFlag(cfg, ctx); err != nil {
		return err
	}

	freshSecret := false
	if len(cfg.JWT.Local.Secret) == 0 {
		secret, token, err := jwt.GenSecretAndToken()
		if err != nil {
			return fmt.Errorf("failed to generate local auth secret %v", err)
		}
		cfg.JWT.Local.Secret = hex.EncodeToString(secret)
		cfg.JWT.Local.Token = string(token)
		freshSecret = true
	}

	if !hasFSRepo {
		fsRepo, err = filestore.InitFSRepo(repoPath, cfg)
		if err != nil {
			return err
		}
	} else if freshSecret {
		if err := fsRepo.ReplaceConfig(cfg); err != nil {
			return err
		}
	}
	if err := fsRepo.SaveToken([]byte(cfg.JWT.Local.Token)); err != nil {
		return err
	}

	if cfg.DB.Type == "sqlite" {
		cfg.DB.Sqlite.Path = fsRepo.SqliteFile()
	}

	log, err := log.SetLogger(&cfg.Log)
	if err != nil {
		return err
	}

	log.Infof("fee contract info url: %s, address: %s\n", cfg.FeeContract.Url, cfg.FeeContract.Address)
	log.Infof("rate feed info url: %s\n", cfg.RateFeed.Url)
	log.Infof("auth info url: %s\n", cfg.JWT.AuthURL)

	jwtCli, err := jwt.NewJwtClient(&cfg.JWT)
	if err != nil {
		return err
	}

	feeContractCli, feeContractCloser, err := feecontract.NewFeeContractRPC(ctx.Context, cfg.FeeContract.Url, cfg.FeeContract.Token)
	if err != nil {
		return fmt.Errorf("connect to fee contract failed %v", err)
	}
	defer feeContractCloser()

	contractAddr, err := types.ParseAddress(cfg.FeeContract.Address)
	if err != nil {
		return err
	}

	rateFeedCli, rateFeedCloser, err := ratefeed.NewRateFeedRPC(ctx.Context, cfg.RateFeed.Url, cfg.RateFeed.Token)
	if err != nil {
		return fmt.Errorf("connect to rate feed failed %v", err)
	}
	defer rateFeedCloser()

	mAddr, err := ma.NewMultiaddr(cfg.API.Address)
	if err != nil {
		return err
	}

	// Listen on the configured address in order to bind the port number in case it has
	// been configured as zero (i.e. OS-provided)
	apiListener, err := manet.Listen(mAddr)
	if err != nil {
		return err
	}
	lst := manet.NetListener(apiListener)

	provider := fx.Options(
		fx.Logger(fxLogger{log}),
		fx.Supply(cfg, &cfg.DB, &cfg.API, &cfg.JWT, &cfg.Log, &cfg.App,
			&cfg.FeeContract, &cfg.RateFeed, &cfg.Pricing, cfg.Trace, cfg.Metrics),
		fx.Supply(log),
		fx.Provide(func() jwt.IJwtClient {
			return jwtCli
		}),
		fx.Provide(func() *feecontract.Ref {
			return feecontract.NewRef(feeContractCli, contractAddr)
		}),
		fx.Provide(func() ratefeed.IRateFeed {
			return rateFeedCli
		}),
		fx.Provide(func() filestore.FSRepo {
			return fsRepo
		}),

		// db
		fx.Provide(models.SetDataBase),
		fx.Provide(fee.NewFeeModule),
		// service
		service.PricerService(),
		// api
		fx.Provide(api.NewPricerImpl),

		fx.Provide(func() context.Context {
			return ctx.Context
		}),
		fx.Provide(func() net.Listener {
			return lst
		}),
	)

	invoker := fx.Options(
		// invoke
		fx.Invoke(models.AutoMigrate),
		fx.Invoke(service.LogRegisteredServices),
		fx.Invoke(service.StartRateRefresh),
		fx.Invoke(metrics.SetupJaeger),
		fx.Invoke(metrics.SetupMetrics),
	)

	apiOption := fx.Invoke(api.RunAPI)

	app := fx.New(provider, invoker, apiOption)
	if err := app.Start(ctx.Context); err != nil {
		return fmt.Errorf("starting app: %w", err)
	}

	shutdownChan := make(chan struct{})
	// wait for exit to complete
	finishCh := make(chan struct{})
	go func() {
		<-shutdownChan

		log.Warn("received shutdown")

		log.Warn("Shutting down...")
		if err := app.Stop(ctx.Context); err != nil {
			log.Errorf("graceful shutting down failed: %s", err)
		}
		log.Info("Graceful shutdown successful")

		close(finishCh)
	}()

	<-app.Done()

	shutdownChan <- struct{}{}

	<-finishCh

	return nil
}

func updateFlag(cfg *config.Config, ctx *cli.Context) error {
	if ctx.IsSet("auth-url") {
		cfg.JWT.AuthURL = ctx.String("auth-url")
	}

	if ctx.IsSet("fee-contract-url") {
		cfg.FeeContract.Url = ctx.String("fee-contract-url")
	}

	if ctx.IsSet("fee-contract-token") {
		cfg.FeeContract.Token = ctx.String("fee-contract-token")
	}

	if ctx.IsSet("fee-contract-address") {
		cfg.FeeContract.Address = ctx.String("fee-contract-address")
	}

	if ctx.IsSet("rate-feed-url") {
		cfg.RateFeed.Url = ctx.String("rate-feed-url")
	}

	if ctx.IsSet("rate-feed-token") {
		cfg.RateFeed.Token = ctx.String("rate-feed-token")
	}

	if ctx.IsSet("app-address") {
		cfg.App.Address = ctx.String("app-address")
	}

	if ctx.IsSet("db-type") {
		cfg.DB.Type = ctx.String("db-type")
		switch cfg.DB.Type {
		case "sqlite":
		case "mysql":
			if ctx.IsSet("mysql-dsn") {
				cfg.DB.MySql.ConnectionString = ctx.String("mysql-dsn")
			}
		default:
			return fmt.Errorf("unexpected db type %s", cfg.DB.Type)
		}
	}
	return nil
}

type fxLogger struct {
	log *log.Logger
}

func (l fxLogger) Printf(str string, args ...interface{}) {
	l.log.Infof(str, args...)
}

func hasFSRepo(repoPath string) (bool, error) {
	fi, err := os.Stat(repoPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !fi.IsDir() {
		return false, fmt.Errorf("%s is not a folder", repoPath)
	}

	return true, nil
}
