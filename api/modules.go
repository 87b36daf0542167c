package api

import (
	"context"
	"net"
	"net/http"

	"github.com/filecoin-project/go-jsonrpc"
	"go.opencensus.io/stats"
	"go.uber.org/fx"

	"github.com/haven1-network/pricer/api/jwt"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/metrics"
)

func RunAPI(lc fx.Lifecycle, jwtCli jwt.IJwtClient, lst net.Listener, logger *log.Logger, impl *PricerImpl) error {
	srv := jsonrpc.NewServer()
	srv.Register("Pricer", impl)

	handler := http.NewServeMux()
	handler.Handle("/rpc/v0", srv)
	authMux := jwt.NewAuthMux(jwtCli, logger, handler)
	authMux.TrustHandle("/debug/pprof/", http.DefaultServeMux)

	apiserv := &http.Server{
		Handler: authMux,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Start rpcserver ", lst.Addr())
				if err := apiserv.Serve(lst); err != nil {
					logger.Errorf("Start rpcserver failed: %v", err)
				}
			}()
			stats.Record(ctx, metrics.ApiState.M(1))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stats.Record(ctx, metrics.ApiState.M(0))
			return lst.Close()
		},
	})
	return nil
}
