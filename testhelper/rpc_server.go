package testhelper

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/filecoin-project/go-jsonrpc"
	ma "github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
)

type RPCServer struct {
	Stop func(ctx context.Context) error

	Addr string
	Port string
}

// MockRPCServer serves impl under the given jsonrpc namespace on a random
// local port. Addr carries the bound multiaddr ready for dialing.
func MockRPCServer(t *testing.T, namespace string, impl interface{}) (*RPCServer, error) {
	mAddr, err := ma.NewMultiaddr("/ip4/127.0.0.1/tcp/0")
	if err != nil {
		return nil, err
	}
	apiListener, err := manet.Listen(mAddr)
	if err != nil {
		return nil, err
	}
	lst := manet.NetListener(apiListener)

	srv := jsonrpc.NewServer()
	srv.Register(namespace, impl)
	handler := http.NewServeMux()
	handler.Handle("/rpc/v0", srv)

	apiserv := &http.Server{
		Handler: handler,
	}

	go func() {
		t.Logf("start %s rpcserver: %v", namespace, lst.Addr())
		if err := apiserv.Serve(lst); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Errorf("start %s rpcserver failed: %v", namespace, err)
		}
	}()

	port := strings.Split(lst.Addr().String(), ":")[1]

	return &RPCServer{
		Stop: func(ctx context.Context) error {
			return apiserv.Shutdown(ctx)
		},
		Addr: "/ip4/127.0.0.1/tcp/" + port,
		Port: port,
	}, nil
}
