package utils

import (
	"net/url"

	"github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
)

// DialArgs resolves a listen address, either a multiaddr or a plain url,
// into the http endpoint of its jsonrpc handler.
func DialArgs(addr string) (string, error) {
	ma, err := multiaddr.NewMultiaddr(addr)
	if err == nil {
		_, dialAddr, err := manet.DialArgs(ma)
		if err != nil {
			return "", err
		}

		return "http://" + dialAddr + "/rpc/v0", nil
	}

	if _, err := url.Parse(addr); err != nil {
		return "", err
	}

	return addr + "/rpc/v0", nil
}
