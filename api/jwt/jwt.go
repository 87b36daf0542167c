package jwt

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"io/ioutil"

	"github.com/filecoin-project/venus-auth/auth"
	"github.com/filecoin-project/venus-auth/cmd/jwtclient"
	jwt3 "github.com/gbrlsnchs/jwt/v3"
	"golang.org/x/xerrors"

	"github.com/haven1-network/pricer/config"
)

// IJwtClient verifies an api token and reports the permission it carries.
type IJwtClient interface {
	Verify(spanId, serviceName, preHost, host, token string) (*auth.VerifyResponse, error)
}

// NewJwtClient talks to the auth service when one is configured and falls
// back to verifying against the local secret otherwise.
func NewJwtClient(jwtCfg *config.JWTConfig) (IJwtClient, error) {
	if len(jwtCfg.AuthURL) > 0 {
		return jwtclient.NewJWTClient(jwtCfg.AuthURL), nil
	}

	return newLocalJwtClient(&jwtCfg.Local)
}

type localJwtClient struct {
	alg *jwt3.HMACSHA
}

func newLocalJwtClient(cfg *config.LocalJWTConfig) (*localJwtClient, error) {
	if len(cfg.Secret) == 0 {
		return nil, xerrors.Errorf("secret is empty")
	}
	b, err := hex.DecodeString(cfg.Secret)
	if err != nil {
		return nil, xerrors.Errorf("failed to decode secret %v", err)
	}

	return &localJwtClient{alg: jwt3.NewHS256(b)}, nil
}

func (c *localJwtClient) Verify(spanId, serviceName, preHost, host, token string) (*auth.VerifyResponse, error) {
	var payload auth.JWTPayload
	if _, err := jwt3.Verify([]byte(token), c.alg, &payload); err != nil {
		return nil, err
	}

	return &auth.VerifyResponse{
		Name: payload.Name,
		Perm: payload.Perm,
	}, nil
}

// GenSecretAndToken makes a fresh local secret and an admin token signed
// with it, used when a repo is initialized without an auth service.
func GenSecretAndToken() ([]byte, []byte, error) {
	sk, err := ioutil.ReadAll(io.LimitReader(rand.Reader, 32))
	if err != nil {
		return nil, nil, err
	}

	token, err := jwt3.Sign(auth.JWTPayload{
		Name: "admin",
		Perm: "admin",
	}, jwt3.NewHS256(sk))
	if err != nil {
		return nil, nil, err
	}

	return sk, token, nil
}
