package filestore

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/utils"
)

const (
	ConfigFile = "config.toml"
	SqliteFile = "pricer.db"
	TokenFile  = "token"
)

type FSRepo interface {
	Path() string
	Config() *config.Config
	ReplaceConfig(cfg *config.Config) error
	SqliteFile() string
	TokenFile() string
	SaveToken(token []byte) error
}

type fsRepo struct {
	path string
	cfg  *config.Config
}

func NewFSRepo(repoPath string) (FSRepo, error) {
	r := &fsRepo{path: repoPath}
	cfg := config.DefaultConfig()
	err := utils.ReadConfig(filepath.Join(repoPath, ConfigFile), cfg)
	if err != nil {
		return nil, err
	}
	r.cfg = cfg

	return r, nil
}

func InitFSRepo(repoPath string, cfg *config.Config) (FSRepo, error) {
	if err := os.MkdirAll(repoPath, 0775); err != nil {
		return nil, err
	}

	if err := utils.WriteConfig(filepath.Join(repoPath, ConfigFile), cfg); err != nil {
		return nil, err
	}

	return &fsRepo{path: repoPath, cfg: cfg}, nil
}

func (r *fsRepo) Path() string {
	return r.path
}

func (r *fsRepo) Config() *config.Config {
	return r.cfg
}

func (r *fsRepo) SqliteFile() string {
	if len(r.cfg.DB.Sqlite.Path) > 0 {
		return r.cfg.DB.Sqlite.Path
	}
	return filepath.Join(r.path, SqliteFile)
}

func (r *fsRepo) TokenFile() string {
	return filepath.Join(r.path, TokenFile)
}

func (r *fsRepo) SaveToken(token []byte) error {
	return ioutil.WriteFile(r.TokenFile(), token, 0600)
}

func (r *fsRepo) ReplaceConfig(cfg *config.Config) error {
	if err := utils.WriteConfig(filepath.Join(r.path, ConfigFile), cfg); err != nil {
		return err
	}
	r.cfg = cfg

	return nil
}
