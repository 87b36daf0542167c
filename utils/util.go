package utils

import (
	"io/ioutil"

	"github.com/pelletier/go-toml"
)

func Contains(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}

func ReadConfig(path string, cfg interface{}) error {
	configBytes, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	return toml.Unmarshal(configBytes, cfg)
}

func WriteConfig(path string, cfg interface{}) error {
	cfgBytes, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, cfgBytes, 0o666)
}
