package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type demoConfig struct {
	Name  string `toml:"name"`
	Level int    `toml:"level"`
}

func TestReadWriteConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	in := &demoConfig{Name: "pricer", Level: 3}
	assert.Nil(t, WriteConfig(path, in))

	out := &demoConfig{}
	assert.Nil(t, ReadConfig(path, out))
	assert.Equal(t, in, out)
}

func TestContains(t *testing.T) {
	list := []string{"quote", "premium"}
	assert.True(t, Contains(list, "quote"))
	assert.False(t, Contains(list, "register"))
}
