package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "Go", cfg.GreetingOrigin)
	assert.False(t, cfg.SortInterfaces)
	assert.Zero(t, cfg.CollectTimeout)
	assert.False(t, cfg.LogDevelopment)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "listen_addr: 127.0.0.1:9000\n" +
		"greeting_origin: Rust\n" +
		"sort_interfaces: true\n" +
		"collect_timeout: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, "Rust", cfg.GreetingOrigin)
	assert.True(t, cfg.SortInterfaces)
	assert.Equal(t, 2*time.Second, cfg.CollectTimeout)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HWINVENTORY_GREETING_ORIGIN", "Tauri")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "Tauri", cfg.GreetingOrigin)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadNegativeTimeout(t *testing.T) {
	v := viper.New()
	v.Set(KeyCollectTimeout, "-1s")

	_, err := Load(v, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collect_timeout")
}
