package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hiveden/hwinventory/internal/greet"

	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyListenAddr     = "listen_addr"
	KeyGreetingOrigin = "greeting_origin"
	KeySortInterfaces = "sort_interfaces"
	KeyCollectTimeout = "collect_timeout"
	KeyLogDevelopment = "log_development"
)

const (
	DefaultListenAddr = ":8080"
	envPrefix         = "HWINVENTORY"
)

// Config holds the settings shared by the API server and the CLI.
type Config struct {
	ListenAddr     string
	GreetingOrigin string
	SortInterfaces bool
	CollectTimeout time.Duration
	LogDevelopment bool
}

// SetDefaults registers default values and environment overrides on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyListenAddr, DefaultListenAddr)
	v.SetDefault(KeyGreetingOrigin, greet.DefaultOrigin)
	v.SetDefault(KeySortInterfaces, false)
	v.SetDefault(KeyCollectTimeout, time.Duration(0))
	v.SetDefault(KeyLogDevelopment, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads configFile into v, if given, and returns the resulting Config.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		ListenAddr:     v.GetString(KeyListenAddr),
		GreetingOrigin: v.GetString(KeyGreetingOrigin),
		SortInterfaces: v.GetBool(KeySortInterfaces),
		CollectTimeout: v.GetDuration(KeyCollectTimeout),
		LogDevelopment: v.GetBool(KeyLogDevelopment),
	}
	if cfg.CollectTimeout < 0 {
		return Config{}, fmt.Errorf("%s must not be negative, got %s", KeyCollectTimeout, cfg.CollectTimeout)
	}

	return cfg, nil
}
