package main

import (
	"github.com/hiveden/hwinventory/internal/config"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// newFlagSet defines the server flags and binds the overridable ones to v.
// The returned string holds the --config value once the set is parsed.
func newFlagSet(v *viper.Viper) (*pflag.FlagSet, *string) {
	fs := pflag.NewFlagSet("hwinventory-api", pflag.ExitOnError)

	configFile := fs.String("config", "", "config file")
	fs.String("listen-addr", config.DefaultListenAddr, "Address the API server listens on")
	fs.Bool("sort-interfaces", false, "Sort network interfaces by name")
	fs.Duration("timeout", 0, "Upper bound for a single hardware collection (0 disables it)")
	fs.Bool("log-development", false, "Human-readable debug logging")

	v.BindPFlag(config.KeyListenAddr, fs.Lookup("listen-addr"))
	v.BindPFlag(config.KeySortInterfaces, fs.Lookup("sort-interfaces"))
	v.BindPFlag(config.KeyCollectTimeout, fs.Lookup("timeout"))
	v.BindPFlag(config.KeyLogDevelopment, fs.Lookup("log-development"))

	return fs, configFile
}
