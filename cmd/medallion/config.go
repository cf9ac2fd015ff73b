// Config loading for the medallion CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/medallion/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	defaultConfigDir = ".medallion"
	defaultDataDir   = ".medallion-db"
	defaultSourceDir = "data"
)

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("MEDALLION_CONFIG_DIR"); v != "" {
		return v
	}
	return defaultConfigDir
}

// loadConfig reads config.yaml from the resolved config directory using
// Viper, applies defaults, and lets the --data-dir flag override the
// configured data directory. A missing config.yaml is not an error.
func loadConfig() (types.Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", defaultDataDir)
	v.SetDefault("sources.dir", defaultSourceDir)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(resolveConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parse config: %w", err)
	}

	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}
	cfg = cfg.WithDefaults()

	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
