// Package ioconfig provides I/O operations for loading configuration
// from files and the environment. This is an impure package that
// handles file system operations.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/safebite/safebite/pkg/config"
	"github.com/spf13/viper"
)

// LoadResult contains the loaded configuration and metadata about the
// source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads configuration from a YAML file and returns a validated
// Config with source info. If configPath is empty the default location
// ~/.config/safebite/config.yaml is tried; a missing default file is
// not an error, a missing explicit file is.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Environment overrides. Precedence: flags > env vars > file >
	// defaults.
	v.SetEnvPrefix("SAFEBITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Defaults registered before reading: viper only checks env vars for
	// keys it knows about.
	defaults := config.New()
	v.SetDefault("taxonomy.ingredients_file", defaults.Taxonomy.IngredientsFile)
	v.SetDefault("taxonomy.additives_file", defaults.Taxonomy.AdditivesFile)
	v.SetDefault("taxonomy.cache_dir", defaults.Taxonomy.CacheDir)
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.read_timeout", defaults.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", defaults.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
	v.SetDefault("product.openfoodfacts_url", defaults.Product.OpenFoodFactsURL)
	v.SetDefault("product.foodrepo_url", defaults.Product.FoodRepoURL)
	v.SetDefault("product.foodrepo_key", defaults.Product.FoodRepoKey)
	v.SetDefault("product.timeout", defaults.Product.Timeout)
	v.SetDefault("profile.redis_addr", defaults.Profile.RedisAddr)
	v.SetDefault("profile.redis_password", defaults.Profile.RedisPassword)
	v.SetDefault("profile.redis_db", defaults.Profile.RedisDB)
	v.SetDefault("profile.undo_window", defaults.Profile.UndoWindow)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.destination", defaults.Log.Destination)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		defaultPath, err := GetDefaultConfigPath()
		if err == nil {
			if _, statErr := os.Stat(defaultPath); statErr == nil {
				v.SetConfigFile(defaultPath)
			}
		}
	}

	configFileRead := false
	usedConfigPath := ""

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
		} else if configPath != "" || v.ConfigFileUsed() != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileRead = true
		usedConfigPath = v.ConfigFileUsed()
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.MergeWithDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	source := "defaults"
	if configFileRead {
		source = "file"
	} else if hasEnvVars() {
		source = "defaults+env"
	}

	return &LoadResult{
		Config:     &cfg,
		SourcePath: usedConfigPath,
		Source:     source,
	}, nil
}

// hasEnvVars reports whether any SAFEBITE_* environment variable is set.
func hasEnvVars() bool {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "SAFEBITE_") {
			return true
		}
	}
	return false
}
