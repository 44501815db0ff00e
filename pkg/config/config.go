// Package config provides configuration management for SafeBite.
//
// This package has no I/O dependencies; file and environment loading
// live in internal/ioconfig.
//
// Configuration precedence (highest to lowest):
// CLI flags > env vars (SAFEBITE_*) > config.yaml > defaults.
//
// The default config from New() is always valid. All mutations go
// through Option functions, which reject invalid values and keep the
// config in a valid state.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete SafeBite configuration.
type Config struct {
	// Taxonomy configures the taxonomy build step and cache location.
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy" yaml:"taxonomy"`

	// Server configures the HTTP API.
	Server ServerConfig `mapstructure:"server" yaml:"server"`

	// Product configures the external product-lookup sources.
	Product ProductConfig `mapstructure:"product" yaml:"product"`

	// Profile configures the external user-profile store.
	Profile ProfileConfig `mapstructure:"profile" yaml:"profile"`

	Log LogConfig `mapstructure:"log" yaml:"log"`
}

// TaxonomyConfig locates the taxonomy source files and the JSON caches
// produced by the build step.
type TaxonomyConfig struct {
	// IngredientsFile is the hierarchical text source for ingredients.
	IngredientsFile string `mapstructure:"ingredients_file" yaml:"ingredients_file"`

	// AdditivesFile is the hierarchical text source for additives.
	AdditivesFile string `mapstructure:"additives_file" yaml:"additives_file"`

	// CacheDir holds the generated ingredients.json and additives.json.
	// Empty means ~/.cache/safebite.
	CacheDir string `mapstructure:"cache_dir" yaml:"cache_dir"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// ProductConfig contains settings for the product lookup collaborators.
type ProductConfig struct {
	// OpenFoodFactsURL is the base URL of the primary product source.
	OpenFoodFactsURL string `mapstructure:"openfoodfacts_url" yaml:"openfoodfacts_url"`

	// FoodRepoURL is the base URL of the fallback product source.
	FoodRepoURL string `mapstructure:"foodrepo_url" yaml:"foodrepo_url"`

	// FoodRepoKey is the API token for FoodRepo. Empty disables the
	// fallback source.
	FoodRepoKey string `mapstructure:"foodrepo_key" yaml:"foodrepo_key"`

	// Timeout bounds each lookup request.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// ProfileConfig contains settings for the redis-backed profile store.
type ProfileConfig struct {
	RedisAddr     string `mapstructure:"redis_addr" yaml:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password" yaml:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db" yaml:"redis_db"`

	// UndoWindow is how long a deleted ingredient can be restored.
	UndoWindow time.Duration `mapstructure:"undo_window" yaml:"undo_window"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'.
	Level string `mapstructure:"level" yaml:"level"`
	// Destination can be 'stdout', 'stderr' or 'file'.
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values. The returned
// config is always valid and ready to use. Defaults can be overridden
// with Option functions via Update.
func New() *Config {
	return &Config{
		Taxonomy: TaxonomyConfig{
			IngredientsFile: "ingredients.txt",
			AdditivesFile:   "additives.txt",
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Product: ProductConfig{
			OpenFoodFactsURL: "https://world.openfoodfacts.org/api/v0",
			FoodRepoURL:      "https://www.foodrepo.org/api/v3",
			Timeout:          15 * time.Second,
		},
		Profile: ProfileConfig{
			RedisAddr:  "localhost:6379",
			UndoWindow: 30 * time.Second,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "stderr",
		},
	}
}

// Update applies a slice of Option functions to the Config. This is the
// only way to modify a Config after creation. Invalid options are
// rejected with warnings and the config stays valid.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Validate checks invariants that cannot be expressed per-option.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Product.Timeout <= 0 {
		return fmt.Errorf("invalid product timeout: %s", c.Product.Timeout)
	}
	if c.Profile.UndoWindow <= 0 {
		return fmt.Errorf("invalid undo window: %s", c.Profile.UndoWindow)
	}
	return nil
}

// MergeWithDefaults fills zero-valued fields from the default config.
// Used after unmarshalling a partial config file.
func (c *Config) MergeWithDefaults() {
	def := New()
	if c.Taxonomy.IngredientsFile == "" {
		c.Taxonomy.IngredientsFile = def.Taxonomy.IngredientsFile
	}
	if c.Taxonomy.AdditivesFile == "" {
		c.Taxonomy.AdditivesFile = def.Taxonomy.AdditivesFile
	}
	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = def.Server.ReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = def.Server.WriteTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if c.Product.OpenFoodFactsURL == "" {
		c.Product.OpenFoodFactsURL = def.Product.OpenFoodFactsURL
	}
	if c.Product.FoodRepoURL == "" {
		c.Product.FoodRepoURL = def.Product.FoodRepoURL
	}
	if c.Product.Timeout == 0 {
		c.Product.Timeout = def.Product.Timeout
	}
	if c.Profile.RedisAddr == "" {
		c.Profile.RedisAddr = def.Profile.RedisAddr
	}
	if c.Profile.UndoWindow == 0 {
		c.Profile.UndoWindow = def.Profile.UndoWindow
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Destination == "" {
		c.Log.Destination = def.Log.Destination
	}
}
