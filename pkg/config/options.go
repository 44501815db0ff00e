package config

import (
	"log/slog"
	"strings"
	"time"
)

// Option is a function that modifies a Config. Options validate inputs
// and reject invalid values with warnings.
type Option func(*Config)

// OptIngredientsFile sets the path of the ingredients taxonomy source.
func OptIngredientsFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Taxonomy IngredientsFile", s) {
			c.Taxonomy.IngredientsFile = s
		}
	}
}

// OptAdditivesFile sets the path of the additives taxonomy source.
func OptAdditivesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Taxonomy AdditivesFile", s) {
			c.Taxonomy.AdditivesFile = s
		}
	}
}

// OptCacheDir sets the directory for generated taxonomy caches.
func OptCacheDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Taxonomy CacheDir", s) {
			c.Taxonomy.CacheDir = s
		}
	}
}

// OptServerHost sets the HTTP listen host.
func OptServerHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Server Host", s) {
			c.Server.Host = s
		}
	}
}

// OptServerPort sets the HTTP listen port.
func OptServerPort(i int) Option {
	return func(c *Config) {
		if isValidInt("Server Port", i) {
			c.Server.Port = i
		}
	}
}

// OptFoodRepoKey sets the FoodRepo API token.
func OptFoodRepoKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Product FoodRepoKey", s) {
			c.Product.FoodRepoKey = s
		}
	}
}

// OptProductTimeout bounds each product lookup request.
func OptProductTimeout(d time.Duration) Option {
	return func(c *Config) {
		if isValidDuration("Product Timeout", d) {
			c.Product.Timeout = d
		}
	}
}

// OptRedisAddr sets the redis address of the profile store.
func OptRedisAddr(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Profile RedisAddr", s) {
			c.Profile.RedisAddr = s
		}
	}
}

// OptUndoWindow sets how long a deleted profile entry can be restored.
func OptUndoWindow(d time.Duration) Option {
	return func(c *Config) {
		if isValidDuration("Profile UndoWindow", d) {
			c.Profile.UndoWindow = d
		}
	}
}

// OptLogLevel sets the logging level.
func OptLogLevel(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidString("Log Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the logging format.
func OptLogFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidString("Log Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets the logging destination.
func OptLogDestination(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidString("Log Destination", s) {
			c.Log.Destination = s
		}
	}
}

func isValidString(field, s string) bool {
	if s == "" {
		slog.Warn("Ignoring empty config value", "field", field)
		return false
	}
	return true
}

func isValidInt(field string, i int) bool {
	if i <= 0 {
		slog.Warn("Ignoring non-positive config value", "field", field, "value", i)
		return false
	}
	return true
}

func isValidDuration(field string, d time.Duration) bool {
	if d <= 0 {
		slog.Warn("Ignoring non-positive config duration", "field", field, "value", d)
		return false
	}
	return true
}
