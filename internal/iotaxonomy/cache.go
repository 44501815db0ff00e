package iotaxonomy

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnfmt"
	"github.com/safebite/safebite/pkg/config"
	"github.com/safebite/safebite/pkg/taxonomy"
)

const (
	// IngredientsCache is the file name of the generated ingredients
	// taxonomy cache.
	IngredientsCache = "ingredients.json"
	// AdditivesCache is the file name of the generated additives
	// taxonomy cache.
	AdditivesCache = "additives.json"
)

// CacheDir resolves the directory for generated taxonomy caches:
// the configured directory, or ~/.cache/safebite.
func CacheDir(cfg *config.Config) (string, error) {
	if cfg.Taxonomy.CacheDir != "" {
		return cfg.Taxonomy.CacheDir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return config.CacheDir(homeDir), nil
}

// WriteCache serializes parsed entries to a JSON cache file in dir,
// creating the directory when needed.
func WriteCache(dir, name string, entries map[string]taxonomy.Entry) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	enc := gnfmt.GNjson{Pretty: true}
	data, err := enc.Encode(entries)
	if err != nil {
		return fmt.Errorf("failed to encode taxonomy cache: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write taxonomy cache: %w", err)
	}
	return nil
}

// LoadCache reads one JSON cache file back into parsed entries.
func LoadCache(path string) (map[string]taxonomy.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy cache: %w", err)
	}

	enc := gnfmt.GNjson{}
	var entries map[string]taxonomy.Entry
	if err := enc.Decode(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode taxonomy cache %s: %w", path, err)
	}
	return entries, nil
}

// LoadTaxonomy loads both caches and merges them into the immutable
// runtime taxonomy, additives taking precedence on id collision.
func LoadTaxonomy(cfg *config.Config) (*taxonomy.Taxonomy, error) {
	dir, err := CacheDir(cfg)
	if err != nil {
		return nil, err
	}

	ingredients, err := LoadCache(filepath.Join(dir, IngredientsCache))
	if err != nil {
		return nil, err
	}
	additives, err := LoadCache(filepath.Join(dir, AdditivesCache))
	if err != nil {
		return nil, err
	}

	tx := taxonomy.New(ingredients, additives)
	slog.Info("Loaded taxonomy",
		"ingredients", len(ingredients),
		"additives", len(additives),
		"merged", tx.Len(),
	)
	return tx, nil
}
