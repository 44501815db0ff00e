// Package ioproduct implements product lookup against the external
// food databases: OpenFoodFacts first, FoodRepo as fallback. The core
// never fetches anything itself; it receives the assembled product.
package ioproduct

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/safebite/safebite/pkg/config"
	"github.com/safebite/safebite/pkg/lifecycle"
	"github.com/safebite/safebite/pkg/product"
)

// source chains the configured product databases.
type source struct {
	off *offClient
	fr  *foodRepoClient
}

// New creates a ProductSource backed by OpenFoodFacts with an optional
// FoodRepo fallback (enabled when an API key is configured).
func New(cfg *config.Config) lifecycle.ProductSource {
	client := resty.New().SetTimeout(cfg.Product.Timeout)
	s := &source{
		off: newOFFClient(client, cfg.Product.OpenFoodFactsURL),
	}
	if cfg.Product.FoodRepoKey != "" {
		s.fr = newFoodRepoClient(client, cfg.Product.FoodRepoURL, cfg.Product.FoodRepoKey)
	}
	return s
}

// Lookup queries the sources in order and returns the first hit.
// product.ErrNotFound means no configured source knows the barcode;
// any other error is a transport failure of the last source tried.
func (s *source) Lookup(ctx context.Context, barcode string) (*product.Product, error) {
	p, err := s.off.lookup(ctx, barcode)
	if err == nil {
		slog.Debug("Product found", "source", "openfoodfacts", "barcode", barcode)
		return p, nil
	}
	if !errors.Is(err, product.ErrNotFound) {
		slog.Warn("OpenFoodFacts lookup failed",
			"barcode", barcode, "error", err)
	}

	if s.fr == nil {
		return nil, err
	}

	p, frErr := s.fr.lookup(ctx, barcode)
	if frErr == nil {
		slog.Debug("Product found", "source", "foodrepo", "barcode", barcode)
		return p, nil
	}
	return nil, frErr
}
