// Package lifecycle defines the contracts between the pure core and the
// impure collaborators: the taxonomy build step, product lookup and the
// user profile store. Implementations live under internal/.
package lifecycle

import (
	"context"

	"github.com/safebite/safebite/pkg/config"
	"github.com/safebite/safebite/pkg/product"
	"github.com/safebite/safebite/pkg/profile"
)

// Builder runs the taxonomy build step: parse the hierarchical text
// sources and write the JSON caches the runtime loads.
type Builder interface {
	Build(ctx context.Context, cfg *config.Config) error
}

// ProductSource looks up a product by barcode. Implementations return
// product.ErrNotFound when no configured source knows the barcode.
// Network failures and retries are the implementation's concern; the
// core only ever sees a complete product or an error.
type ProductSource interface {
	Lookup(ctx context.Context, barcode string) (*product.Product, error)
}

// ProfileStore reads and writes whole user profiles. Writes always
// replace the complete mapping; the store never merges partial updates.
// Two concurrent sessions editing the same profile will clobber each
// other - a documented limitation of the replace-not-merge contract.
type ProfileStore interface {
	// Get returns the user's profile, empty when none is stored.
	Get(ctx context.Context, userID string) (profile.Profile, error)

	// Put replaces the user's whole profile.
	Put(ctx context.Context, userID string, p profile.Profile) error

	// Delete removes one ingredient from the profile and keeps it
	// restorable for the configured undo window.
	Delete(ctx context.Context, userID, ingredientID string) error

	// Undo restores the most recently deleted ingredient and returns its
	// id. Returns profile.ErrNothingToUndo when the window expired or
	// nothing was deleted.
	Undo(ctx context.Context, userID string) (string, error)

	Close() error
}
