// Package detect computes which of a user's selected avoid-ingredients
// appear in a scanned product. It is pure orchestration over the
// taxonomy matcher, the text normalizer and the id normalizer; no call
// in this package performs I/O or fails on malformed input.
package detect

import (
	"errors"
	"sort"

	"github.com/safebite/safebite/pkg/ident"
	"github.com/safebite/safebite/pkg/ingredients"
	"github.com/safebite/safebite/pkg/product"
	"github.com/safebite/safebite/pkg/profile"
	"github.com/safebite/safebite/pkg/taxonomy"
)

// ErrNoIngredientData signals that a product carries no usable
// ingredient declaration at all. This is a distinct outcome from an
// empty detection result: "unknown risk" rather than "confirmed safe".
var ErrNoIngredientData = errors.New("ingredient information unavailable")

// Detected is one detection hit: the profile id of the avoided
// ingredient and the language tag recorded when the user added it, so
// the UI renders the name the user originally picked.
type Detected struct {
	ID   string `json:"id"`
	Lang string `json:"lang,omitempty"`
}

// Detector runs detections against one immutable taxonomy. It is
// stateless beyond the taxonomy reference and safe for concurrent use.
type Detector struct {
	tx *taxonomy.Taxonomy
}

// New creates a Detector over the given taxonomy.
func New(tx *taxonomy.Taxonomy) *Detector {
	return &Detector{tx: tx}
}

// Detect returns the subset of the user's selected avoid-ingredients
// present in a product, given the normalized candidate phrases and the
// product's pre-extracted api tags.
//
// Profile entries with Selected false are never detected, no matter how
// many ways they textually match. The reported id is the original
// profile key, not the normalized form, and the language comes from the
// profile entry, not from the language the match occurred in. Results
// are deduplicated and ordered by id.
func (d *Detector) Detect(
	phrases []string,
	prof profile.Profile,
	apiTags []string,
) []Detected {
	selected := make(map[string]string, len(prof))
	for id, e := range prof {
		if e.Selected {
			selected[ident.Normalize(id)] = id
		}
	}
	if len(selected) == 0 {
		return nil
	}

	hits := make(map[string]struct{})
	for _, tag := range apiTags {
		if id, ok := selected[ident.Normalize(tag)]; ok {
			hits[id] = struct{}{}
		}
	}
	for _, phrase := range phrases {
		for _, m := range d.tx.FindMatches(phrase) {
			if id, ok := selected[ident.Normalize(m.ID)]; ok {
				hits[id] = struct{}{}
			}
		}
	}

	ids := make([]string, 0, len(hits))
	for id := range hits {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	res := make([]Detected, len(ids))
	for i, id := range ids {
		res[i] = Detected{ID: id, Lang: prof[id].Lang}
	}
	return res
}

// DetectProduct parses a product's ingredient declaration and runs
// detection with the product's api tags. When the declaration is
// missing or yields no candidate phrases it returns ErrNoIngredientData
// so callers can distinguish "unknown risk" from a clean scan.
func (d *Detector) DetectProduct(
	p *product.Product,
	prof profile.Profile,
) ([]Detected, error) {
	phrases := ingredients.Parse(p.Declaration())
	if len(phrases) == 0 {
		return nil, ErrNoIngredientData
	}
	return d.Detect(phrases, prof, p.APITags()), nil
}
