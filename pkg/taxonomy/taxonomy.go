// Package taxonomy provides the in-memory multilingual ingredient and
// additive taxonomy: an immutable index from canonical IDs to entries,
// with exact matching, substring search and display-name resolution.
//
// A Taxonomy is built once at startup and never mutated afterward, so it
// is safe to share across concurrent readers without locking. Tests can
// construct small synthetic taxonomies via New.
package taxonomy

import (
	"sort"
)

// Entry describes one canonical substance, either an ingredient or an
// additive. The zero value is a valid (empty) entry.
type Entry struct {
	// ID is the canonical slug identifier, unique within the merged
	// taxonomy. Derived at data-build time from the English name line.
	ID string `json:"id"`

	// Labels maps a language code (2-3 lowercase letters) to an ordered
	// sequence of display strings. A label string may itself contain
	// comma-joined alternate forms.
	Labels map[string][]string `json:"labels,omitempty"`

	// Synonyms maps a language code to alternate names, searched with the
	// same priority as labels.
	Synonyms map[string][]string `json:"synonyms,omitempty"`

	// Parents holds hierarchy references to broader entries.
	// Informational only, not used for transitive matching.
	Parents []string `json:"parents,omitempty"`

	// Descriptions maps a language code to a free-text description.
	Descriptions map[string]string `json:"description,omitempty"`

	Wikidata  string `json:"wikidata,omitempty"`
	Wikipedia string `json:"wikipedia,omitempty"`

	// ENumber is set only for additive entries, e.g. "621" for E621.
	ENumber string `json:"e_number,omitempty"`

	// Vegan and Vegetarian carry the raw scalar values from the additive
	// source file ("yes", "no", "maybe").
	Vegan      string `json:"vegan,omitempty"`
	Vegetarian string `json:"vegetarian,omitempty"`

	// Flags used for automatic category inference.
	Allergen            bool `json:"allergen,omitempty"`
	AnimalDerived       bool `json:"animal_derived,omitempty"`
	PregnancyWarning    bool `json:"pregnancy_warning,omitempty"`
	EnvironmentalImpact bool `json:"environmental_impact,omitempty"`
	ContainsGluten      bool `json:"contains_gluten,omitempty"`
	HighCarb            bool `json:"high_carb,omitempty"`
	HighSodium          bool `json:"high_sodium,omitempty"`
	ContainsDairy       bool `json:"contains_dairy,omitempty"`
	ContainsSugar       bool `json:"contains_sugar,omitempty"`
	NotHalalKosher      bool `json:"not_halal_kosher,omitempty"`
}

// LabelLangs returns the entry's label languages in deterministic
// (lexical) order.
func (e *Entry) LabelLangs() []string {
	return sortedLangs(e.Labels)
}

// SynonymLangs returns the entry's synonym languages in deterministic
// (lexical) order.
func (e *Entry) SynonymLangs() []string {
	return sortedLangs(e.Synonyms)
}

func sortedLangs[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	langs := make([]string, 0, len(m))
	for lang := range m {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Taxonomy is the merged, read-only index of ingredient and additive
// entries. Both source taxonomies share one id namespace; on collision
// the additive entry wins.
type Taxonomy struct {
	entries   map[string]Entry
	ids       []string
	additives map[string]struct{}
}

// New builds a Taxonomy from the two parsed source maps. Entries from
// additives shadow same-id entries from ingredients, mirroring the
// merge order of the data-build step. The input maps are copied; the
// returned Taxonomy does not alias them.
func New(ingredients, additives map[string]Entry) *Taxonomy {
	t := &Taxonomy{
		entries:   make(map[string]Entry, len(ingredients)+len(additives)),
		additives: make(map[string]struct{}, len(additives)),
	}
	for id, e := range ingredients {
		t.entries[id] = e
	}
	for id, e := range additives {
		t.entries[id] = e
		t.additives[id] = struct{}{}
	}
	t.ids = make([]string, 0, len(t.entries))
	for id := range t.entries {
		t.ids = append(t.ids, id)
	}
	sort.Strings(t.ids)
	return t
}

// EntryFor returns the entry for a canonical id.
func (t *Taxonomy) EntryFor(id string) (Entry, bool) {
	e, ok := t.entries[id]
	return e, ok
}

// Len returns the number of entries in the merged taxonomy.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// IDs returns all canonical ids in lexical order. The returned slice is
// shared and must not be modified.
func (t *Taxonomy) IDs() []string {
	return t.ids
}

// IsAdditive reports whether the id came from the additive taxonomy.
func (t *Taxonomy) IsAdditive(id string) bool {
	_, ok := t.additives[id]
	return ok
}

// ENumber returns the E-number of an additive entry, or false when the
// id is unknown or not an additive.
func (t *Taxonomy) ENumber(id string) (string, bool) {
	if !t.IsAdditive(id) {
		return "", false
	}
	e := t.entries[id]
	if e.ENumber == "" {
		return "", false
	}
	return e.ENumber, true
}
