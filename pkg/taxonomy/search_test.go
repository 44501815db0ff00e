package taxonomy_test

import (
	"testing"

	"github.com/safebite/safebite/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSubstring(t *testing.T) {
	tx := testTaxonomy()

	got := tx.Search("milk", "")
	require.NotEmpty(t, got)
	ids := suggestionIDs(got)
	assert.Contains(t, ids, "milk-powder")

	got = tx.Search("", "")
	assert.Empty(t, got)

	got = tx.Search("zzz-no-such-thing", "")
	assert.Empty(t, got)
}

func TestSearchSynonymsIgnored(t *testing.T) {
	tx := testTaxonomy()

	// "powdered" appears only in a synonym, never in a label.
	got := tx.Search("powdered", "")
	assert.Empty(t, got)
}

func TestSearchLocale(t *testing.T) {
	tx := testTaxonomy()

	got := tx.Search("palma", "es")
	require.Len(t, got, 1)
	assert.Equal(t, "palm-oil", got[0].ID)
	assert.Equal(t, "Aceite de palma", got[0].Name)
	assert.Equal(t, "es", got[0].Lang)

	// Locale without labels for the entry falls back to English.
	got = tx.Search("palm oil", "de")
	require.Len(t, got, 1)
	assert.Equal(t, "Palm oil", got[0].Name)
	assert.Equal(t, "en", got[0].Lang)
}

func TestSearchOrdering(t *testing.T) {
	ingredients := map[string]taxonomy.Entry{
		"salt":         {ID: "salt", Labels: map[string][]string{"en": {"Salt"}}},
		"sea-salt":     {ID: "sea-salt", Labels: map[string][]string{"en": {"Sea salt"}}},
		"salted-fish":  {ID: "salted-fish", Labels: map[string][]string{"en": {"Salted fish"}}},
		"celery-salt":  {ID: "celery-salt", Labels: map[string][]string{"en": {"Celery salt"}}},
		"saltpeter":    {ID: "saltpeter", Labels: map[string][]string{"en": {"Saltpeter"}}},
		"unsalted-nut": {ID: "unsalted-nut", Labels: map[string][]string{"en": {"Unsalted nut"}}},
	}
	tx := taxonomy.New(ingredients, nil)

	got := tx.Search("salt", "en")
	want := []string{
		// exact
		"salt",
		// prefix matches, alphabetical
		"salted-fish", "saltpeter",
		// the rest, alphabetical by name
		"celery-salt", "sea-salt", "unsalted-nut",
	}
	assert.Equal(t, want, suggestionIDs(got))
}

func suggestionIDs(sugs []taxonomy.Suggestion) []string {
	ids := make([]string, len(sugs))
	for i, s := range sugs {
		ids[i] = s.ID
	}
	return ids
}
