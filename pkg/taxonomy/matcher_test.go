package taxonomy_test

import (
	"testing"

	"github.com/safebite/safebite/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindMatchesLabel(t *testing.T) {
	tx := testTaxonomy()

	tests := []struct {
		name   string
		phrase string
		want   []taxonomy.Match
	}{
		{
			name:   "second english label matches",
			phrase: "dried milk",
			want:   []taxonomy.Match{{ID: "milk-powder", Lang: "en"}},
		},
		{
			name:   "case insensitive",
			phrase: "PALM OIL",
			want:   []taxonomy.Match{{ID: "palm-oil", Lang: "en"}},
		},
		{
			name:   "surrounding whitespace trimmed",
			phrase: "  lait en poudre  ",
			want:   []taxonomy.Match{{ID: "milk-powder", Lang: "fr"}},
		},
		{
			name:   "comma part of a label matches",
			phrase: "filbert",
			want:   []taxonomy.Match{{ID: "hazelnut", Lang: "en"}},
		},
		{
			name:   "substring alone is not a match",
			phrase: "palm",
			want:   nil,
		},
		{
			name:   "empty phrase",
			phrase: "   ",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tx.FindMatches(tt.phrase))
		})
	}
}

func TestFindMatchesSynonymOnlyWithoutLabelMatch(t *testing.T) {
	tx := testTaxonomy()

	// "powdered milk" is only a synonym, so the synonym pass runs.
	got := tx.FindMatches("powdered milk")
	assert.Equal(t, []taxonomy.Match{{ID: "milk-powder", Lang: "en"}}, got)

	// "milk powder" is a label; the synonym list must not add a second
	// hit for the same entry.
	got = tx.FindMatches("milk powder")
	assert.Equal(t, []taxonomy.Match{{ID: "milk-powder", Lang: "en"}}, got)
}

func TestFindMatchesPolysemy(t *testing.T) {
	ingredients := map[string]taxonomy.Entry{
		"corn": {
			ID:     "corn",
			Labels: map[string][]string{"en": {"Maize"}},
		},
		"maize-flour": {
			ID:     "maize-flour",
			Labels: map[string][]string{"en": {"Maize", "Maize flour"}},
		},
	}
	tx := taxonomy.New(ingredients, nil)

	got := tx.FindMatches("maize")
	require.Len(t, got, 2)
	assert.Contains(t, got, taxonomy.Match{ID: "corn", Lang: "en"})
	assert.Contains(t, got, taxonomy.Match{ID: "maize-flour", Lang: "en"})
}

func TestFindMatchesMultipleLanguagesSameEntry(t *testing.T) {
	ingredients := map[string]taxonomy.Entry{
		"tomato": {
			ID: "tomato",
			Labels: map[string][]string{
				"en": {"Tomato"},
				"it": {"Tomato"},
			},
		},
	}
	tx := taxonomy.New(ingredients, nil)

	got := tx.FindMatches("tomato")
	assert.Equal(t, []taxonomy.Match{
		{ID: "tomato", Lang: "en"},
		{ID: "tomato", Lang: "it"},
	}, got)
}

func TestFindMatchesOnePerEntryLanguage(t *testing.T) {
	ingredients := map[string]taxonomy.Entry{
		"milk": {
			ID:     "milk",
			Labels: map[string][]string{"en": {"Milk", "milk"}},
		},
	}
	tx := taxonomy.New(ingredients, nil)

	got := tx.FindMatches("milk")
	assert.Equal(t, []taxonomy.Match{{ID: "milk", Lang: "en"}}, got)
}
