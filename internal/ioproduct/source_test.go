package ioproduct

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/safebite/safebite/pkg/config"
	"github.com/safebite/safebite/pkg/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offServer(t *testing.T, known map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			for barcode, body := range known {
				if r.URL.Path == "/product/"+barcode+".json" {
					fmt.Fprint(w, body)
					return
				}
			}
			fmt.Fprint(w, `{"status": 0}`)
		}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupOpenFoodFacts(t *testing.T) {
	srv := offServer(t, map[string]string{
		"7610848337010": `{
			"status": 1,
			"product": {
				"product_name": "Dark Chocolate",
				"ingredients_text": "cocoa, sugar",
				"allergens_tags": ["en:milk"]
			}
		}`,
	})

	cfg := config.New()
	cfg.Product.OpenFoodFactsURL = srv.URL

	s := New(cfg)
	p, err := s.Lookup(context.Background(), "7610848337010")
	require.NoError(t, err)
	assert.Equal(t, "Dark Chocolate", p.Name)
	assert.Equal(t, "cocoa, sugar", p.Declaration())
	assert.Equal(t, []string{"en:milk"}, p.APITags())
	// Barcode is filled in when the record omits it.
	assert.Equal(t, "7610848337010", p.Barcode)
}

func TestLookupNotFound(t *testing.T) {
	srv := offServer(t, nil)

	cfg := config.New()
	cfg.Product.OpenFoodFactsURL = srv.URL

	s := New(cfg)
	_, err := s.Lookup(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestLookupFoodRepoFallback(t *testing.T) {
	off := offServer(t, nil)

	var gotAuth string
	fr := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Query().Get("barcodes") != "7610848337010" {
				fmt.Fprint(w, `{"data": []}`)
				return
			}
			fmt.Fprint(w, `{
				"data": [{
					"id": 1,
					"barcode": "7610848337010",
					"name_translations": {"de": "Schokolade"},
					"ingredients_translations": {"de": "kakao, zucker"}
				}]
			}`)
		}))
	t.Cleanup(fr.Close)

	cfg := config.New()
	cfg.Product.OpenFoodFactsURL = off.URL
	cfg.Product.FoodRepoURL = fr.URL
	cfg.Product.FoodRepoKey = "test-key"

	s := New(cfg)
	p, err := s.Lookup(context.Background(), "7610848337010")
	require.NoError(t, err)
	assert.Equal(t, "Schokolade", p.Name)
	assert.Equal(t, "kakao, zucker", p.Declaration())
	assert.Equal(t, "Token token=test-key", gotAuth)
}

func TestLookupNoFallbackWithoutKey(t *testing.T) {
	off := offServer(t, nil)

	cfg := config.New()
	cfg.Product.OpenFoodFactsURL = off.URL
	cfg.Product.FoodRepoURL = "http://127.0.0.1:1"

	s := New(cfg)
	_, err := s.Lookup(context.Background(), "7610848337010")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestPickTranslation(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]string
		want string
	}{
		{"english preferred", map[string]string{"en": "Milk", "de": "Milch"}, "Milk"},
		{"german next", map[string]string{"fr": "Lait", "de": "Milch"}, "Milch"},
		{"empty values skipped", map[string]string{"en": "", "it": "Latte"}, "Latte"},
		{"nothing usable", map[string]string{"pt": "Leite"}, ""},
		{"nil map", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickTranslation(tt.in))
		})
	}
}

func TestConvertFoodRepo(t *testing.T) {
	fp := &frProduct{
		Barcode:                 "123",
		NameTranslations:        map[string]string{"fr": "Fromage"},
		IngredientsTranslations: map[string]string{"fr": "lait, sel"},
		Nutrients:               map[string]any{"energy": 1500.0},
	}
	p := convertFoodRepo(fp)
	assert.Equal(t, "123", p.Barcode)
	assert.Equal(t, "Fromage", p.Name)
	assert.Equal(t, "lait, sel", p.IngredientsText)
	assert.Empty(t, p.APITags())
	assert.Equal(t, map[string]any{"energy": 1500.0}, p.Nutriments)
}
