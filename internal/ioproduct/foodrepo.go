package ioproduct

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/safebite/safebite/pkg/product"
)

// Preference order for FoodRepo translation maps.
var frLangs = []string{"en", "de", "fr", "it"}

// frResponse is the FoodRepo v3 products envelope.
type frResponse struct {
	Data []frProduct `json:"data"`
}

// frProduct is the FoodRepo record shape; it differs enough from
// OpenFoodFacts that records are converted rather than decoded
// directly into product.Product.
type frProduct struct {
	ID                      int               `json:"id"`
	Barcode                 string            `json:"barcode"`
	NameTranslations        map[string]string `json:"name_translations"`
	IngredientsTranslations map[string]string `json:"ingredients_translations"`
	Nutrients               map[string]any    `json:"nutrients"`
}

type foodRepoClient struct {
	client  *resty.Client
	baseURL string
	key     string
}

func newFoodRepoClient(client *resty.Client, baseURL, key string) *foodRepoClient {
	return &foodRepoClient{client: client, baseURL: baseURL, key: key}
}

func (c *foodRepoClient) lookup(ctx context.Context, barcode string) (*product.Product, error) {
	var out frResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("barcodes", barcode).
		SetHeader("Authorization", fmt.Sprintf("Token token=%s", c.key)).
		SetResult(&out).
		Get(c.baseURL + "/products")
	if err != nil {
		return nil, fmt.Errorf("foodrepo request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("foodrepo returned status %d", resp.StatusCode())
	}
	if len(out.Data) == 0 {
		return nil, product.ErrNotFound
	}

	return convertFoodRepo(&out.Data[0]), nil
}

// convertFoodRepo maps a FoodRepo record onto the common product shape.
// FoodRepo carries no tag lists, so only the free-text declaration
// feeds detection for these products.
func convertFoodRepo(fp *frProduct) *product.Product {
	return &product.Product{
		Barcode:         fp.Barcode,
		Name:            pickTranslation(fp.NameTranslations),
		IngredientsText: pickTranslation(fp.IngredientsTranslations),
		Nutriments:      fp.Nutrients,
	}
}

// pickTranslation returns the first available value in the preference
// order en, de, fr, it.
func pickTranslation(translations map[string]string) string {
	for _, lang := range frLangs {
		if s := translations[lang]; s != "" {
			return s
		}
	}
	return ""
}
