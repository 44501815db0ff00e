// Package product models a looked-up food product: the raw ingredient
// declaration and the pre-tagged identifier lists that feed detection.
// Products are handed in by an external lookup collaborator; nothing in
// this package performs I/O.
package product

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by product sources when no configured source
// knows the barcode.
var ErrNotFound = errors.New("product not found")

// Product is one product record, shaped after the OpenFoodFacts v0
// response. Records converted from other sources fill the same fields.
type Product struct {
	Barcode string `json:"code,omitempty"`
	Name    string `json:"product_name,omitempty"`

	// IngredientsTextEN is preferred over IngredientsText when present.
	IngredientsTextEN string `json:"ingredients_text_en,omitempty"`
	IngredientsText   string `json:"ingredients_text,omitempty"`

	IngredientsHierarchy []string `json:"ingredients_hierarchy,omitempty"`
	IngredientsTags      []string `json:"ingredients_tags,omitempty"`
	AdditivesTags        []string `json:"additives_tags,omitempty"`

	AllergensTags            []string `json:"allergens_tags,omitempty"`
	AllergensHierarchy       []string `json:"allergens_hierarchy,omitempty"`
	AllergensFromIngredients string   `json:"allergens_from_ingredients,omitempty"`

	ImageURL string `json:"image_url,omitempty"`

	// Nutriments is passed through untouched for display; detection
	// never reads it.
	Nutriments map[string]any `json:"nutriments,omitempty"`
}

// Declaration returns the ingredient declaration to parse, preferring
// the English variant. Empty when the product carries no ingredient
// information.
func (p *Product) Declaration() string {
	if p.IngredientsTextEN != "" {
		return p.IngredientsTextEN
	}
	return p.IngredientsText
}

// APITags assembles the pre-tagged identifier strings consulted by
// detection ahead of free-text matching: allergen tags and hierarchy,
// allergens derived from ingredients, additive tags and the ingredient
// hierarchy.
func (p *Product) APITags() []string {
	var tags []string
	tags = append(tags, p.AllergensTags...)
	for _, tag := range strings.Split(p.AllergensFromIngredients, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	tags = append(tags, p.AllergensHierarchy...)
	tags = append(tags, p.AdditivesTags...)
	tags = append(tags, p.IngredientsHierarchy...)
	return tags
}
