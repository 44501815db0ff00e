package profile

import (
	"github.com/safebite/safebite/pkg/taxonomy"
)

// Category is one of the closed set of display groups for avoid-list
// ingredients.
type Category string

const (
	CategoryAllergens    Category = "allergens"
	CategoryVegan        Category = "vegan"
	CategoryENumbers     Category = "eNumbers"
	CategoryPregnancy    Category = "pregnancy"
	CategoryEnvironment  Category = "environment"
	CategoryGlutenFree   Category = "glutenFree"
	CategoryKetoFriendly Category = "ketoFriendly"
	CategoryLowSodium    Category = "lowSodium"
	CategoryOrganic      Category = "organic"
	CategoryDairyFree    Category = "dairyFree"
	CategorySugarFree    Category = "sugarFree"
	CategoryHalalKosher  Category = "halalKosher"
	CategoryOther        Category = "other"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{
		CategoryAllergens,
		CategoryVegan,
		CategoryENumbers,
		CategoryPregnancy,
		CategoryEnvironment,
		CategoryGlutenFree,
		CategoryKetoFriendly,
		CategoryLowSodium,
		CategoryOrganic,
		CategoryDairyFree,
		CategorySugarFree,
		CategoryHalalKosher,
		CategoryOther,
	}
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// CategoriesOf resolves the display categories of an ingredient id.
// An explicit category on the user's profile entry wins and is returned
// alone. Otherwise categories are inferred from the taxonomy: additive
// entries group under eNumbers and every true flag contributes its
// category, so an entry may belong to several groups at once. With no
// explicit category and no flags the result is exactly [other].
//
// Note the "organic" category has no taxonomy flag; it is reachable only
// through explicit assignment.
func CategoriesOf(tx *taxonomy.Taxonomy, id string, p Profile) []Category {
	if e, ok := p[id]; ok && e.Category != "" {
		return []Category{e.Category}
	}

	var cats []Category
	if tx.IsAdditive(id) {
		cats = append(cats, CategoryENumbers)
	}
	if e, ok := tx.EntryFor(id); ok {
		cats = append(cats, flagCategories(&e)...)
	}
	if len(cats) == 0 {
		return []Category{CategoryOther}
	}
	return cats
}

// flagCategories maps taxonomy flags to the categories they imply.
func flagCategories(e *taxonomy.Entry) []Category {
	var cats []Category
	if e.Allergen {
		cats = append(cats, CategoryAllergens)
	}
	if e.AnimalDerived {
		cats = append(cats, CategoryVegan)
	}
	if e.PregnancyWarning {
		cats = append(cats, CategoryPregnancy)
	}
	if e.EnvironmentalImpact {
		cats = append(cats, CategoryEnvironment)
	}
	if e.ContainsGluten {
		cats = append(cats, CategoryGlutenFree)
	}
	if e.HighCarb {
		cats = append(cats, CategoryKetoFriendly)
	}
	if e.HighSodium {
		cats = append(cats, CategoryLowSodium)
	}
	if e.ContainsDairy {
		cats = append(cats, CategoryDairyFree)
	}
	if e.ContainsSugar {
		cats = append(cats, CategorySugarFree)
	}
	if e.NotHalalKosher {
		cats = append(cats, CategoryHalalKosher)
	}
	return cats
}
