package menu

import (
	"strings"

	"partymenu/internal/models"
)

const (
	// UnknownCategory is the category of a synthesized ingredient record.
	UnknownCategory = "Unknown"
	// UnknownDescription is the description of a synthesized ingredient record.
	UnknownDescription = "Ingredient information not available"
)

// Resolve expands the dish's ingredient names into catalog records, one per
// name and in the same order. Names are matched case-insensitively against
// the first catalog entry with that name; misses get a fallback record.
func Resolve(dish models.Dish, catalog []models.IngredientRecord) []models.IngredientRecord {
	resolved := make([]models.IngredientRecord, 0, len(dish.Ingredients))
	for _, name := range dish.Ingredients {
		if rec, ok := lookup(catalog, name); ok {
			resolved = append(resolved, rec)
			continue
		}
		resolved = append(resolved, Fallback(name))
	}
	return resolved
}

func lookup(catalog []models.IngredientRecord, name string) (models.IngredientRecord, bool) {
	for _, rec := range catalog {
		if strings.EqualFold(rec.Name, name) {
			return copyRecord(rec), true
		}
	}
	return models.IngredientRecord{}, false
}

// Fallback synthesizes the record used for a name missing from the catalog.
// Unknown ingredients are reported as vegetarian and gluten free.
func Fallback(name string) models.IngredientRecord {
	return models.IngredientRecord{
		Name:         name,
		Category:     UnknownCategory,
		Description:  UnknownDescription,
		Allergens:    []string{string(models.AllergenUnknown)},
		IsVegetarian: true,
		IsGlutenFree: true,
	}
}

// IsFallback reports whether rec was synthesized by Resolve.
func IsFallback(rec models.IngredientRecord) bool {
	return rec.Category == UnknownCategory &&
		rec.Description == UnknownDescription &&
		len(rec.Allergens) == 1 && rec.Allergens[0] == string(models.AllergenUnknown)
}

// HasAllergens reports whether the allergen list should be shown. An empty
// list and the single-element ["none"] list both mean no allergens.
func HasAllergens(rec models.IngredientRecord) bool {
	if len(rec.Allergens) == 0 {
		return false
	}
	return !(len(rec.Allergens) == 1 && rec.Allergens[0] == string(models.AllergenNone))
}

// copyRecord detaches the allergen slice so callers cannot write into the catalog.
func copyRecord(rec models.IngredientRecord) models.IngredientRecord {
	if rec.Allergens != nil {
		allergens := make([]string, len(rec.Allergens))
		copy(allergens, rec.Allergens)
		rec.Allergens = allergens
	}
	return rec
}
