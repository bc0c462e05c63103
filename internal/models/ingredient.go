package models

// IngredientRecord represents one entry of the reference ingredient catalog
type IngredientRecord struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Allergens    []string `json:"allergens"`
	IsVegetarian bool     `json:"isVegetarian"`
	IsGlutenFree bool     `json:"isGlutenFree"`
}

// Allergen represents a food allergen
type Allergen string

const (
	// AllergenNone as the only element of Allergens means the ingredient has none.
	AllergenNone Allergen = "none"
	// AllergenUnknown marks a synthesized record whose allergens are not known.
	AllergenUnknown Allergen = "unknown"
)
