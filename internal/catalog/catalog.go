package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"partymenu/internal/models"
)

//go:embed data/dishes.json data/ingredients.json
var seedFS embed.FS

var (
	ErrInvalidDish       = errors.New("invalid dish")
	ErrInvalidIngredient = errors.New("invalid ingredient")
	ErrDuplicateDishID   = errors.New("duplicate dish id")
)

// Catalog holds the dish and ingredient catalogs. It is built once and only
// ever read after that.
type Catalog struct {
	Dishes      []models.Dish
	Ingredients []models.IngredientRecord
}

// Default returns the catalog bundled with the binary
func Default() (*Catalog, error) {
	dishes, err := seedFS.Open("data/dishes.json")
	if err != nil {
		return nil, err
	}
	defer dishes.Close()

	ingredients, err := seedFS.Open("data/ingredients.json")
	if err != nil {
		return nil, err
	}
	defer ingredients.Close()

	return Load(dishes, ingredients)
}

// LoadFiles reads a catalog from two JSON files on disk
func LoadFiles(dishPath, ingredientPath string) (*Catalog, error) {
	dishes, err := os.Open(dishPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dish catalog: %w", err)
	}
	defer dishes.Close()

	ingredients, err := os.Open(ingredientPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ingredient catalog: %w", err)
	}
	defer ingredients.Close()

	return Load(dishes, ingredients)
}

// Load decodes and validates both catalogs
func Load(dishes, ingredients io.Reader) (*Catalog, error) {
	d, err := LoadDishes(dishes)
	if err != nil {
		return nil, err
	}
	i, err := LoadIngredients(ingredients)
	if err != nil {
		return nil, err
	}
	return &Catalog{Dishes: d, Ingredients: i}, nil
}

// LoadDishes decodes a JSON array of dishes
func LoadDishes(r io.Reader) ([]models.Dish, error) {
	var dishes []models.Dish
	if err := json.NewDecoder(r).Decode(&dishes); err != nil {
		return nil, fmt.Errorf("failed to decode dishes: %w", err)
	}
	if err := ValidateDishes(dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

// LoadIngredients decodes a JSON array of ingredient records
func LoadIngredients(r io.Reader) ([]models.IngredientRecord, error) {
	var ingredients []models.IngredientRecord
	if err := json.NewDecoder(r).Decode(&ingredients); err != nil {
		return nil, fmt.Errorf("failed to decode ingredients: %w", err)
	}
	for i := range ingredients {
		if err := ValidateIngredient(&ingredients[i]); err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", i, err)
		}
	}
	return ingredients, nil
}

// ValidateDishes validates every dish and checks ids are unique
func ValidateDishes(dishes []models.Dish) error {
	seen := make(map[string]bool, len(dishes))
	for i := range dishes {
		if err := ValidateDish(&dishes[i]); err != nil {
			return fmt.Errorf("dish %d: %w", i, err)
		}
		if seen[dishes[i].ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateDishID, dishes[i].ID)
		}
		seen[dishes[i].ID] = true
	}
	return nil
}

// ValidateDish validates a dish
func ValidateDish(d *models.Dish) error {
	if d.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidDish)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDish)
	}
	if d.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidDish)
	}
	if d.Category == "" || d.Category == string(models.CategoryAll) {
		return fmt.Errorf("%w: category %q is not a dish category", ErrInvalidDish, d.Category)
	}
	if d.Ingredients == nil {
		d.Ingredients = []string{}
	}
	return nil
}

// ValidateIngredient validates an ingredient record
func ValidateIngredient(rec *models.IngredientRecord) error {
	if rec.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidIngredient)
	}
	if rec.Allergens == nil {
		rec.Allergens = []string{}
	}
	return nil
}
