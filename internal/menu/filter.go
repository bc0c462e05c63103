// Package menu holds the dish filtering and ingredient resolution logic
// behind the menu screens. Everything here is pure: callers pass the
// catalogs in and get fresh slices back.
package menu

import (
	"strings"

	"partymenu/internal/models"
)

// NeutralCriteria returns criteria with every filter disabled.
func NeutralCriteria() models.FilterCriteria {
	return models.FilterCriteria{Category: string(models.CategoryAll)}
}

// Apply returns the dishes of catalog that satisfy every active criterion,
// in catalog order. Returned dishes own their Ingredients slices, so the
// catalog is never reachable through the result.
func Apply(catalog []models.Dish, criteria models.FilterCriteria) []models.Dish {
	query := strings.ToLower(strings.TrimSpace(criteria.SearchQuery))

	result := make([]models.Dish, 0, len(catalog))
	for i := range catalog {
		dish := &catalog[i]
		if !matchesCategory(dish, criteria.Category) {
			continue
		}
		if criteria.VegetarianOnly && !dish.IsVegetarian {
			continue
		}
		if criteria.GlutenFreeOnly && !dish.IsGlutenFree {
			continue
		}
		if query != "" && !matchesQuery(dish, query) {
			continue
		}
		result = append(result, copyDish(*dish))
	}
	return result
}

// matchesCategory is exact and case-sensitive; "All" matches everything.
// An empty category is treated as "All" so zero-value criteria are neutral.
func matchesCategory(dish *models.Dish, category string) bool {
	if category == "" || category == string(models.CategoryAll) {
		return true
	}
	return dish.IsInCategory(models.MenuCategory(category))
}

func copyDish(dish models.Dish) models.Dish {
	if dish.Ingredients != nil {
		ingredients := make([]string, len(dish.Ingredients))
		copy(ingredients, dish.Ingredients)
		dish.Ingredients = ingredients
	}
	return dish
}

// matchesQuery expects query already trimmed and lower-cased.
func matchesQuery(dish *models.Dish, query string) bool {
	if strings.Contains(strings.ToLower(dish.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(dish.Description), query) {
		return true
	}
	for _, ing := range dish.Ingredients {
		if strings.Contains(strings.ToLower(ing), query) {
			return true
		}
	}
	return false
}

// Categories returns "All" followed by the distinct dish categories in
// first-appearance order, for building category tabs.
func Categories(catalog []models.Dish) []string {
	categories := []string{string(models.CategoryAll)}
	seen := make(map[string]bool)
	for _, dish := range catalog {
		if seen[dish.Category] {
			continue
		}
		seen[dish.Category] = true
		categories = append(categories, dish.Category)
	}
	return categories
}

// FindDish returns the dish with the given id.
func FindDish(catalog []models.Dish, id string) (models.Dish, bool) {
	for _, dish := range catalog {
		if dish.ID == id {
			return dish, true
		}
	}
	return models.Dish{}, false
}
