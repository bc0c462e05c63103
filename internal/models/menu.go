package models

// Dish represents one item on the party menu
type Dish struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Category     string   `json:"category"`
	PrepTime     string   `json:"prepTime"`
	Ingredients  []string `json:"ingredients"`
	IsVegetarian bool     `json:"isVegetarian"`
	IsGlutenFree bool     `json:"isGlutenFree"`
	Image        string   `json:"image,omitempty"`
}

// MenuCategory represents the category of a dish
type MenuCategory string

const (
	// CategoryAll is the wildcard filter value. No dish carries it.
	CategoryAll MenuCategory = "All"

	// Menu categories
	CategoryAppetizers MenuCategory = "Appetizers"
	CategoryMainCourse MenuCategory = "Main Course"
	CategorySalads     MenuCategory = "Salads"
	CategoryDesserts   MenuCategory = "Desserts"
)

// IsInCategory checks if the dish belongs to a specific category
func (d *Dish) IsInCategory(category MenuCategory) bool {
	return d.Category == string(category)
}

// FilterCriteria is the search/category/dietary selection driving the dish list.
type FilterCriteria struct {
	SearchQuery    string `json:"searchQuery" form:"q"`
	Category       string `json:"category" form:"category"`
	VegetarianOnly bool   `json:"vegetarianOnly" form:"vegetarian"`
	GlutenFreeOnly bool   `json:"glutenFreeOnly" form:"gluten_free"`
}
