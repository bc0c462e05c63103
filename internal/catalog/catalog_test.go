package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"partymenu/internal/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Dishes)
	assert.NotEmpty(t, c.Ingredients)
	assert.Equal(t, []string{"All", "Appetizers", "Main Course", "Salads", "Desserts"}, menu.Categories(c.Dishes))
}

func TestLoadDishes_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"missing id", `[{"name":"X","category":"Salads"}]`, ErrInvalidDish},
		{"missing name", `[{"id":"1","category":"Salads"}]`, ErrInvalidDish},
		{"negative price", `[{"id":"1","name":"X","category":"Salads","price":-1}]`, ErrInvalidDish},
		{"wildcard category", `[{"id":"1","name":"X","category":"All"}]`, ErrInvalidDish},
		{"duplicate id", `[{"id":"1","name":"X","category":"Salads"},{"id":"1","name":"Y","category":"Salads"}]`, ErrDuplicateDishID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDishes(strings.NewReader(tt.body))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoadDishes_Malformed(t *testing.T) {
	_, err := LoadDishes(strings.NewReader(`{"not":"an array"}`))
	assert.Error(t, err)
}

func TestLoadDishes_KeepsOrderAndDuplicates(t *testing.T) {
	body := `[
		{"id":"b","name":"B","category":"Salads","ingredients":["Tomato","Tomato"]},
		{"id":"a","name":"A","category":"Desserts"}
	]`

	dishes, err := LoadDishes(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, dishes, 2)

	assert.Equal(t, "b", dishes[0].ID)
	assert.Equal(t, []string{"Tomato", "Tomato"}, dishes[0].Ingredients)
	assert.Equal(t, []string{}, dishes[1].Ingredients)
}

func TestLoadIngredients(t *testing.T) {
	recs, err := LoadIngredients(strings.NewReader(`[{"name":"Feta","allergens":["milk"]},{"name":"Salt"}]`))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, []string{}, recs[1].Allergens)

	_, err = LoadIngredients(strings.NewReader(`[{"category":"Dairy"}]`))
	assert.ErrorIs(t, err, ErrInvalidIngredient)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	dishPath := filepath.Join(dir, "dishes.json")
	ingPath := filepath.Join(dir, "ingredients.json")
	require.NoError(t, os.WriteFile(dishPath, []byte(`[{"id":"1","name":"Soup","category":"Appetizers"}]`), 0o644))
	require.NoError(t, os.WriteFile(ingPath, []byte(`[]`), 0o644))

	c, err := LoadFiles(dishPath, ingPath)
	require.NoError(t, err)
	assert.Len(t, c.Dishes, 1)
	assert.Empty(t, c.Ingredients)

	_, err = LoadFiles(filepath.Join(dir, "missing.json"), ingPath)
	assert.Error(t, err)
}
