package database

import (
	"testing"

	"partymenu/internal/catalog"
	"partymenu/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(DriverSQLite, ":memory:", zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate())
	return store
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("mongodb", "whatever", zap.NewNop().Sugar())
	assert.Error(t, err)
}

func TestSeedAndLoadCatalog(t *testing.T) {
	store := newTestStore(t)

	seed, err := catalog.Default()
	require.NoError(t, err)

	written, err := store.Seed(seed)
	require.NoError(t, err)
	assert.True(t, written)

	loaded, err := store.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, seed.Dishes, loaded.Dishes)
	assert.Equal(t, seed.Ingredients, loaded.Ingredients)
}

func TestSeed_SkipsPopulatedTables(t *testing.T) {
	store := newTestStore(t)

	first := &catalog.Catalog{Dishes: []models.Dish{{ID: "1", Name: "Soup", Category: "Appetizers", Ingredients: []string{"Water"}}}}
	written, err := store.Seed(first)
	require.NoError(t, err)
	assert.True(t, written)

	second := &catalog.Catalog{Dishes: []models.Dish{{ID: "2", Name: "Cake", Category: "Desserts", Ingredients: []string{}}}}
	written, err = store.Seed(second)
	require.NoError(t, err)
	assert.False(t, written)

	loaded, err := store.LoadCatalog()
	require.NoError(t, err)
	require.Len(t, loaded.Dishes, 1)
	assert.Equal(t, "Soup", loaded.Dishes[0].Name)
}

func TestLoadCatalog_PreservesPosition(t *testing.T) {
	store := newTestStore(t)

	c := &catalog.Catalog{Dishes: []models.Dish{
		{ID: "z", Name: "Zucchini Fries", Category: "Appetizers", Ingredients: []string{}},
		{ID: "a", Name: "Apple Pie", Category: "Desserts", Ingredients: []string{"Apple", "Apple"}},
	}}
	_, err := store.Seed(c)
	require.NoError(t, err)

	loaded, err := store.LoadCatalog()
	require.NoError(t, err)
	require.Len(t, loaded.Dishes, 2)
	assert.Equal(t, "z", loaded.Dishes[0].ID)
	assert.Equal(t, []string{"Apple", "Apple"}, loaded.Dishes[1].Ingredients)
}
