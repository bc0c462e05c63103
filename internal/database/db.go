package database

import (
	"fmt"
	"time"

	"partymenu/internal/catalog"
	"partymenu/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"              // SQLite driver
	"go.uber.org/zap"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Store persists the dish and ingredient catalogs
type Store struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// Open connects to the database
func Open(driver, url string, logger *zap.SugaredLogger) (*Store, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Every connection to ":memory:" gets its own database
	if driver == DriverSQLite && url == ":memory:" {
		db.DB().SetMaxOpenConns(1)
	} else {
		db.DB().SetMaxIdleConns(10)
		db.DB().SetMaxOpenConns(100)
		db.DB().SetConnMaxLifetime(time.Hour)
	}
	db.LogMode(false)

	logger.Infow("Connected to database", "driver", driver)
	return &Store{db: db, logger: logger}, nil
}

// Migrate creates or updates the catalog tables
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&models.DishRow{}, &models.IngredientRow{}).Error
}

// Seed stores the catalog if the tables are empty. It reports whether anything was written.
func (s *Store) Seed(c *catalog.Catalog) (bool, error) {
	var dishCount, ingredientCount int64
	if err := s.db.Model(&models.DishRow{}).Count(&dishCount).Error; err != nil {
		return false, err
	}
	if err := s.db.Model(&models.IngredientRow{}).Count(&ingredientCount).Error; err != nil {
		return false, err
	}
	if dishCount > 0 || ingredientCount > 0 {
		s.logger.Debugw("Catalog tables already populated", "dishes", dishCount, "ingredients", ingredientCount)
		return false, nil
	}

	tx := s.db.Begin()
	for i, dish := range c.Dishes {
		row := models.NewDishRow(dish, i)
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return false, fmt.Errorf("failed to seed dish %s: %w", dish.ID, err)
		}
	}
	for i, rec := range c.Ingredients {
		row := models.NewIngredientRow(rec, i)
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return false, fmt.Errorf("failed to seed ingredient %s: %w", rec.Name, err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return false, err
	}

	s.logger.Infow("Seeded catalog", "dishes", len(c.Dishes), "ingredients", len(c.Ingredients))
	return true, nil
}

// LoadCatalog reads both catalogs back in stored order
func (s *Store) LoadCatalog() (*catalog.Catalog, error) {
	var dishRows []models.DishRow
	if err := s.db.Order("position asc").Find(&dishRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load dishes: %w", err)
	}
	var ingredientRows []models.IngredientRow
	if err := s.db.Order("position asc").Find(&ingredientRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}

	c := &catalog.Catalog{
		Dishes:      make([]models.Dish, 0, len(dishRows)),
		Ingredients: make([]models.IngredientRecord, 0, len(ingredientRows)),
	}
	for _, row := range dishRows {
		c.Dishes = append(c.Dishes, row.ToDish())
	}
	for _, row := range ingredientRows {
		c.Ingredients = append(c.Ingredients, row.ToRecord())
	}

	if err := catalog.ValidateDishes(c.Dishes); err != nil {
		return nil, err
	}
	return c, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
