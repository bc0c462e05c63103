package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/jinzhu/gorm"
)

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// DishRow is the stored form of a Dish. Position keeps catalog order.
type DishRow struct {
	gorm.Model
	DishID       string `gorm:"column:dish_id;unique_index"`
	Position     int    `gorm:"index"`
	Name         string
	Description  string `gorm:"type:text"`
	Price        float64
	Category     string `gorm:"index"`
	PrepTime     string
	Ingredients  StringSlice `gorm:"type:text"`
	IsVegetarian bool
	IsGlutenFree bool
	Image        string
}

// TableName sets the table name for DishRow
func (DishRow) TableName() string {
	return "dishes"
}

// ToDish converts the row to its in-memory form
func (r DishRow) ToDish() Dish {
	return Dish{
		ID:           r.DishID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Category:     r.Category,
		PrepTime:     r.PrepTime,
		Ingredients:  []string(r.Ingredients),
		IsVegetarian: r.IsVegetarian,
		IsGlutenFree: r.IsGlutenFree,
		Image:        r.Image,
	}
}

// NewDishRow builds the stored form of a dish at the given catalog position
func NewDishRow(d Dish, position int) DishRow {
	return DishRow{
		DishID:       d.ID,
		Position:     position,
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		Category:     d.Category,
		PrepTime:     d.PrepTime,
		Ingredients:  StringSlice(d.Ingredients),
		IsVegetarian: d.IsVegetarian,
		IsGlutenFree: d.IsGlutenFree,
		Image:        d.Image,
	}
}

// IngredientRow is the stored form of an IngredientRecord
type IngredientRow struct {
	gorm.Model
	Position     int `gorm:"index"`
	Name         string
	Category     string
	Description  string      `gorm:"type:text"`
	Allergens    StringSlice `gorm:"type:text"`
	IsVegetarian bool
	IsGlutenFree bool
}

// TableName sets the table name for IngredientRow
func (IngredientRow) TableName() string {
	return "ingredients"
}

// ToRecord converts the row to its in-memory form
func (r IngredientRow) ToRecord() IngredientRecord {
	return IngredientRecord{
		Name:         r.Name,
		Category:     r.Category,
		Description:  r.Description,
		Allergens:    []string(r.Allergens),
		IsVegetarian: r.IsVegetarian,
		IsGlutenFree: r.IsGlutenFree,
	}
}

// NewIngredientRow builds the stored form of an ingredient at the given catalog position
func NewIngredientRow(rec IngredientRecord, position int) IngredientRow {
	return IngredientRow{
		Position:     position,
		Name:         rec.Name,
		Category:     rec.Category,
		Description:  rec.Description,
		Allergens:    StringSlice(rec.Allergens),
		IsVegetarian: rec.IsVegetarian,
		IsGlutenFree: rec.IsGlutenFree,
	}
}
