package entity

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem is a dish offered on a specific date for a meal slot.
// AvailableCount is only ever decremented through the guarded update in
// the order repository, so it cannot go below zero. No column default:
// zero availability is a legal value and a gorm default would overwrite
// it on insert.
type MenuItem struct {
	gorm.Model
	Date           time.Time `gorm:"index;not null" json:"date"`
	MealType       MealType  `gorm:"not null" json:"mealType"`
	DishName       string    `gorm:"not null" json:"dishName"`
	Description    string    `json:"description"`
	Price          float64   `gorm:"not null" json:"price"`
	AvailableCount int       `json:"availableCount"`

	Orders []Order `json:"-"`
}
