package entity

import (
	"gorm.io/gorm"
)

// Review links to a dish by free-text name, not by menu item id. The loose
// coupling is inherited from the original schema and kept as-is.
type Review struct {
	gorm.Model
	StudentID uint    `gorm:"not null" json:"studentId"`
	Student   Student `json:"-"`

	DishName string `gorm:"not null" json:"dishName"`
	Rating   int    `gorm:"not null" json:"rating"` // 1-5
	Comment  string `json:"comment"`
}
