package entity

import (
	"gorm.io/gorm"
)

// Student is the canteen profile of a user with the student role.
// At most one profile per user.
type Student struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"userId"`
	User   User `json:"-"`

	Grade       string  `json:"grade"`
	Allergies   string  `json:"allergies"`
	Preferences string  `json:"preferences"`
	Balance     float64 `gorm:"default:0" json:"balance"`

	Orders  []Order  `json:"-"`
	Reviews []Review `json:"-"`
}
