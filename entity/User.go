package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
	Role     Role   `gorm:"not null;default:student" json:"role"`

	// Relations — preload only when needed
	Student           *Student          `gorm:"foreignKey:UserID" json:"-"`
	PurchaseRequests  []PurchaseRequest `gorm:"foreignKey:RequestedByID" json:"-"`
	ApprovedPurchases []PurchaseRequest `gorm:"foreignKey:ApprovedByID" json:"-"`
}
