package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	StudentID uint    `gorm:"not null" json:"studentId"`
	Student   Student `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload for cook views only

	Status      OrderStatus `gorm:"not null;default:pending" json:"status"`
	PaymentType string      `json:"paymentType,omitempty"` // single, subscription

	Payments []Payment `json:"-"`
}
