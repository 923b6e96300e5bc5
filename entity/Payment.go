package entity

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	Amount    float64       `gorm:"not null" json:"amount"`
	Method    PaymentMethod `gorm:"not null" json:"method"`
	Status    string        `gorm:"default:completed" json:"status"`
	Reference string        `gorm:"uniqueIndex" json:"reference"`
	PaidAt    time.Time     `json:"paidAt"`
}
