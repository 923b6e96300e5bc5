package entity

import (
	"gorm.io/gorm"
)

// PurchaseRequest asks to restock a product by a quantity. Approval records
// the approver but does not touch product stock; restocking is an explicit
// separate action.
type PurchaseRequest struct {
	gorm.Model
	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `json:"-"`

	Quantity float64        `gorm:"not null" json:"quantity"`
	Status   PurchaseStatus `gorm:"not null;default:pending" json:"status"`

	RequestedByID uint  `gorm:"not null" json:"requestedById"`
	ApprovedByID  *uint `json:"approvedById,omitempty"`
}
