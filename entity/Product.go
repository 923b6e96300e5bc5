package entity

import (
	"gorm.io/gorm"
)

// Product is a stockroom item tracked in a unit of measure (kg, l, pcs).
// The quantity columns carry no gorm defaults: MinQuantity 0 is a legal
// value (progress reports 0 for it) and a default would overwrite it on
// insert.
type Product struct {
	gorm.Model
	Name            string  `gorm:"not null" json:"name"`
	Unit            string  `gorm:"not null" json:"unit"`
	CurrentQuantity float64 `json:"currentQuantity"`
	MinQuantity     float64 `json:"minQuantity"`

	PurchaseRequests []PurchaseRequest `json:"-"`
}

func (p *Product) IsLowStock() bool {
	return p.CurrentQuantity < p.MinQuantity
}

// ProgressPercentage reports fill level against a nominal "full" stock of
// MinQuantity*3, clamped to [0, 100]. Zero when the nominal level is not
// positive, so a product with MinQuantity = 0 never divides by zero.
func (p *Product) ProgressPercentage() float64 {
	max := p.MinQuantity * 3
	if max <= 0 {
		return 0
	}
	pct := p.CurrentQuantity / max * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
