package services

import (
	"errors"
	"strings"

	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/repository"
	"gorm.io/gorm"
)

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrProductUnitRequired = errors.New("unit of measure is required")
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrRequestNotFound     = errors.New("purchase request not found")
	ErrRequestNotPending   = errors.New("purchase request is not pending")
)

type InventoryService struct {
	ProductRepo *repository.ProductRepository
	RequestRepo *repository.PurchaseRequestRepository
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{
		ProductRepo: repository.NewProductRepository(db),
		RequestRepo: repository.NewPurchaseRequestRepository(db),
	}
}

// ProductOut is a product plus its derived stock state.
type ProductOut struct {
	ID                 uint    `json:"id"`
	Name               string  `json:"name"`
	Unit               string  `json:"unit"`
	CurrentQuantity    float64 `json:"currentQuantity"`
	MinQuantity        float64 `json:"minQuantity"`
	IsLowStock         bool    `json:"isLowStock"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

func productOut(p *entity.Product) ProductOut {
	return ProductOut{
		ID:                 p.ID,
		Name:               p.Name,
		Unit:               p.Unit,
		CurrentQuantity:    p.CurrentQuantity,
		MinQuantity:        p.MinQuantity,
		IsLowStock:         p.IsLowStock(),
		ProgressPercentage: p.ProgressPercentage(),
	}
}

func (s *InventoryService) CreateProduct(name, unit string, current, min float64) (*ProductOut, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if unit == "" {
		return nil, ErrProductUnitRequired
	}

	p := entity.Product{
		Name:            name,
		Unit:            unit,
		CurrentQuantity: current,
		MinQuantity:     min,
	}
	if err := s.ProductRepo.Create(&p); err != nil {
		return nil, err
	}
	out := productOut(&p)
	return &out, nil
}

func (s *InventoryService) ListProducts() ([]ProductOut, error) {
	products, err := s.ProductRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]ProductOut, 0, len(products))
	for i := range products {
		out = append(out, productOut(&products[i]))
	}
	return out, nil
}

// Restock is the manual step that applies an approved purchase to stock.
// Approval alone never changes quantities.
func (s *InventoryService) Restock(productID uint, qty float64) (*ProductOut, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	affected, err := s.ProductRepo.AddQuantity(productID, qty)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}
	p, err := s.ProductRepo.Get(productID)
	if err != nil {
		return nil, err
	}
	out := productOut(p)
	return &out, nil
}

func (s *InventoryService) CreateRequest(productID uint, qty float64, requestedBy uint) (*entity.PurchaseRequest, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.ProductRepo.Get(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	req := entity.PurchaseRequest{
		ProductID:     productID,
		Quantity:      qty,
		Status:        entity.PurchasePending,
		RequestedByID: requestedBy,
	}
	if err := s.RequestRepo.Create(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *InventoryService) ListRequests(status entity.PurchaseStatus) ([]entity.PurchaseRequest, error) {
	return s.RequestRepo.List(status)
}

func (s *InventoryService) Approve(requestID, approverID uint) (*entity.PurchaseRequest, error) {
	return s.decide(requestID, approverID, entity.PurchaseApproved)
}

func (s *InventoryService) Reject(requestID, approverID uint) (*entity.PurchaseRequest, error) {
	return s.decide(requestID, approverID, entity.PurchaseRejected)
}

func (s *InventoryService) decide(requestID, approverID uint, to entity.PurchaseStatus) (*entity.PurchaseRequest, error) {
	if _, err := s.RequestRepo.Get(requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	affected, err := s.RequestRepo.DecideGuard(requestID, to, approverID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrRequestNotPending
	}
	return s.RequestRepo.Get(requestID)
}

// PurchaseStats are the aggregates behind the cook's purchase statistics
// page.
type PurchaseStats struct {
	TotalProducts    int          `json:"totalProducts"`
	LowStockCount    int          `json:"lowStockCount"`
	LowStockProducts []ProductOut `json:"lowStockProducts"`
	TotalRequests    int          `json:"totalRequests"`
	PendingRequests  int          `json:"pendingRequests"`
	ApprovedRequests int          `json:"approvedRequests"`
}

func (s *InventoryService) Stats() (*PurchaseStats, error) {
	products, err := s.ListProducts()
	if err != nil {
		return nil, err
	}
	requests, err := s.RequestRepo.List("")
	if err != nil {
		return nil, err
	}

	stats := PurchaseStats{
		TotalProducts:    len(products),
		TotalRequests:    len(requests),
		LowStockProducts: []ProductOut{}, // serialize as [] even when empty
	}
	for _, p := range products {
		if p.IsLowStock {
			stats.LowStockCount++
			stats.LowStockProducts = append(stats.LowStockProducts, p)
		}
	}
	for _, r := range requests {
		switch r.Status {
		case entity.PurchasePending:
			stats.PendingRequests++
		case entity.PurchaseApproved:
			stats.ApprovedRequests++
		}
	}
	return &stats, nil
}
