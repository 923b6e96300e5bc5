package repository

import (
	"time"

	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID         uint               `json:"id"`
	MenuItemID uint               `json:"menuItemId"`
	Status     entity.OrderStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
}

func (r *OrderRepository) ListForStudent(studentID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, menu_item_id, status, created_at").
		Where("student_id = ?", studentID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListForDay returns the orders placed during one calendar day, with menu
// items preloaded for the cook view.
func (r *OrderRepository) ListForDay(day time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("MenuItem").
		Where("created_at >= ? AND created_at < ?", day, day.AddDate(0, 0, 1)).
		Order("id DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard advances an order from one status to another in a
// single conditional update. Rows affected 0 means the order was not in the
// expected status (or a concurrent request won the transition).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Payments ----------------

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *OrderRepository) CountPayments() (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Payment{}).Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) SumPayments() (float64, error) {
	var row struct{ Total float64 }
	err := r.DB.Model(&entity.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Scan(&row).Error
	return row.Total, err
}
