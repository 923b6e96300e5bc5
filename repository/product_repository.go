package repository

import (
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List() ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Order("name").Find(&products).Error
	return products, err
}

// AddQuantity applies a manual restock. Quantity is validated positive by
// the service, so the update is unconditional.
func (r *ProductRepository) AddQuantity(productID uint, qty float64) (int64, error) {
	res := r.DB.Model(&entity.Product{}).
		Where("id = ?", productID).
		Update("current_quantity", gorm.Expr("current_quantity + ?", qty))
	return res.RowsAffected, res.Error
}
