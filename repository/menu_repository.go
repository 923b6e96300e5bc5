package repository

import (
	"time"

	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) ListForDate(date time.Time) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("date = ?", date).
		Order("meal_type, dish_name").
		Find(&items).Error
	return items, err
}

// DecrementAvailability takes one unit off the menu item, guarded against
// going below zero. Rows affected 0 means the item just sold out.
func (r *MenuRepository) DecrementAvailability(tx *gorm.DB, menuItemID uint) (int64, error) {
	res := tx.Model(&entity.MenuItem{}).
		Where("id = ? AND available_count > 0", menuItemID).
		Update("available_count", gorm.Expr("available_count - 1"))
	return res.RowsAffected, res.Error
}
