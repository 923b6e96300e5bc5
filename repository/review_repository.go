package repository

import (
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) ListRecent(limit int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var reviews []entity.Review
	err := r.DB.Order("id DESC").Limit(limit).Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Stats() (count int64, avg float64, err error) {
	if err = r.DB.Model(&entity.Review{}).Count(&count).Error; err != nil {
		return
	}
	var row struct{ Avg float64 }
	err = r.DB.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg").
		Scan(&row).Error
	avg = row.Avg
	return
}
