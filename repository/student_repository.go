package repository

import (
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Create(tx *gorm.DB, s *entity.Student) error {
	return tx.Create(s).Error
}

func (r *StudentRepository) FindByUserID(userID uint) (*entity.Student, error) {
	var s entity.Student
	if err := r.DB.Where("user_id = ?", userID).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) FindByID(id uint) (*entity.Student, error) {
	var s entity.Student
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// DebitBalance subtracts amount from the student's balance, guarded so the
// balance can never go negative even under concurrent orders. Returns rows
// affected: 0 means the guard failed (insufficient funds).
func (r *StudentRepository) DebitBalance(tx *gorm.DB, studentID uint, amount float64) (int64, error) {
	res := tx.Model(&entity.Student{}).
		Where("id = ? AND balance >= ?", studentID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	return res.RowsAffected, res.Error
}
