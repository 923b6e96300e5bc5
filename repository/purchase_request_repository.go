package repository

import (
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"gorm.io/gorm"
)

type PurchaseRequestRepository struct {
	DB *gorm.DB
}

func NewPurchaseRequestRepository(db *gorm.DB) *PurchaseRequestRepository {
	return &PurchaseRequestRepository{DB: db}
}

func (r *PurchaseRequestRepository) Create(req *entity.PurchaseRequest) error {
	return r.DB.Create(req).Error
}

func (r *PurchaseRequestRepository) Get(id uint) (*entity.PurchaseRequest, error) {
	var req entity.PurchaseRequest
	if err := r.DB.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PurchaseRequestRepository) List(status entity.PurchaseStatus) ([]entity.PurchaseRequest, error) {
	db := r.DB.Order("id DESC")
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var reqs []entity.PurchaseRequest
	err := db.Find(&reqs).Error
	return reqs, err
}

// DecideGuard moves a pending request to approved or rejected and records
// the approver. Rows affected 0 means the request was not pending anymore.
func (r *PurchaseRequestRepository) DecideGuard(id uint, to entity.PurchaseStatus, approverID uint) (int64, error) {
	res := r.DB.Model(&entity.PurchaseRequest{}).
		Where("id = ? AND status = ?", id, entity.PurchasePending).
		Updates(map[string]any{"status": to, "approved_by_id": approverID})
	return res.RowsAffected, res.Error
}
