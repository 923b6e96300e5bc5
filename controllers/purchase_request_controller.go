package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/pkg/resp"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/services"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/utils"
)

type PurchaseRequestController struct {
	Service *services.InventoryService
}

func NewPurchaseRequestController(svc *services.InventoryService) *PurchaseRequestController {
	return &PurchaseRequestController{Service: svc}
}

type CreatePurchaseReq struct {
	ProductID uint    `json:"productId" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
}

// POST /api/purchase-requests (cook)
func (prc *PurchaseRequestController) Create(c *gin.Context) {
	var req CreatePurchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pr, err := prc.Service.CreateRequest(req.ProductID, req.Quantity, utils.CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidQuantity):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{"request": pr})
}

// GET /api/purchase-requests?status=pending (cook, admin)
func (prc *PurchaseRequestController) List(c *gin.Context) {
	status := entity.PurchaseStatus(c.Query("status"))

	items, err := prc.Service.ListRequests(status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /api/purchase-requests/:id/approve (admin, cook)
func (prc *PurchaseRequestController) Approve(c *gin.Context) {
	prc.decide(c, prc.Service.Approve)
}

// PATCH /api/purchase-requests/:id/reject (admin, cook)
func (prc *PurchaseRequestController) Reject(c *gin.Context) {
	prc.decide(c, prc.Service.Reject)
}

func (prc *PurchaseRequestController) decide(c *gin.Context, fn func(requestID, approverID uint) (*entity.PurchaseRequest, error)) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid request id")
		return
	}

	pr, err := fn(uint(id), utils.CurrentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrRequestNotPending):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"request": pr})
}
