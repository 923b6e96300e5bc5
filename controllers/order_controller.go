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

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

type CreateOrderReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

type ConfirmPaymentReq struct {
	Method string `json:"method" binding:"required,oneof=card cash"`
}

// POST /api/orders (student)
func (oc *OrderController) Create(c *gin.Context) {
	var req CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.Place(utils.CurrentUserID(c), req.MenuItemID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMenuItemNotFound), errors.Is(err, services.ErrStudentNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrSoldOut), errors.Is(err, services.ErrInsufficientFunds):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{
		"order":   out,
		"message": "order for \"" + out.DishName + "\" created, balance debited",
	})
}

// POST /api/orders/:id/pay (cook or admin)
func (oc *OrderController) Pay(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var req ConfirmPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Service.ConfirmPayment(uint(id), entity.PaymentMethod(req.Method))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrMenuItemNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrOrderNotPending), errors.Is(err, services.ErrBadPaymentMethod):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, out)
}

// POST /api/orders/:id/issue (cook)
func (oc *OrderController) Issue(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	if err := oc.Service.Issue(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrOrderNotPaid):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"message": "order issued"})
}

// GET /api/orders/my (student)
func (oc *OrderController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Service.ListForStudent(utils.CurrentUserID(c), limit)
	if err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
