package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/pkg/resp"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/services"
)

type ProductController struct {
	Service *services.InventoryService
}

func NewProductController(svc *services.InventoryService) *ProductController {
	return &ProductController{Service: svc}
}

type CreateProductReq struct {
	Name            string   `json:"name" binding:"required"`
	Unit            string   `json:"unit" binding:"required"`
	CurrentQuantity *float64 `json:"currentQuantity" binding:"required"`
	MinQuantity     *float64 `json:"minQuantity" binding:"required"`
}

type RestockReq struct {
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

// GET /api/products (public)
func (pc *ProductController) List(c *gin.Context) {
	products, err := pc.Service.ListProducts()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products})
}

// POST /api/products (cook)
func (pc *ProductController) Create(c *gin.Context) {
	var req CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		// non-numeric quantities also land here via the JSON binding
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := pc.Service.CreateProduct(req.Name, req.Unit, *req.CurrentQuantity, *req.MinQuantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNameRequired), errors.Is(err, services.ErrProductUnitRequired):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{"message": "product added", "product": product})
}

// POST /api/products/:id/restock (cook)
func (pc *ProductController) Restock(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}

	var req RestockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	product, err := pc.Service.Restock(uint(id), req.Quantity)
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

	resp.OK(c, gin.H{"product": product})
}
