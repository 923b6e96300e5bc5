package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/pkg/resp"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/repository"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	Repo *repository.MenuRepository
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Repo: repository.NewMenuRepository(db)}
}

type CreateMenuItemReq struct {
	Date           string   `json:"date" binding:"required"` // YYYY-MM-DD
	MealType       string   `json:"mealType" binding:"required,oneof=breakfast lunch"`
	DishName       string   `json:"dishName" binding:"required"`
	Description    string   `json:"description"`
	Price          *float64 `json:"price" binding:"required,gt=0"`
	AvailableCount *int     `json:"availableCount" binding:"required,gte=0"`
}

// GET /api/menu?date=YYYY-MM-DD (any authenticated); bad or missing date
// falls back to today, same as the dashboard views.
func (mc *MenuController) List(c *gin.Context) {
	date := utils.Today()
	if s := c.Query("date"); s != "" {
		if parsed, err := time.Parse("2006-01-02", s); err == nil {
			date = utils.DateOf(parsed)
		}
	}

	items, err := mc.Repo.ListForDate(date)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"date": date.Format("2006-01-02"), "items": items})
}

// POST /api/menu (cook)
func (mc *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		resp.BadRequest(c, "date must be YYYY-MM-DD")
		return
	}

	item := entity.MenuItem{
		Date:           utils.DateOf(date),
		MealType:       entity.MealType(req.MealType),
		DishName:       req.DishName,
		Description:    req.Description,
		Price:          *req.Price,
		AvailableCount: *req.AvailableCount,
	}
	if err := mc.Repo.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"menuItem": item})
}
