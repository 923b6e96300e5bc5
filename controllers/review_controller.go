package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/pkg/resp"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/repository"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/utils"
	"gorm.io/gorm"
)

type ReviewController struct {
	Repo        *repository.ReviewRepository
	StudentRepo *repository.StudentRepository
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{
		Repo:        repository.NewReviewRepository(db),
		StudentRepo: repository.NewStudentRepository(db),
	}
}

type CreateReviewReq struct {
	// Dish is referenced by name only; the schema keeps no foreign key to
	// the menu, so a review survives menu rotation.
	DishName string `json:"dishName" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

// POST /api/reviews (student)
func (rc *ReviewController) Create(c *gin.Context) {
	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	student, err := rc.StudentRepo.FindByUserID(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "student profile not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	rev := entity.Review{
		StudentID: student.ID,
		DishName:  req.DishName,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := rc.Repo.Create(&rev); err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"review": rev})
}

// GET /api/reviews (any authenticated)
func (rc *ReviewController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reviews, err := rc.Repo.ListRecent(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews})
}
