package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/pkg/resp"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/repository"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/services"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/utils"
	"gorm.io/gorm"
)

// DashboardController serves the per-role aggregate views the original
// server-rendered pages were built from.
type DashboardController struct {
	DB        *gorm.DB
	Orders    *services.OrderService
	Inventory *services.InventoryService
	MenuRepo  *repository.MenuRepository
	UserRepo  *repository.UserRepository
	Students  *repository.StudentRepository
	Reviews   *repository.ReviewRepository
}

func NewDashboardController(db *gorm.DB, orders *services.OrderService, inv *services.InventoryService) *DashboardController {
	return &DashboardController{
		DB:        db,
		Orders:    orders,
		Inventory: inv,
		MenuRepo:  repository.NewMenuRepository(db),
		UserRepo:  repository.NewUserRepository(db),
		Students:  repository.NewStudentRepository(db),
		Reviews:   repository.NewReviewRepository(db),
	}
}

// GET /student/dashboard (student)
func (dc *DashboardController) Student(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	student, err := dc.Students.FindByUserID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "student profile not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	today := utils.Today()
	menu, err := dc.MenuRepo.ListForDate(today)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	orders, err := dc.Orders.Repo.ListForStudent(student.ID, 50)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"student":   student,
		"todayMenu": menu,
		"orders":    orders,
		"date":      today.Format("2006-01-02"),
	})
}

// GET /cook/dashboard (cook)
func (dc *DashboardController) Cook(c *gin.Context) {
	today := utils.Today()

	orders, err := dc.Orders.ListForDay(today)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	products, err := dc.Inventory.ListProducts()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	pending, err := dc.Inventory.ListRequests(entity.PurchasePending)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	stats, err := dc.Inventory.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"todayOrders":     orders,
		"products":        products,
		"pendingRequests": pending,
		"purchaseStats":   stats,
		"date":            today.Format("2006-01-02"),
	})
}

// GET /admin/dashboard (admin)
func (dc *DashboardController) Admin(c *gin.Context) {
	db := dc.DB

	countUsers := func(role entity.Role) (int64, error) {
		var n int64
		q := db.Model(&entity.User{})
		if role != "" {
			q = q.Where("role = ?", role)
		}
		err := q.Count(&n).Error
		return n, err
	}

	totalUsers, err := countUsers("")
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	totalStudents, err := countUsers(entity.RoleStudent)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	totalCooks, err := countUsers(entity.RoleCook)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	totalAdmins, err := countUsers(entity.RoleAdmin)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var totalOrders, ordersToday int64
	if err := db.Model(&entity.Order{}).Count(&totalOrders).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	today := utils.Today()
	if err := db.Model(&entity.Order{}).
		Where("created_at >= ? AND created_at < ?", today, today.AddDate(0, 0, 1)).
		Count(&ordersToday).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	totalPayments, err := dc.Orders.Repo.CountPayments()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	totalRevenue, err := dc.Orders.Repo.SumPayments()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	totalReviews, avgRating, err := dc.Reviews.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	pending, err := dc.Inventory.ListRequests(entity.PurchasePending)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	type recentUser struct {
		ID        uint        `json:"id"`
		Username  string      `json:"username"`
		Role      entity.Role `json:"role"`
		CreatedAt time.Time   `json:"createdAt"`
	}
	var recentUsers []recentUser
	if err := db.Model(&entity.User{}).
		Select("id, username, role, created_at").
		Order("id DESC").Limit(5).
		Scan(&recentUsers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	recentReviews, err := dc.Reviews.ListRecent(5)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalUsers":      totalUsers,
		"totalStudents":   totalStudents,
		"totalCooks":      totalCooks,
		"totalAdmins":     totalAdmins,
		"totalOrders":     totalOrders,
		"ordersToday":     ordersToday,
		"totalPayments":   totalPayments,
		"totalRevenue":    totalRevenue,
		"totalReviews":    totalReviews,
		"avgRating":       avgRating,
		"pendingRequests": pending,
		"recentUsers":     recentUsers,
		"recentReviews":   recentReviews,
	})
}
