package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/configs"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/controllers"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/entity"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/middlewares"
	"github.com/ludomankaaaa-hub/Project-Canteen-predprof/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Services
	authSvc := services.NewAuthService(db, cfg.JWTSecret, cfg.JWTTTL)
	orderSvc := services.NewOrderService(db)
	invSvc := services.NewInventoryService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	productCtrl := controllers.NewProductController(invSvc)
	purchaseCtrl := controllers.NewPurchaseRequestController(invSvc)
	reviewCtrl := controllers.NewReviewController(db)
	menuCtrl := controllers.NewMenuController(db)
	dashCtrl := controllers.NewDashboardController(db, orderSvc, invSvc)

	secret := cfg.JWTSecret

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(secret), authCtrl.Me)

	// Products: list is public, mutations are the cook's
	r.GET("/api/products", productCtrl.List)
	cookProducts := r.Group("/api/products", middlewares.AuthMiddleware(secret, entity.RoleCook))
	{
		cookProducts.POST("", productCtrl.Create)
		cookProducts.POST("/:id/restock", productCtrl.Restock)
	}

	// Menu
	r.GET("/api/menu", middlewares.AuthMiddleware(secret), menuCtrl.List)
	r.POST("/api/menu", middlewares.AuthMiddleware(secret, entity.RoleCook), menuCtrl.Create)

	// Orders
	student := r.Group("/api/orders", middlewares.AuthMiddleware(secret, entity.RoleStudent))
	{
		student.POST("", orderCtrl.Create)
		student.GET("/my", orderCtrl.ListForMe)
	}
	r.POST("/api/orders/:id/pay", middlewares.AuthMiddleware(secret, entity.RoleCook, entity.RoleAdmin), orderCtrl.Pay)
	r.POST("/api/orders/:id/issue", middlewares.AuthMiddleware(secret, entity.RoleCook), orderCtrl.Issue)

	// Purchase requests; decisions are open to admin and cook, the source
	// never pinned them to a single role
	r.POST("/api/purchase-requests", middlewares.AuthMiddleware(secret, entity.RoleCook), purchaseCtrl.Create)
	decisions := r.Group("/api/purchase-requests", middlewares.AuthMiddleware(secret, entity.RoleAdmin, entity.RoleCook))
	{
		decisions.GET("", purchaseCtrl.List)
		decisions.PATCH("/:id/approve", purchaseCtrl.Approve)
		decisions.PATCH("/:id/reject", purchaseCtrl.Reject)
	}

	// Reviews
	r.POST("/api/reviews", middlewares.AuthMiddleware(secret, entity.RoleStudent), reviewCtrl.Create)
	r.GET("/api/reviews", middlewares.AuthMiddleware(secret), reviewCtrl.List)

	// Dashboards
	r.GET("/student/dashboard", middlewares.AuthMiddleware(secret, entity.RoleStudent), dashCtrl.Student)
	r.GET("/cook/dashboard", middlewares.AuthMiddleware(secret, entity.RoleCook), dashCtrl.Cook)
	r.GET("/admin/dashboard", middlewares.AuthMiddleware(secret, entity.RoleAdmin), dashCtrl.Admin)
}
