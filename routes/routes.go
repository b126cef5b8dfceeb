package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Daison12121/bella-vista-restaurant/controllers"
	"github.com/Daison12121/bella-vista-restaurant/middlewares"
	"github.com/Daison12121/bella-vista-restaurant/repository"
	"github.com/Daison12121/bella-vista-restaurant/services"
	"github.com/Daison12121/bella-vista-restaurant/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	categoryRepo := repository.NewCategoryRepository(db)
	dishRepo := repository.NewDishRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(categoryRepo, dishRepo, ingredientRepo, tableRepo)
	reviewSvc := services.NewReviewService(reviewRepo)
	cartSvc := services.NewCartService(cartRepo)
	orderSvc := services.NewOrderService(db, orderRepo, tableRepo, cartSvc)

	// Live order feed for the admin panel
	hub := ws.NewOrderFeedHub()
	go hub.Run()
	orderSvc.Events = hub

	// Controllers
	catalogCtrl := controllers.NewCatalogController(catalogSvc, reviewSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(catalogSvc, reviewSvc)

	// Public menu
	r.GET("/categories", catalogCtrl.Categories)
	r.GET("/categories/:id/dishes", catalogCtrl.CategoryDishes)
	r.GET("/dishes/search", catalogCtrl.Search)
	r.GET("/dishes/:id", catalogCtrl.Dish)
	r.GET("/dishes/:id/reviews", catalogCtrl.DishReviews)
	r.POST("/dishes/:id/reviews", catalogCtrl.CreateReview)
	r.GET("/ingredients", catalogCtrl.Ingredients)
	r.GET("/tables", catalogCtrl.Tables)

	// Cart (session cookie)
	cart := r.Group("/cart", middlewares.CartSession())
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:dishId", cartCtrl.UpdateItem)
		cart.DELETE("/items/:dishId", cartCtrl.RemoveItem)
		cart.PATCH("/table", cartCtrl.SetTable)
		cart.PATCH("/customer", cartCtrl.SetCustomer)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/checkout", orderCtrl.Checkout)
	}

	// Admin panel
	admin := r.Group("/admin")
	{
		admin.GET("/categories", adminCtrl.Categories)
		admin.POST("/categories", adminCtrl.CreateCategory)
		admin.PATCH("/categories/:id", adminCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", adminCtrl.DeleteCategory)
		admin.PATCH("/categories/:id/toggle", adminCtrl.ToggleCategory)

		admin.GET("/dishes", adminCtrl.Dishes)
		admin.POST("/dishes", adminCtrl.CreateDish)
		admin.PATCH("/dishes/:id", adminCtrl.UpdateDish)
		admin.DELETE("/dishes/:id", adminCtrl.DeleteDish)
		admin.PATCH("/dishes/:id/toggle", adminCtrl.ToggleDish)

		admin.POST("/ingredients", adminCtrl.CreateIngredient)
		admin.DELETE("/ingredients/:id", adminCtrl.DeleteIngredient)

		admin.GET("/orders", orderCtrl.List)
		admin.GET("/orders/:id", orderCtrl.Detail)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
		admin.GET("/analytics", orderCtrl.Analytics)

		admin.PATCH("/reviews/:id/approve", adminCtrl.ApproveReview)
	}

	// WS route: /ws/admin/orders
	r.GET("/ws/admin/orders", hub.HandleWebSocket)
}
