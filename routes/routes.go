package routes

import (
	"time"

	"eugene-eats-backend/firebase"
	"eugene-eats-backend/handlers"
	"eugene-eats-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, storage firebase.StorageClient) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	categoryHandler := &handlers.CategoryHandler{DB: db}
	businessHandler := &handlers.BusinessHandler{DB: db, Storage: storage}
	hoursHandler := &handlers.HoursHandler{DB: db}
	blogHandler := &handlers.BlogHandler{DB: db, Storage: storage}
	subscriberHandler := &handlers.SubscriberHandler{DB: db}

	// The signup form is the only unauthenticated write endpoint, so it
	// gets a per-IP rate limit.
	subscribeLimiter := middleware.NewRateLimiter(5, time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		// Directory
		api.GET("/categories", categoryHandler.GetCategories)
		api.GET("/categories/:id", categoryHandler.GetCategory)
		api.GET("/businesses", businessHandler.GetBusinesses)
		api.GET("/businesses/:slug", businessHandler.GetBusiness)
		api.GET("/businesses/:slug/hours", hoursHandler.GetPublicBusinessHours)

		// Blog
		api.GET("/blog", blogHandler.GetPosts)
		api.GET("/blog/:slug", blogHandler.GetPost)

		// Newsletter
		api.POST("/subscribe", subscribeLimiter.Middleware(), subscriberHandler.Subscribe)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Category management
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		// Business management
		admin.GET("/businesses", businessHandler.GetBusinessesAdmin)
		admin.GET("/businesses/:id", businessHandler.GetBusinessAdmin)
		admin.POST("/businesses", businessHandler.CreateBusiness)
		admin.PUT("/businesses/:id", businessHandler.UpdateBusiness)
		admin.DELETE("/businesses/:id", businessHandler.DeleteBusiness)

		// Hours editor
		admin.GET("/businesses/:id/hours", hoursHandler.GetBusinessHours)
		admin.PUT("/businesses/:id/hours", hoursHandler.UpdateBusinessHours)

		// Blog management
		admin.GET("/blog", blogHandler.GetPostsAdmin)
		admin.POST("/blog", blogHandler.CreatePost)
		admin.PUT("/blog/:id", blogHandler.UpdatePost)
		admin.DELETE("/blog/:id", blogHandler.DeletePost)

		// Subscriber management
		admin.GET("/subscribers", subscriberHandler.GetSubscribers)
		admin.GET("/subscribers/export", subscriberHandler.ExportSubscribers)
		admin.DELETE("/subscribers/:id", subscriberHandler.DeleteSubscriber)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
