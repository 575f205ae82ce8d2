package routes

import (
	"homepro/controllers"
	"homepro/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	userCtrl := controllers.NewUserController()
	categoryCtrl := controllers.NewCategoryController()
	serviceCtrl := controllers.NewServiceController()
	cartCtrl := controllers.NewCartController()
	checkoutCtrl := controllers.NewCheckoutController()
	bookingCtrl := controllers.NewBookingController()
	notificationCtrl := controllers.NewNotificationController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/forgot-password", authCtrl.ForgotPassword)
	router.POST("/auth/reset-password", authCtrl.ResetPassword)

	router.GET("/categories", categoryCtrl.GetCategories)
	router.GET("/categories/:slug/subcategories", categoryCtrl.GetSubcategories)
	router.GET("/services", serviceCtrl.GetServices)
	router.GET("/services/:id", serviceCtrl.GetServiceByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)
		auth.PATCH("/auth/profile", authCtrl.UpdateProfile)
		auth.POST("/auth/change-password", authCtrl.ChangePassword)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.AddItem)
		auth.POST("/cart/clear", cartCtrl.ClearCart)
		auth.PUT("/cart/:id", cartCtrl.UpdateItem)
		auth.DELETE("/cart/:id", cartCtrl.DeleteItem)

		auth.POST("/checkout", checkoutCtrl.Checkout)

		auth.GET("/bookings", bookingCtrl.GetMyBookings)
		auth.GET("/bookings/:id", bookingCtrl.GetBookingByID)

		auth.GET("/notifications", notificationCtrl.GetNotifications)
		auth.POST("/notifications", notificationCtrl.CreateNotification)
		auth.PUT("/notifications/:id/read", notificationCtrl.MarkRead)
		auth.POST("/notifications/read-all", notificationCtrl.MarkAllRead)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/users", userCtrl.GetAllUsers)

		admin.POST("/categories", categoryCtrl.CreateCategory)
		admin.PATCH("/categories/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", categoryCtrl.DeleteCategory)
		admin.POST("/subcategories", categoryCtrl.CreateSubcategory)
		admin.PATCH("/subcategories/:id", categoryCtrl.UpdateSubcategory)
		admin.DELETE("/subcategories/:id", categoryCtrl.DeleteSubcategory)

		admin.POST("/services", serviceCtrl.CreateService)
		admin.PATCH("/services/:id", serviceCtrl.UpdateService)
		admin.DELETE("/services/:id", serviceCtrl.DeleteService)

		admin.GET("/bookings", bookingCtrl.GetAllBookings)
		admin.PATCH("/bookings/:id/status", bookingCtrl.UpdateBookingStatus)
	}

	router.Static("/uploads", "./uploads")
}
