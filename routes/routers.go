package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"guaranihost/controllers"
	"guaranihost/middleware"
	"guaranihost/services"
	"guaranihost/services/logger"
)

// Deps dependencias ya construidas que usan los controladores
type Deps struct {
	API        services.API
	Properties *services.PropertyService
	Bookings   *services.BookingFacade
	Staging    *services.StagingStore
	Filters    services.FiltersStore
	Favorites  services.FavoriteStore
	Melody     *melody.Melody
	Logger     logger.Logger
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	propertyController := controllers.NewPropertyController(deps.Properties, deps.API, deps.Bookings, deps.Filters, deps.Logger)
	stagingController := controllers.NewStagingController(deps.Staging)
	tourController := controllers.NewTourController(deps.API, deps.Bookings, deps.Filters, deps.Favorites, deps.Logger)
	bookingController := controllers.NewBookingController(deps.Bookings)
	authController := controllers.NewAuthController(deps.API, deps.Logger)
	favoriteController := controllers.NewFavoriteController(deps.Favorites)
	homeController := controllers.NewHomeController(deps.API, deps.API)

	v1 := router.Group("/api/v1")
	v1.GET("/home", homeController.GetHome)

	v1.POST("/auth/login", authController.Login)
	v1.DELETE("/auth/logout", authController.Logout)
	v1.GET("/auth/me", authController.Me)

	v1.GET("/properties", middleware.RequireAuth(), propertyController.GetProperties)
	v1.GET("/properties/export.csv", middleware.RequireAuth(), propertyController.ExportCSV)
	v1.GET("/properties/export.html", middleware.RequireAuth(), propertyController.ExportHTML)
	v1.POST("/properties", middleware.RequireAuth(), propertyController.CreateProperty)
	v1.PUT("/properties/:id", middleware.RequireAuth(), propertyController.UpdateProperty)
	v1.DELETE("/properties/:id", middleware.RequireAuth(), propertyController.DeleteProperty)
	v1.POST("/properties/:id/bookings", middleware.RequireAuth(), propertyController.BookProperty)

	v1.GET("/staging/images", stagingController.GetImages)
	v1.POST("/staging/images", stagingController.AddImages)
	v1.DELETE("/staging/images", stagingController.ClearImages)
	v1.POST("/staging/images/:index/first", stagingController.MoveToFirst)
	v1.POST("/staging/images/:index/left", stagingController.MoveLeft)
	v1.POST("/staging/images/:index/right", stagingController.MoveRight)
	v1.DELETE("/staging/images/:index", stagingController.RemoveImage)

	v1.GET("/tours", tourController.GetTours)
	v1.GET("/tours/:id", tourController.GetTour)
	v1.POST("/tours/:id/quote", tourController.QuoteTour)
	v1.POST("/tours/:id/bookings", middleware.RequireAuth(), tourController.BookTour)

	v1.GET("/bookings", middleware.RequireAuth(), bookingController.GetBookings)
	v1.PUT("/bookings/:id", middleware.RequireAuth(), bookingController.UpdateBooking)
	v1.POST("/bookings/:id/cancel", middleware.RequireAuth(), bookingController.CancelBooking)

	v1.GET("/favorites", middleware.RequireAuth(), favoriteController.GetFavorites)
	v1.POST("/favorites/:kind/:id", middleware.RequireAuth(), favoriteController.ToggleFavorite)

	if deps.Melody != nil {
		notificationController := controllers.NewNotificationController(deps.Melody, deps.Logger)
		router.GET("/ws", notificationController.Connect)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
