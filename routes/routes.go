package routes

import (
	"net/http"
	"time"

	"amora/handlers"
	"amora/middleware"
	"amora/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/packages", hb.GetPackages)

		bookingGroup.Use(middleware.JWTAuthRequesterMiddleware())
		bookingGroup.POST("", hb.CreateBooking)
		bookingGroup.GET("/mine", hb.ListMyBookings)
		bookingGroup.GET("/id/:id", hb.GetBooking)
		bookingGroup.POST("/payment-intent", hb.CreatePaymentIntent)

		bookingGroup.POST("/session", hb.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.POST("/session/:sessionID/select-package", hb.SelectPackage)
		bookingGroup.POST("/session/:sessionID/schedule", hb.SelectSchedule)
		bookingGroup.POST("/session/:sessionID/details", hb.SetDetails)
		bookingGroup.POST("/session/:sessionID/advance", hb.AdvanceSession)
		bookingGroup.POST("/session/:sessionID/retreat", hb.RetreatSession)
		bookingGroup.POST("/session/:sessionID/submit", hb.SubmitSession)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterCompanionRoutes registers companion directory endpoints.
func RegisterCompanionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/companions")
	{
		api.GET("", hb.ListCompanions)
		api.GET("/id/:id", hb.GetCompanionByID)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthRequesterMiddleware())
		protected.POST("", hb.RegisterCompanion)
		protected.PUT("/id/:id/fcm-token", hb.UpdateCompanionFCMToken)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterCompanionRoutes(r, hb)
	RegisterHealthRoute(r)
}
