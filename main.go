// File: amora/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"amora/config"
	"amora/cron"
	"amora/database"
	bookingRepoPkg "amora/database/repository/booking"
	companionRepoPkg "amora/database/repository/companion"
	"amora/handlers"
	"amora/middleware"
	"amora/routes"
	"amora/services/booking"
	"amora/services/companion"
	"amora/services/notification"
	"amora/services/tasks"
	"amora/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	if config.AppConfig.FirebaseCredentials != "" {
		utils.FirebaseInit()
	} else {
		logger.Sugar().Warn("main: firebase credentials not configured, push notifications disabled")
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	companionRepo := companionRepoPkg.NewMongoCompanionRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	companionService := &companion.DefaultService{
		Repo: companionRepo,
	}

	notificationService, err := notification.NewDefaultNotificationService(companionService, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	catalog := booking.NewCatalog()
	bookingService := &booking.DefaultBookingService{
		Catalog:      catalog,
		Builder:      &booking.RecordBuilder{Catalog: catalog},
		CompanionDir: companionService,
		Repo:         bookingRepo,
		Notifier:     notificationService,
		Reminders:    tasks.NewReminderScheduler(),
		Logger:       logger,
	}

	sessionService := &booking.DefaultWizardSessionService{
		Catalog:    catalog,
		BookingSvc: bookingService,
	}

	checkoutService := booking.NewCheckoutService(bookingRepo, logger)

	bookingHandler := handlers.NewBookingHandler(bookingService, sessionService, checkoutService, logger)
	companionHandler := handlers.NewCompanionHandler(companionService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog and booking endpoints.
		GetPackages:         bookingHandler.GetPackages,
		CreateBooking:       bookingHandler.CreateBooking,
		GetBooking:          bookingHandler.GetBooking,
		ListMyBookings:      bookingHandler.ListMyBookings,
		CreatePaymentIntent: bookingHandler.CreatePaymentIntent,

		// Wizard session endpoints.
		StartSession:   bookingHandler.StartSession,
		GetSession:     bookingHandler.GetSession,
		SelectPackage:  bookingHandler.SelectPackage,
		SelectSchedule: bookingHandler.SelectSchedule,
		SetDetails:     bookingHandler.SetDetails,
		AdvanceSession: bookingHandler.AdvanceSession,
		RetreatSession: bookingHandler.RetreatSession,
		SubmitSession:  bookingHandler.SubmitSession,
		CancelSession:  bookingHandler.CancelSession,

		// Companion directory endpoints.
		GetCompanionByID:        companionHandler.GetCompanionByID,
		ListCompanions:          companionHandler.ListCompanions,
		RegisterCompanion:       companionHandler.RegisterCompanion,
		UpdateCompanionFCMToken: companionHandler.UpdateCompanionFCMToken,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health checks.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
