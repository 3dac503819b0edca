// File: pawcare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawcare/config"
	"pawcare/cron"
	"pawcare/database"
	bookingRepoPkg "pawcare/database/repository/booking"
	notificationRepoPkg "pawcare/database/repository/notification"
	petRepoPkg "pawcare/database/repository/pet"
	policyRepoPkg "pawcare/database/repository/policy"
	providerRepoPkg "pawcare/database/repository/provider"
	seriesRepoPkg "pawcare/database/repository/series"
	userRepoPkg "pawcare/database/repository/user"
	"pawcare/handlers"
	"pawcare/middleware"
	"pawcare/routes"
	"pawcare/services/booking"
	"pawcare/services/cancellation"
	"pawcare/services/notification"
	"pawcare/services/provider"
	"pawcare/services/recurring"
	"pawcare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	petRepo := petRepoPkg.NewMongoPetRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	seriesRepo := seriesRepoPkg.NewMongoSeriesRepo()
	policyRepo := policyRepoPkg.NewMongoPolicyRepo()
	notifRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo:      notifRepo,
		Users:     userRepo,
		Providers: provRepo,
	}

	providerService := &provider.DefaultProviderService{
		Repo:  provRepo,
		Cache: utils.GetCacheClient(),
	}

	recurringService := &recurring.DefaultRecurringService{
		SeriesRepo:  seriesRepo,
		BookingRepo: bookingRepo,
		Notifier:    notificationService,
	}

	cancellationService := &cancellation.DefaultCancellationService{
		BookingRepo: bookingRepo,
		PolicyRepo:  policyRepo,
		Notifier:    notificationService,
	}

	topUpEnqueuer := cron.NewEnqueuer()
	defer topUpEnqueuer.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Notifier: notificationService,
		TopUp:    topUpEnqueuer,
	}

	// Background worker keeping active series topped up.
	cron.InitTopUpWorker(recurringService, seriesRepo)

	// handlers.
	providerHandler := handlers.NewProviderHandler(providerService)
	userHandler := handlers.NewUserHandler(userRepo, petRepo)
	bookingHandler := handlers.NewBookingHandler(bookingService, bookingRepo)
	cancellationHandler := handlers.NewCancellationHandler(cancellationService)
	recurringHandler := handlers.NewRecurringHandler(recurringService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	adminHandler := handlers.NewAdminHandler(providerService, userRepo, policyRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Provider endpoints.
		RegisterProviderHandler: providerHandler.RegisterProviderHandler,
		GetProviderByIDHandler:  providerHandler.GetProviderByIDHandler,
		SearchProvidersHandler:  providerHandler.SearchProvidersHandler,

		// User and pet endpoints.
		RegisterUserHandler: userHandler.RegisterUserHandler,
		GetUserByIDHandler:  userHandler.GetUserByIDHandler,
		CreatePetHandler:    userHandler.CreatePetHandler,
		ListPetsHandler:     userHandler.ListPetsHandler,

		// Booking endpoints.
		GetBookingHandler:      bookingHandler.GetBookingHandler,
		ListBookingsHandler:    bookingHandler.ListBookingsHandler,
		AcceptBookingHandler:   bookingHandler.AcceptBookingHandler,
		StartBookingHandler:    bookingHandler.StartBookingHandler,
		CompleteBookingHandler: bookingHandler.CompleteBookingHandler,

		// Cancellation endpoints.
		RefundPreviewHandler: cancellationHandler.RefundPreviewHandler,
		CancelBookingHandler: cancellationHandler.CancelBookingHandler,

		// Recurring series endpoints.
		CreateSeriesHandler: recurringHandler.CreateSeriesHandler,
		GetSeriesHandler:    recurringHandler.GetSeriesHandler,
		TopUpSeriesHandler:  recurringHandler.TopUpSeriesHandler,
		CancelSeriesHandler: recurringHandler.CancelSeriesHandler,

		// Notification endpoints.
		NotificationFeedHandler: notificationHandler.FeedHandler,
		MarkNotificationRead:    notificationHandler.MarkReadHandler,
		UnreadCountHandler:      notificationHandler.UnreadCountHandler,

		// Admin endpoints.
		AdminListProvidersHandler: adminHandler.ListProvidersHandler,
		AdminSetProviderActive:    adminHandler.SetProviderActiveHandler,
		AdminListUsersHandler:     adminHandler.ListUsersHandler,
		AdminListPoliciesHandler:  adminHandler.ListPoliciesHandler,
		AdminSeriesDetailHandler:  recurringHandler.GetSeriesHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
