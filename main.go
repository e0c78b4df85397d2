// File: servicehub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servicehub/config"
	"servicehub/cron"
	"servicehub/database"
	bookingRepo "servicehub/database/repository/booking"
	providerRepo "servicehub/database/repository/provider"
	recommendationRepo "servicehub/database/repository/recommendation"
	reviewRepo "servicehub/database/repository/review"
	slotRepo "servicehub/database/repository/slot"
	userRepoPkg "servicehub/database/repository/user"
	"servicehub/handlers"
	"servicehub/middleware"
	"servicehub/routes"
	"servicehub/services/recommendation"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	provRepo := providerRepo.NewMongoProviderRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	revRepo := reviewRepo.NewMongoReviewRepo()
	slotsRepo := slotRepo.NewMongoSlotRepo()
	recRepo := recommendationRepo.NewMongoRecommendationRepo()

	// services.
	engine := &recommendation.DefaultRecommendationService{
		Users:           userRepo,
		Providers:       provRepo,
		Bookings:        bookRepo,
		Reviews:         revRepo,
		Slots:           slotsRepo,
		Recommendations: recRepo,
		Cache:           utils.GetCacheClient(),
	}

	// Background ranking refresh worker plus its enqueue client.
	cron.InitRefreshWorker(engine)
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	recommendationHandler := handlers.NewRecommendationHandler(engine, userRepo, queueClient)

	// Register routes.
	routes.RegisterRoutes(router, recommendationHandler)

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
