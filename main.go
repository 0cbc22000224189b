package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel-frontdesk/config"
	"hotel-frontdesk/controllers"
	"hotel-frontdesk/routes"
	"hotel-frontdesk/services"
	"hotel-frontdesk/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	utils.InitLogger()

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	if db == nil {
		log.Fatal().Msg("config.DB is nil after ConnectDatabase()")
	}
	log.Info().Msg("database connection established and migrations applied")

	// Redis is optional: sessions fall back to memory and caching is
	// skipped when it is unreachable.
	redisClient := config.NewRedisClient()
	cache := services.NewQueryCache(redisClient, 30*time.Second)
	sessionStore := services.NewSessionStore(redisClient)

	// Initialize services
	activityService := services.NewActivityService(db)
	customerService := services.NewCustomerService(db)
	roomService := services.NewRoomService(db, cache)
	settingsService := services.NewSettingsService(db)
	bookingService := services.NewBookingService(db, cache, activityService)
	sessionService := services.NewBookingSessionService(sessionStore, customerService, roomService, settingsService, bookingService)
	transferService := services.NewTransferService(db, cache, activityService)
	promotionService := services.NewPromotionService(db, activityService)
	reportService := services.NewReportService(db, cache)
	serviceUsageService := services.NewServiceUsageService(db, activityService)

	// Build router
	router := routes.SetupRouter(routes.Controllers{
		Auth:         controllers.NewAuthController(db),
		Customers:    controllers.NewCustomerController(customerService),
		Rooms:        controllers.NewRoomController(roomService, sessionService),
		Bookings:     controllers.NewBookingController(bookingService),
		Sessions:     controllers.NewBookingSessionController(sessionService),
		Transfers:    controllers.NewTransferController(transferService),
		Promotions:   controllers.NewPromotionController(promotionService),
		Settings:     controllers.NewSettingsController(settingsService),
		Reports:      controllers.NewReportController(reportService),
		Activity:     controllers.NewActivityController(activityService),
		ServiceUsage: controllers.NewServiceUsageController(serviceUsageService),
	})

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	log.Info().Msg("server exited")
}
