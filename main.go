// File: laundr/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laundr/config"
	"laundr/database"
	profileRepo "laundr/database/repository/profile"
	"laundr/handlers"
	"laundr/middleware"
	"laundr/routes"
	"laundr/services/booking"
	"laundr/services/compliance"
	"laundr/services/loads"
	"laundr/services/reservation"
	"laundr/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSlotCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	profiles := profileRepo.NewMongoProfileRepo()

	// services.
	slotStore := reservation.NewRedisSlotStore(utils.GetSlotCacheClient(), logger)

	transactionLog := loads.NewTransactionLog()
	loadService := &loads.DefaultLoadService{
		Profiles:     profiles,
		Settlement:   loads.NewAstraClient(logger),
		Log:          transactionLog,
		InviteMaxAge: config.AppConfig.InviteMaxAge,
		Logger:       logger,
	}

	bookingService := booking.NewBookingService(
		slotStore,
		loadService,
		config.AppConfig.SlotReservationTTL,
		logger,
	)

	gate := compliance.NewGate(
		profiles,
		config.AppConfig.RiskThreshold,
		config.AppConfig.VelocityPerMinute,
		config.AppConfig.VelocityBurst,
		logger,
	)

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	loadHandler := handlers.NewLoadHandler(loadService, transactionLog, logger)
	profileHandler := handlers.NewProfileHandler(profiles)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking endpoints.
		CreateBooking:  bookingHandler.CreateBooking,
		ListBookings:   bookingHandler.ListBookings,
		ApproveBooking: bookingHandler.ApproveBooking,
		DeclineBooking: bookingHandler.DeclineBooking,
		CounterBooking: bookingHandler.CounterBooking,
		CancelBooking:  bookingHandler.CancelBooking,

		// Transaction endpoints.
		SendLoad:         loadHandler.SendLoad,
		RequestLoad:      loadHandler.RequestLoad,
		SwapFunds:        loadHandler.SwapFunds,
		ClaimInvite:      loadHandler.ClaimInvite,
		ListTransactions: loadHandler.ListTransactions,

		// Profile endpoints.
		CreateProfile: profileHandler.CreateProfile,
		GetProfile:    profileHandler.GetProfile,
		ListProfiles:  profileHandler.ListProfiles,

		// Compliance guard.
		Compliance: middleware.ComplianceMiddleware(gate),
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
