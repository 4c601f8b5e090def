package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-be/internal/api"
	"github.com/campusconnect/portal-be/internal/auth"
	"github.com/campusconnect/portal-be/internal/config"
	"github.com/campusconnect/portal-be/internal/database"
	"github.com/campusconnect/portal-be/internal/logger"
	"github.com/campusconnect/portal-be/internal/monitoring"
	"github.com/campusconnect/portal-be/internal/services"
	"github.com/campusconnect/portal-be/internal/websocket"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up WebSocket Hub (optional module)
	var hub *websocket.Hub
	if cfg.BroadcastEnabled {
		hub = websocket.NewHub()
		go hub.Run()
	}

	// Set up services
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(db)
	eventService := services.NewEventService(db)
	lostFoundService := services.NewLostFoundService(db)
	marketplaceService := services.NewMarketplaceService(db)
	rideService := services.NewRideService(db)
	exchangeService := services.NewExchangeService(db)
	scheduleService := services.NewScheduleService(db, eventService)
	summarizer := services.NewSummarizer(cfg.SummaryCutoff, cfg.SummaryTemplate)

	// Set up and run the background stats updater
	statUpdater := monitoring.NewStatUpdater(hub)
	go statUpdater.Run()

	// Set up and run the background scheduler
	scheduler := monitoring.NewScheduler(scheduleService, eventService, hub)
	go scheduler.Run()

	// Set up router
	router := api.NewRouter(api.Deps{
		Tokens:      tokens,
		Hub:         hub,
		Users:       userService,
		LostFound:   lostFoundService,
		Marketplace: marketplaceService,
		Rides:       rideService,
		Exchange:    exchangeService,
		Events:      eventService,
		Schedules:   scheduleService,
		Summarizer:  summarizer,
		CORSOrigin:  cfg.CORSOrigin,
	})

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	statUpdater.Stop()
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
