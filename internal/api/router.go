package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/campusconnect/portal-be/internal/api/handlers"
	"github.com/campusconnect/portal-be/internal/auth"
	"github.com/campusconnect/portal-be/internal/services"
	"github.com/campusconnect/portal-be/internal/websocket"
)

// Deps bundles everything the router needs. Hub may be nil; the broadcast
// endpoints are then not mounted.
type Deps struct {
	Tokens      *auth.Manager
	Hub         *websocket.Hub
	Users       services.UserServiceProvider
	LostFound   services.LostFoundServiceProvider
	Marketplace services.MarketplaceServiceProvider
	Rides       services.RideServiceProvider
	Exchange    services.ExchangeServiceProvider
	Events      services.EventServiceProvider
	Schedules   services.ScheduleServiceProvider
	Summarizer  *services.Summarizer
	CORSOrigin  string
}

// NewRouter creates and configures a new Chi router.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.Users, deps.Events, deps.Tokens)
	lostFoundHandler := handlers.NewLostFoundHandler(deps.LostFound, deps.Events)
	marketplaceHandler := handlers.NewMarketplaceHandler(deps.Marketplace, deps.Events)
	rideHandler := handlers.NewRideHandler(deps.Rides, deps.Events)
	exchangeHandler := handlers.NewExchangeHandler(deps.Exchange, deps.Events)
	eventHandler := handlers.NewEventHandler(deps.Events)
	scheduleHandler := handlers.NewScheduleHandler(deps.Schedules)
	menuHandler := handlers.NewMenuHandler()
	summarizeHandler := handlers.NewSummarizeHandler(deps.Summarizer)
	healthHandler := handlers.NewHealthHandler()

	// Public endpoints
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Get("/api/mess-menu", menuHandler.GetMessMenu)
	r.Get("/api/health", healthHandler.Get)
	r.Post("/ai/summarize", summarizeHandler.Summarize)

	// Broadcast channel is an optional module.
	if deps.Hub != nil {
		wsHandler := handlers.NewWebSocketHandler(deps.Hub)
		announceHandler := handlers.NewAnnounceHandler(deps.Hub, deps.Events)
		r.Get("/ws", wsHandler.Serve)
		r.Post("/announce", announceHandler.Announce)
	}

	// Session-guarded resource endpoints
	r.Group(func(r chi.Router) {
		r.Use(deps.Tokens.Middleware())

		r.Route("/api/lostfound", func(r chi.Router) {
			r.Get("/", lostFoundHandler.List)
			r.Post("/", lostFoundHandler.Create)
		})
		r.Route("/api/marketplace", func(r chi.Router) {
			r.Get("/", marketplaceHandler.List)
			r.Post("/", marketplaceHandler.Create)
		})
		r.Route("/api/rides", func(r chi.Router) {
			r.Get("/", rideHandler.List)
			r.Post("/", rideHandler.Create)
		})
		r.Route("/api/exchange", func(r chi.Router) {
			r.Get("/", exchangeHandler.List)
			r.Post("/", exchangeHandler.Create)
		})
		r.Route("/api/schedules", func(r chi.Router) {
			r.Get("/", scheduleHandler.List)
			r.Post("/", scheduleHandler.Create)
		})
		r.Get("/api/events", eventHandler.GetRecent)
	})

	return r
}
