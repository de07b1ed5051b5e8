// Package router assembles the HTTP routing table and middleware chain.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/userboard/userboard/internal/handler"
	"github.com/userboard/userboard/internal/middleware"
)

// Config carries the handlers and options the router wires together.
type Config struct {
	Handler        *handler.Handler
	Health         *handler.HealthHandler
	Users          *handler.UserHandler
	Metrics        *handler.MetricsHandler
	Logger         *slog.Logger
	AllowedOrigins []string
	MaxBodySize    int64
}

// New builds the chi router with the full middleware chain.
func New(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.Recoverer(cfg.Logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig(cfg.AllowedOrigins)))
	r.Use(middleware.BodyLimit(cfg.MaxBodySize))

	r.Get("/health", cfg.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", cfg.Handler.APIMessage)
		r.Get("/users", cfg.Users.List)
		r.Post("/users", cfg.Users.Create)
	})

	if cfg.Metrics != nil {
		r.Get("/metrics", cfg.Metrics.Metrics)
	}

	r.NotFound(cfg.Handler.NotFound)
	r.MethodNotAllowed(cfg.Handler.MethodNotAllowed)

	return r
}
