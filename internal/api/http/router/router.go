// Package router wires HTTP routes to handlers and middleware.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/asoloviev/nutritrack/internal/api/http/handler"
	"github.com/asoloviev/nutritrack/internal/api/http/middleware"
	"github.com/asoloviev/nutritrack/internal/logger"
)

const requestTimeout = 60 * time.Second

// Pinger reports storage liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router assembles the HTTP API for auth and food operations.
type Router struct {
	authService handler.AuthService
	foodService handler.FoodService
	tokens      middleware.TokenParser
	db          Pinger
	logger      *logger.Logger
}

// New creates a new Router instance over the auth and food services.
func New(
	authService handler.AuthService,
	foodService handler.FoodService,
	tokens middleware.TokenParser,
	db Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService: authService,
		foodService: foodService,
		tokens:      tokens,
		db:          db,
		logger:      logger,
	}
}

// Register builds the route tree with logging, recovery and the session
// guard on the protected routes.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	foodHandler := handler.NewFood(r.foodService, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimiddleware.RequestID)
	mux.Use(chimiddleware.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.Recoverer)
	mux.Use(chimiddleware.Timeout(requestTimeout))

	mux.Route("/auth", func(g chi.Router) {
		g.Post("/register", authHandler.Register)
		g.Post("/login", authHandler.Login)

		g.Group(func(p chi.Router) {
			p.Use(authenticate.Handle)
			p.Get("/me", authHandler.Me)
			p.Patch("/me", authHandler.Update)
			p.Delete("/me", authHandler.Delete)
		})
	})

	mux.Route("/food", func(g chi.Router) {
		g.Use(authenticate.Handle)
		g.Get("/{id}", foodHandler.Get)
	})

	mux.Get("/healthz", r.handleHealth)

	return mux
}

func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	if err := r.db.Ping(req.Context()); err != nil {
		r.logger.Error("health check failed", "error", err.Error())
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}
