package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/freshnutrients/agrichat/internal/auth"
	"github.com/freshnutrients/agrichat/internal/catalog"
	"github.com/freshnutrients/agrichat/internal/chat"
	"github.com/freshnutrients/agrichat/internal/config"
	"github.com/freshnutrients/agrichat/internal/history"
	"github.com/freshnutrients/agrichat/internal/metrics"
)

// Deps bundles everything the server wires together. All fields are
// required except Monitor, which is created when nil.
type Deps struct {
	Config      config.Config
	Catalog     *catalog.Store
	History     *history.Store
	ChatHandler *chat.Handler
	Monitor     *metrics.Monitor
	Logger      *zap.Logger
}

// Server is the agrichat HTTP server.
type Server struct {
	cfg        config.Config
	monitor    *metrics.Monitor
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New assembles the router and returns a server ready to Start.
func New(deps Deps) *Server {
	if deps.Monitor == nil {
		deps.Monitor = metrics.NewMonitor(deps.Logger)
	}

	s := &Server{
		cfg:     deps.Config,
		monitor: deps.Monitor,
		logger:  deps.Logger,
	}
	s.router = s.buildRouter(deps)
	return s
}

func (s *Server) buildRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware(s.monitor))

	origins := s.cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"agrichat"}`))
	})

	window := time.Duration(s.cfg.Auth.RateWindowSeconds) * time.Second
	if window <= 0 {
		window = auth.DefaultRateWindow
	}
	limit := s.cfg.Auth.RateLimit
	if limit <= 0 {
		limit = auth.DefaultRateLimit
	}
	limiter := auth.NewRateLimiter(limit, window)

	// Everything under /api is rate limited and, when keys are
	// configured, requires a bearer API key.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Use(limiter.Middleware)
		r.Use(auth.APIKey(s.cfg.Auth.APIKeys, s.logger))

		catalog.RegisterRoutes(r, deps.Catalog)
		history.RegisterRoutes(r, deps.History)
		chat.RegisterRoutes(r, deps.ChatHandler)
	})

	// The WebSocket connection outlives any per-request deadline, so it
	// keeps the auth gate but not the Timeout middleware.
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(auth.APIKey(s.cfg.Auth.APIKeys, s.logger))

		chat.RegisterWebSocket(r, deps.ChatHandler)
	})

	// Operational endpoints stay outside the API key gate so that
	// infrastructure probes do not need credentials.
	metrics.RegisterRoutes(r, s.monitor)

	return r
}

// Router returns the chi router, mostly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Monitor returns the request monitor.
func (s *Server) Monitor() *metrics.Monitor { return s.monitor }

// Start begins listening on the configured host and port. It blocks until
// the server stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("agrichat server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
