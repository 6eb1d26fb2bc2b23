// Package server provides the HTTP API for partsearch.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/steelworks/partsearch/internal/analytics"
	"github.com/steelworks/partsearch/internal/catalog"
	"github.com/steelworks/partsearch/internal/config"
	"github.com/steelworks/partsearch/internal/search"
)

// Server is the HTTP server for the partsearch API.
type Server struct {
	engine   *search.Engine
	provider *catalog.Provider
	tracker  *analytics.Tracker
	config   *config.ServerConfig
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server with the given dependencies. tracker may be nil
// when analytics is disabled.
func NewServer(
	engine *search.Engine,
	provider *catalog.Provider,
	tracker *analytics.Tracker,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		engine:   engine,
		provider: provider,
		tracker:  tracker,
		config:   cfg,
		logger:   logger,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/api/v1/search", s.handleSearch)
	r.Get("/api/v1/suggestions", s.handleSuggestions)
	r.Get("/api/v1/recent", s.handleRecent)
	r.Post("/api/v1/reload", s.handleReload)
	r.Get("/api/v1/status", s.handleStatus)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
