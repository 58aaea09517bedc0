// Package api provides the HTTP server for the holocron API.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Server owns the process HTTP listener and its root chi router. Routes are
// registered on Router before Start.
type Server struct {
	router chi.Router
	http   *http.Server
	logger *slog.Logger
}

// NewServer creates a Server bound to addr. The root router carries
// request-id, real-ip, and panic-recovery middleware; everything else is
// mounted per route group.
func NewServer(addr string, logger *slog.Logger) Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)

	return Server{
		router: router,
		logger: logger,
		http: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Router returns the root router for registering routes.
func (s Server) Router() chi.Router {
	return s.router
}

// Addr returns the listen address.
func (s Server) Addr() string {
	return s.http.Addr
}

// Start listens and serves until Shutdown is called. A closed server is not
// an error.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", slog.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.http.Shutdown(ctx)
}
