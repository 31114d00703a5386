// Package server owns the HTTP surface: route registration, middleware
// (request IDs, logging, rate limiting, metrics), graceful shutdown, and
// RFC 7807 problem responses.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pantryio/ladle/internal/version"
)

// RouteRegistrar is implemented by handlers that mount routes on the mux.
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// Options tunes the middleware applied around every request.
type Options struct {
	RateLimitRPS   float64 // 0 disables rate limiting
	RateLimitBurst int
	// Metrics overrides the Prometheus registerer; nil uses the default
	// registry. Tests inject a fresh registry here.
	Metrics prometheus.Registerer
}

// Server is the ladle HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
}

// New creates a Server, registers core routes, and mounts every registrar.
func New(addr string, logger *zap.Logger, opts Options, registrars ...RouteRegistrar) *Server {
	mux := http.NewServeMux()

	s := &Server{
		logger: logger,
		mux:    mux,
	}

	s.registerCoreRoutes()
	for _, r := range registrars {
		r.RegisterRoutes(mux)
	}

	// RequestID sits outermost so the logger and handlers all see the ID.
	var handler http.Handler = mux
	handler = RequestLogger(logger)(handler)
	handler = NewMetrics(opts.Metrics).Wrap(handler)
	handler = RequestID(handler)
	if opts.RateLimitRPS > 0 {
		handler = NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).Wrap(handler)
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// registerCoreRoutes sets up routes that are always available.
func (s *Server) registerCoreRoutes() {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// handleHealth returns the server health status.
//
//	@Summary		Health check
//	@Description	Returns service status and build information.
//	@Tags			system
//	@Produce		json
//	@Success		200 {object} map[string]any
//	@Router			/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Ladle-Version", version.Short())
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"service": "ladle",
		"version": version.Map(),
	})
}
