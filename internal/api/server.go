package api

import (
	"context"
	"net/http"
	"time"

	"github.com/aiya/event-intake/internal/config"
	"github.com/aiya/event-intake/internal/intake"
)

// Server is the intake HTTP server.
type Server struct {
	config  config.ServerConfig
	handler http.Handler
	server  *http.Server
}

// NewServer wires the intake service and health checker into a configured
// HTTP server.
func NewServer(cfg config.ServerConfig, svc *intake.Service, db Pinger, corsOrigins []string) *Server {
	handlers := NewHandlers(svc)
	hc := NewHealthChecker(db)
	router := SetupRoutes(handlers, hc, corsOrigins)

	return &Server{
		config:  cfg,
		handler: router,
	}
}

// ListenAndServe starts the HTTP server. Intake payloads are small JSON
// bodies, so the timeouts are tight.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.handler
}
