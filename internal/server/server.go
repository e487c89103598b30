// Package server holds the shared dependencies of the HTTP surface and owns
// the lifecycle of the underlying http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/reqschema/internal/config"
	"github.com/deppfellow/reqschema/internal/schemas"
)

// Server is the application container. It is not the HTTP server itself;
// handlers reach config, logger and the schema registry through it.
type Server struct {
	Config   *config.Config
	Logger   *zerolog.Logger
	Registry *schemas.Registry

	startedAt  time.Time
	httpServer *http.Server
}

func New(cfg *config.Config, logger *zerolog.Logger, registry *schemas.Registry) *Server {
	return &Server{
		Config:    cfg,
		Logger:    logger,
		Registry:  registry,
		startedAt: time.Now(),
	}
}

// Uptime reports how long ago the container was built.
func (s *Server) Uptime() time.Duration {
	return time.Since(s.startedAt)
}

// SetupHTTPServer configures the http.Server that Start will run.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	timeouts := s.Config.Server.Timeout

	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(timeouts.Read) * time.Second,
		WriteTimeout: time.Duration(timeouts.Write) * time.Second,
		IdleTimeout:  time.Duration(timeouts.Idle) * time.Second,
	}
}

// Start blocks serving requests. It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Int("schemas", len(s.Registry.Names())).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}
