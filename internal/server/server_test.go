package server_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/reqschema/internal/config"
	"github.com/deppfellow/reqschema/internal/schemas"
	"github.com/deppfellow/reqschema/internal/server"
)

func newServer() *server.Server {
	logger := zerolog.Nop()
	return server.New(config.Default(), &logger, schemas.Default())
}

func TestStartRequiresSetup(t *testing.T) {
	assert.EqualError(t, newServer().Start(), "HTTP server not initialized")
}

func TestShutdownWithoutSetupIsNoop(t *testing.T) {
	assert.NoError(t, newServer().Shutdown(context.Background()))
}

func TestStartReturnsAfterShutdown(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Port = "0"
	logger := zerolog.Nop()
	s := server.New(cfg, &logger, schemas.Default())
	s.SetupHTTPServer(http.NotFoundHandler())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	require.Eventually(t, func() bool {
		return s.Shutdown(context.Background()) == nil
	}, time.Second, 10*time.Millisecond)
	assert.NoError(t, <-done)
	assert.Positive(t, s.Uptime())
}
