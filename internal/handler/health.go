package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/reqschema/internal/middleware"
	"github.com/deppfellow/reqschema/internal/server"
)

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
	Schemas     int       `json:"schemas"`
}

type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth reports 200 while at least one schema is registered and 503
// otherwise; a registry that failed to load leaves nothing to serve.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Uptime:      h.server.Uptime().Round(time.Second).String(),
		Schemas:     len(h.server.Registry.Names()),
	}

	if response.Schemas == 0 {
		response.Status = "unhealthy"
		logger.Warn().Msg("health check failed: no schemas registered")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Int("schemas", response.Schemas).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}
