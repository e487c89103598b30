// Package router builds the echo instance: global middleware, system
// routes and the versioned API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/reqschema/internal/handler"
	"github.com/deppfellow/reqschema/internal/middleware"
	"github.com/deppfellow/reqschema/internal/server"
	"github.com/deppfellow/reqschema/internal/service"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	middleware.NewMiddlewares(s.Logger).Apply(r)

	registerSystemRoutes(r, h)
	registerV1Routes(r.Group("/v1"), s, h)

	return r
}

// New wires services, handlers and routes for s.
func New(s *server.Server) *echo.Echo {
	return NewRouter(s, handler.NewHandlers(s, service.NewServices(s)))
}
