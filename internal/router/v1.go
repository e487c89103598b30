package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/reqschema/internal/handler"
	"github.com/deppfellow/reqschema/internal/schemas"
	"github.com/deppfellow/reqschema/internal/server"
)

func registerV1Routes(g *echo.Group, s *server.Server, h *handler.Handlers) {
	g.GET("/schemas", handler.Handle(nil, h.Schema.ListSchemas, http.StatusOK))
	g.POST("/schemas/:name/validate", handler.Handle(nil, h.Schema.ValidateDocument, http.StatusOK))

	g.POST("/usernames", handler.Handle(
		s.Registry.MustGet(schemas.SendEmailVerification),
		h.Username.Create,
		http.StatusCreated,
	))
}
