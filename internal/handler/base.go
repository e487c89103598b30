package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/reqschema/internal/middleware"
	"github.com/deppfellow/reqschema/internal/schema"
	"github.com/deppfellow/reqschema/internal/server"
	"github.com/deppfellow/reqschema/internal/validation"
)

// Handler holds the shared dependencies embedded by concrete handlers.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint receiving the request input once it has
// satisfied the route's schema.
type HandlerFunc[Res any] func(c echo.Context, input map[string]any) (Res, error)

// ResponseHandler writes a successful result.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error

	// GetOperation names the response kind in logs.
	GetOperation() string
}

type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// handleRequest is the shared pipeline: build the input, check it against
// node (when non-nil), run the handler, log timings and write the response.
func handleRequest(
	c echo.Context,
	node *schema.Node,
	handler func(c echo.Context, input map[string]any) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", c.Path()).
		Logger()

	logger.Info().Msg("handling request")

	validationStart := time.Now()

	var (
		input map[string]any
		err   error
	)
	if node != nil {
		input, err = validation.BindAndValidate(c, node)
	} else {
		input, err = validation.Input(c)
	}
	validationDuration := time.Since(validationStart)

	// Rejected input is a client error; the global handler logs the response.
	if err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")
		return err
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	handlerStart := time.Now()
	result, err := handler(c, input)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler so it can be registered on a route:
//
//	r.POST("/v1/usernames", handler.Handle(node, h.Create, http.StatusCreated))
//
// A nil node skips the schema check but still builds the input.
func Handle[Res any](node *schema.Node, handler HandlerFunc[Res], status int) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, node, func(c echo.Context, input map[string]any) (any, error) {
			return handler(c, input)
		}, JSONResponseHandler{status: status})
	}
}

// stringField reads section.key from a validated input map.
func stringField(input map[string]any, section, key string) string {
	m, _ := input[section].(map[string]any)
	s, _ := m[key].(string)
	return s
}
