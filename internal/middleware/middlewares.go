package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Middlewares groups the middleware components so they are built once and
// wired in one place.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
}

func NewMiddlewares(logger *zerolog.Logger) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(logger),
		ContextEnhancer: NewContextEnhancer(logger),
	}
}

// Apply installs the error handler and the global chain on e. Order
// matters: the request ID must exist before the logger is enhanced, and
// the request logger needs the enhanced logger.
func (m *Middlewares) Apply(e *echo.Echo) {
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(
		RequestID(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
	)
}
