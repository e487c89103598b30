package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is the echo context key for the request-scoped logger.
const LoggerKey = "logger"

// ContextEnhancer attaches a request-scoped logger to every request.
type ContextEnhancer struct {
	logger *zerolog.Logger
}

func NewContextEnhancer(logger *zerolog.Logger) *ContextEnhancer {
	return &ContextEnhancer{logger: logger}
}

// EnhanceContext builds a child logger carrying request_id, method, path
// and ip. It must run after RequestID. The logger is stored both in the
// echo context and in the request's context.Context.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)
			c.SetRequest(c.Request().WithContext(contextLogger.WithContext(c.Request().Context())))

			return next(c)
		}
	}
}

// GetLogger returns the request logger, or a no-op logger when
// EnhanceContext did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}
	logger := zerolog.Nop()
	return &logger
}
