package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/deppfellow/reqschema/internal/errs"
)

// GlobalMiddlewares groups middleware applied to every route and the
// global error handler.
type GlobalMiddlewares struct {
	logger *zerolog.Logger
}

func NewGlobalMiddlewares(logger *zerolog.Logger) *GlobalMiddlewares {
	return &GlobalMiddlewares{logger: logger}
}

// RequestLogger writes one "API" line per request. The level follows the
// final status: 5xx error, 4xx warn, anything else info.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// The error handler has not written the response yet when a
			// handler returns an error, so derive the status from the error.
			// See https://github.com/labstack/echo/issues/2310
			if v.Error != nil {
				statusCode = statusOf(v.Error)
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Msg("API")

			return nil
		},
	})
}

// Recover turns panics into 500 responses.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func statusOf(err error) int {
	var httpErr *errs.HTTPError
	var echoErr *echo.HTTPError

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Status
	case errors.As(err, &echoErr):
		return echoErr.Code
	}
	return http.StatusInternalServerError
}

// GlobalErrorHandler renders every error as an errs.HTTPError body.
//
// *errs.HTTPError values (validation failures included) are written as-is.
// Echo errors keep their status; unknown errors become a generic 500 and
// the cause is only logged.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError
		switch {
		case errors.As(err, &echoErr) && echoErr.Code == http.StatusNotFound:
			httpErr = errs.NewNotFoundError("Route not found", false, nil)
		case errors.As(err, &echoErr):
			message, ok := echoErr.Message.(string)
			if !ok {
				message = http.StatusText(echoErr.Code)
			}
			httpErr = &errs.HTTPError{
				Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
				Message: message,
				Status:  echoErr.Code,
			}
		default:
			httpErr = errs.NewInternalServerError()
		}
	}

	logger := GetLogger(c)

	var e *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		e = logger.Error().Stack()
	} else {
		e = logger.Warn()
	}
	e.Err(originalErr).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Int("field_errors", len(httpErr.Errors)).
		Msg(httpErr.Message)

	if !c.Response().Committed {
		if err := c.JSON(httpErr.Status, httpErr); err != nil {
			logger.Error().Err(err).Msg("failed to write error response")
		}
	}
}
