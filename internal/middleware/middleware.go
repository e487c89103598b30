// Package middleware holds the echo middleware that surrounds schema-checked
// routes: request IDs, a request-scoped zerolog logger, request logging,
// panic recovery, and the global error handler that renders *errs.HTTPError.
package middleware
