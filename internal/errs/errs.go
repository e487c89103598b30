// Package errs defines the error shapes handed back to API clients.
//
// Validation results, malformed requests and unexpected failures all end
// up as an *HTTPError so the global error handler can write one consistent
// JSON body.
package errs
