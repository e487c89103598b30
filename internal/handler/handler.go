// Package handler is the HTTP layer behind the router.
//
// Each handler checks its request against a schema through the validation
// package, calls the service layer and writes the response.
package handler
