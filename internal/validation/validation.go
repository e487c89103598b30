// Package validation connects schema checks to echo requests.
//
// It assembles the request's body, path params and query string into the
// {"body", "params", "query"} shape schemas are written against, runs the
// schema, and turns violations into a 400 *errs.HTTPError.
package validation
