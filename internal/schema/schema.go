// Package schema is a small declarative validation engine for request data.
//
// A schema is a tree of nodes (object, string, number). Leaves carry an
// ordered list of constraints. Validate walks the tree against a plain
// nested value (usually map[string]any holding "body", "params" and
// "query") and collects every violation as a FieldError with a dotted
// path, e.g. "body.title".
//
// Schema trees are immutable once built, so a single tree can be shared
// by any number of goroutines without locking.
package schema
