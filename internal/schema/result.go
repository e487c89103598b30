package schema

import "strings"

// Code classifies a validation failure.
type Code string

const (
	// MissingRequiredField means a required field was absent (or an empty string).
	MissingRequiredField Code = "MISSING_REQUIRED_FIELD"

	// TypeMismatch means the field was present but had the wrong primitive type.
	TypeMismatch Code = "TYPE_MISMATCH"

	// LengthViolation is reported by min and max.
	LengthViolation Code = "LENGTH_VIOLATION"

	// FormatViolation is reported by email and url.
	FormatViolation Code = "FORMAT_VIOLATION"

	// WeaknessViolation is reported by password-strength.
	WeaknessViolation Code = "WEAKNESS_VIOLATION"
)

// FieldError is a single violation at a dotted field path.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    Code   `json:"code"`
}

func (e FieldError) String() string {
	return e.Path + ": " + e.Message
}

// Result is the outcome of one Validate call.
//
// Value is the input exactly as it was passed in. Errors is empty when the
// input satisfied every constraint; otherwise it lists violations in schema
// declaration order, then constraint declaration order.
type Result struct {
	Value  any          `json:"value,omitempty"`
	Errors []FieldError `json:"errors,omitempty"`
}

// OK reports whether validation passed.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Err returns nil on success, or the errors as a ValidationErrors value.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return ValidationErrors(r.Errors)
}

// ValidationErrors lets a failed Result travel as an error.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v {
		msgs = append(msgs, fe.String())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
