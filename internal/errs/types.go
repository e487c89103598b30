package errs

import "strings"

// FieldError is one field-level problem in a request.
//
//	{ "field": "body.title", "error": "title must be larger than 8 characters", "code": "LENGTH_VIOLATION" }
type FieldError struct {
	// Field is the dotted path of the offending value.
	Field string `json:"field"`

	// Error is the human-readable message.
	Error string `json:"error"`

	// Code classifies the problem (missing, wrong type, length, format, weakness).
	Code string `json:"code,omitempty"`
}

// ActionType tells a client what to do next.
type ActionType string

const (
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional client instruction attached to an error.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the API error body. It is serialized as-is.
//
// Override signals that Message is safe and meant to be shown to the end user.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, so errors.Is(err, &HTTPError{}) asks
// "is this an API error at all".
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	out := *e
	out.Message = message
	return &out
}

// MakeUpperCaseWithUnderscores turns "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
