package validation

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/reqschema/internal/errs"
	"github.com/deppfellow/reqschema/internal/schema"
)

// InputKey is the echo context key holding the validated input map.
const InputKey = "validated_input"

// Input builds the value a schema sees for this request.
//
// JSON bodies are decoded with json.Number so numbers keep their text;
// form bodies become string maps. The request body is restored so the
// handler can bind it again.
func Input(c echo.Context) (map[string]any, error) {
	body, err := readBody(c)
	if err != nil {
		return nil, err
	}

	params := make(map[string]any, len(c.ParamNames()))
	values := c.ParamValues()
	for i, name := range c.ParamNames() {
		if i < len(values) {
			params[name] = values[i]
		}
	}

	query := make(map[string]any)
	for key, vals := range c.QueryParams() {
		if len(vals) > 0 {
			query[key] = vals[0]
		}
	}

	return map[string]any{
		"body":   body,
		"params": params,
		"query":  query,
	}, nil
}

func readBody(c echo.Context) (any, error) {
	req := c.Request()
	if req.Body == nil || req.Body == http.NoBody {
		return map[string]any{}, nil
	}

	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm) {
		// PostForm, unlike Form, leaves the query string out of the body.
		if err := req.ParseForm(); err != nil {
			return nil, errs.NewBadRequestError("Request body could not be parsed", false, nil, nil, nil)
		}
		body := make(map[string]any, len(req.PostForm))
		for key, vals := range req.PostForm {
			if len(vals) > 0 {
				body[key] = vals[0]
			}
		}
		return body, nil
	}

	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, errs.NewBadRequestError("Request body could not be read", false, nil, nil, nil)
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var body any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, errs.NewBadRequestError("Request body must be valid JSON", false, nil, nil, nil)
	}
	return body, nil
}

// BindAndValidate checks the request against node. It returns the input
// map on success and a 400 *errs.HTTPError carrying field errors otherwise.
func BindAndValidate(c echo.Context, node *schema.Node) (map[string]any, error) {
	input, err := Input(c)
	if err != nil {
		return nil, err
	}

	if res := schema.Validate(node, input); !res.OK() {
		return nil, errs.NewValidationError(FieldErrors(res.Errors))
	}
	return input, nil
}

// Middleware rejects requests that do not satisfy node. Accepted input is
// stored under InputKey for the handler.
func Middleware(node *schema.Node) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			input, err := BindAndValidate(c, node)
			if err != nil {
				return err
			}
			c.Set(InputKey, input)
			return next(c)
		}
	}
}

// GetInput returns the input stored by Middleware, or nil.
func GetInput(c echo.Context) map[string]any {
	if input, ok := c.Get(InputKey).(map[string]any); ok {
		return input
	}
	return nil
}

// FieldErrors converts schema violations into the API error shape.
func FieldErrors(violations []schema.FieldError) []errs.FieldError {
	out := make([]errs.FieldError, 0, len(violations))
	for _, v := range violations {
		out = append(out, errs.FieldError{
			Field: v.Path,
			Error: v.Message,
			Code:  string(v.Code),
		})
	}
	return out
}
