package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/reqschema/internal/schema"
	"github.com/deppfellow/reqschema/internal/server"
	"github.com/deppfellow/reqschema/internal/service"
)

// ValidateResponse is the body of POST /v1/schemas/:name/validate.
type ValidateResponse struct {
	Schema string              `json:"schema"`
	Valid  bool                `json:"valid"`
	Errors []schema.FieldError `json:"errors"`
}

type SchemaHandler struct {
	Handler
	schemas *service.SchemaService
}

func NewSchemaHandler(s *server.Server, schemas *service.SchemaService) *SchemaHandler {
	return &SchemaHandler{
		Handler: NewHandler(s),
		schemas: schemas,
	}
}

func (h *SchemaHandler) ListSchemas(c echo.Context, _ map[string]any) ([]service.SchemaInfo, error) {
	return h.schemas.List(), nil
}

// ValidateDocument checks the posted document, shaped like
// {"body": ..., "params": ..., "query": ...}, against the schema named in
// the path. Violations are a successful response with valid=false.
func (h *SchemaHandler) ValidateDocument(c echo.Context, input map[string]any) (ValidateResponse, error) {
	name := stringField(input, "params", "name")

	res, err := h.schemas.Validate(name, input["body"])
	if err != nil {
		return ValidateResponse{}, err
	}

	fieldErrors := res.Errors
	if fieldErrors == nil {
		fieldErrors = []schema.FieldError{}
	}
	return ValidateResponse{Schema: name, Valid: res.OK(), Errors: fieldErrors}, nil
}
