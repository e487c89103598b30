package service_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/reqschema/internal/config"
	"github.com/deppfellow/reqschema/internal/errs"
	"github.com/deppfellow/reqschema/internal/schemas"
	"github.com/deppfellow/reqschema/internal/server"
	"github.com/deppfellow/reqschema/internal/service"
)

func newServices() *service.Services {
	logger := zerolog.Nop()
	return service.NewServices(server.New(config.Default(), &logger, schemas.Default()))
}

func TestListSchemas(t *testing.T) {
	infos := newServices().Schemas.List()

	require.Len(t, infos, len(schemas.Default().Names()))
	assert.Equal(t, schemas.AddMessage, infos[0].Name)
}

func TestValidateUnknownSchema(t *testing.T) {
	_, err := newServices().Schemas.Validate("nope", nil)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
}

func TestValidateKnownSchema(t *testing.T) {
	res, err := newServices().Schemas.Validate(schemas.Tweet, map[string]any{
		"body": map[string]any{"text": 1},
	})

	require.NoError(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "body.text", res.Errors[0].Path)
}

func TestGenerateUsername(t *testing.T) {
	assert.Regexp(t, `^jane_[0-9]{8}$`, newServices().Usernames.Generate("jane@example.com"))
}
