package schemas_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/reqschema/internal/schema"
	"github.com/deppfellow/reqschema/internal/schemas"
)

func TestDefaultRegistryHasEmbeddedSchemas(t *testing.T) {
	r := schemas.Default()

	assert.Equal(t, []string{
		schemas.AddMessage,
		schemas.Interaction,
		schemas.InteractionID,
		schemas.IsEmailUnique,
		schemas.IsUsernameUnique,
		schemas.SendEmailVerification,
		schemas.Signup,
		schemas.Status,
		schemas.Test,
		schemas.Token,
		schemas.Tweet,
	}, r.Names())
	assert.Same(t, r, schemas.Default())
	assert.NotEmpty(t, r.Description(schemas.Tweet))
}

func TestTestSchemaAcceptsBoundaryInput(t *testing.T) {
	res := schemas.Default().MustGet(schemas.Test).Validate(map[string]any{
		"body": map[string]any{
			"url":     "http://x.com",
			"title":   "12345678",
			"content": "12345678",
			"contact": "a@b.com",
		},
		"params": map[string]any{},
	})

	assert.True(t, res.OK(), "%v", res.Errors)
}

func TestTestSchemaReportsEveryBadField(t *testing.T) {
	res := schemas.Default().MustGet(schemas.Test).Validate(map[string]any{
		"body": map[string]any{
			"url":     "not-a-url",
			"title":   "short",
			"content": "x",
			"contact": "bad",
		},
		"params": map[string]any{},
	})

	require.Len(t, res.Errors, 4)
	assert.Equal(t, schema.FieldError{Path: "body.url", Message: "url must be a valid url", Code: schema.FormatViolation}, res.Errors[0])
	assert.Equal(t, schema.FieldError{Path: "body.title", Message: "title must be larger than 8 characters", Code: schema.LengthViolation}, res.Errors[1])
	assert.Equal(t, schema.FieldError{Path: "body.content", Message: "content must be at least 8 characters", Code: schema.LengthViolation}, res.Errors[2])
	assert.Equal(t, schema.FieldError{Path: "body.contact", Message: "contact must be a valid email", Code: schema.FormatViolation}, res.Errors[3])
}

func TestTestSchemaTitleTooLong(t *testing.T) {
	res := schemas.Default().MustGet(schemas.Test).Validate(map[string]any{
		"body": map[string]any{
			"url":     "https://example.com",
			"title":   "this title is definitely longer than thirty two characters",
			"content": "12345678",
			"contact": "a@b.com",
		},
		"params": map[string]any{"id": "abc"},
	})

	require.Len(t, res.Errors, 2)
	assert.Equal(t, "title must be at most 32 characters", res.Errors[0].Message)
	assert.Equal(t, schema.FieldError{Path: "params.id", Message: "id must be a number", Code: schema.TypeMismatch}, res.Errors[1])
}

func TestTweetSchemaTextOptional(t *testing.T) {
	tweet := schemas.Default().MustGet(schemas.Tweet)

	assert.True(t, tweet.Validate(map[string]any{"body": map[string]any{}}).OK())
	assert.True(t, tweet.Validate(map[string]any{"body": map[string]any{"text": ""}}).OK())

	res := tweet.Validate(map[string]any{"body": map[string]any{"text": 12}})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "body.text", res.Errors[0].Path)
}

func TestSignupSchemaPasswordStrength(t *testing.T) {
	signup := schemas.Default().MustGet(schemas.Signup)

	ok := signup.Validate(map[string]any{"body": map[string]any{
		"email": "jane@example.com", "password": "Secret123", "name": "Jane",
	}})
	assert.True(t, ok.OK(), "%v", ok.Errors)

	weak := signup.Validate(map[string]any{"body": map[string]any{
		"email": "jane@example.com", "password": "secret", "name": "Jane",
	}})
	require.Len(t, weak.Errors, 1)
	assert.Equal(t, schema.FieldError{
		Path:    "body.password",
		Message: "password is not a strong enough password",
		Code:    schema.WeaknessViolation,
	}, weak.Errors[0])
}

func TestInteractionSchemaMessages(t *testing.T) {
	interaction := schemas.Default().MustGet(schemas.Interaction)

	res := interaction.Validate(map[string]any{"body": map[string]any{"text": ""}})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "text must be at least 1 characters", res.Errors[0].Message)

	long := make([]byte, 281)
	for i := range long {
		long[i] = 'a'
	}
	res = interaction.Validate(map[string]any{"body": map[string]any{"text": string(long)}})
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "text must be at most 280 characters", res.Errors[0].Message)
}

func TestInteractionIDRequiresParam(t *testing.T) {
	res := schemas.Default().MustGet(schemas.InteractionID).Validate(map[string]any{"params": map[string]string{}})

	require.Len(t, res.Errors, 1)
	assert.Equal(t, schema.FieldError{Path: "params.id", Message: "id is required field", Code: schema.MissingRequiredField}, res.Errors[0])
}

func TestLoadFSAddsAndRejectsDefinitions(t *testing.T) {
	fsys := fstest.MapFS{
		"extra/profile.yaml": {Data: []byte("name: profile\nfields:\n  - name: body\n    type: object\n    fields:\n      - name: bio\n        rules:\n          - rule: max\n            value: 160\n")},
		"extra/readme.md":    {Data: []byte("ignored")},
	}

	r, err := schemas.New()
	require.NoError(t, err)
	require.NoError(t, r.LoadFS(fsys, "extra"))

	_, ok := r.Get("profile")
	assert.True(t, ok)

	dup := fstest.MapFS{"more/tweet.yml": {Data: []byte("name: tweet\nfields: []\n")}}
	assert.Error(t, r.LoadFS(dup, "more"))

	bad := fstest.MapFS{"bad/x.yaml": {Data: []byte("name: x\nfields:\n  - name: a\n    type: list\n")}}
	assert.Error(t, r.LoadFS(bad, "bad"))

	assert.Error(t, r.LoadFS(fsys, "missing"))
}

func TestRegisterValidation(t *testing.T) {
	r := schemas.NewRegistry()

	require.NoError(t, r.Register("a", schema.Object()))
	assert.Error(t, r.Register("a", schema.Object()))
	assert.Error(t, r.Register("", schema.Object()))
	assert.Error(t, r.Register("b", nil))
	assert.Panics(t, func() { r.MustGet("nope") })
}

func TestUniquenessSchemasRequireBody(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{schemas.IsUsernameUnique, "username is required field"},
		{schemas.IsEmailUnique, "email is required field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := schemas.Default().MustGet(tt.name)

			res := node.Validate(map[string]any{})
			require.Len(t, res.Errors, 1)
			assert.Equal(t, schema.FieldError{Path: "body", Message: tt.message, Code: schema.MissingRequiredField}, res.Errors[0])

			assert.True(t, node.Validate(map[string]any{"body": map[string]any{}}).OK())
		})
	}
}

func TestIsUsernameUniqueChecksType(t *testing.T) {
	res := schemas.Default().MustGet(schemas.IsUsernameUnique).Validate(map[string]any{
		"body": map[string]any{"username": 42},
	})

	require.Len(t, res.Errors, 1)
	assert.Equal(t, schema.FieldError{Path: "body.username", Message: "username must be a string", Code: schema.TypeMismatch}, res.Errors[0])
}

func TestIsEmailUniqueChecksFormat(t *testing.T) {
	res := schemas.Default().MustGet(schemas.IsEmailUnique).Validate(map[string]any{
		"body": map[string]any{"email": "nope"},
	})

	require.Len(t, res.Errors, 1)
	assert.Equal(t, "email must be a valid email address", res.Errors[0].Message)
}
