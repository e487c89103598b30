package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/reqschema/internal/schema"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, logs bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&logs)

	err := cmd.Execute()
	return out.String(), err
}

func TestValidateOK(t *testing.T) {
	out, err := run(t, `{"body":{"text":"hello"}}`, "validate", "--schema", "tweet")

	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestValidatePrintsViolations(t *testing.T) {
	doc := `{"body":{"url":"not-a-url","title":"short","content":"12345678","contact":"a@b.com"},"params":{"id":"x"}}`

	out, err := run(t, doc, "validate", "-s", "test")

	assert.ErrorIs(t, err, errInvalidInput)
	assert.Equal(t, "body.url: url must be a valid url\n"+
		"body.title: title must be larger than 8 characters\n"+
		"params.id: id must be a number\n", out)
}

func TestValidateJSONOutput(t *testing.T) {
	out, err := run(t, `{"body":{"text":7}}`, "validate", "-s", "tweet", "-o", "json")

	assert.ErrorIs(t, err, errInvalidInput)

	var res schema.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Errors, 1)
	assert.Equal(t, schema.TypeMismatch, res.Errors[0].Code)
}

func TestValidateReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"params":{"id":"12"}}`), 0o600))

	out, err := run(t, "", "validate", "-s", "interaction_id", "--file", path)

	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestValidateErrors(t *testing.T) {
	_, err := run(t, `{}`, "validate", "-s", "missing")
	assert.EqualError(t, err, `unknown schema "missing"`)

	_, err = run(t, `{`, "validate", "-s", "tweet")
	assert.ErrorContains(t, err, "input must be a JSON document")

	_, err = run(t, `{}`, "validate", "-s", "tweet", "-o", "yaml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, `{}`, "validate")
	assert.Error(t, err)
}

func TestSchemaDirAddsDefinitions(t *testing.T) {
	dir := t.TempDir()
	def := "name: profile\nfields:\n  - name: body\n    type: object\n    fields:\n      - name: bio\n        rules:\n          - rule: required\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.yaml"), []byte(def), 0o600))

	out, err := run(t, "", "--schema-dir", dir, "schemas")
	require.NoError(t, err)
	assert.Contains(t, out, "profile")

	out, err = run(t, `{"body":{}}`, "--schema-dir", dir, "validate", "-s", "profile")
	assert.ErrorIs(t, err, errInvalidInput)
	assert.Equal(t, "body.bio: bio is required\n", out)
}

func TestSchemasListsEmbedded(t *testing.T) {
	out, err := run(t, "", "schemas")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 11)
	assert.True(t, strings.HasPrefix(lines[0], "add_message"))
}

func TestUsername(t *testing.T) {
	out, err := run(t, "", "username", "-n", "3", "jane@example.com")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Regexp(t, `^jane_[0-9]{8}$`, line)
	}

	_, err = run(t, "", "username", "not-an-email")
	assert.Error(t, err)
}

func TestServeRejectsBadPort(t *testing.T) {
	_, err := run(t, "", "serve", "--port", "http")

	assert.ErrorContains(t, err, "config validation failed")
}
