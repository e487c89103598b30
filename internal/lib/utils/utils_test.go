package utils_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/reqschema/internal/lib/utils"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, utils.PrintJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n\t\"a\": 1\n}\n", buf.String())
}

func TestPrintJSONUnsupported(t *testing.T) {
	assert.Error(t, utils.PrintJSON(&bytes.Buffer{}, make(chan int)))
}
