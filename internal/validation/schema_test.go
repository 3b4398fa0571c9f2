package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateVersionBytes_Valid(t *testing.T) {
	doc := []byte(`
model: gpt-4o
temperature: 0.7
prompt:
  - role: system
    content: You are a helpful assistant.
  - role: user
    content: Summarize the document.
output_schema:
  type: object
  properties:
    summary:
      type: string
`)
	require.Empty(t, ValidateVersionBytes(doc))
}

func TestValidateVersionBytes_MissingModel(t *testing.T) {
	errs := ValidateVersionBytes([]byte(`temperature: 0.5`))
	require.NotEmpty(t, errs)
	require.Contains(t, strings.Join(errs, "\n"), "model")
}

func TestValidateVersionBytes_BadRole(t *testing.T) {
	doc := []byte(`
model: gpt-4o
prompt:
  - role: narrator
    content: hi
`)
	errs := ValidateVersionBytes(doc)
	require.NotEmpty(t, errs)
}

func TestValidateVersionBytes_BadTemperature(t *testing.T) {
	errs := ValidateVersionBytes([]byte("model: m\ntemperature: -1\n"))
	require.NotEmpty(t, errs)
}

func TestValidateVersionBytes_ParseError(t *testing.T) {
	errs := ValidateVersionBytes([]byte("model: [unclosed"))
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "parse error")
}

func TestValidateVersionDoc_ExtensionFieldsAllowed(t *testing.T) {
	// Unknown tunables are an open bag, never a validation error.
	errs := ValidateVersionDoc(map[string]any{
		"model":           "gpt-4o",
		"custom_sampling": map[string]any{"k": 40.0},
	})
	require.Empty(t, errs)
}
