package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestRenderSummaryTable(t *testing.T) {
	headers := []string{"name", "kind"}
	rows := [][]string{{"Pet", "object"}, {"Identifier", "string"}}

	t.Run("normal", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummaryTable(&buf, headers, rows, false)
		want := "Name        Kind\n" +
			"Pet         object\n" +
			"Identifier  string\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("quiet", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummaryTable(&buf, headers, rows, true)
		assert.Equal(t, "Pet\tobject\nIdentifier\tstring\n", buf.String())
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		RenderSummaryTable(&buf, headers, nil, false)
		assert.Empty(t, buf.String())
	})
}

func TestRenderSummaryStructured(t *testing.T) {
	headers := []string{"go type", "format"}
	rows := [][]string{{"int32", "int32"}, {"string"}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderSummaryStructured(&buf, headers, rows, FormatJSON))
		want := `[
  {
    "go_type": "int32",
    "format": "int32"
  },
  {
    "go_type": "string",
    "format": ""
  }
]
`
		assert.Equal(t, want, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderSummaryStructured(&buf, headers, rows, FormatYAML))
		assert.Contains(t, buf.String(), "go_type: int32\n")
	})
}

func TestRenderDetail_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := RenderDetail(&buf, map[string]any{"a": 1}, FormatText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
