package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTypeMapFlags(t *testing.T) {
	fs, flags := SetupTypeMapFlags()
	require.NoError(t, fs.Parse([]string{}))
	assert.Equal(t, FormatText, flags.Format)
	assert.False(t, flags.Quiet)
}

func TestHandleTypeMap_Help(t *testing.T) {
	assert.NoError(t, HandleTypeMap([]string{"--help"}))
}

func TestHandleTypeMap_RejectsArgs(t *testing.T) {
	err := HandleTypeMap([]string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "takes no arguments")
}

func TestHandleTypeMap_InvalidFormat(t *testing.T) {
	err := HandleTypeMap([]string{"--format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleTypeMap_Text(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleTypeMap(nil)
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "Go Type"), "header: %q", lines[0])
	assert.Contains(t, lines[0], "Nullable")
	assert.Contains(t, out, "time.Time")
}

func TestHandleTypeMap_Quiet(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleTypeMap([]string{"-q"})
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "Go Type")
	assert.Contains(t, out, "int64\tinteger\tint64\tfalse\n")
	assert.Contains(t, out, "*int64\tinteger\tint64\ttrue\n")
	assert.Contains(t, out, "time.Time\tstring\tdate-time\tfalse\n")
}

func TestHandleTypeMap_JSON(t *testing.T) {
	var err error
	out := captureStdout(t, func() {
		err = HandleTypeMap([]string{"--format", "json"})
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "["))
	assert.Contains(t, out, `"go_type": "bool"`)
	assert.Contains(t, out, `"type": "boolean"`)
}
