package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/erraggy/oasdoc/internal/testutil"
	"github.com/erraggy/oasdoc/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	petstore30 = testutil.Testdata("petstore-3.0.json")
	petstore20 = testutil.Testdata("petstore-2.0.yaml")
	tree31     = testutil.Testdata("tree-3.1.yaml")
)

// captureStdout redirects os.Stdout while fn runs and returns what was written.
// The pipe is drained concurrently so large outputs do not block fn.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()

	defer func() { os.Stdout = old }()
	fn()
	_ = w.Close()
	os.Stdout = old
	return <-done
}

// withStdin replaces os.Stdin with content while fn runs.
func withStdin(t *testing.T, content string, fn func()) {
	t.Helper()
	f, err := os.Open(testutil.WriteTempFile(t, "stdin", content))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	old := os.Stdin
	os.Stdin = f
	defer func() { os.Stdin = old }()
	fn()
}

func TestFormatSpecPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSpecPath(StdinFilePath))
	assert.Equal(t, "api.yaml", FormatSpecPath("api.yaml"))
}

func TestParseRefSiblingPolicy(t *testing.T) {
	tests := []struct {
		value   string
		want    parser.RefSiblingPolicy
		wantErr bool
	}{
		{"", parser.RefSiblingsIgnore, false},
		{"ignore", parser.RefSiblingsIgnore, false},
		{"diagnose", parser.RefSiblingsDiagnose, false},
		{"error", parser.RefSiblingsError, false},
		{"strict", parser.RefSiblingsIgnore, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseRefSiblingPolicy(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid ref-siblings")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFlagsOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := &ReadFlags{RefSiblings: "ignore"}
		opts, err := f.options()
		require.NoError(t, err)
		assert.NotEmpty(t, opts)
	})

	t.Run("invalid version", func(t *testing.T) {
		f := &ReadFlags{Version: "4.0"}
		_, err := f.options()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid oas-version")
	})

	t.Run("invalid ref siblings", func(t *testing.T) {
		f := &ReadFlags{RefSiblings: "sometimes"}
		_, err := f.options()
		require.Error(t, err)
	})

	t.Run("verbose adds logger", func(t *testing.T) {
		quiet := &ReadFlags{}
		verbose := &ReadFlags{Verbose: true}
		a, err := quiet.options()
		require.NoError(t, err)
		b, err := verbose.options()
		require.NoError(t, err)
		assert.Len(t, b, len(a)+1)
	})
}

func TestReadSpec(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		result, err := readSpec(petstore30, &ReadFlags{})
		require.NoError(t, err)
		assert.Equal(t, "3.0.3", result.Version)
		assert.Equal(t, parser.SourceFormatJSON, result.SourceFormat)
	})

	t.Run("stdin", func(t *testing.T) {
		src, err := os.ReadFile(petstore20)
		require.NoError(t, err)
		withStdin(t, string(src), func() {
			result, err := readSpec(StdinFilePath, &ReadFlags{})
			require.NoError(t, err)
			assert.Equal(t, "2.0", result.Version)
		})
	})

	t.Run("unknown fields", func(t *testing.T) {
		path := testutil.WriteTempYAML(t, map[string]any{
			"openapi": "3.1.0",
			"info":    map[string]any{"title": "Colors", "version": "1", "colour": "red"},
			"paths":   map[string]any{},
		})

		result, err := readSpec(path, &ReadFlags{})
		require.NoError(t, err)
		assert.Empty(t, result.Diagnostics)

		result, err = readSpec(path, &ReadFlags{UnknownFields: true})
		require.NoError(t, err)
		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, "colour", result.Diagnostics[0].Field)
		assert.Equal(t, parser.SeverityWarning, result.Diagnostics[0].Severity)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readSpec(filepath.Join(t.TempDir(), "missing.yaml"), &ReadFlags{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing file")
	})
}

func TestOutputSpecStats(t *testing.T) {
	var buf bytes.Buffer
	stats := parser.DocumentStats{PathCount: 2, OperationCount: 3, SchemaCount: 4, ReferenceCount: 5}
	OutputSpecStats(&buf, 2048, stats, 1500*time.Microsecond)

	out := buf.String()
	assert.Contains(t, out, "Source Size: ")
	assert.Contains(t, out, "Paths: 2\n")
	assert.Contains(t, out, "Operations: 3\n")
	assert.Contains(t, out, "Schemas: 4\n")
	assert.Contains(t, out, "References: 5\n")
	assert.Contains(t, out, "Load Time: 1.5ms\n")
}

func TestOutputSpecHeader(t *testing.T) {
	var buf bytes.Buffer
	OutputSpecHeader(&buf, StdinFilePath, "3.1.0")
	assert.Contains(t, buf.String(), "Specification: <stdin>\n")
	assert.Contains(t, buf.String(), "OAS Version: 3.1.0\n")
}

func TestOutputDiagnostics(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		OutputDiagnostics(&buf, nil, false)
		assert.Empty(t, buf.String())
	})

	t.Run("counts per severity", func(t *testing.T) {
		diags := []parser.Diagnostic{
			{Path: "#/info", Message: "unknown field", Severity: parser.SeverityWarning, Line: 3, Column: 2},
			{Path: "#/paths", Message: "bad", Severity: parser.SeverityError},
			{Path: "#/x", Message: "clamped", Severity: parser.SeverityWarning},
		}
		var buf bytes.Buffer
		OutputDiagnostics(&buf, diags, false)

		out := buf.String()
		assert.Contains(t, out, "Diagnostics (3):\n")
		assert.Contains(t, out, "#/info (line 3, col 2): unknown field")
		assert.Contains(t, out, "Error: 1\n")
		assert.Contains(t, out, "Warning: 2\n")
		assert.NotContains(t, out, "\x1b[", "no escape codes without color")
	})

	t.Run("color", func(t *testing.T) {
		diags := []parser.Diagnostic{{Path: "#/x", Message: "bad", Severity: parser.SeverityError}}
		var buf bytes.Buffer
		OutputDiagnostics(&buf, diags, true)
		assert.Contains(t, buf.String(), "\x1b[")
	})
}

func TestErrorCount(t *testing.T) {
	diags := []parser.Diagnostic{
		{Severity: parser.SeverityInfo},
		{Severity: parser.SeverityWarning},
		{Severity: parser.SeverityError},
		{Severity: parser.SeverityCritical},
	}
	assert.Equal(t, 2, errorCount(diags))
	assert.Equal(t, 0, errorCount(nil))
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.yaml")

	t.Run("same as input", func(t *testing.T) {
		err := ValidateOutputPath(input, []string{input})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "would overwrite input file")
	})

	t.Run("stdin input skipped", func(t *testing.T) {
		assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out.yaml"), []string{StdinFilePath}))
	})

	t.Run("different path", func(t *testing.T) {
		assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "out.yaml"), []string{input}))
	})
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.yaml")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
	link := filepath.Join(dir, "link.yaml")
	require.NoError(t, os.Symlink(target, link))

	assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "new.yaml")))
	assert.NoError(t, RejectSymlinkOutput(target))

	err := RejectSymlinkOutput(link)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to write to symlink")
}

func TestWriteOutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeOutputFile(out, []byte("{}\n"), []string{petstore30}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}
