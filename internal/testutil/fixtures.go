// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// TinyOAS3 is a minimal OAS 3.0 document already in the writer's canonical
// YAML form, so writing it back as YAML reproduces it byte for byte.
const TinyOAS3 = `openapi: 3.0.3
info:
  title: Tiny
  version: "1.0"
paths:
  /ping:
    get:
      responses:
        "200":
          description: pong
`

// TinyOAS3TerseJSON is TinyOAS3 written as terse JSON.
const TinyOAS3TerseJSON = `{"openapi":"3.0.3","info":{"title":"Tiny","version":"1.0"},"paths":{"/ping":{"get":{"responses":{"200":{"description":"pong"}}}}}}`

// Testdata returns the path of a document under parser/testdata.
func Testdata(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "parser", "testdata", name)
}

// WriteTempFile writes content to a file called name in a fresh temporary
// directory and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return path
}

// WriteTempYAML marshals a value to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteTempJSON marshals a value to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}
	return WriteTempFile(t, "test.json", string(data))
}
