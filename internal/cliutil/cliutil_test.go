package cliutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "Hello, %s!", "World")
	if got := buf.String(); got != "Hello, World!" {
		t.Errorf("Writef() = %q, want %q", got, "Hello, World!")
	}
}

func TestWritef_MultipleArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "%s: %d items, %v active", "Status", 42, true)
	want := "Status: 42 items, true active"
	if got := buf.String(); got != want {
		t.Errorf("Writef() = %q, want %q", got, want)
	}
}

// errorWriter is a writer that always returns an error
type errorWriter struct{}

func (errorWriter) Write(p []byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWritef_WriteError(t *testing.T) {
	// Should not panic
	Writef(errorWriter{}, "This will fail")
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if IsTerminal(f) {
		t.Error("IsTerminal() = true for a regular file")
	}
}

func TestColor(t *testing.T) {
	on := Color(true, color.FgRed).Sprint("x")
	if on == "x" {
		t.Errorf("Color(true) produced no escape codes: %q", on)
	}
	if off := Color(false, color.FgRed).Sprint("x"); off != "x" {
		t.Errorf("Color(false) = %q, want %q", off, "x")
	}
}
