// Package issues provides the diagnostic type reported while reading documents.
package issues

import (
	"fmt"

	"github.com/erraggy/oasdoc/internal/severity"
)

// Issue represents a single recoverable problem found while loading a
// document: an unknown field, a malformed scalar, a clamped number.
type Issue struct {
	// Path is the JSON pointer of the problematic node (e.g., "#/paths/~1pets/get")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Field is the specific field name that has the issue
	Field string
	// Value is the problematic value (optional)
	Value any
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int
	// File is the location of the document the issue was found in, if known
	File string
	// Err is the structured error behind the issue, if any
	Err error
}

// Symbol returns the marker used when printing an issue:
// "✗" for Error or Critical, "⚠" for Warning, "ℹ" for Info.
func (i Issue) Symbol() string {
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		return "✗"
	case severity.SeverityWarning:
		return "⚠"
	case severity.SeverityInfo:
		return "ℹ"
	default:
		return "?"
	}
}

// String returns a formatted string representation of the issue.
func (i Issue) String() string {
	path := i.Path
	if i.File != "" {
		path = i.File + path
	}
	if i.Line > 0 {
		return fmt.Sprintf("%s %s (line %d, col %d): %s", i.Symbol(), path, i.Line, i.Column, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", i.Symbol(), path, i.Message)
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is set,
// or the JSON pointer if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Unwrap exposes Err so an Issue converted with AsError works with errors.Is.
func (i Issue) Unwrap() error { return i.Err }

// Error implements error so issues can be joined or returned directly.
func (i Issue) Error() string {
	if i.Err != nil {
		return i.Err.Error()
	}
	return i.Path + ": " + i.Message
}

// Count returns how many issues have each severity.
func Count(list []Issue) map[severity.Severity]int {
	counts := make(map[severity.Severity]int)
	for _, i := range list {
		counts[i.Severity]++
	}
	return counts
}
