// Package oaserrors provides structured error types for oasdoc.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ParseError: source text could not be turned into a node tree
//   - StructuralError: a node is present but has the wrong shape
//   - MalformedScalarError: a scalar cannot be coerced to its field's type
//   - ReferenceError: $ref resolution failures, circular references, path traversal
//   - UnbalancedWriteError: misuse of a structured writer's scope stack
//   - ResourceLimitError: resource exhaustion (size, count limits)
//   - ConfigError: invalid configuration or input options
//
// StructuralError and ReferenceError abort loading of the entity subtree they
// occur in. MalformedScalarError is recoverable: the parser records it as a
// diagnostic and keeps going.
//
// # Usage with errors.Is
//
//	schema, err := doc.Components.Schemas.Get("Pet")
//	...
//	resolved, err := schema.Resolve()
//	if errors.Is(err, oaserrors.ErrCircularReference) {
//	    // Handle circular reference specifically
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrStructural indicates a node had the wrong shape for its position.
	ErrStructural = errors.New("structural error")

	// ErrMalformedScalar indicates a scalar could not be coerced to its declared type.
	ErrMalformedScalar = errors.New("malformed scalar")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")

	// ErrUnresolvedReference is an alias of ErrReference for readability at call sites.
	ErrUnresolvedReference = ErrReference

	// ErrCircularReference indicates a circular $ref was detected.
	ErrCircularReference = errors.New("circular reference")

	// ErrPathTraversal indicates a path traversal attempt was blocked.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrUnbalancedWrite indicates a writer was driven with mismatched calls.
	ErrUnbalancedWrite = errors.New("unbalanced write")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// location renders " at <path> (line N, column M)" for whichever parts are known.
func location(path string, line, column int) string {
	var msg string
	if path != "" {
		msg += " at " + path
	}
	if line > 0 {
		msg += fmt.Sprintf(" (line %d", line)
		if column > 0 {
			msg += fmt.Sprintf(", column %d", column)
		}
		msg += ")"
	}
	return msg
}

// ParseError represents a failure to turn source text into a node tree.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// StructuralError reports a node whose shape does not match what its position
// requires, e.g. a sequence where a Schema mapping was expected.
type StructuralError struct {
	// Path is the JSON pointer of the offending node
	Path string
	// Line is the source line of the node (0 if unknown)
	Line int
	// Column is the source column of the node (0 if unknown)
	Column int
	// Expected names what the position requires ("Schema", "scalar", ...)
	Expected string
	// Actual names the node kind found ("mapping", "sequence", "scalar")
	Actual string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *StructuralError) Error() string {
	msg := "structural error" + location(e.Path, e.Line, e.Column)
	if e.Expected != "" {
		msg += ": expected " + e.Expected
		if e.Actual != "" {
			msg += ", got " + e.Actual
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
// A StructuralError is also a parse failure.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural || target == ErrParse
}

// MalformedScalarError reports a scalar that could not be coerced to the type
// declared for its field. The parser surfaces it as a diagnostic.
type MalformedScalarError struct {
	// Path is the JSON pointer of the offending field
	Path string
	// Line is the source line of the scalar (0 if unknown)
	Line int
	// Column is the source column of the scalar (0 if unknown)
	Column int
	// Value is the raw scalar text
	Value string
	// Type is the target type name ("boolean", "number", "integer")
	Type string
	// Cause is the underlying conversion error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *MalformedScalarError) Error() string {
	msg := "malformed scalar" + location(e.Path, e.Line, e.Column)
	msg += fmt.Sprintf(": %q is not a valid %s", e.Value, e.Type)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *MalformedScalarError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *MalformedScalarError) Is(target error) bool {
	return target == ErrMalformedScalar
}

// ReferenceError represents a failure to resolve a $ref.
// This includes missing targets, external load failures, circular
// reference chains, and path traversal attempts.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// RefType indicates the reference type: "local", "file", or "http"
	RefType string
	// Path is the JSON pointer of the node holding the $ref, if known
	Path string
	// IsCircular is true if this error is due to a circular reference
	IsCircular bool
	// IsPathTraversal is true if this error is due to a path traversal attempt
	IsPathTraversal bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "unresolved reference"
	if e.IsCircular {
		msg = "circular reference"
	} else if e.IsPathTraversal {
		msg = "path traversal detected"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Path != "" {
		msg += " (at " + e.Path + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrReference, and also ErrCircularReference or ErrPathTraversal
// when appropriate flags are set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrReference {
		return true
	}
	if target == ErrCircularReference && e.IsCircular {
		return true
	}
	if target == ErrPathTraversal && e.IsPathTraversal {
		return true
	}
	return false
}

// UnbalancedWriteError reports a structured writer driven with calls that do
// not form a well-nested sequence. It indicates a caller bug, not bad data.
type UnbalancedWriteError struct {
	// Op is the writer call that was rejected ("EndObject", "WritePropertyName", ...)
	Op string
	// Depth is the scope depth at the time of the call
	Depth int
	// Message describes the violated rule
	Message string
}

// Error returns a human-readable error message.
func (e *UnbalancedWriteError) Error() string {
	msg := "unbalanced write"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	msg += fmt.Sprintf(" at depth %d", e.Depth)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnbalancedWriteError) Is(target error) bool {
	return target == ErrUnbalancedWrite
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when loading exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "cached_documents", "file_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
