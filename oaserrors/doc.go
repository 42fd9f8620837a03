// Package oaserrors provides structured error types for the oasdoc library.
//
// Import path: github.com/erraggy/oasdoc/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
//   - [ParseError]: source text could not be parsed into a node tree
//   - [StructuralError]: a node has the wrong shape (hard failure)
//   - [MalformedScalarError]: a field value cannot be coerced (recoverable diagnostic)
//   - [ReferenceError]: $ref resolution failures, circular references, path traversal
//   - [UnbalancedWriteError]: writer scope misuse (caller bug)
//   - [ResourceLimitError]: resource exhaustion (size, count limits)
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError] or [StructuralError]
//   - [ErrStructural]: Matches any [StructuralError]
//   - [ErrMalformedScalar]: Matches any [MalformedScalarError]
//   - [ErrReference] / [ErrUnresolvedReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrPathTraversal]: Matches [ReferenceError] with IsPathTraversal=true
//   - [ErrUnbalancedWrite]: Matches any [UnbalancedWriteError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("Failed to resolve ref: %s\n", refErr.Ref)
//	}
//
//	if errors.Is(err, oaserrors.ErrPathTraversal) {
//	    // Security issue - log and reject
//	}
package oaserrors
