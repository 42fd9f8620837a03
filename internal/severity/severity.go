// Package severity provides severity level constants for issues reported
// while loading documents.
//
// The parser reports:
//   - SeverityInfo: notices about choices made, e.g. a number clamped to range
//   - SeverityWarning: recoverable problems, e.g. unknown fields or malformed scalars
//   - SeverityError: problems that leave part of the document unusable
//   - SeverityCritical: reserved for failures that abort a load
package severity

import "strings"

// Severity indicates the severity level of an issue.
type Severity int

const (
	// SeverityError indicates a problem that leaves part of the document unusable.
	SeverityError Severity = iota

	// SeverityWarning indicates a recoverable problem the reader worked around.
	SeverityWarning

	// SeverityInfo indicates an informational notice.
	SeverityInfo

	// SeverityCritical indicates a problem that aborted processing.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// rank orders severities from least to most severe.
func (s Severity) rank() int {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// AtLeast reports whether s is as severe as threshold or more.
func (s Severity) AtLeast(threshold Severity) bool {
	return s.rank() >= threshold.rank()
}

// Parse converts a name produced by String back to a Severity.
func Parse(name string) (Severity, bool) {
	switch strings.ToLower(name) {
	case "info":
		return SeverityInfo, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	case "critical":
		return SeverityCritical, true
	default:
		return SeverityInfo, false
	}
}
