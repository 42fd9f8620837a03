package pathutil

import "strings"

var (
	segmentEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	segmentUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// EscapeSegment escapes a key for use as a JSON pointer segment (RFC 6901).
func EscapeSegment(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	return segmentEscaper.Replace(s)
}

// UnescapeSegment reverses EscapeSegment. "~01" becomes "~1", not "/".
func UnescapeSegment(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	return segmentUnescaper.Replace(s)
}

// JoinPointer builds a "#/..." fragment pointer from raw segments.
func JoinPointer(segments []string) string {
	var p PathBuilder
	p.Set(segments)
	return p.String()
}
