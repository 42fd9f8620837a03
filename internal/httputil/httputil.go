// Package httputil provides HTTP-related key classification used while
// reading OpenAPI documents.
package httputil

import (
	"mime"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode    = 100 // Minimum valid HTTP status code
	MaxStatusCode    = 599 // Maximum valid HTTP status code
	WildcardChar     = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
)

// HTTP Method Constants, as they appear as Path Item keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
	MethodQuery   = "query" // OAS 3.2+ only
)

// ValidateStatusCode checks if a Responses key is valid according to OpenAPI spec.
// Valid values are:
//   - "default" for default response
//   - Extension fields starting with "x-"
//   - Anything IsStatusCode accepts
func ValidateStatusCode(code string) bool {
	return code == "default" || strings.HasPrefix(code, "x-") || IsStatusCode(code)
}

// IsStatusCode reports whether code is a numeric status code in 100-599 or
// a range wildcard 1XX-5XX.
func IsStatusCode(code string) bool {
	if len(code) != StatusCodeLength || code[0] < '1' || code[0] > '5' {
		return false
	}
	if code[1] == WildcardChar && code[2] == WildcardChar {
		return true
	}
	return isDigit(code[1]) && isDigit(code[2])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*).
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	if typ, ok := strings.CutSuffix(mediaType, "/*"); ok {
		return typ != "" && typ != "*" && !strings.Contains(typ, "/")
	}

	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
