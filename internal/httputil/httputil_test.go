package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{"default keyword", "default", true},
		{"extension x-custom", "x-custom", true},
		{"extension x-200", "x-200", true},
		{"wildcard 1XX", "1XX", true},
		{"wildcard 5XX", "5XX", true},
		{"invalid wildcard 0XX", "0XX", false},
		{"invalid wildcard 6XX", "6XX", false},
		{"partial wildcard 20X", "20X", false},
		{"partial wildcard X2X", "X2X", false},
		{"lowercase wildcard", "2xx", false},
		{"valid 100", "100", true},
		{"valid 418", "418", true},
		{"valid 599", "599", true},
		{"invalid 099", "099", false},
		{"invalid 600", "600", false},
		{"too short", "20", false},
		{"too long", "2000", false},
		{"empty", "", false},
		{"word", "ok", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateStatusCode(tt.code))
		})
	}
}

func TestIsStatusCode(t *testing.T) {
	assert.True(t, IsStatusCode("200"))
	assert.True(t, IsStatusCode("4XX"))
	assert.False(t, IsStatusCode("default"))
	assert.False(t, IsStatusCode("x-200"))
}

func TestIsValidMediaType(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		expected  bool
	}{
		{"universal wildcard", "*/*", true},
		{"type wildcard", "application/*", true},
		{"star type wildcard", "*/*/*", false},
		{"bare wildcard suffix", "/*", false},
		{"standard", "application/json", true},
		{"vendor", "application/vnd.api+json", true},
		{"with charset", "text/html; charset=utf-8", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidMediaType(tt.mediaType))
		})
	}
}
