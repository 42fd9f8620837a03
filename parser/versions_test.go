package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected OASVersion
		ok       bool
	}{
		{"2.0", OASVersion20, true},
		{"2.0.0", OASVersion20, true},
		{"3.0.0", OASVersion300, true},
		{"3.0.3", OASVersion303, true},
		{"3.0.4", OASVersion304, true},
		{"3.0.9", OASVersion304, true},
		{"3.0", OASVersion300, true},
		{"3.1.0", OASVersion310, true},
		{"3.1.1", OASVersion311, true},
		{"3.1.5", OASVersion312, true},
		{"3.2.0", OASVersion320, true},
		{"3.2.1", OASVersion320, true},
		{"3.0.0-rc0", OASVersion300, true},
		{"3.1.1-rc1", OASVersion311, true},
		{"3.0.2+build", OASVersion302, true},
		{"1.2", Unknown, false},
		{"2.1", Unknown, false},
		{"3.3.0", Unknown, false},
		{"4.0.0", Unknown, false},
		{"3", Unknown, false},
		{"3.x.0", Unknown, false},
		{"", Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := ParseVersion(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestOASVersionMethods(t *testing.T) {
	assert.Equal(t, "3.1.2", OASVersion312.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.True(t, OASVersion20.IsValid())
	assert.False(t, Unknown.IsValid())
	assert.True(t, OASVersion20.IsOAS2())
	assert.False(t, OASVersion20.IsOAS3())
	assert.True(t, OASVersion320.IsOAS3())

	families := map[OASVersion]SpecVersion{
		OASVersion20:  SpecVersion20,
		OASVersion300: SpecVersion30,
		OASVersion304: SpecVersion30,
		OASVersion310: SpecVersion31,
		OASVersion312: SpecVersion31,
		OASVersion320: SpecVersion32,
		Unknown:       SpecVersionUnknown,
	}
	for v, family := range families {
		assert.Equal(t, family, v.Family(), v.String())
	}
}

func TestParseSpecVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected SpecVersion
		ok       bool
	}{
		{"2", SpecVersion20, true},
		{"2.0", SpecVersion20, true},
		{"3.0", SpecVersion30, true},
		{"3.0.3", SpecVersion30, true},
		{"3.1", SpecVersion31, true},
		{"3.1.1", SpecVersion31, true},
		{"3.2", SpecVersion32, true},
		{"3.2.0", SpecVersion32, true},
		{"4", SpecVersionUnknown, false},
		{"latest", SpecVersionUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := ParseSpecVersion(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, v)
			if ok {
				assert.NotEqual(t, "unknown", v.String())
			}
		})
	}
}
