package typemap

import (
	"fmt"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type UUID [16]byte

type status string

func TestFor(t *testing.T) {
	tests := []struct {
		value  any
		typ    string
		format string
	}{
		{true, "boolean", ""},
		{byte(1), "string", "byte"},
		{[]byte("x"), "string", "byte"},
		{int8(1), "integer", "int32"},
		{int16(1), "integer", "int32"},
		{int32(1), "integer", "int32"},
		{uint16(1), "integer", "int32"},
		{uint32(1), "integer", "int32"},
		{1, "integer", "int64"},
		{int64(1), "integer", "int64"},
		{uint(1), "integer", "int64"},
		{uint64(1), "integer", "int64"},
		{float32(1), "number", "float"},
		{1.5, "number", "double"},
		{"s", "string", ""},
		{status("ok"), "string", ""},
		{time.Now(), "string", "date-time"},
		{UUID{}, "string", "uuid"},
		{[16]byte{}, "string", ""},
		{url.URL{}, "string", ""},
		{struct{}{}, "string", ""},
		{map[string]int{}, "string", ""},
		{nil, "string", ""},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T", tt.value), func(t *testing.T) {
			s := ForValue(tt.value)
			require.NotNil(t, s)
			assert.Equal(t, tt.typ, s.Type)
			assert.Equal(t, tt.format, s.Format)
			assert.False(t, s.Nullable)
		})
	}
}

func TestForPointers(t *testing.T) {
	s := For(reflect.TypeFor[*int32]())
	assert.Equal(t, "integer", s.Type)
	assert.Equal(t, "int32", s.Format)
	assert.True(t, s.Nullable)

	s = ForValue(&url.URL{})
	assert.Equal(t, "string", s.Type)
	assert.True(t, s.Nullable)

	s = For(reflect.TypeFor[*time.Time]())
	assert.Equal(t, "date-time", s.Format)
	assert.True(t, s.Nullable)
}

func TestForInterface(t *testing.T) {
	s := For(reflect.TypeFor[any]())
	assert.Equal(t, "object", s.Type)
	assert.Empty(t, s.Format)
}

func TestForReturnsFreshSchemas(t *testing.T) {
	a := ForValue(1)
	a.Description = "changed"
	assert.Empty(t, ForValue(1).Description)
}

func TestTable(t *testing.T) {
	entries := Table()
	require.NotEmpty(t, entries)
	require.Zero(t, len(entries)%2)

	byType := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byType[e.GoType] = e
	}
	assert.Equal(t, "boolean", byType["bool"].Schema.Type)
	assert.Equal(t, "uuid", byType["typemap.UUID"].Schema.Format)
	assert.Equal(t, "date-time", byType["time.Time"].Schema.Format)
	assert.True(t, byType["*float64"].Schema.Nullable)
	assert.False(t, byType["float64"].Schema.Nullable)

	half := len(entries) / 2
	for i, e := range entries[:half] {
		assert.Equal(t, "*"+e.GoType, entries[half+i].GoType)
	}
}
