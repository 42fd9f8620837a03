// Package typemap maps Go primitive types to OpenAPI schemas.
//
// The mapping follows the OpenAPI data type table: integers become
// "integer" with an int32 or int64 format, floats become "number" with a
// float or double format, and string-like types become "string" with a
// format where one applies (byte, date-time, uuid). Types with no
// primitive counterpart map to a plain string schema.
package typemap

import (
	"net/url"
	"reflect"
	"time"

	"github.com/erraggy/oasdoc/parser"
)

var (
	timeType = reflect.TypeFor[time.Time]()
	urlType  = reflect.TypeFor[url.URL]()
)

// For returns a new schema describing t. Pointer types map to the schema
// of their element with Nullable set. A nil type maps to a string schema.
func For(t reflect.Type) *parser.Schema {
	if t == nil {
		return primitive("string", "")
	}
	if t.Kind() == reflect.Pointer {
		s := For(t.Elem())
		s.Nullable = true
		return s
	}
	switch {
	case t == timeType:
		return primitive("string", "date-time")
	case t == urlType:
		return primitive("string", "")
	case isUUID(t):
		return primitive("string", "uuid")
	}

	switch t.Kind() {
	case reflect.Bool:
		return primitive("boolean", "")
	case reflect.Uint8:
		return primitive("string", "byte")
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Uint16, reflect.Uint32:
		return primitive("integer", "int32")
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return primitive("integer", "int64")
	case reflect.Float32:
		return primitive("number", "float")
	case reflect.Float64:
		return primitive("number", "double")
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return primitive("string", "byte")
		}
	case reflect.Interface:
		return primitive("object", "")
	}
	return primitive("string", "")
}

// ForValue returns the schema for the dynamic type of v.
func ForValue(v any) *parser.Schema {
	return For(reflect.TypeOf(v))
}

// isUUID matches 16-byte array types named UUID, the shape every common
// UUID package uses.
func isUUID(t reflect.Type) bool {
	return t.Kind() == reflect.Array && t.Len() == 16 &&
		t.Elem().Kind() == reflect.Uint8 && t.Name() == "UUID"
}

func primitive(typ, format string) *parser.Schema {
	return &parser.Schema{Type: typ, Format: format}
}

// Entry is one row of the mapping table.
type Entry struct {
	// GoType is the Go spelling of the type
	GoType string
	Schema *parser.Schema
}

// Table lists the mapping for every supported primitive and its pointer.
func Table() []Entry {
	// UUID stands in for the UUID types of third-party packages.
	type UUID [16]byte
	tableTypes := []reflect.Type{
		reflect.TypeFor[bool](),
		reflect.TypeFor[byte](),
		reflect.TypeFor[[]byte](),
		reflect.TypeFor[int8](),
		reflect.TypeFor[int16](),
		reflect.TypeFor[int32](),
		reflect.TypeFor[uint16](),
		reflect.TypeFor[uint32](),
		reflect.TypeFor[int](),
		reflect.TypeFor[int64](),
		reflect.TypeFor[uint](),
		reflect.TypeFor[uint64](),
		reflect.TypeFor[float32](),
		reflect.TypeFor[float64](),
		reflect.TypeFor[string](),
		reflect.TypeFor[time.Time](),
		reflect.TypeFor[UUID](),
		reflect.TypeFor[url.URL](),
		reflect.TypeFor[any](),
	}
	entries := make([]Entry, 0, 2*len(tableTypes))
	for _, t := range tableTypes {
		entries = append(entries, Entry{GoType: t.String(), Schema: For(t)})
	}
	for _, t := range tableTypes {
		p := reflect.PointerTo(t)
		entries = append(entries, Entry{GoType: p.String(), Schema: For(p)})
	}
	return entries
}
