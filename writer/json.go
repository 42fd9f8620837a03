package writer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-json"
)

const indentUnit = "  "

// JSONWriter streams JSON text. Pretty output puts every member and element
// on its own line, indented two spaces per level; terse output is a single
// line without insignificant whitespace.
type JSONWriter struct {
	out    *bufio.Writer
	terse  bool
	scopes scopes
	err    error
}

// NewJSONWriter returns a JSONWriter writing to w.
func NewJSONWriter(w io.Writer, terse bool) *JSONWriter {
	return &JSONWriter{out: bufio.NewWriter(w), terse: terse}
}

func (w *JSONWriter) fail(err error) error {
	if w.err == nil {
		w.err = err
	}
	return w.err
}

func (w *JSONWriter) write(s string) {
	if _, err := w.out.WriteString(s); err != nil {
		w.fail(err)
	}
}

// newline starts a new line indented to level. Terse output skips it.
func (w *JSONWriter) newline(level int) {
	if w.terse {
		return
	}
	w.write("\n" + strings.Repeat(indentUnit, level))
}

// element writes what precedes a value at pos: the separator and line break
// of an array element. Values after a property name need nothing.
func (w *JSONWriter) element(pos position, level int) {
	if !pos.inArray() {
		return
	}
	if !pos.first {
		w.write(",")
	}
	w.newline(level)
}

// StartObject opens an object.
func (w *JSONWriter) StartObject() error { return w.start("StartObject", objectScope, "{") }

// StartArray opens an array.
func (w *JSONWriter) StartArray() error { return w.start("StartArray", arrayScope, "[") }

// EndObject closes the innermost object.
func (w *JSONWriter) EndObject() error { return w.end("EndObject", objectScope, "}") }

// EndArray closes the innermost array.
func (w *JSONWriter) EndArray() error { return w.end("EndArray", arrayScope, "]") }

func (w *JSONWriter) start(op string, k scopeKind, open string) error {
	if w.err != nil {
		return w.err
	}
	level := w.scopes.depth()
	pos, err := w.scopes.start(op, k)
	if err != nil {
		return w.fail(err)
	}
	w.element(pos, level)
	w.write(open)
	return w.err
}

func (w *JSONWriter) end(op string, k scopeKind, closer string) error {
	if w.err != nil {
		return w.err
	}
	sc, err := w.scopes.end(op, k)
	if err != nil {
		return w.fail(err)
	}
	if sc.count > 0 {
		w.newline(w.scopes.depth())
	}
	w.write(closer)
	return w.err
}

// WritePropertyName writes an object member name.
func (w *JSONWriter) WritePropertyName(name string) error {
	if w.err != nil {
		return w.err
	}
	first, err := w.scopes.name("WritePropertyName")
	if err != nil {
		return w.fail(err)
	}
	encoded, err := encodeString(name)
	if err != nil {
		return w.fail(err)
	}
	if !first {
		w.write(",")
	}
	w.newline(w.scopes.depth())
	w.write(encoded)
	if w.terse {
		w.write(":")
	} else {
		w.write(": ")
	}
	return w.err
}

// WriteValue writes a string, bool, integer or float scalar.
func (w *JSONWriter) WriteValue(v any) error {
	if w.err != nil {
		return w.err
	}
	text, err := encodeScalar(v)
	if err != nil {
		return w.fail(err)
	}
	return w.raw("WriteValue", text)
}

// WriteNull writes null.
func (w *JSONWriter) WriteNull() error {
	if w.err != nil {
		return w.err
	}
	return w.raw("WriteNull", "null")
}

// WriteRaw writes raw unchanged. It must be a complete JSON value.
func (w *JSONWriter) WriteRaw(raw string) error {
	if w.err != nil {
		return w.err
	}
	return w.raw("WriteRaw", raw)
}

func (w *JSONWriter) raw(op, text string) error {
	level := w.scopes.depth()
	pos, err := w.scopes.value(op)
	if err != nil {
		return w.fail(err)
	}
	w.element(pos, level)
	w.write(text)
	return w.err
}

// Flush checks that every scope is closed and flushes buffered output.
func (w *JSONWriter) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.scopes.complete("Flush"); err != nil {
		return w.fail(err)
	}
	if err := w.out.Flush(); err != nil {
		return w.fail(err)
	}
	return nil
}

func encodeString(s string) (string, error) {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// encodeScalar renders a scalar as JSON text.
func encodeScalar(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null", nil
	case string:
		return encodeString(x)
	case bool:
		if x {
			return "true", nil
		}
		return "false", nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return "", fmt.Errorf("writer: %v cannot be written as a number", x)
		}
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return "", fmt.Errorf("writer: %v cannot be written as a number", x)
		}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
	default:
		return "", fmt.Errorf("writer: unsupported scalar type %T", v)
	}
	b, err := json.MarshalWithOption(v, json.DisableHTMLEscape())
	if err != nil {
		return "", fmt.Errorf("writer: encoding %v: %w", v, err)
	}
	return string(b), nil
}
