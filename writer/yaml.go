package writer

import (
	"bufio"
	"io"
	"strings"

	"go.yaml.in/yaml/v4"
)

// YAMLWriter streams block-style YAML. Mapping members and sequence items
// each take one line; a collection that is itself a sequence item starts on
// the item's line after "- ". Empty collections are written in flow style.
type YAMLWriter struct {
	out    *bufio.Writer
	scopes scopes
	frames []yamlFrame
	// started is set once anything has been written, so the first line is
	// not preceded by a line break.
	started bool
	err     error
}

// yamlFrame is the layout of one open collection.
type yamlFrame struct {
	// indent is the column of the collection's keys or "- " markers.
	indent int
	// inline is set when the first entry continues the current line.
	inline bool
	// afterName is set when the collection is a mapping value.
	afterName bool
}

// NewYAMLWriter returns a YAMLWriter writing to w.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{out: bufio.NewWriter(w)}
}

func (w *YAMLWriter) fail(err error) error {
	if w.err == nil {
		w.err = err
	}
	return w.err
}

func (w *YAMLWriter) write(s string) {
	w.started = true
	if _, err := w.out.WriteString(s); err != nil {
		w.fail(err)
	}
}

// line begins an entry of the innermost collection.
func (w *YAMLWriter) line(first bool) {
	f := w.frames[len(w.frames)-1]
	if first && f.inline {
		return
	}
	if w.started {
		w.write("\n")
	}
	w.write(strings.Repeat(" ", f.indent))
}

// item writes the "- " marker when pos is an array element.
func (w *YAMLWriter) item(pos position) {
	if pos.inArray() {
		w.line(pos.first)
		w.write("- ")
	}
}

// StartObject opens a mapping.
func (w *YAMLWriter) StartObject() error { return w.start("StartObject", objectScope) }

// StartArray opens a sequence.
func (w *YAMLWriter) StartArray() error { return w.start("StartArray", arrayScope) }

// EndObject closes the innermost mapping.
func (w *YAMLWriter) EndObject() error { return w.end("EndObject", objectScope, "{}") }

// EndArray closes the innermost sequence.
func (w *YAMLWriter) EndArray() error { return w.end("EndArray", arrayScope, "[]") }

func (w *YAMLWriter) start(op string, k scopeKind) error {
	if w.err != nil {
		return w.err
	}
	pos, err := w.scopes.start(op, k)
	if err != nil {
		return w.fail(err)
	}
	w.item(pos)
	f := yamlFrame{}
	switch {
	case pos.parent == nil:
	case pos.inArray():
		f.indent = w.frames[len(w.frames)-1].indent + 2
		f.inline = true
	default:
		f.indent = w.frames[len(w.frames)-1].indent + 2
		f.afterName = true
	}
	w.frames = append(w.frames, f)
	return w.err
}

func (w *YAMLWriter) end(op string, k scopeKind, empty string) error {
	if w.err != nil {
		return w.err
	}
	sc, err := w.scopes.end(op, k)
	if err != nil {
		return w.fail(err)
	}
	f := w.frames[len(w.frames)-1]
	w.frames = w.frames[:len(w.frames)-1]
	if sc.count == 0 {
		if f.afterName {
			w.write(" ")
		}
		w.write(empty)
	}
	return w.err
}

// WritePropertyName writes a mapping key.
func (w *YAMLWriter) WritePropertyName(name string) error {
	if w.err != nil {
		return w.err
	}
	first, err := w.scopes.name("WritePropertyName")
	if err != nil {
		return w.fail(err)
	}
	key, err := yamlScalar(name)
	if err != nil {
		return w.fail(err)
	}
	w.line(first)
	w.write(key + ":")
	return w.err
}

// WriteValue writes a string, bool, integer or float scalar.
func (w *YAMLWriter) WriteValue(v any) error {
	if w.err != nil {
		return w.err
	}
	var text string
	var err error
	if s, ok := v.(string); ok {
		text, err = yamlScalar(s)
	} else {
		text, err = encodeScalar(v)
	}
	if err != nil {
		return w.fail(err)
	}
	return w.scalar("WriteValue", text)
}

// WriteNull writes null.
func (w *YAMLWriter) WriteNull() error {
	if w.err != nil {
		return w.err
	}
	return w.scalar("WriteNull", "null")
}

// WriteRaw writes raw unchanged. It must be a single-line YAML flow value,
// such as compact JSON.
func (w *YAMLWriter) WriteRaw(raw string) error {
	if w.err != nil {
		return w.err
	}
	return w.scalar("WriteRaw", raw)
}

func (w *YAMLWriter) scalar(op, text string) error {
	pos, err := w.scopes.value(op)
	if err != nil {
		return w.fail(err)
	}
	if pos.parent != nil && !pos.inArray() {
		w.write(" ")
	}
	w.item(pos)
	w.write(text)
	return w.err
}

// Flush checks that every scope is closed, ends the last line and flushes
// buffered output.
func (w *YAMLWriter) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.scopes.complete("Flush"); err != nil {
		return w.fail(err)
	}
	if w.started {
		w.write("\n")
	}
	if err := w.out.Flush(); err != nil {
		return w.fail(err)
	}
	return w.err
}

// ambiguousWords are plain scalars YAML 1.1 readers take as booleans.
var ambiguousWords = map[string]bool{
	"y": true, "n": true, "yes": true, "no": true, "on": true, "off": true,
}

// yamlScalar renders s plain when a YAML reader gives back exactly s, and as
// a double-quoted JSON string otherwise.
func yamlScalar(s string) (string, error) {
	if isPlainSafe(s) {
		return s, nil
	}
	return encodeString(s)
}

func isPlainSafe(s string) bool {
	if s == "" || strings.ContainsAny(s, "\n\r\t") || ambiguousWords[strings.ToLower(s)] {
		return false
	}
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return false
	}
	got, ok := v.(string)
	return ok && got == s
}
