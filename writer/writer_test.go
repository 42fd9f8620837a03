package writer

import (
	"bytes"
	"errors"
	"math"
	"testing"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdoc/oaserrors"
	"github.com/erraggy/oasdoc/parser"
)

// writeSample drives w through a small document exercising nesting, empty
// collections and mixed scalars.
func writeSample(t *testing.T, w Writer) {
	t.Helper()
	steps := []func() error{
		w.StartObject,
		func() error { return w.WritePropertyName("name") },
		func() error { return w.WriteValue("pet") },
		func() error { return w.WritePropertyName("tags") },
		w.StartArray,
		func() error { return w.WriteValue("a") },
		func() error { return w.WriteValue(1) },
		w.StartObject,
		w.EndObject,
		w.EndArray,
		func() error { return w.WritePropertyName("empty") },
		w.StartArray,
		w.EndArray,
		w.EndObject,
		w.Flush,
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
	}
}

func TestJSONWriterPretty(t *testing.T) {
	var buf bytes.Buffer
	writeSample(t, NewJSONWriter(&buf, false))
	assert.Equal(t, `{
  "name": "pet",
  "tags": [
    "a",
    1,
    {}
  ],
  "empty": []
}`, buf.String())
}

func TestJSONWriterTerse(t *testing.T) {
	var buf bytes.Buffer
	writeSample(t, NewJSONWriter(&buf, true))
	assert.Equal(t, `{"name":"pet","tags":["a",1,{}],"empty":[]}`, buf.String())
}

func TestJSONWriterNestedArrays(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, false)
	require.NoError(t, WriteAny(w, []any{[]any{int64(1), int64(2)}, []any{}, nil}))
	require.NoError(t, w.Flush())
	assert.Equal(t, "[\n  [\n    1,\n    2\n  ],\n  [],\n  null\n]", buf.String())
}

func TestJSONWriterScalars(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "a \"quoted\" <tag>", `"a \"quoted\" <tag>"`},
		{"unicode", "café", `"café"`},
		{"bool", false, "false"},
		{"int", 42, "42"},
		{"negative int64", int64(-7), "-7"},
		{"float", 1.5, "1.5"},
		{"whole float", float64(100), "100"},
		{"max float", math.MaxFloat64, "1.7976931348623157e+308"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewJSONWriter(&buf, true)
			require.NoError(t, w.WriteValue(tt.value))
			require.NoError(t, w.Flush())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestJSONWriterKeepsMarkup(t *testing.T) {
	doc := parseString(t, `openapi: 3.0.3
info:
  title: a <b> & c
  version: "1"
  description: "Use <code>x & y</code>"
paths: {}
`)
	for _, terse := range []bool{false, true} {
		out := marshal(t, doc, FormatJSON, Settings{Terse: terse})
		assert.Contains(t, out, `"a <b> & c"`)
		assert.Contains(t, out, `"Use <code>x & y</code>"`)
		assert.NotContains(t, out, `\u003c`)
		assert.NotContains(t, out, `\u0026`)
	}

	var buf bytes.Buffer
	w := NewJSONWriter(&buf, true)
	require.NoError(t, w.StartObject())
	require.NoError(t, w.WritePropertyName("<k>&"))
	require.NoError(t, w.WriteValue(">"))
	require.NoError(t, w.EndObject())
	require.NoError(t, w.Flush())
	assert.Equal(t, `{"<k>&":">"}`, buf.String())
}

func TestValueBuilderIntegers(t *testing.T) {
	for _, v := range []any{int8(-3), uint16(7), uint(42), uint64(math.MaxInt64)} {
		b := NewValueBuilder()
		require.NoError(t, b.WriteValue(v))
		got, err := b.Value()
		require.NoError(t, err)
		assert.IsType(t, int64(0), got, "%T", v)
	}

	b := NewValueBuilder()
	err := b.WriteValue(uint64(math.MaxUint64))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "18446744073709551615 overflows int64")
	_, err = b.Value()
	assert.Error(t, err, "the builder keeps the first error")
}

func TestWriteValueRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		var buf bytes.Buffer
		w := NewJSONWriter(&buf, true)
		assert.Error(t, w.WriteValue(v))
	}
	w := NewJSONWriter(&bytes.Buffer{}, true)
	assert.Error(t, w.WriteValue(struct{}{}))
}

func TestWriteRaw(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, true)
	require.NoError(t, w.StartArray())
	require.NoError(t, w.WriteRaw(`{"a":1}`))
	require.NoError(t, w.WriteNull())
	require.NoError(t, w.EndArray())
	require.NoError(t, w.Flush())
	assert.Equal(t, `[{"a":1},null]`, buf.String())
}

// newWriters returns one instance of every Writer implementation.
func newWriters() map[string]Writer {
	return map[string]Writer{
		"json":  NewJSONWriter(&bytes.Buffer{}, false),
		"terse": NewJSONWriter(&bytes.Buffer{}, true),
		"yaml":  NewYAMLWriter(&bytes.Buffer{}),
		"value": NewValueBuilder(),
	}
}

func TestUnbalancedWrites(t *testing.T) {
	name := func(n string) func(Writer) error {
		return func(w Writer) error { return w.WritePropertyName(n) }
	}
	value := func(v any) func(Writer) error {
		return func(w Writer) error { return w.WriteValue(v) }
	}
	tests := []struct {
		name  string
		steps []func(Writer) error
	}{
		{"end object without start", []func(Writer) error{Writer.EndObject}},
		{"end array without start", []func(Writer) error{Writer.EndArray}},
		{"mismatched end", []func(Writer) error{Writer.StartObject, Writer.EndArray}},
		{"name at root", []func(Writer) error{name("a")}},
		{"name in array", []func(Writer) error{Writer.StartArray, name("a")}},
		{"two names", []func(Writer) error{Writer.StartObject, name("a"), name("b")}},
		{"value without name", []func(Writer) error{Writer.StartObject, value("x")}},
		{"object without name", []func(Writer) error{Writer.StartObject, Writer.StartObject}},
		{"second root value", []func(Writer) error{value(1), value(2)}},
		{"second root object", []func(Writer) error{Writer.StartObject, Writer.EndObject, Writer.StartArray}},
		{"close with pending name", []func(Writer) error{Writer.StartObject, name("a"), Writer.EndObject}},
		{"flush with open scope", []func(Writer) error{Writer.StartObject, Writer.Flush}},
	}
	for _, tt := range tests {
		for kind, w := range newWriters() {
			t.Run(tt.name+"/"+kind, func(t *testing.T) {
				last := len(tt.steps) - 1
				for _, step := range tt.steps[:last] {
					require.NoError(t, step(w))
				}
				err := tt.steps[last](w)
				require.Error(t, err)
				assert.True(t, errors.Is(err, oaserrors.ErrUnbalancedWrite))
				var unbalanced *oaserrors.UnbalancedWriteError
				require.True(t, errors.As(err, &unbalanced))
				assert.NotEmpty(t, unbalanced.Op)

				// Errors are sticky.
				assert.Equal(t, err, w.WriteNull())
				assert.Equal(t, err, w.Flush())
			})
		}
	}
}

func TestScopeBalance(t *testing.T) {
	doc := parser.NewOrderedMap[any]()
	doc.Set("empty object", parser.NewOrderedMap[any]())
	doc.Set("empty array", []any{})
	nested := parser.NewOrderedMap[any]()
	nested.Set("deep", []any{[]any{[]any{}}, parser.NewOrderedMap[any](), "x", nil, true})
	doc.Set("nested", nested)
	doc.Set("list", []any{int64(1), 2.5, []any{"a", "b"}})

	var pretty, terse bytes.Buffer
	pw, tw := NewJSONWriter(&pretty, false), NewJSONWriter(&terse, true)
	require.NoError(t, WriteAny(pw, doc))
	require.NoError(t, pw.Flush())
	require.NoError(t, WriteAny(tw, doc))
	require.NoError(t, tw.Flush())

	assert.True(t, json.Valid(pretty.Bytes()), pretty.String())
	assert.True(t, json.Valid(terse.Bytes()), terse.String())
	assert.NotContains(t, terse.String(), "\n")
	assert.True(t, jsonpatch.Equal(pretty.Bytes(), terse.Bytes()))
	assert.Equal(t, bytes.Count(pretty.Bytes(), []byte("{")), bytes.Count(pretty.Bytes(), []byte("}")))
	assert.Equal(t, bytes.Count(pretty.Bytes(), []byte("[")), bytes.Count(pretty.Bytes(), []byte("]")))
	assert.NotContains(t, pretty.String(), ",,")
	assert.NotContains(t, pretty.String(), "{\n}")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "JSON": FormatJSON, "yaml": FormatYAML, "yml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	_, err = New(&bytes.Buffer{}, Format("toml"), false)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	w, err := New(&bytes.Buffer{}, FormatYAML, true)
	require.NoError(t, err)
	assert.IsType(t, &JSONWriter{}, w)
}
