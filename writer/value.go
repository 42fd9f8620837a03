package writer

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/erraggy/oasdoc/parsenode"
	"github.com/erraggy/oasdoc/parser"
)

// ValueBuilder is a Writer that builds an in-memory value instead of text:
// objects become *parser.OrderedMap[any] and arrays []any, the same shapes
// the parser uses for extensions.
type ValueBuilder struct {
	scopes scopes
	frames []valueFrame
	root   any
	err    error
}

type valueFrame struct {
	object *parser.OrderedMap[any]
	array  []any
	key    string
}

// NewValueBuilder returns an empty ValueBuilder.
func NewValueBuilder() *ValueBuilder {
	return &ValueBuilder{}
}

func (b *ValueBuilder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	return b.err
}

// place attaches a finished value to the innermost open collection.
func (b *ValueBuilder) place(v any) {
	if len(b.frames) == 0 {
		b.root = v
		return
	}
	f := &b.frames[len(b.frames)-1]
	if f.object != nil {
		f.object.Set(f.key, v)
		return
	}
	f.array = append(f.array, v)
}

// StartObject opens an object.
func (b *ValueBuilder) StartObject() error {
	if b.err != nil {
		return b.err
	}
	if _, err := b.scopes.start("StartObject", objectScope); err != nil {
		return b.fail(err)
	}
	b.frames = append(b.frames, valueFrame{object: parser.NewOrderedMap[any]()})
	return nil
}

// StartArray opens an array.
func (b *ValueBuilder) StartArray() error {
	if b.err != nil {
		return b.err
	}
	if _, err := b.scopes.start("StartArray", arrayScope); err != nil {
		return b.fail(err)
	}
	b.frames = append(b.frames, valueFrame{array: []any{}})
	return nil
}

// EndObject closes the innermost object.
func (b *ValueBuilder) EndObject() error { return b.end("EndObject", objectScope) }

// EndArray closes the innermost array.
func (b *ValueBuilder) EndArray() error { return b.end("EndArray", arrayScope) }

func (b *ValueBuilder) end(op string, k scopeKind) error {
	if b.err != nil {
		return b.err
	}
	if _, err := b.scopes.end(op, k); err != nil {
		return b.fail(err)
	}
	f := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]
	if f.object != nil {
		b.place(f.object)
	} else {
		b.place(f.array)
	}
	return nil
}

// WritePropertyName records the key of the next member.
func (b *ValueBuilder) WritePropertyName(name string) error {
	if b.err != nil {
		return b.err
	}
	if _, err := b.scopes.name("WritePropertyName"); err != nil {
		return b.fail(err)
	}
	b.frames[len(b.frames)-1].key = name
	return nil
}

// WriteValue stores a scalar. Integers are widened to int64 and floats to
// float64.
func (b *ValueBuilder) WriteValue(v any) error {
	if b.err != nil {
		return b.err
	}
	norm, err := normalizeScalar(v)
	if err != nil {
		return b.fail(err)
	}
	if _, err := b.scopes.value("WriteValue"); err != nil {
		return b.fail(err)
	}
	b.place(norm)
	return nil
}

// WriteNull stores nil.
func (b *ValueBuilder) WriteNull() error {
	if b.err != nil {
		return b.err
	}
	if _, err := b.scopes.value("WriteNull"); err != nil {
		return b.fail(err)
	}
	b.place(nil)
	return nil
}

// WriteRaw parses raw as JSON or YAML and stores the result.
func (b *ValueBuilder) WriteRaw(raw string) error {
	if b.err != nil {
		return b.err
	}
	n, err := parsenode.Parse([]byte(raw))
	if err != nil {
		return b.fail(fmt.Errorf("writer: raw value: %w", err))
	}
	if _, err := b.scopes.value("WriteRaw"); err != nil {
		return b.fail(err)
	}
	b.place(parser.NodeValue(n))
	return nil
}

// Flush fails unless a complete value has been written.
func (b *ValueBuilder) Flush() error {
	if b.err != nil {
		return b.err
	}
	return b.fail(b.scopes.complete("Flush"))
}

// Value returns the built value.
func (b *ValueBuilder) Value() (any, error) {
	if err := b.Flush(); err != nil {
		return nil, err
	}
	if !b.scopes.root {
		return nil, errors.New("writer: no value written")
	}
	return b.root, nil
}

func normalizeScalar(v any) (any, error) {
	switch x := v.(type) {
	case nil, string, bool, int64, float64:
		return v, nil
	case float32:
		return float64(x), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("writer: %d overflows int64", u)
		}
		return int64(u), nil
	}
	return nil, fmt.Errorf("writer: unsupported scalar type %T", v)
}

// WriteAny writes an untyped value: a scalar, []any, []string,
// *parser.OrderedMap[any] or map[string]any. Plain maps are written with
// their keys sorted.
func WriteAny(w Writer, v any) error {
	switch x := v.(type) {
	case nil:
		return w.WriteNull()
	case *parser.OrderedMap[any]:
		if x == nil {
			return w.WriteNull()
		}
		if err := w.StartObject(); err != nil {
			return err
		}
		for k, item := range x.All() {
			if err := w.WritePropertyName(k); err != nil {
				return err
			}
			if err := WriteAny(w, item); err != nil {
				return err
			}
		}
		return w.EndObject()
	case map[string]any:
		if err := w.StartObject(); err != nil {
			return err
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if err := w.WritePropertyName(k); err != nil {
				return err
			}
			if err := WriteAny(w, x[k]); err != nil {
				return err
			}
		}
		return w.EndObject()
	case []any:
		if err := w.StartArray(); err != nil {
			return err
		}
		for _, item := range x {
			if err := WriteAny(w, item); err != nil {
				return err
			}
		}
		return w.EndArray()
	case []string:
		return writeStrings(w, x)
	default:
		return w.WriteValue(v)
	}
}

func writeStrings(w Writer, list []string) error {
	if err := w.StartArray(); err != nil {
		return err
	}
	for _, s := range list {
		if err := w.WriteValue(s); err != nil {
			return err
		}
	}
	return w.EndArray()
}
