package parser

import (
	"iter"
	"strings"
)

// OrderedMap is a string-keyed map that remembers insertion order.
// The model uses it wherever the source document is a mapping, so that
// writing a parsed document back out preserves the original key order.
//
// A nil *OrderedMap behaves as an empty map for reads.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap returns an empty map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{values: make(map[string]V)}
}

// Set stores value under key. A new key is appended to the order; an
// existing key keeps its position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key, preserving the order of the remaining keys.
func (m *OrderedMap[V]) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates entries in insertion order.
func (m *OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Values iterates values in insertion order.
func (m *OrderedMap[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Extensible carries the specification extensions of an entity: the fields
// whose names start with "x-". Values keep their source shape: nil, bool,
// int64, float64, string, []any or *OrderedMap[any].
type Extensible struct {
	Extensions *OrderedMap[any]
}

// AddExtension records an extension field, creating the map on first use.
func (e *Extensible) AddExtension(name string, value any) {
	if e.Extensions == nil {
		e.Extensions = NewOrderedMap[any]()
	}
	e.Extensions.Set(name, value)
}

// Extension returns the value of an extension field.
func (e *Extensible) Extension(name string) (any, bool) {
	return e.Extensions.Get(name)
}

// IsExtension reports whether a field name is a specification extension.
func IsExtension(name string) bool {
	return strings.HasPrefix(name, "x-")
}
