package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap(t *testing.T) {
	m := NewOrderedMap[int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("b", 4)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	assert.True(t, m.Has("c"))

	m.Delete("a")
	m.Delete("missing")
	assert.Equal(t, []string{"b", "c"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	var values []int
	for v := range m.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []int{4, 3}, values)

	for k := range m.All() {
		assert.Equal(t, "b", k)
		break
	}
}

func TestOrderedMapNil(t *testing.T) {
	var m *OrderedMap[string]
	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Zero(t, m.Len())
	assert.Nil(t, m.Keys())
	m.Delete("a")
	for range m.All() {
		t.Fatal("nil map yielded an entry")
	}

	var zero OrderedMap[string]
	zero.Set("k", "v")
	assert.Equal(t, []string{"k"}, zero.Keys())
}

func TestExtensible(t *testing.T) {
	var e Extensible
	_, ok := e.Extension("x-a")
	assert.False(t, ok)

	e.AddExtension("x-a", int64(1))
	v, ok := e.Extension("x-a")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	assert.True(t, IsExtension("x-internal"))
	assert.False(t, IsExtension("X-upper"))
	assert.False(t, IsExtension("summary"))
}
