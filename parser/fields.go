package parser

import (
	"maps"

	"github.com/erraggy/oasdoc/internal/httputil"
	"github.com/erraggy/oasdoc/parsenode"
)

// fieldFunc reads one field's node into the entity under construction.
// Recoverable problems are recorded on the context; a returned error aborts
// the entity.
type fieldFunc[T any] func(c *loadContext, n parsenode.Node, e *T) error

// patternField handles fields matched by a naming rule rather than an exact name.
type patternField[T any] struct {
	match func(name string) bool
	load  func(c *loadContext, name string, n parsenode.Node, e *T) error
}

// fieldTable is the dispatch table for one entity kind in one spec version.
// Exact names take precedence; patterns are tried in declaration order.
type fieldTable[T any] struct {
	kind     string
	fixed    map[string]fieldFunc[T]
	patterns []patternField[T]
	// setRef is non-nil for kinds that may be replaced by a $ref.
	setRef func(e *T, r *Reference)
	// refObject marks kinds whose references carry summary/description (OAS 3.1+).
	refObject bool
}

// fields is a named set of exact-name handlers that tables are composed from.
type fields[T any] map[string]fieldFunc[T]

// newTable builds a table from field sets; later sets override earlier ones.
// Every table accepts "x-" extensions ahead of any other pattern, for every
// entity that embeds Extensible.
func newTable[T any, PT interface {
	*T
	AddExtension(string, any)
}](kind string, sets ...fields[T]) *fieldTable[T] {
	t := &fieldTable[T]{kind: kind, fixed: make(map[string]fieldFunc[T])}
	for _, s := range sets {
		maps.Copy(t.fixed, s)
	}
	t.patterns = append(t.patterns, patternField[T]{
		match: IsExtension,
		load: func(c *loadContext, name string, n parsenode.Node, e *T) error {
			PT(e).AddExtension(name, c.anyValue(n))
			return nil
		},
	})
	return t
}

// without drops fields that a later version removed.
func (t *fieldTable[T]) without(names ...string) *fieldTable[T] {
	for _, name := range names {
		delete(t.fixed, name)
	}
	return t
}

// pattern appends pattern handlers after the extension handler.
func (t *fieldTable[T]) pattern(p ...patternField[T]) *fieldTable[T] {
	t.patterns = append(t.patterns, p...)
	return t
}

// referenceable marks the kind as replaceable by a $ref.
func (t *fieldTable[T]) referenceable(set func(e *T, r *Reference), refObject bool) *fieldTable[T] {
	t.setRef = set
	t.refObject = refObject
	return t
}

// dispatch routes one entry to its handler and reports whether any matched.
func (t *fieldTable[T]) dispatch(c *loadContext, name string, n parsenode.Node, e *T) (bool, error) {
	if f, ok := t.fixed[name]; ok {
		return true, f(c, n, e)
	}
	for _, p := range t.patterns {
		if p.match(name) {
			return true, p.load(c, name, n, e)
		}
	}
	return false, nil
}

// loaderFunc loads one entity kind from a node.
type loaderFunc[E any] func(c *loadContext, n parsenode.Node) (*E, error)

func stringField[T any](get func(*T) *string) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		v, err := c.str(n)
		if err != nil {
			return err
		}
		*get(e) = v
		return nil
	}
}

func boolField[T any](get func(*T) *bool) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		v, err := c.boolean(n)
		if err != nil || v == nil {
			return err
		}
		*get(e) = *v
		return nil
	}
}

func boolPtrField[T any](get func(*T) **bool) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		v, err := c.boolean(n)
		if err != nil {
			return err
		}
		*get(e) = v
		return nil
	}
}

func floatField[T any](get func(*T) **float64) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		v, err := c.float(n)
		if err != nil {
			return err
		}
		*get(e) = v
		return nil
	}
}

func intField[T any](get func(*T) **int) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		v, err := c.integer(n)
		if err != nil {
			return err
		}
		*get(e) = v
		return nil
	}
}

func anyField[T any](get func(*T) *any) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		*get(e) = c.anyValue(n)
		return nil
	}
}

func anyListField[T any](get func(*T) *[]any) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		if err := c.expect(n, parsenode.KindSequence, "list"); err != nil {
			return err
		}
		list := make([]any, 0, n.Len())
		for _, item := range n.Items() {
			list = append(list, c.anyValue(item))
		}
		*get(e) = list
		return nil
	}
}

func anyMapField[T any](get func(*T) **OrderedMap[any]) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		if err := c.expect(n, parsenode.KindMapping, "map"); err != nil {
			return err
		}
		m := NewOrderedMap[any]()
		for k, v := range n.Entries() {
			m.Set(k, c.anyValue(v))
		}
		*get(e) = m
		return nil
	}
}

func stringListField[T any](get func(*T) *[]string) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		v, err := c.stringList(n)
		if err != nil {
			return err
		}
		*get(e) = v
		return nil
	}
}

func stringMapField[T any](get func(*T) **OrderedMap[string]) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		if err := c.expect(n, parsenode.KindMapping, "map of strings"); err != nil {
			return err
		}
		m := NewOrderedMap[string]()
		for k, v := range n.Entries() {
			c.path.Push(k)
			s, err := c.str(v)
			c.path.Pop()
			if err != nil {
				return err
			}
			m.Set(k, s)
		}
		*get(e) = m
		return nil
	}
}

func entityField[T, E any](get func(*T) **E, load loaderFunc[E]) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		v, err := load(c, n)
		if err != nil {
			return err
		}
		*get(e) = v
		return nil
	}
}

func entityListField[T, E any](get func(*T) *[]*E, load loaderFunc[E]) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		v, err := loadList(c, n, load)
		if err != nil {
			return err
		}
		*get(e) = v
		return nil
	}
}

func entityMapField[T, E any](get func(*T) **OrderedMap[*E], load loaderFunc[E]) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		v, err := loadMap(c, n, load, nil)
		if err != nil {
			return err
		}
		*get(e) = v
		return nil
	}
}

func securityField[T any](get func(*T) *[]*SecurityRequirement) fieldFunc[T] {
	return func(c *loadContext, n parsenode.Node, e *T) error {
		v, err := loadList(c, n, loadSecurityRequirement)
		if err != nil {
			return err
		}
		*get(e) = v
		return nil
	}
}

// loadList loads every item of a sequence with load.
func loadList[E any](c *loadContext, n parsenode.Node, load loaderFunc[E]) ([]*E, error) {
	if err := c.expect(n, parsenode.KindSequence, "list"); err != nil {
		return nil, err
	}
	list := make([]*E, 0, n.Len())
	for i, item := range n.Items() {
		c.path.PushIndex(i)
		v, err := load(c, item)
		c.path.Pop()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// loadMap loads every value of a mapping with load. When skip is non-nil,
// keys it accepts are left for the caller (used for "x-" keys in maps that
// allow extensions next to their entries).
func loadMap[E any](c *loadContext, n parsenode.Node, load loaderFunc[E], skip func(string) bool) (*OrderedMap[*E], error) {
	if err := c.expect(n, parsenode.KindMapping, "map"); err != nil {
		return nil, err
	}
	m := NewOrderedMap[*E]()
	for k, v := range n.Entries() {
		if skip != nil && skip(k) {
			continue
		}
		c.path.Push(k)
		item, err := load(c, v)
		c.path.Pop()
		if err != nil {
			return nil, err
		}
		m.Set(k, item)
	}
	return m, nil
}

// isPathKey matches Paths entries.
func isPathKey(name string) bool { return len(name) > 0 && name[0] == '/' }

// isStatusCode matches Responses entries: "200", "2XX" and the like.
func isStatusCode(name string) bool {
	return httputil.IsStatusCode(name)
}

// isExpression matches any non-extension key, e.g. Callback runtime expressions.
func isExpression(name string) bool { return !IsExtension(name) }
