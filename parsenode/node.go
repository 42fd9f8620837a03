// Package parsenode provides a read-only view over a parsed YAML or JSON
// document.
//
// A [Node] is one of three kinds: a scalar, a mapping with ordered string
// keys, or a sequence. JSON is parsed as YAML 1.2 flow syntax, so one tree
// shape serves both formats. Aliases are followed transparently and the
// document wrapper is skipped, so callers only ever see the three kinds.
//
// Nodes keep the line and column of their source position for diagnostics.
package parsenode

import (
	"fmt"
	"iter"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdoc/oaserrors"
)

// Kind identifies the shape of a Node.
type Kind int

const (
	// KindInvalid is the kind of the zero Node.
	KindInvalid Kind = iota
	// KindScalar is a leaf value: string, number, boolean or null.
	KindScalar
	// KindMapping is an ordered set of key/value pairs.
	KindMapping
	// KindSequence is an ordered list of nodes.
	KindSequence
)

// String returns the lower-case name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "invalid"
	}
}

// Tags reported by Node.Tag for scalars.
const (
	TagNull   = "!!null"
	TagBool   = "!!bool"
	TagInt    = "!!int"
	TagFloat  = "!!float"
	TagString = "!!str"
)

// maxAliasDepth bounds alias chains so a self-referencing alias cannot loop.
const maxAliasDepth = 64

// Node is an immutable view of one node in a parsed document.
// The zero value is an invalid node; use IsValid to detect it.
type Node struct {
	n *yaml.Node
}

// Parse parses YAML or JSON source into its root node.
// An empty document yields a null scalar.
func Parse(data []byte) (Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Node{}, &oaserrors.ParseError{Message: "invalid YAML or JSON", Cause: err}
	}
	if root.Kind == 0 {
		return Node{n: &yaml.Node{Kind: yaml.ScalarNode, Tag: TagNull, Value: "", Line: 1, Column: 1}}, nil
	}
	return FromYAML(&root), nil
}

// FromYAML wraps an existing yaml.Node, unwrapping document and alias nodes.
func FromYAML(n *yaml.Node) Node {
	for depth := 0; n != nil && depth < maxAliasDepth; depth++ {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return Node{n: &yaml.Node{Kind: yaml.ScalarNode, Tag: TagNull, Line: n.Line, Column: n.Column}}
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		default:
			return Node{n: n}
		}
	}
	return Node{}
}

// YAML returns the underlying yaml.Node.
func (n Node) YAML() *yaml.Node { return n.n }

// IsValid reports whether n refers to a node.
func (n Node) IsValid() bool { return n.n != nil }

// Kind returns the node's shape.
func (n Node) Kind() Kind {
	if n.n == nil {
		return KindInvalid
	}
	switch n.n.Kind {
	case yaml.ScalarNode:
		return KindScalar
	case yaml.MappingNode:
		return KindMapping
	case yaml.SequenceNode:
		return KindSequence
	default:
		return KindInvalid
	}
}

// IsScalar reports whether n is a scalar.
func (n Node) IsScalar() bool { return n.Kind() == KindScalar }

// IsMapping reports whether n is a mapping.
func (n Node) IsMapping() bool { return n.Kind() == KindMapping }

// IsSequence reports whether n is a sequence.
func (n Node) IsSequence() bool { return n.Kind() == KindSequence }

// IsNull reports whether n is a null scalar ("null", "~" or empty).
func (n Node) IsNull() bool { return n.IsScalar() && n.Tag() == TagNull }

// Scalar returns the text of a scalar node. ok is false for mappings and
// sequences.
func (n Node) Scalar() (text string, ok bool) {
	if !n.IsScalar() {
		return "", false
	}
	return n.n.Value, true
}

// Tag returns the resolved short tag of the node, e.g. "!!str" or "!!int".
func (n Node) Tag() string {
	if n.n == nil {
		return ""
	}
	return n.n.ShortTag()
}

// Line returns the 1-based source line, or 0 when unknown.
func (n Node) Line() int {
	if n.n == nil {
		return 0
	}
	return n.n.Line
}

// Column returns the 1-based source column, or 0 when unknown.
func (n Node) Column() int {
	if n.n == nil {
		return 0
	}
	return n.n.Column
}

// Len returns the number of entries of a mapping or items of a sequence.
func (n Node) Len() int {
	switch n.Kind() {
	case KindMapping:
		return len(n.n.Content) / 2
	case KindSequence:
		return len(n.n.Content)
	default:
		return 0
	}
}

// Entries iterates the key/value pairs of a mapping in source order.
// It yields nothing for other kinds. Non-scalar keys are skipped.
func (n Node) Entries() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if !n.IsMapping() {
			return
		}
		content := n.n.Content
		for i := 0; i+1 < len(content); i += 2 {
			key := FromYAML(content[i])
			text, ok := key.Scalar()
			if !ok {
				continue
			}
			if !yield(text, FromYAML(content[i+1])) {
				return
			}
		}
	}
}

// Items iterates the items of a sequence in order.
// It yields nothing for other kinds.
func (n Node) Items() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		if !n.IsSequence() {
			return
		}
		for i, item := range n.n.Content {
			if !yield(i, FromYAML(item)) {
				return
			}
		}
	}
}

// Get returns the value for key in a mapping.
// When a key repeats, the last occurrence wins, matching YAML decoders.
func (n Node) Get(key string) (Node, bool) {
	var (
		found Node
		ok    bool
	)
	for k, v := range n.Entries() {
		if k == key {
			found, ok = v, true
		}
	}
	return found, ok
}

// Index returns the i-th item of a sequence.
func (n Node) Index(i int) (Node, bool) {
	if !n.IsSequence() || i < 0 || i >= len(n.n.Content) {
		return Node{}, false
	}
	return FromYAML(n.n.Content[i]), true
}

// Lookup walks unescaped JSON pointer segments from n. Mapping segments match
// keys; sequence segments must be decimal indexes. On failure it returns the
// position of the first segment that could not be followed.
func (n Node) Lookup(segments []string) (Node, error) {
	cur := n
	for i, seg := range segments {
		switch cur.Kind() {
		case KindMapping:
			next, ok := cur.Get(seg)
			if !ok {
				return Node{}, &LookupError{Index: i, Segment: seg, Reason: "key not found"}
			}
			cur = next
		case KindSequence:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return Node{}, &LookupError{Index: i, Segment: seg, Reason: "sequence index is not a number"}
			}
			next, ok := cur.Index(idx)
			if !ok {
				return Node{}, &LookupError{Index: i, Segment: seg, Reason: "sequence index out of range"}
			}
			cur = next
		default:
			return Node{}, &LookupError{Index: i, Segment: seg, Reason: "cannot descend into a " + cur.Kind().String()}
		}
	}
	return cur, nil
}

// LookupError reports which pointer segment could not be followed.
type LookupError struct {
	Index   int
	Segment string
	Reason  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("segment %d (%q): %s", e.Index, e.Segment, e.Reason)
}
