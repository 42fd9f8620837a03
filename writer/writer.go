package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/oasdoc/oaserrors"
)

// Writer is a sink for structured output driven by nesting calls. Every
// call returns an error; once a call fails, later calls return the same
// error without writing anything.
//
// A well-formed session writes exactly one root value: a scalar, or an
// object or array whose Start and End calls nest. Flush completes the
// session and fails while scopes are open.
type Writer interface {
	StartObject() error
	EndObject() error
	StartArray() error
	EndArray() error
	WritePropertyName(name string) error
	// WriteValue writes a scalar: a string, bool, integer or float.
	WriteValue(v any) error
	WriteNull() error
	// WriteRaw writes pre-encoded text in a value position.
	WriteRaw(raw string) error
	Flush() error
}

// Format selects the text syntax of a stream writer.
type Format string

const (
	// FormatJSON writes JSON.
	FormatJSON Format = "json"
	// FormatYAML writes block-style YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses "json", "yaml" or "yml", ignoring case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", &oaserrors.ConfigError{Option: "format", Value: s, Message: "must be json or yaml"}
}

// Settings controls how a document is written.
type Settings struct {
	// Terse produces compact single-line output. Terse YAML is written as
	// flow-style JSON, which every YAML reader accepts.
	Terse bool
	// InlineLocalReferences replaces references into the same document
	// with the body of their target.
	InlineLocalReferences bool
	// InlineExternalReferences replaces references into other documents
	// with the body of their target.
	InlineExternalReferences bool
}

// New returns the stream writer for format.
func New(w io.Writer, format Format, terse bool) (Writer, error) {
	switch format {
	case FormatJSON:
		return NewJSONWriter(w, terse), nil
	case FormatYAML:
		if terse {
			return NewJSONWriter(w, true), nil
		}
		return NewYAMLWriter(w), nil
	}
	return nil, &oaserrors.ConfigError{Option: "format", Value: string(format), Message: "must be json or yaml"}
}

type scopeKind int

const (
	objectScope scopeKind = iota
	arrayScope
)

func (k scopeKind) String() string {
	if k == arrayScope {
		return "array"
	}
	return "object"
}

// scope is one open object or array.
type scope struct {
	kind scopeKind
	// count is the number of members or elements written so far.
	count int
	// inArray is set when the scope is itself an array element.
	inArray bool
	// pendingName is set between a property name and its value.
	pendingName bool
}

// position describes where a value is about to be written.
type position struct {
	// parent is the enclosing scope, nil at the root.
	parent *scope
	// first is true for the first element of an array.
	first bool
}

func (p position) inArray() bool { return p.parent != nil && p.parent.kind == arrayScope }

// scopes is the nesting state machine shared by every writer. It rejects
// call sequences that would produce malformed output.
type scopes struct {
	stack []*scope
	root  bool
}

func (s *scopes) depth() int { return len(s.stack) }

func (s *scopes) top() *scope {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

func (s *scopes) fail(op, msg string) error {
	return &oaserrors.UnbalancedWriteError{Op: op, Depth: len(s.stack), Message: msg}
}

// value claims a value position for op.
func (s *scopes) value(op string) (position, error) {
	top := s.top()
	if top == nil {
		if s.root {
			return position{}, s.fail(op, "a second root value")
		}
		s.root = true
		return position{}, nil
	}
	if top.kind == objectScope {
		if !top.pendingName {
			return position{}, s.fail(op, "value in an object without a property name")
		}
		top.pendingName = false
		return position{parent: top}, nil
	}
	top.count++
	return position{parent: top, first: top.count == 1}, nil
}

// start claims a value position and opens a scope of kind k.
func (s *scopes) start(op string, k scopeKind) (position, error) {
	pos, err := s.value(op)
	if err != nil {
		return pos, err
	}
	s.stack = append(s.stack, &scope{kind: k, inArray: pos.inArray()})
	return pos, nil
}

// name records a property name and reports whether it is the first member.
func (s *scopes) name(op string) (first bool, err error) {
	top := s.top()
	switch {
	case top == nil || top.kind != objectScope:
		return false, s.fail(op, "property name outside an object")
	case top.pendingName:
		return false, s.fail(op, "two property names in a row")
	}
	top.pendingName = true
	top.count++
	return top.count == 1, nil
}

// end closes the innermost scope, which must be of kind k.
func (s *scopes) end(op string, k scopeKind) (*scope, error) {
	top := s.top()
	switch {
	case top == nil:
		return nil, s.fail(op, "no open scope")
	case top.kind != k:
		return nil, s.fail(op, fmt.Sprintf("innermost scope is an %s", top.kind))
	case top.pendingName:
		return nil, s.fail(op, "property name without a value")
	}
	s.stack = s.stack[:len(s.stack)-1]
	return top, nil
}

// complete fails unless every scope has been closed.
func (s *scopes) complete(op string) error {
	if len(s.stack) > 0 {
		return s.fail(op, fmt.Sprintf("%d scope(s) still open", len(s.stack)))
	}
	return nil
}
