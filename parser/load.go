package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/oasdoc/internal/issues"
	"github.com/erraggy/oasdoc/internal/pathutil"
	"github.com/erraggy/oasdoc/internal/severity"
	"github.com/erraggy/oasdoc/oaserrors"
	"github.com/erraggy/oasdoc/parsenode"
)

// Diagnostic is a recoverable problem recorded while loading a document.
type Diagnostic = issues.Issue

// Severity levels used by diagnostics.
type Severity = severity.Severity

// Severity constants re-exported for callers of this package.
const (
	SeverityError    = severity.SeverityError
	SeverityWarning  = severity.SeverityWarning
	SeverityInfo     = severity.SeverityInfo
	SeverityCritical = severity.SeverityCritical
)

// UnknownFieldPolicy controls what happens to fields no table entry matches.
type UnknownFieldPolicy int

const (
	// UnknownFieldsIgnore drops unknown fields silently.
	UnknownFieldsIgnore UnknownFieldPolicy = iota
	// UnknownFieldsCollect records a warning diagnostic per unknown field.
	UnknownFieldsCollect
)

// RefSiblingPolicy controls fields written next to a $ref.
type RefSiblingPolicy int

const (
	// RefSiblingsIgnore drops sibling fields of a reference.
	RefSiblingsIgnore RefSiblingPolicy = iota
	// RefSiblingsDiagnose drops sibling fields and records a warning for each.
	RefSiblingsDiagnose
	// RefSiblingsError fails the entity with a StructuralError.
	RefSiblingsError
)

// loadContext carries the state of one tree walk: the registry entities are
// recorded in, the active tables, the pointer of the current node, and the
// diagnostics collected so far.
type loadContext struct {
	reg    *registry
	tables *tableSet
	path   *pathutil.PathBuilder
	diags  []Diagnostic
	added  []string
}

// loadEntity is the uniform deserializer behind every entity kind.
func loadEntity[T any](c *loadContext, n parsenode.Node, t *fieldTable[T]) (*T, error) {
	if !n.IsMapping() {
		return nil, c.structural(n, t.kind, "")
	}

	// A lazy load may cover nodes loaded earlier; keep their identity.
	pointer := c.path.String()
	if prev, ok := c.reg.lookup(pointer); ok {
		if e, ok := prev.(*T); ok {
			return e, nil
		}
	}

	if t.setRef != nil {
		if refNode, ok := n.Get("$ref"); ok {
			ref, err := c.reference(n, refNode, t.refObject)
			if err != nil {
				return nil, err
			}
			e := new(T)
			t.setRef(e, ref)
			c.registerAt(pointer, e)
			return e, nil
		}
	}

	e := new(T)
	c.registerAt(pointer, e)
	for name, child := range n.Entries() {
		c.path.Push(name)
		matched, err := t.dispatch(c, name, child, e)
		if err == nil && !matched {
			c.unknownField(t.kind, name, child)
		}
		c.path.Pop()
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

// reference builds the placeholder for a node holding $ref and applies the
// sibling policy to its other fields.
func (c *loadContext) reference(n, refNode parsenode.Node, refObject bool) (*Reference, error) {
	c.path.Push("$ref")
	raw, err := c.str(refNode)
	c.path.Pop()
	if err != nil {
		return nil, err
	}
	ref, err := ParsePointer(raw)
	if err != nil {
		var refErr *oaserrors.ReferenceError
		if errors.As(err, &refErr) {
			refErr.Path = c.path.String()
		}
		return nil, err
	}
	ref.host = c.reg
	ref.Path = c.path.String()

	refObject = refObject && c.tables.version >= SpecVersion31
	for name, child := range n.Entries() {
		switch {
		case name == "$ref":
			continue
		case refObject && name == "summary":
			ref.Summary, _ = child.Scalar()
			continue
		case refObject && name == "description":
			ref.Description, _ = child.Scalar()
			continue
		}
		switch c.reg.cfg.refSiblings {
		case RefSiblingsDiagnose:
			c.path.Push(name)
			c.warn(child, name, fmt.Sprintf("field %q next to $ref is ignored", name), nil)
			c.path.Pop()
		case RefSiblingsError:
			return nil, &oaserrors.StructuralError{
				Path:     c.path.String(),
				Line:     child.Line(),
				Column:   child.Column(),
				Expected: "a reference without sibling fields",
				Message:  fmt.Sprintf("field %q next to $ref %q", name, raw),
			}
		}
	}
	return ref, nil
}

// register records e in the arena under the current pointer.
func (c *loadContext) register(e any) {
	c.registerAt(c.path.String(), e)
}

// registerAt records e under pointer and remembers the pointer so a failed
// lazy load can take it back out of the arena.
func (c *loadContext) registerAt(pointer string, e any) {
	if c.reg.register(pointer, e) {
		c.added = append(c.added, pointer)
	}
}

func (c *loadContext) structural(n parsenode.Node, expected, msg string) error {
	return &oaserrors.StructuralError{
		Path:     c.path.String(),
		Line:     n.Line(),
		Column:   n.Column(),
		Expected: expected,
		Actual:   n.Kind().String(),
		Message:  msg,
	}
}

// expect fails with a StructuralError unless n has kind k.
func (c *loadContext) expect(n parsenode.Node, k parsenode.Kind, expected string) error {
	if n.Kind() != k {
		return c.structural(n, expected, "")
	}
	return nil
}

func (c *loadContext) diagnose(n parsenode.Node, sev Severity, field, msg string, value any, err error) {
	c.diags = append(c.diags, Diagnostic{
		Path:     c.path.String(),
		Message:  msg,
		Severity: sev,
		Field:    field,
		Value:    value,
		Line:     n.Line(),
		Column:   n.Column(),
		File:     c.reg.location,
		Err:      err,
	})
}

func (c *loadContext) warn(n parsenode.Node, field, msg string, err error) {
	c.diagnose(n, SeverityWarning, field, msg, nil, err)
}

func (c *loadContext) unknownField(kind, name string, n parsenode.Node) {
	if c.reg.cfg.unknownFields != UnknownFieldsCollect {
		return
	}
	c.warn(n, name, fmt.Sprintf("unknown field %q in %s", name, kind), nil)
}

// malformed records a scalar that could not be coerced. Loading continues.
func (c *loadContext) malformed(n parsenode.Node, text, typ string, cause error) {
	err := &oaserrors.MalformedScalarError{
		Path:   c.path.String(),
		Line:   n.Line(),
		Column: n.Column(),
		Value:  text,
		Type:   typ,
		Cause:  cause,
	}
	c.diagnose(n, SeverityWarning, "", err.Error(), text, err)
}

// scalar returns a scalar's text; null yields ok=false. Collections are a
// StructuralError.
func (c *loadContext) scalar(n parsenode.Node) (string, bool, error) {
	text, ok := n.Scalar()
	if !ok {
		return "", false, c.structural(n, "scalar", "")
	}
	if n.IsNull() {
		return "", false, nil
	}
	return text, true, nil
}

func (c *loadContext) str(n parsenode.Node) (string, error) {
	text, _, err := c.scalar(n)
	return text, err
}

func (c *loadContext) boolean(n parsenode.Node) (*bool, error) {
	text, ok, err := c.scalar(n)
	if err != nil || !ok {
		return nil, err
	}
	switch strings.ToLower(text) {
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	}
	c.malformed(n, text, "boolean", nil)
	return nil, nil
}

// float parses a decimal. Literals beyond float64 range clamp to
// ±math.MaxFloat64 instead of failing the document.
func (c *loadContext) float(n parsenode.Node) (*float64, error) {
	text, ok, err := c.scalar(n)
	if err != nil || !ok {
		return nil, err
	}
	v, err := strconv.ParseFloat(text, 64)
	switch {
	case err == nil && !math.IsNaN(v) && !math.IsInf(v, 0):
	case errors.Is(err, strconv.ErrRange) || (err == nil && math.IsInf(v, 0)):
		v = math.Copysign(math.MaxFloat64, v)
		c.diagnose(n, SeverityInfo, "", fmt.Sprintf("%s is out of range, clamped to %g", text, v), text, nil)
	default:
		c.malformed(n, text, "number", err)
		return nil, nil
	}
	return &v, nil
}

// integer parses a whole number, accepting integral decimals such as "10.0".
// Values beyond the int range clamp to math.MaxInt / math.MinInt.
func (c *loadContext) integer(n parsenode.Node) (*int, error) {
	text, ok, err := c.scalar(n)
	if err != nil || !ok {
		return nil, err
	}
	i64, err := parsenode.ParseInt(text)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil || f != math.Trunc(f) || math.IsNaN(f) {
			c.malformed(n, text, "integer", err)
			return nil, nil
		}
		switch {
		case f >= math.MaxInt64:
			i64, err = math.MaxInt64, strconv.ErrRange
		case f <= math.MinInt64:
			i64, err = math.MinInt64, strconv.ErrRange
		default:
			i64, err = int64(f), nil
		}
	}
	v := clampInt(i64)
	if err != nil || int64(v) != i64 {
		c.diagnose(n, SeverityInfo, "", fmt.Sprintf("%s is out of range, clamped to %d", text, v), text, nil)
	}
	return &v, nil
}

// clampInt narrows to int on platforms where int is 32 bits.
func clampInt(v int64) int {
	switch {
	case v > math.MaxInt:
		return math.MaxInt
	case v < math.MinInt:
		return math.MinInt
	default:
		return int(v)
	}
}

func (c *loadContext) stringList(n parsenode.Node) ([]string, error) {
	if err := c.expect(n, parsenode.KindSequence, "list of strings"); err != nil {
		return nil, err
	}
	list := make([]string, 0, n.Len())
	for i, item := range n.Items() {
		c.path.PushIndex(i)
		s, err := c.str(item)
		c.path.Pop()
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}

// anyValue converts an extension or free-form node; see NodeValue.
func (c *loadContext) anyValue(n parsenode.Node) any { return NodeValue(n) }

// NodeValue converts a node into an untyped value preserving its shape:
// nil, bool, int64, float64, string, []any or *OrderedMap[any].
func NodeValue(n parsenode.Node) any {
	switch n.Kind() {
	case parsenode.KindMapping:
		m := NewOrderedMap[any]()
		for k, v := range n.Entries() {
			m.Set(k, NodeValue(v))
		}
		return m
	case parsenode.KindSequence:
		list := make([]any, 0, n.Len())
		for _, item := range n.Items() {
			list = append(list, NodeValue(item))
		}
		return list
	default:
		v, _ := n.ScalarValue()
		return v
	}
}
