package parsenode

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ScalarValue converts a scalar to its natural Go value based on its resolved
// tag: nil, bool, int64, float64 or string. An integer literal too large for
// int64 becomes a float64. YAML's non-finite floats (.inf, .nan) are returned
// as their source text since neither JSON nor the model can carry them.
func (n Node) ScalarValue() (any, bool) {
	text, ok := n.Scalar()
	if !ok {
		return nil, false
	}
	switch n.Tag() {
	case TagNull:
		return nil, true
	case TagBool:
		return strings.EqualFold(text, "true"), true
	case TagInt:
		if v, err := ParseInt(text); err == nil {
			return v, true
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f, true
		}
		return text, true
	case TagFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return text, true
		}
		return f, true
	default:
		return text, true
	}
}

// ParseInt parses a YAML integer literal. Decimal is tried first so that
// "012" stays twelve; prefixed forms (0x, 0o, 0b) follow Go's rules.
func ParseInt(text string) (int64, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return v, err
	}
	return strconv.ParseInt(text, 0, 64)
}
