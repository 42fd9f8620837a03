package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder provides efficient incremental JSON pointer construction.
// Uses push/pop semantics to avoid allocations during traversal.
// Segments are stored escaped; the full "#/a/b" string is only
// materialized when String() is called.
type PathBuilder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// Push adds a raw (unescaped) segment to the path.
func (p *PathBuilder) Push(segment string) {
	seg := EscapeSegment(segment)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1 // For slash separator
}

// PushIndex adds a sequence index segment.
func (p *PathBuilder) PushIndex(i int) {
	seg := strconv.Itoa(i)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last) + 1
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// Depth returns the number of segments.
func (p *PathBuilder) Depth() int { return len(p.segments) }

// Set replaces the builder's content with the given raw segments.
func (p *PathBuilder) Set(segments []string) {
	p.Reset()
	for _, s := range segments {
		p.Push(s)
	}
}

// String materializes the path as a URI fragment pointer: "#" for the
// document root, "#/components/schemas/Pet" otherwise.
func (p *PathBuilder) String() string {
	var b strings.Builder
	b.Grow(p.length + 1)
	b.WriteByte('#')
	for _, seg := range p.segments {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}
