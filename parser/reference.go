package parser

import (
	"net/url"
	"strings"
	"sync"

	"github.com/erraggy/oasdoc/internal/pathutil"
	"github.com/erraggy/oasdoc/oaserrors"
)

// Reference is a lazy placeholder for an entity addressed by a $ref.
// It owns no entity data: it is a lookup key (optional external location
// plus pointer segments) and a back-pointer to the document the lookup runs
// against. The first successful or failed resolution is cached.
type Reference struct {
	// Raw is the $ref text exactly as written in the source
	Raw string
	// Location is the external document part before '#', "" for local refs
	Location string
	// Segments is the unescaped pointer path after '#'
	Segments []string
	// Summary and Description override the target's (OAS 3.1+ reference objects)
	Summary     string
	Description string

	// Path is the JSON pointer of the node that held the $ref
	Path string

	host *registry

	mu       sync.Mutex
	resolved bool
	target   any
	err      error
}

// IsExternal reports whether the reference points into another document.
func (r *Reference) IsExternal() bool { return r.Location != "" }

// Pointer returns the canonical escaped fragment, e.g. "#/definitions/Pet".
func (r *Reference) Pointer() string { return pathutil.JoinPointer(r.Segments) }

// RefType classifies the reference as "local", "file" or "http".
func (r *Reference) RefType() string {
	switch {
	case r.Location == "":
		return "local"
	case isURL(r.Location):
		return "http"
	default:
		return "file"
	}
}

// String returns the raw $ref text.
func (r *Reference) String() string { return r.Raw }

// NewReference builds an unbound reference, e.g. for constructing models in
// code. It resolves only after being attached to a document by parsing.
func NewReference(raw string) (*Reference, error) {
	return ParsePointer(raw)
}

// ParsePointer splits a $ref into its external location and pointer
// segments. The fragment must be empty or start with '/'. Segments are
// percent-decoded and then RFC 6901 unescaped.
func ParsePointer(raw string) (*Reference, error) {
	location, fragment, _ := strings.Cut(raw, "#")
	if raw == "" {
		return nil, &oaserrors.ReferenceError{Ref: raw, Message: "empty reference"}
	}
	ref := &Reference{Raw: raw, Location: location}
	if fragment == "" {
		return ref, nil
	}
	if fragment[0] != '/' {
		return nil, &oaserrors.ReferenceError{
			Ref:     raw,
			RefType: ref.RefType(),
			Message: "pointer fragment must start with '/'",
		}
	}
	for _, seg := range strings.Split(fragment[1:], "/") {
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			return nil, &oaserrors.ReferenceError{Ref: raw, RefType: ref.RefType(), Message: "invalid percent-encoding", Cause: err}
		}
		ref.Segments = append(ref.Segments, pathutil.UnescapeSegment(decoded))
	}
	return ref, nil
}

// cached returns the memoized result, if any.
func (r *Reference) cached() (target any, ok bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target, r.resolved, r.err
}

// store memoizes a result. The first stored result wins so concurrent
// resolvers agree on one target.
func (r *Reference) store(target any, err error) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.resolved {
		r.resolved = true
		r.target = target
		r.err = err
	}
	return r.target, r.err
}
