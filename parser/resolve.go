package parser

import (
	"errors"
	"net/url"
	"path/filepath"

	"github.com/erraggy/oasdoc/oaserrors"
)

// entityKind describes a referenceable kind to the resolver.
type entityKind[T any] struct {
	name string
	load loaderFunc[T]
	ref  func(*T) *Reference
}

var (
	schemaKind         = entityKind[Schema]{"Schema", loadSchema, func(e *Schema) *Reference { return e.Ref }}
	parameterKind      = entityKind[Parameter]{"Parameter", loadParameter, func(e *Parameter) *Reference { return e.Ref }}
	responseKind       = entityKind[Response]{"Response", loadResponse, func(e *Response) *Reference { return e.Ref }}
	headerKind         = entityKind[Header]{"Header", loadHeader, func(e *Header) *Reference { return e.Ref }}
	exampleKind        = entityKind[Example]{"Example", loadExample, func(e *Example) *Reference { return e.Ref }}
	linkKind           = entityKind[Link]{"Link", loadLink, func(e *Link) *Reference { return e.Ref }}
	requestBodyKind    = entityKind[RequestBody]{"RequestBody", loadRequestBody, func(e *RequestBody) *Reference { return e.Ref }}
	securitySchemeKind = entityKind[SecurityScheme]{"SecurityScheme", loadSecurityScheme, func(e *SecurityScheme) *Reference { return e.Ref }}
	pathItemKind       = entityKind[PathItem]{"PathItem", loadPathItem, func(e *PathItem) *Reference { return e.Ref }}
	callbackKind       = entityKind[Callback]{"Callback", loadCallback, func(e *Callback) *Reference { return e.Ref }}
	mediaTypeKind      = entityKind[MediaType]{"MediaType", loadMediaType, func(e *MediaType) *Reference { return e.Ref }}
)

// Resolve returns the Schema s refers to, or s itself when it is not a
// reference. The result is computed once and cached on the reference.
func (s *Schema) Resolve() (*Schema, error) { return resolve(s, schemaKind) }

// Resolve returns the Parameter p refers to, or p itself.
func (p *Parameter) Resolve() (*Parameter, error) { return resolve(p, parameterKind) }

// Resolve returns the Response r refers to, or r itself.
func (r *Response) Resolve() (*Response, error) { return resolve(r, responseKind) }

// Resolve returns the Header h refers to, or h itself.
func (h *Header) Resolve() (*Header, error) { return resolve(h, headerKind) }

// Resolve returns the Example e refers to, or e itself.
func (e *Example) Resolve() (*Example, error) { return resolve(e, exampleKind) }

// Resolve returns the Link l refers to, or l itself.
func (l *Link) Resolve() (*Link, error) { return resolve(l, linkKind) }

// Resolve returns the RequestBody b refers to, or b itself.
func (b *RequestBody) Resolve() (*RequestBody, error) { return resolve(b, requestBodyKind) }

// Resolve returns the SecurityScheme s refers to, or s itself.
func (s *SecurityScheme) Resolve() (*SecurityScheme, error) { return resolve(s, securitySchemeKind) }

// Resolve returns the PathItem p refers to, or p itself.
func (p *PathItem) Resolve() (*PathItem, error) { return resolve(p, pathItemKind) }

// Resolve returns the Callback cb refers to, or cb itself.
func (cb *Callback) Resolve() (*Callback, error) { return resolve(cb, callbackKind) }

// Resolve returns the MediaType m refers to, or m itself.
func (m *MediaType) Resolve() (*MediaType, error) { return resolve(m, mediaTypeKind) }

func resolve[T any](e *T, k entityKind[T]) (*T, error) {
	if e == nil {
		return nil, nil
	}
	ref := k.ref(e)
	if ref == nil {
		return e, nil
	}
	if t, ok, err := ref.cached(); ok {
		return typed[T](t), err
	}
	target, err := follow(ref, k)
	t, err := ref.store(target, err)
	return typed[T](t), err
}

func typed[T any](v any) *T {
	t, _ := v.(*T)
	return t
}

// follow walks a chain of references until it reaches an entity that is not
// itself a reference. Locks are never held across steps, so concurrent
// resolutions of overlapping chains cannot deadlock.
func follow[T any](start *Reference, k entityKind[T]) (*T, error) {
	seen := make(map[string]bool)
	ref := start
	for {
		reg, err := ref.registry()
		if err != nil {
			return nil, err
		}
		key := reg.location + ref.Pointer()
		if seen[key] {
			return nil, &oaserrors.ReferenceError{
				Ref:        start.Raw,
				RefType:    start.RefType(),
				Path:       start.Path,
				IsCircular: true,
				Message:    "reference chain returns to " + ref.Raw,
			}
		}
		seen[key] = true

		if ref != start {
			if t, ok, err := ref.cached(); ok {
				return typed[T](t), err
			}
		}
		e, err := entityAt(reg, ref, k)
		if err != nil {
			return nil, err
		}
		next := k.ref(e)
		if next == nil {
			return e, nil
		}
		ref = next
	}
}

// registry returns the registry the pointer of r is evaluated against.
func (r *Reference) registry() (*registry, error) {
	if r.host == nil {
		return nil, &oaserrors.ReferenceError{
			Ref:     r.Raw,
			RefType: r.RefType(),
			Path:    r.Path,
			Message: "reference is not attached to a document",
		}
	}
	if r.Location == "" {
		return r.host, nil
	}
	return r.host.external(r)
}

// external returns the registry of the document an external reference names,
// loading it through the shared cache on first use.
func (r *registry) external(ref *Reference) (*registry, error) {
	location, err := r.resolveLocation(ref.Location)
	if err != nil {
		return nil, &oaserrors.ReferenceError{
			Ref:     ref.Raw,
			RefType: ref.RefType(),
			Path:    ref.Path,
			Message: "invalid document location",
			Cause:   err,
		}
	}
	if location == r.location {
		return r, nil
	}
	ext, err := r.cfg.cache.get(location, r)
	if err != nil {
		return nil, &oaserrors.ReferenceError{
			Ref:             ref.Raw,
			RefType:         ref.RefType(),
			Path:            ref.Path,
			IsPathTraversal: errors.Is(err, oaserrors.ErrPathTraversal),
			Message:         "failed to load " + location,
			Cause:           err,
		}
	}
	return ext, nil
}

// resolveLocation makes an external location absolute relative to the
// location of the document holding the reference.
func (r *registry) resolveLocation(location string) (string, error) {
	switch {
	case isURL(location):
		return location, nil
	case isURL(r.location):
		base, err := url.Parse(r.location)
		if err != nil {
			return "", err
		}
		rel, err := url.Parse(location)
		if err != nil {
			return "", err
		}
		return base.ResolveReference(rel).String(), nil
	case filepath.IsAbs(location) || r.location == "":
		return filepath.Clean(location), nil
	default:
		return filepath.Join(filepath.Dir(r.location), location), nil
	}
}
