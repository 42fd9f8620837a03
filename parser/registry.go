package parser

import (
	"fmt"
	"strings"
	"sync"

	"github.com/erraggy/oasdoc/internal/pathutil"
	"github.com/erraggy/oasdoc/oaserrors"
	"github.com/erraggy/oasdoc/parsenode"
)

// readerConfig is the part of the parse configuration every registry of a
// session shares.
type readerConfig struct {
	unknownFields UnknownFieldPolicy
	refSiblings   RefSiblingPolicy
	loader        Loader
	cache         *DocumentCache
	logger        Logger
}

// registry owns one loaded document: its raw tree, the tables it is read
// with, and the arena of entities loaded from it keyed by JSON pointer.
// External documents get a registry of their own, shared through the
// DocumentCache.
type registry struct {
	location string
	root     parsenode.Node
	version  SpecVersion
	tables   *tableSet
	cfg      *readerConfig

	mu       sync.Mutex
	entities map[string]any
	failed   map[string]*failedLoad
	diags    []Diagnostic

	// loadMu serializes lazy loads so that one subtree is loaded once.
	loadMu sync.Mutex
}

func newRegistry(location string, root parsenode.Node, version SpecVersion, cfg *readerConfig) *registry {
	return &registry{
		location: location,
		root:     root,
		version:  version,
		tables:   tablesFor(version),
		cfg:      cfg,
		entities: make(map[string]any),
		failed:   make(map[string]*failedLoad),
	}
}

// failedLoad remembers why a lazy load of a pointer failed.
type failedLoad struct {
	message string
	cause   error
}

func (r *registry) newContext() *loadContext {
	return &loadContext{reg: r, tables: r.tables, path: pathutil.Get()}
}

// release returns the context's path builder to the pool and keeps its
// diagnostics.
func (r *registry) release(c *loadContext) []Diagnostic {
	pathutil.Put(c.path)
	c.path = nil
	r.mu.Lock()
	r.diags = append(r.diags, c.diags...)
	r.mu.Unlock()
	return c.diags
}

// register records an entity and reports whether it was new. The first
// entity loaded at a pointer wins.
func (r *registry) register(pointer string, e any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entities[pointer]; exists {
		return false
	}
	r.entities[pointer] = e
	return true
}

// fail drops the entities a failed load added and records the failure at
// pointer, so no later lookup sees a partly loaded entity.
func (r *registry) fail(pointer string, added []string, f *failedLoad) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range added {
		delete(r.entities, p)
	}
	r.failed[pointer] = f
}

func (r *registry) failure(pointer string) (*failedLoad, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.failed[pointer]
	return f, ok
}

func (r *registry) lookup(pointer string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entities[pointer]
	return e, ok
}

// diagnostics returns every diagnostic recorded so far, including those of
// lazy loads triggered by resolution.
func (r *registry) diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	return out
}

// entityAt returns the entity of kind k at the pointer of ref. An arena hit
// returns the entity loaded earlier; a miss walks the raw tree and loads the
// node as kind k. A pointer whose load failed keeps failing with the same
// cause.
func entityAt[T any](r *registry, ref *Reference, k entityKind[T]) (*T, error) {
	pointer := ref.Pointer()
	if e, ok := r.lookup(pointer); ok {
		return asKind(e, ref, k)
	}

	r.loadMu.Lock()
	defer r.loadMu.Unlock()
	if e, ok := r.lookup(pointer); ok {
		return asKind(e, ref, k)
	}
	if f, ok := r.failure(pointer); ok {
		return nil, f.refError(ref)
	}

	node, err := r.root.Lookup(ref.Segments)
	if err != nil {
		return nil, &oaserrors.ReferenceError{
			Ref:     ref.Raw,
			RefType: ref.RefType(),
			Path:    ref.Path,
			Message: "target not found",
			Cause:   err,
		}
	}

	c := r.newContext()
	c.path.Set(ref.Segments)
	e, err := k.load(c, node)
	added := c.added
	r.release(c)
	if err != nil {
		f := &failedLoad{message: "target is not a valid " + k.name, cause: err}
		r.fail(pointer, added, f)
		r.cfg.logger.Debug("reference target failed to load", "ref", ref.Raw, "kind", k.name, "error", err)
		return nil, f.refError(ref)
	}
	r.cfg.logger.Debug("loaded reference target", "ref", ref.Raw, "kind", k.name)
	return e, nil
}

func (f *failedLoad) refError(ref *Reference) error {
	return &oaserrors.ReferenceError{
		Ref:     ref.Raw,
		RefType: ref.RefType(),
		Path:    ref.Path,
		Message: f.message,
		Cause:   f.cause,
	}
}

func asKind[T any](e any, ref *Reference, k entityKind[T]) (*T, error) {
	if t, ok := e.(*T); ok {
		return t, nil
	}
	return nil, &oaserrors.ReferenceError{
		Ref:     ref.Raw,
		RefType: ref.RefType(),
		Path:    ref.Path,
		Message: fmt.Sprintf("target is a %s, not a %s", entityName(e), k.name),
	}
}

func entityName(e any) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", e), "*parser.")
}
