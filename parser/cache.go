package parser

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/erraggy/oasdoc/oaserrors"
	"github.com/erraggy/oasdoc/parsenode"
)

// DocumentCache holds the external documents of a parse session, keyed by
// absolute location. Each location is loaded at most once, even when many
// goroutines resolve references into it at the same time. A failed load is
// cached as well.
//
// A DocumentCache may be shared between parses with WithDocumentCache; by
// default every parse gets its own.
type DocumentCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	group   singleflight.Group
	maxDocs int
}

type cacheEntry struct {
	reg *registry
	err error
}

// NewDocumentCache returns a cache holding at most maxDocs documents.
// maxDocs <= 0 means MaxCachedDocuments.
func NewDocumentCache(maxDocs int) *DocumentCache {
	if maxDocs <= 0 {
		maxDocs = MaxCachedDocuments
	}
	return &DocumentCache{entries: make(map[string]cacheEntry), maxDocs: maxDocs}
}

// Len returns the number of cached locations.
func (dc *DocumentCache) Len() int {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return len(dc.entries)
}

// Locations returns the cached locations in no particular order.
func (dc *DocumentCache) Locations() []string {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	out := make([]string, 0, len(dc.entries))
	for loc := range dc.entries {
		out = append(out, loc)
	}
	return out
}

func (dc *DocumentCache) lookup(location string) (cacheEntry, bool) {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	e, ok := dc.entries[location]
	return e, ok
}

// add publishes an already loaded registry, e.g. the root document, so that
// references back into it reuse its arena.
func (dc *DocumentCache) add(location string, reg *registry) {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	if _, ok := dc.entries[location]; !ok {
		dc.entries[location] = cacheEntry{reg: reg}
	}
}

// get returns the registry for location, loading it with the host's loader on
// first use. Only fully parsed trees are published.
func (dc *DocumentCache) get(location string, host *registry) (*registry, error) {
	if e, ok := dc.lookup(location); ok {
		host.cfg.logger.Debug("external document cache hit", "location", location)
		return e.reg, e.err
	}

	v, err, _ := dc.group.Do(location, func() (any, error) {
		if e, ok := dc.lookup(location); ok {
			return e.reg, e.err
		}
		if n := dc.Len(); n >= dc.maxDocs {
			return nil, &oaserrors.ResourceLimitError{
				ResourceType: "cached_documents",
				Limit:        int64(dc.maxDocs),
				Actual:       int64(n),
				Message:      "too many external documents",
			}
		}

		host.cfg.logger.Debug("loading external document", "location", location)
		root, err := host.cfg.loader.Load(location)
		var reg *registry
		if err == nil {
			reg = newRegistry(location, root, externalVersion(root, host.version), host.cfg)
		} else {
			host.cfg.logger.Warn("failed to load external document", "location", location, "error", err)
		}

		dc.mu.Lock()
		dc.entries[location] = cacheEntry{reg: reg, err: err}
		dc.mu.Unlock()
		return reg, err
	})
	if err != nil {
		return nil, err
	}
	return v.(*registry), nil
}

// externalVersion reads an external document with its own version when it is
// a complete document and with the referencing document's version otherwise.
func externalVersion(root parsenode.Node, host SpecVersion) SpecVersion {
	if v, ok := detectVersion(root); ok {
		return v.Family()
	}
	return host
}
