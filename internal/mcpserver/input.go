package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oasdoc/parser"
)

// specInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// readOptions are the reader settings a tool call may override. They are
// part of the cache key so differently read documents never collide.
type readOptions struct {
	UnknownFields bool
	RefSiblings   string
}

// defaultReadOptions returns the reader settings from the server config
// with any per-call overrides applied.
func defaultReadOptions(unknownFields *bool, refSiblings string) readOptions {
	ro := readOptions{UnknownFields: cfg.UnknownFields, RefSiblings: cfg.RefSiblings}
	if unknownFields != nil {
		ro.UnknownFields = *unknownFields
	}
	if refSiblings != "" {
		ro.RefSiblings = refSiblings
	}
	return ro
}

// parserOptions converts the settings into parser options.
func (ro readOptions) parserOptions() ([]parser.Option, error) {
	var opts []parser.Option
	if ro.UnknownFields {
		opts = append(opts, parser.WithUnknownFieldPolicy(parser.UnknownFieldsCollect))
	}
	switch ro.RefSiblings {
	case "", "ignore":
	case "diagnose":
		opts = append(opts, parser.WithRefSiblingPolicy(parser.RefSiblingsDiagnose))
	case "error":
		opts = append(opts, parser.WithRefSiblingPolicy(parser.RefSiblingsError))
	default:
		return nil, fmt.Errorf("invalid ref_siblings %q; valid values: ignore, diagnose, error", ro.RefSiblings)
	}
	return opts, nil
}

func (ro readOptions) key() string {
	siblings := ro.RefSiblings
	if siblings == "" {
		siblings = "ignore"
	}
	return fmt.Sprintf("unknown=%t,siblings=%s", ro.UnknownFields, siblings)
}

// cacheEntry holds a cached parse result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *parser.ParseResult
	insertAt  time.Time
	expiresAt time.Time
}

// specCacheStore provides a session-scoped cache for parsed documents.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. URL inputs are keyed by URL string. Every key also
// carries the reader settings.
type specCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var specCache = &specCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *specCacheStore) get(key string) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.insertAt = time.Now()
	return e.result
}

// putWithTTL stores a result with a specific TTL, evicting the least recently
// used entry if at capacity.
func (c *specCacheStore) putWithTTL(key string, result *parser.ParseResult, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *specCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *specCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *specCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *specCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given input and reader settings.
// It returns "" when the input cannot be keyed (for example an unreadable file).
func makeCacheKey(s specInput, ro readOptions) string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d|%s", absPath, info.ModTime().UnixNano(), ro.key())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return fmt.Sprintf("content:%s|%s", hex.EncodeToString(h[:]), ro.key())
	case s.URL != "":
		return fmt.Sprintf("url:%s|%s", s.URL, ro.key())
	default:
		return ""
	}
}

// resolve reads the document from whichever input was provided, using the
// cache for file, URL, and content inputs.
func (s specInput) resolve(ro readOptions) (*parser.ParseResult, error) {
	count := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASDOC_MCP_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	opts, err := ro.parserOptions()
	if err != nil {
		return nil, err
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(s, ro)
		switch {
		case s.File != "":
			ttl = cfg.CacheFileTTL
		case s.URL != "":
			ttl = cfg.CacheURLTTL
		default:
			ttl = cfg.CacheContentTTL
		}
	}

	if key != "" {
		if cached := specCache.get(key); cached != nil {
			return cached, nil
		}
	}

	switch {
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File))
	case s.URL != "":
		opts = append(opts, parser.WithFilePath(s.URL))
		if !cfg.AllowPrivateIPs {
			opts = append(opts, parser.WithHTTPClient(newSafeHTTPClient()))
		}
	case s.Content != "":
		opts = append(opts, parser.WithReader(strings.NewReader(s.Content)))
	}

	result, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		specCache.putWithTTL(key, result, ttl)
	}
	return result, nil
}
