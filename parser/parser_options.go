package parser

import (
	"fmt"
	"io"
	"net/http"

	"github.com/erraggy/oasdoc"
	"github.com/erraggy/oasdoc/internal/options"
	"github.com/erraggy/oasdoc/oaserrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	parser Parser

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses an OpenAPI document using functional options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithUnknownFieldPolicy(parser.UnknownFieldsCollect),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &cfg.parser
	var result *ParseResult
	switch {
	case cfg.filePath != nil:
		result, err = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, err = p.ParseReader(cfg.reader)
	default:
		result, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{parser: Parser{UserAgent: oasdoc.UserAgent()}}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"parser: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"parser: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

func configError(option string, value any, msg string) error {
	return &oaserrors.ConfigError{Option: option, Value: value, Message: msg}
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return configError("reader", nil, "reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return configError("bytes", nil, "bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithVersion forces the tables of one version family instead of detecting
// it from the document.
func WithVersion(v SpecVersion) Option {
	return func(cfg *parseConfig) error {
		if v < SpecVersionUnknown || v > SpecVersion32 {
			return configError("version", int(v), "unknown version family")
		}
		cfg.parser.Version = v
		return nil
	}
}

// WithUnknownFieldPolicy selects what happens to unrecognized fields.
// Default: UnknownFieldsIgnore
func WithUnknownFieldPolicy(policy UnknownFieldPolicy) Option {
	return func(cfg *parseConfig) error {
		cfg.parser.UnknownFields = policy
		return nil
	}
}

// WithRefSiblingPolicy selects what happens to fields next to a $ref.
// Default: RefSiblingsIgnore
func WithRefSiblingPolicy(policy RefSiblingPolicy) Option {
	return func(cfg *parseConfig) error {
		cfg.parser.RefSiblings = policy
		return nil
	}
}

// WithLoader replaces the loader used for external documents.
func WithLoader(l Loader) Option {
	return func(cfg *parseConfig) error {
		if l == nil {
			return configError("loader", nil, "loader cannot be nil")
		}
		cfg.parser.Loader = l
		return nil
	}
}

// WithDocumentCache shares an external document cache between parses.
func WithDocumentCache(c *DocumentCache) Option {
	return func(cfg *parseConfig) error {
		cfg.parser.Cache = c
		return nil
	}
}

// WithMaxCachedDocuments sets the maximum number of external documents
// loaded in one session. A value of 0 means use the default (100).
func WithMaxCachedDocuments(count int) Option {
	return func(cfg *parseConfig) error {
		if count < 0 {
			return configError("maxCachedDocuments", count, "cannot be negative")
		}
		cfg.parser.MaxCachedDocuments = count
		return nil
	}
}

// WithMaxFileSize sets the maximum size in bytes of any loaded document.
// A value of 0 means use the default (10MB).
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return configError("maxFileSize", size, "cannot be negative")
		}
		cfg.parser.MaxFileSize = size
		return nil
	}
}

// WithBaseDir confines file references to dir.
func WithBaseDir(dir string) Option {
	return func(cfg *parseConfig) error {
		cfg.parser.BaseDir = dir
		return nil
	}
}

// WithResolveHTTPRefs allows external references to http(s) URLs.
// Disabled by default (SSRF protection).
func WithResolveHTTPRefs(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.parser.ResolveHTTPRefs = enabled
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification for HTTP
// fetches. Ignored when WithHTTPClient is used.
func WithInsecureSkipVerify(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.parser.InsecureSkipVerify = enabled
		return nil
	}
}

// WithHTTPClient sets the client for HTTP fetches. A nil client keeps the
// default.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *parseConfig) error {
		cfg.parser.HTTPClient = client
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "oasdoc/vX.Y.Z"
func WithUserAgent(ua string) Option {
	return func(cfg *parseConfig) error {
		cfg.parser.UserAgent = ua
		return nil
	}
}

// WithLogger sets a structured logger for debug output during parsing.
// Use NewSlogAdapter to wrap a *slog.Logger.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.parser.Logger = l
		return nil
	}
}

// WithSourceName specifies a meaningful name for the source document,
// replacing "ParseBytes.yaml" and the like in the result.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		if name == "" {
			return configError("sourceName", nil, "source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}
