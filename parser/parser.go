package parser

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/erraggy/oasdoc"
	"github.com/erraggy/oasdoc/oaserrors"
	"github.com/erraggy/oasdoc/parsenode"
)

// Parser reads OpenAPI documents into the typed model.
type Parser struct {
	// Version forces the dispatch tables. SpecVersionUnknown (default)
	// detects the version from the document's "swagger" or "openapi" field.
	Version SpecVersion
	// UnknownFields controls fields no table entry matches.
	UnknownFields UnknownFieldPolicy
	// RefSiblings controls fields written next to a $ref.
	RefSiblings RefSiblingPolicy

	// Loader loads external documents. If nil, a DefaultLoader is built
	// from the fields below.
	Loader Loader
	// Cache holds external documents. If nil, each parse gets its own.
	Cache *DocumentCache

	// ResolveHTTPRefs allows external references to http(s) URLs.
	// Disabled by default (SSRF protection).
	ResolveHTTPRefs bool
	// InsecureSkipVerify disables TLS verification for HTTP fetches.
	InsecureSkipVerify bool
	// HTTPClient is used for HTTP fetches when set.
	HTTPClient *http.Client
	// UserAgent is sent with HTTP fetches. Default: "oasdoc/<version>".
	UserAgent string
	// BaseDir confines file references. Default: the directory of the parsed
	// file, or the working directory when parsing bytes.
	BaseDir string

	// MaxCachedDocuments limits external documents per session. Default: 100
	MaxCachedDocuments int
	// MaxFileSize limits the size of every loaded document. Default: 10MB
	MaxFileSize int64

	// Logger receives debug output. If nil, logging is disabled.
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{UserAgent: oasdoc.UserAgent()}
}

func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source OpenAPI specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// FormatBytes renders a byte count in binary units, e.g. "512 B" or
// "1.5 KiB".
func FormatBytes(size int64) string {
	const prefixes = "KMGTPE"
	if size < 1024 {
		return fmt.Sprintf("%d B", size)
	}
	value, i := float64(size)/1024, 0
	for value >= 1024 && i < len(prefixes)-1 {
		value /= 1024
		i++
	}
	return fmt.Sprintf("%.1f %ciB", value, prefixes[i])
}

// ParseResult contains the parsed document and metadata about the parse.
//
// Callers should treat the Document as read-only: references cache their
// resolved targets, and entities may be shared between several references.
type ParseResult struct {
	// SourcePath is the file path or URL the document was read from. For
	// bytes and readers it is "ParseBytes.yaml", "ParseReader.json" and so on,
	// unless overridden with WithSourceName.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the version text as written in the document
	Version string
	// OASVersion is the closest known version to Version
	OASVersion OASVersion
	// Document is the typed model
	Document *Document
	// Diagnostics holds the recoverable problems found while loading
	Diagnostics []Diagnostic
	// LoadTime is the time taken to read the source
	LoadTime time.Duration
	// SourceSize is the size of the source in bytes
	SourceSize int64
	// Stats summarizes the document
	Stats DocumentStats
}

// Parse parses an OpenAPI document from a file path or an http(s) URL.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var (
		data     []byte
		err      error
		format   SourceFormat
		location string
		start    = time.Now()
	)
	if isURL(specPath) {
		var contentType string
		data, contentType, err = p.httpLoader().Fetch(specPath)
		if err != nil {
			return nil, err
		}
		location = specPath
		format = formatOf(specPath, contentType, data)
	} else {
		data, err = FileLoader{MaxFileSize: p.MaxFileSize}.Read(specPath)
		if err != nil {
			return nil, err
		}
		location = filepath.Clean(specPath)
		format = formatOf(specPath, "", data)
	}
	loadTime := time.Since(start)

	res, err := p.parse(data, location)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	res.SourceFormat = format
	return res, nil
}

// ParseReader parses an OpenAPI document from r. Relative external
// references resolve against the working directory.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := readLimited(r, limitOr(p.MaxFileSize), "reader")
	loadTime := time.Since(start)
	if err != nil {
		return nil, err
	}
	res, err := p.parseInMemory(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes parses an OpenAPI document held in memory. Relative external
// references resolve against the working directory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parseInMemory(data, "ParseBytes")
}

func (p *Parser) parseInMemory(data []byte, name string) (*ParseResult, error) {
	res, err := p.parse(data, "")
	if err != nil {
		return nil, err
	}
	res.SourceFormat = sniffFormat(data)
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = name + ".json"
	} else {
		res.SourcePath = name + ".yaml"
	}
	return res, nil
}

func (p *Parser) parse(data []byte, location string) (*ParseResult, error) {
	root, err := parseTree(location, data)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	res, err := p.ParseNode(root, location)
	if err != nil {
		return nil, err
	}
	res.SourceSize = int64(len(data))
	return res, nil
}

// ParseNode loads a document from an already parsed tree. location is used
// to resolve relative external references and may be empty.
func (p *Parser) ParseNode(root parsenode.Node, location string) (*ParseResult, error) {
	log := p.log()

	raw, oasVersion, detected := documentVersion(root)
	family := p.Version
	if family == SpecVersionUnknown {
		if !detected {
			msg := "unable to detect OpenAPI version: document must contain a 'swagger' or 'openapi' field"
			if raw != "" {
				msg = fmt.Sprintf("unsupported OpenAPI version %q", raw)
			}
			return nil, fmt.Errorf("parser: %w", &oaserrors.ParseError{Path: location, Message: msg})
		}
		family = oasVersion.Family()
	}
	log.Debug("detected version", "version", raw, "tables", family.String())

	cfg := &readerConfig{
		unknownFields: p.UnknownFields,
		refSiblings:   p.RefSiblings,
		loader:        p.loader(location),
		cache:         p.Cache,
		logger:        log,
	}
	if cfg.cache == nil {
		cfg.cache = NewDocumentCache(p.MaxCachedDocuments)
	}

	reg := newRegistry(location, root, family, cfg)
	if location != "" {
		cfg.cache.add(location, reg)
	}
	c := reg.newContext()
	doc, err := loadDocument(c, root)
	diags := reg.release(c)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	doc.OASVersion = oasVersion
	doc.reg = reg

	if n := len(diags); n > 0 {
		log.Debug("document loaded with diagnostics", "count", n)
	}
	return &ParseResult{
		Version:     raw,
		OASVersion:  oasVersion,
		Document:    doc,
		Diagnostics: diags,
		Stats:       GetDocumentStats(doc),
	}, nil
}

func (p *Parser) loader(location string) Loader {
	if p.Loader != nil {
		return p.Loader
	}
	base := p.BaseDir
	if base == "" {
		base = "."
		if location != "" && !isURL(location) {
			base = filepath.Dir(location)
		}
	}
	return DefaultLoader{
		File:        FileLoader{BaseDir: base, MaxFileSize: p.MaxFileSize},
		HTTP:        p.httpLoader(),
		DisableHTTP: !p.ResolveHTTPRefs,
	}
}

func (p *Parser) httpLoader() HTTPLoader {
	if p.InsecureSkipVerify && p.HTTPClient != nil {
		p.log().Warn("InsecureSkipVerify ignored when HTTPClient provided; configure TLS on your client's transport")
	}
	return HTTPLoader{
		Client:             p.HTTPClient,
		InsecureSkipVerify: p.InsecureSkipVerify,
		UserAgent:          p.UserAgent,
		MaxSize:            p.MaxFileSize,
	}
}

// documentVersion reads the "swagger" or "openapi" field. raw is the text as
// written; ok reports whether it names a known version.
func documentVersion(root parsenode.Node) (raw string, v OASVersion, ok bool) {
	for _, key := range []string{"openapi", "swagger"} {
		n, found := root.Get(key)
		if !found {
			continue
		}
		raw, _ = n.Scalar()
		v, ok = ParseVersion(raw)
		return raw, v, ok
	}
	return "", Unknown, false
}

// detectVersion reports the version a complete document declares.
func detectVersion(root parsenode.Node) (OASVersion, bool) {
	_, v, ok := documentVersion(root)
	return v, ok
}

// Diagnostics returns the diagnostics of the parse together with those
// recorded since, while resolution loaded reference targets.
func (d *Document) Diagnostics() []Diagnostic {
	if d.reg == nil {
		return nil
	}
	return d.reg.diagnostics()
}
