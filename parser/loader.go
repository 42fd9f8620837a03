package parser

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erraggy/oasdoc"
	"github.com/erraggy/oasdoc/oaserrors"
	"github.com/erraggy/oasdoc/parsenode"
)

const (
	// MaxCachedDocuments is the default limit on external documents loaded
	// in one parse session.
	MaxCachedDocuments = 100

	// MaxFileSize is the default size limit for a loaded document, 10MB.
	MaxFileSize = 10 * 1024 * 1024

	// DefaultHTTPTimeout bounds one HTTP fetch.
	DefaultHTTPTimeout = 30 * time.Second
)

// Loader turns a document location into a parse tree. Locations handed to a
// Loader are already absolute: a cleaned file path or an http(s) URL.
type Loader interface {
	Load(location string) (parsenode.Node, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(location string) (parsenode.Node, error)

// Load calls f(location).
func (f LoaderFunc) Load(location string) (parsenode.Node, error) { return f(location) }

// FileLoader reads documents from the local file system.
type FileLoader struct {
	// BaseDir confines loads to a directory tree. Empty disables the check.
	BaseDir string
	// MaxFileSize caps the bytes read per file. 0 means MaxFileSize.
	MaxFileSize int64
}

// Load reads and parses the file at path.
func (l FileLoader) Load(path string) (parsenode.Node, error) {
	data, err := l.Read(path)
	if err != nil {
		return parsenode.Node{}, err
	}
	return parseTree(path, data)
}

// Read returns the contents of the file at path after the traversal and size
// checks.
func (l FileLoader) Read(path string) ([]byte, error) {
	if l.BaseDir != "" {
		if err := checkWithin(l.BaseDir, path); err != nil {
			return nil, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return readLimited(f, limitOr(l.MaxFileSize), path)
}

// checkWithin rejects paths that escape base.
func checkWithin(base, path string) error {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return fmt.Errorf("parser: failed to resolve base directory: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("parser: failed to resolve file path: %w", err)
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return &oaserrors.ReferenceError{
			Ref:             path,
			RefType:         "file",
			IsPathTraversal: true,
			Message:         "outside " + base,
		}
	}
	return nil
}

// HTTPLoader fetches documents over HTTP(S).
type HTTPLoader struct {
	// Client is used as-is when set. Otherwise a client with Timeout is built.
	Client *http.Client
	// Timeout applies to the default client. 0 means DefaultHTTPTimeout.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS verification on the default client.
	InsecureSkipVerify bool
	// UserAgent is sent with every request. Empty means oasdoc.UserAgent().
	UserAgent string
	// MaxSize caps the response body. 0 means MaxFileSize.
	MaxSize int64
}

// Load fetches and parses the document at url.
func (l HTTPLoader) Load(url string) (parsenode.Node, error) {
	data, _, err := l.Fetch(url)
	if err != nil {
		return parsenode.Node{}, err
	}
	return parseTree(url, data)
}

// Fetch returns the body and Content-Type of a GET on url.
func (l HTTPLoader) Fetch(url string) ([]byte, string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to create request: %w", err)
	}
	userAgent := l.UserAgent
	if userAgent == "" {
		userAgent = oasdoc.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.client().Do(req) //nolint:gosec // URL is caller input
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to fetch URL: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("parser: HTTP %d: %s", resp.StatusCode, resp.Status)
	}
	data, err := readLimited(resp.Body, limitOr(l.MaxSize), url)
	if err != nil {
		return nil, "", err
	}
	return data, resp.Header.Get("Content-Type"), nil
}

func (l HTTPLoader) client() *http.Client {
	if l.Client != nil {
		return l.Client
	}
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	if !l.InsecureSkipVerify {
		return &http.Client{Timeout: timeout}
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, //nolint:gosec // explicitly requested
				MinVersion:         tls.VersionTLS12,
			},
		},
	}
}

// DefaultLoader loads URLs with HTTP and everything else with File.
type DefaultLoader struct {
	File FileLoader
	HTTP HTTPLoader
	// DisableHTTP rejects URL locations.
	DisableHTTP bool
}

// Load dispatches on the location's scheme.
func (l DefaultLoader) Load(location string) (parsenode.Node, error) {
	if !isURL(location) {
		return l.File.Load(location)
	}
	if l.DisableHTTP {
		return parsenode.Node{}, fmt.Errorf("parser: HTTP references are disabled: %s", location)
	}
	return l.HTTP.Load(location)
}

// isURL reports whether location is an http(s) URL.
func isURL(location string) bool {
	scheme, _, ok := strings.Cut(location, "://")
	return ok && (scheme == "http" || scheme == "https")
}

// formatOf names the format of a loaded document. The extension of the file
// or URL path decides first, then the media type of an HTTP response, then
// the content itself.
func formatOf(location, contentType string, data []byte) SourceFormat {
	name := location
	if isURL(location) {
		if u, err := url.Parse(location); err == nil {
			name = u.Path
		}
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case mediaType == "application/json", strings.HasSuffix(mediaType, "+json"):
			return SourceFormatJSON
		case strings.HasSuffix(mediaType, "/yaml"), strings.HasSuffix(mediaType, "/x-yaml"), strings.HasSuffix(mediaType, "+yaml"):
			return SourceFormatYAML
		}
	}
	return sniffFormat(data)
}

// sniffFormat reads the format from the first non-blank byte: JSON documents
// open with an object or an array.
func sniffFormat(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case len(trimmed) == 0:
		return SourceFormatUnknown
	case trimmed[0] == '{', trimmed[0] == '[':
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

func parseTree(location string, data []byte) (parsenode.Node, error) {
	n, err := parsenode.Parse(data)
	if err != nil {
		var pe *oaserrors.ParseError
		if errors.As(err, &pe) {
			pe.Path = location
		}
		return parsenode.Node{}, err
	}
	return n, nil
}

func limitOr(limit int64) int64 {
	if limit <= 0 {
		return MaxFileSize
	}
	return limit
}

// readLimited reads r fully, failing once more than limit bytes arrive.
func readLimited(r io.Reader, limit int64, source string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read %s: %w", source, err)
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Message:      source + " is too large",
		}
	}
	return data, nil
}
