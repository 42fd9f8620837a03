// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasdoc's reader and writer as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oasdoc"
	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oasdoc MCP server: reads OpenAPI 2.0 through 3.2 documents into a typed model and writes them back out as canonical JSON or YAML.

Configuration: All defaults are configurable via OASDOC_MCP_* environment variables set in your MCP client config.

Key settings:
- OASDOC_MCP_CACHE_FILE_TTL (default: 15m) - cache TTL for local file documents
- OASDOC_MCP_CACHE_URL_TTL (default: 5m) - cache TTL for URL-fetched documents
- OASDOC_MCP_CACHE_ENABLED (default: true) - disable document caching entirely
- OASDOC_MCP_DIAGNOSTIC_LIMIT (default: 100) - default number of diagnostics returned by parse
- OASDOC_MCP_UNKNOWN_FIELDS (default: false) - report unrecognized fields as diagnostics
- OASDOC_MCP_REF_SIBLINGS (default: ignore) - fields next to $ref: ignore, diagnose or error
- OASDOC_MCP_WRITE_TERSE (default: false) - compact output from the write tool
- OASDOC_MCP_ALLOW_PRIVATE_IPS (default: false) - allow url inputs that resolve to private addresses

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdoc", Version: oasdoc.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Read an OpenAPI document (2.0, 3.0, 3.1 or 3.2) into the typed model. Returns a structural summary: title, version, path/operation/schema/reference counts, servers, tags, and the diagnostics recorded while reading (unknown fields, malformed scalars, clamped numbers) with JSON pointer and line/column. Use resolve_refs=true to resolve every $ref and report the ones that fail. Use offset/limit to page through diagnostics.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "write",
		Description: "Write an OpenAPI document back out in canonical form as JSON or YAML. Fields holding their zero value are omitted. Use inline_local and inline_external to replace $refs with their targets; a reference that would recurse into itself stays a $ref. Use terse=true for compact output, and output to write to a file instead of returning the document inline.",
	}, handleWrite)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.DiagnosticLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.DiagnosticLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// jsonResult creates an MCP result whose text content is v encoded as JSON.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}
