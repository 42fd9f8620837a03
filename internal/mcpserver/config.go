package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize   int64
	AllowPrivateIPs bool

	// Diagnostic list defaults.
	DiagnosticLimit int
	MaxLimit        int

	// Reader defaults.
	UnknownFields bool
	RefSiblings   string

	// Write tool defaults.
	WriteTerse bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASDOC_MCP_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OASDOC_MCP_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OASDOC_MCP_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OASDOC_MCP_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("OASDOC_MCP_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("OASDOC_MCP_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OASDOC_MCP_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      int64(envInt("OASDOC_MCP_MAX_INLINE_SIZE", 10*1024*1024)),
		AllowPrivateIPs:    envBool("OASDOC_MCP_ALLOW_PRIVATE_IPS", false),
		DiagnosticLimit:    envInt("OASDOC_MCP_DIAGNOSTIC_LIMIT", 100),
		MaxLimit:           envInt("OASDOC_MCP_MAX_LIMIT", 1000),
		UnknownFields:      envBool("OASDOC_MCP_UNKNOWN_FIELDS", false),
		RefSiblings:        envRefSiblings("OASDOC_MCP_REF_SIBLINGS"),
		WriteTerse:         envBool("OASDOC_MCP_WRITE_TERSE", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

// validRefSiblings is the set of recognised $ref sibling policies.
var validRefSiblings = map[string]bool{"ignore": true, "diagnose": true, "error": true}

func envRefSiblings(key string) string {
	v := os.Getenv(key)
	if v == "" {
		return ""
	}
	if !validRefSiblings[v] {
		slog.Warn("invalid ref sibling policy env var, ignoring", "key", key, "value", v) //nolint:gosec // G706: values are structured log fields, not format strings
		return ""
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
