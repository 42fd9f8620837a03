package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearMCPEnv clears all OASDOC_MCP_* env vars to isolate tests from the ambient environment.
func clearMCPEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OASDOC_MCP_CACHE_ENABLED", "OASDOC_MCP_CACHE_MAX_SIZE",
		"OASDOC_MCP_CACHE_FILE_TTL", "OASDOC_MCP_CACHE_URL_TTL",
		"OASDOC_MCP_CACHE_CONTENT_TTL", "OASDOC_MCP_CACHE_SWEEP_INTERVAL",
		"OASDOC_MCP_MAX_INLINE_SIZE", "OASDOC_MCP_ALLOW_PRIVATE_IPS",
		"OASDOC_MCP_DIAGNOSTIC_LIMIT", "OASDOC_MCP_MAX_LIMIT",
		"OASDOC_MCP_UNKNOWN_FIELDS", "OASDOC_MCP_REF_SIBLINGS",
		"OASDOC_MCP_WRITE_TERSE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearMCPEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
	assert.Equal(t, 100, c.DiagnosticLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.False(t, c.UnknownFields)
	assert.Empty(t, c.RefSiblings)
	assert.False(t, c.WriteTerse)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearMCPEnv(t)
	t.Setenv("OASDOC_MCP_CACHE_ENABLED", "false")
	t.Setenv("OASDOC_MCP_CACHE_MAX_SIZE", "50")
	t.Setenv("OASDOC_MCP_CACHE_FILE_TTL", "30m")
	t.Setenv("OASDOC_MCP_CACHE_URL_TTL", "2m")
	t.Setenv("OASDOC_MCP_CACHE_CONTENT_TTL", "10m")
	t.Setenv("OASDOC_MCP_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("OASDOC_MCP_MAX_INLINE_SIZE", "5242880")
	t.Setenv("OASDOC_MCP_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("OASDOC_MCP_DIAGNOSTIC_LIMIT", "20")
	t.Setenv("OASDOC_MCP_MAX_LIMIT", "500")
	t.Setenv("OASDOC_MCP_UNKNOWN_FIELDS", "true")
	t.Setenv("OASDOC_MCP_REF_SIBLINGS", "diagnose")
	t.Setenv("OASDOC_MCP_WRITE_TERSE", "1")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 2*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.True(t, c.AllowPrivateIPs)
	assert.Equal(t, 20, c.DiagnosticLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.True(t, c.UnknownFields)
	assert.Equal(t, "diagnose", c.RefSiblings)
	assert.True(t, c.WriteTerse)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearMCPEnv(t)
	t.Setenv("OASDOC_MCP_CACHE_MAX_SIZE", "banana")
	t.Setenv("OASDOC_MCP_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("OASDOC_MCP_CACHE_ENABLED", "maybe")
	t.Setenv("OASDOC_MCP_DIAGNOSTIC_LIMIT", "-5")
	t.Setenv("OASDOC_MCP_REF_SIBLINGS", "typo")
	t.Setenv("OASDOC_MCP_MAX_INLINE_SIZE", "abc")
	t.Setenv("OASDOC_MCP_MAX_LIMIT", "0")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 100, c.DiagnosticLimit)
	assert.Empty(t, c.RefSiblings, "invalid policy should fall back to empty")
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 1000, c.MaxLimit)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearMCPEnv(t)
	t.Setenv("OASDOC_MCP_DIAGNOSTIC_LIMIT", "42")
	t.Setenv("OASDOC_MCP_CACHE_URL_TTL", "10m")

	c := loadConfig()

	assert.Equal(t, 42, c.DiagnosticLimit)
	assert.Equal(t, 10*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.True(t, c.CacheEnabled)
}
