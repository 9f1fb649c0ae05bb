package mcpserver

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Loading limits.
	FetchTimeout    time.Duration
	MaxInlineSize   int64
	AllowPrivateIPs bool

	// Tool defaults.
	ListLimit int
	MaxLimit  int
	MaxDepth  int
}

// cfg is the active server configuration, initialized at package load time
// and reloaded by LoadEnvFile.
var cfg = loadConfig()

// loadConfig reads configuration from SWAGGERDOC_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("SWAGGERDOC_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("SWAGGERDOC_CACHE_MAX_SIZE", 10, 1),
		CacheFileTTL:       envDuration("SWAGGERDOC_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("SWAGGERDOC_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("SWAGGERDOC_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("SWAGGERDOC_CACHE_SWEEP_INTERVAL", 60*time.Second),
		FetchTimeout:       envDuration("SWAGGERDOC_FETCH_TIMEOUT", 30*time.Second),
		MaxInlineSize:      int64(envInt("SWAGGERDOC_MAX_INLINE_SIZE", 10*1024*1024, 1)),
		AllowPrivateIPs:    envBool("SWAGGERDOC_ALLOW_PRIVATE_IPS", false),
		ListLimit:          envInt("SWAGGERDOC_LIST_LIMIT", 100, 1),
		MaxLimit:           envInt("SWAGGERDOC_MAX_LIMIT", 1000, 1),
		MaxDepth:           envInt("SWAGGERDOC_MAX_DEPTH", 10, 0),
	}
}

// LoadEnvFile reads KEY=VALUE pairs from path into the process environment
// and reloads the server configuration. Variables already set in the
// environment take precedence over the file.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("mcpserver: loading env file %s: %w", path, err)
	}
	cfg = loadConfig()
	return nil
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

// envInt reads an integer of at least minimum. A depth of 0 means unbounded,
// so SWAGGERDOC_MAX_DEPTH accepts it while sizes and limits do not.
func envInt(key string, fallback, minimum int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < minimum {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
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
