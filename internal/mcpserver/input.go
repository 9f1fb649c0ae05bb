package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/swaggerdoc/spec"
)

// specInput represents the three ways a spec can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI or Swagger file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OpenAPI or Swagger document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI or Swagger document content (JSON or YAML)"`
}

// name identifies the input in rendered error blocks and logs.
func (s specInput) name() string {
	switch {
	case s.File != "":
		return s.File
	case s.URL != "":
		return s.URL
	default:
		return "content"
	}
}

// validate checks that exactly one source is set and that inline content
// is within the size limit.
func (s specInput) validate() error {
	count := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SWAGGERDOC_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}
	return nil
}

// cacheEntry holds a loaded repository with LRU ordering and TTL expiry.
type cacheEntry struct {
	repo      *spec.Repository
	usedAt    time.Time
	expiresAt time.Time
}

// specCacheStore provides a session-scoped cache for loaded specs.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. URL inputs are keyed by URL string.
// Entries have per-type TTLs and a background sweeper removes expired entries.
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

// get returns a cached repository or nil. Expired entries are lazily removed.
func (c *specCacheStore) get(key string) *spec.Repository {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.usedAt = time.Now()
		return e.repo
	}
	return nil
}

// putWithTTL stores a repository with a specific TTL, evicting the least
// recently used entry if at capacity.
func (c *specCacheStore) putWithTTL(key string, repo *spec.Repository, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{repo: repo, usedAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.usedAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.usedAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// setMaxSize changes the capacity. Existing entries are kept until evicted.
func (c *specCacheStore) setMaxSize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxSize = max(n, 1)
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

// makeCacheKey creates a cache key for the given spec input, or "" when the
// input cannot be cached.
func makeCacheKey(s specInput) string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return fmt.Sprintf("content:%s", hex.EncodeToString(h[:]))
	case s.URL != "":
		return fmt.Sprintf("url:%s", s.URL)
	default:
		return ""
	}
}

// resolve loads the spec from whichever input was provided, using the cache
// for file, URL, and content inputs.
func (s specInput) resolve(ctx context.Context) (*spec.Repository, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
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

	repo, err := spec.LoadWithOptions(ctx, s.loadOptions()...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		specCache.putWithTTL(key, repo, ttl)
	}
	return repo, nil
}

// loadOptions maps the input to spec load options.
func (s specInput) loadOptions() []spec.Option {
	opts := []spec.Option{
		spec.WithTimeout(cfg.FetchTimeout),
		spec.WithLogger(spec.NewSlogAdapter(slog.Default())),
	}
	switch {
	case s.File != "":
		opts = append(opts, spec.WithSource(s.File))
	case s.URL != "":
		opts = append(opts, spec.WithSource(s.URL))
		// Inject SSRF-safe HTTP client for URL fetches unless private IPs are allowed.
		if !cfg.AllowPrivateIPs {
			opts = append(opts, spec.WithHTTPClient(newSafeHTTPClient(cfg.FetchTimeout)))
		}
	default:
		opts = append(opts, spec.WithBytes([]byte(s.Content)), spec.WithSourceName(s.name()))
	}
	return opts
}
