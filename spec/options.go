package spec

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/erraggy/swaggerdoc"
	"github.com/erraggy/swaggerdoc/internal/options"
	"github.com/erraggy/swaggerdoc/oaserrors"
)

// DefaultTimeout bounds fetching a spec over HTTP when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	source   *string
	bytes    []byte
	hasBytes bool
	reader   io.Reader
	document map[string]any
	value    *Value

	sourceName string
	userAgent  string
	httpClient *http.Client
	timeout    time.Duration
	logger     Logger
}

// Load fetches and parses the spec at source, a URL (http:// or https://) or
// a file path. Failures are reported as *oaserrors.SpecLoadError.
//
// Example:
//
//	repo, err := spec.Load(ctx, "https://petstore.swagger.io/v2/swagger.json")
func Load(ctx context.Context, source string, opts ...Option) (*Repository, error) {
	return LoadWithOptions(ctx, append([]Option{WithSource(source)}, opts...)...)
}

// New wraps an already decoded document.
func New(doc Value, opts ...Option) (*Repository, error) {
	return LoadWithOptions(context.Background(), append([]Option{WithValue(doc)}, opts...)...)
}

// LoadWithOptions loads a spec using functional options. Exactly one input
// source option must be given.
//
// Example:
//
//	repo, err := spec.LoadWithOptions(ctx,
//	    spec.WithBytes(data),
//	    spec.WithSourceName("petstore.json"),
//	    spec.WithLogger(logger),
//	)
func LoadWithOptions(ctx context.Context, opts ...Option) (*Repository, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("spec: invalid options: %w", err)
	}

	log := cfg.logger
	if log == nil {
		log = NopLogger{}
	}

	var doc Value
	var name string
	switch {
	case cfg.value != nil:
		doc, name = *cfg.value, "Value"
	case cfg.document != nil:
		doc, name = FromAny(cfg.document), "Document"
	case cfg.hasBytes:
		name = "Bytes"
		doc, err = decode(cfg.bytes, nameOr(cfg.sourceName, name))
	case cfg.reader != nil:
		name = "Reader"
		doc, err = readAndDecode(cfg.reader, nameOr(cfg.sourceName, name))
	case cfg.source != nil:
		name = *cfg.source
		doc, err = fetchSource(ctx, cfg, *cfg.source, log)
	}
	if err != nil {
		return nil, err
	}

	repo, err := newRepository(doc, nameOr(cfg.sourceName, name), log)
	if err != nil {
		return nil, err
	}
	log.Debug("spec loaded",
		"source", repo.source,
		"version", repo.version,
		"paths", repo.doc.Get("paths").Len(),
		"models", repo.modelSection().Len())
	return repo, nil
}

func nameOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{
		userAgent: swaggerdoc.UserAgent(),
		timeout:   DefaultTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		[]string{"WithSource", "WithBytes", "WithReader", "WithDocument", "WithValue"},
		cfg.source != nil, cfg.hasBytes, cfg.reader != nil, cfg.document != nil, cfg.value != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithSource loads from a URL (http:// or https://) or a file path
func WithSource(source string) Option {
	return func(cfg *loadConfig) error {
		if source == "" {
			return &oaserrors.ConfigError{Option: "WithSource", Message: "source must not be empty"}
		}
		cfg.source = &source
		return nil
	}
}

// WithBytes loads from JSON or YAML bytes
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		cfg.bytes = data
		cfg.hasBytes = true
		return nil
	}
}

// WithReader loads from JSON or YAML read from r
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader must not be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithDocument loads from an in-memory document, such as the result of
// json.Unmarshal into map[string]any. Go maps carry no key order, so
// operations and properties come out sorted by key.
func WithDocument(doc map[string]any) Option {
	return func(cfg *loadConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "WithDocument", Message: "document must not be nil"}
		}
		cfg.document = doc
		return nil
	}
}

// WithValue loads from an already decoded Value
func WithValue(v Value) Option {
	return func(cfg *loadConfig) error {
		cfg.value = &v
		return nil
	}
}

// WithSourceName overrides the name reported by Repository.Source and in errors
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		cfg.sourceName = name
		return nil
	}
}

// WithUserAgent sets the User-Agent header used when fetching URLs
func WithUserAgent(ua string) Option {
	return func(cfg *loadConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets the HTTP client used when fetching URLs.
// The configured timeout still bounds the request through its context.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *loadConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithTimeout bounds fetching a URL. Zero or negative values are rejected.
func WithTimeout(d time.Duration) Option {
	return func(cfg *loadConfig) error {
		if d <= 0 {
			return &oaserrors.ConfigError{Option: "WithTimeout", Value: d, Message: "timeout must be positive"}
		}
		cfg.timeout = d
		return nil
	}
}

// WithLogger sets the structured logger; the default discards output
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}
