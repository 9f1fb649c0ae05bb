package spec

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/erraggy/swaggerdoc/oaserrors"
)

// isURL determines if the given source is a URL (http:// or https://)
func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// fetchSource reads a URL or a file and decodes it.
func fetchSource(ctx context.Context, cfg *loadConfig, source string, log Logger) (Value, error) {
	if isURL(source) {
		log.Debug("fetching spec", "url", source, "timeout", cfg.timeout)
		data, err := fetchURL(ctx, cfg, source)
		if err != nil {
			return Value{}, &oaserrors.SpecLoadError{Source: source, Message: "failed to fetch URL", Cause: err}
		}
		return decode(data, source)
	}

	log.Debug("reading spec", "path", source)
	data, err := os.ReadFile(source) //nolint:gosec // G304 - path is user-provided input (CLI)
	if err != nil {
		return Value{}, &oaserrors.SpecLoadError{Source: source, Message: "failed to read file", Cause: err}
	}
	return decode(data, source)
}

// fetchURL fetches content from a URL within the configured timeout.
func fetchURL(ctx context.Context, cfg *loadConfig, urlStr string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	client := cfg.httpClient
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.userAgent)
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	resp, err := client.Do(req) //nolint:gosec // G107 - URL is user-provided input
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return data, nil
}

func readAndDecode(r io.Reader, source string) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, &oaserrors.SpecLoadError{Source: source, Message: "failed to read data", Cause: err}
	}
	return decode(data, source)
}

func decode(data []byte, source string) (Value, error) {
	doc, err := ParseValue(data)
	if err != nil {
		return Value{}, &oaserrors.SpecLoadError{Source: source, Message: "failed to parse YAML/JSON", Cause: err}
	}
	return doc, nil
}
