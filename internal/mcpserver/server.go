// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes swaggerdoc rendering as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/swaggerdoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `swaggerdoc MCP server. Lists operations of Swagger 2.0 / OpenAPI 3.x specs and renders request documentation with nested property tables.

Configuration: All defaults are configurable via SWAGGERDOC_* environment variables set in your MCP client config, or through a .env file passed with --env-file.

Key settings:
- SWAGGERDOC_CACHE_ENABLED (default: true): disable spec caching entirely
- SWAGGERDOC_CACHE_MAX_SIZE (default: 10): maximum number of cached specs
- SWAGGERDOC_CACHE_FILE_TTL (default: 15m): cache TTL for local file specs
- SWAGGERDOC_CACHE_URL_TTL (default: 5m): cache TTL for URL-fetched specs
- SWAGGERDOC_CACHE_CONTENT_TTL (default: 15m): cache TTL for inline content
- SWAGGERDOC_FETCH_TIMEOUT (default: 30s): timeout for URL fetches
- SWAGGERDOC_ALLOW_PRIVATE_IPS (default: false): allow URLs resolving to private addresses
- SWAGGERDOC_LIST_LIMIT (default: 100): default result limit for list_operations
- SWAGGERDOC_MAX_DEPTH (default: 10): default nesting depth for rendered property sections, 0 for unbounded

Caching: Loaded specs are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	specCache.setMaxSize(cfg.CacheMaxSize)
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "swaggerdoc", Version: swaggerdoc.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_operations",
		Description: "List the operations of a Swagger 2.0 or OpenAPI 3.x document in document order. Filter by resources (tags; untagged operations use the first path segment) and operation_ids, both comma-separated. Returns method, path, operationId, resources and the body type description. Use offset/limit to paginate (default limit configurable via SWAGGERDOC_LIST_LIMIT).",
	}, handleListOperations)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_docs",
		Description: "Render request documentation for the selected operations: a description section, a call parameters table, and a nested property table for every model or inline object reachable from the body parameter. Formats: markdown (default), text, json, yaml. A spec that cannot be loaded yields a document with an error block rather than a tool error. max_depth bounds nested sections (default from SWAGGERDOC_MAX_DEPTH, 0 for unbounded).",
	}, handleRenderDocs)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "describe_model",
		Description: "Describe one model from definitions (Swagger 2.0) or components.schemas (OpenAPI 3.x): its collapsed properties (allOf merged) with kind, type description and whether they need further description, plus the rendered model document. Accepts a bare name or a $ref string. Cyclic models are reported as errors.",
	}, handleDescribeModel)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
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

// depthOrDefault maps an unset depth to cfg.MaxDepth and a negative one to
// unbounded.
func depthOrDefault(depth *int) int {
	switch {
	case depth == nil:
		return cfg.MaxDepth
	case *depth < 0:
		return 0
	default:
		return *depth
	}
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
