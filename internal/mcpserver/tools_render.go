package mcpserver

import (
	"context"
	"errors"
	"strings"

	"github.com/erraggy/swaggerdoc/oaserrors"
	"github.com/erraggy/swaggerdoc/render"
	"github.com/erraggy/swaggerdoc/spec"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type renderDocsInput struct {
	Spec         specInput `json:"spec"                    jsonschema:"The Swagger/OpenAPI document to render"`
	Resources    string    `json:"resources,omitempty"     jsonschema:"Comma-separated resources (tags) to render"`
	OperationIDs string    `json:"operation_ids,omitempty" jsonschema:"Comma-separated operationIds to render"`
	Format       string    `json:"format,omitempty"        jsonschema:"Output format: markdown (default)\\, text\\, json or yaml"`
	MaxDepth     *int      `json:"max_depth,omitempty"     jsonschema:"Maximum nesting of property sections below the body (default 10\\, negative for unbounded)"`
}

type renderDocsOutput struct {
	Format     string `json:"format"`
	Failed     bool   `json:"failed"`
	Operations int    `json:"operations"`
	Document   string `json:"document"`
}

func handleRenderDocs(ctx context.Context, _ *mcp.CallToolRequest, input renderDocsInput) (*mcp.CallToolResult, any, error) {
	format := input.Format
	if format == "" {
		format = render.FormatMarkdown
	}
	if err := render.ValidateFormat(format); err != nil {
		return errResult(err), nil, nil
	}

	var doc *render.Document
	repo, err := input.Spec.resolve(ctx)
	switch {
	case errors.Is(err, oaserrors.ErrSpecLoad):
		doc = render.LoadFailure(input.Spec.name(), errors.New(sanitizeError(err)))
	case err != nil:
		return errResult(err), nil, nil
	default:
		filter := spec.ParseOperationFilter(input.Resources, input.OperationIDs)
		doc = render.BuildFromRepository(repo, render.Options{
			Resources:    filter.Resources,
			OperationIDs: filter.OperationIDs,
			MaxDepth:     depthOrDefault(input.MaxDepth),
			Logger:       repo.Logger(),
		})
	}

	var sb strings.Builder
	if err := render.Write(&sb, doc, format); err != nil {
		return errResult(err), nil, nil
	}
	return nil, renderDocsOutput{
		Format:     format,
		Failed:     doc.Failed(),
		Operations: len(doc.Sections),
		Document:   sb.String(),
	}, nil
}
