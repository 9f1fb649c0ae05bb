package mcpserver

import (
	"context"

	"github.com/erraggy/swaggerdoc/spec"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listOperationsInput struct {
	Spec         specInput `json:"spec"                    jsonschema:"The Swagger/OpenAPI document to list"`
	Resources    string    `json:"resources,omitempty"     jsonschema:"Comma-separated resources (tags) to keep"`
	OperationIDs string    `json:"operation_ids,omitempty" jsonschema:"Comma-separated operationIds to keep"`
	Limit        int       `json:"limit,omitempty"         jsonschema:"Maximum number of results to return (default 100)"`
	Offset       int       `json:"offset,omitempty"        jsonschema:"Skip the first N results (for pagination)"`
}

type operationSummary struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	OperationID string   `json:"operation_id,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Resources   []string `json:"resources"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	Body        string   `json:"body,omitempty"`
}

type listOperationsOutput struct {
	Source     string             `json:"source"`
	Version    string             `json:"version"`
	Title      string             `json:"title,omitempty"`
	Total      int                `json:"total"`
	Matched    int                `json:"matched"`
	Returned   int                `json:"returned"`
	Operations []operationSummary `json:"operations,omitempty"`
}

func handleListOperations(ctx context.Context, _ *mcp.CallToolRequest, input listOperationsInput) (*mcp.CallToolResult, any, error) {
	repo, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}

	all := repo.Operations(spec.OperationFilter{})
	matched := repo.Operations(spec.ParseOperationFilter(input.Resources, input.OperationIDs))
	returned := paginate(matched, input.Offset, input.Limit)

	output := listOperationsOutput{
		Source:     repo.Source(),
		Version:    repo.Version(),
		Title:      repo.Document().Path("info", "title").Text(),
		Total:      len(all),
		Matched:    len(matched),
		Returned:   len(returned),
		Operations: makeSlice[operationSummary](len(returned)),
	}
	for _, op := range returned {
		output.Operations = append(output.Operations, summarizeOperation(repo, op))
	}
	return nil, output, nil
}

func summarizeOperation(repo *spec.Repository, op *spec.Operation) operationSummary {
	summary := operationSummary{
		Method:      op.Method,
		Path:        op.Path,
		OperationID: op.OperationID,
		Summary:     op.Summary,
		Resources:   op.Resources(),
		Deprecated:  op.Deprecated,
	}
	if body := repo.BodyParameter(op); body != nil {
		summary.Body = repo.ParameterTypeDescription(body)
	}
	return summary
}
