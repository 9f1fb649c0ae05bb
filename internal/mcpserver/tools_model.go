package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/swaggerdoc/property"
	"github.com/erraggy/swaggerdoc/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type describeModelInput struct {
	Spec     specInput `json:"spec"                jsonschema:"The Swagger/OpenAPI document holding the model"`
	Model    string    `json:"model"               jsonschema:"Model name or $ref (e.g. Pet or #/definitions/Pet)"`
	Format   string    `json:"format,omitempty"    jsonschema:"Format of the rendered document: markdown (default)\\, text\\, json or yaml"`
	MaxDepth *int      `json:"max_depth,omitempty" jsonschema:"Maximum nesting of property sections (default 10\\, negative for unbounded)"`
}

type propertySummary struct {
	Key             string `json:"key"`
	Description     string `json:"description,omitempty"`
	Kind            string `json:"kind"`
	Type            string `json:"type"`
	SubType         string `json:"sub_type,omitempty"`
	NeedsDescribing bool   `json:"needs_describing,omitempty"`
}

type describeModelOutput struct {
	Model      string            `json:"model"`
	Ref        string            `json:"ref"`
	Models     int               `json:"models"`
	Properties []propertySummary `json:"properties,omitempty"`
	Document   string            `json:"document"`
}

func handleDescribeModel(ctx context.Context, _ *mcp.CallToolRequest, input describeModelInput) (*mcp.CallToolResult, any, error) {
	if input.Model == "" {
		return errResult(fmt.Errorf("model is required")), nil, nil
	}
	format := input.Format
	if format == "" {
		format = render.FormatMarkdown
	}
	if err := render.ValidateFormat(format); err != nil {
		return errResult(err), nil, nil
	}

	repo, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), nil, nil
	}

	name := repo.ResolveModelName(input.Model)
	props, err := property.NewClassifier(repo).ModelProperties(name)
	if err != nil {
		return errResult(err), nil, nil
	}
	sec, err := render.DescribeModel(repo, name, depthOrDefault(input.MaxDepth), repo.Logger())
	if err != nil {
		return errResult(err), nil, nil
	}

	var sb strings.Builder
	doc := &render.Document{Source: repo.Source(), Version: repo.Version(), Sections: []*render.Section{sec}}
	if err := render.Write(&sb, doc, format); err != nil {
		return errResult(err), nil, nil
	}

	output := describeModelOutput{
		Model:      name,
		Ref:        repo.ModelRef(name),
		Models:     len(repo.Models()),
		Properties: makeSlice[propertySummary](len(props)),
		Document:   sb.String(),
	}
	for _, p := range props {
		output.Properties = append(output.Properties, propertySummary{
			Key:             p.Key,
			Description:     p.Description,
			Kind:            p.Kind().String(),
			Type:            p.TypeDescription(),
			SubType:         p.SubType(),
			NeedsDescribing: p.NeedsFurtherDescription(),
		})
	}
	return nil, output, nil
}
