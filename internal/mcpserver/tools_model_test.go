package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/swaggerdoc/internal/testutil"
)

func callDescribeModel(t *testing.T, input describeModelInput) (*mcp.CallToolResult, describeModelOutput) {
	t.Helper()
	result, out, err := handleDescribeModel(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	if out == nil {
		return result, describeModelOutput{}
	}
	mo, ok := out.(describeModelOutput)
	require.True(t, ok, "expected describeModelOutput, got %T", out)
	return result, mo
}

func TestDescribeModel_Pet(t *testing.T) {
	withDefaultConfig(t)

	result, out := callDescribeModel(t, describeModelInput{Spec: petstoreInput(t), Model: "#/definitions/Pet"})
	assert.Nil(t, result)
	assert.Equal(t, "Pet", out.Model)
	assert.Equal(t, "#/definitions/Pet", out.Ref)
	assert.Equal(t, 6, out.Models)
	require.Len(t, out.Properties, 6)

	byKey := make(map[string]propertySummary)
	for _, p := range out.Properties {
		byKey[p.Key] = p
	}
	assert.Equal(t, propertySummary{Key: "category", Kind: "object", Type: "Category", SubType: "Category", NeedsDescribing: true}, byKey["category"])
	assert.Equal(t, "Array of Tag", byKey["tags"].Type)
	assert.Equal(t, "objects_array", byKey["tags"].Kind)
	assert.Equal(t, "Array of string", byKey["photoUrls"].Type)
	assert.False(t, byKey["photoUrls"].NeedsDescribing)

	assert.Contains(t, out.Document, "Pet model")
	assert.Contains(t, out.Document, "category property (Category)")
}

func TestDescribeModel_AllOf(t *testing.T) {
	withDefaultConfig(t)

	_, out := callDescribeModel(t, describeModelInput{
		Spec:   specInput{Content: string(testutil.PetstoreOAS3(t))},
		Model:  "Dog",
		Format: "yaml",
	})
	keys := make([]string, 0, len(out.Properties))
	for _, p := range out.Properties {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []string{"packSize", "id", "name", "tag", "breed"}, keys)
	assert.Contains(t, out.Document, "title: Dog model")
}

func TestDescribeModel_Errors(t *testing.T) {
	withDefaultConfig(t)
	cyclic := `swagger: "2.0"
paths: {}
definitions:
  Node: {properties: {next: {$ref: "#/definitions/Node"}}}
`

	tests := []struct {
		name  string
		input describeModelInput
		want  string
	}{
		{"missing model", describeModelInput{Spec: petstoreInput(t)}, "model is required"},
		{"unknown model", describeModelInput{Spec: petstoreInput(t), Model: "Ghost"}, "unknown model: Ghost"},
		{"bad format", describeModelInput{Spec: petstoreInput(t), Model: "Pet", Format: "pdf"}, "invalid format 'pdf'"},
		{"cyclic", describeModelInput{Spec: specInput{Content: cyclic}, Model: "Node"}, "cyclic model reference: Node -> Node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := callDescribeModel(t, tt.input)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.want)
		})
	}
}
