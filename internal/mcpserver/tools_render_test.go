package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/swaggerdoc/internal/testutil"
	"github.com/erraggy/swaggerdoc/render"
)

func callRenderDocs(t *testing.T, input renderDocsInput) (*mcp.CallToolResult, renderDocsOutput) {
	t.Helper()
	result, out, err := handleRenderDocs(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	if out == nil {
		return result, renderDocsOutput{}
	}
	ro, ok := out.(renderDocsOutput)
	require.True(t, ok, "expected renderDocsOutput, got %T", out)
	return result, ro
}

func TestRenderDocs_Markdown(t *testing.T) {
	withDefaultConfig(t)

	result, out := callRenderDocs(t, renderDocsInput{Spec: petstoreInput(t), OperationIDs: "addPet"})
	assert.Nil(t, result)
	assert.Equal(t, render.FormatMarkdown, out.Format)
	assert.False(t, out.Failed)
	assert.Equal(t, 1, out.Operations)
	assert.Contains(t, out.Document, "# Swagger Petstore")
	assert.Contains(t, out.Document, "## POST /pet")
	assert.Contains(t, out.Document, "body parameter (Pet)")
	assert.Contains(t, out.Document, "| Name | Position | Description | Type |")
}

func TestRenderDocs_JSON(t *testing.T) {
	withDefaultConfig(t)

	_, out := callRenderDocs(t, renderDocsInput{Spec: petstoreInput(t), Resources: "store", Format: "json"})
	require.Equal(t, 4, out.Operations)

	var doc render.Document
	require.NoError(t, json.Unmarshal([]byte(out.Document), &doc))
	assert.Equal(t, "content", doc.Source)
	assert.Len(t, doc.Sections, 4)
}

const chainedModelsSpec = `swagger: "2.0"
paths:
  /a:
    post:
      operationId: a
      parameters:
        - {in: body, name: body, schema: {$ref: "#/definitions/A"}}
definitions:
  A: {properties: {b: {$ref: "#/definitions/B"}}}
  B: {properties: {c: {$ref: "#/definitions/C"}}}
  C: {properties: {v: {type: string}}}
`

func TestRenderDocs_MaxDepth(t *testing.T) {
	withDefaultConfig(t)
	one := 1

	requestSection := func(out renderDocsOutput) *render.Section {
		var doc render.Document
		require.NoError(t, json.Unmarshal([]byte(out.Document), &doc))
		require.Len(t, doc.Sections, 1)
		request := doc.Sections[0].Find(render.RequestParametersTitle)
		require.NotNil(t, request)
		return request
	}

	_, out := callRenderDocs(t, renderDocsInput{Spec: specInput{Content: chainedModelsSpec}, Format: "json", MaxDepth: &one})
	request := requestSection(out)
	assert.NotNil(t, request.Find("b parameter (B)"))
	assert.Nil(t, request.Find("c parameter (C)"))

	_, out = callRenderDocs(t, renderDocsInput{Spec: specInput{Content: chainedModelsSpec}, Format: "json"})
	assert.NotNil(t, requestSection(out).Find("c parameter (C)"), "default depth reaches C")
}

func TestRenderDocs_LoadFailureIsDocument(t *testing.T) {
	withDefaultConfig(t)

	result, out := callRenderDocs(t, renderDocsInput{Spec: specInput{File: "/nonexistent/petstore.json"}})
	assert.Nil(t, result, "load failures are rendered, not tool errors")
	assert.True(t, out.Failed)
	assert.Zero(t, out.Operations)
	assert.Contains(t, out.Document, render.LoadFailureMessage+"/nonexistent/petstore.json")
	assert.Contains(t, out.Document, render.LoadFailureAdvice)
	assert.Contains(t, out.Document, "failed to read file")
}

func TestRenderDocs_Errors(t *testing.T) {
	withDefaultConfig(t)

	tests := []struct {
		name  string
		input renderDocsInput
		want  string
	}{
		{"no source", renderDocsInput{}, "exactly one of file, url, or content"},
		{"bad format", renderDocsInput{Spec: specInput{Content: "{}"}, Format: "html"}, "invalid format 'html'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := callRenderDocs(t, tt.input)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok)
			assert.Contains(t, text.Text, tt.want)
		})
	}
}

func TestRenderDocs_FileInput(t *testing.T) {
	withDefaultConfig(t)
	path := testutil.WriteTempFile(t, "petstore-oas3.yaml", testutil.PetstoreOAS3(t))

	_, out := callRenderDocs(t, renderDocsInput{Spec: specInput{File: path}, Format: "text", OperationIDs: "createDog"})
	assert.False(t, out.Failed)
	assert.Equal(t, 1, out.Operations)
	assert.Contains(t, out.Document, "POST /dogs")
}
