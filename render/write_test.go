package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func sampleDocument() *Document {
	return &Document{
		Source: "petstore.json",
		Title:  "Petstore",
		Sections: []*Section{{
			ID:    "get-pet-petid",
			Title: "GET /pet/{petId}",
			Sections: []*Section{
				{ID: "description", Title: DescriptionTitle, Paragraphs: []string{"Returns a single pet"}},
				{
					ID:    "call-parameters",
					Title: CallParametersTitle,
					Table: &Table{
						Columns: CallParameterColumns,
						Rows:    [][]string{{"petId", "path", "ID of pet | to return", "integer"}},
					},
				},
			},
		}},
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleDocument(), FormatMarkdown))

	out := buf.String()
	assert.Contains(t, out, "# Petstore\n")
	assert.Contains(t, out, "<a id=\"get-pet-petid\"></a>\n## GET /pet/{petId}\n")
	assert.Contains(t, out, "### Description\n\nReturns a single pet\n")
	assert.Contains(t, out, "| Name | Position | Description | Type |\n| --- | --- | --- | --- |\n")
	assert.Contains(t, out, `| petId | path | ID of pet \| to return | integer |`)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleDocument(), FormatText))

	out := buf.String()
	assert.Contains(t, out, "Petstore\n========\n")
	assert.Contains(t, out, "GET /pet/{petId}\n----------------\n")
	assert.Contains(t, out, "Description\n~~~~~~~~~~~\n")

	var tableLines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") || strings.HasPrefix(line, "+") {
			tableLines = append(tableLines, line)
		}
	}
	require.NotEmpty(t, tableLines)
	width := len(tableLines[0])
	for _, line := range tableLines {
		assert.Len(t, line, width, "grid lines have equal width: %q", line)
	}
	assert.Equal(t, "| petId      | path       | ID of pet | to return"+strings.Repeat(" ", 60-len("ID of pet | to return"))+" | integer              |", tableLines[3])
}

func TestWriteErrors(t *testing.T) {
	doc := LoadFailure("bad.json", errors.New("boom"))

	var md bytes.Buffer
	require.NoError(t, Write(&md, doc, FormatMarkdown))
	assert.Contains(t, md.String(), "> **Error:** Unable to process OpenApi file: bad.json\n")
	assert.Contains(t, md.String(), LoadFailureAdvice)

	var txt bytes.Buffer
	require.NoError(t, Write(&txt, doc, FormatText))
	assert.Contains(t, txt.String(), "ERROR: Unable to process OpenApi file: bad.json\n")
	assert.Contains(t, txt.String(), "Cause: boom\n")
}

func TestWriteStructured(t *testing.T) {
	doc := sampleDocument()

	var js bytes.Buffer
	require.NoError(t, Write(&js, doc, FormatJSON))
	var fromJSON Document
	require.NoError(t, json.Unmarshal(js.Bytes(), &fromJSON))
	assert.Equal(t, doc, &fromJSON)

	var ym bytes.Buffer
	require.NoError(t, Write(&ym, doc, FormatYAML))
	var fromYAML Document
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &fromYAML))
	assert.Equal(t, doc, &fromYAML)
}

func TestValidateFormat(t *testing.T) {
	for _, f := range Formats() {
		assert.NoError(t, ValidateFormat(f))
	}
	err := ValidateFormat("html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'html'")
	assert.Error(t, Write(&bytes.Buffer{}, sampleDocument(), "html"))
	assert.Error(t, WriteStructured(&bytes.Buffer{}, sampleDocument(), FormatText))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportsWriterErrors(t *testing.T) {
	assert.EqualError(t, Write(failingWriter{}, sampleDocument(), FormatMarkdown), "disk full")
	assert.EqualError(t, Write(failingWriter{}, sampleDocument(), FormatText), "disk full")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 5, []string{""}},
		{"fits", "a b", 5, []string{"a b"}},
		{"breaks on spaces", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"splits long words", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"long word after short", "a abcdef", 3, []string{"a", "abc", "def"}},
		{"collapses whitespace", "a\n\n  b", 5, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.text, tt.width))
		})
	}
}
