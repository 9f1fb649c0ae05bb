package render

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"go.yaml.in/yaml/v4"
)

// Output formats
const (
	FormatMarkdown = "markdown"
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatMarkdown, FormatText, FormatJSON, FormatYAML}
}

// ValidateFormat returns an error naming the valid formats when format is
// not one of them.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats(), format) {
		return fmt.Errorf("render: invalid format '%s'. Valid formats: %v", format, Formats())
	}
	return nil
}

// Write renders doc to w in the given format.
func Write(w io.Writer, doc *Document, format string) error {
	switch format {
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	case FormatText:
		return writeText(w, doc)
	case FormatJSON, FormatYAML:
		return WriteStructured(w, doc, format)
	default:
		return ValidateFormat(format)
	}
}

// WriteStructured encodes any value as indented JSON or as YAML.
func WriteStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error
	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		out = append(out, '\n')
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("render: invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("render: marshaling to %s: %w", format, err)
	}
	_, err = w.Write(out)
	return err
}

// errWriter remembers the first write error so writers can emit freely and
// check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
