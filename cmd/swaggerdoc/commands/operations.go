package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/swaggerdoc/spec"
)

// OperationsFlags contains flags for the operations command
type OperationsFlags struct {
	Resources  string
	Operations string
	Format     string
	Quiet      bool
	Timeout    time.Duration
	Verbose    bool
}

// OperationEntry is one listed operation in structured output.
type OperationEntry struct {
	Method      string   `json:"method" yaml:"method"`
	Path        string   `json:"path" yaml:"path"`
	OperationID string   `json:"operation_id,omitempty" yaml:"operation_id,omitempty"`
	Summary     string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Resources   []string `json:"resources" yaml:"resources"`
	Deprecated  bool     `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Body        string   `json:"body,omitempty" yaml:"body,omitempty"`
}

// SetupOperationsFlags creates and configures a FlagSet for the operations command.
// Returns the FlagSet and an OperationsFlags struct with bound flag variables.
func SetupOperationsFlags() (*flag.FlagSet, *OperationsFlags) {
	fs := flag.NewFlagSet("operations", flag.ContinueOnError)
	flags := &OperationsFlags{}

	fs.StringVar(&flags.Resources, "resources", "", "comma-separated resources (tags) to list")
	fs.StringVar(&flags.Resources, "r", "", "comma-separated resources (tags) to list (shorthand)")
	fs.StringVar(&flags.Operations, "operations", "", "comma-separated operationIds to list")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "f", FormatText, "output format (shorthand)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without headings")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without headings")
	fs.DurationVar(&flags.Timeout, "timeout", spec.DefaultTimeout, "timeout for fetching a spec URL")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log progress to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: swaggerdoc operations [flags] <file|url|->\n\n")
		Writef(output, "List the operations of a Swagger/OpenAPI document, grouped by resource.\n")
		Writef(output, "Without filters every operation is listed.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  swaggerdoc operations swagger.json\n")
		Writef(output, "  swaggerdoc operations --resources pet -f json swagger.json\n")
		Writef(output, "  swaggerdoc operations -q swagger.yaml | cut -f3\n")
	}

	return fs, flags
}

// HandleOperations executes the operations command
func HandleOperations(args []string) error {
	fs, flags := SetupOperationsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("operations command requires exactly one file path, URL, or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	repo, err := LoadSpec(context.Background(), fs.Arg(0), flags.Timeout, NewLogger(os.Stderr, flags.Verbose))
	if err != nil {
		return err
	}

	entries := listOperations(repo, spec.ParseOperationFilter(flags.Resources, flags.Operations))

	if flags.Format != FormatText {
		return OutputStructured(entries, flags.Format)
	}
	if flags.Quiet {
		RenderSummaryTable(os.Stdout, operationHeaders, operationRows(entries), true)
		return nil
	}
	writeGroupedOperations(entries)
	return nil
}

var operationHeaders = []string{"METHOD", "PATH", "OPERATION", "BODY", "SUMMARY"}

func listOperations(repo *spec.Repository, filter spec.OperationFilter) []OperationEntry {
	ops := repo.Operations(filter)
	entries := make([]OperationEntry, 0, len(ops))
	for _, op := range ops {
		entry := OperationEntry{
			Method:      op.Method,
			Path:        op.Path,
			OperationID: op.OperationID,
			Summary:     op.Summary,
			Resources:   op.Resources(),
			Deprecated:  op.Deprecated,
		}
		if body := repo.BodyParameter(op); body != nil {
			entry.Body = repo.ParameterTypeDescription(body)
		}
		entries = append(entries, entry)
	}
	return entries
}

func operationRows(entries []OperationEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		summary := e.Summary
		if e.Deprecated {
			summary = strings.TrimSpace("(deprecated) " + summary)
		}
		rows = append(rows, []string{strings.ToUpper(e.Method), e.Path, e.OperationID, e.Body, summary})
	}
	return rows
}

// writeGroupedOperations prints one titled table per primary resource, in
// order of first appearance.
func writeGroupedOperations(entries []OperationEntry) {
	var order []string
	groups := make(map[string][]OperationEntry)
	for _, e := range entries {
		key := e.Resources[0]
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], e)
	}

	title := cases.Title(language.English)
	for i, key := range order {
		if i > 0 {
			Writef(os.Stdout, "\n")
		}
		Writef(os.Stdout, "%s (%d)\n", title.String(key), len(groups[key]))
		RenderSummaryTable(os.Stdout, operationHeaders, operationRows(groups[key]), false)
	}
}
