package commands

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/swaggerdoc/internal/fileutil"
	"github.com/erraggy/swaggerdoc/render"
	"github.com/erraggy/swaggerdoc/spec"
)

// RenderFlags contains flags for the render command
type RenderFlags struct {
	Resources  string
	Operations string
	Format     string
	Output     string
	Timeout    time.Duration
	MaxDepth   int
	Verbose    bool
}

// SetupRenderFlags creates and configures a FlagSet for the render command.
// Returns the FlagSet and a RenderFlags struct with bound flag variables.
func SetupRenderFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &RenderFlags{}

	fs.StringVar(&flags.Resources, "resources", "", "comma-separated resources (tags) to document")
	fs.StringVar(&flags.Resources, "r", "", "comma-separated resources (tags) to document (shorthand)")
	fs.StringVar(&flags.Operations, "operations", "", "comma-separated operationIds to document")
	fs.StringVar(&flags.Format, "format", render.FormatMarkdown, "output format: markdown, text, json, or yaml")
	fs.StringVar(&flags.Format, "f", render.FormatMarkdown, "output format (shorthand)")
	fs.StringVar(&flags.Output, "output", "", "write the documentation to this file instead of stdout")
	fs.StringVar(&flags.Output, "o", "", "output file (shorthand)")
	fs.DurationVar(&flags.Timeout, "timeout", spec.DefaultTimeout, "timeout for fetching a spec URL")
	fs.IntVar(&flags.MaxDepth, "depth", 0, "maximum nesting of property sections below the body (0 for unbounded)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log progress to stderr")
	fs.BoolVar(&flags.Verbose, "v", false, "log progress to stderr (shorthand)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: swaggerdoc render [flags] <file|url|->\n\n")
		Writef(output, "Render request documentation for the operations of a Swagger/OpenAPI document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  swaggerdoc render swagger.json\n")
		Writef(output, "  swaggerdoc render --resources pet,store https://petstore.swagger.io/v2/swagger.json\n")
		Writef(output, "  swaggerdoc render --operations addPet -f text -o addPet.txt swagger.yaml\n")
		Writef(output, "  cat swagger.yaml | swaggerdoc render -f json -\n")
		Writef(output, "\nFiltering:\n")
		Writef(output, "  An operation is kept when any of its tags is one of --resources and its\n")
		Writef(output, "  operationId is one of --operations; an omitted filter keeps everything.\n")
		Writef(output, "  Untagged operations use the first path segment as their resource.\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Documentation rendered\n")
		Writef(output, "  1    The spec could not be loaded (an error document is still written) or bad usage\n")
	}

	return fs, flags
}

// HandleRender executes the render command
func HandleRender(args []string) error {
	fs, flags := SetupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("render command requires exactly one file path, URL, or '-' for stdin")
	}
	if err := render.ValidateFormat(flags.Format); err != nil {
		return err
	}

	specPath := fs.Arg(0)
	filter := spec.ParseOperationFilter(flags.Resources, flags.Operations)

	doc := render.BuildFrom(context.Background(), FormatSpecPath(specPath), render.Options{
		Resources:    filter.Resources,
		OperationIDs: filter.OperationIDs,
		Timeout:      flags.Timeout,
		MaxDepth:     flags.MaxDepth,
		Logger:       NewLogger(os.Stderr, flags.Verbose),
	}, SourceOptions(specPath)...)

	var buf bytes.Buffer
	if err := render.Write(&buf, doc, flags.Format); err != nil {
		return fmt.Errorf("writing documentation: %w", err)
	}

	if flags.Output != "" {
		if err := fileutil.WriteFile(flags.Output, buf.Bytes(), fileutil.ReadableByAll); err != nil {
			return err
		}
		Writef(os.Stderr, "Wrote %d operation(s) to %s\n", len(doc.Sections), flags.Output)
	} else if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing documentation: %w", err)
	}

	if doc.Error != nil {
		return fmt.Errorf("unable to process %s", doc.Source)
	}
	if doc.Failed() {
		Writef(os.Stderr, "Warning: some operations could not be documented; see the error blocks in the output\n")
	}
	return nil
}
