package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/erraggy/swaggerdoc/render"
	"github.com/erraggy/swaggerdoc/spec"
)

// ModelFlags contains flags for the model command
type ModelFlags struct {
	Depth   int
	Format  string
	List    bool
	Timeout time.Duration
	Verbose bool
}

// SetupModelFlags creates and configures a FlagSet for the model command.
// Returns the FlagSet and a ModelFlags struct with bound flag variables.
func SetupModelFlags() (*flag.FlagSet, *ModelFlags) {
	fs := flag.NewFlagSet("model", flag.ContinueOnError)
	flags := &ModelFlags{}

	fs.IntVar(&flags.Depth, "depth", 0, "maximum nesting of property sections (0 for unbounded)")
	fs.StringVar(&flags.Format, "format", render.FormatMarkdown, "output format: markdown, text, json, or yaml")
	fs.StringVar(&flags.Format, "f", render.FormatMarkdown, "output format (shorthand)")
	fs.BoolVar(&flags.List, "list", false, "list model names instead of describing one")
	fs.BoolVar(&flags.List, "l", false, "list model names (shorthand)")
	fs.DurationVar(&flags.Timeout, "timeout", spec.DefaultTimeout, "timeout for fetching a spec URL")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log progress to stderr")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: swaggerdoc model [flags] <file|url|-> <Model>\n")
		Writef(output, "       swaggerdoc model --list <file|url|->\n\n")
		Writef(output, "Describe one model from definitions (Swagger 2.0) or components.schemas\n")
		Writef(output, "(OpenAPI 3.x): its properties, then a section per nested model or object.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  swaggerdoc model swagger.json Pet\n")
		Writef(output, "  swaggerdoc model --depth 1 -f text openapi.yaml '#/components/schemas/Order'\n")
		Writef(output, "  swaggerdoc model --list swagger.json\n")
	}

	return fs, flags
}

// HandleModel executes the model command
func HandleModel(args []string) error {
	fs, flags := SetupModelFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	want := 2
	if flags.List {
		want = 1
	}
	if fs.NArg() != want {
		fs.Usage()
		if flags.List {
			return fmt.Errorf("model --list requires exactly one file path, URL, or '-' for stdin")
		}
		return fmt.Errorf("model command requires a file path, URL, or '-' for stdin and a model name")
	}
	if err := render.ValidateFormat(flags.Format); err != nil {
		return err
	}

	log := NewLogger(os.Stderr, flags.Verbose)
	repo, err := LoadSpec(context.Background(), fs.Arg(0), flags.Timeout, log)
	if err != nil {
		return err
	}

	if flags.List {
		for _, name := range repo.Models() {
			Writef(os.Stdout, "%s\n", name)
		}
		return nil
	}

	sec, err := render.DescribeModel(repo, fs.Arg(1), flags.Depth, log)
	if err != nil {
		return err
	}
	doc := &render.Document{Source: repo.Source(), Version: repo.Version(), Sections: []*render.Section{sec}}
	return render.Write(os.Stdout, doc, flags.Format)
}
