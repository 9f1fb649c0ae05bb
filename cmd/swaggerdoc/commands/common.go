// Package commands provides CLI command handlers for swaggerdoc.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/erraggy/swaggerdoc/internal/cliutil"
	"github.com/erraggy/swaggerdoc/render"
	"github.com/erraggy/swaggerdoc/spec"
)

// Output format constants for listings
const (
	FormatText = "text"
	FormatJSON = render.FormatJSON
	FormatYAML = render.FormatYAML
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates a listing output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured writes data to stdout as JSON or YAML.
func OutputStructured(data any, format string) error {
	if err := render.WriteStructured(os.Stdout, data, format); err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// SourceOptions returns the load option naming specPath as the input,
// reading stdin for StdinFilePath.
func SourceOptions(specPath string) []spec.Option {
	if specPath == StdinFilePath {
		return []spec.Option{spec.WithReader(os.Stdin), spec.WithSourceName(FormatSpecPath(specPath))}
	}
	return []spec.Option{spec.WithSource(specPath)}
}

// LoadSpec loads the spec at specPath (a file, a URL, or "-").
func LoadSpec(ctx context.Context, specPath string, timeout time.Duration, log spec.Logger) (*spec.Repository, error) {
	opts := append(SourceOptions(specPath), spec.WithLogger(log))
	if timeout > 0 {
		opts = append(opts, spec.WithTimeout(timeout))
	}
	repo, err := spec.LoadWithOptions(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", FormatSpecPath(specPath), err)
	}
	return repo, nil
}

// NewLogger returns the CLI logger. It writes logfmt-style lines to w at
// warning level, or at debug level when verbose.
func NewLogger(w io.Writer, verbose bool) spec.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	l.SetLevel(logrus.WarnLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return spec.NewLogrusAdapter(l)
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}
