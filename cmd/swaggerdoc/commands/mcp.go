package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/swaggerdoc/internal/mcpserver"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	EnvFile string
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
// Returns the FlagSet and an MCPFlags struct with bound flag variables.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.StringVar(&flags.EnvFile, "env-file", "", "load SWAGGERDOC_* settings from a .env file before starting")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: swaggerdoc mcp [flags]\n\n")
		Writef(output, "Run the MCP (Model Context Protocol) server over stdio.\n")
		Writef(output, "Tools: list_operations, render_docs, describe_model.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nConfiguration:\n")
		Writef(output, "  Settings come from SWAGGERDOC_* environment variables. Variables already\n")
		Writef(output, "  set in the environment take precedence over the --env-file contents.\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	if flags.EnvFile != "" {
		if err := mcpserver.LoadEnvFile(flags.EnvFile); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
