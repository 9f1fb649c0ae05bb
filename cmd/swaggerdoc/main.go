package main

import (
	"fmt"
	"os"

	"github.com/erraggy/swaggerdoc"
	"github.com/erraggy/swaggerdoc/cmd/swaggerdoc/commands"
	"github.com/erraggy/swaggerdoc/internal/cliutil"
)

// commandNames lists the dispatchable commands, for suggestions.
var commandNames = []string{"render", "operations", "model", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var handler func([]string) error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("swaggerdoc v%s\n", swaggerdoc.Version())
		if len(args) > 0 && args[0] == "--full" {
			fmt.Println(swaggerdoc.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "render":
		handler = commands.HandleRender
	case "operations", "ops":
		handler = commands.HandleOperations
	case "model":
		handler = commands.HandleModel
	case "mcp":
		handler = commands.HandleMCP
	default:
		cliutil.Errorf(os.Stderr, "unknown command: %s", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err := handler(args); err != nil {
		cliutil.Errorf(os.Stderr, "%v", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest command name within edit distance 2,
// or "" when none is that close.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`swaggerdoc - request documentation for Swagger/OpenAPI specifications

Usage:
  swaggerdoc <command> [options]

Commands:
  render      Render request documentation for selected operations
  operations  List operations grouped by resource
  model       Describe a model and its nested properties
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  swaggerdoc render --resources pet https://petstore.swagger.io/v2/swagger.json
  swaggerdoc render --operations addPet,updatePet -f text swagger.yaml
  swaggerdoc operations -f json openapi.yaml
  swaggerdoc model swagger.json Pet
  swaggerdoc mcp --env-file .env

Run 'swaggerdoc <command> --help' for more information on a command.`)
}
