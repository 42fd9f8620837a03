package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasdoc"
	"github.com/erraggy/oasdoc/cmd/oasdoc/commands"
	"github.com/erraggy/oasdoc/internal/mcpserver"
)

// commandNames lists every top-level command, used for typo suggestions.
var commandNames = []string{"parse", "write", "roundtrip", "typemap", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasdoc v%s\n", oasdoc.Version())
		if len(args) > 0 && args[0] == "--build-info" {
			fmt.Println(oasdoc.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "parse":
		err = commands.HandleParse(args)
	case "write":
		err = commands.HandleWrite(args)
	case "roundtrip":
		err = commands.HandleRoundTrip(args)
	case "typemap":
		err = commands.HandleTypeMap(args)
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = mcpserver.Run(ctx)
		stop()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest command name within edit distance 2 of
// input, or "" when nothing is that close.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Printf(`oasdoc - read and write OpenAPI documents

Usage:
  oasdoc <command> [options]

Commands:
  parse       Read a document and report its structure and diagnostics
  write       Read a document and write it back as JSON or YAML
  roundtrip   Check that a document survives a read and write unchanged
  typemap     Print the Go type to OpenAPI schema mapping
  mcp         Serve the reader and writer as MCP tools over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasdoc parse openapi.yaml
  oasdoc write -f json --terse openapi.yaml
  oasdoc write --inline-local -o flat.yaml openapi.yaml
  oasdoc roundtrip swagger.json
  oasdoc typemap --format yaml

Run 'oasdoc <command> --help' for more information on a command.
`)
}
