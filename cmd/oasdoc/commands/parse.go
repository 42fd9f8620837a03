package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasdoc/parser"
)

// ParseFlags contains flags for the parse command
type ParseFlags struct {
	ReadFlags
	Resolve bool
	Quiet   bool
}

// SetupParseFlags creates and configures a FlagSet for the parse command.
// Returns the FlagSet and a ParseFlags struct with bound flag variables.
func SetupParseFlags() (*flag.FlagSet, *ParseFlags) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	flags := &ParseFlags{}

	flags.register(fs)
	fs.BoolVar(&flags.Resolve, "resolve", false, "resolve every $ref and report the ones that fail")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output diagnostics")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output diagnostics")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdoc parse [flags] <file|url|->\n\n")
		Writef(output, "Read an OpenAPI document into the typed model and report what was found.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdoc parse openapi.yaml\n")
		Writef(output, "  oasdoc parse --resolve openapi.yaml\n")
		Writef(output, "  oasdoc parse --unknown-fields --ref-siblings diagnose swagger.json\n")
		Writef(output, "  oasdoc parse --resolve --resolve-http-refs https://example.com/api/openapi.yaml\n")
		Writef(output, "  cat openapi.yaml | oasdoc parse -q -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Document read without error diagnostics\n")
		Writef(output, "  1    Reading failed, a reference did not resolve (with --resolve), or error diagnostics were found\n")
	}

	return fs, flags
}

// HandleParse executes the parse command
func HandleParse(args []string) error {
	fs, flags := SetupParseFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("parse command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)
	result, err := readSpec(specPath, &flags.ReadFlags)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		Writef(os.Stdout, "OpenAPI Document Reader\n")
		Writef(os.Stdout, "=======================\n\n")
		OutputSpecHeader(os.Stdout, specPath, result.Version)
		OutputSpecStats(os.Stdout, result.SourceSize, result.Stats, result.LoadTime)
		Writef(os.Stdout, "\n")
		outputDocumentInfo(result.Document)
	}

	// Diagnostics always go to stderr, even in quiet mode.
	OutputDiagnostics(os.Stderr, result.Diagnostics, colorEnabled(os.Stderr))

	if flags.Resolve {
		if err := result.Document.ResolveAll(); err != nil {
			return fmt.Errorf("resolving references: %w", err)
		}
		if !flags.Quiet {
			Writef(os.Stdout, "✓ All %d references resolved\n", result.Stats.ReferenceCount)
		}
	}

	if n := errorCount(result.Diagnostics); n > 0 {
		return fmt.Errorf("%d error diagnostic(s) in %s", n, FormatSpecPath(specPath))
	}

	if !flags.Quiet {
		Writef(os.Stdout, "✓ Parsing completed successfully\n")
	}
	return nil
}

func outputDocumentInfo(doc *parser.Document) {
	if doc.SpecVersion() == parser.SpecVersion20 {
		Writef(os.Stdout, "Document Type: OpenAPI 2.0 (Swagger)\n")
	} else {
		Writef(os.Stdout, "Document Type: OpenAPI 3.x\n")
	}
	if doc.Info != nil {
		Writef(os.Stdout, "Title: %s\n", doc.Info.Title)
		if doc.Info.Summary != "" {
			Writef(os.Stdout, "Summary: %s\n", doc.Info.Summary)
		}
		Writef(os.Stdout, "Version: %s\n", doc.Info.Version)
	}
	if len(doc.Servers) > 0 {
		Writef(os.Stdout, "Servers: %d\n", len(doc.Servers))
	}
	if doc.Webhooks != nil && doc.Webhooks.Len() > 0 {
		Writef(os.Stdout, "Webhooks: %d\n", doc.Webhooks.Len())
	}
	Writef(os.Stdout, "\n")
}
