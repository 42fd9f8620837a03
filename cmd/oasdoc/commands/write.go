package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/oasdoc/parser"
	"github.com/erraggy/oasdoc/writer"
)

// WriteFlags contains flags for the write command
type WriteFlags struct {
	ReadFlags
	Format         string
	Terse          bool
	InlineLocal    bool
	InlineExternal bool
	Output         string
	Quiet          bool
}

// SetupWriteFlags creates and configures a FlagSet for the write command.
// Returns the FlagSet and a WriteFlags struct with bound flag variables.
func SetupWriteFlags() (*flag.FlagSet, *WriteFlags) {
	fs := flag.NewFlagSet("write", flag.ContinueOnError)
	flags := &WriteFlags{}

	flags.register(fs)
	fs.StringVar(&flags.Format, "f", "", "output format: json or yaml (default: same as the source)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: same as the source)")
	fs.BoolVar(&flags.Terse, "terse", false, "compact output without newlines or indentation")
	fs.BoolVar(&flags.InlineLocal, "inline-local", false, "replace local $refs with their targets")
	fs.BoolVar(&flags.InlineExternal, "inline-external", false, "replace $refs into other documents with their targets")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostics")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostics")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdoc write [flags] <file|url|->\n\n")
		Writef(output, "Read an OpenAPI document and write it back out in canonical form.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdoc write openapi.yaml\n")
		Writef(output, "  oasdoc write -f json --terse openapi.yaml\n")
		Writef(output, "  oasdoc write --inline-external -o bundled.yaml openapi.yaml\n")
		Writef(output, "  cat swagger.json | oasdoc write -f yaml -\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Fields holding their zero value are omitted from the output\n")
		Writef(output, "  - A reference that would recurse into itself is kept as a $ref when inlining\n")
		Writef(output, "  - Output file is written with restrictive permissions (0600)\n")
	}

	return fs, flags
}

// HandleWrite executes the write command
func HandleWrite(args []string) error {
	fs, flags := SetupWriteFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("write command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)
	result, err := readSpec(specPath, &flags.ReadFlags)
	if err != nil {
		return err
	}
	if !flags.Quiet {
		OutputDiagnostics(os.Stderr, result.Diagnostics, colorEnabled(os.Stderr))
	}

	format, err := outputFormat(flags.Format, result.SourceFormat)
	if err != nil {
		return err
	}
	settings := writer.Settings{
		Terse:                    flags.Terse,
		InlineLocalReferences:    flags.InlineLocal,
		InlineExternalReferences: flags.InlineExternal,
	}
	data, err := writer.Marshal(result.Document, format, settings)
	if err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}

	if flags.Output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing document to stdout: %w", err)
		}
		return nil
	}
	if err := writeOutputFile(flags.Output, data, []string{specPath}); err != nil {
		return err
	}
	if !flags.Quiet {
		Writef(os.Stderr, "Output written to: %s\n", flags.Output)
	}
	return nil
}

// outputFormat picks the requested format, or the source's when none was given.
func outputFormat(requested string, source parser.SourceFormat) (writer.Format, error) {
	if requested != "" {
		return writer.ParseFormat(requested)
	}
	if source == parser.SourceFormatYAML {
		return writer.FormatYAML, nil
	}
	return writer.FormatJSON, nil
}
