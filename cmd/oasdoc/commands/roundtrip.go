package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/oasdoc/internal/cliutil"
	"github.com/erraggy/oasdoc/parsenode"
	"github.com/erraggy/oasdoc/parser"
	"github.com/erraggy/oasdoc/writer"
	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// RoundTripFlags contains flags for the roundtrip command
type RoundTripFlags struct {
	ReadFlags
	Quiet bool
}

// SetupRoundTripFlags creates and configures a FlagSet for the roundtrip command.
// Returns the FlagSet and a RoundTripFlags struct with bound flag variables.
func SetupRoundTripFlags() (*flag.FlagSet, *RoundTripFlags) {
	fs := flag.NewFlagSet("roundtrip", flag.ContinueOnError)
	flags := &RoundTripFlags{}

	flags.register(fs)
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only report differences")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only report differences")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdoc roundtrip [flags] <file|->\n\n")
		Writef(output, "Read a document, write it back as JSON and compare the result with the source.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdoc roundtrip openapi.yaml\n")
		Writef(output, "  cat swagger.json | oasdoc roundtrip -q -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    The written document is equal to the source\n")
		Writef(output, "  1    Reading failed or the written document differs (a line diff is printed)\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Key order is ignored when comparing\n")
		Writef(output, "  - Fields explicitly set to their zero value (false, \"\", null) are dropped on write and show up as differences\n")
	}

	return fs, flags
}

// HandleRoundTrip executes the roundtrip command
func HandleRoundTrip(args []string) error {
	fs, flags := SetupRoundTripFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("roundtrip command requires exactly one file path or '-' for stdin")
	}

	specPath := fs.Arg(0)
	source, result, err := readSource(specPath, &flags.ReadFlags)
	if err != nil {
		return err
	}
	if !flags.Quiet {
		OutputDiagnostics(os.Stderr, result.Diagnostics, colorEnabled(os.Stderr))
	}

	got, err := writer.Marshal(result.Document, writer.FormatJSON, writer.Settings{})
	if err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	want, err := canonicalJSON(source, got)
	if err != nil {
		return err
	}

	if jsonpatch.Equal(want, got) {
		if !flags.Quiet {
			Writef(os.Stdout, "✓ %s round-trips unchanged (%s, OAS %s)\n",
				FormatSpecPath(specPath), result.SourceFormat, result.Version)
		}
		return nil
	}

	if patch, err := jsonpatch.CreateMergePatch(want, got); err == nil {
		Writef(os.Stdout, "Merge patch from source to output:\n%s\n\n", patch)
	}
	OutputLineDiff(os.Stdout, string(want), string(got), colorEnabled(os.Stdout))
	return fmt.Errorf("%s changed during round trip", FormatSpecPath(specPath))
}

// readSource returns the raw bytes of specPath together with the parsed document.
func readSource(specPath string, f *ReadFlags) ([]byte, *parser.ParseResult, error) {
	opts, err := f.options()
	if err != nil {
		return nil, nil, err
	}
	if specPath == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("reading stdin: %w", err)
		}
		result, err := parser.ParseWithOptions(append(opts, parser.WithBytes(data))...)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing stdin: %w", err)
		}
		return data, result, nil
	}

	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading file: %w", err)
	}
	result, err := parser.ParseWithOptions(append(opts, parser.WithFilePath(specPath))...)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing file: %w", err)
	}
	return data, result, nil
}

// canonicalJSON renders source text as indented JSON in source key order.
// Scalars are typed the way the written document types them: a plain scalar
// that was written as a string with the same text, such as `version: 1.0`,
// stays a string.
func canonicalJSON(source, written []byte) ([]byte, error) {
	root, err := parsenode.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("reading source tree: %w", err)
	}
	guide, err := parsenode.Parse(written)
	if err != nil {
		return nil, fmt.Errorf("reading written tree: %w", err)
	}
	out, err := writer.MarshalValue(typedValue(root, guide), writer.FormatJSON, false)
	if err != nil {
		return nil, fmt.Errorf("writing source tree: %w", err)
	}
	return out, nil
}

// typedValue converts n like parser.NodeValue, reading a scalar as its text
// when guide holds the same text as a string.
func typedValue(n, guide parsenode.Node) any {
	switch n.Kind() {
	case parsenode.KindMapping:
		m := parser.NewOrderedMap[any]()
		for k, v := range n.Entries() {
			g, _ := guide.Get(k)
			m.Set(k, typedValue(v, g))
		}
		return m
	case parsenode.KindSequence:
		list := make([]any, 0, n.Len())
		for i, item := range n.Items() {
			g, _ := guide.Index(i)
			list = append(list, typedValue(item, g))
		}
		return list
	}
	text, ok := n.Scalar()
	if ok && n.Tag() != parsenode.TagString && guide.Tag() == parsenode.TagString {
		if written, _ := guide.Scalar(); written == text {
			return text
		}
	}
	return parser.NodeValue(n)
}

// OutputLineDiff prints the lines removed from want with "-" and the lines
// added in got with "+".
func OutputLineDiff(w io.Writer, want, got string, useColor bool) {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	removed := cliutil.Color(useColor, color.FgRed)
	added := cliutil.Color(useColor, color.FgGreen)

	Writef(w, "--- source\n+++ output\n")
	for _, d := range diffs {
		var prefix string
		var c *color.Color
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, c = "-", removed
		case diffpatch.DiffInsert:
			prefix, c = "+", added
		default:
			continue
		}
		for _, line := range strings.SplitAfter(strings.TrimSuffix(d.Text, "\n"), "\n") {
			Writef(w, "%s\n", c.Sprint(prefix+strings.TrimSuffix(line, "\n")))
		}
	}
}
