// Package commands provides CLI command handlers for oasdoc.
package commands

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/erraggy/oasdoc"
	"github.com/erraggy/oasdoc/internal/cliutil"
	"github.com/erraggy/oasdoc/internal/issues"
	"github.com/erraggy/oasdoc/parser"
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// ReadFlags holds the reader settings shared by every command that loads a
// document.
type ReadFlags struct {
	Version         string
	UnknownFields   bool
	RefSiblings     string
	ResolveHTTPRefs bool
	Insecure        bool
	Verbose         bool
}

// register binds the reader flags to fs.
func (f *ReadFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.Version, "oas-version", "", "force the version family (2.0, 3.0, 3.1, 3.2) instead of detecting it")
	fs.BoolVar(&f.UnknownFields, "unknown-fields", false, "report unrecognized fields as warnings")
	fs.StringVar(&f.RefSiblings, "ref-siblings", "ignore", "fields next to $ref: ignore, diagnose or error")
	fs.BoolVar(&f.ResolveHTTPRefs, "resolve-http-refs", false, "resolve HTTP/HTTPS $ref URLs")
	fs.BoolVar(&f.Insecure, "insecure", false, "disable TLS certificate verification for HTTPS refs")
	fs.BoolVar(&f.Verbose, "verbose", false, "log reader activity to stderr")
}

// options converts the flags into parser options.
func (f *ReadFlags) options() ([]parser.Option, error) {
	var opts []parser.Option
	if f.Version != "" {
		v, ok := parser.ParseSpecVersion(f.Version)
		if !ok {
			return nil, fmt.Errorf("invalid oas-version '%s'. Valid versions: 2.0, 3.0, 3.1, 3.2", f.Version)
		}
		opts = append(opts, parser.WithVersion(v))
	}
	if f.UnknownFields {
		opts = append(opts, parser.WithUnknownFieldPolicy(parser.UnknownFieldsCollect))
	}
	policy, err := ParseRefSiblingPolicy(f.RefSiblings)
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		parser.WithRefSiblingPolicy(policy),
		parser.WithResolveHTTPRefs(f.ResolveHTTPRefs),
		parser.WithInsecureSkipVerify(f.Insecure),
	)
	if f.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, parser.WithLogger(parser.NewSlogAdapter(slog.New(handler))))
	}
	return opts, nil
}

// ParseRefSiblingPolicy maps a ref-siblings flag value to the parser policy.
func ParseRefSiblingPolicy(value string) (parser.RefSiblingPolicy, error) {
	switch value {
	case "", "ignore":
		return parser.RefSiblingsIgnore, nil
	case "diagnose":
		return parser.RefSiblingsDiagnose, nil
	case "error":
		return parser.RefSiblingsError, nil
	default:
		return parser.RefSiblingsIgnore, fmt.Errorf("invalid ref-siblings '%s'. Valid policies: ignore, diagnose, error", value)
	}
}

// readSpec loads specPath, or stdin when specPath is StdinFilePath.
func readSpec(specPath string, f *ReadFlags) (*parser.ParseResult, error) {
	opts, err := f.options()
	if err != nil {
		return nil, err
	}
	if specPath == StdinFilePath {
		result, err := parser.ParseWithOptions(append(opts, parser.WithReader(os.Stdin))...)
		if err != nil {
			return nil, fmt.Errorf("parsing stdin: %w", err)
		}
		return result, nil
	}
	result, err := parser.ParseWithOptions(append(opts, parser.WithFilePath(specPath))...)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}
	return result, nil
}

// title capitalizes each word of s for report labels.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// OutputSpecHeader outputs the common specification header.
// This includes oasdoc version, specification path, and OAS version.
func OutputSpecHeader(w io.Writer, specPath, version string) {
	Writef(w, "oasdoc version: %s\n", oasdoc.Version())
	Writef(w, "Specification: %s\n", FormatSpecPath(specPath))
	Writef(w, "OAS Version: %s\n", version)
}

// OutputSpecStats outputs the common specification statistics.
// This includes source size, entity counts, and load time.
func OutputSpecStats(w io.Writer, sourceSize int64, stats parser.DocumentStats, loadTime time.Duration) {
	Writef(w, "Source Size: %s\n", parser.FormatBytes(sourceSize))
	counts := []struct {
		kind  string
		count int
	}{
		{"paths", stats.PathCount},
		{"operations", stats.OperationCount},
		{"schemas", stats.SchemaCount},
		{"references", stats.ReferenceCount},
	}
	for _, c := range counts {
		Writef(w, "%s: %d\n", title(c.kind), c.count)
	}
	Writef(w, "Load Time: %v\n", loadTime)
}

// colorEnabled reports whether f is a terminal that should get colored output.
func colorEnabled(f *os.File) bool {
	return cliutil.IsTerminal(f)
}

// severityColor returns the color diagnostics of sev are printed in.
func severityColor(sev parser.Severity, enabled bool) *color.Color {
	switch sev {
	case parser.SeverityError, parser.SeverityCritical:
		return cliutil.Color(enabled, color.FgRed, color.Bold)
	case parser.SeverityWarning:
		return cliutil.Color(enabled, color.FgYellow)
	default:
		return cliutil.Color(enabled, color.FgCyan)
	}
}

// OutputDiagnostics prints diagnostics followed by a count per severity.
// Colors are used only when useColor is set.
func OutputDiagnostics(w io.Writer, diags []parser.Diagnostic, useColor bool) {
	if len(diags) == 0 {
		return
	}
	Writef(w, "Diagnostics (%d):\n", len(diags))
	for _, d := range diags {
		Writef(w, "  %s\n", severityColor(d.Severity, useColor).Sprint(d.String()))
	}
	counts := issues.Count(diags)
	for _, sev := range []parser.Severity{parser.SeverityCritical, parser.SeverityError, parser.SeverityWarning, parser.SeverityInfo} {
		if n := counts[sev]; n > 0 {
			Writef(w, "%s: %d\n", title(sev.String()), n)
		}
	}
	Writef(w, "\n")
}

// errorCount returns how many diagnostics are errors or worse.
func errorCount(diags []parser.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Severity.AtLeast(parser.SeverityError) {
			n++
		}
	}
	return n
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	// Existing files are overwritten with a warning.
	if _, err := os.Stat(outputPath); err == nil {
		Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// writeOutputFile writes data to path with restrictive permissions after the
// path checks above.
func writeOutputFile(path string, data []byte, inputs []string) error {
	if err := ValidateOutputPath(path, inputs); err != nil {
		return err
	}
	cleaned := filepath.Clean(path)
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, data, 0o600); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
