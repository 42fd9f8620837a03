package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/erraggy/oasdoc/typemap"
)

// TypeMapFlags contains flags for the typemap command
type TypeMapFlags struct {
	Format string
	Quiet  bool
}

// SetupTypeMapFlags creates and configures a FlagSet for the typemap command.
// Returns the FlagSet and a TypeMapFlags struct with bound flag variables.
func SetupTypeMapFlags() (*flag.FlagSet, *TypeMapFlags) {
	fs := flag.NewFlagSet("typemap", flag.ContinueOnError)
	flags := &TypeMapFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: tab-separated rows without headers")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: tab-separated rows without headers")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdoc typemap [flags]\n\n")
		Writef(output, "List the schema type and format each Go primitive maps to.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdoc typemap\n")
		Writef(output, "  oasdoc typemap --format yaml\n")
		Writef(output, "  oasdoc typemap -q | grep int64\n")
	}

	return fs, flags
}

// typeMapHeaders are the columns of the typemap table.
var typeMapHeaders = []string{"go type", "type", "format", "nullable"}

// HandleTypeMap executes the typemap command
func HandleTypeMap(args []string) error {
	fs, flags := SetupTypeMapFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("typemap command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	entries := typemap.Table()
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		typ, _ := e.Schema.Type.(string)
		rows = append(rows, []string{e.GoType, typ, e.Schema.Format, strconv.FormatBool(e.Schema.Nullable)})
	}

	if flags.Format != FormatText {
		return RenderSummaryStructured(os.Stdout, typeMapHeaders, rows, flags.Format)
	}
	RenderSummaryTable(os.Stdout, typeMapHeaders, rows, flags.Quiet)
	return nil
}
