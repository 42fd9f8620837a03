package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/oasdoc/parser"
	"github.com/erraggy/oasdoc/writer"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// RenderSummaryTable renders a table of results.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
// In normal mode, a fixed-width table with title-cased headers is rendered.
func RenderSummaryTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	labels := make([]string, len(headers))
	widths := make([]int, len(headers))
	for i, h := range headers {
		labels[i] = title(h)
		widths[i] = len(labels[i])
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if !quiet {
		renderRow(w, labels, widths)
	}
	for _, row := range rows {
		if quiet {
			Writef(w, "%s\n", strings.Join(row, "\t"))
			continue
		}
		renderRow(w, row, widths)
	}
}

func renderRow(w io.Writer, cells []string, widths []int) {
	var sb strings.Builder
	for i, cell := range cells {
		if i > 0 {
			sb.WriteString("  ")
		}
		if i < len(widths) && i < len(cells)-1 {
			_, _ = fmt.Fprintf(&sb, "%-*s", widths[i], cell)
		} else {
			sb.WriteString(cell)
		}
	}
	Writef(w, "%s\n", sb.String())
}

// RenderSummaryStructured renders table data as a JSON or YAML list of
// records keyed by the snake_cased headers, in header order.
func RenderSummaryStructured(w io.Writer, headers []string, rows [][]string, format string) error {
	records := make([]any, 0, len(rows))
	for _, row := range rows {
		rec := parser.NewOrderedMap[any]()
		for i, h := range headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			rec.Set(strings.ReplaceAll(strings.ToLower(h), " ", "_"), val)
		}
		records = append(records, rec)
	}
	return RenderDetail(w, records, format)
}

// RenderDetail renders a value in the specified format (JSON or YAML).
func RenderDetail(w io.Writer, value any, format string) error {
	f, err := writer.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	data, err := writer.MarshalValue(value, f, false)
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(string(data), "\n")); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
