package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erraggy/oasdoc/parser"
	"github.com/erraggy/oasdoc/writer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type writeInput struct {
	Spec           specInput `json:"spec"                      jsonschema:"The OpenAPI document to write"`
	Format         string    `json:"format,omitempty"          jsonschema:"Output format: json or yaml (default: the source format)"`
	Terse          *bool     `json:"terse,omitempty"           jsonschema:"Compact output without newlines or indentation (default from OASDOC_MCP_WRITE_TERSE)"`
	InlineLocal    bool      `json:"inline_local,omitempty"    jsonschema:"Replace local $refs with their targets"`
	InlineExternal bool      `json:"inline_external,omitempty" jsonschema:"Replace $refs into other documents with their targets"`
	RefSiblings    string    `json:"ref_siblings,omitempty"    jsonschema:"Fields next to $ref: ignore, diagnose or error"`
	Output         string    `json:"output,omitempty"          jsonschema:"File path to write the document to. If omitted the document is returned inline."`
}

type writeOutput struct {
	Format          string `json:"format"`
	Bytes           int    `json:"bytes"`
	DiagnosticCount int    `json:"diagnostic_count"`
	WrittenTo       string `json:"written_to,omitempty"`
	Document        string `json:"document,omitempty"`
}

func handleWrite(_ context.Context, _ *mcp.CallToolRequest, input writeInput) (*mcp.CallToolResult, writeOutput, error) {
	result, err := input.Spec.resolve(defaultReadOptions(nil, input.RefSiblings))
	if err != nil {
		return errResult(err), writeOutput{}, nil
	}

	format, err := writeFormat(input.Format, result.SourceFormat)
	if err != nil {
		return errResult(err), writeOutput{}, nil
	}
	terse := cfg.WriteTerse
	if input.Terse != nil {
		terse = *input.Terse
	}

	data, err := writer.Marshal(result.Document, format, writer.Settings{
		Terse:                    terse,
		InlineLocalReferences:    input.InlineLocal,
		InlineExternalReferences: input.InlineExternal,
	})
	if err != nil {
		return errResult(err), writeOutput{}, nil
	}

	output := writeOutput{
		Format:          string(format),
		Bytes:           len(data),
		DiagnosticCount: len(result.Diagnostics),
	}
	if input.Output != "" {
		if err := writeFile(input.Output, data); err != nil {
			return errResult(err), writeOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}

	res, err := jsonResult(output)
	if err != nil {
		return errResult(err), writeOutput{}, nil
	}
	return res, output, nil
}

// writeFormat picks the requested format, or the source's when none was given.
func writeFormat(requested string, source parser.SourceFormat) (writer.Format, error) {
	if requested != "" {
		return writer.ParseFormat(requested)
	}
	if source == parser.SourceFormatYAML {
		return writer.FormatYAML, nil
	}
	return writer.FormatJSON, nil
}

// writeFile writes data to path, refusing to follow a symlink at path.
func writeFile(path string, data []byte) error {
	cleaned := filepath.Clean(path)
	info, err := os.Lstat(cleaned)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		return fmt.Errorf("refusing to write to symlink: %s", cleaned)
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("checking output path: %w", err)
	}
	if err := os.WriteFile(cleaned, data, 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
