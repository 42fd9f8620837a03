package mcpserver

import (
	"context"

	"github.com/erraggy/oasdoc/parser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Spec          specInput `json:"spec"                     jsonschema:"The OpenAPI document to read"`
	ResolveRefs   bool      `json:"resolve_refs,omitempty"   jsonschema:"Resolve every $ref and report the ones that fail"`
	UnknownFields *bool     `json:"unknown_fields,omitempty" jsonschema:"Report unrecognized fields as diagnostics (default from OASDOC_MCP_UNKNOWN_FIELDS)"`
	RefSiblings   string    `json:"ref_siblings,omitempty"   jsonschema:"Fields next to $ref: ignore, diagnose or error"`
	Offset        int       `json:"offset,omitempty"         jsonschema:"Skip this many diagnostics"`
	Limit         int       `json:"limit,omitempty"          jsonschema:"Return at most this many diagnostics"`
}

type parseSummaryServer struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type diagnosticOutput struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
}

type parseOutput struct {
	Version         string               `json:"version"`
	Title           string               `json:"title"`
	Description     string               `json:"description,omitempty"`
	Format          string               `json:"format"`
	PathCount       int                  `json:"path_count"`
	OperationCount  int                  `json:"operation_count"`
	SchemaCount     int                  `json:"schema_count"`
	ReferenceCount  int                  `json:"reference_count"`
	Servers         []parseSummaryServer `json:"servers,omitempty"`
	Tags            []string             `json:"tags,omitempty"`
	DiagnosticCount int                  `json:"diagnostic_count"`
	Returned        int                  `json:"returned"`
	Diagnostics     []diagnosticOutput   `json:"diagnostics,omitempty"`
	ResolveErrors   []string             `json:"resolve_errors,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve(defaultReadOptions(input.UnknownFields, input.RefSiblings))
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	doc := result.Document
	output := parseOutput{
		Version:         result.Version,
		Format:          string(result.SourceFormat),
		PathCount:       result.Stats.PathCount,
		OperationCount:  result.Stats.OperationCount,
		SchemaCount:     result.Stats.SchemaCount,
		ReferenceCount:  result.Stats.ReferenceCount,
		DiagnosticCount: len(result.Diagnostics),
	}
	if doc.Info != nil {
		output.Title = doc.Info.Title
		output.Description = doc.Info.Description
	}
	for _, tag := range doc.Tags {
		if tag != nil {
			output.Tags = append(output.Tags, tag.Name)
		}
	}
	for _, s := range doc.Servers {
		if s != nil {
			output.Servers = append(output.Servers, parseSummaryServer{URL: s.URL, Description: s.Description})
		}
	}

	page := paginate(result.Diagnostics, input.Offset, input.Limit)
	output.Diagnostics = makeSlice[diagnosticOutput](len(page))
	for _, d := range page {
		output.Diagnostics = append(output.Diagnostics, diagnosticOutput{
			Severity: d.Severity.String(),
			Path:     d.Path,
			Message:  d.Message,
			Field:    d.Field,
			File:     d.File,
			Line:     d.Line,
			Column:   d.Column,
		})
	}
	output.Returned = len(output.Diagnostics)

	if input.ResolveRefs {
		output.ResolveErrors = resolveErrors(doc)
	}

	res, err := jsonResult(output)
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}
	return res, output, nil
}

// resolveErrors resolves every reference of doc and returns one sanitized
// message per failure.
func resolveErrors(doc *parser.Document) []string {
	err := doc.ResolveAll()
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{sanitizeError(err)}
	}
	errs := joined.Unwrap()
	msgs := makeSlice[string](len(errs))
	for _, e := range errs {
		msgs = append(msgs, sanitizeError(e))
	}
	return msgs
}
