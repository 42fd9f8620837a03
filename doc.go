// Package oasdoc reads and writes OpenAPI Specification (OAS) documents.
//
// oasdoc loads OAS 2.0 (Swagger) through OAS 3.2.0 documents, in YAML or
// JSON, into one typed object model, and writes that model back out as JSON
// or YAML. References are kept as lazy placeholders that resolve on demand,
// so cyclic schemas load without special handling.
//
// # Overview
//
// The library consists of the following packages:
//
//   - parsenode: a read-only YAML/JSON node tree with source positions
//   - parser: the typed model and the version-aware reader
//   - writer: structured JSON/YAML writers and the document serializer
//   - typemap: the mapping from Go primitive types to OpenAPI schemas
//   - oaserrors: structured error types usable with errors.Is and errors.As
//
// Supported versions:
//   - OAS 2.0 (Swagger): https://spec.openapis.org/oas/v2.0.html
//   - OAS 3.0.x: https://spec.openapis.org/oas/v3.0.4.html
//   - OAS 3.1.x: https://spec.openapis.org/oas/v3.1.1.html
//   - OAS 3.2.0: https://spec.openapis.org/oas/v3.2.0.html
//
// # Installation
//
//	go get github.com/erraggy/oasdoc
//
// # Quick Start
//
// Read a document and report what the reader noticed:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//		parser.WithUnknownFieldPolicy(parser.UnknownFieldsCollect),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("OAS %s, %d paths\n", result.Version, result.Stats.PathCount)
//	for _, d := range result.Diagnostics {
//		fmt.Println(d)
//	}
//
// Follow a reference:
//
//	pet, _ := result.Document.Components.Schemas.Get("Cat")
//	target, err := pet.AllOf[0].Resolve()
//	if errors.Is(err, oaserrors.ErrCircularReference) {
//		// the chain never reaches a concrete schema
//	}
//
// Write it back out:
//
//	out, err := writer.Marshal(result.Document, writer.FormatYAML, writer.Settings{
//		InlineLocalReferences: true,
//	})
//
// # Diagnostics
//
// Problems the reader can work around (unknown fields, malformed scalars,
// fields next to a $ref, numbers clamped to range) are collected as
// diagnostics on the result instead of failing the load. A node with the
// wrong shape for its position fails the load with an
// oaserrors.StructuralError that carries the JSON pointer and source line.
//
// # Security Considerations
//
//   - External file references are restricted to the base directory and its
//     subdirectories
//   - HTTP(S) references are only followed when enabled with
//     parser.WithResolveHTTPRefs
//   - The number of external documents per load is limited
//     (parser.MaxCachedDocuments by default)
//   - Output files written by the CLI are created with permissions 0600
//
// # Command-Line Interface
//
//	# Report structure and diagnostics
//	oasdoc parse --unknown-fields openapi.yaml
//
//	# Write canonical JSON
//	oasdoc write -f json openapi.yaml
//
//	# Check that a document survives a read/write cycle
//	oasdoc roundtrip swagger.yaml
//
//	# Serve the reader and writer over MCP
//	oasdoc mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/oasdoc/cmd/oasdoc@latest
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package oasdoc
