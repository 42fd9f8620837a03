// Package writer renders parsed OpenAPI documents as JSON or YAML.
//
// Output is produced through the Writer interface, a small set of nesting
// calls (StartObject, WritePropertyName, WriteValue, EndObject, ...) that a
// sink turns into text or values. Three sinks are provided:
//
//   - JSONWriter streams pretty or terse JSON
//   - YAMLWriter streams block-style YAML
//   - ValueBuilder builds ordered maps and slices in memory
//
// Every sink validates the call sequence and fails with an
// oaserrors.UnbalancedWriteError instead of producing malformed output.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := writer.Marshal(result.Document, writer.FormatJSON, writer.Settings{
//		InlineLocalReferences: true,
//	})
//
// # References
//
// With inlining disabled a reference is written as {"$ref": "..."}, plus
// summary and description where OAS 3.1 allows them. With inlining enabled
// the resolved target is written instead; a target already being written
// higher up the tree falls back to the reference form, so cyclic schemas
// are inlined at most once along any path.
package writer
