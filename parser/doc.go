// Package parser reads OpenAPI Specification documents into a typed model.
//
// The parser supports OAS 2.0 through OAS 3.2.0 in YAML and JSON formats. It
// walks the parse tree with per-version field dispatch tables, so each
// version's field set lives in one table and nothing branches on the version
// while loading. Documents can come from local files, http(s) URLs, readers
// or byte slices.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//		parser.WithUnknownFieldPolicy(parser.UnknownFieldsCollect),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, d := range result.Diagnostics {
//		fmt.Println(d)
//	}
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	result1, _ := p.Parse("api1.yaml")
//	result2, _ := p.Parse("https://example.com/api2.yaml")
//
// # References
//
// A $ref never gets resolved during the walk. Every referenceable entity
// (Schema, Parameter, Response, ...) carries a Ref field; when it is set the
// entity is a placeholder and its other fields are empty. Call Resolve on the
// entity to get the target:
//
//	pet, _ := result.Document.Components.Schemas.Get("Pet")
//	pet, err = pet.Resolve()
//
// Resolution is lazy and cached on the reference, so documents with cyclic
// schemas parse without recursion and a cycle costs nothing until it is
// followed. A chain of references that loops back on itself fails with an
// error matching oaserrors.ErrCircularReference.
//
// External references load their document through a Loader, at most once per
// location per DocumentCache. File references are confined to the root
// document's directory; http(s) references require WithResolveHTTPRefs.
// Use Document.ResolveAll to resolve everything up front.
//
// # Errors and Diagnostics
//
// A node with the wrong shape (a list where a Schema belongs) or a missing
// reference target is a hard error. Problems confined to one field are
// recorded as diagnostics on the ParseResult and loading continues:
//   - text that is not a valid number, integer or boolean
//   - numbers beyond the float64 or int range, clamped to the nearest bound
//   - unknown fields, with UnknownFieldsCollect
//   - fields next to a $ref, with RefSiblingsDiagnose
//
// # Extensions
//
// Fields starting with "x-" are kept on every entity in Extensions, in
// source order, with their values as nil, bool, int64, float64, string,
// []any or *OrderedMap[any].
//
// # Related Packages
//
//   - [github.com/erraggy/oasdoc/writer] - Write a Document back as JSON or YAML
//   - [github.com/erraggy/oasdoc/parsenode] - The parse tree view the loader walks
//   - [github.com/erraggy/oasdoc/typemap] - Schemas for Go primitive types
package parser
