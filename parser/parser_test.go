package parser

import (
	"errors"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdoc/oaserrors"
)

func parseFile(t *testing.T, path string, opts ...Option) *ParseResult {
	t.Helper()
	result, err := ParseWithOptions(append([]Option{WithFilePath(path)}, opts...)...)
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	return result
}

func parseString(t *testing.T, src string, opts ...Option) *ParseResult {
	t.Helper()
	result, err := ParseWithOptions(append([]Option{WithBytes([]byte(src))}, opts...)...)
	require.NoError(t, err)
	return result
}

func TestParseVersions(t *testing.T) {
	tests := []struct {
		file    string
		version string
		oas     OASVersion
		family  SpecVersion
		format  SourceFormat
	}{
		{"testdata/petstore-2.0.yaml", "2.0", OASVersion20, SpecVersion20, SourceFormatYAML},
		{"testdata/petstore-3.0.json", "3.0.3", OASVersion303, SpecVersion30, SourceFormatJSON},
		{"testdata/tree-3.1.yaml", "3.1.0", OASVersion310, SpecVersion31, SourceFormatYAML},
		{"testdata/v3.2.yaml", "3.2.0", OASVersion320, SpecVersion32, SourceFormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result := parseFile(t, tt.file)
			assert.Equal(t, tt.version, result.Version)
			assert.Equal(t, tt.oas, result.OASVersion)
			assert.Equal(t, tt.oas, result.Document.OASVersion)
			assert.Equal(t, tt.family, result.Document.SpecVersion())
			assert.Equal(t, tt.format, result.SourceFormat)
			assert.Equal(t, tt.file, result.SourcePath)
			assert.Positive(t, result.SourceSize)
			assert.Empty(t, result.Diagnostics)
		})
	}
}

func TestParseVersionDetection(t *testing.T) {
	t.Run("missing version field", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("info:\n  title: x\n")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrParse))
		assert.Contains(t, err.Error(), "unable to detect OpenAPI version")
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte("openapi: 4.0.0\n")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported OpenAPI version "4.0.0"`)
	})

	t.Run("forced version", func(t *testing.T) {
		result := parseString(t, "info:\n  title: fragment\n", WithVersion(SpecVersion31))
		assert.Equal(t, Unknown, result.OASVersion)
		assert.Equal(t, SpecVersion31, result.Document.SpecVersion())
		assert.Equal(t, "fragment", result.Document.Info.Title)
	})

	t.Run("future patch maps to closest", func(t *testing.T) {
		result := parseString(t, "openapi: 3.1.9\ninfo: {title: x, version: '1'}\n")
		assert.Equal(t, OASVersion312, result.OASVersion)
		assert.Equal(t, "3.1.9", result.Version)
	})
}

func TestParseOAS2(t *testing.T) {
	result := parseFile(t, "testdata/petstore-2.0.yaml")
	doc := result.Document

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "petstore.example.com", doc.Host)
	assert.Equal(t, "/v1", doc.BasePath)
	assert.Equal(t, []string{"https"}, doc.Schemes)
	audience, ok := doc.Info.Extension("x-audience")
	require.True(t, ok)
	assert.Equal(t, "public", audience)

	pets, ok := doc.Paths.Items.Get("/pets")
	require.True(t, ok)
	require.NotNil(t, pets.Get)
	assert.Equal(t, "listPets", pets.Get.OperationID)
	require.Len(t, pets.Get.Parameters, 2)

	limit, err := pets.Get.Parameters[0].Resolve()
	require.NoError(t, err)
	assert.Equal(t, "limit", limit.Name)
	assert.Equal(t, "integer", limit.Type)
	require.NotNil(t, limit.Maximum)
	assert.Equal(t, 100.0, *limit.Maximum)
	assert.True(t, limit.ExclusiveMaximum)
	declared, _ := doc.Parameters.Get("limit")
	assert.Same(t, declared, limit, "reference should resolve to the declared entity")

	tags := pets.Get.Parameters[1]
	assert.Equal(t, "csv", tags.CollectionFormat)
	require.NotNil(t, tags.Items)
	assert.Equal(t, "string", tags.Items.Type)

	ok200, ok := pets.Get.Responses.Codes.Get("200")
	require.True(t, ok)
	require.NotNil(t, ok200.Schema.Items.Ref)
	assert.Equal(t, "#/definitions/Pet", ok200.Schema.Items.Ref.Raw)
	rate, _ := ok200.Headers.Get("X-Rate-Limit")
	assert.Equal(t, "int32", rate.Format)

	errResp, err := pets.Get.Responses.Default.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "Unexpected error", errResp.Description)

	body := pets.Post.Parameters[0]
	assert.Equal(t, "body", body.In)
	assert.True(t, body.Required)
	require.Len(t, pets.Post.Security, 1)
	scopes, ok := pets.Post.Security[0].Get("api_key")
	require.True(t, ok)
	assert.Empty(t, scopes)

	pet, _ := doc.Definitions.Get("Pet")
	require.NotNil(t, pet.Discriminator)
	assert.Equal(t, "petType", pet.Discriminator.PropertyName)
	require.NotNil(t, pet.AdditionalProperties)
	require.NotNil(t, pet.AdditionalProperties.Boolean)
	assert.False(t, *pet.AdditionalProperties.Boolean)
	assert.Equal(t, []string{"name", "petType"}, pet.Required)
	tag, _ := pet.Properties.Get("tag")
	nullable, _ := tag.Extension("x-nullable")
	assert.Equal(t, true, nullable)

	oauth, _ := doc.SecurityDefinitions.Get("oauth")
	assert.Equal(t, "implicit", oauth.Flow)
	desc, _ := oauth.Scopes.Get("write:pets")
	assert.Equal(t, "modify pets", desc)

	assert.Equal(t, DocumentStats{PathCount: 1, OperationCount: 2, SchemaCount: 12, ReferenceCount: 6}, result.Stats)
}

func TestParseOAS3(t *testing.T) {
	doc := parseFile(t, "testdata/petstore-3.0.json").Document

	require.Len(t, doc.Servers, 1)
	env, _ := doc.Servers[0].Variables.Get("env")
	assert.Equal(t, "api", env.Default)
	assert.Equal(t, []string{"api", "staging"}, env.Enum)

	item, ok := doc.Paths.Items.Get("/pets/{petId}")
	require.True(t, ok)
	require.Len(t, item.Parameters, 1)
	assert.Equal(t, "path", item.Parameters[0].In)

	resp, _ := item.Get.Responses.Codes.Get("200")
	media, _ := resp.Content.Get("application/json")
	schema, err := media.Schema.Resolve()
	require.NoError(t, err)
	declared, _ := doc.Components.Schemas.Get("Pet")
	assert.Same(t, declared, schema)
	assert.Equal(t, "kind", schema.Discriminator.PropertyName)
	mapping, _ := schema.Discriminator.Mapping.Get("cat")
	assert.Equal(t, "#/components/schemas/Cat", mapping)

	id, _ := schema.Properties.Get("id")
	assert.Equal(t, true, id.ExclusiveMinimum)
	name, _ := schema.Properties.Get("name")
	assert.True(t, name.Nullable)

	cat, _ := media.Examples.Get("cat")
	cat, err = cat.Resolve()
	require.NoError(t, err)
	value, ok := cat.Value.(*OrderedMap[any])
	require.True(t, ok)
	assert.Equal(t, []string{"id", "name", "kind"}, value.Keys())
	idValue, _ := value.Get("id")
	assert.Equal(t, int64(1), idValue)

	link, _ := resp.Links.Get("owner")
	assert.Equal(t, "getOwner", link.OperationID)

	errResp, _ := item.Get.Responses.Codes.Get("4XX")
	errResp, err = errResp.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "error", errResp.Description)

	body, err := item.Put.RequestBody.Resolve()
	require.NoError(t, err)
	assert.True(t, body.Required)
	cb, _ := item.Put.Callbacks.Get("onUpdate")
	expr, ok := cb.Expressions.Get("{$request.body#/callbackUrl}")
	require.True(t, ok)
	assert.NotNil(t, expr.Post)

	bearer, _ := doc.Components.SecuritySchemes.Get("bearer")
	assert.Equal(t, "JWT", bearer.BearerFormat)
	require.Len(t, doc.Security, 2)
	assert.Zero(t, doc.Security[1].Len())
}

func TestParseOAS31(t *testing.T) {
	doc := parseFile(t, "testdata/tree-3.1.yaml").Document

	assert.Equal(t, "Cyclic schemas", doc.Info.Summary)
	assert.Equal(t, "Apache-2.0", doc.Info.License.Identifier)
	assert.Equal(t, "https://spec.openapis.org/oas/3.1/dialect/base", doc.JSONSchemaDialect)
	require.Equal(t, 1, doc.Webhooks.Len())
	require.Equal(t, 1, doc.Components.PathItems.Len())
	assert.Zero(t, doc.Paths.Items.Len())

	node, _ := doc.Components.Schemas.Get("Node")
	value, _ := node.Properties.Get("value")
	assert.Equal(t, []string{"string", "null"}, value.Type)

	forest, _ := doc.Components.Schemas.Get("Forest")
	assert.Equal(t, 10.0, forest.ExclusiveMaximum)
	require.Len(t, forest.PrefixItems, 2)
	assert.True(t, *forest.PrefixItems[0].Boolean)
	assert.False(t, *forest.PrefixItems[1].Boolean)

	anything, _ := doc.Components.Schemas.Get("Anything")
	require.NotNil(t, anything.Boolean)
	assert.True(t, *anything.Boolean)
}

func TestParseOAS32(t *testing.T) {
	doc := parseFile(t, "testdata/v3.2.yaml").Document

	assert.Equal(t, "https://example.com/api/openapi.yaml", doc.Self)
	require.Len(t, doc.Tags, 2)
	assert.Equal(t, "Search", doc.Tags[0].Summary)
	assert.Equal(t, "nav", doc.Tags[0].Kind)
	assert.Equal(t, "search", doc.Tags[1].Parent)

	search, _ := doc.Paths.Items.Get("/search")
	require.NotNil(t, search.Query)
	assert.Equal(t, "search", search.Query.OperationID)
	purge, ok := search.AdditionalOperations.Get("PURGE")
	require.True(t, ok)
	assert.Equal(t, "purge", purge.OperationID)
	assert.Equal(t, []string{"query", "PURGE"}, search.Operations().Keys())

	require.Equal(t, 1, doc.Components.MediaTypes.Len())
	device, _ := doc.Components.SecuritySchemes.Get("device")
	assert.True(t, device.Deprecated)
	require.NotNil(t, device.Flows.DeviceAuthorization)
	assert.Equal(t, "https://example.com/device", device.Flows.DeviceAuthorization.DeviceAuthorizationURL)
}

func TestVersionSpecificFields(t *testing.T) {
	// 3.2-only fields are unknown to 3.0 tables.
	src := `openapi: 3.0.3
info: {title: x, version: "1"}
tags:
  - name: a
    summary: only in 3.2
paths:
  /a:
    query:
      responses: {}
`
	result := parseString(t, src, WithUnknownFieldPolicy(UnknownFieldsCollect))
	assert.Empty(t, result.Document.Tags[0].Summary)
	item, _ := result.Document.Paths.Items.Get("/a")
	assert.Nil(t, item.Query)

	var paths []string
	for _, d := range result.Diagnostics {
		paths = append(paths, d.Path)
	}
	assert.ElementsMatch(t, []string{"#/tags/0/summary", "#/paths/~1a/query"}, paths)
}

func TestCycleSafety(t *testing.T) {
	doc := parseFile(t, "testdata/tree-3.1.yaml").Document
	node, _ := doc.Components.Schemas.Get("Node")

	parent, _ := node.Properties.Get("parent")
	resolved, err := parent.Resolve()
	require.NoError(t, err)
	assert.Same(t, node, resolved)

	children, _ := node.Properties.Get("children")
	child, err := children.Items.Resolve()
	require.NoError(t, err)
	assert.Same(t, node, child)

	again, err := parent.Resolve()
	require.NoError(t, err)
	assert.Same(t, resolved, again, "resolution is cached")

	alias, _ := doc.Components.Schemas.Get("Alias")
	assert.Empty(t, alias.Description, "siblings of $ref are ignored by default")
	target, err := alias.Resolve()
	require.NoError(t, err)
	assert.Same(t, node, target)

	loop, _ := doc.Components.Schemas.Get("Loop")
	_, err = loop.Resolve()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrCircularReference))
	assert.True(t, errors.Is(err, oaserrors.ErrUnresolvedReference))
}

func TestForwardReference(t *testing.T) {
	src := `openapi: 3.0.0
info: {title: x, version: "1"}
paths:
  /a:
    get:
      responses:
        "200":
          $ref: "#/components/responses/Later"
components:
  responses:
    Later:
      description: declared after use
`
	doc := parseString(t, src).Document
	item, _ := doc.Paths.Items.Get("/a")
	placeholder, _ := item.Get.Responses.Codes.Get("200")
	require.NotNil(t, placeholder.Ref)
	assert.Empty(t, placeholder.Description)

	resolved, err := placeholder.Resolve()
	require.NoError(t, err)
	declared, _ := doc.Components.Responses.Get("Later")
	assert.Same(t, declared, resolved)
}

func TestLazyTargetOutsideModel(t *testing.T) {
	src := `openapi: 3.0.0
info: {title: x, version: "1"}
paths: {}
x-shared:
  Name:
    type: string
    maxLength: 10
components:
  schemas:
    A:
      $ref: "#/x-shared/Name"
    B:
      $ref: "#/x-shared/Name"
`
	doc := parseString(t, src).Document
	a, _ := doc.Components.Schemas.Get("A")
	b, _ := doc.Components.Schemas.Get("B")
	ra, err := a.Resolve()
	require.NoError(t, err)
	rb, err := b.Resolve()
	require.NoError(t, err)
	assert.Same(t, ra, rb, "a lazily loaded target is registered and reused")
	assert.Equal(t, 10, *ra.MaxLength)
}

func TestUnresolvedReference(t *testing.T) {
	src := `openapi: 3.0.0
info: {title: x, version: "1"}
paths: {}
components:
  schemas:
    Broken:
      $ref: "#/components/schemas/Missing"
    WrongKind:
      $ref: "#/info"
    Param:
      $ref: "#/components/parameters/P"
  parameters:
    P:
      name: p
      in: query
`
	doc := parseString(t, src).Document

	broken, _ := doc.Components.Schemas.Get("Broken")
	_, brokenErr := broken.Resolve()
	require.Error(t, brokenErr)
	assert.True(t, errors.Is(brokenErr, oaserrors.ErrUnresolvedReference))
	assert.False(t, errors.Is(brokenErr, oaserrors.ErrCircularReference))
	var refErr *oaserrors.ReferenceError
	require.True(t, errors.As(brokenErr, &refErr))
	assert.Equal(t, "#/components/schemas/Missing", refErr.Ref)
	assert.Equal(t, "#/components/schemas/Broken", refErr.Path)

	param, _ := doc.Components.Schemas.Get("Param")
	_, paramErr := param.Resolve()
	require.Error(t, paramErr)
	assert.Contains(t, paramErr.Error(), "target is a Parameter, not a Schema")

	_, again := broken.Resolve()
	assert.Equal(t, brokenErr, again, "failures are cached too")

	err := doc.ResolveAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#/components/schemas/Missing")
	assert.Contains(t, err.Error(), "#/components/parameters/P")
}

func TestNumericClamping(t *testing.T) {
	src := `swagger: "2.0"
info: {title: x, version: "1"}
paths: {}
definitions:
  Big:
    type: number
    maximum: 1e400
    minimum: -1e400
    maxLength: 99999999999999999999
    minLength: -99999999999999999999
    maxItems: 10.0
    multipleOf: 0.5
`
	result := parseString(t, src)
	big, _ := result.Document.Definitions.Get("Big")

	assert.Equal(t, math.MaxFloat64, *big.Maximum)
	assert.Equal(t, -math.MaxFloat64, *big.Minimum)
	assert.Equal(t, math.MaxInt, *big.MaxLength)
	assert.Equal(t, math.MinInt, *big.MinLength)
	assert.Equal(t, 10, *big.MaxItems)
	assert.Equal(t, 0.5, *big.MultipleOf)

	require.Len(t, result.Diagnostics, 4)
	for _, d := range result.Diagnostics {
		assert.Equal(t, SeverityInfo, d.Severity)
		assert.Contains(t, d.Message, "clamped")
	}
	assert.Equal(t, "#/definitions/Big/maximum", result.Diagnostics[0].Path)
	assert.Equal(t, 7, result.Diagnostics[0].Line)
}

func TestMalformedScalars(t *testing.T) {
	src := `openapi: 3.0.0
info: {title: x, version: "1"}
paths: {}
components:
  schemas:
    Odd:
      maximum: lots
      maxLength: 1.5
      readOnly: sometimes
      description: still loaded
`
	result := parseString(t, src)
	odd, _ := result.Document.Components.Schemas.Get("Odd")
	assert.Nil(t, odd.Maximum)
	assert.Nil(t, odd.MaxLength)
	assert.False(t, odd.ReadOnly)
	assert.Equal(t, "still loaded", odd.Description)

	require.Len(t, result.Diagnostics, 3)
	for _, d := range result.Diagnostics {
		assert.Equal(t, SeverityWarning, d.Severity)
		assert.True(t, errors.Is(d.Err, oaserrors.ErrMalformedScalar))
	}
	var scalarErr *oaserrors.MalformedScalarError
	require.True(t, errors.As(result.Diagnostics[0].Err, &scalarErr))
	assert.Equal(t, "lots", scalarErr.Value)
	assert.Equal(t, "number", scalarErr.Type)
	assert.Equal(t, "#/components/schemas/Odd/maximum", scalarErr.Path)
}

func TestStructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		path     string
		expected string
	}{
		{
			name:     "list where a map belongs",
			src:      "openapi: 3.0.0\ninfo: {title: x, version: '1'}\npaths: {}\ncomponents:\n  schemas:\n    A:\n      properties: [a, b]\n",
			path:     "#/components/schemas/A/properties",
			expected: "map",
		},
		{
			name:     "scalar where a schema belongs",
			src:      "openapi: 3.0.0\ninfo: {title: x, version: '1'}\npaths: {}\ncomponents:\n  schemas:\n    A: 42\n",
			path:     "#/components/schemas/A",
			expected: "Schema",
		},
		{
			name:     "mapping where a scalar belongs",
			src:      "openapi: 3.0.0\ninfo:\n  title: {nested: true}\n  version: '1'\npaths: {}\n",
			path:     "#/info/title",
			expected: "scalar",
		},
		{
			name:     "boolean schema before 3.1",
			src:      "openapi: 3.0.0\ninfo: {title: x, version: '1'}\npaths: {}\ncomponents:\n  schemas:\n    A: true\n",
			path:     "#/components/schemas/A",
			expected: "Schema",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithOptions(WithBytes([]byte(tt.src)))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrStructural))
			var se *oaserrors.StructuralError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.path, se.Path)
			assert.Equal(t, tt.expected, se.Expected)
			assert.Positive(t, se.Line)
			assert.True(t, strings.HasPrefix(err.Error(), "parser: structural error at "+tt.path))
		})
	}
}

func TestUnknownFieldPolicy(t *testing.T) {
	src := `openapi: 3.0.0
info:
  title: x
  version: "1"
  colour: blue
paths: {}
futureField: 1
`
	ignored := parseString(t, src)
	assert.Empty(t, ignored.Diagnostics)
	assert.Equal(t, "x", ignored.Document.Info.Title)

	collected := parseString(t, src, WithUnknownFieldPolicy(UnknownFieldsCollect))
	require.Len(t, collected.Diagnostics, 2)
	assert.Equal(t, "#/info/colour", collected.Diagnostics[0].Path)
	assert.Equal(t, "colour", collected.Diagnostics[0].Field)
	assert.Equal(t, SeverityWarning, collected.Diagnostics[0].Severity)
	assert.Contains(t, collected.Diagnostics[0].Message, `unknown field "colour" in Info`)
	assert.Equal(t, "#/futureField", collected.Diagnostics[1].Path)
}

func TestRefSiblingPolicy(t *testing.T) {
	src := `openapi: 3.0.0
info: {title: x, version: "1"}
paths: {}
components:
  schemas:
    Base:
      type: string
    Derived:
      $ref: "#/components/schemas/Base"
      description: sibling
`
	t.Run("ignore", func(t *testing.T) {
		result := parseString(t, src)
		assert.Empty(t, result.Diagnostics)
	})

	t.Run("diagnose", func(t *testing.T) {
		result := parseString(t, src, WithRefSiblingPolicy(RefSiblingsDiagnose))
		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, "#/components/schemas/Derived/description", result.Diagnostics[0].Path)
		derived, _ := result.Document.Components.Schemas.Get("Derived")
		assert.Empty(t, derived.Description)
	})

	t.Run("error", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes([]byte(src)), WithRefSiblingPolicy(RefSiblingsError))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrStructural))
		assert.Contains(t, err.Error(), `field "description" next to $ref`)
	})
}

func TestReferenceObjectSummary(t *testing.T) {
	src := `openapi: 3.1.0
info: {title: x, version: "1"}
components:
  parameters:
    Limit:
      name: limit
      in: query
  schemas:
    S:
      $ref: "#/components/schemas/T"
      description: schema siblings are not kept
    T:
      type: string
paths:
  /a:
    get:
      parameters:
        - $ref: "#/components/parameters/Limit"
          summary: Page size
          description: Overrides the target description
`
	result := parseString(t, src, WithRefSiblingPolicy(RefSiblingsDiagnose))
	item, _ := result.Document.Paths.Items.Get("/a")
	ref := item.Get.Parameters[0].Ref
	require.NotNil(t, ref)
	assert.Equal(t, "Page size", ref.Summary)
	assert.Equal(t, "Overrides the target description", ref.Description)

	s, _ := result.Document.Components.Schemas.Get("S")
	assert.Empty(t, s.Ref.Description)
	require.Len(t, result.Diagnostics, 1, "only the schema sibling is reported")
}

func TestExtensionsKeepShape(t *testing.T) {
	src := `openapi: 3.0.0
info:
  title: x
  version: "1"
  x-null: null
  x-bool: true
  x-int: 42
  x-float: 1.5
  x-string: "42"
  x-list: [1, two]
  x-map:
    b: 1
    a: 2
paths: {}
`
	info := parseString(t, src).Document.Info
	assert.Equal(t, []string{"x-null", "x-bool", "x-int", "x-float", "x-string", "x-list", "x-map"}, info.Extensions.Keys())

	get := func(name string) any {
		v, ok := info.Extension(name)
		require.True(t, ok, name)
		return v
	}
	assert.Nil(t, get("x-null"))
	assert.Equal(t, true, get("x-bool"))
	assert.Equal(t, int64(42), get("x-int"))
	assert.Equal(t, 1.5, get("x-float"))
	assert.Equal(t, "42", get("x-string"))
	assert.Equal(t, []any{int64(1), "two"}, get("x-list"))
	m, ok := get("x-map").(*OrderedMap[any])
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, m.Keys())
}

func TestParseReaderAndBytes(t *testing.T) {
	data, err := os.ReadFile("testdata/petstore-3.0.json")
	require.NoError(t, err)

	fromBytes := parseString(t, string(data))
	assert.Equal(t, "ParseBytes.json", fromBytes.SourcePath)
	assert.Equal(t, SourceFormatJSON, fromBytes.SourceFormat)

	fromReader, err := ParseWithOptions(WithReader(strings.NewReader(string(data))), WithSourceName("pets"))
	require.NoError(t, err)
	assert.Equal(t, "pets", fromReader.SourcePath)
	assert.Equal(t, int64(len(data)), fromReader.SourceSize)
}

func TestParseWithOptionsValidation(t *testing.T) {
	_, err := ParseWithOptions()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	assert.Contains(t, err.Error(), "must specify an input source")

	_, err = ParseWithOptions(WithFilePath("a.yaml"), WithBytes([]byte("{}")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one input source")

	_, err = ParseWithOptions(WithBytes([]byte("{}")), WithMaxCachedDocuments(-1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))

	_, err = ParseWithOptions(WithBytes([]byte("{}")), WithSourceName(""))
	require.Error(t, err)

	_, err = ParseWithOptions(WithFilePath("testdata/does-not-exist.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseInvalidSyntax(t *testing.T) {
	_, err := ParseWithOptions(WithBytes([]byte("openapi: [unclosed\n")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrParse))
	assert.False(t, errors.Is(err, oaserrors.ErrStructural))
}

func TestDocumentDiagnosticsIncludeLazyLoads(t *testing.T) {
	src := `openapi: 3.0.0
info: {title: x, version: "1"}
paths: {}
x-shared:
  Odd:
    maximum: lots
components:
  schemas:
    A:
      $ref: "#/x-shared/Odd"
`
	result := parseString(t, src)
	assert.Empty(t, result.Diagnostics)

	a, _ := result.Document.Components.Schemas.Get("A")
	_, err := a.Resolve()
	require.NoError(t, err)
	diags := result.Document.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "#/x-shared/Odd/maximum", diags[0].Path)
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		name        string
		location    string
		contentType string
		data        string
		want        SourceFormat
	}{
		{"json extension", "api.json", "", "openapi: 3.0.0", SourceFormatJSON},
		{"yaml extension", "api.yaml", "", "{}", SourceFormatYAML},
		{"yml extension upper case", "API.YML", "", "{}", SourceFormatYAML},
		{"url path extension", "https://example.com/spec/api.json?v=2", "text/plain", "a: 1", SourceFormatJSON},
		{"json media type", "https://example.com/spec", "application/json; charset=utf-8", "a: 1", SourceFormatJSON},
		{"openapi json media type", "https://example.com/spec", "application/vnd.oai.openapi+json", "a: 1", SourceFormatJSON},
		{"yaml media type", "https://example.com/spec", "application/x-yaml", "{}", SourceFormatYAML},
		{"sniffed json", "spec", "", "  \n[1]", SourceFormatJSON},
		{"sniffed yaml", "spec", "", "openapi: 3.1.0", SourceFormatYAML},
		{"blank", "spec", "", " \n\t", SourceFormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatOf(tt.location, tt.contentType, []byte(tt.data)))
		})
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, isURL("http://example.com/a.yaml"))
	assert.True(t, isURL("https://example.com"))
	assert.False(t, isURL("ftp://example.com/a.yaml"))
	assert.False(t, isURL("testdata/http/a.yaml"))
}

func TestFormatBytes(t *testing.T) {
	tests := map[int64]string{
		-5:               "-5 B",
		0:                "0 B",
		1023:             "1023 B",
		1024:             "1.0 KiB",
		1536:             "1.5 KiB",
		1<<30 - 1:        "1024.0 MiB",
		3 << 30:          "3.0 GiB",
		10 * 1024 * 1024: "10.0 MiB",
		math.MaxInt64:    "8.0 EiB",
	}
	for size, want := range tests {
		assert.Equal(t, want, FormatBytes(size), "size %d", size)
	}
}

func TestHeaderReferencesByVersion(t *testing.T) {
	t.Run("2.0 headers are not referenceable", func(t *testing.T) {
		src := `swagger: "2.0"
info: {title: x, version: "1"}
paths:
  /a:
    get:
      responses:
        "200":
          description: ok
          headers:
            X-Rate:
              $ref: "#/definitions/Rate"
              type: integer
definitions:
  Rate: {type: integer}
`
		result := parseString(t, src, WithUnknownFieldPolicy(UnknownFieldsCollect))
		item, _ := result.Document.Paths.Items.Get("/a")
		ok200, _ := item.Get.Responses.Codes.Get("200")
		rate, _ := ok200.Headers.Get("X-Rate")
		require.NotNil(t, rate)
		assert.Nil(t, rate.Ref)
		assert.Equal(t, "integer", rate.Type)

		resolved, err := rate.Resolve()
		require.NoError(t, err)
		assert.Same(t, rate, resolved)

		require.Len(t, result.Diagnostics, 1)
		assert.Equal(t, "#/paths/~1a/get/responses/200/headers/X-Rate/$ref", result.Diagnostics[0].Path)
		assert.Equal(t, "$ref", result.Diagnostics[0].Field)
	})

	t.Run("3.x headers are referenceable", func(t *testing.T) {
		src := `openapi: 3.0.3
info: {title: x, version: "1"}
paths:
  /a:
    get:
      responses:
        "200":
          description: ok
          headers:
            X-Rate:
              $ref: "#/components/headers/Rate"
components:
  headers:
    Rate:
      description: calls left
`
		result := parseString(t, src, WithUnknownFieldPolicy(UnknownFieldsCollect))
		item, _ := result.Document.Paths.Items.Get("/a")
		ok200, _ := item.Get.Responses.Codes.Get("200")
		rate, _ := ok200.Headers.Get("X-Rate")
		require.NotNil(t, rate.Ref)

		resolved, err := rate.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "calls left", resolved.Description)
		assert.Empty(t, result.Diagnostics)
	})
}
