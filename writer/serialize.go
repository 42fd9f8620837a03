package writer

import (
	"fmt"

	"github.com/erraggy/oasdoc/parser"
)

// Serialize writes doc to w and flushes it.
//
// References are written as {"$ref": ...} objects unless settings ask for
// their kind to be inlined, in which case the resolved target is written in
// their place. A target that is already being written further up the tree
// is written as a reference again, so cyclic documents terminate. Any
// resolution failure aborts the write.
//
// Fields holding their zero value are omitted, so a document written and
// read back is equal to the original except for explicit zero values such
// as "required: false".
func Serialize(w Writer, doc *parser.Document, settings Settings) error {
	s := &serializer{
		w:        w,
		settings: settings,
		version:  doc.SpecVersion(),
		onPath:   make(map[any]bool),
	}
	if err := s.document(doc); err != nil {
		return err
	}
	return w.Flush()
}

type serializer struct {
	w        Writer
	settings Settings
	version  parser.SpecVersion
	// onPath holds the entities whose bodies are being written.
	onPath map[any]bool
	// external is set while writing content inlined from another document.
	external bool
}

func (s *serializer) object(body func(o *object)) error {
	if err := s.w.StartObject(); err != nil {
		return err
	}
	o := &object{s: s}
	body(o)
	if o.err != nil {
		return o.err
	}
	return s.w.EndObject()
}

// object writes the members of one object. Absent values are skipped and
// the first error stops all further writes.
type object struct {
	s   *serializer
	err error
}

func (o *object) field(name string, write func() error) {
	if o.err != nil {
		return
	}
	if o.err = o.s.w.WritePropertyName(name); o.err != nil {
		return
	}
	o.err = write()
}

func (o *object) str(name, v string) {
	if v != "" {
		o.field(name, func() error { return o.s.w.WriteValue(v) })
	}
}

func (o *object) flag(name string, v bool) {
	if v {
		o.field(name, func() error { return o.s.w.WriteValue(true) })
	}
}

func (o *object) boolPtr(name string, v *bool) {
	if v != nil {
		o.field(name, func() error { return o.s.w.WriteValue(*v) })
	}
}

func (o *object) number(name string, v *float64) {
	if v != nil {
		o.field(name, func() error { return o.s.w.WriteValue(*v) })
	}
}

func (o *object) integer(name string, v *int) {
	if v != nil {
		o.field(name, func() error { return o.s.w.WriteValue(*v) })
	}
}

func (o *object) value(name string, v any) {
	if v != nil {
		o.field(name, func() error { return WriteAny(o.s.w, v) })
	}
}

func (o *object) values(name string, v []any) {
	if v != nil {
		o.field(name, func() error { return WriteAny(o.s.w, v) })
	}
}

func (o *object) valueMap(name string, m *parser.OrderedMap[any]) {
	if m != nil {
		o.field(name, func() error { return WriteAny(o.s.w, m) })
	}
}

func (o *object) strings(name string, v []string) {
	if v != nil {
		o.field(name, func() error { return writeStrings(o.s.w, v) })
	}
}

func (o *object) stringMap(name string, m *parser.OrderedMap[string]) {
	if m == nil {
		return
	}
	o.field(name, func() error {
		return o.s.object(func(inner *object) {
			for k, v := range m.All() {
				inner.field(k, func() error { return o.s.w.WriteValue(v) })
			}
		})
	})
}

// extensions writes every "x-" field, null values included.
func (o *object) extensions(e parser.Extensible) {
	for k, v := range e.Extensions.All() {
		o.field(k, func() error { return WriteAny(o.s.w, v) })
	}
}

func (o *object) security(name string, list []*parser.SecurityRequirement) {
	if list == nil {
		return
	}
	o.field(name, func() error {
		if err := o.s.w.StartArray(); err != nil {
			return err
		}
		for _, req := range list {
			err := o.s.object(func(inner *object) {
				for scheme, scopes := range req.All() {
					inner.field(scheme, func() error { return writeStrings(o.s.w, scopes) })
				}
			})
			if err != nil {
				return err
			}
		}
		return o.s.w.EndArray()
	})
}

func entity[T any](o *object, name string, e *T, write func(*serializer, *T) error) {
	if e != nil {
		o.field(name, func() error { return write(o.s, e) })
	}
}

func entityList[T any](o *object, name string, list []*T, write func(*serializer, *T) error) {
	if list == nil {
		return
	}
	o.field(name, func() error {
		if err := o.s.w.StartArray(); err != nil {
			return err
		}
		for _, e := range list {
			if err := write(o.s, e); err != nil {
				return err
			}
		}
		return o.s.w.EndArray()
	})
}

func entityMap[T any](o *object, name string, m *parser.OrderedMap[*T], write func(*serializer, *T) error) {
	if m == nil {
		return
	}
	o.field(name, func() error {
		return o.s.object(func(inner *object) {
			entries(inner, m, write)
		})
	})
}

// entries writes the entries of m as members of the current object.
func entries[T any](o *object, m *parser.OrderedMap[*T], write func(*serializer, *T) error) {
	for k, e := range m.All() {
		o.field(k, func() error { return write(o.s, e) })
	}
}

// referenced writes an entity that may be a reference placeholder.
func referenced[T any](s *serializer, e *T, ref *parser.Reference, resolve func(*T) (*T, error), body func(*serializer, *T) error) error {
	if e == nil {
		return s.w.WriteNull()
	}
	if ref == nil {
		return s.guarded(e, func() error { return body(s, e) })
	}
	external := s.external || ref.IsExternal()
	if !s.inline(external) {
		return s.reference(ref)
	}
	target, err := resolve(e)
	if err != nil {
		return fmt.Errorf("writer: inlining %s: %w", ref.Raw, err)
	}
	if s.onPath[target] {
		return s.reference(ref)
	}
	prev := s.external
	s.external = external
	defer func() { s.external = prev }()
	return s.guarded(target, func() error { return body(s, target) })
}

func (s *serializer) guarded(e any, write func() error) error {
	s.onPath[e] = true
	defer delete(s.onPath, e)
	return write()
}

func (s *serializer) inline(external bool) bool {
	if external {
		return s.settings.InlineExternalReferences
	}
	return s.settings.InlineLocalReferences
}

func (s *serializer) reference(ref *parser.Reference) error {
	return s.object(func(o *object) {
		o.field("$ref", func() error { return s.w.WriteValue(ref.Raw) })
		o.str("summary", ref.Summary)
		o.str("description", ref.Description)
	})
}

func (s *serializer) document(d *parser.Document) error {
	return s.guarded(d, func() error {
		return s.object(func(o *object) {
			o.str("swagger", d.Swagger)
			o.str("openapi", d.OpenAPI)
			o.str("$self", d.Self)
			entity(o, "info", d.Info, (*serializer).info)
			o.str("jsonSchemaDialect", d.JSONSchemaDialect)
			entityList(o, "servers", d.Servers, (*serializer).server)
			o.str("host", d.Host)
			o.str("basePath", d.BasePath)
			o.strings("schemes", d.Schemes)
			o.strings("consumes", d.Consumes)
			o.strings("produces", d.Produces)
			entity(o, "paths", d.Paths, (*serializer).paths)
			entityMap(o, "webhooks", d.Webhooks, (*serializer).pathItem)
			entity(o, "components", d.Components, (*serializer).components)
			entityMap(o, "definitions", d.Definitions, (*serializer).schema)
			entityMap(o, "parameters", d.Parameters, (*serializer).parameter)
			entityMap(o, "responses", d.Responses, (*serializer).response)
			entityMap(o, "securityDefinitions", d.SecurityDefinitions, (*serializer).securityScheme)
			o.security("security", d.Security)
			entityList(o, "tags", d.Tags, (*serializer).tag)
			entity(o, "externalDocs", d.ExternalDocs, (*serializer).externalDocs)
			o.extensions(d.Extensible)
		})
	})
}

func (s *serializer) info(e *parser.Info) error {
	return s.object(func(o *object) {
		o.str("title", e.Title)
		o.str("summary", e.Summary)
		o.str("description", e.Description)
		o.str("termsOfService", e.TermsOfService)
		entity(o, "contact", e.Contact, (*serializer).contact)
		entity(o, "license", e.License, (*serializer).license)
		o.str("version", e.Version)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) contact(e *parser.Contact) error {
	return s.object(func(o *object) {
		o.str("name", e.Name)
		o.str("url", e.URL)
		o.str("email", e.Email)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) license(e *parser.License) error {
	return s.object(func(o *object) {
		o.str("name", e.Name)
		o.str("identifier", e.Identifier)
		o.str("url", e.URL)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) externalDocs(e *parser.ExternalDocs) error {
	return s.object(func(o *object) {
		o.str("description", e.Description)
		o.str("url", e.URL)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) tag(e *parser.Tag) error {
	return s.object(func(o *object) {
		o.str("name", e.Name)
		o.str("summary", e.Summary)
		o.str("description", e.Description)
		entity(o, "externalDocs", e.ExternalDocs, (*serializer).externalDocs)
		o.str("parent", e.Parent)
		o.str("kind", e.Kind)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) server(e *parser.Server) error {
	return s.object(func(o *object) {
		o.str("url", e.URL)
		o.str("description", e.Description)
		o.str("name", e.Name)
		entityMap(o, "variables", e.Variables, (*serializer).serverVariable)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) serverVariable(e *parser.ServerVariable) error {
	return s.object(func(o *object) {
		o.strings("enum", e.Enum)
		o.str("default", e.Default)
		o.str("description", e.Description)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) components(e *parser.Components) error {
	return s.object(func(o *object) {
		entityMap(o, "schemas", e.Schemas, (*serializer).schema)
		entityMap(o, "responses", e.Responses, (*serializer).response)
		entityMap(o, "parameters", e.Parameters, (*serializer).parameter)
		entityMap(o, "examples", e.Examples, (*serializer).example)
		entityMap(o, "requestBodies", e.RequestBodies, (*serializer).requestBody)
		entityMap(o, "headers", e.Headers, (*serializer).header)
		entityMap(o, "securitySchemes", e.SecuritySchemes, (*serializer).securityScheme)
		entityMap(o, "links", e.Links, (*serializer).link)
		entityMap(o, "callbacks", e.Callbacks, (*serializer).callback)
		entityMap(o, "pathItems", e.PathItems, (*serializer).pathItem)
		entityMap(o, "mediaTypes", e.MediaTypes, (*serializer).mediaType)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) paths(e *parser.Paths) error {
	return s.object(func(o *object) {
		entries(o, e.Items, (*serializer).pathItem)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) pathItem(e *parser.PathItem) error {
	return referenced(s, e, e.Ref, (*parser.PathItem).Resolve, (*serializer).pathItemBody)
}

func (s *serializer) pathItemBody(e *parser.PathItem) error {
	return s.object(func(o *object) {
		o.str("summary", e.Summary)
		o.str("description", e.Description)
		entity(o, "get", e.Get, (*serializer).operation)
		entity(o, "put", e.Put, (*serializer).operation)
		entity(o, "post", e.Post, (*serializer).operation)
		entity(o, "delete", e.Delete, (*serializer).operation)
		entity(o, "options", e.Options, (*serializer).operation)
		entity(o, "head", e.Head, (*serializer).operation)
		entity(o, "patch", e.Patch, (*serializer).operation)
		entity(o, "trace", e.Trace, (*serializer).operation)
		entity(o, "query", e.Query, (*serializer).operation)
		entityMap(o, "additionalOperations", e.AdditionalOperations, (*serializer).operation)
		entityList(o, "servers", e.Servers, (*serializer).server)
		entityList(o, "parameters", e.Parameters, (*serializer).parameter)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) operation(e *parser.Operation) error {
	return s.object(func(o *object) {
		o.strings("tags", e.Tags)
		o.str("summary", e.Summary)
		o.str("description", e.Description)
		entity(o, "externalDocs", e.ExternalDocs, (*serializer).externalDocs)
		o.str("operationId", e.OperationID)
		o.strings("consumes", e.Consumes)
		o.strings("produces", e.Produces)
		entityList(o, "parameters", e.Parameters, (*serializer).parameter)
		entity(o, "requestBody", e.RequestBody, (*serializer).requestBody)
		entity(o, "responses", e.Responses, (*serializer).responses)
		entityMap(o, "callbacks", e.Callbacks, (*serializer).callback)
		o.strings("schemes", e.Schemes)
		o.flag("deprecated", e.Deprecated)
		o.security("security", e.Security)
		entityList(o, "servers", e.Servers, (*serializer).server)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) responses(e *parser.Responses) error {
	return s.object(func(o *object) {
		entity(o, "default", e.Default, (*serializer).response)
		entries(o, e.Codes, (*serializer).response)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) response(e *parser.Response) error {
	return referenced(s, e, e.Ref, (*parser.Response).Resolve, func(s *serializer, e *parser.Response) error {
		return s.object(func(o *object) {
			o.str("description", e.Description)
			entityMap(o, "headers", e.Headers, (*serializer).header)
			entityMap(o, "content", e.Content, (*serializer).mediaType)
			entityMap(o, "links", e.Links, (*serializer).link)
			entity(o, "schema", e.Schema, (*serializer).schema)
			o.valueMap("examples", e.Examples)
			o.extensions(e.Extensible)
		})
	})
}

func (s *serializer) callback(e *parser.Callback) error {
	return referenced(s, e, e.Ref, (*parser.Callback).Resolve, func(s *serializer, e *parser.Callback) error {
		return s.object(func(o *object) {
			entries(o, e.Expressions, (*serializer).pathItem)
			o.extensions(e.Extensible)
		})
	})
}

func (s *serializer) link(e *parser.Link) error {
	return referenced(s, e, e.Ref, (*parser.Link).Resolve, func(s *serializer, e *parser.Link) error {
		return s.object(func(o *object) {
			o.str("operationRef", e.OperationRef)
			o.str("operationId", e.OperationID)
			o.valueMap("parameters", e.Parameters)
			o.value("requestBody", e.RequestBody)
			o.str("description", e.Description)
			entity(o, "server", e.Server, (*serializer).server)
			o.extensions(e.Extensible)
		})
	})
}

func (s *serializer) mediaType(e *parser.MediaType) error {
	return referenced(s, e, e.Ref, (*parser.MediaType).Resolve, func(s *serializer, e *parser.MediaType) error {
		return s.object(func(o *object) {
			entity(o, "schema", e.Schema, (*serializer).schema)
			o.value("example", e.Example)
			entityMap(o, "examples", e.Examples, (*serializer).example)
			entityMap(o, "encoding", e.Encoding, (*serializer).encoding)
			o.extensions(e.Extensible)
		})
	})
}

func (s *serializer) encoding(e *parser.Encoding) error {
	return s.object(func(o *object) {
		o.str("contentType", e.ContentType)
		entityMap(o, "headers", e.Headers, (*serializer).header)
		o.str("style", e.Style)
		o.boolPtr("explode", e.Explode)
		o.flag("allowReserved", e.AllowReserved)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) example(e *parser.Example) error {
	return referenced(s, e, e.Ref, (*parser.Example).Resolve, func(s *serializer, e *parser.Example) error {
		return s.object(func(o *object) {
			o.str("summary", e.Summary)
			o.str("description", e.Description)
			o.value("value", e.Value)
			o.str("externalValue", e.ExternalValue)
			o.extensions(e.Extensible)
		})
	})
}

func (s *serializer) requestBody(e *parser.RequestBody) error {
	return referenced(s, e, e.Ref, (*parser.RequestBody).Resolve, func(s *serializer, e *parser.RequestBody) error {
		return s.object(func(o *object) {
			o.str("description", e.Description)
			entityMap(o, "content", e.Content, (*serializer).mediaType)
			o.flag("required", e.Required)
			o.extensions(e.Extensible)
		})
	})
}

func (s *serializer) parameter(e *parser.Parameter) error {
	return referenced(s, e, e.Ref, (*parser.Parameter).Resolve, func(s *serializer, e *parser.Parameter) error {
		return s.object(func(o *object) {
			o.str("name", e.Name)
			o.str("in", e.In)
			o.str("description", e.Description)
			o.flag("required", e.Required)
			o.flag("deprecated", e.Deprecated)
			o.flag("allowEmptyValue", e.AllowEmptyValue)
			o.str("style", e.Style)
			o.boolPtr("explode", e.Explode)
			o.flag("allowReserved", e.AllowReserved)
			entity(o, "schema", e.Schema, (*serializer).schema)
			o.value("example", e.Example)
			entityMap(o, "examples", e.Examples, (*serializer).example)
			entityMap(o, "content", e.Content, (*serializer).mediaType)
			o.simpleValue(&e.SimpleValue)
			o.extensions(e.Extensible)
		})
	})
}

func (s *serializer) header(e *parser.Header) error {
	return referenced(s, e, e.Ref, (*parser.Header).Resolve, func(s *serializer, e *parser.Header) error {
		return s.object(func(o *object) {
			o.str("description", e.Description)
			o.flag("required", e.Required)
			o.flag("deprecated", e.Deprecated)
			o.str("style", e.Style)
			o.boolPtr("explode", e.Explode)
			entity(o, "schema", e.Schema, (*serializer).schema)
			o.value("example", e.Example)
			entityMap(o, "examples", e.Examples, (*serializer).example)
			entityMap(o, "content", e.Content, (*serializer).mediaType)
			o.simpleValue(&e.SimpleValue)
			o.extensions(e.Extensible)
		})
	})
}

func (s *serializer) items(e *parser.Items) error {
	return s.object(func(o *object) {
		o.simpleValue(&e.SimpleValue)
		o.extensions(e.Extensible)
	})
}

// simpleValue writes the OAS 2.0 primitive constraints.
func (o *object) simpleValue(v *parser.SimpleValue) {
	o.str("type", v.Type)
	o.str("format", v.Format)
	entity(o, "items", v.Items, (*serializer).items)
	o.str("collectionFormat", v.CollectionFormat)
	o.value("default", v.Default)
	o.number("maximum", v.Maximum)
	o.flag("exclusiveMaximum", v.ExclusiveMaximum)
	o.number("minimum", v.Minimum)
	o.flag("exclusiveMinimum", v.ExclusiveMinimum)
	o.integer("maxLength", v.MaxLength)
	o.integer("minLength", v.MinLength)
	o.str("pattern", v.Pattern)
	o.integer("maxItems", v.MaxItems)
	o.integer("minItems", v.MinItems)
	o.flag("uniqueItems", v.UniqueItems)
	o.values("enum", v.Enum)
	o.number("multipleOf", v.MultipleOf)
}

func (s *serializer) securityScheme(e *parser.SecurityScheme) error {
	return referenced(s, e, e.Ref, (*parser.SecurityScheme).Resolve, func(s *serializer, e *parser.SecurityScheme) error {
		return s.object(func(o *object) {
			o.str("type", e.Type)
			o.str("description", e.Description)
			o.str("name", e.Name)
			o.str("in", e.In)
			o.str("scheme", e.Scheme)
			o.str("bearerFormat", e.BearerFormat)
			entity(o, "flows", e.Flows, (*serializer).oauthFlows)
			o.str("flow", e.Flow)
			o.str("authorizationUrl", e.AuthorizationURL)
			o.str("tokenUrl", e.TokenURL)
			o.stringMap("scopes", e.Scopes)
			o.str("openIdConnectUrl", e.OpenIDConnectURL)
			o.flag("deprecated", e.Deprecated)
			o.extensions(e.Extensible)
		})
	})
}

func (s *serializer) oauthFlows(e *parser.OAuthFlows) error {
	return s.object(func(o *object) {
		entity(o, "implicit", e.Implicit, (*serializer).oauthFlow)
		entity(o, "password", e.Password, (*serializer).oauthFlow)
		entity(o, "clientCredentials", e.ClientCredentials, (*serializer).oauthFlow)
		entity(o, "authorizationCode", e.AuthorizationCode, (*serializer).oauthFlow)
		entity(o, "deviceAuthorization", e.DeviceAuthorization, (*serializer).oauthFlow)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) oauthFlow(e *parser.OAuthFlow) error {
	return s.object(func(o *object) {
		o.str("authorizationUrl", e.AuthorizationURL)
		o.str("deviceAuthorizationUrl", e.DeviceAuthorizationURL)
		o.str("tokenUrl", e.TokenURL)
		o.str("refreshUrl", e.RefreshURL)
		o.stringMap("scopes", e.Scopes)
		o.extensions(e.Extensible)
	})
}

func (s *serializer) schema(e *parser.Schema) error {
	return referenced(s, e, e.Ref, (*parser.Schema).Resolve, (*serializer).schemaBody)
}

func (s *serializer) schemaBody(e *parser.Schema) error {
	if e.Boolean != nil {
		return s.w.WriteValue(*e.Boolean)
	}
	return s.object(func(o *object) {
		o.str("$schema", e.Schema)
		o.str("$id", e.ID)
		o.str("$anchor", e.Anchor)
		o.str("$comment", e.Comment)
		entityMap(o, "$defs", e.Defs, (*serializer).schema)

		o.str("title", e.Title)
		o.str("description", e.Description)
		o.value("default", e.Default)
		o.values("examples", e.Examples)

		switch t := e.Type.(type) {
		case string:
			o.str("type", t)
		case []string:
			o.strings("type", t)
		}
		o.str("format", e.Format)
		o.values("enum", e.Enum)
		o.value("const", e.Const)

		o.number("multipleOf", e.MultipleOf)
		o.number("maximum", e.Maximum)
		o.bound("exclusiveMaximum", e.ExclusiveMaximum)
		o.number("minimum", e.Minimum)
		o.bound("exclusiveMinimum", e.ExclusiveMinimum)

		o.integer("maxLength", e.MaxLength)
		o.integer("minLength", e.MinLength)
		o.str("pattern", e.Pattern)

		entity(o, "items", e.Items, (*serializer).schema)
		entityList(o, "prefixItems", e.PrefixItems, (*serializer).schema)
		o.integer("maxItems", e.MaxItems)
		o.integer("minItems", e.MinItems)
		o.flag("uniqueItems", e.UniqueItems)
		entity(o, "contains", e.Contains, (*serializer).schema)
		o.integer("maxContains", e.MaxContains)
		o.integer("minContains", e.MinContains)

		entityMap(o, "properties", e.Properties, (*serializer).schema)
		entityMap(o, "patternProperties", e.PatternProperties, (*serializer).schema)
		entity(o, "additionalProperties", e.AdditionalProperties, (*serializer).schema)
		entity(o, "unevaluatedProperties", e.UnevaluatedProperties, (*serializer).schema)
		o.strings("required", e.Required)
		entity(o, "propertyNames", e.PropertyNames, (*serializer).schema)
		o.integer("maxProperties", e.MaxProperties)
		o.integer("minProperties", e.MinProperties)
		entityMap(o, "dependentSchemas", e.DependentSchemas, (*serializer).schema)

		entity(o, "if", e.If, (*serializer).schema)
		entity(o, "then", e.Then, (*serializer).schema)
		entity(o, "else", e.Else, (*serializer).schema)

		entityList(o, "allOf", e.AllOf, (*serializer).schema)
		entityList(o, "anyOf", e.AnyOf, (*serializer).schema)
		entityList(o, "oneOf", e.OneOf, (*serializer).schema)
		entity(o, "not", e.Not, (*serializer).schema)

		o.flag("nullable", e.Nullable)
		o.discriminator(e.Discriminator)
		o.flag("readOnly", e.ReadOnly)
		o.flag("writeOnly", e.WriteOnly)
		entity(o, "xml", e.XML, (*serializer).xml)
		entity(o, "externalDocs", e.ExternalDocs, (*serializer).externalDocs)
		o.value("example", e.Example)
		o.flag("deprecated", e.Deprecated)
		o.extensions(e.Extensible)
	})
}

// bound writes exclusiveMaximum/Minimum: a modifier flag up to OAS 3.0, a
// number from 3.1 on.
func (o *object) bound(name string, v any) {
	switch b := v.(type) {
	case bool:
		o.flag(name, b)
	case float64:
		o.number(name, &b)
	}
}

// discriminator writes the OAS 2.0 form as a bare property name.
func (o *object) discriminator(d *parser.Discriminator) {
	if d == nil {
		return
	}
	if o.s.version == parser.SpecVersion20 {
		o.field("discriminator", func() error { return o.s.w.WriteValue(d.PropertyName) })
		return
	}
	o.field("discriminator", func() error {
		return o.s.object(func(inner *object) {
			inner.str("propertyName", d.PropertyName)
			inner.stringMap("mapping", d.Mapping)
			inner.extensions(d.Extensible)
		})
	})
}

func (s *serializer) xml(e *parser.XML) error {
	return s.object(func(o *object) {
		o.str("name", e.Name)
		o.str("namespace", e.Namespace)
		o.str("prefix", e.Prefix)
		o.flag("attribute", e.Attribute)
		o.flag("wrapped", e.Wrapped)
		o.extensions(e.Extensible)
	})
}
