package parser

// Schema represents a JSON Schema
// Supports OAS 2.0, OAS 3.0, OAS 3.1+ (JSON Schema Draft 2020-12)
//
// When Ref is set the schema is a reference placeholder and no other field
// is populated; call Resolve to obtain the target.
type Schema struct {
	Ref *Reference

	// Boolean is set for boolean schemas ("true"/"false"), OAS 3.1+, and for
	// the boolean form of additionalProperties in every version.
	Boolean *bool

	// JSON Schema Core (OAS 3.1+)
	Schema  string               // $schema
	ID      string               // $id
	Anchor  string               // $anchor
	Comment string               // $comment
	Defs    *OrderedMap[*Schema] // $defs

	// Metadata
	Title       string
	Description string
	Default     any
	Examples    []any // OAS 3.1+

	// Type validation
	Type  any // string, or []string in OAS 3.1+
	Enum  []any
	Const any // OAS 3.1+

	// Numeric validation
	MultipleOf       *float64
	Maximum          *float64
	ExclusiveMaximum any // bool in OAS 2.0/3.0, float64 in 3.1+
	Minimum          *float64
	ExclusiveMinimum any // bool in OAS 2.0/3.0, float64 in 3.1+

	// String validation
	MaxLength *int
	MinLength *int
	Pattern   string

	// Array validation
	Items       *Schema
	PrefixItems []*Schema // OAS 3.1+
	MaxItems    *int
	MinItems    *int
	UniqueItems bool
	Contains    *Schema // OAS 3.1+
	MaxContains *int    // OAS 3.1+
	MinContains *int    // OAS 3.1+

	// Object validation
	Properties            *OrderedMap[*Schema]
	PatternProperties     *OrderedMap[*Schema] // OAS 3.1+
	AdditionalProperties  *Schema              // schema, or Boolean set
	UnevaluatedProperties *Schema              // OAS 3.1+
	Required              []string
	PropertyNames         *Schema // OAS 3.1+
	MaxProperties         *int
	MinProperties         *int
	DependentSchemas      *OrderedMap[*Schema] // OAS 3.1+

	// Conditional schemas, OAS 3.1+
	If   *Schema
	Then *Schema
	Else *Schema

	// Schema composition
	AllOf []*Schema
	AnyOf []*Schema // OAS 3.0+
	OneOf []*Schema // OAS 3.0+
	Not   *Schema   // OAS 3.0+

	// OAS specific
	Nullable      bool           // OAS 3.0 only
	Discriminator *Discriminator // a bare property name in OAS 2.0
	ReadOnly      bool
	WriteOnly     bool // OAS 3.0+
	XML           *XML
	ExternalDocs  *ExternalDocs
	Example       any
	Deprecated    bool // OAS 3.0+

	Format string

	Extensible
}

// Discriminator represents a discriminator for polymorphism.
// OAS 2.0 documents only carry PropertyName.
type Discriminator struct {
	PropertyName string
	Mapping      *OrderedMap[string] // OAS 3.0+
	Extensible
}

// XML represents metadata for XML encoding (OAS 2.0+)
type XML struct {
	Name      string
	Namespace string
	Prefix    string
	Attribute bool
	Wrapped   bool
	Extensible
}
