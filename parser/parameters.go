package parser

// Parameter describes a single operation parameter
type Parameter struct {
	Ref *Reference

	Name        string
	In          string // "query", "header", "path", "cookie" (OAS 3.0+), "formData", "body" (OAS 2.0)
	Description string
	Required    bool
	Deprecated  bool // OAS 3.0+

	// OAS 3.0+ fields
	Style           string
	Explode         *bool
	AllowReserved   bool
	AllowEmptyValue bool
	Schema          *Schema // also the body schema in OAS 2.0
	Example         any
	Examples        *OrderedMap[*Example]
	Content         *OrderedMap[*MediaType]

	// OAS 2.0 fields
	SimpleValue

	Extensible
}

// SimpleValue holds the primitive type constraints OAS 2.0 uses for
// non-body parameters, headers and array items.
type SimpleValue struct {
	Type             string
	Format           string
	Items            *Items
	CollectionFormat string
	Default          any
	Maximum          *float64
	ExclusiveMaximum bool
	Minimum          *float64
	ExclusiveMinimum bool
	MaxLength        *int
	MinLength        *int
	Pattern          string
	MaxItems         *int
	MinItems         *int
	UniqueItems      bool
	Enum             []any
	MultipleOf       *float64
}

// Items represents items object for array parameters (OAS 2.0)
type Items struct {
	SimpleValue
	Extensible
}

// RequestBody describes a single request body (OAS 3.0+)
type RequestBody struct {
	Ref         *Reference
	Description string
	Content     *OrderedMap[*MediaType]
	Required    bool
	Extensible
}

// Header represents a header object
type Header struct {
	Ref         *Reference
	Description string
	Required    bool
	Deprecated  bool // OAS 3.0+

	// OAS 3.0+ fields
	Style    string
	Explode  *bool
	Schema   *Schema
	Example  any
	Examples *OrderedMap[*Example]
	Content  *OrderedMap[*MediaType]

	// OAS 2.0 fields
	SimpleValue

	Extensible
}
