package parser

// Paths holds the relative paths to the individual endpoints
type Paths struct {
	Items *OrderedMap[*PathItem]
	Extensible
}

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         *Reference
	Summary     string // OAS 3.0+
	Description string // OAS 3.0+
	Get         *Operation
	Put         *Operation
	Post        *Operation
	Delete      *Operation
	Options     *Operation
	Head        *Operation
	Patch       *Operation
	Trace       *Operation // OAS 3.0+
	Query       *Operation // OAS 3.2+

	// AdditionalOperations holds operations for other HTTP methods (OAS 3.2+)
	AdditionalOperations *OrderedMap[*Operation]

	Servers    []*Server // OAS 3.0+
	Parameters []*Parameter
	Extensible
}

// Operations returns the fixed-method operations that are set, keyed by
// lower-case method name, in the order the specification lists them.
func (p *PathItem) Operations() *OrderedMap[*Operation] {
	ops := NewOrderedMap[*Operation]()
	for _, m := range []struct {
		name string
		op   *Operation
	}{
		{"get", p.Get}, {"put", p.Put}, {"post", p.Post}, {"delete", p.Delete},
		{"options", p.Options}, {"head", p.Head}, {"patch", p.Patch},
		{"trace", p.Trace}, {"query", p.Query},
	} {
		if m.op != nil {
			ops.Set(m.name, m.op)
		}
	}
	for name, op := range p.AdditionalOperations.All() {
		ops.Set(name, op)
	}
	return ops
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string
	Summary      string
	Description  string
	ExternalDocs *ExternalDocs
	OperationID  string
	Consumes     []string // OAS 2.0
	Produces     []string // OAS 2.0
	Parameters   []*Parameter
	RequestBody  *RequestBody // OAS 3.0+
	Responses    *Responses
	Callbacks    *OrderedMap[*Callback] // OAS 3.0+
	Schemes      []string               // OAS 2.0
	Deprecated   bool
	Security     []*SecurityRequirement
	Servers      []*Server // OAS 3.0+
	Extensible
}

// Responses is a container for the expected responses of an operation
type Responses struct {
	Default *Response
	Codes   *OrderedMap[*Response]
	Extensible
}

// Response describes a single response from an API Operation
type Response struct {
	Ref         *Reference
	Description string
	Headers     *OrderedMap[*Header]
	Content     *OrderedMap[*MediaType] // OAS 3.0+
	Links       *OrderedMap[*Link]      // OAS 3.0+

	// OAS 2.0 specific
	Schema   *Schema
	Examples *OrderedMap[any]

	Extensible
}

// Callback is a map of expressions to path items (OAS 3.0+)
type Callback struct {
	Ref         *Reference
	Expressions *OrderedMap[*PathItem]
	Extensible
}

// Link represents a possible design-time link for a response (OAS 3.0+)
type Link struct {
	Ref          *Reference
	OperationRef string
	OperationID  string
	Parameters   *OrderedMap[any]
	RequestBody  any
	Description  string
	Server       *Server
	Extensible
}

// MediaType provides schema and examples for the media type (OAS 3.0+)
type MediaType struct {
	Ref      *Reference // OAS 3.2+, via components.mediaTypes
	Schema   *Schema
	Example  any
	Examples *OrderedMap[*Example]
	Encoding *OrderedMap[*Encoding]
	Extensible
}

// Encoding defines encoding for a specific property (OAS 3.0+)
type Encoding struct {
	ContentType   string
	Headers       *OrderedMap[*Header]
	Style         string
	Explode       *bool
	AllowReserved bool
	Extensible
}
