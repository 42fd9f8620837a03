package parser

// Document is the root of a parsed OpenAPI document of any supported
// version. Fields that exist only in some versions are grouped and marked;
// a document read as OAS 2.0 never populates 3.x fields and vice versa.
//
// The Document owns every entity loaded from its source. References are
// resolved against it lazily, on first call to an entity's Resolve method.
type Document struct {
	Swagger string // "2.0" (OAS 2.0)
	OpenAPI string // "3.0.x", "3.1.x" or "3.2.x" (OAS 3.x)
	Self    string // $self (OAS 3.2+)

	Info              *Info
	JSONSchemaDialect string    // OAS 3.1+
	Servers           []*Server // OAS 3.0+

	// OAS 2.0
	Host     string
	BasePath string
	Schemes  []string
	Consumes []string
	Produces []string

	Paths    *Paths
	Webhooks *OrderedMap[*PathItem] // OAS 3.1+

	Components *Components // OAS 3.0+

	// OAS 2.0 reusable objects
	Definitions         *OrderedMap[*Schema]
	Parameters          *OrderedMap[*Parameter]
	Responses           *OrderedMap[*Response]
	SecurityDefinitions *OrderedMap[*SecurityScheme]

	Security     []*SecurityRequirement
	Tags         []*Tag
	ExternalDocs *ExternalDocs
	Extensible

	// OASVersion is the version detected from the swagger/openapi field
	OASVersion OASVersion

	reg *registry
}

// Location returns the file path or URL the document was loaded from, or
// "" for in-memory sources.
func (d *Document) Location() string {
	if d.reg == nil {
		return ""
	}
	return d.reg.location
}

// SpecVersion returns the dispatch family the document was read with.
func (d *Document) SpecVersion() SpecVersion {
	if d.reg == nil {
		return d.OASVersion.Family()
	}
	return d.reg.version
}

// Components holds reusable objects for different aspects of the OAS (OAS 3.0+)
type Components struct {
	Schemas         *OrderedMap[*Schema]
	Responses       *OrderedMap[*Response]
	Parameters      *OrderedMap[*Parameter]
	Examples        *OrderedMap[*Example]
	RequestBodies   *OrderedMap[*RequestBody]
	Headers         *OrderedMap[*Header]
	SecuritySchemes *OrderedMap[*SecurityScheme]
	Links           *OrderedMap[*Link]
	Callbacks       *OrderedMap[*Callback]
	PathItems       *OrderedMap[*PathItem]  // OAS 3.1+
	MediaTypes      *OrderedMap[*MediaType] // OAS 3.2+
	Extensible
}
