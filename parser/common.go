package parser

// Info provides metadata about the API
// Common across all OAS versions (2.0, 3.0, 3.1, 3.2)
type Info struct {
	Title          string
	Summary        string // OAS 3.1+
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
	Version        string
	Extensible
}

// Contact information for the exposed API
type Contact struct {
	Name  string
	URL   string
	Email string
	Extensible
}

// License information for the exposed API
type License struct {
	Name       string
	Identifier string // OAS 3.1+
	URL        string
	Extensible
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string
	URL         string
	Extensible
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string
	Summary      string // OAS 3.2+
	Description  string
	ExternalDocs *ExternalDocs
	Parent       string // OAS 3.2+
	Kind         string // OAS 3.2+
	Extensible
}

// Server represents a Server object (OAS 3.0+)
type Server struct {
	URL         string
	Description string
	Name        string // OAS 3.2+
	Variables   *OrderedMap[*ServerVariable]
	Extensible
}

// ServerVariable represents a Server Variable object (OAS 3.0+)
type ServerVariable struct {
	Enum        []string
	Default     string
	Description string
	Extensible
}

// Example represents an example object (OAS 3.0+)
type Example struct {
	Ref           *Reference
	Summary       string
	Description   string
	Value         any
	ExternalValue string
	Extensible
}
