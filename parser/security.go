package parser

// SecurityRequirement lists the required security schemes to execute an operation
// Maps security scheme names to scopes (if applicable). An empty requirement
// ({}) makes security optional and is kept as an empty, non-nil map.
type SecurityRequirement = OrderedMap[[]string]

// SecurityScheme defines a security scheme that can be used by the operations
type SecurityScheme struct {
	Ref *Reference

	Type        string // "apiKey", "http", "oauth2", "openIdConnect", "mutualTLS" (OAS 3.x), "basic" (OAS 2.0)
	Description string

	// Type: apiKey
	Name string
	In   string // "query", "header", "cookie" (OAS 3.0+)

	// Type: http (OAS 3.0+)
	Scheme       string
	BearerFormat string

	// Type: oauth2 (OAS 3.0+)
	Flows *OAuthFlows

	// Type: oauth2 (OAS 2.0)
	Flow             string // "implicit", "password", "application", "accessCode"
	AuthorizationURL string
	TokenURL         string
	Scopes           *OrderedMap[string]

	// Type: openIdConnect (OAS 3.0+)
	OpenIDConnectURL string

	Deprecated bool // OAS 3.2+

	Extensible
}

// OAuthFlows allows configuration of the supported OAuth Flows (OAS 3.0+)
type OAuthFlows struct {
	Implicit            *OAuthFlow
	Password            *OAuthFlow
	ClientCredentials   *OAuthFlow
	AuthorizationCode   *OAuthFlow
	DeviceAuthorization *OAuthFlow // OAS 3.2+
	Extensible
}

// OAuthFlow represents configuration for a single OAuth flow (OAS 3.0+)
type OAuthFlow struct {
	AuthorizationURL       string
	DeviceAuthorizationURL string // OAS 3.2+
	TokenURL               string
	RefreshURL             string
	Scopes                 *OrderedMap[string]
	Extensible
}
