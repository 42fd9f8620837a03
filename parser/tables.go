package parser

import (
	"sync"

	"github.com/erraggy/oasdoc/parsenode"
)

// tableSet holds the dispatch table of every entity kind for one version.
type tableSet struct {
	version SpecVersion

	document   *fieldTable[Document]
	components *fieldTable[Components]

	info           *fieldTable[Info]
	contact        *fieldTable[Contact]
	license        *fieldTable[License]
	externalDocs   *fieldTable[ExternalDocs]
	tag            *fieldTable[Tag]
	server         *fieldTable[Server]
	serverVariable *fieldTable[ServerVariable]
	example        *fieldTable[Example]

	schema        *fieldTable[Schema]
	discriminator *fieldTable[Discriminator]
	xml           *fieldTable[XML]

	parameter   *fieldTable[Parameter]
	items       *fieldTable[Items]
	requestBody *fieldTable[RequestBody]
	header      *fieldTable[Header]

	paths     *fieldTable[Paths]
	pathItem  *fieldTable[PathItem]
	operation *fieldTable[Operation]
	responses *fieldTable[Responses]
	response  *fieldTable[Response]
	callback  *fieldTable[Callback]
	link      *fieldTable[Link]
	mediaType *fieldTable[MediaType]
	encoding  *fieldTable[Encoding]

	securityScheme *fieldTable[SecurityScheme]
	oauthFlows     *fieldTable[OAuthFlows]
	oauthFlow      *fieldTable[OAuthFlow]
}

func buildTables(v SpecVersion) *tableSet {
	return &tableSet{
		version: v,

		document:   documentTable(v),
		components: componentsTable(v),

		info:           infoTable(v),
		contact:        contactTable(),
		license:        licenseTable(v),
		externalDocs:   externalDocsTable(),
		tag:            tagTable(v),
		server:         serverTable(v),
		serverVariable: serverVariableTable(),
		example:        exampleTable(),

		schema:        schemaTable(v),
		discriminator: discriminatorTable(),
		xml:           xmlTable(),

		parameter:   parameterTable(v),
		items:       itemsTable(),
		requestBody: requestBodyTable(),
		header:      headerTable(v),

		paths:     pathsTable(),
		pathItem:  pathItemTable(v),
		operation: operationTable(v),
		responses: responsesTable(),
		response:  responseTable(v),
		callback:  callbackTable(),
		link:      linkTable(),
		mediaType: mediaTypeTable(),
		encoding:  encodingTable(),

		securityScheme: securitySchemeTable(v),
		oauthFlows:     oauthFlowsTable(v),
		oauthFlow:      oauthFlowTable(v),
	}
}

var tableSets = map[SpecVersion]func() *tableSet{
	SpecVersion20: sync.OnceValue(func() *tableSet { return buildTables(SpecVersion20) }),
	SpecVersion30: sync.OnceValue(func() *tableSet { return buildTables(SpecVersion30) }),
	SpecVersion31: sync.OnceValue(func() *tableSet { return buildTables(SpecVersion31) }),
	SpecVersion32: sync.OnceValue(func() *tableSet { return buildTables(SpecVersion32) }),
}

// tablesFor returns the shared tables of a version family. Unknown versions
// read with the newest tables.
func tablesFor(v SpecVersion) *tableSet {
	if get, ok := tableSets[v]; ok {
		return get()
	}
	return tableSets[SpecVersion32]()
}

// Typed loaders. Each reads one entity kind with the active tables.

func loadDocument(c *loadContext, n parsenode.Node) (*Document, error) {
	return loadEntity(c, n, c.tables.document)
}

func loadComponents(c *loadContext, n parsenode.Node) (*Components, error) {
	return loadEntity(c, n, c.tables.components)
}

func loadInfo(c *loadContext, n parsenode.Node) (*Info, error) {
	return loadEntity(c, n, c.tables.info)
}

func loadContact(c *loadContext, n parsenode.Node) (*Contact, error) {
	return loadEntity(c, n, c.tables.contact)
}

func loadLicense(c *loadContext, n parsenode.Node) (*License, error) {
	return loadEntity(c, n, c.tables.license)
}

func loadExternalDocs(c *loadContext, n parsenode.Node) (*ExternalDocs, error) {
	return loadEntity(c, n, c.tables.externalDocs)
}

func loadTag(c *loadContext, n parsenode.Node) (*Tag, error) {
	return loadEntity(c, n, c.tables.tag)
}

func loadServer(c *loadContext, n parsenode.Node) (*Server, error) {
	return loadEntity(c, n, c.tables.server)
}

func loadServerVariable(c *loadContext, n parsenode.Node) (*ServerVariable, error) {
	return loadEntity(c, n, c.tables.serverVariable)
}

func loadExample(c *loadContext, n parsenode.Node) (*Example, error) {
	return loadEntity(c, n, c.tables.example)
}

// loadSchema reads a Schema. From 3.1 on a boolean is a schema too.
func loadSchema(c *loadContext, n parsenode.Node) (*Schema, error) {
	if c.tables.version >= SpecVersion31 && isBoolNode(n) {
		return boolSchema(c, n), nil
	}
	return loadEntity(c, n, c.tables.schema)
}

// loadSchemaOrBool reads fields such as additionalProperties that take a
// boolean in every version.
func loadSchemaOrBool(c *loadContext, n parsenode.Node) (*Schema, error) {
	if isBoolNode(n) {
		return boolSchema(c, n), nil
	}
	return loadEntity(c, n, c.tables.schema)
}

func isBoolNode(n parsenode.Node) bool {
	return n.IsScalar() && n.Tag() == parsenode.TagBool
}

func boolSchema(c *loadContext, n parsenode.Node) *Schema {
	v, _ := n.ScalarValue()
	b, _ := v.(bool)
	s := &Schema{Boolean: &b}
	c.register(s)
	return s
}

func loadDiscriminator(c *loadContext, n parsenode.Node) (*Discriminator, error) {
	return loadEntity(c, n, c.tables.discriminator)
}

// loadDiscriminatorName reads the 2.0 form, a bare property name.
func loadDiscriminatorName(c *loadContext, n parsenode.Node) (*Discriminator, error) {
	name, err := c.str(n)
	if err != nil {
		return nil, err
	}
	return &Discriminator{PropertyName: name}, nil
}

func loadXML(c *loadContext, n parsenode.Node) (*XML, error) {
	return loadEntity(c, n, c.tables.xml)
}

func loadParameter(c *loadContext, n parsenode.Node) (*Parameter, error) {
	return loadEntity(c, n, c.tables.parameter)
}

func loadItems(c *loadContext, n parsenode.Node) (*Items, error) {
	return loadEntity(c, n, c.tables.items)
}

func loadRequestBody(c *loadContext, n parsenode.Node) (*RequestBody, error) {
	return loadEntity(c, n, c.tables.requestBody)
}

func loadHeader(c *loadContext, n parsenode.Node) (*Header, error) {
	return loadEntity(c, n, c.tables.header)
}

func loadPaths(c *loadContext, n parsenode.Node) (*Paths, error) {
	return loadEntity(c, n, c.tables.paths)
}

func loadPathItem(c *loadContext, n parsenode.Node) (*PathItem, error) {
	return loadEntity(c, n, c.tables.pathItem)
}

func loadOperation(c *loadContext, n parsenode.Node) (*Operation, error) {
	return loadEntity(c, n, c.tables.operation)
}

func loadResponses(c *loadContext, n parsenode.Node) (*Responses, error) {
	return loadEntity(c, n, c.tables.responses)
}

func loadResponse(c *loadContext, n parsenode.Node) (*Response, error) {
	return loadEntity(c, n, c.tables.response)
}

func loadCallback(c *loadContext, n parsenode.Node) (*Callback, error) {
	return loadEntity(c, n, c.tables.callback)
}

func loadLink(c *loadContext, n parsenode.Node) (*Link, error) {
	return loadEntity(c, n, c.tables.link)
}

func loadMediaType(c *loadContext, n parsenode.Node) (*MediaType, error) {
	return loadEntity(c, n, c.tables.mediaType)
}

func loadEncoding(c *loadContext, n parsenode.Node) (*Encoding, error) {
	return loadEntity(c, n, c.tables.encoding)
}

func loadSecurityScheme(c *loadContext, n parsenode.Node) (*SecurityScheme, error) {
	return loadEntity(c, n, c.tables.securityScheme)
}

func loadOAuthFlows(c *loadContext, n parsenode.Node) (*OAuthFlows, error) {
	return loadEntity(c, n, c.tables.oauthFlows)
}

func loadOAuthFlow(c *loadContext, n parsenode.Node) (*OAuthFlow, error) {
	return loadEntity(c, n, c.tables.oauthFlow)
}

// loadSecurityRequirement reads a map of scheme names to scope lists.
func loadSecurityRequirement(c *loadContext, n parsenode.Node) (*SecurityRequirement, error) {
	if err := c.expect(n, parsenode.KindMapping, "Security Requirement"); err != nil {
		return nil, err
	}
	req := NewOrderedMap[[]string]()
	for name, scopes := range n.Entries() {
		c.path.Push(name)
		list, err := c.stringList(scopes)
		c.path.Pop()
		if err != nil {
			return nil, err
		}
		req.Set(name, list)
	}
	return req, nil
}
