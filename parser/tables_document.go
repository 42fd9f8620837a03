package parser

func securitySchemeTable(v SpecVersion) *fieldTable[SecurityScheme] {
	base := fields[SecurityScheme]{
		"type":        stringField(func(e *SecurityScheme) *string { return &e.Type }),
		"description": stringField(func(e *SecurityScheme) *string { return &e.Description }),
		"name":        stringField(func(e *SecurityScheme) *string { return &e.Name }),
		"in":          stringField(func(e *SecurityScheme) *string { return &e.In }),
	}
	setRef := func(e *SecurityScheme, r *Reference) { e.Ref = r }
	if v == SpecVersion20 {
		return newTable("Security Scheme", base, fields[SecurityScheme]{
			"flow":             stringField(func(e *SecurityScheme) *string { return &e.Flow }),
			"authorizationUrl": stringField(func(e *SecurityScheme) *string { return &e.AuthorizationURL }),
			"tokenUrl":         stringField(func(e *SecurityScheme) *string { return &e.TokenURL }),
			"scopes":           stringMapField(func(e *SecurityScheme) **OrderedMap[string] { return &e.Scopes }),
		}).referenceable(setRef, false)
	}
	t := newTable("Security Scheme", base, fields[SecurityScheme]{
		"scheme":           stringField(func(e *SecurityScheme) *string { return &e.Scheme }),
		"bearerFormat":     stringField(func(e *SecurityScheme) *string { return &e.BearerFormat }),
		"flows":            entityField(func(e *SecurityScheme) **OAuthFlows { return &e.Flows }, loadOAuthFlows),
		"openIdConnectUrl": stringField(func(e *SecurityScheme) *string { return &e.OpenIDConnectURL }),
		"deprecated":       boolField(func(e *SecurityScheme) *bool { return &e.Deprecated }),
	}).referenceable(setRef, true)
	if v < SpecVersion32 {
		t.without("deprecated")
	}
	return t
}

func oauthFlowsTable(v SpecVersion) *fieldTable[OAuthFlows] {
	t := newTable("OAuth Flows", fields[OAuthFlows]{
		"implicit":            entityField(func(e *OAuthFlows) **OAuthFlow { return &e.Implicit }, loadOAuthFlow),
		"password":            entityField(func(e *OAuthFlows) **OAuthFlow { return &e.Password }, loadOAuthFlow),
		"clientCredentials":   entityField(func(e *OAuthFlows) **OAuthFlow { return &e.ClientCredentials }, loadOAuthFlow),
		"authorizationCode":   entityField(func(e *OAuthFlows) **OAuthFlow { return &e.AuthorizationCode }, loadOAuthFlow),
		"deviceAuthorization": entityField(func(e *OAuthFlows) **OAuthFlow { return &e.DeviceAuthorization }, loadOAuthFlow),
	})
	if v < SpecVersion32 {
		t.without("deviceAuthorization")
	}
	return t
}

func oauthFlowTable(v SpecVersion) *fieldTable[OAuthFlow] {
	t := newTable("OAuth Flow", fields[OAuthFlow]{
		"authorizationUrl":       stringField(func(e *OAuthFlow) *string { return &e.AuthorizationURL }),
		"deviceAuthorizationUrl": stringField(func(e *OAuthFlow) *string { return &e.DeviceAuthorizationURL }),
		"tokenUrl":               stringField(func(e *OAuthFlow) *string { return &e.TokenURL }),
		"refreshUrl":             stringField(func(e *OAuthFlow) *string { return &e.RefreshURL }),
		"scopes":                 stringMapField(func(e *OAuthFlow) **OrderedMap[string] { return &e.Scopes }),
	})
	if v < SpecVersion32 {
		t.without("deviceAuthorizationUrl")
	}
	return t
}

func componentsTable(v SpecVersion) *fieldTable[Components] {
	t := newTable("Components", fields[Components]{
		"schemas":         entityMapField(func(e *Components) **OrderedMap[*Schema] { return &e.Schemas }, loadSchema),
		"responses":       entityMapField(func(e *Components) **OrderedMap[*Response] { return &e.Responses }, loadResponse),
		"parameters":      entityMapField(func(e *Components) **OrderedMap[*Parameter] { return &e.Parameters }, loadParameter),
		"examples":        entityMapField(func(e *Components) **OrderedMap[*Example] { return &e.Examples }, loadExample),
		"requestBodies":   entityMapField(func(e *Components) **OrderedMap[*RequestBody] { return &e.RequestBodies }, loadRequestBody),
		"headers":         entityMapField(func(e *Components) **OrderedMap[*Header] { return &e.Headers }, loadHeader),
		"securitySchemes": entityMapField(func(e *Components) **OrderedMap[*SecurityScheme] { return &e.SecuritySchemes }, loadSecurityScheme),
		"links":           entityMapField(func(e *Components) **OrderedMap[*Link] { return &e.Links }, loadLink),
		"callbacks":       entityMapField(func(e *Components) **OrderedMap[*Callback] { return &e.Callbacks }, loadCallback),
		"pathItems":       entityMapField(func(e *Components) **OrderedMap[*PathItem] { return &e.PathItems }, loadPathItem),
		"mediaTypes":      entityMapField(func(e *Components) **OrderedMap[*MediaType] { return &e.MediaTypes }, loadMediaType),
	})
	switch v {
	case SpecVersion30:
		t.without("pathItems", "mediaTypes")
	case SpecVersion31:
		t.without("mediaTypes")
	}
	return t
}

func documentTable(v SpecVersion) *fieldTable[Document] {
	base := fields[Document]{
		"info":         entityField(func(e *Document) **Info { return &e.Info }, loadInfo),
		"paths":        entityField(func(e *Document) **Paths { return &e.Paths }, loadPaths),
		"security":     securityField(func(e *Document) *[]*SecurityRequirement { return &e.Security }),
		"tags":         entityListField(func(e *Document) *[]*Tag { return &e.Tags }, loadTag),
		"externalDocs": entityField(func(e *Document) **ExternalDocs { return &e.ExternalDocs }, loadExternalDocs),
	}
	if v == SpecVersion20 {
		return newTable("Swagger", base, fields[Document]{
			"swagger":             stringField(func(e *Document) *string { return &e.Swagger }),
			"host":                stringField(func(e *Document) *string { return &e.Host }),
			"basePath":            stringField(func(e *Document) *string { return &e.BasePath }),
			"schemes":             stringListField(func(e *Document) *[]string { return &e.Schemes }),
			"consumes":            stringListField(func(e *Document) *[]string { return &e.Consumes }),
			"produces":            stringListField(func(e *Document) *[]string { return &e.Produces }),
			"definitions":         entityMapField(func(e *Document) **OrderedMap[*Schema] { return &e.Definitions }, loadSchema),
			"parameters":          entityMapField(func(e *Document) **OrderedMap[*Parameter] { return &e.Parameters }, loadParameter),
			"responses":           entityMapField(func(e *Document) **OrderedMap[*Response] { return &e.Responses }, loadResponse),
			"securityDefinitions": entityMapField(func(e *Document) **OrderedMap[*SecurityScheme] { return &e.SecurityDefinitions }, loadSecurityScheme),
		})
	}
	t := newTable("OpenAPI", base, fields[Document]{
		"openapi":           stringField(func(e *Document) *string { return &e.OpenAPI }),
		"servers":           entityListField(func(e *Document) *[]*Server { return &e.Servers }, loadServer),
		"components":        entityField(func(e *Document) **Components { return &e.Components }, loadComponents),
		"webhooks":          entityMapField(func(e *Document) **OrderedMap[*PathItem] { return &e.Webhooks }, loadPathItem),
		"jsonSchemaDialect": stringField(func(e *Document) *string { return &e.JSONSchemaDialect }),
		"$self":             stringField(func(e *Document) *string { return &e.Self }),
	})
	switch v {
	case SpecVersion30:
		t.without("webhooks", "jsonSchemaDialect", "$self")
	case SpecVersion31:
		t.without("$self")
	}
	return t
}
