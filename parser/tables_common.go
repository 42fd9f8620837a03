package parser

func infoTable(v SpecVersion) *fieldTable[Info] {
	base := fields[Info]{
		"title":          stringField(func(e *Info) *string { return &e.Title }),
		"description":    stringField(func(e *Info) *string { return &e.Description }),
		"termsOfService": stringField(func(e *Info) *string { return &e.TermsOfService }),
		"contact":        entityField(func(e *Info) **Contact { return &e.Contact }, loadContact),
		"license":        entityField(func(e *Info) **License { return &e.License }, loadLicense),
		"version":        stringField(func(e *Info) *string { return &e.Version }),
	}
	if v < SpecVersion31 {
		return newTable("Info", base)
	}
	return newTable("Info", base, fields[Info]{
		"summary": stringField(func(e *Info) *string { return &e.Summary }),
	})
}

func contactTable() *fieldTable[Contact] {
	return newTable("Contact", fields[Contact]{
		"name":  stringField(func(e *Contact) *string { return &e.Name }),
		"url":   stringField(func(e *Contact) *string { return &e.URL }),
		"email": stringField(func(e *Contact) *string { return &e.Email }),
	})
}

func licenseTable(v SpecVersion) *fieldTable[License] {
	t := newTable("License", fields[License]{
		"name":       stringField(func(e *License) *string { return &e.Name }),
		"url":        stringField(func(e *License) *string { return &e.URL }),
		"identifier": stringField(func(e *License) *string { return &e.Identifier }),
	})
	if v < SpecVersion31 {
		t.without("identifier")
	}
	return t
}

func externalDocsTable() *fieldTable[ExternalDocs] {
	return newTable("External Documentation", fields[ExternalDocs]{
		"description": stringField(func(e *ExternalDocs) *string { return &e.Description }),
		"url":         stringField(func(e *ExternalDocs) *string { return &e.URL }),
	})
}

func tagTable(v SpecVersion) *fieldTable[Tag] {
	t := newTable("Tag", fields[Tag]{
		"name":         stringField(func(e *Tag) *string { return &e.Name }),
		"description":  stringField(func(e *Tag) *string { return &e.Description }),
		"externalDocs": entityField(func(e *Tag) **ExternalDocs { return &e.ExternalDocs }, loadExternalDocs),
		"summary":      stringField(func(e *Tag) *string { return &e.Summary }),
		"parent":       stringField(func(e *Tag) *string { return &e.Parent }),
		"kind":         stringField(func(e *Tag) *string { return &e.Kind }),
	})
	if v < SpecVersion32 {
		t.without("summary", "parent", "kind")
	}
	return t
}

func serverTable(v SpecVersion) *fieldTable[Server] {
	t := newTable("Server", fields[Server]{
		"url":         stringField(func(e *Server) *string { return &e.URL }),
		"description": stringField(func(e *Server) *string { return &e.Description }),
		"name":        stringField(func(e *Server) *string { return &e.Name }),
		"variables":   entityMapField(func(e *Server) **OrderedMap[*ServerVariable] { return &e.Variables }, loadServerVariable),
	})
	if v < SpecVersion32 {
		t.without("name")
	}
	return t
}

func serverVariableTable() *fieldTable[ServerVariable] {
	return newTable("Server Variable", fields[ServerVariable]{
		"enum":        stringListField(func(e *ServerVariable) *[]string { return &e.Enum }),
		"default":     stringField(func(e *ServerVariable) *string { return &e.Default }),
		"description": stringField(func(e *ServerVariable) *string { return &e.Description }),
	})
}

func exampleTable() *fieldTable[Example] {
	return newTable("Example", fields[Example]{
		"summary":       stringField(func(e *Example) *string { return &e.Summary }),
		"description":   stringField(func(e *Example) *string { return &e.Description }),
		"value":         anyField(func(e *Example) *any { return &e.Value }),
		"externalValue": stringField(func(e *Example) *string { return &e.ExternalValue }),
	}).referenceable(func(e *Example, r *Reference) { e.Ref = r }, true)
}
