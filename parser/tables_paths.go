package parser

import (
	"github.com/erraggy/oasdoc/parsenode"
)

// simpleValueFields are the 2.0 non-body parameter, header and items fields.
func simpleValueFields[T any](sv func(*T) *SimpleValue) fields[T] {
	return fields[T]{
		"type":             stringField(func(e *T) *string { return &sv(e).Type }),
		"format":           stringField(func(e *T) *string { return &sv(e).Format }),
		"items":            entityField(func(e *T) **Items { return &sv(e).Items }, loadItems),
		"collectionFormat": stringField(func(e *T) *string { return &sv(e).CollectionFormat }),
		"default":          anyField(func(e *T) *any { return &sv(e).Default }),
		"maximum":          floatField(func(e *T) **float64 { return &sv(e).Maximum }),
		"exclusiveMaximum": boolField(func(e *T) *bool { return &sv(e).ExclusiveMaximum }),
		"minimum":          floatField(func(e *T) **float64 { return &sv(e).Minimum }),
		"exclusiveMinimum": boolField(func(e *T) *bool { return &sv(e).ExclusiveMinimum }),
		"maxLength":        intField(func(e *T) **int { return &sv(e).MaxLength }),
		"minLength":        intField(func(e *T) **int { return &sv(e).MinLength }),
		"pattern":          stringField(func(e *T) *string { return &sv(e).Pattern }),
		"maxItems":         intField(func(e *T) **int { return &sv(e).MaxItems }),
		"minItems":         intField(func(e *T) **int { return &sv(e).MinItems }),
		"uniqueItems":      boolField(func(e *T) *bool { return &sv(e).UniqueItems }),
		"enum":             anyListField(func(e *T) *[]any { return &sv(e).Enum }),
		"multipleOf":       floatField(func(e *T) **float64 { return &sv(e).MultipleOf }),
	}
}

func parameterTable(v SpecVersion) *fieldTable[Parameter] {
	base := fields[Parameter]{
		"name":            stringField(func(e *Parameter) *string { return &e.Name }),
		"in":              stringField(func(e *Parameter) *string { return &e.In }),
		"description":     stringField(func(e *Parameter) *string { return &e.Description }),
		"required":        boolField(func(e *Parameter) *bool { return &e.Required }),
		"allowEmptyValue": boolField(func(e *Parameter) *bool { return &e.AllowEmptyValue }),
		"schema":          entityField(func(e *Parameter) **Schema { return &e.Schema }, loadSchema),
	}
	setRef := func(e *Parameter, r *Reference) { e.Ref = r }
	if v == SpecVersion20 {
		sv := simpleValueFields(func(e *Parameter) *SimpleValue { return &e.SimpleValue })
		return newTable("Parameter", sv, base).referenceable(setRef, false)
	}
	return newTable("Parameter", base, fields[Parameter]{
		"deprecated":    boolField(func(e *Parameter) *bool { return &e.Deprecated }),
		"style":         stringField(func(e *Parameter) *string { return &e.Style }),
		"explode":       boolPtrField(func(e *Parameter) **bool { return &e.Explode }),
		"allowReserved": boolField(func(e *Parameter) *bool { return &e.AllowReserved }),
		"example":       anyField(func(e *Parameter) *any { return &e.Example }),
		"examples":      entityMapField(func(e *Parameter) **OrderedMap[*Example] { return &e.Examples }, loadExample),
		"content":       entityMapField(func(e *Parameter) **OrderedMap[*MediaType] { return &e.Content }, loadMediaType),
	}).referenceable(setRef, true)
}

func itemsTable() *fieldTable[Items] {
	return newTable("Items", simpleValueFields(func(e *Items) *SimpleValue { return &e.SimpleValue }))
}

func requestBodyTable() *fieldTable[RequestBody] {
	return newTable("Request Body", fields[RequestBody]{
		"description": stringField(func(e *RequestBody) *string { return &e.Description }),
		"content":     entityMapField(func(e *RequestBody) **OrderedMap[*MediaType] { return &e.Content }, loadMediaType),
		"required":    boolField(func(e *RequestBody) *bool { return &e.Required }),
	}).referenceable(func(e *RequestBody, r *Reference) { e.Ref = r }, true)
}

func headerTable(v SpecVersion) *fieldTable[Header] {
	desc := fields[Header]{
		"description": stringField(func(e *Header) *string { return &e.Description }),
	}
	if v == SpecVersion20 {
		sv := simpleValueFields(func(e *Header) *SimpleValue { return &e.SimpleValue })
		return newTable("Header", sv, desc)
	}
	setRef := func(e *Header, r *Reference) { e.Ref = r }
	return newTable("Header", desc, fields[Header]{
		"required":   boolField(func(e *Header) *bool { return &e.Required }),
		"deprecated": boolField(func(e *Header) *bool { return &e.Deprecated }),
		"style":      stringField(func(e *Header) *string { return &e.Style }),
		"explode":    boolPtrField(func(e *Header) **bool { return &e.Explode }),
		"schema":     entityField(func(e *Header) **Schema { return &e.Schema }, loadSchema),
		"example":    anyField(func(e *Header) *any { return &e.Example }),
		"examples":   entityMapField(func(e *Header) **OrderedMap[*Example] { return &e.Examples }, loadExample),
		"content":    entityMapField(func(e *Header) **OrderedMap[*MediaType] { return &e.Content }, loadMediaType),
	}).referenceable(setRef, true)
}

func pathsTable() *fieldTable[Paths] {
	return newTable[Paths]("Paths").pattern(patternField[Paths]{
		match: isPathKey,
		load: func(c *loadContext, name string, n parsenode.Node, e *Paths) error {
			item, err := loadPathItem(c, n)
			if err != nil {
				return err
			}
			if e.Items == nil {
				e.Items = NewOrderedMap[*PathItem]()
			}
			e.Items.Set(name, item)
			return nil
		},
	})
}

func operationField(get func(*PathItem) **Operation) fieldFunc[PathItem] {
	return entityField(get, loadOperation)
}

func pathItemTable(v SpecVersion) *fieldTable[PathItem] {
	t := newTable("Path Item", fields[PathItem]{
		"summary":     stringField(func(e *PathItem) *string { return &e.Summary }),
		"description": stringField(func(e *PathItem) *string { return &e.Description }),
		"get":         operationField(func(e *PathItem) **Operation { return &e.Get }),
		"put":         operationField(func(e *PathItem) **Operation { return &e.Put }),
		"post":        operationField(func(e *PathItem) **Operation { return &e.Post }),
		"delete":      operationField(func(e *PathItem) **Operation { return &e.Delete }),
		"options":     operationField(func(e *PathItem) **Operation { return &e.Options }),
		"head":        operationField(func(e *PathItem) **Operation { return &e.Head }),
		"patch":       operationField(func(e *PathItem) **Operation { return &e.Patch }),
		"trace":       operationField(func(e *PathItem) **Operation { return &e.Trace }),
		"query":       operationField(func(e *PathItem) **Operation { return &e.Query }),
		"additionalOperations": entityMapField(
			func(e *PathItem) **OrderedMap[*Operation] { return &e.AdditionalOperations }, loadOperation),
		"servers":    entityListField(func(e *PathItem) *[]*Server { return &e.Servers }, loadServer),
		"parameters": entityListField(func(e *PathItem) *[]*Parameter { return &e.Parameters }, loadParameter),
	}).referenceable(func(e *PathItem, r *Reference) { e.Ref = r }, false)
	switch v {
	case SpecVersion20:
		t.without("summary", "description", "trace", "servers", "query", "additionalOperations")
	case SpecVersion30, SpecVersion31:
		t.without("query", "additionalOperations")
	}
	return t
}

func operationTable(v SpecVersion) *fieldTable[Operation] {
	base := fields[Operation]{
		"tags":         stringListField(func(e *Operation) *[]string { return &e.Tags }),
		"summary":      stringField(func(e *Operation) *string { return &e.Summary }),
		"description":  stringField(func(e *Operation) *string { return &e.Description }),
		"externalDocs": entityField(func(e *Operation) **ExternalDocs { return &e.ExternalDocs }, loadExternalDocs),
		"operationId":  stringField(func(e *Operation) *string { return &e.OperationID }),
		"parameters":   entityListField(func(e *Operation) *[]*Parameter { return &e.Parameters }, loadParameter),
		"responses":    entityField(func(e *Operation) **Responses { return &e.Responses }, loadResponses),
		"deprecated":   boolField(func(e *Operation) *bool { return &e.Deprecated }),
		"security":     securityField(func(e *Operation) *[]*SecurityRequirement { return &e.Security }),
	}
	if v == SpecVersion20 {
		return newTable("Operation", base, fields[Operation]{
			"consumes": stringListField(func(e *Operation) *[]string { return &e.Consumes }),
			"produces": stringListField(func(e *Operation) *[]string { return &e.Produces }),
			"schemes":  stringListField(func(e *Operation) *[]string { return &e.Schemes }),
		})
	}
	return newTable("Operation", base, fields[Operation]{
		"requestBody": entityField(func(e *Operation) **RequestBody { return &e.RequestBody }, loadRequestBody),
		"callbacks":   entityMapField(func(e *Operation) **OrderedMap[*Callback] { return &e.Callbacks }, loadCallback),
		"servers":     entityListField(func(e *Operation) *[]*Server { return &e.Servers }, loadServer),
	})
}

func responsesTable() *fieldTable[Responses] {
	return newTable("Responses", fields[Responses]{
		"default": entityField(func(e *Responses) **Response { return &e.Default }, loadResponse),
	}).pattern(patternField[Responses]{
		match: isStatusCode,
		load: func(c *loadContext, name string, n parsenode.Node, e *Responses) error {
			r, err := loadResponse(c, n)
			if err != nil {
				return err
			}
			if e.Codes == nil {
				e.Codes = NewOrderedMap[*Response]()
			}
			e.Codes.Set(name, r)
			return nil
		},
	})
}

func responseTable(v SpecVersion) *fieldTable[Response] {
	base := fields[Response]{
		"description": stringField(func(e *Response) *string { return &e.Description }),
		"headers":     entityMapField(func(e *Response) **OrderedMap[*Header] { return &e.Headers }, loadHeader),
	}
	setRef := func(e *Response, r *Reference) { e.Ref = r }
	if v == SpecVersion20 {
		return newTable("Response", base, fields[Response]{
			"schema":   entityField(func(e *Response) **Schema { return &e.Schema }, loadSchema),
			"examples": anyMapField(func(e *Response) **OrderedMap[any] { return &e.Examples }),
		}).referenceable(setRef, false)
	}
	return newTable("Response", base, fields[Response]{
		"content": entityMapField(func(e *Response) **OrderedMap[*MediaType] { return &e.Content }, loadMediaType),
		"links":   entityMapField(func(e *Response) **OrderedMap[*Link] { return &e.Links }, loadLink),
	}).referenceable(setRef, true)
}

func callbackTable() *fieldTable[Callback] {
	return newTable[Callback]("Callback").pattern(patternField[Callback]{
		match: isExpression,
		load: func(c *loadContext, name string, n parsenode.Node, e *Callback) error {
			item, err := loadPathItem(c, n)
			if err != nil {
				return err
			}
			if e.Expressions == nil {
				e.Expressions = NewOrderedMap[*PathItem]()
			}
			e.Expressions.Set(name, item)
			return nil
		},
	}).referenceable(func(e *Callback, r *Reference) { e.Ref = r }, true)
}

func linkTable() *fieldTable[Link] {
	return newTable("Link", fields[Link]{
		"operationRef": stringField(func(e *Link) *string { return &e.OperationRef }),
		"operationId":  stringField(func(e *Link) *string { return &e.OperationID }),
		"parameters":   anyMapField(func(e *Link) **OrderedMap[any] { return &e.Parameters }),
		"requestBody":  anyField(func(e *Link) *any { return &e.RequestBody }),
		"description":  stringField(func(e *Link) *string { return &e.Description }),
		"server":       entityField(func(e *Link) **Server { return &e.Server }, loadServer),
	}).referenceable(func(e *Link, r *Reference) { e.Ref = r }, true)
}

func mediaTypeTable() *fieldTable[MediaType] {
	return newTable("Media Type", fields[MediaType]{
		"schema":   entityField(func(e *MediaType) **Schema { return &e.Schema }, loadSchema),
		"example":  anyField(func(e *MediaType) *any { return &e.Example }),
		"examples": entityMapField(func(e *MediaType) **OrderedMap[*Example] { return &e.Examples }, loadExample),
		"encoding": entityMapField(func(e *MediaType) **OrderedMap[*Encoding] { return &e.Encoding }, loadEncoding),
	}).referenceable(func(e *MediaType, r *Reference) { e.Ref = r }, true)
}

func encodingTable() *fieldTable[Encoding] {
	return newTable("Encoding", fields[Encoding]{
		"contentType":   stringField(func(e *Encoding) *string { return &e.ContentType }),
		"headers":       entityMapField(func(e *Encoding) **OrderedMap[*Header] { return &e.Headers }, loadHeader),
		"style":         stringField(func(e *Encoding) *string { return &e.Style }),
		"explode":       boolPtrField(func(e *Encoding) **bool { return &e.Explode }),
		"allowReserved": boolField(func(e *Encoding) *bool { return &e.AllowReserved }),
	})
}
