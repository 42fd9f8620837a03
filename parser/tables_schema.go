package parser

import (
	"github.com/erraggy/oasdoc/parsenode"
)

// schemaFields are shared by every version.
func schemaFields() fields[Schema] {
	return fields[Schema]{
		"title":       stringField(func(e *Schema) *string { return &e.Title }),
		"description": stringField(func(e *Schema) *string { return &e.Description }),
		"default":     anyField(func(e *Schema) *any { return &e.Default }),
		"enum":        anyListField(func(e *Schema) *[]any { return &e.Enum }),
		"type":        schemaType(false),
		"format":      stringField(func(e *Schema) *string { return &e.Format }),

		"multipleOf":       floatField(func(e *Schema) **float64 { return &e.MultipleOf }),
		"maximum":          floatField(func(e *Schema) **float64 { return &e.Maximum }),
		"exclusiveMaximum": exclusiveBound(func(e *Schema) *any { return &e.ExclusiveMaximum }, false),
		"minimum":          floatField(func(e *Schema) **float64 { return &e.Minimum }),
		"exclusiveMinimum": exclusiveBound(func(e *Schema) *any { return &e.ExclusiveMinimum }, false),
		"maxLength":        intField(func(e *Schema) **int { return &e.MaxLength }),
		"minLength":        intField(func(e *Schema) **int { return &e.MinLength }),
		"pattern":          stringField(func(e *Schema) *string { return &e.Pattern }),

		"items":       entityField(func(e *Schema) **Schema { return &e.Items }, loadSchema),
		"maxItems":    intField(func(e *Schema) **int { return &e.MaxItems }),
		"minItems":    intField(func(e *Schema) **int { return &e.MinItems }),
		"uniqueItems": boolField(func(e *Schema) *bool { return &e.UniqueItems }),

		"properties":           entityMapField(func(e *Schema) **OrderedMap[*Schema] { return &e.Properties }, loadSchema),
		"additionalProperties": entityField(func(e *Schema) **Schema { return &e.AdditionalProperties }, loadSchemaOrBool),
		"required":             stringListField(func(e *Schema) *[]string { return &e.Required }),
		"maxProperties":        intField(func(e *Schema) **int { return &e.MaxProperties }),
		"minProperties":        intField(func(e *Schema) **int { return &e.MinProperties }),

		"allOf": entityListField(func(e *Schema) *[]*Schema { return &e.AllOf }, loadSchema),

		"readOnly":     boolField(func(e *Schema) *bool { return &e.ReadOnly }),
		"xml":          entityField(func(e *Schema) **XML { return &e.XML }, loadXML),
		"externalDocs": entityField(func(e *Schema) **ExternalDocs { return &e.ExternalDocs }, loadExternalDocs),
		"example":      anyField(func(e *Schema) *any { return &e.Example }),
	}
}

// schemaFields30 are the OpenAPI 3.0 additions.
func schemaFields30() fields[Schema] {
	return fields[Schema]{
		"nullable":      boolField(func(e *Schema) *bool { return &e.Nullable }),
		"discriminator": entityField(func(e *Schema) **Discriminator { return &e.Discriminator }, loadDiscriminator),
		"writeOnly":     boolField(func(e *Schema) *bool { return &e.WriteOnly }),
		"deprecated":    boolField(func(e *Schema) *bool { return &e.Deprecated }),
		"anyOf":         entityListField(func(e *Schema) *[]*Schema { return &e.AnyOf }, loadSchema),
		"oneOf":         entityListField(func(e *Schema) *[]*Schema { return &e.OneOf }, loadSchema),
		"not":           entityField(func(e *Schema) **Schema { return &e.Not }, loadSchema),
	}
}

// schemaFields31 are the JSON Schema 2020-12 keywords OpenAPI 3.1 adopted.
func schemaFields31() fields[Schema] {
	return fields[Schema]{
		"$schema":  stringField(func(e *Schema) *string { return &e.Schema }),
		"$id":      stringField(func(e *Schema) *string { return &e.ID }),
		"$anchor":  stringField(func(e *Schema) *string { return &e.Anchor }),
		"$comment": stringField(func(e *Schema) *string { return &e.Comment }),
		"$defs":    entityMapField(func(e *Schema) **OrderedMap[*Schema] { return &e.Defs }, loadSchema),

		"type":             schemaType(true),
		"const":            anyField(func(e *Schema) *any { return &e.Const }),
		"examples":         anyListField(func(e *Schema) *[]any { return &e.Examples }),
		"exclusiveMaximum": exclusiveBound(func(e *Schema) *any { return &e.ExclusiveMaximum }, true),
		"exclusiveMinimum": exclusiveBound(func(e *Schema) *any { return &e.ExclusiveMinimum }, true),

		"prefixItems": entityListField(func(e *Schema) *[]*Schema { return &e.PrefixItems }, loadSchema),
		"contains":    entityField(func(e *Schema) **Schema { return &e.Contains }, loadSchema),
		"maxContains": intField(func(e *Schema) **int { return &e.MaxContains }),
		"minContains": intField(func(e *Schema) **int { return &e.MinContains }),

		"patternProperties":     entityMapField(func(e *Schema) **OrderedMap[*Schema] { return &e.PatternProperties }, loadSchema),
		"unevaluatedProperties": entityField(func(e *Schema) **Schema { return &e.UnevaluatedProperties }, loadSchemaOrBool),
		"propertyNames":         entityField(func(e *Schema) **Schema { return &e.PropertyNames }, loadSchema),
		"dependentSchemas":      entityMapField(func(e *Schema) **OrderedMap[*Schema] { return &e.DependentSchemas }, loadSchema),

		"if":   entityField(func(e *Schema) **Schema { return &e.If }, loadSchema),
		"then": entityField(func(e *Schema) **Schema { return &e.Then }, loadSchema),
		"else": entityField(func(e *Schema) **Schema { return &e.Else }, loadSchema),
	}
}

func schemaTable(v SpecVersion) *fieldTable[Schema] {
	setRef := func(e *Schema, r *Reference) { e.Ref = r }
	switch {
	case v == SpecVersion20:
		return newTable("Schema", schemaFields(), fields[Schema]{
			"discriminator": entityField(func(e *Schema) **Discriminator { return &e.Discriminator }, loadDiscriminatorName),
		}).referenceable(setRef, false)
	case v == SpecVersion30:
		return newTable("Schema", schemaFields(), schemaFields30()).referenceable(setRef, false)
	default:
		return newTable("Schema", schemaFields(), schemaFields30(), schemaFields31()).
			without("nullable").
			referenceable(setRef, false)
	}
}

// schemaType reads "type": a string, or from 3.1 on a list of strings.
func schemaType(allowList bool) fieldFunc[Schema] {
	return func(c *loadContext, n parsenode.Node, e *Schema) error {
		if allowList && n.IsSequence() {
			list, err := c.stringList(n)
			if err != nil {
				return err
			}
			e.Type = list
			return nil
		}
		s, err := c.str(n)
		if err != nil || s == "" {
			return err
		}
		e.Type = s
		return nil
	}
}

// exclusiveBound reads exclusiveMaximum/Minimum: a boolean modifier up to
// 3.0, a number from 3.1 on. A boolean is still accepted in numeric mode.
func exclusiveBound(get func(*Schema) *any, numeric bool) fieldFunc[Schema] {
	return func(c *loadContext, n parsenode.Node, e *Schema) error {
		if numeric && !isBoolNode(n) {
			v, err := c.float(n)
			if err != nil || v == nil {
				return err
			}
			*get(e) = *v
			return nil
		}
		b, err := c.boolean(n)
		if err != nil || b == nil {
			return err
		}
		*get(e) = *b
		return nil
	}
}

func discriminatorTable() *fieldTable[Discriminator] {
	return newTable("Discriminator", fields[Discriminator]{
		"propertyName": stringField(func(e *Discriminator) *string { return &e.PropertyName }),
		"mapping":      stringMapField(func(e *Discriminator) **OrderedMap[string] { return &e.Mapping }),
	})
}

func xmlTable() *fieldTable[XML] {
	return newTable("XML", fields[XML]{
		"name":      stringField(func(e *XML) *string { return &e.Name }),
		"namespace": stringField(func(e *XML) *string { return &e.Namespace }),
		"prefix":    stringField(func(e *XML) *string { return &e.Prefix }),
		"attribute": boolField(func(e *XML) *bool { return &e.Attribute }),
		"wrapped":   boolField(func(e *XML) *bool { return &e.Wrapped }),
	})
}
