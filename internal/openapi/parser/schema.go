package parser

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-httpgen/pkg/openapi"
)

// convertSchema maps a kin-openapi schema node onto the domain Schema. A
// reference is always a terminal leaf: the Ref string is kept and the
// resolved value, if kin-openapi populated one, is never descended into.
func convertSchema(ref *openapi3.SchemaRef) pkgopenapi.Schema {
	if ref == nil {
		return pkgopenapi.Schema{}
	}
	if ref.Ref != "" {
		return pkgopenapi.Schema{Ref: ref.Ref}
	}
	if ref.Value == nil {
		return pkgopenapi.Schema{}
	}

	src := ref.Value
	schema := pkgopenapi.Schema{
		Type:        firstSchemaType(src.Type),
		Format:      src.Format,
		Description: src.Description,
		Example:     src.Example,
	}

	if len(src.Properties) > 0 {
		schema.Properties = make(map[string]pkgopenapi.Schema, len(src.Properties))
		for name, property := range src.Properties {
			schema.Properties[name] = convertSchema(property)
		}
	}
	if src.Items != nil {
		items := convertSchema(src.Items)
		schema.Items = &items
	}
	return schema
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
