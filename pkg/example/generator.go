// Package example synthesizes representative JSON values from schema nodes.
// It is the one recursive component of the pipeline: recursion is bounded by
// the literal nesting of the document because references are never followed.
package example

import "github.com/goliatone/go-httpgen/pkg/openapi"

// Mode selects between the two generation policies. Both existed as separate
// call sites historically and differ on purpose; the asymmetries below are
// behaviour, not accidents.
type Mode int

const (
	// ModeExampleFirst honours a node-level example verbatim before any
	// synthesis. Used for Swagger 2.0 body parameters. String placeholders
	// are the literal "string".
	ModeExampleFirst Mode = iota

	// ModeNameHinted ignores a node-level example and always synthesizes
	// from the declared type, but still prefers per-property examples on
	// leaves. Used for OpenAPI 3.x request bodies. String placeholders are
	// derived from the property name.
	ModeNameHinted
)

// Value builds an example value for the schema node.
//
// References are terminal: a node with a $ref yields the placeholder object
// {"$ref": <ref>} and is never dereferenced. An entirely empty schema yields
// the mode's fallback: {} for example-first, {"key": "value"} for
// name-hinted. A missing type defaults to object, so an object with N
// declared properties always produces exactly N keys.
func Value(schema openapi.Schema, mode Mode) any {
	if mode == ModeExampleFirst && schema.Example != nil {
		return schema.Example
	}
	if schema.Ref != "" {
		return refPlaceholder(schema.Ref)
	}
	if schema.IsZero() {
		if mode == ModeNameHinted {
			return map[string]any{"key": "value"}
		}
		return map[string]any{}
	}

	switch schema.Type {
	case openapi.TypeArray:
		return arrayValue(schema, mode)
	case openapi.TypeString:
		return "string"
	case openapi.TypeInteger, openapi.TypeNumber:
		return 0
	case openapi.TypeBoolean:
		return true
	default:
		// object, or no declared type
		out := make(map[string]any, len(schema.Properties))
		for name, prop := range schema.Properties {
			out[name] = propertyValue(name, prop, mode)
		}
		return out
	}
}

func propertyValue(name string, prop openapi.Schema, mode Mode) any {
	if prop.Example != nil {
		return prop.Example
	}
	if prop.Ref != "" {
		return refPlaceholder(prop.Ref)
	}

	switch prop.Type {
	case openapi.TypeString:
		if mode == ModeNameHinted {
			return "example_" + name
		}
		return "string"
	case openapi.TypeInteger, openapi.TypeNumber:
		return 0
	case openapi.TypeBoolean:
		return true
	case openapi.TypeArray:
		return arrayValue(prop, mode)
	default:
		return Value(prop, mode)
	}
}

// arrayValue always produces a one-element sequence regardless of any
// declared cardinality; a missing items schema recurses on the empty schema
// and picks up the mode fallback.
func arrayValue(schema openapi.Schema, mode Mode) any {
	items := openapi.Schema{}
	if schema.Items != nil {
		items = *schema.Items
	}
	return []any{Value(items, mode)}
}

func refPlaceholder(ref string) map[string]any {
	return map[string]any{"$ref": ref}
}
