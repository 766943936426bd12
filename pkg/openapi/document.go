package openapi

import "errors"

// Encoding names the wire format a document payload was decoded with.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// Flavor distinguishes the two supported description formats.
type Flavor string

const (
	FlavorSwagger2 Flavor = "swagger-2.0"
	FlavorOpenAPI3 Flavor = "openapi-3.x"
	FlavorUnknown  Flavor = "unknown"
)

// Document wraps a loaded API description: the raw payload, the encoding it
// arrived in, and the generically decoded root mapping. It is immutable after
// load; the parser and emitter only ever read from it.
type Document struct {
	source   Source
	raw      []byte
	encoding Encoding
	root     map[string]any
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte, encoding Encoding, root map[string]any) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone, encoding: encoding, root: root}, nil
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Encoding reports whether the payload was decoded as JSON or YAML.
func (d Document) Encoding() Encoding {
	return d.encoding
}

// Root returns the generically decoded top-level mapping.
func (d Document) Root() map[string]any {
	return d.root
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Flavor inspects the root mapping version markers. OpenAPI 3.x documents
// carry an "openapi" key, Swagger 2.0 documents a "swagger" key.
func (d Document) Flavor() Flavor {
	if _, ok := d.root["openapi"]; ok {
		return FlavorOpenAPI3
	}
	if _, ok := d.root["swagger"]; ok {
		return FlavorSwagger2
	}
	return FlavorUnknown
}

// Parameter is one operation parameter: its name and the location the
// document declares for it (query, header, path, or body for Swagger 2.0).
type Parameter struct {
	Name string
	In   string
}

// Parameter locations recognised by the emitter.
const (
	InQuery  = "query"
	InHeader = "header"
	InPath   = "path"
	InBody   = "body"
)

// BodySource records which document construct supplied an operation's body
// schema. The example generator picks its mode from this.
type BodySource string

const (
	// BodyFromParameter marks a Swagger 2.0 `in: body` parameter schema.
	BodyFromParameter BodySource = "parameter"
	// BodyFromRequestBody marks an OpenAPI 3.x requestBody schema.
	BodyFromRequestBody BodySource = "requestBody"
)

// Schema is the subset of an OpenAPI/Swagger schema node the generator
// consumes. A non-empty Ref is a terminal leaf: referenced definitions are
// never followed, matching the tool's no-dereference policy.
type Schema struct {
	Ref         string
	Type        string
	Format      string
	Description string
	Example     any
	Properties  map[string]Schema
	Items       *Schema
}

// Schema type names as they appear in description documents.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// IsZero reports whether the node carries no usable information at all.
func (s Schema) IsZero() bool {
	return s.Ref == "" &&
		s.Type == "" &&
		s.Example == nil &&
		len(s.Properties) == 0 &&
		s.Items == nil
}

// Clone creates a deep copy of the schema tree to avoid accidental mutation.
func (s Schema) Clone() Schema {
	cloned := s
	if len(s.Properties) > 0 {
		cloned.Properties = make(map[string]Schema, len(s.Properties))
		for name, prop := range s.Properties {
			cloned.Properties[name] = prop.Clone()
		}
	}
	if s.Items != nil {
		items := s.Items.Clone()
		cloned.Items = &items
	}
	return cloned
}

// Operation models one (path, method) pair extracted from the document.
type Operation struct {
	Method      string
	Path        string
	Summary     string
	Description string
	Parameters  []Parameter
	Body        *Schema
	BodySource  BodySource
	Secured     bool
}

// Title returns the request-block heading: the summary when present,
// otherwise "<METHOD> <path>".
func (op Operation) Title() string {
	if op.Summary != "" {
		return op.Summary
	}
	return op.Method + " " + op.Path
}

// ParametersIn filters the operation parameters by location.
func (op Operation) ParametersIn(location string) []Parameter {
	var out []Parameter
	for _, param := range op.Parameters {
		if param.In == location {
			out = append(out, param)
		}
	}
	return out
}

// Collection is the parser output: the resolved base URL plus every
// operation in document order.
type Collection struct {
	BaseURL    string
	Operations []Operation
}
