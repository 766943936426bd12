package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	pkgopenapi "github.com/goliatone/go-httpgen/pkg/openapi"
)

// requestMethods is the set of path-item keys treated as operations. Every
// other key at the path level (parameters, summary, vendor extensions) is
// ignored.
var requestMethods = map[string]struct{}{
	"get":     {},
	"post":    {},
	"put":     {},
	"delete":  {},
	"patch":   {},
	"head":    {},
	"options": {},
}

func isRequestMethod(key string) bool {
	_, ok := requestMethods[strings.ToLower(key)]
	return ok
}

// Parser implements pkgopenapi.Parser on top of kin-openapi, handling both
// the Swagger 2.0 and OpenAPI 3.x document flavours.
type Parser struct {
	options pkgopenapi.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgopenapi.ParserOptions) pkgopenapi.Parser {
	return &Parser{options: options}
}

// Parse normalises the document into a Collection with operations in
// document order.
func (p *Parser) Parse(ctx context.Context, doc pkgopenapi.Document) (pkgopenapi.Collection, error) {
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Collection{}, err
	}

	switch doc.Flavor() {
	case pkgopenapi.FlavorOpenAPI3:
		return p.parseV3(ctx, doc)
	case pkgopenapi.FlavorSwagger2:
		return p.parseV2(ctx, doc)
	default:
		return pkgopenapi.Collection{}, fmt.Errorf("openapi parser: document %q declares neither openapi nor swagger version", doc.Location())
	}
}

func (p *Parser) parseV3(ctx context.Context, doc pkgopenapi.Document) (pkgopenapi.Collection, error) {
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}

	spec, err := loader.LoadFromData(doc.Raw())
	if err != nil {
		return pkgopenapi.Collection{}, fmt.Errorf("openapi parser: load document: %w", err)
	}

	collection := pkgopenapi.Collection{
		BaseURL: p.baseURLFromServers(spec.Servers),
	}

	var paths map[string]*openapi3.PathItem
	if spec.Paths != nil {
		paths = spec.Paths.Map()
	}

	docSecured := len(spec.Security) > 0

	for _, entry := range documentOrder(doc, sortedKeys(paths)) {
		item := paths[entry.path]
		if item == nil {
			continue
		}
		for _, method := range entry.methods {
			operation := v3Operation(item, method)
			if operation == nil {
				continue
			}
			collection.Operations = append(collection.Operations, p.convertV3Operation(entry.path, method, operation, docSecured))
		}
	}

	return collection, nil
}

func v3Operation(item *openapi3.PathItem, method string) *openapi3.Operation {
	switch strings.ToLower(method) {
	case "get":
		return item.Get
	case "post":
		return item.Post
	case "put":
		return item.Put
	case "delete":
		return item.Delete
	case "patch":
		return item.Patch
	case "head":
		return item.Head
	case "options":
		return item.Options
	default:
		return nil
	}
}

func (p *Parser) convertV3Operation(path, method string, src *openapi3.Operation, docSecured bool) pkgopenapi.Operation {
	op := pkgopenapi.Operation{
		Method:      strings.ToUpper(method),
		Path:        path,
		Summary:     src.Summary,
		Description: src.Description,
		Secured:     docSecured || (src.Security != nil && len(*src.Security) > 0),
	}

	for _, ref := range src.Parameters {
		if ref == nil || ref.Value == nil {
			continue
		}
		op.Parameters = append(op.Parameters, pkgopenapi.Parameter{
			Name: ref.Value.Name,
			In:   ref.Value.In,
		})
	}

	if body := v3RequestBodySchema(src.RequestBody); body != nil {
		op.Body = body
		op.BodySource = pkgopenapi.BodyFromRequestBody
	}

	return op
}

// v3RequestBodySchema extracts the application/json schema from a
// requestBody. Other media types do not produce an example body.
func v3RequestBodySchema(ref *openapi3.RequestBodyRef) *pkgopenapi.Schema {
	if ref == nil {
		return nil
	}
	if ref.Value == nil {
		if ref.Ref == "" {
			return nil
		}
		return &pkgopenapi.Schema{Ref: ref.Ref}
	}
	media, ok := ref.Value.Content["application/json"]
	if !ok {
		return nil
	}
	schema := convertSchema(media.Schema)
	return &schema
}
