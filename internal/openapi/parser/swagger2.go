package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"

	pkgopenapi "github.com/goliatone/go-httpgen/pkg/openapi"
)

func (p *Parser) parseV2(ctx context.Context, doc pkgopenapi.Document) (pkgopenapi.Collection, error) {
	if err := ctx.Err(); err != nil {
		return pkgopenapi.Collection{}, err
	}

	spec, err := decodeV2(doc)
	if err != nil {
		return pkgopenapi.Collection{}, err
	}

	collection := pkgopenapi.Collection{
		BaseURL: p.baseURLFromSwagger(spec),
	}

	docSecured := len(spec.Security) > 0

	for _, entry := range documentOrder(doc, sortedKeys(spec.Paths)) {
		item := spec.Paths[entry.path]
		if item == nil {
			continue
		}
		for _, method := range entry.methods {
			operation := v2Operation(item, method)
			if operation == nil {
				continue
			}
			collection.Operations = append(collection.Operations, convertV2Operation(entry.path, method, operation, docSecured))
		}
	}

	return collection, nil
}

// decodeV2 unmarshals into the kin-openapi Swagger 2.0 model. The types only
// carry JSON tags, so YAML payloads are bridged through the generically
// decoded root mapping.
func decodeV2(doc pkgopenapi.Document) (*openapi2.T, error) {
	data := doc.Raw()
	if doc.Encoding() != pkgopenapi.EncodingJSON {
		bridged, err := json.Marshal(doc.Root())
		if err != nil {
			return nil, fmt.Errorf("openapi parser: bridge yaml document: %w", err)
		}
		data = bridged
	}

	var spec openapi2.T
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("openapi parser: load swagger document: %w", err)
	}
	return &spec, nil
}

func v2Operation(item *openapi2.PathItem, method string) *openapi2.Operation {
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

func convertV2Operation(path, method string, src *openapi2.Operation, docSecured bool) pkgopenapi.Operation {
	op := pkgopenapi.Operation{
		Method:      strings.ToUpper(method),
		Path:        path,
		Summary:     src.Summary,
		Description: src.Description,
		Secured:     docSecured || (src.Security != nil && len(*src.Security) > 0),
	}

	for _, param := range src.Parameters {
		if param == nil {
			continue
		}
		if param.In == pkgopenapi.InBody {
			if op.Body == nil {
				schema := convertSchema(param.Schema)
				op.Body = &schema
				op.BodySource = pkgopenapi.BodyFromParameter
			}
			continue
		}
		op.Parameters = append(op.Parameters, pkgopenapi.Parameter{
			Name: param.Name,
			In:   param.In,
		})
	}

	return op
}
