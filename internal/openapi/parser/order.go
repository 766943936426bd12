package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	pkgopenapi "github.com/goliatone/go-httpgen/pkg/openapi"
)

// pathEntry is one path with its request methods, both in the order the
// document declares them.
type pathEntry struct {
	path    string
	methods []string
}

// canonicalMethods is the fallback iteration order when document order
// cannot be recovered. Any fixed order keeps the output deterministic.
var canonicalMethods = []string{"get", "post", "put", "delete", "patch", "head", "options"}

// documentOrder scans the raw payload to recover the insertion order of the
// paths mapping and of the methods under each path. kin-openapi stores paths
// in an unordered map, and the emitted file must be byte-stable in document
// order. When the scan fails the known path keys are emitted sorted, with
// methods in canonical order.
func documentOrder(doc pkgopenapi.Document, known []string) []pathEntry {
	var (
		entries []pathEntry
		err     error
	)

	switch doc.Encoding() {
	case pkgopenapi.EncodingJSON:
		entries, err = jsonOrder(doc.Raw())
	default:
		entries, err = yamlOrder(doc.Raw())
	}
	if err == nil && len(entries) > 0 {
		return entries
	}

	sorted := append([]string(nil), known...)
	sort.Strings(sorted)
	fallback := make([]pathEntry, 0, len(sorted))
	for _, path := range sorted {
		fallback = append(fallback, pathEntry{path: path, methods: canonicalMethods})
	}
	return fallback
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// yamlOrder walks the yaml.Node tree, which preserves mapping key order.
// JSON payloads served without a JSON content type also land here; JSON is a
// YAML subset so the same walk applies.
func yamlOrder(raw []byte) ([]pathEntry, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, err
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, fmt.Errorf("openapi parser: empty document node")
		}
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("openapi parser: document root is not a mapping")
	}

	paths := mappingValue(doc, "paths")
	if paths == nil || paths.Kind != yaml.MappingNode {
		return nil, nil
	}

	var entries []pathEntry
	for i := 0; i+1 < len(paths.Content); i += 2 {
		key := paths.Content[i]
		value := paths.Content[i+1]
		entry := pathEntry{path: key.Value}
		if value.Kind == yaml.MappingNode {
			for j := 0; j+1 < len(value.Content); j += 2 {
				if isRequestMethod(value.Content[j].Value) {
					entry.methods = append(entry.methods, value.Content[j].Value)
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// jsonOrder reads the token stream, which yields object keys in document
// order, and collects the paths mapping and each path item's method keys.
func jsonOrder(raw []byte) ([]pathEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	for dec.More() {
		key, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		if key != "paths" {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}
		return jsonPathsOrder(dec)
	}
	return nil, nil
}

func jsonPathsOrder(dec *json.Decoder) ([]pathEntry, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var entries []pathEntry
	for dec.More() {
		path, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		entry := pathEntry{path: path}

		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{':
				for dec.More() {
					method, err := stringToken(dec)
					if err != nil {
						return nil, err
					}
					if isRequestMethod(method) {
						entry.methods = append(entry.methods, method)
					}
					if err := skipValue(dec); err != nil {
						return nil, err
					}
				}
				// closing brace of the path item
				if _, err := dec.Token(); err != nil {
					return nil, err
				}
			case '[':
				if err := skipOpenValue(dec); err != nil {
					return nil, err
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("openapi parser: expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	str, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("openapi parser: expected string key, got %v", tok)
	}
	return str, nil
}

// skipOpenValue consumes the remainder of a composite value whose opening
// delimiter has already been read.
func skipOpenValue(dec *json.Decoder) error {
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

// skipValue consumes one JSON value, tracking delimiter depth.
func skipValue(dec *json.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if delim, ok := tok.(json.Delim); ok {
			switch delim {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
		if depth == 0 {
			return nil
		}
	}
}
