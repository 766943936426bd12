// Package httpfile assembles the .http request-collection artifact: one
// request block per operation, prefixed by the base-URL and token variable
// declarations.
package httpfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-httpgen/pkg/example"
	"github.com/goliatone/go-httpgen/pkg/openapi"
)

const (
	baseURLToken = "{{baseUrl}}"
	tokenHeader  = "Authorization: Bearer {{token}}"
	jsonHeader   = "Content-Type: application/json"
)

// Emitter renders a Collection into request-collection text. Output is
// deterministic: blocks follow document order and JSON bodies serialize with
// sorted keys.
type Emitter struct {
	comments *sanitizer
}

// New constructs an Emitter.
func New() *Emitter {
	return &Emitter{comments: newSanitizer()}
}

// Render produces the full file content.
func (e *Emitter) Render(collection openapi.Collection) (string, error) {
	var b strings.Builder
	b.WriteString("@baseUrl = " + collection.BaseURL + "\n")
	b.WriteString("@token = <your_token>\n\n")

	blocks := make([]string, 0, len(collection.Operations))
	for _, op := range collection.Operations {
		block, err := e.block(op)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	b.WriteString(strings.Join(blocks, "\n\n"))
	return b.String(), nil
}

// WriteFile renders the collection and overwrites the file at path,
// reporting the number of endpoints written. Nothing is written when
// rendering fails.
func (e *Emitter) WriteFile(path string, collection openapi.Collection) (int, error) {
	content, err := e.Render(collection)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return 0, fmt.Errorf("httpfile: write %s: %w", path, err)
	}
	return len(collection.Operations), nil
}

func (e *Emitter) block(op openapi.Operation) (string, error) {
	lines := []string{"### " + e.comments.Line(op.Title())}

	if description := e.comments.Line(op.Description); description != "" {
		lines = append(lines, "# "+description)
	}

	lines = append(lines, op.Method+" "+e.requestURL(op))

	headers := []string{jsonHeader}
	if op.Secured {
		headers = append(headers, tokenHeader)
	}
	for _, param := range op.ParametersIn(openapi.InHeader) {
		headers = append(headers, param.Name+": "+placeholder(param.Name))
	}
	lines = append(lines, strings.Join(headers, "\n"))

	if op.Body != nil {
		body, err := renderBody(op)
		if err != nil {
			return "", err
		}
		lines = append(lines, "\n"+body)
	}

	return strings.Join(lines, "\n"), nil
}

// requestURL builds {{baseUrl}}<path> with declared path parameters
// rewritten to {{name}} tokens and query parameters appended as
// name={{name}} pairs.
func (e *Emitter) requestURL(op openapi.Operation) string {
	path := op.Path
	for _, param := range op.ParametersIn(openapi.InPath) {
		path = strings.ReplaceAll(path, "{"+param.Name+"}", placeholder(param.Name))
	}

	url := baseURLToken + path
	query := op.ParametersIn(openapi.InQuery)
	if len(query) == 0 {
		return url
	}

	pairs := make([]string, 0, len(query))
	for _, param := range query {
		pairs = append(pairs, param.Name+"="+placeholder(param.Name))
	}
	return url + "?" + strings.Join(pairs, "&")
}

func renderBody(op openapi.Operation) (string, error) {
	mode := example.ModeNameHinted
	if op.BodySource == openapi.BodyFromParameter {
		mode = example.ModeExampleFirst
	}

	value := example.Value(*op.Body, mode)
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("httpfile: encode example body for %s %s: %w", op.Method, op.Path, err)
	}
	return string(data), nil
}

func placeholder(name string) string {
	return "{{" + name + "}}"
}
