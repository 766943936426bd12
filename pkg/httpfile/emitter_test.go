package httpfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-httpgen/pkg/openapi"
)

func TestRenderBareGetOperation(t *testing.T) {
	t.Parallel()

	collection := openapi.Collection{
		BaseURL: "http://localhost",
		Operations: []openapi.Operation{
			{Method: "GET", Path: "/pets", Summary: "List pets"},
		},
	}

	got, err := New().Render(collection)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"@baseUrl = http://localhost",
		"@token = <your_token>",
		"",
		"### List pets",
		"GET {{baseUrl}}/pets",
		"Content-Type: application/json",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected output:\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestRenderTitleFallsBackToMethodAndPath(t *testing.T) {
	t.Parallel()

	collection := openapi.Collection{
		BaseURL: "http://localhost",
		Operations: []openapi.Operation{
			{Method: "DELETE", Path: "/pets/{id}"},
		},
	}

	got, err := New().Render(collection)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "### DELETE /pets/{id}\n") {
		t.Fatalf("missing fallback title:\n%s", got)
	}
}

func TestRenderSecuredOperationWithBody(t *testing.T) {
	t.Parallel()

	collection := openapi.Collection{
		BaseURL: "https://api.example.com/v1",
		Operations: []openapi.Operation{
			{
				Method:  "POST",
				Path:    "/pets",
				Summary: "Create pet",
				Secured: true,
				Body: &openapi.Schema{
					Type: openapi.TypeObject,
					Properties: map[string]openapi.Schema{
						"name": {Type: openapi.TypeString},
					},
				},
				BodySource: openapi.BodyFromRequestBody,
			},
		},
	}

	got, err := New().Render(collection)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	wantBlock := strings.Join([]string{
		"### Create pet",
		"POST {{baseUrl}}/pets",
		"Content-Type: application/json",
		"Authorization: Bearer {{token}}",
		"",
		"{",
		`  "name": "example_name"`,
		"}",
	}, "\n")
	if !strings.Contains(got, wantBlock) {
		t.Fatalf("missing secured block:\n--- want ---\n%s\n--- got ---\n%s", wantBlock, got)
	}
}

func TestRenderSwaggerBodyUsesExampleFirst(t *testing.T) {
	t.Parallel()

	collection := openapi.Collection{
		BaseURL: "http://localhost",
		Operations: []openapi.Operation{
			{
				Method: "PUT",
				Path:   "/pets/1",
				Body: &openapi.Schema{
					Type:    openapi.TypeObject,
					Example: map[string]any{"name": "rex"},
				},
				BodySource: openapi.BodyFromParameter,
			},
		},
	}

	got, err := New().Render(collection)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, `  "name": "rex"`) {
		t.Fatalf("expected verbatim example body:\n%s", got)
	}
}

func TestRenderParameterPlacement(t *testing.T) {
	t.Parallel()

	collection := openapi.Collection{
		BaseURL: "http://localhost",
		Operations: []openapi.Operation{
			{
				Method: "GET",
				Path:   "/pets/{petId}/visits",
				Parameters: []openapi.Parameter{
					{Name: "petId", In: openapi.InPath},
					{Name: "limit", In: openapi.InQuery},
					{Name: "offset", In: openapi.InQuery},
					{Name: "X-Request-Id", In: openapi.InHeader},
				},
			},
		},
	}

	got, err := New().Render(collection)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	wantLine := "GET {{baseUrl}}/pets/{{petId}}/visits?limit={{limit}}&offset={{offset}}"
	if !strings.Contains(got, wantLine+"\n") {
		t.Fatalf("missing request line %q:\n%s", wantLine, got)
	}
	if !strings.Contains(got, "X-Request-Id: {{X-Request-Id}}") {
		t.Fatalf("missing header parameter:\n%s", got)
	}
}

func TestRenderDescriptionIsFlattenedAndStripped(t *testing.T) {
	t.Parallel()

	collection := openapi.Collection{
		BaseURL: "http://localhost",
		Operations: []openapi.Operation{
			{
				Method:      "GET",
				Path:        "/pets",
				Summary:     "List pets",
				Description: "Returns <b>every</b> pet\nin the store.",
			},
		},
	}

	got, err := New().Render(collection)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "# Returns every pet in the store.\n") {
		t.Fatalf("description not flattened:\n%s", got)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	collection := openapi.Collection{
		BaseURL: "http://localhost",
		Operations: []openapi.Operation{
			{
				Method: "POST",
				Path:   "/pets",
				Body: &openapi.Schema{
					Type: openapi.TypeObject,
					Properties: map[string]openapi.Schema{
						"name":   {Type: openapi.TypeString},
						"age":    {Type: openapi.TypeInteger},
						"tags":   {Type: openapi.TypeArray, Items: &openapi.Schema{Type: openapi.TypeString}},
						"owner":  {Ref: "#/components/schemas/Owner"},
						"active": {Type: openapi.TypeBoolean},
					},
				},
				BodySource: openapi.BodyFromRequestBody,
			},
		},
	}

	emitter := New()
	first, err := emitter.Render(collection)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := emitter.Render(collection)
		if err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("output differs between runs:\n--- first ---\n%s\n--- again ---\n%s", first, again)
		}
	}
}

func TestWriteFileReportsEndpointCount(t *testing.T) {
	t.Parallel()

	collection := openapi.Collection{
		BaseURL: "http://localhost",
		Operations: []openapi.Operation{
			{Method: "GET", Path: "/a"},
			{Method: "GET", Path: "/b"},
		},
	}

	path := filepath.Join(t.TempDir(), "api.http")
	count, err := New().WriteFile(path, collection)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 endpoints, got %d", count)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "### GET /a") || !strings.Contains(string(data), "### GET /b") {
		t.Fatalf("blocks missing from file:\n%s", data)
	}
}
