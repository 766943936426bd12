package parser

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-httpgen/pkg/openapi"
)

func TestParseV2BaseURLFromTopLevelFields(t *testing.T) {
	t.Parallel()

	const document = `{
  "swagger": "2.0",
  "info": { "title": "Pets", "version": "1.0.0" },
  "schemes": ["https"],
  "host": "api.example.com",
  "basePath": "/v1",
  "paths": {}
}`

	collection, err := newParser(t).Parse(context.Background(), makeDocument(t, document, pkgopenapi.EncodingJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if collection.BaseURL != "https://api.example.com/v1" {
		t.Fatalf("unexpected base URL %q", collection.BaseURL)
	}
}

func TestParseV2DefaultsMissingBaseURLPieces(t *testing.T) {
	t.Parallel()

	const document = `{
  "swagger": "2.0",
  "info": { "title": "Bare", "version": "1.0.0" },
  "paths": {}
}`

	collection, err := newParser(t).Parse(context.Background(), makeDocument(t, document, pkgopenapi.EncodingJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if collection.BaseURL != "http://localhost" {
		t.Fatalf("unexpected base URL %q", collection.BaseURL)
	}
}

func TestParseV2BodyParameterBecomesExampleFirstBody(t *testing.T) {
	t.Parallel()

	const document = `{
  "swagger": "2.0",
  "info": { "title": "Pets", "version": "1.0.0" },
  "host": "api.example.com",
  "paths": {
    "/pets": {
      "post": {
        "summary": "Create pet",
        "security": [{ "apiKey": [] }],
        "parameters": [
          { "name": "verbose", "in": "query", "type": "boolean" },
          {
            "name": "pet",
            "in": "body",
            "schema": {
              "type": "object",
              "properties": {
                "name": { "type": "string", "example": "rex" }
              }
            }
          }
        ]
      }
    }
  }
}`

	collection, err := newParser(t).Parse(context.Background(), makeDocument(t, document, pkgopenapi.EncodingJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(collection.Operations) != 1 {
		t.Fatalf("expected one operation, got %d", len(collection.Operations))
	}

	op := collection.Operations[0]
	if !op.Secured {
		t.Fatalf("operation-level security should mark the operation secured")
	}
	if op.BodySource != pkgopenapi.BodyFromParameter {
		t.Fatalf("expected a parameter-sourced body, got %q", op.BodySource)
	}
	if op.Body == nil || op.Body.Properties["name"].Example != "rex" {
		t.Fatalf("body schema not converted: %+v", op.Body)
	}

	wantParams := []pkgopenapi.Parameter{{Name: "verbose", In: pkgopenapi.InQuery}}
	if diff := cmp.Diff(wantParams, op.Parameters); diff != "" {
		t.Fatalf("body parameter should not appear in the parameter list (-want +got):\n%s", diff)
	}
}

func TestParseV2YAMLDocument(t *testing.T) {
	t.Parallel()

	const document = `swagger: "2.0"
info:
  title: Pets
  version: 1.0.0
schemes:
  - https
host: api.example.com
basePath: /v1/
paths:
  /pets:
    get:
      summary: List pets
      parameters:
        - name: limit
          in: query
          type: integer
`

	collection, err := newParser(t).Parse(context.Background(), makeDocument(t, document, pkgopenapi.EncodingYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if collection.BaseURL != "https://api.example.com/v1" {
		t.Fatalf("unexpected base URL %q", collection.BaseURL)
	}
	if len(collection.Operations) != 1 {
		t.Fatalf("expected one operation, got %d", len(collection.Operations))
	}
	op := collection.Operations[0]
	if op.Method != "GET" || op.Summary != "List pets" {
		t.Fatalf("unexpected operation %+v", op)
	}
	wantParams := []pkgopenapi.Parameter{{Name: "limit", In: pkgopenapi.InQuery}}
	if diff := cmp.Diff(wantParams, op.Parameters); diff != "" {
		t.Fatalf("parameters (-want +got):\n%s", diff)
	}
}
