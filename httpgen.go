// Package httpgen converts Swagger 2.0 and OpenAPI 3.x description documents
// into .http request-collection files.
package httpgen

import (
	"context"

	internalLoader "github.com/goliatone/go-httpgen/internal/openapi/loader"
	internalParser "github.com/goliatone/go-httpgen/internal/openapi/parser"
	pkgopenapi "github.com/goliatone/go-httpgen/pkg/openapi"
	"github.com/goliatone/go-httpgen/pkg/orchestrator"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// Generate converts the document at source (file path or URL) into a request
// collection at outputPath, returning the endpoint count.
func Generate(ctx context.Context, source, outputPath string, options ...orchestrator.Option) (orchestrator.Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:     pkgopenapi.SourceFromString(source),
		OutputPath: outputPath,
	})
}
