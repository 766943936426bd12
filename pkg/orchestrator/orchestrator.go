// Package orchestrator coordinates the full pipeline from description
// document to written .http file. It applies sensible defaults while
// remaining open to dependency injection for advanced callers.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	internalLoader "github.com/goliatone/go-httpgen/internal/openapi/loader"
	internalParser "github.com/goliatone/go-httpgen/internal/openapi/parser"
	"github.com/goliatone/go-httpgen/pkg/httpfile"
	pkgopenapi "github.com/goliatone/go-httpgen/pkg/openapi"
)

// DefaultOutputPath is used when a request does not name an output file.
const DefaultOutputPath = "api.http"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom document loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom document parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithEmitter injects a custom emitter.
func WithEmitter(emitter *httpfile.Emitter) Option {
	return func(o *Orchestrator) {
		o.emitter = emitter
	}
}

// WithHTTPClient injects the HTTP client used for URL sources.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Orchestrator) {
		o.httpClient = client
	}
}

// WithTimeout caps remote document fetches.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		o.timeout = timeout
	}
}

// WithFileSystem supplies an fs.FS for fs-kind sources.
func WithFileSystem(files fs.FS) Option {
	return func(o *Orchestrator) {
		o.fsys = files
	}
}

// Orchestrator wires loader, parser, and emitter into one Generate call.
type Orchestrator struct {
	loader     pkgopenapi.Loader
	parser     pkgopenapi.Parser
	emitter    *httpfile.Emitter
	httpClient *http.Client
	timeout    time.Duration
	fsys       fs.FS
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		timeout: pkgopenapi.DefaultRequestTimeout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions(
			pkgopenapi.WithFileSystem(o.fsys),
			pkgopenapi.WithHTTPClient(o.httpClient),
			pkgopenapi.WithRequestTimeout(o.timeout),
		))
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.emitter == nil {
		o.emitter = httpfile.New()
	}
}

// Request names the document source and the output destination.
type Request struct {
	Source     pkgopenapi.Source
	OutputPath string
}

// Result reports what Generate produced.
type Result struct {
	Path      string
	Endpoints int
	BaseURL   string
}

// Generate runs load, parse, and emit. It is all-or-nothing: no file is
// written when any stage fails.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if req.Source == nil {
		return Result{}, errors.New("orchestrator: request source is required")
	}
	output := req.OutputPath
	if output == "" {
		output = DefaultOutputPath
	}

	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return Result{}, fmt.Errorf("load %s: %w", req.Source.Location(), err)
	}

	collection, err := o.parser.Parse(ctx, doc)
	if err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", doc.Location(), err)
	}

	count, err := o.emitter.WriteFile(output, collection)
	if err != nil {
		return Result{}, err
	}

	return Result{Path: output, Endpoints: count, BaseURL: collection.BaseURL}, nil
}
