package openapi

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// DefaultRequestTimeout caps remote fetches when no explicit client or
// timeout is configured.
const DefaultRequestTimeout = 10 * time.Second

// Loader fetches API description documents from files, fs.FS entries, or
// HTTP endpoints and decodes them into a Document. The implementation lives
// under internal/openapi/loader.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions collects the loader configuration so defaults live in one
// place instead of being scattered through call sites.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; nil means the
	// operating system.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (proxies,
	// recorded transports). Nil means a default client bounded by
	// RequestTimeout.
	HTTPClient *http.Client

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for document paths.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithRequestTimeout overrides the default fetch timeout.
func WithRequestTimeout(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions applies LoaderOption values over the defaults.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{
		RequestTimeout: DefaultRequestTimeout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
