package openapi

import "context"

// Parser normalises a loaded Document into the Collection the emitter
// consumes: resolved base URL plus operations in document order.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Collection, error)
}

// ParserOptions exposes the defaults used when a document leaves its base
// URL underspecified.
type ParserOptions struct {
	// DefaultScheme substitutes a missing scheme and the {protocol} server
	// variable.
	DefaultScheme string

	// DefaultHost substitutes a missing host and the {host} server variable.
	DefaultHost string
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithDefaultScheme overrides the scheme fallback.
func WithDefaultScheme(scheme string) ParserOption {
	return func(opts *ParserOptions) {
		opts.DefaultScheme = scheme
	}
}

// WithDefaultHost overrides the host fallback.
func WithDefaultHost(host string) ParserOption {
	return func(opts *ParserOptions) {
		opts.DefaultHost = host
	}
}

// NewParserOptions applies ParserOption values over the defaults.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		DefaultScheme: "http",
		DefaultHost:   "localhost",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
