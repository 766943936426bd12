package openapi

import "fmt"

// RequestError reports a failed document fetch: either the transport broke or
// the server answered with a non-2xx status.
type RequestError struct {
	URL    string
	Status string
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("openapi: request %s: unexpected status %s", e.URL, e.Status)
	}
	return fmt.Sprintf("openapi: request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ParseError reports malformed document content and names the decoder that
// rejected it.
type ParseError struct {
	Encoding Encoding
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("openapi: decode %s document: %v", e.Encoding, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
