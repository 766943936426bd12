package loader

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	pkgopenapi "github.com/goliatone/go-httpgen/pkg/openapi"
)

// loadHTTP fetches the document and reports the declared content type so the
// caller can pick a decoder. Transport failures and non-2xx statuses both
// surface as RequestError.
func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, string, error) {
	if client == nil {
		return nil, "", errors.New("openapi loader: http client is not configured")
	}
	if url == "" {
		return nil, "", errors.New("openapi loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", &pkgopenapi.RequestError{URL: url, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", &pkgopenapi.RequestError{URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &pkgopenapi.RequestError{URL: url, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &pkgopenapi.RequestError{URL: url, Err: err}
	}
	return data, resp.Header.Get("Content-Type"), nil
}
