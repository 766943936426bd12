package loader

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	pkgopenapi "github.com/goliatone/go-httpgen/pkg/openapi"
)

// Loader implements pkgopenapi.Loader by delegating to file, fs.FS, or HTTP
// strategies and decoding the payload into a generic root mapping.
// Construction helpers live in the top-level httpgen package.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgopenapi.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgopenapi.LoaderOptions) pkgopenapi.Loader {
	timeout := options.RequestTimeout

	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	} else if timeout > 0 && httpClient.Timeout == 0 {
		clone := *httpClient
		clone.Timeout = timeout
		httpClient = &clone
	}

	return &Loader{
		fs:      options.FileSystem,
		http:    httpClient,
		timeout: timeout,
	}
}

// Load fetches the document bytes, picks the JSON or YAML decoder, and wraps
// the result in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}

	var (
		data     []byte
		encoding pkgopenapi.Encoding
		err      error
	)

	switch src.Kind() {
	case pkgopenapi.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
		encoding = encodingForPath(src.Location())
	case pkgopenapi.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
		encoding = encodingForPath(src.Location())
	case pkgopenapi.SourceKindURL:
		var contentType string
		data, contentType, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
		encoding = encodingForContentType(contentType)
	default:
		err = errors.New("openapi loader: unsupported source kind")
	}
	if err != nil {
		return pkgopenapi.Document{}, err
	}

	root, err := decodeRoot(data, encoding)
	if err != nil {
		return pkgopenapi.Document{}, err
	}

	return pkgopenapi.NewDocument(src, data, encoding, root)
}

// encodingForPath maps a .json extension to the JSON decoder; everything else
// goes through YAML, which also accepts JSON payloads.
func encodingForPath(path string) pkgopenapi.Encoding {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return pkgopenapi.EncodingJSON
	}
	return pkgopenapi.EncodingYAML
}

// encodingForContentType trusts a JSON content type and falls back to YAML
// otherwise, covering servers that declare yaml, text/plain, or nothing.
func encodingForContentType(contentType string) pkgopenapi.Encoding {
	if strings.Contains(strings.ToLower(contentType), "json") {
		return pkgopenapi.EncodingJSON
	}
	return pkgopenapi.EncodingYAML
}

func decodeRoot(data []byte, encoding pkgopenapi.Encoding) (map[string]any, error) {
	root := make(map[string]any)
	switch encoding {
	case pkgopenapi.EncodingJSON:
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, &pkgopenapi.ParseError{Encoding: pkgopenapi.EncodingJSON, Err: err}
		}
	default:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, &pkgopenapi.ParseError{Encoding: pkgopenapi.EncodingYAML, Err: err}
		}
	}
	return root, nil
}
