package parser

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi3"
)

// baseURLFromServers resolves the header base URL for OpenAPI 3.x documents:
// the first server entry, with the fixed variable set substituted. Variables
// outside that set stay as literal {name} tokens. An absent or empty servers
// array falls back to the Swagger-style defaults.
func (p *Parser) baseURLFromServers(servers openapi3.Servers) string {
	if len(servers) == 0 || servers[0] == nil {
		return p.assembleBaseURL(nil, "", "")
	}

	url := servers[0].URL
	for name, value := range map[string]string{
		"protocol": p.options.DefaultScheme,
		"host":     p.options.DefaultHost,
		"basePath": "",
	} {
		url = strings.ReplaceAll(url, "{"+name+"}", value)
	}
	return strings.TrimRight(url, "/")
}

// baseURLFromSwagger assembles scheme://host/basePath from the Swagger 2.0
// top-level fields, defaulting each missing piece.
func (p *Parser) baseURLFromSwagger(spec *openapi2.T) string {
	return p.assembleBaseURL(spec.Schemes, spec.Host, spec.BasePath)
}

func (p *Parser) assembleBaseURL(schemes []string, host, basePath string) string {
	scheme := p.options.DefaultScheme
	if len(schemes) > 0 && schemes[0] != "" {
		scheme = schemes[0]
	}
	if host == "" {
		host = p.options.DefaultHost
	}
	return strings.TrimRight(scheme+"://"+host+basePath, "/")
}
