package camdram

import (
	"net/http"
)

// Option defines a function signature for setting Provider options.
type Option func(*Provider)

// WithDomain sets the Camdram domain all endpoints are built from. (default: https://www.camdram.net)
func WithDomain(domain string) Option {
	return Option(func(p *Provider) {
		p.domain = trimDomain(domain)
	})
}

// WithScopes sets the scopes requested during authorization. (default: none)
func WithScopes(scopes ...string) Option {
	return Option(func(p *Provider) {
		p.scopes = append(p.DefaultScopes(), scopes...)
	})
}

// WithHTTPClient sets the client the oauth2 engine sends requests with. (default: http.DefaultClient)
func WithHTTPClient(c *http.Client) Option {
	return Option(func(p *Provider) {
		p.httpClient = c
	})
}
