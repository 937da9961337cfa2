package camdram

import (
	"context"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// Client is the set of operations binding the oauth2 engine to Camdram
type Client interface {
	// AuthorizationURL returns the URL the user agent is redirected to in order to begin the OAuth flow
	AuthorizationURL() string

	// TokenURL returns the URL used to retrieve an access token. params is not consulted.
	TokenURL(params url.Values) string

	// UserInfoURL returns the URL used to fetch the resource owner details
	UserInfoURL(token *oauth2.Token) string

	DefaultScopes() []string
	ScopeSeparator() string

	// AuthCodeURL returns the URL to redirect to in order to initiate the authorization-code flow
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string

	// Exchange converts an authorization code into an access token
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)

	// ResourceOwner fetches the details of the user the token was issued to
	ResourceOwner(ctx context.Context, token *oauth2.Token) (*User, error)

	// AuthenticatedData performs an authenticated GET of path, relative to the domain, and returns the parsed body
	AuthenticatedData(ctx context.Context, path string, token *oauth2.Token) (any, error)

	AuthorisedShows(ctx context.Context, token *oauth2.Token) (any, error)
	AuthorisedOrganisations(ctx context.Context, token *oauth2.Token) (any, error)

	// CheckResponse inspects a response and its parsed body for failure signals
	CheckResponse(resp *http.Response, data any) error

	// CreateResourceOwner generates a User from a successful user details request
	CreateResourceOwner(response map[string]any, token *oauth2.Token) *User
}

// ResourceOwner is the authenticated end-user
type ResourceOwner interface {
	ID() any
	ToRaw() map[string]any
}
