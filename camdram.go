// camdram binds the golang.org/x/oauth2 authorization-code flow to the Camdram identity service
package camdram

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/cccteam/logger"
	"github.com/go-playground/errors/v5"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
)

const name = "github.com/cccteam/camdram"

const (
	defaultDomain = "https://www.camdram.net"

	authorizationPath = "/oauth/v2/auth"
	tokenPath         = "/oauth/v2/token"
	userInfoPath      = "/auth/account.json"
	showsPath         = "/auth/account/shows.json"
	organisationsPath = "/auth/account/organisations.json"
	scopeSeparator    = " "
	acceptHeaderValue = "application/json"
)

var _ Client = &Provider{}

// Defined for testability
type engine interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
	Client(ctx context.Context, t *oauth2.Token) *http.Client
	TokenSource(ctx context.Context, t *oauth2.Token) oauth2.TokenSource
}

// Provider is the Camdram OAuth2 provider
type Provider struct {
	domain     string
	scopes     []string
	httpClient *http.Client

	config engine
}

// New returns a Provider for the given client credentials.
// The domain defaults to https://www.camdram.net and no scopes are requested unless WithScopes is used.
func New(clientID, clientSecret, redirectURL string, opts ...Option) *Provider {
	p := &Provider{
		domain: defaultDomain,
	}
	p.scopes = p.DefaultScopes()

	for _, opt := range opts {
		opt(p)
	}

	p.config = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     p.Endpoint(),
		Scopes:       p.scopes,
	}

	return p
}

// Domain returns the base URL all endpoints are derived from
func (p *Provider) Domain() string {
	return p.domain
}

// AuthorizationURL returns the URL the user agent is redirected to in order to begin the OAuth flow
func (p *Provider) AuthorizationURL() string {
	return p.domain + authorizationPath
}

// TokenURL returns the URL used to retrieve an access token.
// params is accepted for compatibility with the engine's token request and is not consulted.
func (p *Provider) TokenURL(_ url.Values) string {
	return p.domain + tokenPath
}

// UserInfoURL returns the URL used to fetch the resource owner details
func (p *Provider) UserInfoURL(_ *oauth2.Token) string {
	return p.domain + userInfoPath
}

// DefaultScopes returns the scopes always requested by this provider, which is none.
func (p *Provider) DefaultScopes() []string {
	return []string{}
}

// ScopeSeparator returns the string used to join scopes in the authorization request.
func (p *Provider) ScopeSeparator() string {
	return scopeSeparator
}

// Scopes returns the scopes requested by this Provider
func (p *Provider) Scopes() []string {
	return append([]string{}, p.scopes...)
}

// Endpoint returns the Camdram endpoints in the form used by the oauth2 engine
func (p *Provider) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:  p.AuthorizationURL(),
		TokenURL: p.TokenURL(nil),
	}
}

// AuthCodeURL returns the URL to redirect to in order to initiate the authorization-code flow
func (p *Provider) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return p.config.AuthCodeURL(state, opts...)
}

// Exchange converts an authorization code into an access token
func (p *Provider) Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Provider.Exchange()")
	defer span.End()

	t, err := p.config.Exchange(p.engineContext(ctx), code, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "oauth2.Config.Exchange()")
	}

	return t, nil
}

// TokenSource returns a TokenSource that refreshes token when it expires
func (p *Provider) TokenSource(ctx context.Context, token *oauth2.Token) oauth2.TokenSource {
	return p.config.TokenSource(p.engineContext(ctx), token)
}

// ResourceOwner fetches the details of the user the token was issued to
func (p *Provider) ResourceOwner(ctx context.Context, token *oauth2.Token) (*User, error) {
	ctx, span := otel.Tracer(name).Start(ctx, "Provider.ResourceOwner()")
	defer span.End()

	data, err := p.fetch(ctx, p.UserInfoURL(token), token)
	if err != nil {
		return nil, errors.Wrap(err, "Provider.fetch()")
	}

	response, ok := data.(map[string]any)
	if !ok {
		return nil, errors.Newf("unexpected user details response type %T", data)
	}

	user := p.CreateResourceOwner(response, token)
	logger.Ctx(ctx).AddRequestAttribute("camdram user", user.ID())

	return user, nil
}

// CreateResourceOwner generates a User from a successful user details request
func (p *Provider) CreateResourceOwner(response map[string]any, _ *oauth2.Token) *User {
	return NewUser(response)
}

// engineContext hands the configured base client to the oauth2 engine
func (p *Provider) engineContext(ctx context.Context) context.Context {
	if p.httpClient == nil {
		return ctx
	}

	return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
}

func trimDomain(domain string) string {
	return strings.TrimRight(strings.TrimSpace(domain), "/")
}
