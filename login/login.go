// login contains the HTTP handlers that sign a user in through Camdram
package login

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cccteam/camdram"
	"github.com/cccteam/httpio"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"github.com/gofrs/uuid"
	"github.com/gorilla/securecookie"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
)

const (
	name = "github.com/cccteam/camdram/login"

	defaultLoginURL = "/login"
)

// LogHandler wraps a handler that returns an error
type LogHandler func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc

// LoginFunc is called with the authenticated user after a successful callback, before redirecting to the return URL
type LoginFunc func(w http.ResponseWriter, r *http.Request, user *camdram.User, token *oauth2.Token) error

// Handler signs users in with Camdram
type Handler struct {
	client  camdram.Client
	s       *securecookie.SecureCookie
	onLogin LoginFunc
	handle  LogHandler

	cookieName string
	secure     bool
	loginURL   string
}

// New returns a Handler that authenticates users with client.
// onLogin receives every authenticated user and is where the caller starts its own session.
func New(client camdram.Client, s *securecookie.SecureCookie, onLogin LoginFunc, opts ...Option) *Handler {
	h := &Handler{
		client:     client,
		s:          s,
		onLogin:    onLogin,
		handle:     Log,
		cookieName: defaultCookieName,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Routes mounts the login and callback handlers on r
func (h *Handler) Routes(r chi.Router) {
	r.Get("/login", h.Login())
	r.Get("/callback", h.Callback())
}

// LoginURL returns the URL to redirect to when an error occurs during the callback
func (h *Handler) LoginURL() string {
	if h.loginURL == "" {
		return defaultLoginURL
	}

	return h.loginURL
}

// Login is the handler that redirects the user agent to Camdram to begin the authorization-code flow
func (h *Handler) Login() http.HandlerFunc {
	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Handler.Login()")
		defer span.End()

		// Use a random string as the state to protect against CSRF attacks
		state, err := uuid.NewV4()
		if err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewInternalServerErrorMessageWithError(err, "Failed to generate state"))
		}

		f := flow{
			State:     state.String(),
			ReturnURL: localPath(r.URL.Query().Get("returnUrl")),
		}

		if err := h.startFlow(w, f); err != nil {
			return httpio.NewEncoder(w).ClientMessage(ctx, httpio.NewInternalServerErrorMessageWithError(err, "Failed to write state cookie"))
		}

		http.Redirect(w, r, h.client.AuthCodeURL(state.String()), http.StatusFound)

		return nil
	})
}

// Callback is the handler for the redirect back from Camdram
func (h *Handler) Callback() http.HandlerFunc {
	return h.handle(func(w http.ResponseWriter, r *http.Request) error {
		ctx, span := otel.Tracer(name).Start(r.Context(), "Handler.Callback()")
		defer span.End()

		user, token, returnURL, err := h.verify(ctx, w, r)
		if err != nil {
			http.Redirect(w, r, h.loginRedirect(httpio.Message(err)), http.StatusFound)

			return errors.Wrap(err, "Handler.verify()")
		}

		if h.onLogin != nil {
			if err := h.onLogin(w, r.WithContext(ctx), user, token); err != nil {
				http.Redirect(w, r, h.loginRedirect("Internal Server Error"), http.StatusFound)

				return errors.Wrap(err, "LoginFunc()")
			}
		}

		http.Redirect(w, r, returnURL, http.StatusFound)

		return nil
	})
}

// verify validates the callback request against the state cookie, exchanges the code and fetches the user
func (h *Handler) verify(ctx context.Context, w http.ResponseWriter, r *http.Request) (user *camdram.User, token *oauth2.Token, returnURL string, err error) {
	f, ok := h.finishFlow(w, r)
	if !ok {
		return nil, nil, "", httpio.NewForbiddenMessage("No state cookie")
	}

	// The cookie is signed, but the return URL is checked again on the way out
	returnURL = localPath(f.ReturnURL)

	query := r.URL.Query()
	if query.Get("state") != f.State {
		return nil, nil, "", httpio.NewForbiddenMessage("Invalid 'state' parameter value")
	}

	if code := query.Get("error"); code != "" {
		return nil, nil, "", httpio.NewUnauthorizedMessage(fmt.Sprintf("Authorization failed: %s", code))
	}

	token, err = h.client.Exchange(ctx, query.Get("code"))
	if err != nil {
		return nil, nil, "", httpio.NewInternalServerErrorMessageWithError(err, "Failed to exchange token")
	}

	user, err = h.client.ResourceOwner(ctx, token)
	if err != nil {
		if _, ok := camdram.HasOAuthError(err); ok {
			return nil, nil, "", httpio.NewUnauthorizedMessageWithError(err, "Camdram rejected the access token")
		}

		return nil, nil, "", httpio.NewInternalServerErrorMessageWithError(err, "Failed to fetch user details")
	}

	return user, token, returnURL, nil
}

func (h *Handler) loginRedirect(message string) string {
	return fmt.Sprintf("%s?message=%s", h.LoginURL(), url.QueryEscape(message))
}
