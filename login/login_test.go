package login

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cccteam/camdram"
	"github.com/cccteam/camdram/mock/mock_camdram"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/oauth2"
)

func newTestHandler(t *testing.T, client camdram.Client, onLogin LoginFunc, opts ...Option) *Handler {
	t.Helper()

	sc := securecookie.New(securecookie.GenerateRandomKey(32), nil)
	handle := func(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			_ = handler(w, r)
		}
	}

	return New(client, sc, onLogin, append([]Option{WithLogHandler(handle)}, opts...)...)
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		target         string
		opts           []Option
		wantCookieName string
		wantReturnURL  string
	}{
		{
			name:           "redirects to camdram",
			target:         "/login",
			wantCookieName: "CAMDRAM",
			wantReturnURL:  "/",
		},
		{
			name:           "keeps the return url",
			target:         "/login?returnUrl=%2Fshows",
			opts:           []Option{WithCookieName("STATE")},
			wantCookieName: "STATE",
			wantReturnURL:  "/shows",
		},
		{
			name:           "drops an absolute return url",
			target:         "/login?returnUrl=" + url.QueryEscape("https://evil.example/phish"),
			wantCookieName: "CAMDRAM",
			wantReturnURL:  "/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			client := mock_camdram.NewMockClient(ctrl)
			var gotState string
			client.EXPECT().AuthCodeURL(gomock.Any()).DoAndReturn(func(state string, _ ...oauth2.AuthCodeOption) string {
				gotState = state

				return "https://www.camdram.net/oauth/v2/auth?state=" + url.QueryEscape(state)
			}).Times(1)

			h := newTestHandler(t, client, nil, tt.opts...)

			req := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			rr := httptest.NewRecorder()

			h.Login().ServeHTTP(rr, req)

			if got := rr.Code; got != http.StatusFound {
				t.Fatalf("response.Code = %v, want %v", got, http.StatusFound)
			}
			if got, want := rr.Header().Get("Location"), "https://www.camdram.net/oauth/v2/auth?state="+url.QueryEscape(gotState); got != want {
				t.Errorf("response.Location = %v, want %v", got, want)
			}
			if gotState == "" {
				t.Fatalf("state is empty")
			}

			cookies := rr.Result().Cookies()
			if len(cookies) != 1 {
				t.Fatalf("len(cookies) = %v, want 1", len(cookies))
			}
			if cookies[0].Name != tt.wantCookieName {
				t.Errorf("cookie.Name = %v, want %v", cookies[0].Name, tt.wantCookieName)
			}

			cbReq := httptest.NewRequest(http.MethodGet, "/callback", http.NoBody)
			cbReq.AddCookie(cookies[0])
			f, ok := h.finishFlow(httptest.NewRecorder(), cbReq)
			if !ok {
				t.Fatalf("finishFlow() ok = false, want true")
			}
			if f.State != gotState {
				t.Errorf("flow.State = %v, want %v", f.State, gotState)
			}
			if f.ReturnURL != tt.wantReturnURL {
				t.Errorf("flow.ReturnURL = %v, want %v", f.ReturnURL, tt.wantReturnURL)
			}
		})
	}
}

func TestHandler_Callback(t *testing.T) {
	t.Parallel()

	token := &oauth2.Token{AccessToken: "access-token", TokenType: "Bearer"}
	user := camdram.NewUser(map[string]any{"id": "42", "name": "Ada"})

	tests := []struct {
		name         string
		cookie       *flow
		query        string
		prepare      func(client *mock_camdram.MockClient)
		loginErr     error
		wantLocation string
		wantOnLogin  bool
	}{
		{
			name:         "no state cookie",
			query:        "state=abc&code=xyz",
			wantLocation: "/login?message=" + url.QueryEscape("No state cookie"),
		},
		{
			name:         "state mismatch",
			cookie:       &flow{State: "abc"},
			query:        "state=def&code=xyz",
			wantLocation: "/login?message=" + url.QueryEscape("Invalid 'state' parameter value"),
		},
		{
			name:         "authorization denied",
			cookie:       &flow{State: "abc"},
			query:        "state=abc&error=access_denied",
			wantLocation: "/login?message=" + url.QueryEscape("Authorization failed: access_denied"),
		},
		{
			name:   "fails to exchange the code",
			cookie: &flow{State: "abc"},
			query:  "state=abc&code=xyz",
			prepare: func(client *mock_camdram.MockClient) {
				client.EXPECT().Exchange(gomock.Any(), "xyz").Return(nil, errors.New("connection refused")).Times(1)
			},
			wantLocation: "/login?message=" + url.QueryEscape("Failed to exchange token"),
		},
		{
			name:   "camdram rejects the token",
			cookie: &flow{State: "abc"},
			query:  "state=abc&code=xyz",
			prepare: func(client *mock_camdram.MockClient) {
				client.EXPECT().Exchange(gomock.Any(), "xyz").Return(token, nil).Times(1)
				client.EXPECT().ResourceOwner(gomock.Any(), token).Return(nil, errors.Wrap(&camdram.OAuthError{Code: "invalid_token"}, "Provider.fetch()")).Times(1)
			},
			wantLocation: "/login?message=" + url.QueryEscape("Camdram rejected the access token"),
		},
		{
			name:   "fails to fetch the user",
			cookie: &flow{State: "abc"},
			query:  "state=abc&code=xyz",
			prepare: func(client *mock_camdram.MockClient) {
				client.EXPECT().Exchange(gomock.Any(), "xyz").Return(token, nil).Times(1)
				client.EXPECT().ResourceOwner(gomock.Any(), token).Return(nil, &camdram.ClientError{StatusCode: http.StatusBadGateway}).Times(1)
			},
			wantLocation: "/login?message=" + url.QueryEscape("Failed to fetch user details"),
		},
		{
			name:   "login func fails",
			cookie: &flow{State: "abc", ReturnURL: "/shows"},
			query:  "state=abc&code=xyz",
			prepare: func(client *mock_camdram.MockClient) {
				client.EXPECT().Exchange(gomock.Any(), "xyz").Return(token, nil).Times(1)
				client.EXPECT().ResourceOwner(gomock.Any(), token).Return(user, nil).Times(1)
			},
			loginErr:     errors.New("failed to start session"),
			wantOnLogin:  true,
			wantLocation: "/login?message=" + url.QueryEscape("Internal Server Error"),
		},
		{
			name:   "success without return url",
			cookie: &flow{State: "abc"},
			query:  "state=abc&code=xyz",
			prepare: func(client *mock_camdram.MockClient) {
				client.EXPECT().Exchange(gomock.Any(), "xyz").Return(token, nil).Times(1)
				client.EXPECT().ResourceOwner(gomock.Any(), token).Return(user, nil).Times(1)
			},
			wantOnLogin:  true,
			wantLocation: "/",
		},
		{
			name:   "success with return url",
			cookie: &flow{State: "abc", ReturnURL: "/shows"},
			query:  "state=abc&code=xyz",
			prepare: func(client *mock_camdram.MockClient) {
				client.EXPECT().Exchange(gomock.Any(), "xyz").Return(token, nil).Times(1)
				client.EXPECT().ResourceOwner(gomock.Any(), token).Return(user, nil).Times(1)
			},
			wantOnLogin:  true,
			wantLocation: "/shows",
		},
		{
			name:   "absolute return url is replaced",
			cookie: &flow{State: "abc", ReturnURL: "https://evil.example/phish"},
			query:  "state=abc&code=xyz",
			prepare: func(client *mock_camdram.MockClient) {
				client.EXPECT().Exchange(gomock.Any(), "xyz").Return(token, nil).Times(1)
				client.EXPECT().ResourceOwner(gomock.Any(), token).Return(user, nil).Times(1)
			},
			wantOnLogin:  true,
			wantLocation: "/",
		},
		{
			name:   "protocol relative return url is replaced",
			cookie: &flow{State: "abc", ReturnURL: "//evil.example/phish"},
			query:  "state=abc&code=xyz",
			prepare: func(client *mock_camdram.MockClient) {
				client.EXPECT().Exchange(gomock.Any(), "xyz").Return(token, nil).Times(1)
				client.EXPECT().ResourceOwner(gomock.Any(), token).Return(user, nil).Times(1)
			},
			wantOnLogin:  true,
			wantLocation: "/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			client := mock_camdram.NewMockClient(ctrl)
			if tt.prepare != nil {
				tt.prepare(client)
			}

			var calledOnLogin bool
			onLogin := func(_ http.ResponseWriter, _ *http.Request, u *camdram.User, tok *oauth2.Token) error {
				calledOnLogin = true
				if u != user {
					t.Errorf("LoginFunc() user = %v, want %v", u, user)
				}
				if tok != token {
					t.Errorf("LoginFunc() token = %v, want %v", tok, token)
				}

				return tt.loginErr
			}

			h := newTestHandler(t, client, onLogin)

			req := httptest.NewRequest(http.MethodGet, "/callback?"+tt.query, http.NoBody)
			if tt.cookie != nil {
				w := httptest.NewRecorder()
				if err := h.startFlow(w, *tt.cookie); err != nil {
					t.Fatalf("startFlow() error = %v", err)
				}
				for _, c := range w.Result().Cookies() {
					req.AddCookie(c)
				}
			}
			rr := httptest.NewRecorder()

			h.Callback().ServeHTTP(rr, req)

			if got := rr.Code; got != http.StatusFound {
				t.Fatalf("response.Code = %v, want %v", got, http.StatusFound)
			}
			if got := rr.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("response.Location = %v, want %v", got, tt.wantLocation)
			}
			if calledOnLogin != tt.wantOnLogin {
				t.Errorf("LoginFunc() called = %v, want %v", calledOnLogin, tt.wantOnLogin)
			}
		})
	}
}

func TestHandler_Routes(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	client := mock_camdram.NewMockClient(ctrl)
	client.EXPECT().AuthCodeURL(gomock.Any()).Return("https://www.camdram.net/oauth/v2/auth").Times(1)

	h := newTestHandler(t, client, nil, WithLoginURL("/signin"))

	r := chi.NewRouter()
	r.Route("/auth/camdram", h.Routes)

	tests := []struct {
		name         string
		target       string
		wantLocation string
	}{
		{
			name:         "login",
			target:       "/auth/camdram/login",
			wantLocation: "https://www.camdram.net/oauth/v2/auth",
		},
		{
			name:         "callback",
			target:       "/auth/camdram/callback?state=abc&code=xyz",
			wantLocation: "/signin?message=" + url.QueryEscape("No state cookie"),
		},
	}
	for _, tt := range tests {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, http.NoBody))

		if got := rr.Code; got != http.StatusFound {
			t.Errorf("%s: response.Code = %v, want %v", tt.name, got, http.StatusFound)
		}
		if got := rr.Header().Get("Location"); got != tt.wantLocation {
			t.Errorf("%s: response.Location = %v, want %v", tt.name, got, tt.wantLocation)
		}
	}
}

func TestHandler_Callback_defaultLogHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cookie       *flow
		prepare      func(client *mock_camdram.MockClient)
		wantLocation string
	}{
		{
			name:         "client message is logged",
			wantLocation: "/login?message=" + url.QueryEscape("No state cookie"),
		},
		{
			name:   "error with a cause is logged",
			cookie: &flow{State: "abc"},
			prepare: func(client *mock_camdram.MockClient) {
				client.EXPECT().Exchange(gomock.Any(), "xyz").Return(nil, errors.New("connection refused")).Times(1)
			},
			wantLocation: "/login?message=" + url.QueryEscape("Failed to exchange token"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			client := mock_camdram.NewMockClient(ctrl)
			if tt.prepare != nil {
				tt.prepare(client)
			}

			h := New(client, securecookie.New(securecookie.GenerateRandomKey(32), nil), nil)

			req := httptest.NewRequest(http.MethodGet, "/callback?state=abc&code=xyz", http.NoBody)
			if tt.cookie != nil {
				w := httptest.NewRecorder()
				if err := h.startFlow(w, *tt.cookie); err != nil {
					t.Fatalf("startFlow() error = %v", err)
				}
				for _, c := range w.Result().Cookies() {
					req.AddCookie(c)
				}
			}
			rr := httptest.NewRecorder()

			h.Callback().ServeHTTP(rr, req)

			if got := rr.Code; got != http.StatusFound {
				t.Fatalf("response.Code = %v, want %v", got, http.StatusFound)
			}
			if got := rr.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("response.Location = %v, want %v", got, tt.wantLocation)
			}
		})
	}
}

func Test_localPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		returnURL string
		want      string
	}{
		{name: "empty", returnURL: "", want: "/"},
		{name: "path", returnURL: "/shows/hamlet", want: "/shows/hamlet"},
		{name: "path with query", returnURL: "/shows?page=2", want: "/shows?page=2"},
		{name: "absolute url", returnURL: "https://evil.example/phish", want: "/"},
		{name: "protocol relative", returnURL: "//evil.example", want: "/"},
		{name: "backslash host", returnURL: "/\\evil.example", want: "/"},
		{name: "relative path", returnURL: "shows", want: "/"},
		{name: "javascript scheme", returnURL: "javascript:alert(1)", want: "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := localPath(tt.returnURL); got != tt.want {
				t.Errorf("localPath(%q) = %v, want %v", tt.returnURL, got, tt.want)
			}
		})
	}
}
