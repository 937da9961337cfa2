package login

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/errors/v5"
)

const (
	defaultCookieName = "CAMDRAM"

	flowLifetime = 10 * time.Minute
)

// flow is what the state cookie carries between Login and Callback
type flow struct {
	State     string
	ReturnURL string
}

// startFlow signs f into the state cookie
func (h *Handler) startFlow(w http.ResponseWriter, f flow) error {
	value, err := h.s.Encode(h.cookieName, f)
	if err != nil {
		return errors.Wrap(err, "securecookie.Encode()")
	}

	h.setCookie(w, value, time.Now().Add(flowLifetime))

	return nil
}

// finishFlow returns the flow started by Login and expires its cookie. A flow can only be finished once.
func (h *Handler) finishFlow(w http.ResponseWriter, r *http.Request) (flow, bool) {
	c, err := r.Cookie(h.cookieName)
	if err != nil {
		return flow{}, false
	}
	h.setCookie(w, "", time.Unix(0, 0))

	var f flow
	if err := h.s.Decode(h.cookieName, c.Value, &f); err != nil {
		return flow{}, false
	}

	return f, true
}

func (h *Handler) setCookie(w http.ResponseWriter, value string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Expires:  expires,
		Path:     "/",
		Secure:   h.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// localPath returns returnURL when it is a path on this site, and "/" otherwise
func localPath(returnURL string) string {
	returnURL = strings.TrimSpace(returnURL)
	if !strings.HasPrefix(returnURL, "/") || strings.HasPrefix(returnURL, "//") || strings.HasPrefix(returnURL, "/\\") {
		return "/"
	}

	u, err := url.Parse(returnURL)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}

	return returnURL
}
