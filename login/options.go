package login

// Option defines a function signature for setting Handler options.
type Option func(*Handler)

// WithCookieName sets the name of the state cookie. (default: CAMDRAM)
func WithCookieName(name string) Option {
	return Option(func(h *Handler) {
		h.cookieName = name
	})
}

// WithSecureCookie marks the state cookie as Secure. (default: false)
func WithSecureCookie(secure bool) Option {
	return Option(func(h *Handler) {
		h.secure = secure
	})
}

// WithLoginURL sets the URL redirected to when the callback fails. (default: /login)
func WithLoginURL(url string) Option {
	return Option(func(h *Handler) {
		h.loginURL = url
	})
}

// WithLogHandler sets the LogHandler. (default: Log)
func WithLogHandler(l LogHandler) Option {
	return Option(func(h *Handler) {
		h.handle = l
	})
}
