package camdram

import (
	"fmt"
	"net/http"

	"github.com/go-playground/errors/v5"
)

// ClientError is returned when Camdram responds with a status of 400 or above
type ClientError struct {
	StatusCode int
	// Body is the parsed response body, or the raw text when it could not be parsed
	Body any
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("camdram: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// OAuthError is returned when Camdram signals a failure through an "error" field in the response body
type OAuthError struct {
	StatusCode  int
	Code        string
	Description string
	Body        map[string]any
}

func (e *OAuthError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("camdram: oauth error %q", e.Code)
	}

	return fmt.Sprintf("camdram: oauth error %q: %s", e.Code, e.Description)
}

// UnparsableResponseError is returned when a successful response body is neither JSON nor form encoded
type UnparsableResponseError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UnparsableResponseError) Error() string {
	return fmt.Sprintf("camdram: unable to parse response body: %s", e.Err)
}

func (e *UnparsableResponseError) Unwrap() error {
	return e.Err
}

// HasClientError reports whether err contains a *ClientError and returns it
func HasClientError(err error) (*ClientError, bool) {
	var cerr *ClientError
	if errors.As(err, &cerr) {
		return cerr, true
	}

	return nil, false
}

// HasOAuthError reports whether err contains an *OAuthError and returns it
func HasOAuthError(err error) (*OAuthError, bool) {
	var oerr *OAuthError
	if errors.As(err, &oerr) {
		return oerr, true
	}

	return nil, false
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
