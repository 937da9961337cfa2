package login

import (
	"net/http"
	"strings"

	"github.com/cccteam/httpio"
	"github.com/cccteam/logger"
)

// Log is the default LogHandler. Errors with an underlying cause are logged as errors,
// client messages (a bad state, a denied authorization) only at info.
func Log(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		switch {
		case err == nil:
		case httpio.CauseIsError(err):
			logger.Req(r).Error(err)
		default:
			logger.Req(r).Infof("camdram login %s: %s", r.URL.Path, strings.Join(httpio.Messages(err), "; "))
		}
	}
}
