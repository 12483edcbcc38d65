package transport

import (
	"net/http"

	"github.com/agentstation/redlist/pkg/constants"
)

// Authenticator applies authentication to HTTP requests.
type Authenticator interface {
	Apply(req *http.Request, token string)
}

// NoAuth implements no authentication.
type NoAuth struct{}

// Apply implements the Authenticator interface for NoAuth.
func (a *NoAuth) Apply(_ *http.Request, _ string) {
	// No authentication applied
}

// HeaderAuth sends the token verbatim in a header, without a scheme prefix.
type HeaderAuth struct {
	Header string
}

// Apply implements the Authenticator interface for HeaderAuth.
func (a *HeaderAuth) Apply(req *http.Request, token string) {
	header := a.Header
	if header == "" {
		header = constants.AuthorizationHeader
	}
	req.Header.Set(header, token)
}

// ForToken returns the authenticator for a resolved token: the raw token in
// the Authorization header, or nothing when the token is empty.
func ForToken(token string) Authenticator {
	if token == "" {
		return &NoAuth{}
	}
	return &HeaderAuth{Header: constants.AuthorizationHeader}
}
