package client

import (
	"net/http"

	"github.com/dmitrijs2005/everli/internal/common"
	"github.com/google/uuid"
)

// accessTokenTransport decorates outbound requests with the session bearer
// token (once there is one) and a fresh request id.
type accessTokenTransport struct {
	base  http.RoundTripper
	token func() string
}

func (t *accessTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	if token := t.token(); token != "" {
		r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	return t.base.RoundTrip(r)
}

// withAccessToken returns a shallow copy of hc whose transport injects the
// token returned by token.
func withAccessToken(hc *http.Client, token func() string) *http.Client {
	wrapped := *hc

	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped.Transport = &accessTokenTransport{base: base, token: token}

	return &wrapped
}
