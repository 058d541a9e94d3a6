package client

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestAccessTokenTransport_SetsHeaders(t *testing.T) {
	var seen *http.Request
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})

	token := ""
	tr := &accessTokenTransport{base: base, token: func() string { return token }}

	req, err := http.NewRequest(http.MethodGet, "http://example.test/sm/api/v3/init", nil)
	require.NoError(t, err)

	_, err = tr.RoundTrip(req)
	require.NoError(t, err)
	assert.Empty(t, seen.Header.Get("Authorization"))
	_, err = uuid.Parse(seen.Header.Get("X-Request-Id"))
	assert.NoError(t, err)

	token = "T"
	_, err = tr.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, "Bearer T", seen.Header.Get("Authorization"))

	assert.Empty(t, req.Header.Get("Authorization"), "caller request must stay untouched")
	assert.Empty(t, req.Header.Get("X-Request-Id"))
}

func TestAccessTokenTransport_KeepsCallerRequestID(t *testing.T) {
	var seen *http.Request
	base := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})
	tr := &accessTokenTransport{base: base, token: func() string { return "" }}

	req, err := http.NewRequest(http.MethodGet, "http://example.test/", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "fixed")

	_, err = tr.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, "fixed", seen.Header.Get("X-Request-Id"))
}

func TestWithAccessToken_DefaultsToDefaultTransport(t *testing.T) {
	hc := withAccessToken(&http.Client{}, func() string { return "" })

	tr, ok := hc.Transport.(*accessTokenTransport)
	require.True(t, ok)
	assert.Equal(t, http.DefaultTransport, tr.base)
}

func TestHTTPError_UpstreamMessage(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{body: `{"error":"Invalid email or password"}`, want: "Invalid email or password"},
		{body: `{"error":{"code":401}}`, want: `{"code":401}`},
		{body: `{"message":"x"}`, want: `{"message":"x"}`},
		{body: "  plain text \n", want: "plain text"},
	}
	for _, tt := range tests {
		e := &HTTPError{Method: http.MethodGet, Path: "/x", StatusCode: 500, Body: tt.body}
		assert.Equal(t, tt.want, e.UpstreamMessage())
		assert.Contains(t, e.Error(), "unexpected status 500")
	}
}
