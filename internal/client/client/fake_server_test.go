package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake server saw for one call.
type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
	Body          []byte
}

// fakeEverli is an httptest server standing in for api.everli.com. Each
// route answers with a fixed status and body; every request is recorded.
type fakeEverli struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]fakeRoute
}

type fakeRoute struct {
	status int
	body   string
}

func newFakeEverli(t *testing.T) *fakeEverli {
	t.Helper()
	f := &fakeEverli{t: t, routes: map[string]fakeRoute{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeEverli) handle(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = fakeRoute{status: status, body: body}
}

func (f *fakeEverli) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method:        r.Method,
		Path:          r.URL.EscapedPath(),
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get("X-Request-Id"),
		Body:          body,
	})
	route, ok := f.routes[r.Method+" "+r.URL.EscapedPath()]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"not found"}`)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(route.status)
	_, _ = io.WriteString(w, route.body)
}

func (f *fakeEverli) calls(method, path string) []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedRequest
	for _, r := range f.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeEverli) all() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeEverli) newClient(opts ...Option) *HTTPClient {
	f.t.Helper()
	opts = append([]Option{WithBaseURL(f.server.URL), WithHTTPClient(f.server.Client())}, opts...)
	c, err := NewHTTPClient(Credentials{Email: "me@example.com", Password: "s3cret"}, opts...)
	require.NoError(f.t, err)
	return c
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

const (
	signInOK = `{
  "data": {
    "user": {"user_id": "0002037944", "email": "me@example.com", "country": "ITA", "auth_token": "T"},
    "tracking": [{"event_name": "signin", "data": {"user_email": "me@example.com", "user_id": "0002037944", "type": "email"}}],
    "next_link": "#/"
  },
  "metadata": {"data": ""}
}`

	initOK = `{
  "data": {
    "app": {},
    "customer": {"is_logged_in": true, "has_valid_addresses": true, "email": "me@example.com"},
    "use_legacy_brand": false,
    "next_link": "#/locations/11392/stores"
  },
  "metadata": {"data": ""}
}`
)
