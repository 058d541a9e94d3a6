package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/everli/internal/client/models"
	"github.com/dmitrijs2005/everli/internal/logging"
)

const (
	DefaultBaseURL = "https://api.everli.com"
	DefaultTimeout = 10 * time.Second

	pathSignIn       = "/user/api/v4/local/signin"
	pathInit         = "/sm/api/v3/init"
	pathStores       = "/sm/api/v3/locations/%s/stores"
	pathAvailability = "/sm/api/v3/locations/%s/stores/%s/availability"

	trackFrom = "it-header"

	maxErrorBody = 64 << 10
)

var nextLinkPattern = regexp.MustCompile(`#/locations/(\d+)/stores`)

// Credentials identify the Everli account. Both fields are required.
type Credentials struct {
	Email    string
	Password string
}

type Option func(*HTTPClient)

// WithBaseURL points the client at another host, e.g. an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *HTTPClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the default http.Client (10s timeout). The given
// client is copied, never mutated.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) {
		if l != nil {
			c.log = l
		}
	}
}

// HTTPClient is the Everli session client. See the package documentation
// for the call chain and its memoization rules.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger

	email    string
	password string

	accessToken string
	userID      string
	location    string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient validates the credentials and builds a client. No request is
// issued until the first operation.
func NewHTTPClient(creds Credentials, opts ...Option) (*HTTPClient, error) {
	if strings.TrimSpace(creds.Email) == "" || strings.TrimSpace(creds.Password) == "" {
		return nil, ErrMissingCredentials
	}

	c := &HTTPClient{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		log:        logging.Discard(),
		email:      creds.Email,
		password:   creds.Password,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = withAccessToken(c.httpClient, c.Token)
	c.log = c.log.With("component", "everli-client")

	return c, nil
}

// Token returns the bearer token, or "" before a successful Authenticate.
func (c *HTTPClient) Token() string { return c.accessToken }

// UserID returns the account id reported at sign-in, if any.
func (c *HTTPClient) UserID() string { return c.userID }

// Location returns the resolved location id, or "" before ResolveLocation.
func (c *HTTPClient) Location() string { return c.location }

// Authenticate signs in unless a token is already held. Every failure
// (network, status, payload) is reported as ErrWrongCredentials.
func (c *HTTPClient) Authenticate(ctx context.Context) error {
	if c.accessToken != "" {
		return nil
	}

	req := signInRequest{Email: c.email, Password: c.password, TrackFrom: trackFrom}

	var resp signInResponse
	if err := c.do(ctx, http.MethodPost, pathSignIn, req, &resp); err != nil {
		c.logSignInFailure(ctx, err)
		return ErrWrongCredentials
	}

	user := resp.Data.User
	if user == nil || user.AuthToken == "" {
		c.log.Warn(ctx, "sign-in response carries no auth token")
		return ErrWrongCredentials
	}

	c.accessToken = user.AuthToken
	c.userID = user.UserID.String()
	c.log.Info(ctx, "signed in", "user_id", c.userID)

	return nil
}

func (c *HTTPClient) logSignInFailure(ctx context.Context, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		c.log.Warn(ctx, "sign-in rejected", "status", httpErr.StatusCode, "error", httpErr.UpstreamMessage())
		return
	}
	c.log.Warn(ctx, "sign-in failed", "error", err)
}

// ResolveLocation authenticates and then, unless already known, reads the
// delivery location from the "#/locations/{id}/stores" hint of the init
// endpoint.
func (c *HTTPClient) ResolveLocation(ctx context.Context) error {
	if err := c.Authenticate(ctx); err != nil {
		return err
	}

	if c.location != "" {
		return nil
	}

	var resp initResponse
	if err := c.do(ctx, http.MethodGet, pathInit, nil, &resp); err != nil {
		if errors.Is(err, ErrMalformedResponse) {
			return fmt.Errorf("%w: %w", ErrMalformedInit, err)
		}
		return err
	}

	if resp.Data.NextLink == nil {
		return fmt.Errorf("%w: field is missing", ErrMalformedInit)
	}

	m := nextLinkPattern.FindStringSubmatch(*resp.Data.NextLink)
	if m == nil {
		return fmt.Errorf("%w: %q", ErrMalformedInit, *resp.Data.NextLink)
	}

	c.location = m[1]
	c.log.Info(ctx, "location resolved", "location", c.location)

	return nil
}

// ListStores lists the stores of location. An empty location means the
// session location, resolving it first if needed.
func (c *HTTPClient) ListStores(ctx context.Context, location string) ([]models.Store, error) {
	if location != "" {
		if err := c.Authenticate(ctx); err != nil {
			return nil, err
		}
	} else {
		if err := c.ResolveLocation(ctx); err != nil {
			return nil, err
		}
		location = c.location
	}

	var resp storesResponse
	path := fmt.Sprintf(pathStores, url.PathEscape(location))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	stores := projectStores(resp.Data.Body)
	c.log.Debug(ctx, "stores listed", "location", location, "count", len(stores))

	return stores, nil
}

// ListAvailability returns the delivery slots of store, one record per day.
// The store's own location id is used; the session location is the fallback.
func (c *HTTPClient) ListAvailability(ctx context.Context, store models.Store) ([]models.Availability, error) {
	if store.ID == "" {
		return nil, ErrMissingStoreID
	}

	location := store.Location()
	if location == "" {
		location = c.location
	}
	if location == "" {
		return nil, fmt.Errorf("%w %s", ErrMissingLocation, store.ID)
	}

	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	var resp availabilityResponse
	path := fmt.Sprintf(pathAvailability, url.PathEscape(location), url.PathEscape(store.ID))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	days := projectAvailability(resp.Data.Days)
	c.log.Debug(ctx, "availability listed", "location", location, "store", store.ID, "days", len(days))

	return days, nil
}

// do marshals body (if any), sends the request and decodes a 2xx JSON answer
// into v (if not nil). Non-2xx answers become *HTTPError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, v any) error {
	var bodyReader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.log.Warn(ctx, "failed to close response body", "error", closeErr)
		}
	}()

	c.log.Debug(ctx, "request completed", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(data)}
	}

	if v == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
	}

	return nil
}
