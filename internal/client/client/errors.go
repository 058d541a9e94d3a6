package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingCredentials = errors.New("you must specify at least an email and a password")
	ErrWrongCredentials   = errors.New("wrong credentials")
	ErrMalformedInit      = errors.New(`wrong "next_link" in initialization phase`)
	ErrMalformedResponse  = errors.New("malformed response")
	ErrMissingLocation    = errors.New("no location for store")
	ErrMissingStoreID     = errors.New("no store id")
)

// HTTPError is returned for any non-2xx upstream answer.
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.UpstreamMessage())
}

// UpstreamMessage extracts the "error" field of an Everli error payload,
// falling back to the raw body.
func (e *HTTPError) UpstreamMessage() string {
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal([]byte(e.Body), &payload); err != nil || len(payload.Error) == 0 {
		return strings.TrimSpace(e.Body)
	}
	var msg string
	if err := json.Unmarshal(payload.Error, &msg); err == nil {
		return msg
	}
	return string(payload.Error)
}
