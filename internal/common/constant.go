// Package common contains shared constants and helpers used across the
// Everli client components.
package common

// Header names set on every outbound request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-Id"
)

// BearerPrefix precedes the session token in the Authorization header.
const BearerPrefix = "Bearer "
