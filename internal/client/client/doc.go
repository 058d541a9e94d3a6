// Package client contains the session client for the Everli web API.
//
// # Overview
//
// HTTPClient signs a user in, resolves their delivery location, lists the
// partner stores of a location and fetches per-store delivery slots. The
// operations build on each other and memoize what they learn:
//
//	Authenticate     POST /user/api/v4/local/signin                         (once)
//	ResolveLocation  GET  /sm/api/v3/init                                   (once, needs token)
//	ListStores       GET  /sm/api/v3/locations/{location}/stores            (needs token, location)
//	ListAvailability GET  /sm/api/v3/locations/{location}/stores/{id}/availability
//
// Once set, the bearer token and the location are never refreshed or cleared.
// The token is attached to every request by a RoundTripper wrapping the
// configured http.Client transport.
//
// # Error Handling
//
// Sentinel errors are matched with errors.Is: ErrMissingCredentials,
// ErrWrongCredentials, ErrMalformedInit, ErrMalformedResponse,
// ErrMissingLocation, ErrMissingStoreID. Unexpected HTTP statuses surface as
// *HTTPError (use errors.As). Every sign-in failure collapses into
// ErrWrongCredentials; the upstream reason is only logged.
//
// # Concurrency
//
// HTTPClient is not safe for concurrent use. Overlapping calls on one
// instance may both observe an empty token and sign in twice.
package client
