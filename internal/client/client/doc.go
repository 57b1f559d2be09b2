// Package client talks to the EstateHub REST API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the API interface) covering the
//     auth, listings and admin endpoint groups.
//  2. HTTPClient, the concrete implementation. Its Do method performs one
//     request: it attaches the bearer token supplied by a TokenSource,
//     serializes JSON or multipart bodies, parses every response as JSON and
//     turns non-2xx statuses into *APIError.
//  3. Boundary normalization of the loosely shaped responses: collections
//     that arrive either bare or wrapped in a named field, single objects that
//     may be wrapped, and the union-typed listing fields handled in models.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable and unparseable bodies wrap
// ErrInvalidResponse. Server-reported failures are *APIError values whose
// message is the payload's "message" field, or "HTTP Error: <status>" when it
// has none. An *APIError with status 401 or 403 also matches ErrUnauthorized.
// Every failure is logged with its endpoint before it is returned.
//
// # Contexts
//
// Every call accepts a context.Context and is cancelled with it. The client
// applies no timeout of its own unless one is configured with WithTimeout.
//
// HTTPClient never writes the session or the token; callers persist them
// after interpreting a login response.
package client
