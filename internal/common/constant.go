// Package common contains shared constants and helpers used across
// estatehub components.
package common

// Header names sent on every outbound API request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	ContentTypeHeaderName   = "Content-Type"
)

// BearerPrefix precedes the token in the Authorization header.
const BearerPrefix = "Bearer "

// JSONContentType is used for structured request bodies.
const JSONContentType = "application/json"
