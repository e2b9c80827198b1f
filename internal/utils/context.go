// Package utils provides general-purpose helpers shared by the client
// packages: context keys, request identifiers, JWT inspection and the resty
// client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key under which a caller-chosen request id travels
// in the context. The adapter sends it as X-Request-ID instead of generating
// a fresh one.
var RequestIDCtxKey = contextKey("requestID")

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext retrieves the request id from the context.
//
// ok is false when the value is missing, empty or not a string.
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}

// OmittedHeadersCtxKey carries the canonical header names a request must be
// sent without, even when the transport would set them itself.
var OmittedHeadersCtxKey = contextKey("omittedHeaders")

// WithOmittedHeaders returns a copy of ctx marking names as omitted. With no
// names ctx is returned unchanged.
func WithOmittedHeaders(ctx context.Context, names ...string) context.Context {
	if len(names) == 0 {
		return ctx
	}
	return context.WithValue(ctx, OmittedHeadersCtxKey, names)
}

// GetOmittedHeadersFromContext returns the header names stored by
// WithOmittedHeaders.
func GetOmittedHeadersFromContext(ctx context.Context) []string {
	names, _ := ctx.Value(OmittedHeadersCtxKey).([]string)
	return names
}
