package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const tokenKey contextKey = "auth_token"

// WithToken returns a context carrying the caller's bearer token. The token is
// passed through to the inventory backend untouched; this service never
// validates or decodes it.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// GetToken helper - returns the bearer token the middleware stored on the
// request context, or "" when the request carried none.
func GetToken(ctx context.Context) string {
	if val, ok := ctx.Value(tokenKey).(string); ok {
		return val
	}
	return ""
}

// TokenFromHeader extracts the bearer token from an Authorization header.
func TokenFromHeader(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(h), "bearer ") {
		return strings.TrimSpace(h[len("bearer "):])
	}
	return h
}
