// Package middleware provides HTTP middleware for the scoring API.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// clientKey is the context key for storing the authenticated client name.
const clientKey ContextKey = "client"

// ClientGetter extracts the client identifier from token claims.
type ClientGetter interface {
	GetClient() string
}

// TokenValidator validates bearer tokens. Declared here so the middleware
// works with any token service without an import cycle.
type TokenValidator interface {
	ValidateToken(tokenString string) (ClientGetter, error)
}

// Auth creates middleware that validates bearer tokens and stores the client
// name on the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), clientKey, claims.GetClient())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Client extracts the authenticated client name from the request context.
func Client(r *http.Request) (string, error) {
	client, ok := r.Context().Value(clientKey).(string)
	if !ok {
		return "", fmt.Errorf("client not found in request context")
	}
	return client, nil
}
