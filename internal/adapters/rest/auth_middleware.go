package rest

import (
	"context"
	"net/http"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
)

type contextKey string

const claimsKey = contextKey("authClaims")

// ClaimsFromContext returns the claims placed by Authenticate, or nil when
// the request was not authenticated (auth disabled).
func ClaimsFromContext(ctx context.Context) *port.Claims {
	claims, _ := ctx.Value(claimsKey).(*port.Claims)
	return claims
}

// AuthMiddleware validates bearer tokens against the authentication service.
// With Enabled false every request passes through unauthenticated, which is
// the local development mode.
type AuthMiddleware struct {
	client  port.AuthClientPort
	enabled bool
}

func NewAuthMiddleware(client port.AuthClientPort, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{client: client, enabled: enabled}
}

// Authenticate extracts the bearer token, validates it and stores the claims
// in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.enabled {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing")
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header must be a bearer token")
			return
		}

		claims, err := m.client.ValidateToken(r.Context(), token)
		if err != nil {
			contextkeys.LoggerFromContext(r.Context()).Warn("Token validation failed", port.Fields{
				"error": err.Error(),
			})
			WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAnyRole allows the request only when the authenticated user has one
// of the given roles. A no-op while auth is disabled.
func (m *AuthMiddleware) RequireAnyRole(roles ...string) func(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.enabled {
				next.ServeHTTP(w, r)
				return
			}

			claims := ClaimsFromContext(r.Context())
			if claims == nil {
				WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if _, ok := allowed[claims.Role]; !ok {
				WriteJSONError(w, http.StatusForbidden, "Insufficient role for this operation")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
