package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/nhdinhdev03/nhdinh-profile-sub001/token"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyClaims stores the validated token claims for the request
const ContextKeyClaims ContextKey = "auth_claims"

// AuthContext is the request gate. It extracts a bearer token when one is
// present, validates it, and on success attaches the claims to the
// request context. It never rejects a request on its own: a missing,
// expired or tampered token simply leaves the request anonymous, and the
// route's policy (RequireAuth) decides whether that matters.
func (s *Server) AuthContext() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			raw := bearerToken(r)
			if raw == "" {
				next(w, r)
				return
			}

			claims, err := s.codec.Validate(raw)
			if err != nil {
				// Invalid or expired token: downgrade to anonymous.
				next(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireAuth enforces the policy for protected routes: no authenticated
// context means 401, regardless of why the gate left the request
// anonymous.
func (s *Server) RequireAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ClaimsFromContext(r.Context()); !ok {
				respondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next(w, r)
		}
	}
}

// ClaimsFromContext returns the authenticated claims for the request, if
// the gate established any.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*token.Claims)
	return claims, ok
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header, returning "" when the header is absent or not a bearer scheme.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
