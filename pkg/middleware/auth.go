package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shopkit/admin/pkg/auth"
	"github.com/shopkit/admin/pkg/response"
)

type userIDKey struct{}
type roleKey struct{}

// AuthMiddleware validates the bearer token and injects the verified
// user ID and role claim into the request context. Revoked tokens
// (logged out) fail validation like any other invalid token.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, claims.UserID)
		ctx = context.WithValue(ctx, roleKey{}, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromCtx returns the authenticated user's ID, "" if unauthenticated.
func UserIDFromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RoleFromCtx returns the authenticated user's role, "" if unauthenticated.
func RoleFromCtx(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey{}).(string); ok {
		return role
	}
	return ""
}
