package middleware

import (
	"context"
	"net/http"
	"strings"

	"hris/internal/auth"
)

type ctxKey int

const ctxKeyUser ctxKey = iota

// UserContext is what a valid bearer token resolves to.
type UserContext struct {
	EmployeeID  string
	Role        string
	Permissions []string
}

// Auth parses a bearer token when present. Invalid or missing tokens
// leave the request anonymous; RequirePermission decides whether that
// matters.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, UserContext{
				EmployeeID:  claims.EmployeeID,
				Role:        claims.Role,
				Permissions: claims.Permissions,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (UserContext, bool) {
	user, ok := ctx.Value(ctxKeyUser).(UserContext)
	return user, ok
}
