package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"readhelper/internal/domain"
	"readhelper/internal/service"

	"go.uber.org/zap"
)

// SessionCookie is the cookie carrying the session token.
const SessionCookie = "session"

type contextKey int

const userKey contextKey = iota

// UserFrom returns the authenticated user stored in the request
// context, or nil for anonymous requests.
func UserFrom(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userKey).(*domain.User)
	return user
}

// WithUser returns a context carrying the user, used by handler tests.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// Auth resolves the session cookie to a user and stores it in the
// request context. With required set, requests without a valid session
// are rejected with 401 before reaching the handler.
func Auth(authService *service.AuthService, logger *zap.Logger, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				token = cookie.Value
			}

			user, err := authService.CurrentUser(token)
			if err != nil {
				logger.Error("Failed to resolve session", zap.Error(err))
				writeUnauthorized(w)
				return
			}

			if user == nil {
				if required {
					writeUnauthorized(w)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": "Please log in again to continue.",
	})
}
