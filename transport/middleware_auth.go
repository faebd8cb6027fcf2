package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/storescout/storescout/application/user"
	"github.com/storescout/storescout/constant"
	utilsContext "github.com/storescout/storescout/utils/context"
	"github.com/storescout/storescout/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// It allows public endpoints (like /login, /register, /search) without token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Public paths
			if isPublicPath(r.Method, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			// Check Authorization header
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			// Validate token via UserApp
			userID, role, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			// Embed userID and role into context
			ctx := utilsContext.WithUser(r.Context(), userID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/login" || path == "/register" || path == "/config" {
		return true
	}
	if strings.HasPrefix(path, "/search") {
		return true
	}
	// Product reads are public; catalog writes are not
	if method == http.MethodGet && strings.HasPrefix(path, "/products") {
		return true
	}

	return false
}
