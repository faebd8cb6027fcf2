package transport

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// InternalMiddleware gates service-to-service routes behind a static API
// key. An unset key closes the surface entirely rather than leaving it
// open, and the comparison is constant time.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
