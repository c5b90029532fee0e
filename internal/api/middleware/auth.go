package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/syednazrin/Amresearch-platform-sub000/internal/api/handlers"
)

const adminKeyHeader = "X-Admin-Key"

// AdminAuth guards the admin subrouter with a shared API key carried in the
// X-Admin-Key header.
func AdminAuth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(adminKeyHeader)
			if provided == "" {
				handlers.RespondUnauthorized(w, "missing admin key")
				return
			}
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				handlers.RespondForbidden(w, "invalid admin key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
