package middleware

import (
	"net/http"
	"strings"

	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

// UserIDHeader carries the authenticated user forwarded by the API gateway.
const UserIDHeader = "X-User-ID"

// Identity puts the forwarded user ID in the request context. Requests
// without the header continue as guests; a malformed header is rejected.
func Identity(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := utils.ParseID(raw)
			if !ok {
				logger.Warn("Invalid user header",
					zap.String("value", raw),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid "+UserIDHeader+" header")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetUserContext(r.Context(), userID)))
		})
	}
}

// RequireUser rejects guest requests.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
			utils.ResponseUnauthorized(w, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
