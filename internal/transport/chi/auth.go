package chi

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// authExempt reports whether a path bypasses authentication. Health and
// metrics stay open so probes and scrapers need no credentials.
func authExempt(path string) bool {
	return path == "/health" || path == "/metrics"
}

// BearerAuthMiddleware returns a middleware that validates Bearer tokens
// against the configured key set. An empty key set disables authentication.
func BearerAuthMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	validKeys := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			validKeys[k] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		if len(validKeys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, reason := bearerToken(r)
			if reason != "" {
				writeError(w, http.StatusUnauthorized, CodeUnauthorized, reason)
				return
			}
			if _, ok := validKeys[token]; !ok {
				writeError(w, http.StatusUnauthorized, CodeUnauthorized, "invalid api key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from the Authorization header. The second
// return value is a non-empty rejection reason when the header is unusable.
func bearerToken(r *http.Request) (string, string) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(auth, bearerPrefix) {
		return "", "authorization header must use Bearer scheme"
	}
	return auth[len(bearerPrefix):], ""
}
