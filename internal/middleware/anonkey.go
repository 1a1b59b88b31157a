package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AnonKeyHeader carries the shared anonymous access key on API requests.
const AnonKeyHeader = "X-Anon-Key"

// AnonKeyQueryParam is the query-string fallback for clients that cannot set
// headers, such as browser WebSocket dials.
const AnonKeyQueryParam = "key"

// AnonKey returns middleware that rejects requests missing the shared
// anonymous access key. Both consultation views present the same key; this is
// access gating for the deployment, not a user identity model.
func AnonKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(AnonKeyHeader)
			if presented == "" {
				presented = r.URL.Query().Get(AnonKeyQueryParam)
			}
			if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error": "invalid access key"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
