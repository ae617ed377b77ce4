package middleware

import (
	"net/http"
)

// Common size limits
const (
	kb = 1024
	mb = 1024 * kb

	// DefaultMaxBodySize is the default maximum request body size (1MB).
	// The API only takes small JSON bodies; uploads do not exist here.
	DefaultMaxBodySize = 1 * mb
)

// MaxBodySize limits the size of request bodies. Oversized requests
// get 413 Request Entity Too Large.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength > maxBytes {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
