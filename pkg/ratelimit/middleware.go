package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"time"
)

// KeyFunc derives the rate limit key for a request.
type KeyFunc func(r *http.Request) string

// Options configures the middleware.
type Options struct {
	Store *Store
	Stats StatsStore
	KeyFn KeyFunc
}

// ClientAddr keys requests by the client host of RemoteAddr.
func ClientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// Middleware rejects requests over the per-client budget with 429. Stats
// recording is best-effort; a stats error never fails the request.
func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.KeyFn == nil {
		opts.KeyFn = ClientAddr
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)
			allowed := opts.Store.Get(key).Allow()

			if opts.Stats != nil {
				_ = opts.Stats.Record(r.Context(), StatsEvent{
					Key:     key,
					Allowed: allowed,
					Method:  r.Method,
					Path:    r.URL.Path,
					At:      time.Now(),
				})
			}

			if !allowed {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
