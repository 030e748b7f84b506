package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// KeyFunc derives the limiter key from a request.
type KeyFunc func(r *http.Request) string

// DefaultKeyFunc keys on the original client IP: the first entry of
// X-Forwarded-For when present, otherwise the remote address host.
func DefaultKeyFunc(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// Middleware enforces cfg per client key. Rejections get a 429 with a
// Retry-After header in seconds; allowed requests carry
// X-RateLimit-Remaining. A store failure fails open.
func Middleware(store Store, cfg Config, keyFn KeyFunc) func(next http.Handler) http.Handler {
	if keyFn == nil {
		keyFn = DefaultKeyFunc
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dec, err := store.Check(r.Context(), keyFn(r), cfg)
			if err != nil {
				log.Warnf("rate limit check failed, allowing request: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(dec.Remaining))

			if !dec.Allowed {
				seconds := int(math.Ceil(dec.ResetIn.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
