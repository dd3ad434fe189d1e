package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyFunc extracts the rate-limit bucket key from a request.
type KeyFunc func(*http.Request) string

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
	window  time.Duration
}

// RateLimit creates middleware that restricts the number of requests allowed
// per client IP within the provided window.
func RateLimit(maxRequests int, window time.Duration) func(http.Handler) http.Handler {
	return RateLimitWithKey(maxRequests, window, ClientIP)
}

// RateLimitWithKey creates middleware that restricts requests per bucket,
// using key to pick the bucket. Signing endpoints use this to limit per key ID
// rather than per caller.
func RateLimitWithKey(maxRequests int, window time.Duration, key KeyFunc) func(http.Handler) http.Handler {
	if maxRequests <= 0 {
		panic("maxRequests must be positive")
	}

	rl := &rateLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(float64(maxRequests) / window.Seconds()),
		burst:   maxRequests,
		window:  window,
	}

	go rl.cleanupBuckets()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limiter := rl.getLimiter(key(r))
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, exists := rl.buckets[key]; exists {
		b.lastSeen = time.Now()
		return b.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.buckets[key] = &bucket{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *rateLimiter) cleanupBuckets() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-rl.window)

		rl.mu.Lock()
		for key, b := range rl.buckets {
			if b.lastSeen.Before(cutoff) {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

// ClientIP returns the originating client address, honoring X-Forwarded-For
// when a proxy sits in front of the service.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
