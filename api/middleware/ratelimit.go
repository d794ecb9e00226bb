// ABOUTME: Rate limiting middleware for API endpoints
// ABOUTME: Applies a per-client token bucket backed by an expiring limiter store

package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client key. Buckets for idle
// clients expire from the store instead of accumulating forever.
type RateLimiter struct {
	buckets *gocache.Cache
	rate    rate.Limit
	burst   int
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter allowing limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets: gocache.New(2*window, 2*window),
		rate:    rate.Every(window / time.Duration(limit)),
		burst:   limit,
		limit:   limit,
		window:  window,
	}
}

// Allow reports whether the client identified by key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	if cached, found := rl.buckets.Get(key); found {
		return cached.(*rate.Limiter).Allow()
	}

	bucket := rate.NewLimiter(rl.rate, rl.burst)
	if err := rl.buckets.Add(key, bucket, gocache.DefaultExpiration); err != nil {
		// Another request created the bucket first; use theirs.
		if cached, found := rl.buckets.Get(key); found {
			return cached.(*rate.Limiter).Allow()
		}
	}
	return bucket.Allow()
}

// RateLimitMiddleware creates a middleware that enforces rate limits per client IP
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := extractIP(r)

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.limit))
			w.Header().Set("X-RateLimit-Window", fmt.Sprintf("%.0f", limiter.window.Seconds()))

			if !limiter.Allow(clientIP) {
				w.Header().Set("Retry-After", fmt.Sprintf("%.0f", limiter.window.Seconds()))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				fmt.Fprintf(w, `{"error":"Rate limit exceeded","message":"Too many requests, please try again later"}`)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP extracts the client IP from the request, honoring proxy headers.
func extractIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[len(parts)-1])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	return r.RemoteAddr
}
