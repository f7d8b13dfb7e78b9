// Rate limiter for endpoints that rewrite the chaos tables.
// Fixed-window request counting per client address, purged lazily.
package api

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiter caps how many requests a client may make per window.
type RateLimiter struct {
	mu        sync.Mutex
	windows   map[string]*window
	limit     int
	period    time.Duration
	lastPurge time.Time
}

type window struct {
	count   int
	started time.Time
}

// NewRateLimiter creates a rate limiter allowing limit requests per period.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	return &RateLimiter{
		windows:   make(map[string]*window),
		limit:     limit,
		period:    period,
		lastPurge: time.Now(),
	}
}

// Allow records a request from the client and reports whether it is
// within the limit for the current window.
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.purgeLocked(now)

	w := rl.windows[client]
	if w == nil || now.Sub(w.started) >= rl.period {
		rl.windows[client] = &window{count: 1, started: now}
		return true
	}
	if w.count < rl.limit {
		w.count++
		return true
	}
	return false
}

// RetryAfter returns how many seconds until the window resets for this client.
func (rl *RateLimiter) RetryAfter(client string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w := rl.windows[client]
	if w == nil {
		return 0
	}
	remaining := rl.period - time.Since(w.started)
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Seconds()) + 1
}

// purgeLocked drops expired windows. Runs at most once per period so
// Allow stays cheap on the hot path.
func (rl *RateLimiter) purgeLocked(now time.Time) {
	if now.Sub(rl.lastPurge) < rl.period {
		return
	}
	rl.lastPurge = now
	for client, w := range rl.windows {
		if now.Sub(w.started) >= rl.period {
			delete(rl.windows, client)
		}
	}
}

// clientAddr extracts the client address for rate limiting, honoring
// X-Forwarded-For from proxies.
func clientAddr(r *http.Request) string {
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx >= 0 {
		addr = addr[:idx]
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		addr = xff
		if idx := strings.Index(xff, ","); idx >= 0 {
			addr = xff[:idx]
		}
	}
	return addr
}

// RateLimitMiddleware wraps a handler with rate limiting. Returns 429 if exceeded.
func RateLimitMiddleware(rl *RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client := clientAddr(r)
		if !rl.Allow(client) {
			w.Header().Set("Retry-After", strconv.Itoa(rl.RetryAfter(client)))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}
