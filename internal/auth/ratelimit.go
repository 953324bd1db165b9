package auth

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Rate limit defaults: each client gets a fixed number of requests per
// sliding window.
const (
	DefaultRateLimit  = 100
	DefaultRateWindow = time.Hour
)

// RateLimiter enforces a per-client sliding window. Clients are keyed by
// IP (honoring X-Forwarded-For behind the proxy).
type RateLimiter struct {
	limit  int
	window time.Duration

	mu        sync.Mutex
	clients   map[string][]time.Time
	lastSweep time.Time

	now func() time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &RateLimiter{
		limit:   limit,
		window:  window,
		clients: map[string][]time.Time{},
		now:     time.Now,
	}
}

// allow records a request for the client and reports whether it is
// within the limit, plus how many requests remain.
func (rl *RateLimiter) allow(client string) (bool, int) {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	rl.sweep(now, cutoff)

	times := rl.clients[client]
	kept := times[:0]
	for _, t := range times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= rl.limit {
		rl.clients[client] = kept
		return false, 0
	}
	kept = append(kept, now)
	rl.clients[client] = kept
	return true, rl.limit - len(kept)
}

// sweep drops clients whose newest request has aged out of the window,
// so one-off visitors do not accumulate in the map forever. Runs at most
// once per window. Caller holds mu.
func (rl *RateLimiter) sweep(now, cutoff time.Time) {
	if now.Sub(rl.lastSweep) < rl.window {
		return
	}
	rl.lastSweep = now
	for client, times := range rl.clients {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(rl.clients, client)
		}
	}
}

// Middleware applies the rate limit and sets the X-RateLimit response
// headers.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, remaining := rl.allow(clientKey(r))

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(rl.now().Add(rl.window).Unix(), 10))

		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]any{
				"error":       "Rate limit exceeded",
				"message":     "Maximum " + strconv.Itoa(rl.limit) + " requests per window allowed",
				"retry_after": int(rl.window.Seconds()),
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if i := strings.IndexByte(forwarded, ','); i >= 0 {
			return strings.TrimSpace(forwarded[:i])
		}
		return strings.TrimSpace(forwarded)
	}
	host := r.RemoteAddr
	if i := strings.LastIndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}
