package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyNoKeysConfigured(t *testing.T) {
	handler := APIKey(nil, nil)(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("code = %d, want 200 with auth disabled", w.Code)
	}
}

func TestAPIKeyValid(t *testing.T) {
	handler := APIKey([]string{"secret-key"}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret-key")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("code = %d, want 200", w.Code)
	}
}

func TestAPIKeyRejected(t *testing.T) {
	handler := APIKey([]string{"secret-key"}, nil)(okHandler())

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong key", "Bearer wrong"},
		{"wrong scheme", "Basic secret-key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("code = %d, want 401", w.Code)
			}
			if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Errorf("WWW-Authenticate = %q", got)
			}
		})
	}
}

func TestHashKeyStableAndShort(t *testing.T) {
	a, b := HashKey("some-key"), HashKey("some-key")
	if a != b {
		t.Error("hash not stable")
	}
	if len(a) != 12 {
		t.Errorf("hash length = %d, want 12", len(a))
	}
	if HashKey("") != "" {
		t.Error("empty key should hash to empty string")
	}
}

func TestRateLimiterAllowsWithinLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Hour)
	handler := rl.Middleware(okHandler())

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: code = %d, want 200", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("code = %d, want 429 after limit", w.Code)
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", got)
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	current := time.Now()
	rl.now = func() time.Time { return current }

	if ok, _ := rl.allow("client"); !ok {
		t.Fatal("first request should pass")
	}
	if ok, _ := rl.allow("client"); ok {
		t.Fatal("second request should be limited")
	}

	current = current.Add(time.Hour + time.Minute)
	if ok, _ := rl.allow("client"); !ok {
		t.Fatal("request after window should pass")
	}
}

func TestRateLimiterSweepsIdleClients(t *testing.T) {
	rl := NewRateLimiter(5, time.Hour)
	current := time.Now()
	rl.now = func() time.Time { return current }

	rl.allow("10.0.0.1")
	rl.allow("10.0.0.2")
	rl.allow("10.0.0.3")

	// Past the window only the returning client should survive the
	// sweep; the idle ones must not accumulate.
	current = current.Add(time.Hour + time.Minute)
	if ok, _ := rl.allow("10.0.0.1"); !ok {
		t.Fatal("returning client should pass")
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if len(rl.clients) != 1 {
		t.Fatalf("clients map has %d entries after sweep, want 1", len(rl.clients))
	}
	if _, ok := rl.clients["10.0.0.1"]; !ok {
		t.Error("returning client missing from map")
	}
}

func TestRateLimiterSeparatesClients(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	if ok, _ := rl.allow("10.0.0.1"); !ok {
		t.Fatal("first client should pass")
	}
	if ok, _ := rl.allow("10.0.0.2"); !ok {
		t.Fatal("second client has its own budget")
	}
}

func TestClientKeyPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := clientKey(req); got != "203.0.113.9" {
		t.Errorf("clientKey = %q, want first forwarded address", got)
	}

	req.Header.Del("X-Forwarded-For")
	if got := clientKey(req); got != "192.0.2.1" {
		t.Errorf("clientKey = %q, want remote host", got)
	}
}
