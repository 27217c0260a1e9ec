package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 5) // 10 per minute, burst of 5
	defer rl.Stop()

	// First 5 requests should be allowed (burst)
	for i := 0; i < 5; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// 6th request should be rate limited (exceeded burst)
	if rl.Allow("10.0.0.1") {
		t.Error("Request 6 should be rate limited")
	}
}

func TestRateLimiter_DifferentClients(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 3)
	defer rl.Stop()

	// Exhaust the first client's burst
	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Errorf("Client 1 request %d should be allowed", i+1)
		}
	}

	if rl.Allow("10.0.0.1") {
		t.Error("Client 1 should be rate limited")
	}

	// The second client should still have its full burst
	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.2") {
			t.Errorf("Client 2 request %d should be allowed", i+1)
		}
	}
}

func TestRateLimiter_Refills(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(60, 1) // one token per second
	defer rl.Stop()
	rl.now = func() time.Time { return now }

	if !rl.Allow("10.0.0.1") {
		t.Fatal("First request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("Second request should be rate limited")
	}

	now = now.Add(1100 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Error("Request after refill should be allowed")
	}
}

func TestRateLimiter_SweepRemovesStaleClients(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(10, 2)
	defer rl.Stop()
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	now = now.Add(LimiterTTL / 2)
	rl.Allow("10.0.0.2")

	now = now.Add(LimiterTTL/2 + time.Second)
	rl.sweep()

	if _, ok := rl.limiters["10.0.0.1"]; ok {
		t.Error("Expected stale client to be removed")
	}
	if _, ok := rl.limiters["10.0.0.2"]; !ok {
		t.Error("Expected recent client to be kept")
	}
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiterWithConfig(10, 2)
	rl.Stop()
	rl.Stop()
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiterWithConfig(10, 2) // Small burst for testing
	defer rl.Stop()

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}

	newRequest := func(ip string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", nil)
		req.RemoteAddr = ip + ":51234"
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	// First 2 requests should succeed (burst)
	for i := 0; i < 2; i++ {
		c, rec := newRequest("192.0.2.10")
		if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
			t.Fatalf("Request %d: Expected no error, got %v", i+1, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("Request %d: Expected status 200, got %d", i+1, rec.Code)
		}
		if rec.Header().Get("X-RateLimit-Limit") != "10" {
			t.Errorf("Request %d: Expected X-RateLimit-Limit 10, got %q", i+1, rec.Header().Get("X-RateLimit-Limit"))
		}
	}

	// 3rd request should be rate limited
	c, rec := newRequest("192.0.2.10")
	if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("Expected X-RateLimit-Remaining 0, got %q", rec.Header().Get("X-RateLimit-Remaining"))
	}

	// Another client is unaffected
	c, rec = newRequest("192.0.2.11")
	if err := RateLimitMiddleware(rl)(handler)(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200 for another client, got %d", rec.Code)
	}
}
