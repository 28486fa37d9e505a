package middleware_test

import (
	"testing"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/middleware"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewRateLimiter(3, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("caller-a") {
			t.Fatalf("request %d should be within the limit", i+1)
		}
	}
	if limiter.Allow("caller-a") {
		t.Fatal("fourth request must be rejected")
	}

	// Other callers keep their own budget.
	if !limiter.Allow("caller-b") {
		t.Fatal("a different caller must not share the exhausted budget")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewRateLimiter(1, 20*time.Millisecond)
	defer limiter.Stop()

	if !limiter.Allow("caller") {
		t.Fatal("first request should pass")
	}
	if limiter.Allow("caller") {
		t.Fatal("second request inside the window must be rejected")
	}

	time.Sleep(30 * time.Millisecond)

	if !limiter.Allow("caller") {
		t.Fatal("budget should recover once the window has passed")
	}
}

func TestRateLimiterStopIsIdempotent(t *testing.T) {
	t.Parallel()

	limiter := middleware.NewRateLimiter(1, time.Minute)
	limiter.Stop()
	limiter.Stop()

	// The limiter keeps answering after the pruner is gone.
	if !limiter.Allow("caller") {
		t.Fatal("a stopped limiter must still serve Allow")
	}
}
