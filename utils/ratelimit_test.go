package utils

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToBurst(t *testing.T) {
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(5, time.Minute).WithClock(func() time.Time { return current })

	for i := 0; i < 5; i++ {
		result := limiter.Allow("1.2.3.4")
		if !result.Allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
		if result.Remaining != 4-i {
			t.Errorf("request %d: expected %d remaining, got %d", i+1, 4-i, result.Remaining)
		}
	}

	if result := limiter.Allow("1.2.3.4"); result.Allowed {
		t.Fatal("sixth request should be denied")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(1, time.Minute).WithClock(func() time.Time { return current })

	if !limiter.Allow("a").Allowed {
		t.Fatal("first key should be allowed")
	}
	if limiter.Allow("a").Allowed {
		t.Fatal("first key should now be exhausted")
	}
	if !limiter.Allow("b").Allowed {
		t.Fatal("second key must have its own bucket")
	}
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Minute).WithClock(func() time.Time { return current })

	limiter.Allow("ip")
	limiter.Allow("ip")
	if limiter.Allow("ip").Allowed {
		t.Fatal("bucket should be empty")
	}

	// Half the window restores one token
	current = current.Add(30 * time.Second)
	if !limiter.Allow("ip").Allowed {
		t.Fatal("expected one token after half the window")
	}
	if limiter.Allow("ip").Allowed {
		t.Fatal("only one token should have refilled")
	}
}

func TestRateLimiterRefillCapped(t *testing.T) {
	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(3, time.Minute).WithClock(func() time.Time { return current })

	limiter.Allow("ip")

	// A long idle period must not accumulate beyond the burst size
	current = current.Add(time.Hour)
	for i := 0; i < 3; i++ {
		if !limiter.Allow("ip").Allowed {
			t.Fatalf("request %d should be allowed after refill", i+1)
		}
	}
	if limiter.Allow("ip").Allowed {
		t.Fatal("refill must cap at the burst size")
	}
}
