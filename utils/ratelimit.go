package utils

import (
	"sync"
	"time"
)

// RateLimiter is a token bucket limiter keyed by an arbitrary string
// (usually client IP). It is an injectable component rather than a package
// singleton so handlers and tests can supply their own instance and clock.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket

	maxRequests float64
	window      time.Duration
	now         func() time.Time

	lastCleanup time.Time
}

type tokenBucket struct {
	tokens        float64
	lastRefill    time.Time
	totalRequests int64
}

// RateLimitResult reports the outcome of one Allow call.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:     map[string]*tokenBucket{},
		maxRequests: float64(maxRequests),
		window:      window,
		now:         time.Now,
	}
}

// WithClock replaces the limiter's clock. Intended for tests.
func (rl *RateLimiter) WithClock(now func() time.Time) *RateLimiter {
	rl.now = now
	return rl
}

// Allow consumes one token for key if available.
func (rl *RateLimiter) Allow(key string) RateLimitResult {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	current := rl.now()
	rl.cleanupLocked(current)

	bucket, ok := rl.buckets[key]
	if !ok {
		bucket = &tokenBucket{tokens: rl.maxRequests, lastRefill: current}
		rl.buckets[key] = bucket
	}

	// Refill proportionally to time elapsed, capped at maxRequests
	elapsed := current.Sub(bucket.lastRefill).Seconds()
	refill := elapsed * (rl.maxRequests / rl.window.Seconds())
	bucket.tokens = minFloat(rl.maxRequests, bucket.tokens+refill)
	bucket.lastRefill = current

	if bucket.tokens >= 1 {
		bucket.tokens--
		bucket.totalRequests++
		return RateLimitResult{
			Allowed:   true,
			Remaining: int(bucket.tokens),
			ResetAt:   current.Add(rl.window),
		}
	}

	return RateLimitResult{
		Allowed:   false,
		Remaining: 0,
		ResetAt:   bucket.lastRefill.Add(rl.window),
	}
}

// cleanupLocked drops buckets idle for over an hour, at most once per 5 minutes.
func (rl *RateLimiter) cleanupLocked(current time.Time) {
	if current.Sub(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = current
	for key, bucket := range rl.buckets {
		if current.Sub(bucket.lastRefill) > time.Hour {
			delete(rl.buckets, key)
		}
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
