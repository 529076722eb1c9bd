// Package ratelimit provides per-client rate limiting using token buckets.
// Rendering is CPU-bound, so the server caps how many layout runs a single
// client can request per window.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a number of requests per window, refilling at a
// steady rate up to a burst capacity.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// status reports remaining tokens and when the bucket will be full again,
// without consuming a token.
func (tb *tokenBucket) status() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	remaining = int(tb.tokens)
	resetTime = now
	if tb.tokens < float64(tb.capacity) {
		secondsUntilFull := (float64(tb.capacity) - tb.tokens) / tb.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return remaining, resetTime
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled bool
	Limit   int           // requests per window per client
	Window  time.Duration // refill window
	Burst   int           // bucket capacity; defaults to Limit
}

// DefaultConfig allows 60 render runs per client per minute.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Limit:   60,
		Window:  time.Minute,
	}
}

// Limiter manages per-client token buckets.
type Limiter struct {
	config  Config
	buckets map[string]*tokenBucket
	mu      sync.Mutex
}

// NewLimiter creates a rate limiter with the given configuration.
func NewLimiter(config Config) *Limiter {
	if config.Burst <= 0 {
		config.Burst = config.Limit
	}
	return &Limiter{
		config:  config,
		buckets: make(map[string]*tokenBucket),
	}
}

// Allow reports whether a request from the given client may proceed.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled || l.config.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	bucket := l.getBucket(clientID)
	allowed := bucket.allow()
	remaining, resetTime := bucket.status()

	var retryAfter time.Duration
	if !allowed {
		retryAfter = max(time.Until(resetTime), 0)
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      l.config.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

func (l *Limiter) getBucket(clientID string) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[clientID]
	if !ok {
		refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
		bucket = newTokenBucket(l.config.Burst, refillRate)
		l.buckets[clientID] = bucket
	}
	return bucket
}
