package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyedLimiter is a token-bucket rate limiter keyed by caller identity
// (typically the client IP). Buckets are created lazily per key. The limiter
// is injected into the HTTP middleware so tests can construct their own
// instances with deterministic budgets.
type KeyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	message  string
}

// NewKeyedLimiter allows up to max events per window for each key.
func NewKeyedLimiter(max int, window time.Duration, message string) *KeyedLimiter {
	return &KeyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(max) / window.Seconds()),
		burst:    max,
		message:  message,
	}
}

// Allow reports whether the event for key may proceed, consuming one token.
func (kl *KeyedLimiter) Allow(key string) bool {
	kl.mu.Lock()
	l, ok := kl.limiters[key]
	if !ok {
		l = rate.NewLimiter(kl.limit, kl.burst)
		kl.limiters[key] = l
	}
	kl.mu.Unlock()
	return l.Allow()
}

// Message is the client-facing rejection text for this limiter.
func (kl *KeyedLimiter) Message() string {
	return kl.message
}
