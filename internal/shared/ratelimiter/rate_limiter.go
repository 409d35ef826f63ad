// Package ratelimiter provides a fixed-window attempt limiter.
package ratelimiter

import (
	"sync"
	"time"
)

// LimiterInterface restricts how often a keyed operation may run.
type LimiterInterface interface {
	Allow(key string) bool
}

// Limiter counts attempts per key within a fixed window. Used to throttle
// login attempts per client address.
type Limiter struct {
	limit    int           // attempts allowed per window
	interval time.Duration // window length

	mu      sync.Mutex
	counts  map[string]int
	resetAt time.Time
}

// NewLimiter creates a new Limiter allowing limit attempts per interval.
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:    limit,
		interval: interval,
		counts:   make(map[string]int),
		resetAt:  time.Now().Add(interval),
	}
}

// Allow records an attempt for key and reports whether it is within the
// window's limit. The window resets for all keys at once.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.After(l.resetAt) {
		l.counts = make(map[string]int)
		l.resetAt = now.Add(l.interval)
	}

	l.counts[key]++
	return l.counts[key] <= l.limit
}
