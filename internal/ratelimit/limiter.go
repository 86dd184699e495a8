package ratelimit

import (
	"sync"
	"time"
)

// Defaults match the client-facing quota: 10 requests per minute.
const (
	DefaultMaxRequests = 10
	DefaultWindow      = 60 * time.Second
)

// Limiter is a fixed-window request counter keyed by an identifier string.
// State is in-memory and process-lifetime; it is best-effort throttling,
// not a substitute for upstream quota enforcement.
type Limiter struct {
	mu          sync.Mutex
	requests    map[string][]time.Time
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// New creates a limiter allowing maxRequests per window for each key.
// Non-positive arguments fall back to the defaults.
func New(maxRequests int, window time.Duration) *Limiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}

	return &Limiter{
		requests:    make(map[string][]time.Time),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Allowed reports whether the identifier may make another request, and
// records the request if so. Timestamps outside the window are pruned on
// every call.
func (l *Limiter) Allowed(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	valid := l.prune(identifier)
	if len(valid) >= l.maxRequests {
		l.requests[identifier] = valid
		return false
	}

	l.requests[identifier] = append(valid, l.now())
	return true
}

// Remaining returns how many requests the identifier has left in the
// current window. Never negative.
func (l *Limiter) Remaining(identifier string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	valid := l.prune(identifier)
	l.requests[identifier] = valid

	remaining := l.maxRequests - len(valid)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clear drops the identifier's request history.
func (l *Limiter) Clear(identifier string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.requests, identifier)
}

// prune returns the identifier's timestamps still inside the window.
// Caller must hold l.mu.
func (l *Limiter) prune(identifier string) []time.Time {
	cutoff := l.now().Add(-l.window)

	timestamps := l.requests[identifier]
	valid := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			valid = append(valid, ts)
		}
	}
	return valid
}
