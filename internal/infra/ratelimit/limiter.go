// Package ratelimit provides a fixed-window request limiter keyed by caller.
package ratelimit

import (
	"sync"
	"time"
)

const (
	defaultLimit   = 60
	defaultWindow  = time.Minute
	defaultMaxKeys = 10000
)

type windowState struct {
	start time.Time
	count int
}

// Limiter counts requests per key within fixed windows. When the tracked key
// set reaches capacity, expired windows are evicted before rejecting new keys.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*windowState

	limit   int
	window  time.Duration
	maxKeys int
	now     func() time.Time
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New creates a Limiter allowing limit requests per key per window. Zero or
// negative parameters fall back to defaults.
func New(limit int, window time.Duration, maxKeys int, opts ...Option) *Limiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	if maxKeys <= 0 {
		maxKeys = defaultMaxKeys
	}

	limiter := &Limiter{
		entries: make(map[string]*windowState),
		limit:   limit,
		window:  window,
		maxKeys: maxKeys,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(limiter)
	}

	return limiter
}

// Allow reports whether the key may perform another request in the current
// window and consumes one slot when it may.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	state, ok := l.entries[key]
	if ok && now.Sub(state.start) >= l.window {
		state.start = now
		state.count = 0
	}

	if !ok {
		if len(l.entries) >= l.maxKeys {
			l.evictExpired(now)
			if len(l.entries) >= l.maxKeys {
				// Refusing to track the key fails closed under key churn.
				return false
			}
		}

		state = &windowState{start: now}
		l.entries[key] = state
	}

	if state.count >= l.limit {
		return false
	}

	state.count++

	return true
}

// evictExpired drops keys whose window has passed. Caller holds the lock.
func (l *Limiter) evictExpired(now time.Time) {
	for key, state := range l.entries {
		if now.Sub(state.start) >= l.window {
			delete(l.entries, key)
		}
	}
}
