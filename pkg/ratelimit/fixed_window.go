package ratelimit

import (
	"sync"
	"time"
)

// FixedWindowRateLimiter allows up to requests passes per key inside a window
// that starts at the key's first pass. Once the window's reset time has gone by,
// the next pass opens a fresh window with a count of one.
//
// Entries are never evicted: the store lives for the lifetime of the process
// and a restart clears every limit.
type FixedWindowRateLimiter struct {
	requests int
	window   time.Duration
	now      func() time.Time

	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

type FixedWindowOption func(*FixedWindowRateLimiter)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) FixedWindowOption {
	return func(r *FixedWindowRateLimiter) {
		if now != nil {
			r.now = now
		}
	}
}

func NewFixedWindowRateLimiter(requests int, window time.Duration, opts ...FixedWindowOption) *FixedWindowRateLimiter {
	r := &FixedWindowRateLimiter{
		requests: requests,
		window:   window,
		now:      time.Now,
		entries:  make(map[string]*windowEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Allow charges one pass to key and reports whether it was within the limit.
// A denied call leaves the entry untouched.
func (r *FixedWindowRateLimiter) Allow(key string) bool {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok || now.After(e.resetAt) {
		r.entries[key] = &windowEntry{count: 1, resetAt: now.Add(r.window)}
		return true
	}

	if e.count >= r.requests {
		return false
	}

	e.count++
	return true
}

func (r *FixedWindowRateLimiter) IsLimited(key string) (bool, error) {
	return !r.Allow(key), nil
}

func (r *FixedWindowRateLimiter) GetLimitDetails() (int, time.Duration) {
	return r.requests, r.window
}

// Count returns the passes charged to key in its current window and when that window resets.
func (r *FixedWindowRateLimiter) Count(key string) (int, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		return 0, time.Time{}
	}
	return e.count, e.resetAt
}

func (r *FixedWindowRateLimiter) Close() error {
	return nil
}
