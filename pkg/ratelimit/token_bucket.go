package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const emptyKey = "__empty__"

// TokenBucketRateLimiter refills requests tokens per window for each key.
type TokenBucketRateLimiter struct {
	requests int
	window   time.Duration

	mu       sync.Mutex
	limiters map[string]*keyedLimiter
	ops      uint64
}

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewTokenBucketRateLimiter(requests int, window time.Duration) *TokenBucketRateLimiter {
	return &TokenBucketRateLimiter{
		requests: requests,
		window:   window,
		limiters: make(map[string]*keyedLimiter),
	}
}

func (r *TokenBucketRateLimiter) IsLimited(key string) (bool, error) {
	if key == "" {
		key = emptyKey
	}

	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	k, ok := r.limiters[key]
	if !ok {
		rps := float64(r.requests) / r.window.Seconds()
		k = &keyedLimiter{
			limiter:  rate.NewLimiter(rate.Limit(rps), r.requests),
			lastSeen: now,
		}
		r.limiters[key] = k
	} else {
		k.lastSeen = now
	}

	// Every 1024 calls, drop keys idle for two windows.
	r.ops++
	if r.ops%1024 == 0 {
		cutoff := now.Add(-2 * r.window)
		for kKey, kVal := range r.limiters {
			if kVal.lastSeen.Before(cutoff) {
				delete(r.limiters, kKey)
			}
		}
	}

	return !k.limiter.AllowN(now, 1), nil
}

func (r *TokenBucketRateLimiter) GetLimitDetails() (int, time.Duration) {
	return r.requests, r.window
}

func (r *TokenBucketRateLimiter) Close() error {
	return nil
}
