package ratelimit

import (
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketRateLimiter_IsLimited_IsPerKey(t *testing.T) {
	limiter := NewTokenBucketRateLimiter(1, time.Second)

	limited, err := limiter.IsLimited("client-a")
	require.NoError(t, err)
	assert.False(t, limited, "first request for client-a should not be limited")

	limited, err = limiter.IsLimited("client-a")
	require.NoError(t, err)
	assert.True(t, limited, "second immediate request for client-a should be limited")

	limited, err = limiter.IsLimited("client-b")
	require.NoError(t, err)
	assert.False(t, limited, "first request for client-b should not be limited (per-key limiter)")
}

func TestTokenBucketRateLimiter_EmptyKeySharesBucket(t *testing.T) {
	limiter := NewTokenBucketRateLimiter(1, time.Minute)

	limited, _ := limiter.IsLimited("")
	assert.False(t, limited)

	limited, _ = limiter.IsLimited(emptyKey)
	assert.True(t, limited)
}

func TestNewRateLimiter_SelectsStrategy(t *testing.T) {
	inMemory := NewRateLimiter(&RateLimitConfig{Requests: 10, Window: time.Minute})
	assert.IsType(t, &TokenBucketRateLimiter{}, inMemory)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	distributed := NewRateLimiter(&RateLimitConfig{Requests: 10, Window: time.Minute, Redis: client})
	assert.IsType(t, &RedisRateLimiter{}, distributed)

	requests, window := distributed.GetLimitDetails()
	assert.Equal(t, 10, requests)
	assert.Equal(t, time.Minute, window)
}
