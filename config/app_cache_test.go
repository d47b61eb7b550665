package config

import (
	"bytes"
	"testing"

	"github.com/fahicart/fahicart-web/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestCacheConfig_NotConfiguredReturnsNil(t *testing.T) {
	t.Setenv("REDIS_HOST", "")

	cfg := NewCacheConfig()
	assert.False(t, cfg.IsConfigured())
	assert.Nil(t, cfg.NewCacheOrNil(log.NewLoggerWithWriter(&bytes.Buffer{})))

	_, err := cfg.NewCache(log.NewLoggerWithWriter(&bytes.Buffer{}))
	assert.ErrorIs(t, err, ErrCacheNotConfigured)
}

func TestNewCacheConfig_ReadsEnv(t *testing.T) {
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "3")

	cfg := NewCacheConfig()
	assert.True(t, cfg.IsConfigured())
	assert.Equal(t, "6379", cfg.Port)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, 3, cfg.DB)
}

func TestCloseCache_NilIsNoop(t *testing.T) {
	assert.NoError(t, CloseCache(nil, log.NewLoggerWithWriter(&bytes.Buffer{})))
}
