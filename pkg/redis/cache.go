package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/fahicart/fahicart-web/pkg/retry"
	goredis "github.com/go-redis/redis/v8"
)

type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// RedisCache satisfies config.Cache and exposes the client for the router's
// distributed rate limiter.
type RedisCache struct {
	client *goredis.Client
}

// NewRedisCache connects and pings with the default backoff policy.
func NewRedisCache(cfg *Config) (*RedisCache, error) {
	return NewRedisCacheWithRetry(cfg, retry.NewExponentialBackoff(nil))
}

func NewRedisCacheWithRetry(cfg *Config, policy retry.RetryPolicy) (*RedisCache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	err := policy.Execute(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return client.Ping(ctx).Err()
	})
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr(), err)
	}

	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) GetClient() *goredis.Client {
	return c.client
}
