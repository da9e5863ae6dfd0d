package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ticketd/ticketd/internal/config"
)

// Redis wraps the go-redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

const sessionKeyPrefix = "session:"

// SessionCache keeps a short-lived positive cache of session-row lookups in
// front of the sessions table. Only "row exists" is cached, never token
// validity; revocation clears the key so a logged-out token cannot be served
// from cache. All Redis failures degrade to a cache miss.
type SessionCache struct {
	redis *Redis
	ttl   time.Duration
}

// NewSessionCache builds the cache. A nil Redis yields a cache that always
// misses.
func NewSessionCache(r *Redis, ttl time.Duration) *SessionCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SessionCache{redis: r, ttl: ttl}
}

// Contains reports whether the token is cached as session-backed.
func (c *SessionCache) Contains(ctx context.Context, token string) bool {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return false
	}
	n, err := c.redis.Client.Exists(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// Remember marks the token as session-backed for the cache TTL.
func (c *SessionCache) Remember(ctx context.Context, token string) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	_ = c.redis.Client.Set(ctx, sessionKeyPrefix+token, "1", c.ttl).Err()
}

// Forget clears the token after revocation.
func (c *SessionCache) Forget(ctx context.Context, token string) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	_ = c.redis.Client.Del(ctx, sessionKeyPrefix+token).Err()
}
