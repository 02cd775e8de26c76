package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	portsrepo "github.com/walletworks/ewallet_app/internal/core/ports/repositories"
)

const tokenKeyPrefix = "wallet:token:"

// RedisTokenCache caches bearer-token -> customer_xid lookups so the auth
// middleware does not hit Postgres on every request. Errors are logged and
// swallowed: the cache is an accelerator, never an authority.
type RedisTokenCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisTokenCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisTokenCache {
	return &RedisTokenCache{client: client, ttl: ttl, logger: logger}
}

var _ portsrepo.TokenCache = (*RedisTokenCache)(nil)

func (c *RedisTokenCache) Get(ctx context.Context, token string) (string, bool) {
	xid, err := c.client.Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("token cache get failed", slog.String("error", err.Error()))
		}
		return "", false
	}
	return xid, true
}

func (c *RedisTokenCache) Set(ctx context.Context, token string, customerXID string) {
	if err := c.client.Set(ctx, tokenKeyPrefix+token, customerXID, c.ttl).Err(); err != nil {
		c.logger.Warn("token cache set failed", slog.String("error", err.Error()))
	}
}

func (c *RedisTokenCache) Invalidate(ctx context.Context, token string) {
	if err := c.client.Del(ctx, tokenKeyPrefix+token).Err(); err != nil {
		c.logger.Warn("token cache invalidate failed", slog.String("error", err.Error()))
	}
}
