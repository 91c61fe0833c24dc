package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "site:settings:"

// RedisCache stores raw settings documents under prefix+tenant with a TTL.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) key(tenantID string) string {
	return c.prefix + tenantID
}

func (c *RedisCache) Get(ctx context.Context, tenantID string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, c.key(tenantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (c *RedisCache) Set(ctx context.Context, tenantID string, document []byte) error {
	return c.client.Set(ctx, c.key(tenantID), document, c.ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, tenantID string) error {
	return c.client.Del(ctx, c.key(tenantID)).Err()
}
