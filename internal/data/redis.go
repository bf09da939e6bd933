package data

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"solar-optimizer/internal/model"
	"solar-optimizer/pkg/logger"
)

const redisKeyPrefix = "weather:archive:"

// RedisCache shares archive payloads between API replicas.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, log *slog.Logger) *RedisCache {
	if log == nil {
		log = logger.Discard()
	}
	return &RedisCache{client: client, ttl: ttl, log: log}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*model.ArchiveResponse, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.Warn("weather cache read failed", "error", err)
		return nil, false
	}
	var resp model.ArchiveResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.log.Warn("weather cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return &resp, true
}

func (c *RedisCache) Set(ctx context.Context, key string, resp *model.ArchiveResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		c.log.Warn("weather cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("weather cache write failed", "error", err)
	}
}
