package data

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"solar-optimizer/internal/model"
)

func TestResponseCache_TTL(t *testing.T) {
	ctx := context.Background()
	c := NewResponseCache(time.Hour, 0)
	resp := &model.ArchiveResponse{Timezone: "UTC"}

	c.Set(ctx, "k", resp)
	got, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Same(t, resp, got)

	c.evictExpired(time.Now().Add(2 * time.Hour))
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestResponseCache_Expired(t *testing.T) {
	ctx := context.Background()
	c := NewResponseCache(-time.Second, 0)
	c.Set(ctx, "k", &model.ArchiveResponse{})
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestResponseCache_NilSafe(t *testing.T) {
	var c *ResponseCache
	c.Set(context.Background(), "k", &model.ArchiveResponse{})
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
	c.Clear()
	c.Close()
	assert.Equal(t, 0, c.Len())
}

func TestGenerateCacheKey(t *testing.T) {
	a := testParams()
	b := testParams()
	assert.Equal(t, GenerateCacheKey(a), GenerateCacheKey(b))
	assert.Len(t, GenerateCacheKey(a), 64)

	b.Location.Latitude += 0.000001
	assert.NotEqual(t, GenerateCacheKey(a), GenerateCacheKey(b))
}

func TestRedisCache_UnreachableIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisCache(client, time.Minute, nil)
	c.Set(context.Background(), "k", &model.ArchiveResponse{Timezone: "UTC"})
	_, ok := c.Get(context.Background(), "k")
	assert.False(t, ok)
}
