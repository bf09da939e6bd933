package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"solar-optimizer/internal/model"
)

// Cache stores validated archive payloads. A miss is never an error:
// implementations log backend failures and report a miss.
type Cache interface {
	Get(ctx context.Context, key string) (*model.ArchiveResponse, bool)
	Set(ctx context.Context, key string, resp *model.ArchiveResponse)
}

type cacheEntry struct {
	response  *model.ArchiveResponse
	expiresAt time.Time
}

// ResponseCache is an in-process TTL cache for archive responses.
// A nil *ResponseCache is a valid, always-missing cache.
type ResponseCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
	stop  chan struct{}
	once  sync.Once
}

// NewResponseCache starts a cache whose janitor evicts expired entries every
// cleanupEvery. Call Close to stop it.
func NewResponseCache(ttl, cleanupEvery time.Duration) *ResponseCache {
	c := &ResponseCache{
		store: make(map[string]*cacheEntry),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}
	if cleanupEvery > 0 {
		go c.cleanup(cleanupEvery)
	}
	return c
}

func (c *ResponseCache) Get(_ context.Context, key string) (*model.ArchiveResponse, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.response, true
}

func (c *ResponseCache) Set(_ context.Context, key string, resp *model.ArchiveResponse) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = &cacheEntry{response: resp, expiresAt: time.Now().Add(c.ttl)}
}

func (c *ResponseCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func (c *ResponseCache) Clear() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*cacheEntry)
}

func (c *ResponseCache) Close() {
	if c == nil {
		return
	}
	c.once.Do(func() { close(c.stop) })
}

func (c *ResponseCache) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.evictExpired(time.Now())
		}
	}
}

func (c *ResponseCache) evictExpired(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.store {
		if now.After(entry.expiresAt) {
			delete(c.store, key)
		}
	}
}

// GenerateCacheKey derives a stable key from everything that shapes the request.
func GenerateCacheKey(params ArchiveParams) string {
	keyStr := fmt.Sprintf("openmeteo:%.6f:%.6f:%s:%s:%s:auto",
		params.Location.Latitude,
		params.Location.Longitude,
		params.Range.StartString(),
		params.Range.EndString(),
		strings.Join(model.HourlyFields, ","),
	)
	hash := sha256.Sum256([]byte(keyStr))
	return hex.EncodeToString(hash[:])
}
