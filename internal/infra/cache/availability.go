package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"bookmarket/internal/domain/schedule"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache stores resolved slot lists in Redis, keyed by
// (business, service, date). Best effort only: every backend failure
// degrades to a miss with a warning, never an error to the caller.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl, logger: logger}
}

func (c *AvailabilityCache) Get(ctx context.Context, key string) ([]schedule.Slot, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("availability cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		c.logger.Warn("availability cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, key string, slots []schedule.Slot) {
	raw, err := json.Marshal(slots)
	if err != nil {
		c.logger.Warn("availability cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("availability cache write failed", "key", key, "error", err)
	}
}

func (c *AvailabilityCache) Del(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("availability cache invalidate failed", "key", key, "error", err)
	}
}

// NoopCache satisfies the cache contract when Redis is not configured:
// every read is a miss, every write a discard.
type NoopCache struct{}

func NewNoopCache() NoopCache { return NoopCache{} }

func (NoopCache) Get(context.Context, string) ([]schedule.Slot, bool) { return nil, false }
func (NoopCache) Set(context.Context, string, []schedule.Slot)        {}
func (NoopCache) Del(context.Context, string)                         {}
