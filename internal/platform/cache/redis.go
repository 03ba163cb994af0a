package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"eatzaSearch/internal/modules/restaurants/domain"
)

const keyPrefix = "search:"

// SearchCache keeps served result pages in Redis, keyed by the canonical
// criteria/page key, so a failing store call can be answered with the last
// known page. Cache failures degrade silently: a broken cache never fails a
// search.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SearchCache{client: client, ttl: ttl}
}

func (c *SearchCache) Get(ctx context.Context, key string) (*domain.RestaurantPage, bool) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("cache get failed", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}

	var page domain.RestaurantPage
	if err := json.Unmarshal(raw, &page); err != nil {
		slog.Warn("cache entry corrupt, dropping", slog.String("key", key), slog.Any("error", err))
		c.client.Del(ctx, keyPrefix+key)
		return nil, false
	}
	return &page, true
}

func (c *SearchCache) Set(ctx context.Context, key string, page *domain.RestaurantPage) {
	raw, err := json.Marshal(page)
	if err != nil {
		slog.Warn("cache encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		slog.Warn("cache set failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Invalidate drops every cached search page. Writes are rare compared to
// reads, so a full sweep keeps the coherence story simple.
func (c *SearchCache) Invalidate(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("cache invalidate scan failed", slog.Any("error", err))
			return
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("cache invalidate delete failed", slog.Any("error", err))
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}
