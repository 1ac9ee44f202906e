// Package cache holds the Redis-backed read cache for the card feed.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/places-service/internal/domain"
)

const feedKey = "cards:feed"

// FeedCache stores the rendered card feed. Implementations must treat cache
// trouble as a miss; the store remains the source of truth.
type FeedCache interface {
	Get(ctx context.Context) ([]domain.Card, bool)
	Set(ctx context.Context, cards []domain.Card)
	Invalidate(ctx context.Context)
}

type redisFeedCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisFeedCache builds a cache over the given client. A nil client yields
// a cache that always misses.
func NewRedisFeedCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) FeedCache {
	return &redisFeedCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisFeedCache) Get(ctx context.Context) ([]domain.Card, bool) {
	if c.client == nil || c.ttl <= 0 {
		return nil, false
	}

	raw, err := c.client.Get(ctx, feedKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("feed cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var cards []domain.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		c.logger.Warn("feed cache payload corrupt", zap.Error(err))
		c.Invalidate(ctx)
		return nil, false
	}
	return cards, true
}

func (c *redisFeedCache) Set(ctx context.Context, cards []domain.Card) {
	if c.client == nil || c.ttl <= 0 {
		return
	}

	raw, err := json.Marshal(cards)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, feedKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("feed cache write failed", zap.Error(err))
	}
}

func (c *redisFeedCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, feedKey).Err(); err != nil {
		c.logger.Warn("feed cache invalidation failed", zap.Error(err))
	}
}
