package cache

import (
	"context"
	"encoding/json"
	"time"

	"cafe-service/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	menuListKey     = "menu:list"
	defaultCacheTTL = 5 * time.Minute
)

// MenuCache is a read-through cache for the menu list. A nil *MenuCache or a
// cache constructed without a redis client is a no-op, so the service works
// unchanged when redis is not configured.
type MenuCache struct {
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewMenuCache(client *redis.Client, logger *zap.Logger) *MenuCache {
	return &MenuCache{
		redis:  client,
		ttl:    defaultCacheTTL,
		logger: logger,
	}
}

// GetList returns the cached menu list and whether it was present.
func (c *MenuCache) GetList(ctx context.Context) ([]models.MenuItem, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, menuListKey).Result()
	if err != nil {
		return nil, false
	}
	var items []models.MenuItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		c.logger.Warn("Failed to unmarshal cached menu list", zap.Error(err))
		return nil, false
	}
	return items, true
}

// SetListAsync caches the menu list without blocking the request.
func (c *MenuCache) SetListAsync(items []models.MenuItem) {
	if c == nil || c.redis == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data, err := json.Marshal(items)
		if err != nil {
			c.logger.Warn("Failed to marshal menu list for cache", zap.Error(err))
			return
		}
		if err := c.redis.Set(ctx, menuListKey, data, c.ttl).Err(); err != nil {
			c.logger.Warn("Failed to cache menu list", zap.Error(err))
		}
	}()
}

// Invalidate drops the cached list after any catalog mutation.
func (c *MenuCache) Invalidate(ctx context.Context) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, menuListKey).Err(); err != nil {
		c.logger.Warn("Failed to invalidate menu cache", zap.Error(err))
	}
}
