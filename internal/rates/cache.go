package rates

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheKey is the Redis key the rate snapshot lives under.
const CacheKey = "rates:usd"

// Cache stores the rate snapshot in Redis with a TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get loads the cached snapshot. It reports whether the key existed.
func (c *Cache) Get(ctx context.Context) ([]Rate, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, nil
	}
	data, err := c.client.Get(ctx, CacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var out []Rate
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false, err
	}
	return out, true, nil
}

// Set stores a snapshot with the configured TTL.
func (c *Cache) Set(ctx context.Context, snapshot []Rate) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, CacheKey, data, c.ttl).Err()
}
