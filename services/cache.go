package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// QueryCache is a small read-through cache for availability lists and
// reports. Mutating services invalidate the affected prefixes explicitly, so
// stale pages cannot outlive a write. A nil QueryCache (no Redis) is a valid
// always-miss cache.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewQueryCache returns nil when client is nil; all methods tolerate a nil
// receiver.
func NewQueryCache(client *redis.Client, ttl time.Duration) *QueryCache {
	if client == nil {
		return nil
	}
	return &QueryCache{client: client, ttl: ttl, prefix: "frontdesk:query:"}
}

// Get unmarshals the cached value for key into dest and reports a hit.
func (c *QueryCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

// Set stores val under key for the cache TTL. Best-effort.
func (c *QueryCache) Set(ctx context.Context, key string, val interface{}) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("query cache set failed")
	}
}

// Invalidate drops every cached entry under the given key prefixes.
func (c *QueryCache) Invalidate(ctx context.Context, prefixes ...string) {
	if c == nil {
		return
	}
	for _, p := range prefixes {
		keys, err := c.client.Keys(ctx, c.prefix+p+"*").Result()
		if err != nil {
			log.Warn().Err(err).Str("prefix", p).Msg("query cache scan failed")
			continue
		}
		if len(keys) == 0 {
			continue
		}
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			log.Warn().Err(err).Str("prefix", p).Msg("query cache invalidation failed")
		}
	}
}
