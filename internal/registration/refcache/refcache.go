// Package refcache caches reference-entity name lookups in Redis. Soil and
// irrigation type names are resolved on almost every registration, so a short
// TTL cache keeps those reads off the database. The cache is strictly an
// optimization: every method degrades to a no-op when Redis is not
// configured, and cache errors are logged and ignored.
package refcache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"farmgate/internal/platform/redis"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// New returns a cache backed by client. A nil client yields a cache whose
// lookups always miss.
func New(client *redis.Client, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{client: client, logger: logger, ttl: defaultTTL}
}

func key(kind, name string) string {
	return fmt.Sprintf("refcache:%s:%s", kind, name)
}

// GetID returns the cached id for a (kind, name) pair. The second return
// value reports a cache hit.
func (c *Cache) GetID(ctx context.Context, kind, name string) (int64, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, key(kind, name)).Result()
	if err != nil {
		if err != goredis.Nil {
			c.logger.Warn("refcache get failed", "kind", kind, "error", err)
		}
		return 0, false
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// SetID stores the id for a (kind, name) pair with the cache TTL.
func (c *Cache) SetID(ctx context.Context, kind, name string, id int64) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key(kind, name), strconv.FormatInt(id, 10), c.ttl).Err(); err != nil {
		c.logger.Warn("refcache set failed", "kind", kind, "error", err)
	}
}
