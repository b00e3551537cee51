package redisad

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/adapters/observability"
)

const label = "redis"

// Cache holds planned records and guide listings as JSON blobs under keys
// owned by the app layer (record:<destination>, guides:recent:<limit>).
// Callers read back with the same pointer type they stored.
type Cache struct{ c *redis.Client }

func New(addr, pass string, db int) *Cache {
	return &Cache{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

// Get loads key into dst. A missing key is a miss, not an error; a value
// that no longer decodes is an error naming the key.
func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	switch {
	case err == redis.Nil:
		observability.ObserveCache(label, "miss")
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	observability.ObserveCache(label, "hit")
	if err := json.Unmarshal(v, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (r *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	observability.ObserveCache(label, "set")
	if err := r.c.Set(ctx, key, b, time.Duration(ttlSec)*time.Second).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (r *Cache) Del(ctx context.Context, key string) error {
	observability.ObserveCache(label, "del")
	if err := r.c.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache del %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *Cache) Close() error { return r.c.Close() }
