package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/noah-isme/classtime-scheduler/pkg/errors"
)

// ResultCache wraps Redis interactions for caching generated schedule
// lists, adapted from the teacher's analytics cache repository. A nil
// client disables caching entirely: every Get misses and every Set is a
// no-op, so callers don't need to branch on whether Redis is configured.
type ResultCache struct {
	client *redis.Client
}

// NewResultCache constructs a result cache. client may be nil.
func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{client: client}
}

// Get retrieves and unmarshals the cached value for key into dest.
// Returns appErrors.ErrCacheMiss when nothing is cached.
func (r *ResultCache) Get(ctx context.Context, key string, dest interface{}) error {
	if r == nil || r.client == nil {
		return appErrors.ErrCacheMiss
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return appErrors.ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

// Set marshals value and stores it under key with the given TTL.
func (r *ResultCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if r == nil || r.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
