package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nicgate/internal/validation/models"
)

const resultKeyPrefix = "nicgate:result:"

// RedisCache is a Redis-backed result cache. This is the recommended
// backend for distributed deployments where multiple instances should share
// verdicts.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache constructs a Redis-backed result cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Save stores a verdict with TTL. A nil record is a no-op.
func (c *RedisCache) Save(ctx context.Context, record *models.ValidationRecord) error {
	if record == nil {
		return nil
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal validation record: %w", err)
	}
	key := resultKeyPrefix + record.NIC
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("save validation result: %w", err)
	}
	return nil
}

// Find retrieves a cached verdict. Returns ErrNotFound when the key is
// absent or expired.
func (c *RedisCache) Find(ctx context.Context, nic string) (*models.ValidationRecord, error) {
	payload, err := c.client.Get(ctx, resultKeyPrefix+nic).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find validation result: %w", err)
	}

	var record models.ValidationRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal validation record: %w", err)
	}
	return &record, nil
}
