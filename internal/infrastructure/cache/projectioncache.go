package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	projectionPrefix = "relnotes:projection:"
	projectionTTL    = 5 * time.Minute
)

// ProjectionCache stores rendered note projections keyed by release and
// visibility so repeated reads skip the partition and sort work.
type ProjectionCache struct {
	client *redis.Client
}

// NewProjectionCache creates a new ProjectionCache instance
func NewProjectionCache(client *redis.Client) *ProjectionCache {
	return &ProjectionCache{client: client}
}

func projectionKey(releaseID uint, publicOnly bool) string {
	return fmt.Sprintf("%s%d:public=%t", projectionPrefix, releaseID, publicOnly)
}

// Get retrieves a cached projection. The second return value reports
// whether a cached value was present.
func (c *ProjectionCache) Get(ctx context.Context, releaseID uint, publicOnly bool, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, projectionKey(releaseID, publicOnly)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to read projection cache: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached projection: %w", err)
	}
	return true, nil
}

// Set stores a projection for the release
func (c *ProjectionCache) Set(ctx context.Context, releaseID uint, publicOnly bool, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode projection: %w", err)
	}

	if err := c.client.Set(ctx, projectionKey(releaseID, publicOnly), raw, projectionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store projection: %w", err)
	}
	return nil
}

// Invalidate drops both visibility variants for the release
func (c *ProjectionCache) Invalidate(ctx context.Context, releaseID uint) error {
	keys := []string{
		projectionKey(releaseID, true),
		projectionKey(releaseID, false),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate projection cache: %w", err)
	}
	return nil
}
