// Package rediscache caches region demand factors in Redis in front of the
// database lookup used by pricing.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	DefaultTTL = 5 * time.Minute
	keyPrefix  = "dispatch:demand:"
)

var _ ports.RegionDemandRepository = (*DemandCache)(nil)

// cachedDemand is the stored form. Found=false records a region with no factor,
// so repeated lookups for unknown regions stay off the database.
type cachedDemand struct {
	Found        bool    `json:"found"`
	DemandFactor float64 `json:"demandFactor,omitempty"`
}

// DemandCache is a read-through, write-invalidate cache over a RegionDemandRepository.
// Redis failures on reads are logged and the lookup falls through to the source.
type DemandCache struct {
	client *redis.Client
	source ports.RegionDemandRepository
	ttl    time.Duration
	log    *zap.Logger
}

// NewClient parses redisURL (redis://[:password@]host[:port][/db]) into a client.
func NewClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func NewDemandCache(client *redis.Client, source ports.RegionDemandRepository, ttl time.Duration, log *zap.Logger) *DemandCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DemandCache{
		client: client,
		source: source,
		ttl:    ttl,
		log:    log.With(zap.String("component", "demand-cache")),
	}
}

// GetDemand returns the cached demand of region, loading it from the source on a miss.
func (c *DemandCache) GetDemand(ctx context.Context, region string) (*pricing.RegionDemand, error) {
	if region == "" {
		return nil, nil
	}

	key := keyPrefix + region
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedDemand
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			if !cached.Found {
				return nil, nil
			}
			return &pricing.RegionDemand{Region: region, DemandFactor: cached.DemandFactor}, nil
		}
		c.log.Warn("dropping unreadable cache entry", zap.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		c.log.Warn("demand cache read failed", zap.String("region", region), zap.Error(err))
	}

	demand, err := c.source.GetDemand(ctx, region)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, demand)
	return demand, nil
}

// Upsert writes demand to the source and drops the cached entry of its region,
// so the next lookup reads the new factor.
func (c *DemandCache) Upsert(ctx context.Context, demand pricing.RegionDemand) error {
	if err := c.source.Upsert(ctx, demand); err != nil {
		return err
	}
	if err := c.Invalidate(ctx, demand.Region); err != nil {
		c.log.Warn("stale demand left in cache until expiry",
			zap.String("region", demand.Region), zap.Error(err))
	}
	return nil
}

// Invalidate drops the cached entry of region.
func (c *DemandCache) Invalidate(ctx context.Context, region string) error {
	if err := c.client.Del(ctx, keyPrefix+region).Err(); err != nil {
		return fmt.Errorf("failed to delete demand of %s: %w", region, err)
	}
	return nil
}

// Ping checks that Redis is reachable.
func (c *DemandCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *DemandCache) store(ctx context.Context, key string, demand *pricing.RegionDemand) {
	cached := cachedDemand{}
	if demand != nil {
		cached = cachedDemand{Found: true, DemandFactor: demand.DemandFactor}
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err = c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("demand cache write failed", zap.String("key", key), zap.Error(err))
	}
}
