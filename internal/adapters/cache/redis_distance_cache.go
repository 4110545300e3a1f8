package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/platform/obs"
)

const tenantKeyPrefix = "distcache:"

// RedisDistanceCache is a Redis-backed alternative to SQLDistanceCache.
// Each tenant owns one hash keyed distcache:<tenant>; fields are
// "origin|destination" and values are JSON-encoded estimates, so tenant
// invalidation is a single DEL.
type RedisDistanceCache struct {
	client *redis.Client
}

func NewRedisDistanceCache(client *redis.Client) *RedisDistanceCache {
	return &RedisDistanceCache{client: client}
}

type cachedEstimate struct {
	DistanceKm float64 `json:"distance_km"`
	Minutes    int     `json:"minutes"`
}

func tenantKey(tenantID int) string {
	return fmt.Sprintf("%s%d", tenantKeyPrefix, tenantID)
}

func pairField(origin, destination string) string {
	return origin + "|" + destination
}

func (c *RedisDistanceCache) Get(
	ctx context.Context,
	tenantID int,
	origin string,
	destination string,
) (_ domain.DistanceEstimate, _ bool, err error) {
	defer obs.Time(ctx, "distance.cache.Get")(&err)

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return domain.DistanceEstimate{}, false, errors.New("get distance cache: origin and destination must not be empty")
	}

	data, err := c.client.HGet(ctx, tenantKey(tenantID), pairField(origin, destination)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.DistanceEstimate{}, false, nil
	}
	if err != nil {
		return domain.DistanceEstimate{}, false, fmt.Errorf("get distance cache: %w", err)
	}

	var ce cachedEstimate
	if err := json.Unmarshal(data, &ce); err != nil {
		return domain.DistanceEstimate{}, false, fmt.Errorf("get distance cache: decode entry: %w", err)
	}

	return domain.DistanceEstimate{DistanceKm: ce.DistanceKm, Minutes: ce.Minutes}, true, nil
}

func (c *RedisDistanceCache) Put(
	ctx context.Context,
	tenantID int,
	origin string,
	destination string,
	est domain.DistanceEstimate,
) error {
	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return errors.New("insert distance cache: origin and destination must not be empty")
	}

	data, err := json.Marshal(cachedEstimate{DistanceKm: est.DistanceKm, Minutes: est.Minutes})
	if err != nil {
		return fmt.Errorf("insert distance cache: encode entry: %w", err)
	}

	if err := c.client.HSet(ctx, tenantKey(tenantID), pairField(origin, destination), data).Err(); err != nil {
		return fmt.Errorf("insert distance cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}

func (c *RedisDistanceCache) InvalidateTenant(ctx context.Context, tenantID int) (err error) {
	defer obs.Time(ctx, "distance.cache.InvalidateTenant")(&err)

	if err := c.client.Del(ctx, tenantKey(tenantID)).Err(); err != nil {
		return fmt.Errorf("invalidate distance cache tenant=%d: %w", tenantID, err)
	}

	return nil
}
