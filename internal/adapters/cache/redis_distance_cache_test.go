package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
)

func newTestRedisCache(t *testing.T) *RedisDistanceCache {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisDistanceCache(client)
}

func TestRedisCachePutGet(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	est := domain.DistanceEstimate{DistanceKm: 5.27, Minutes: 14}
	if err := c.Put(ctx, 1, "praça da sé, são paulo", "rua augusta, são paulo", est); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, 1, "praça da sé, são paulo", "rua augusta, são paulo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != est {
		t.Fatalf("estimate = %+v, want %+v", got, est)
	}
}

func TestRedisCacheMiss(t *testing.T) {
	c := newTestRedisCache(t)

	_, ok, err := c.Get(context.Background(), 1, "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}

func TestRedisCacheUpsert(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, 1, "a", "b", domain.DistanceEstimate{DistanceKm: 3.0, Minutes: 8}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Put(ctx, 1, "a", "b", domain.DistanceEstimate{DistanceKm: 3.4, Minutes: 9}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := c.Get(ctx, 1, "a", "b")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.DistanceKm != 3.4 || got.Minutes != 9 {
		t.Fatalf("estimate = %+v, want later Put to win", got)
	}
}

func TestRedisCacheInvalidateTenant(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	est := domain.DistanceEstimate{DistanceKm: 5.0, Minutes: 13}
	if err := c.Put(ctx, 1, "a", "b", est); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Put(ctx, 1, "a", "c", est); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Put(ctx, 2, "a", "b", est); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := c.InvalidateTenant(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok, _ := c.Get(ctx, 1, "a", "b"); ok {
		t.Fatal("tenant 1 entry survived invalidation")
	}
	if _, ok, _ := c.Get(ctx, 1, "a", "c"); ok {
		t.Fatal("tenant 1 entry survived invalidation")
	}
	if _, ok, _ := c.Get(ctx, 2, "a", "b"); !ok {
		t.Fatal("tenant 2 entry was wrongly invalidated")
	}
}
