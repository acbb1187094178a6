package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *RedisCache) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, NewRedisCache(client, "ob")
}

func TestGetOrLoadMissRunsLoaderAndStores(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (bool, error) {
		calls++
		return true, nil
	}

	v, err := c.GetOrLoad(ctx, "validated", time.Hour, load)
	if err != nil {
		t.Fatalf("GetOrLoad failed: %v", err)
	}
	if !v {
		t.Fatal("expected loaded value true")
	}
	if calls != 1 {
		t.Fatalf("expected 1 loader call, got %d", calls)
	}

	stored, err := mr.Get("ob:validated")
	if err != nil {
		t.Fatalf("expected entry in redis: %v", err)
	}
	if stored != "1" {
		t.Fatalf("expected stored value %q, got %q", "1", stored)
	}
}

func TestGetOrLoadHitSkipsLoader(t *testing.T) {
	_, c := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) (bool, error) {
		calls++
		return true, nil
	}

	if _, err := c.GetOrLoad(ctx, "validated", time.Hour, load); err != nil {
		t.Fatalf("first GetOrLoad failed: %v", err)
	}
	if _, err := c.GetOrLoad(ctx, "validated", time.Hour, load); err != nil {
		t.Fatalf("second GetOrLoad failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected loader to run once, got %d calls", calls)
	}
}

func TestGetOrLoadStoredFalseDoesNotShortCircuit(t *testing.T) {
	_, c := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "validated", false, time.Hour); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	calls := 0
	v, err := c.GetOrLoad(ctx, "validated", time.Hour, func(context.Context) (bool, error) {
		calls++
		return true, nil
	})
	if err != nil {
		t.Fatalf("GetOrLoad failed: %v", err)
	}
	if !v || calls != 1 {
		t.Fatalf("expected stored false to rerun loader, value=%v calls=%d", v, calls)
	}
}

func TestGetOrLoadLoaderFailureEvictsEntry(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()
	boom := errors.New("backend down")

	if err := c.Put(ctx, "validated", false, time.Hour); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	_, err := c.GetOrLoad(ctx, "validated", time.Hour, func(context.Context) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected loader error to propagate, got %v", err)
	}
	if mr.Exists("ob:validated") {
		t.Fatal("expected entry to be evicted after loader failure")
	}

	// Next call retries the loader instead of serving a poisoned entry.
	calls := 0
	v, err := c.GetOrLoad(ctx, "validated", time.Hour, func(context.Context) (bool, error) {
		calls++
		return true, nil
	})
	if err != nil || !v || calls != 1 {
		t.Fatalf("expected retry after failure, value=%v calls=%d err=%v", v, calls, err)
	}
}

func TestEntryExpiresAfterTTL(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "validated", true, time.Minute); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	calls := 0
	if _, err := c.GetOrLoad(ctx, "validated", time.Minute, func(context.Context) (bool, error) {
		calls++
		return true, nil
	}); err != nil {
		t.Fatalf("GetOrLoad failed: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected expired entry to rerun loader, got %d calls", calls)
	}
}

func TestRemoveEvictsEntry(t *testing.T) {
	mr, c := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "validated", true, time.Hour); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := c.Remove(ctx, "validated"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if mr.Exists("ob:validated") {
		t.Fatal("expected entry to be removed")
	}
	if err := c.Remove(ctx, "validated"); err != nil {
		t.Fatalf("expected Remove of absent key to succeed, got %v", err)
	}
}

func TestPutNonPositiveTTLStoresNothing(t *testing.T) {
	mr, c := newTestCache(t)

	if err := c.Put(context.Background(), "validated", true, 0); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if mr.Exists("ob:validated") {
		t.Fatal("expected no entry for non-positive TTL")
	}
}

func TestUnavailableWrapsSentinel(t *testing.T) {
	mr, c := newTestCache(t)
	mr.Close()
	ctx := context.Background()

	_, err := c.GetOrLoad(ctx, "validated", time.Hour, func(context.Context) (bool, error) {
		t.Fatal("loader must not run when cache is unreachable")
		return false, nil
	})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if err := c.Put(ctx, "validated", true, time.Hour); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable from Put, got %v", err)
	}
	if err := c.Remove(ctx, "validated"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable from Remove, got %v", err)
	}
}
