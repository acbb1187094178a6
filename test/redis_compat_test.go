//go:build integration
// +build integration

package test

import (
	"context"
	"testing"
	"time"

	"github.com/MrEthical07/goOnboard/cache"
	"github.com/MrEthical07/goOnboard/storage"
)

func TestStoreCompatAcrossBackends(t *testing.T) {
	for _, backend := range redisBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			rdb, cleanup := backend.setup(t)
			defer cleanup()

			ctx := context.Background()
			store := storage.NewRedisStore(rdb, "compat")

			if _, ok, err := store.Get(ctx, "absent"); err != nil || ok {
				t.Fatalf("expected clean miss, ok=%v err=%v", ok, err)
			}

			if err := store.Set(ctx, "slot", []byte(`{"v":1}`)); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			data, ok, err := store.Get(ctx, "slot")
			if err != nil || !ok || string(data) != `{"v":1}` {
				t.Fatalf("unexpected read: %q ok=%v err=%v", data, ok, err)
			}

			// Overwrite, never append.
			if err := store.Set(ctx, "slot", []byte(`{"v":2}`)); err != nil {
				t.Fatalf("overwrite failed: %v", err)
			}
			data, _, _ = store.Get(ctx, "slot")
			if string(data) != `{"v":2}` {
				t.Fatalf("expected overwrite, got %q", data)
			}

			if err := store.Delete(ctx, "slot"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			if err := store.Delete(ctx, "slot"); err != nil {
				t.Fatalf("second Delete failed: %v", err)
			}
		})
	}
}

func TestCacheCompatAcrossBackends(t *testing.T) {
	for _, backend := range redisBackends(t) {
		t.Run(backend.name, func(t *testing.T) {
			rdb, cleanup := backend.setup(t)
			defer cleanup()

			ctx := context.Background()
			gate := cache.NewRedisCache(rdb, "compat")

			loads := 0
			loader := func(context.Context) (bool, error) {
				loads++
				return true, nil
			}

			v, err := gate.GetOrLoad(ctx, "gate", time.Minute, loader)
			if err != nil || !v {
				t.Fatalf("cold gate: v=%v err=%v", v, err)
			}
			v, err = gate.GetOrLoad(ctx, "gate", time.Minute, loader)
			if err != nil || !v {
				t.Fatalf("warm gate: v=%v err=%v", v, err)
			}
			if loads != 1 {
				t.Fatalf("expected one load, got %d", loads)
			}

			if err := gate.Remove(ctx, "gate"); err != nil {
				t.Fatalf("Remove failed: %v", err)
			}
			if _, err := gate.GetOrLoad(ctx, "gate", time.Minute, loader); err != nil {
				t.Fatalf("reload after Remove failed: %v", err)
			}
			if loads != 2 {
				t.Fatalf("expected reload after eviction, got %d loads", loads)
			}
		})
	}
}
