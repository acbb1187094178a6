package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/MrEthical07/goOnboard/cache"
	"github.com/MrEthical07/goOnboard/storage"
)

type slotSession struct {
	UserRoleID int64  `json:"userRoleId"`
	AuthToken  string `json:"authToken"`
	Email      string `json:"email"`
}

func main() {
	var (
		slots       = flag.Int("slots", 100000, "number of account slots to seed")
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "operations per phase (gate read + rearm)")
		redisAddr   = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix      = flag.String("prefix", "ob", "key prefix")
	)
	flag.Parse()

	if *slots <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "slots, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		client  redis.UniversalClient
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		client = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	store := storage.NewRedisStore(client, *prefix)
	gate := cache.NewRedisCache(client, *prefix)

	fmt.Printf("seeding %d account slots...\n", *slots)
	startSeed := time.Now()
	for i := 0; i < *slots; i++ {
		payload, err := json.Marshal(slotSession{
			UserRoleID: int64(i % 10),
			AuthToken:  fmt.Sprintf("tok-%d", i),
			Email:      fmt.Sprintf("user%d@example.com", i),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal failed: %v\n", err)
			os.Exit(1)
		}
		if err := store.Set(ctx, sessionKey(i), payload); err != nil {
			fmt.Fprintf(os.Stderr, "seed session failed: %v\n", err)
			os.Exit(1)
		}
		if err := gate.Put(ctx, gateKey(i), true, 24*time.Hour); err != nil {
			fmt.Fprintf(os.Stderr, "seed gate failed: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("seeded in %s\n", time.Since(startSeed).Round(time.Millisecond))

	gateStats := runGateReadPhase(ctx, gate, *slots, *ops, *concurrency)
	rearmStats := runRearmPhase(ctx, gate, *slots, *ops, *concurrency)
	sessionStats := runSessionReadPhase(ctx, store, *slots, *ops, *concurrency)

	fmt.Println("---- results ----")
	printStats("gate-read", gateStats)
	printStats("rearm", rearmStats)
	printStats("session-read", sessionStats)
}

func sessionKey(i int) string {
	return fmt.Sprintf("account_session:%d", i)
}

func gateKey(i int) string {
	return fmt.Sprintf("account_validation:%d", i)
}

// runGateReadPhase hammers the warm-gate path: every GetOrLoad should answer
// from the armed entry without invoking the loader.
func runGateReadPhase(ctx context.Context, gate cache.Cache, slots, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		loads     int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	loader := func(context.Context) (bool, error) {
		atomic.AddInt64(&loads, 1)
		return true, nil
	}

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				idx := r.Intn(slots)
				t0 := time.Now()
				valid, err := gate.GetOrLoad(ctx, gateKey(idx), 24*time.Hour, loader)
				d := time.Since(t0)
				if err != nil || !valid {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)

	if n := atomic.LoadInt64(&loads); n > 0 {
		fmt.Printf("gate-read: loader invoked %d times on armed gates\n", n)
	}
	return computeStats(total, latencies, failures)
}

func runRearmPhase(ctx context.Context, gate cache.Cache, slots, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*6151))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				idx := r.Intn(slots)
				t0 := time.Now()
				err := gate.Put(ctx, gateKey(idx), true, 24*time.Hour)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func runSessionReadPhase(ctx context.Context, store storage.Store, slots, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*4973))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				idx := r.Intn(slots)
				t0 := time.Now()
				payload, found, err := store.Get(ctx, sessionKey(idx))
				d := time.Since(t0)
				if err != nil || !found || len(payload) == 0 {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}
