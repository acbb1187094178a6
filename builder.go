package goOnboard

import (
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/MrEthical07/goOnboard/backend"
	"github.com/MrEthical07/goOnboard/cache"
	"github.com/MrEthical07/goOnboard/storage"
)

// Builder defines a public type used by goOnboard APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  redis.UniversalClient

	store     storage.Store
	cache     cache.Cache
	fetcher   UserFetcher
	navigator Navigator
	profiles  ProfileStore
	share     *ShareDefaults
	hookSink  HookSink
	logger    *zap.Logger

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis may return an error when input validation, dependency calls, or security checks fail.
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithStore replaces the Redis-backed persistence with a custom [storage.Store].
func (b *Builder) WithStore(store storage.Store) *Builder {
	b.store = store
	return b
}

// WithCache replaces the Redis-backed validation gate with a custom [cache.Cache].
func (b *Builder) WithCache(c cache.Cache) *Builder {
	b.cache = c
	return b
}

// WithFetcher replaces the default [backend.Client] user fetcher.
func (b *Builder) WithFetcher(fetcher UserFetcher) *Builder {
	b.fetcher = fetcher
	return b
}

// WithNavigator describes the withnavigator operation and its observable behavior.
//
// WithNavigator may return an error when input validation, dependency calls, or security checks fail.
// WithNavigator does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithNavigator(nav Navigator) *Builder {
	b.navigator = nav
	return b
}

// WithProfileStore describes the withprofilestore operation and its observable behavior.
//
// WithProfileStore may return an error when input validation, dependency calls, or security checks fail.
// WithProfileStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithProfileStore(ps ProfileStore) *Builder {
	b.profiles = ps
	return b
}

// WithShareDefaults shares one [ShareDefaults] between the engine and the
// host's rendering layer. Omitting it gives the engine a private instance.
func (b *Builder) WithShareDefaults(share *ShareDefaults) *Builder {
	b.share = share
	return b
}

// WithHookSink describes the withhooksink operation and its observable behavior.
//
// WithHookSink may return an error when input validation, dependency calls, or security checks fail.
// WithHookSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithHookSink(sink HookSink) *Builder {
	b.hookSink = sink
	return b
}

// WithLogger describes the withlogger operation and its observable behavior.
//
// WithLogger may return an error when input validation, dependency calls, or security checks fail.
// WithLogger does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.redis == nil && (b.store == nil || b.cache == nil) {
		return nil, errors.New("redis client required")
	}

	if b.profiles == nil {
		return nil, errors.New("profile store required")
	}

	if b.fetcher == nil && cfg.Backend.BaseURL == "" {
		return nil, errors.New("Backend BaseURL required when no custom fetcher is set")
	}

	if b.navigator != nil && cfg.SetupFlow.RedirectBase == "" {
		return nil, errors.New("SetupFlow RedirectBase required when a navigator is set")
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// -------- STORAGE + CACHE --------
	store := b.store
	if store == nil {
		store = storage.NewRedisStore(b.redis, cfg.Storage.RedisPrefix)
	}
	gate := b.cache
	if gate == nil {
		gate = cache.NewRedisCache(b.redis, cfg.Storage.RedisPrefix)
	}

	// -------- USER FETCHER --------
	fetcher := b.fetcher
	if fetcher == nil {
		client, err := backend.NewClient(backend.Config{
			BaseURL:     cfg.Backend.BaseURL,
			UserPath:    cfg.Backend.UserPath,
			TokenHeader: cfg.Backend.TokenHeader,
			TokenScheme: cfg.Backend.TokenScheme,
			Timeout:     cfg.Backend.Timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		fetcher = client
	}

	share := b.share
	if share == nil {
		share = &ShareDefaults{}
	}

	engine := &Engine{
		config:    cfg,
		store:     store,
		cache:     gate,
		fetcher:   fetcher,
		navigator: b.navigator,
		profiles:  b.profiles,
		share:     share,
		hooks:     newHookDispatcher(cfg.Hooks, b.hookSink),
		metrics:   NewMetrics(cfg.Metrics),
		logger:    logger,
	}

	b.built = true

	return engine, nil
}
