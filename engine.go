package goOnboard

import (
	"go.uber.org/zap"

	"github.com/MrEthical07/goOnboard/cache"
	"github.com/MrEthical07/goOnboard/storage"
)

// Engine defines a public type used by goOnboard APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config    Config
	store     storage.Store
	cache     cache.Cache
	fetcher   UserFetcher
	navigator Navigator
	profiles  ProfileStore
	share     *ShareDefaults
	hooks     *hookDispatcher
	metrics   *Metrics
	logger    *zap.Logger
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.hooks != nil {
		e.hooks.Close()
	}
}

// HookDropped describes the hookdropped operation and its observable behavior.
//
// HookDropped may return an error when input validation, dependency calls, or security checks fail.
// HookDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) HookDropped() uint64 {
	if e == nil || e.hooks == nil {
		return 0
	}
	return e.hooks.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

// Share returns the sharing toggle the engine flips during setup flows.
// Hosts consult it when rendering share affordances.
func (e *Engine) Share() *ShareDefaults {
	if e == nil {
		return nil
	}
	return e.share
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) ready() error {
	if e == nil || e.store == nil || e.cache == nil || e.fetcher == nil || e.profiles == nil {
		return ErrEngineNotReady
	}
	return nil
}
