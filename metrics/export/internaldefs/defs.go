package internaldefs

import (
	goOnboard "github.com/MrEthical07/goOnboard"
)

// CounterDef defines a public type used by goOnboard APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goOnboard.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goOnboard APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goOnboard.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the validator engine.
var CounterDefs = []CounterDef{
	{ID: goOnboard.MetricValidationSuccess, Name: "onboard_validation_success_total", Help: "Successful account validations."},
	{ID: goOnboard.MetricValidationFailure, Name: "onboard_validation_failure_total", Help: "Failed account validations."},
	{ID: goOnboard.MetricValidationCached, Name: "onboard_validation_cached_total", Help: "Validation checks answered from the cached gate."},
	{ID: goOnboard.MetricSetupRequired, Name: "onboard_setup_required_total", Help: "Validations that found pending setup obligations."},
	{ID: goOnboard.MetricSetupFlowOpened, Name: "onboard_setup_flow_opened_total", Help: "Setup surfaces opened."},
	{ID: goOnboard.MetricSetupFlowFailure, Name: "onboard_setup_flow_failure_total", Help: "Setup flows that ended in an error."},
	{ID: goOnboard.MetricFetchFailure, Name: "onboard_fetch_failure_total", Help: "Failed user record fetches."},
	{ID: goOnboard.MetricSessionSyncSuccess, Name: "onboard_session_sync_success_total", Help: "Successful local session syncs."},
	{ID: goOnboard.MetricSessionSyncFailure, Name: "onboard_session_sync_failure_total", Help: "Failed local session syncs."},
	{ID: goOnboard.MetricSkipSetupMarked, Name: "onboard_skip_setup_marked_total", Help: "Skip-setup flags persisted."},
	{ID: goOnboard.MetricLoginCacheInvalidated, Name: "onboard_login_cache_invalidated_total", Help: "Validation gates dropped on native login."},
	{ID: goOnboard.MetricCacheRearmed, Name: "onboard_cache_rearmed_total", Help: "Validation gates armed after a fresh validation."},
}

// HistogramDefs is an exported constant or variable used by the validator engine.
var HistogramDefs = []HistogramDef{
	{ID: goOnboard.MetricValidateLatency, Name: "onboard_validate_latency_seconds", Help: "Validate latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the validator engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the validator engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
