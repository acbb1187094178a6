// Package prometheus provides Prometheus collectors for goOnboard metrics.
//
// [NewPrometheusExporter] accepts an [goOnboard.Engine] and exposes an [http.Handler]
// that renders all goOnboard counters and histograms in Prometheus text exposition format.
// Counter names are prefixed onboard_*_total; the single histogram is
// onboard_validate_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
