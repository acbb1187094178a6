// Package cache provides the expiring boolean gate that throttles account
// re-validation.
//
// The engine asks the gate whether a validation result is still fresh; on a
// miss the gate runs the supplied loader and remembers its outcome for the
// given TTL. A loader failure evicts the entry so the next call retries.
//
// # Architecture boundaries
//
// This package stores booleans under string keys. It does NOT know what a
// validation is — the loader closure belongs to the Engine.
package cache
