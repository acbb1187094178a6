// Package goOnboard orchestrates post-login account validation for apps
// built on a hosted account platform: it keeps a local slice of the
// signed-in session, asks the backend whether the account still owes setup
// steps, walks the user through the hosted setup flow when it does, and
// remembers a positive outcome so the check does not run on every launch.
//
// The package is designed for embedding: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build],
// and every platform capability the host owns — navigation, profile
// propagation, hook delivery — enters as an interface.
//
// # Architecture boundaries
//
// goOnboard is the public surface. It exposes [Engine], [Builder],
// [Config], and value types (LocalSession, HookEvent, MetricsSnapshot,
// etc.). Persistence lives in storage/, the validation gate in cache/, and
// the backend wire contract in backend/; none of them import goOnboard.
//
// # What this package must NOT do
//
//   - Expose Redis clients or key layouts in its public API.
//   - Perform I/O outside of Engine methods (construction via Builder is
//     allocation-only until Build).
//   - Open URLs or mutate host UI state directly; that always goes through
//     the configured [Navigator].
//
// # Performance contract
//
// EnsureValidated is the hot path: a warm gate answers with one Redis GET
// and no backend traffic. A cold gate costs one backend round-trip plus the
// storage writes the validation itself performs.
package goOnboard
