// Package storage provides the persistent key-value slots the validator
// engine keeps between app launches: the local session record and the
// skip-setup flag.
//
// # Architecture boundaries
//
// This package owns raw byte persistence and key namespacing. It does NOT
// interpret the stored payloads — encoding, decoding, and the meaning of
// each slot belong to the Engine.
//
// # What this package must NOT do
//
//   - Import goOnboard or backend (no upward imports).
//   - Attach TTLs to slots; persisted slots live until deleted.
//   - Log or expose stored values; payloads may contain auth tokens.
package storage
