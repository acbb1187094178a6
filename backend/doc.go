// Package backend talks to the platform backend that owns user accounts.
//
// It exposes the wire shape of the current-user record and a small HTTP
// client that fetches it with a bearer token. Every nested field of the
// record is optional on the wire; accessors on [UserRecord] are nil-safe so
// callers never chase pointers.
//
// # What this package must NOT do
//
//   - Import goOnboard, storage, or cache (no upward imports).
//   - Decide whether an account needs setup; that policy belongs to the
//     Engine.
package backend
