// Package storage defines durable client-state persistence.
//
// The client persists exactly two records between runs: the authenticated
// user and the bearer token pair. Both round-trip through JSON. Backends live
// in subpackages:
//   - bbolt: single-file BoltDB store (default).
//   - sqlite: SQLite-backed store for deployments that already ship it.
//   - memory: in-process store for tests and ephemeral sessions.
package storage
