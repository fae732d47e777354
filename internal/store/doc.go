// Package store keeps a session's roster in an in-memory SQLite database.
//
// It is an alternative to roster.MemoryStore for callers that want the
// roster behind SQL. The database lives only as long as the Store: Open
// always uses an in-memory DSN and nothing is written to disk.
//
// # Ordering
//
// Rows carry an explicit position column. Every read is
// ORDER BY position ASC, id ASC so the roster order seen by the engine is
// the order the participants were imported or added in.
//
// # Atomicity
//
// Replace and Remove run inside a transaction. A failed Replace leaves the
// previous roster untouched.
//
// # Connection
//
// The pool is pinned to a single connection. Each new connection to
// ":memory:" would otherwise open a separate, empty database.
package store
