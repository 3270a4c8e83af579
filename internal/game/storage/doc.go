// Package storage defines the durable-store contract for the game engine:
// player registry, session and seat state, and the per-session event log.
//
// Implementations must serialize the read-max-then-write sequence stamping
// per session; see the SQLite implementation in the sqlite subpackage.
package storage
