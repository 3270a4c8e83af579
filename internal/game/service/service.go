// Package service implements the game engine's operation surface: the
// session manager, the event ledger, and the player registry. It validates
// input through the domain package and delegates sequencing and atomicity
// to the storage layer's transactions.
package service

import (
	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/game/storage"
)

// Stores groups the storage interfaces the services operate on.
type Stores struct {
	Players  storage.PlayerStore
	Sessions storage.SessionStore
	Events   storage.EventStore
}

// SessionView is the merged read model polled by the overlay and the
// operator console: the active session, its seats ordered by position, and
// its full event log ordered by sequence.
type SessionView struct {
	Session domain.Session
	Seats   []storage.SeatView
	Events  []storage.EventView
}
