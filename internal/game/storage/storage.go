package storage

import (
	"context"
	"errors"

	"github.com/tenchairs/stage/internal/game/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict on insert.
var ErrAlreadyExists = errors.New("record already exists")

// SeatView is a seat joined with its player's display fields, for the
// operator console and overlay.
type SeatView struct {
	Seat     domain.Seat
	Nickname string
	PhotoURL string
}

// EventView is an event joined with the referenced players' nicknames.
type EventView struct {
	Event           domain.Event
	ActorNickname   string
	CheckedNickname string
}

// PlayerStore persists the player registry. Players are never deleted.
type PlayerStore interface {
	CreatePlayer(ctx context.Context, player domain.Player) error
	GetPlayer(ctx context.Context, id string) (domain.Player, error)
	UpdatePlayer(ctx context.Context, player domain.Player) error
	ListPlayers(ctx context.Context) ([]domain.Player, error)
}

// SessionStore persists sessions and their seats.
//
// CreateSessionWithSeats finishes every currently-active session, inserts
// the new session as active, and seats playerIDs at positions 1..len in one
// transaction, so readers never observe zero or two active sessions.
type SessionStore interface {
	CreateSessionWithSeats(ctx context.Context, session domain.Session, playerIDs []string) error
	GetSession(ctx context.Context, id string) (domain.Session, error)
	GetActiveSession(ctx context.Context) (domain.Session, error)
	ListSeats(ctx context.Context, sessionID string) ([]SeatView, error)
	SetSeatRole(ctx context.Context, sessionID, playerID, role string) error
	// EliminateSeat marks the seat eliminated and stamps the session's next
	// exit order number, read and written in one transaction. A seat that
	// already carries an exit order number keeps it.
	EliminateSeat(ctx context.Context, sessionID, playerID string, reason domain.ExitReason) (uint64, error)
	// SetSeatInGame marks the seat in game. Exit fields are left untouched;
	// there are no revive semantics.
	SetSeatInGame(ctx context.Context, sessionID, playerID string) error
}

// EventStore persists the per-session append-only action log.
type EventStore interface {
	// AppendEvent stamps the session's next sequence number and inserts the
	// event, read and written in one transaction.
	AppendEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	ListEvents(ctx context.Context, sessionID string) ([]EventView, error)
	// DeleteLastEvent removes the event holding the session's current
	// maximum sequence number. It is a no-op on an empty ledger.
	DeleteLastEvent(ctx context.Context, sessionID string) error
}
