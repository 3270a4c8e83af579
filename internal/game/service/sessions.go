package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/platform/id"
)

// SessionManager owns the session lifecycle: at most one session is active
// at a time, and activating a new session finishes the previous one.
type SessionManager struct {
	stores      Stores
	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewSessionManager creates a SessionManager with default dependencies.
func NewSessionManager(stores Stores) *SessionManager {
	return &SessionManager{
		stores:      stores,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// Create starts a new session seating the given players at positions
// 1..len in order. Any currently active session is finished in the same
// storage transaction.
func (m *SessionManager) Create(ctx context.Context, input domain.CreateSessionInput) (domain.Session, error) {
	if m == nil || m.stores.Sessions == nil {
		return domain.Session{}, fmt.Errorf("session store is not configured")
	}

	normalized, err := domain.NormalizeCreateSessionInput(input)
	if err != nil {
		return domain.Session{}, err
	}

	session, err := domain.CreateSession(normalized, m.clock, m.idGenerator)
	if err != nil {
		return domain.Session{}, err
	}

	if err := m.stores.Sessions.CreateSessionWithSeats(ctx, session, normalized.PlayerIDs); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}
	return session, nil
}

// Active returns the merged view of the current active session: the
// session, seats ordered by position, and the event log ordered by
// sequence. Returns storage.ErrNotFound when no session is active.
func (m *SessionManager) Active(ctx context.Context) (SessionView, error) {
	if m == nil || m.stores.Sessions == nil || m.stores.Events == nil {
		return SessionView{}, fmt.Errorf("stores are not configured")
	}

	session, err := m.stores.Sessions.GetActiveSession(ctx)
	if err != nil {
		return SessionView{}, err
	}
	seats, err := m.stores.Sessions.ListSeats(ctx, session.ID)
	if err != nil {
		return SessionView{}, fmt.Errorf("list seats: %w", err)
	}
	events, err := m.stores.Events.ListEvents(ctx, session.ID)
	if err != nil {
		return SessionView{}, fmt.Errorf("list events: %w", err)
	}
	return SessionView{Session: session, Seats: seats, Events: events}, nil
}

// SetSeatRole overwrites the seat's role label. The engine deliberately
// accepts any label and does not enforce role-set composition.
func (m *SessionManager) SetSeatRole(ctx context.Context, sessionID, playerID, role string) error {
	if m == nil || m.stores.Sessions == nil {
		return fmt.Errorf("session store is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	playerID = strings.TrimSpace(playerID)
	if sessionID == "" {
		return domain.ErrEmptySessionID
	}
	if playerID == "" {
		return domain.ErrEmptyPlayerID
	}
	return m.stores.Sessions.SetSeatRole(ctx, sessionID, playerID, strings.TrimSpace(role))
}

// SetSeatStatus updates a seat's game state. Eliminations return the exit
// order number stamped by the store; setting a seat back to in game leaves
// the exit fields untouched and returns 0.
func (m *SessionManager) SetSeatStatus(ctx context.Context, sessionID, playerID string, status domain.SeatStatus, reason domain.ExitReason) (uint64, error) {
	if m == nil || m.stores.Sessions == nil {
		return 0, fmt.Errorf("session store is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	playerID = strings.TrimSpace(playerID)
	if sessionID == "" {
		return 0, domain.ErrEmptySessionID
	}
	if playerID == "" {
		return 0, domain.ErrEmptyPlayerID
	}
	if !status.IsValid() {
		return 0, domain.ErrInvalidSeatStatus
	}
	if !reason.IsValid() {
		return 0, domain.ErrInvalidExitReason
	}

	if status == domain.SeatStatusEliminated {
		return m.stores.Sessions.EliminateSeat(ctx, sessionID, playerID, reason)
	}
	return 0, m.stores.Sessions.SetSeatInGame(ctx, sessionID, playerID)
}
