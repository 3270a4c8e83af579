package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tenchairs/stage/internal/platform/id"
)

// SeatCount is the fixed number of seats in every session.
const SeatCount = 10

// SessionStatus describes the lifecycle state of a game session.
type SessionStatus int

const (
	// SessionStatusUnspecified represents an invalid session status value.
	SessionStatusUnspecified SessionStatus = iota
	// SessionStatusPending indicates the session has not started.
	SessionStatusPending
	// SessionStatusActive indicates the session is currently being played.
	SessionStatusActive
	// SessionStatusFinished indicates the session has ended.
	SessionStatusFinished
)

var (
	// ErrSeatCount indicates the wrong number of seated players.
	ErrSeatCount = fmt.Errorf("exactly %d players are required", SeatCount)
	// ErrDuplicatePlayer indicates the same player seated twice.
	ErrDuplicatePlayer = errors.New("players must be distinct")
	// ErrInvalidGameNumber indicates a non-positive game number.
	ErrInvalidGameNumber = errors.New("game number must be greater than zero")
)

// Session represents one play-through of the game. At most one session is
// active at any time; activating a new session finishes the previous one.
type Session struct {
	ID           string
	TournamentID string // optional association
	GameNumber   int    // operator-supplied, not unique
	Status       SessionStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateSessionInput describes the metadata needed to start a session.
// PlayerIDs are seated in order: position = index + 1.
type CreateSessionInput struct {
	GameNumber   int
	TournamentID string
	PlayerIDs    []string
}

// CreateSession builds a new active session with a generated ID and
// timestamps. Seating the players is the storage layer's concern.
func CreateSession(input CreateSessionInput, now func() time.Time, idGenerator func() (string, error)) (Session, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateSessionInput(input)
	if err != nil {
		return Session{}, err
	}

	sessionID, err := idGenerator()
	if err != nil {
		return Session{}, fmt.Errorf("generate session id: %w", err)
	}

	createdAt := now().UTC()
	return Session{
		ID:           sessionID,
		TournamentID: normalized.TournamentID,
		GameNumber:   normalized.GameNumber,
		Status:       SessionStatusActive,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}, nil
}

// NormalizeCreateSessionInput validates session input metadata. It requires
// exactly SeatCount distinct, non-empty player IDs.
func NormalizeCreateSessionInput(input CreateSessionInput) (CreateSessionInput, error) {
	if input.GameNumber <= 0 {
		return CreateSessionInput{}, ErrInvalidGameNumber
	}
	if len(input.PlayerIDs) != SeatCount {
		return CreateSessionInput{}, ErrSeatCount
	}
	seen := make(map[string]struct{}, SeatCount)
	ids := make([]string, 0, SeatCount)
	for _, playerID := range input.PlayerIDs {
		playerID = strings.TrimSpace(playerID)
		if playerID == "" {
			return CreateSessionInput{}, ErrEmptyPlayerID
		}
		if _, ok := seen[playerID]; ok {
			return CreateSessionInput{}, ErrDuplicatePlayer
		}
		seen[playerID] = struct{}{}
		ids = append(ids, playerID)
	}
	input.PlayerIDs = ids
	input.TournamentID = strings.TrimSpace(input.TournamentID)
	return input, nil
}

// String returns the storage label for the status.
func (s SessionStatus) String() string {
	switch s {
	case SessionStatusPending:
		return "pending"
	case SessionStatusActive:
		return "active"
	case SessionStatusFinished:
		return "finished"
	default:
		return "unspecified"
	}
}

// ParseSessionStatus maps a storage label to a session status.
func ParseSessionStatus(value string) SessionStatus {
	switch value {
	case "pending":
		return SessionStatusPending
	case "active":
		return SessionStatusActive
	case "finished":
		return SessionStatusFinished
	default:
		return SessionStatusUnspecified
	}
}

// IsValid reports whether the status is a known lifecycle state.
func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusPending, SessionStatusActive, SessionStatusFinished:
		return true
	default:
		return false
	}
}
