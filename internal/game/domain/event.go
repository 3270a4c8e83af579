package domain

import (
	"errors"
	"strings"
	"time"
)

// EventType identifies the type of a recorded game action.
type EventType string

const (
	// EventTypeKill records a night kill of a player.
	EventTypeKill EventType = "kill"
	// EventTypeVote records a day-vote elimination of a player.
	EventTypeVote EventType = "vote"
	// EventTypeCheckDon records the don's sheriff check.
	EventTypeCheckDon EventType = "check_don"
	// EventTypeCheckSheriff records the sheriff's alignment check.
	EventTypeCheckSheriff EventType = "check_sheriff"
)

var (
	// ErrInvalidEventType indicates an unsupported event type label.
	ErrInvalidEventType = errors.New("invalid event type")
	// ErrEmptySessionID indicates a missing session ID.
	ErrEmptySessionID = errors.New("session id is required")
)

// Event captures one immutable entry in a session's ordered action log.
// Kills and votes reference the eliminated player through ActorPlayerID;
// checks reference the checked player through CheckedPlayerID. Seq is
// assigned by the storage layer, strictly increasing from 1 per session.
type Event struct {
	SessionID       string
	Seq             uint64
	Type            EventType
	ActorPlayerID   string
	CheckedPlayerID string
	Result          string // free-text label, e.g. alignment found by a check
	CreatedAt       time.Time
}

// AppendEventInput describes a game action to record. Player references are
// optional and not validated against seat state; the operator console owns
// game-rule discipline.
type AppendEventInput struct {
	SessionID       string
	Type            EventType
	ActorPlayerID   string
	CheckedPlayerID string
	Result          string
}

// NormalizeAppendEventInput trims and validates an event input.
func NormalizeAppendEventInput(input AppendEventInput) (AppendEventInput, error) {
	input.SessionID = strings.TrimSpace(input.SessionID)
	if input.SessionID == "" {
		return AppendEventInput{}, ErrEmptySessionID
	}
	if !input.Type.IsValid() {
		return AppendEventInput{}, ErrInvalidEventType
	}
	input.ActorPlayerID = strings.TrimSpace(input.ActorPlayerID)
	input.CheckedPlayerID = strings.TrimSpace(input.CheckedPlayerID)
	input.Result = strings.TrimSpace(input.Result)
	return input, nil
}

// IsValid reports whether the event type is supported.
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeKill, EventTypeVote, EventTypeCheckDon, EventTypeCheckSheriff:
		return true
	default:
		return false
	}
}
