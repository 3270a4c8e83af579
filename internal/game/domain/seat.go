package domain

import "errors"

// SeatStatus describes whether a seated player is still in the game.
type SeatStatus int

const (
	// SeatStatusUnspecified represents an invalid seat status value.
	SeatStatusUnspecified SeatStatus = iota
	// SeatStatusInGame indicates the player is still seated and playing.
	SeatStatusInGame
	// SeatStatusEliminated indicates the player has left the game.
	SeatStatusEliminated
)

// ExitReason records how a player left the game.
type ExitReason string

const (
	// ExitReasonKilled records a night kill.
	ExitReasonKilled ExitReason = "killed"
	// ExitReasonVoted records a day-vote elimination.
	ExitReasonVoted ExitReason = "voted"
	// ExitReasonRemoved records a moderator removal (fouls, disqualification).
	ExitReasonRemoved ExitReason = "removed"
)

var (
	// ErrInvalidSeatStatus indicates an unknown seat status label.
	ErrInvalidSeatStatus = errors.New("invalid seat status")
	// ErrInvalidExitReason indicates an unknown exit reason label.
	ErrInvalidExitReason = errors.New("invalid exit reason")
)

// Seat binds a player to a session at a fixed table position. Role is a
// free-form label; the engine does not enforce role-set composition.
// ExitSeq is nil while the player is in game and stamped with the session's
// next elimination order number when the player is eliminated.
type Seat struct {
	SessionID  string
	PlayerID   string
	Position   int // 1..SeatCount, unique within a session
	Role       string
	Status     SeatStatus
	ExitReason ExitReason
	ExitSeq    *uint64
}

// String returns the storage label for the status.
func (s SeatStatus) String() string {
	switch s {
	case SeatStatusInGame:
		return "in_game"
	case SeatStatusEliminated:
		return "eliminated"
	default:
		return "unspecified"
	}
}

// ParseSeatStatus maps a storage label to a seat status.
func ParseSeatStatus(value string) SeatStatus {
	switch value {
	case "in_game":
		return SeatStatusInGame
	case "eliminated":
		return SeatStatusEliminated
	default:
		return SeatStatusUnspecified
	}
}

// IsValid reports whether the status is a known seat state.
func (s SeatStatus) IsValid() bool {
	switch s {
	case SeatStatusInGame, SeatStatusEliminated:
		return true
	default:
		return false
	}
}

// IsValid reports whether the exit reason is supported. The empty reason is
// valid: eliminations may be recorded without a cause.
func (r ExitReason) IsValid() bool {
	switch r {
	case "", ExitReasonKilled, ExitReasonVoted, ExitReasonRemoved:
		return true
	default:
		return false
	}
}
