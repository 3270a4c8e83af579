package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tenchairs/stage/internal/platform/id"
)

var (
	// ErrEmptyNickname indicates a missing player nickname.
	ErrEmptyNickname = errors.New("nickname is required")
	// ErrEmptyPlayerID indicates a missing player ID.
	ErrEmptyPlayerID = errors.New("player id is required")
)

// Player identifies a registered participant. Players are referenced by
// seats and events but never owned by a session, and are never deleted.
type Player struct {
	ID         string
	ExternalID string // optional import handle, unique when set
	Nickname   string
	PhotoURL   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreatePlayerInput describes the metadata needed to register a player.
type CreatePlayerInput struct {
	Nickname   string
	ExternalID string
	PhotoURL   string
}

// CreatePlayer builds a new player with a generated ID and timestamps.
func CreatePlayer(input CreatePlayerInput, now func() time.Time, idGenerator func() (string, error)) (Player, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreatePlayerInput(input)
	if err != nil {
		return Player{}, err
	}

	playerID, err := idGenerator()
	if err != nil {
		return Player{}, fmt.Errorf("generate player id: %w", err)
	}

	createdAt := now().UTC()
	return Player{
		ID:         playerID,
		ExternalID: normalized.ExternalID,
		Nickname:   normalized.Nickname,
		PhotoURL:   normalized.PhotoURL,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}, nil
}

// NormalizeCreatePlayerInput trims and validates player registration input.
func NormalizeCreatePlayerInput(input CreatePlayerInput) (CreatePlayerInput, error) {
	input.Nickname = strings.TrimSpace(input.Nickname)
	if input.Nickname == "" {
		return CreatePlayerInput{}, ErrEmptyNickname
	}
	input.ExternalID = strings.TrimSpace(input.ExternalID)
	input.PhotoURL = strings.TrimSpace(input.PhotoURL)
	return input, nil
}
