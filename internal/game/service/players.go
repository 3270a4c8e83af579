package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/platform/id"
)

// PlayerRegistry manages the show's registered players. Players are
// referenced by seats and events and are never deleted.
type PlayerRegistry struct {
	stores      Stores
	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewPlayerRegistry creates a PlayerRegistry with default dependencies.
func NewPlayerRegistry(stores Stores) *PlayerRegistry {
	return &PlayerRegistry{
		stores:      stores,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// Register creates a new player record.
func (r *PlayerRegistry) Register(ctx context.Context, input domain.CreatePlayerInput) (domain.Player, error) {
	if r == nil || r.stores.Players == nil {
		return domain.Player{}, fmt.Errorf("player store is not configured")
	}

	player, err := domain.CreatePlayer(input, r.clock, r.idGenerator)
	if err != nil {
		return domain.Player{}, err
	}
	if err := r.stores.Players.CreatePlayer(ctx, player); err != nil {
		return domain.Player{}, fmt.Errorf("persist player: %w", err)
	}
	return player, nil
}

// Update overwrites a player's nickname and photo.
func (r *PlayerRegistry) Update(ctx context.Context, playerID, nickname, photoURL string) (domain.Player, error) {
	if r == nil || r.stores.Players == nil {
		return domain.Player{}, fmt.Errorf("player store is not configured")
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return domain.Player{}, domain.ErrEmptyPlayerID
	}
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return domain.Player{}, domain.ErrEmptyNickname
	}

	player, err := r.stores.Players.GetPlayer(ctx, playerID)
	if err != nil {
		return domain.Player{}, err
	}
	player.Nickname = nickname
	player.PhotoURL = strings.TrimSpace(photoURL)
	player.UpdatedAt = r.clock().UTC()
	if err := r.stores.Players.UpdatePlayer(ctx, player); err != nil {
		return domain.Player{}, fmt.Errorf("update player: %w", err)
	}
	return player, nil
}

// Get returns one player by ID.
func (r *PlayerRegistry) Get(ctx context.Context, playerID string) (domain.Player, error) {
	if r == nil || r.stores.Players == nil {
		return domain.Player{}, fmt.Errorf("player store is not configured")
	}
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return domain.Player{}, domain.ErrEmptyPlayerID
	}
	return r.stores.Players.GetPlayer(ctx, playerID)
}

// List returns all registered players ordered by nickname.
func (r *PlayerRegistry) List(ctx context.Context) ([]domain.Player, error) {
	if r == nil || r.stores.Players == nil {
		return nil, fmt.Errorf("player store is not configured")
	}
	return r.stores.Players.ListPlayers(ctx)
}
