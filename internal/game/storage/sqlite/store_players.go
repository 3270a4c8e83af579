package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/game/storage"
)

// CreatePlayer inserts one player record.
func (s *Store) CreatePlayer(ctx context.Context, player domain.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	playerID := strings.TrimSpace(player.ID)
	nickname := strings.TrimSpace(player.Nickname)
	if playerID == "" {
		return fmt.Errorf("player id is required")
	}
	if nickname == "" {
		return fmt.Errorf("nickname is required")
	}
	createdAt := player.CreatedAt.UTC()
	updatedAt := player.UpdatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO players (id, external_id, nickname, photo_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		playerID,
		toNullString(player.ExternalID),
		nickname,
		strings.TrimSpace(player.PhotoURL),
		toMillis(createdAt),
		toMillis(updatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("create player: %w", err)
	}
	return nil
}

// GetPlayer returns one player by ID.
func (s *Store) GetPlayer(ctx context.Context, id string) (domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return domain.Player{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Player{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Player{}, fmt.Errorf("player id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, external_id, nickname, photo_url, created_at, updated_at
		   FROM players
		  WHERE id = ?`,
		id,
	)
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, fmt.Errorf("get player: %w", err)
	}
	return player, nil
}

// UpdatePlayer overwrites a player's mutable display fields.
func (s *Store) UpdatePlayer(ctx context.Context, player domain.Player) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	playerID := strings.TrimSpace(player.ID)
	nickname := strings.TrimSpace(player.Nickname)
	if playerID == "" {
		return fmt.Errorf("player id is required")
	}
	if nickname == "" {
		return fmt.Errorf("nickname is required")
	}
	updatedAt := player.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE players
		    SET nickname = ?, photo_url = ?, updated_at = ?
		  WHERE id = ?`,
		nickname,
		strings.TrimSpace(player.PhotoURL),
		toMillis(updatedAt),
		playerID,
	)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update player rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListPlayers returns all registered players ordered by nickname.
func (s *Store) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, external_id, nickname, photo_url, created_at, updated_at
		   FROM players
		  ORDER BY nickname COLLATE NOCASE ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("list players: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (domain.Player, error) {
	var player domain.Player
	var externalID sql.NullString
	var createdAt int64
	var updatedAt int64
	err := row.Scan(
		&player.ID,
		&externalID,
		&player.Nickname,
		&player.PhotoURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Player{}, storage.ErrNotFound
		}
		return domain.Player{}, err
	}
	player.ExternalID = externalID.String
	player.CreatedAt = fromMillis(createdAt)
	player.UpdatedAt = fromMillis(updatedAt)
	return player, nil
}
