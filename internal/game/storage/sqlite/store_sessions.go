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

// CreateSessionWithSeats atomically activates a session: every session that
// is currently active is marked finished, the new session is inserted as
// active, and playerIDs are seated at positions 1..len in the given order.
// A reader never observes zero or two active sessions.
func (s *Store) CreateSessionWithSeats(ctx context.Context, session domain.Session, playerIDs []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID := strings.TrimSpace(session.ID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if len(playerIDs) == 0 {
		return fmt.Errorf("player ids are required")
	}
	createdAt := session.CreatedAt.UTC()
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	updatedAt := session.UpdatedAt.UTC()
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(
		ctx,
		`UPDATE sessions SET status = ?, updated_at = ? WHERE status = ?`,
		domain.SessionStatusFinished.String(),
		toMillis(updatedAt),
		domain.SessionStatusActive.String(),
	); err != nil {
		return fmt.Errorf("finish active sessions: %w", err)
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO sessions (id, tournament_id, game_number, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sessionID,
		toNullString(session.TournamentID),
		session.GameNumber,
		session.Status.String(),
		toMillis(createdAt),
		toMillis(updatedAt),
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert session: %w", err)
	}

	for index, playerID := range playerIDs {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO seats (session_id, player_id, position, role, status)
			 VALUES (?, ?, ?, '', ?)`,
			sessionID,
			strings.TrimSpace(playerID),
			index+1,
			domain.SeatStatusInGame.String(),
		); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("seat player %s: %w", playerID, storage.ErrNotFound)
			}
			if isUniqueViolation(err) {
				return storage.ErrAlreadyExists
			}
			return fmt.Errorf("seat player %s: %w", playerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetSession returns one session by ID.
func (s *Store) GetSession(ctx context.Context, id string) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Session{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Session{}, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, tournament_id, game_number, status, created_at, updated_at
		   FROM sessions
		  WHERE id = ?`,
		id,
	)
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Session{}, storage.ErrNotFound
		}
		return domain.Session{}, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// GetActiveSession returns the most recently created active session.
func (s *Store) GetActiveSession(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Session{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, tournament_id, game_number, status, created_at, updated_at
		   FROM sessions
		  WHERE status = ?
		  ORDER BY created_at DESC, id DESC
		  LIMIT 1`,
		domain.SessionStatusActive.String(),
	)
	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Session{}, storage.ErrNotFound
		}
		return domain.Session{}, fmt.Errorf("get active session: %w", err)
	}
	return session, nil
}

// ListSeats returns the session's seats joined with player display fields,
// ordered by position.
func (s *Store) ListSeats(ctx context.Context, sessionID string) ([]storage.SeatView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT st.session_id, st.player_id, st.position, st.role, st.status,
		        st.exit_reason, st.exit_seq, p.nickname, p.photo_url
		   FROM seats st
		   JOIN players p ON p.id = st.player_id
		  WHERE st.session_id = ?
		  ORDER BY st.position ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}
	defer rows.Close()

	var seats []storage.SeatView
	for rows.Next() {
		var view storage.SeatView
		var status string
		var exitReason sql.NullString
		var exitSeq sql.NullInt64
		if err := rows.Scan(
			&view.Seat.SessionID,
			&view.Seat.PlayerID,
			&view.Seat.Position,
			&view.Seat.Role,
			&status,
			&exitReason,
			&exitSeq,
			&view.Nickname,
			&view.PhotoURL,
		); err != nil {
			return nil, fmt.Errorf("list seats: %w", err)
		}
		view.Seat.Status = domain.ParseSeatStatus(status)
		view.Seat.ExitReason = domain.ExitReason(exitReason.String)
		if exitSeq.Valid {
			seq := uint64(exitSeq.Int64)
			view.Seat.ExitSeq = &seq
		}
		seats = append(seats, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}
	return seats, nil
}

// SetSeatRole overwrites the seat's role label. Any label is accepted; role
// set composition is the operator's concern.
func (s *Store) SetSeatRole(ctx context.Context, sessionID, playerID, role string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	playerID = strings.TrimSpace(playerID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if playerID == "" {
		return fmt.Errorf("player id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE seats SET role = ? WHERE session_id = ? AND player_id = ?`,
		strings.TrimSpace(role),
		sessionID,
		playerID,
	)
	if err != nil {
		return fmt.Errorf("set seat role: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set seat role rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// EliminateSeat marks the seat eliminated and stamps the session's next exit
// order number. The max read and the update run in one transaction so
// concurrent eliminations in the same session cannot share a number. A seat
// that already carries an exit order number keeps it: exit order numbers are
// never reused or reassigned.
func (s *Store) EliminateSeat(ctx context.Context, sessionID, playerID string, reason domain.ExitReason) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	playerID = strings.TrimSpace(playerID)
	if sessionID == "" {
		return 0, fmt.Errorf("session id is required")
	}
	if playerID == "" {
		return 0, fmt.Errorf("player id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var existingExit sql.NullInt64
	err = tx.QueryRowContext(
		ctx,
		`SELECT exit_seq FROM seats WHERE session_id = ? AND player_id = ?`,
		sessionID,
		playerID,
	).Scan(&existingExit)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, storage.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("read seat: %w", err)
	}

	var exitSeq uint64
	if existingExit.Valid {
		exitSeq = uint64(existingExit.Int64)
	} else {
		var maxExitSeq int64
		if err := tx.QueryRowContext(
			ctx,
			`SELECT COALESCE(MAX(exit_seq), 0) FROM seats WHERE session_id = ?`,
			sessionID,
		).Scan(&maxExitSeq); err != nil {
			return 0, fmt.Errorf("read max exit seq: %w", err)
		}
		exitSeq = uint64(maxExitSeq) + 1
	}

	if _, err := tx.ExecContext(
		ctx,
		`UPDATE seats
		    SET status = ?, exit_reason = ?, exit_seq = ?
		  WHERE session_id = ? AND player_id = ?`,
		domain.SeatStatusEliminated.String(),
		toNullString(string(reason)),
		int64(exitSeq),
		sessionID,
		playerID,
	); err != nil {
		return 0, fmt.Errorf("eliminate seat: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return exitSeq, nil
}

// SetSeatInGame marks the seat in game. Exit fields are deliberately left
// untouched: exit order numbers are never reused or reassigned.
func (s *Store) SetSeatInGame(ctx context.Context, sessionID, playerID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	playerID = strings.TrimSpace(playerID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if playerID == "" {
		return fmt.Errorf("player id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE seats SET status = ? WHERE session_id = ? AND player_id = ?`,
		domain.SeatStatusInGame.String(),
		sessionID,
		playerID,
	)
	if err != nil {
		return fmt.Errorf("set seat in game: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set seat in game rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanSession(row rowScanner) (domain.Session, error) {
	var session domain.Session
	var tournamentID sql.NullString
	var status string
	var createdAt int64
	var updatedAt int64
	err := row.Scan(
		&session.ID,
		&tournamentID,
		&session.GameNumber,
		&status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Session{}, storage.ErrNotFound
		}
		return domain.Session{}, err
	}
	session.TournamentID = tournamentID.String
	session.Status = domain.ParseSessionStatus(status)
	session.CreatedAt = fromMillis(createdAt)
	session.UpdatedAt = fromMillis(updatedAt)
	return session, nil
}
