package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/game/storage"
)

// AppendEvent stamps the session's next sequence number and inserts the
// event. The max read and the insert run in one transaction so concurrent
// appends against the same session cannot share a number.
func (s *Store) AppendEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return domain.Event{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Event{}, fmt.Errorf("storage is not configured")
	}
	event.SessionID = strings.TrimSpace(event.SessionID)
	if event.SessionID == "" {
		return domain.Event{}, fmt.Errorf("session id is required")
	}
	if !event.Type.IsValid() {
		return domain.Event{}, fmt.Errorf("event type %q is not supported", event.Type)
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	event.CreatedAt = event.CreatedAt.UTC().Truncate(time.Millisecond)

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return domain.Event{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var maxSeq int64
	if err := tx.QueryRowContext(
		ctx,
		`SELECT COALESCE(MAX(seq), 0) FROM events WHERE session_id = ?`,
		event.SessionID,
	).Scan(&maxSeq); err != nil {
		return domain.Event{}, fmt.Errorf("read max event seq: %w", err)
	}
	event.Seq = uint64(maxSeq) + 1

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO events (session_id, seq, event_type, actor_player_id, checked_player_id, result, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.SessionID,
		int64(event.Seq),
		string(event.Type),
		toNullString(event.ActorPlayerID),
		toNullString(event.CheckedPlayerID),
		strings.TrimSpace(event.Result),
		toMillis(event.CreatedAt),
	); err != nil {
		if isForeignKeyViolation(err) {
			return domain.Event{}, fmt.Errorf("append event: %w", storage.ErrNotFound)
		}
		return domain.Event{}, fmt.Errorf("append event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Event{}, fmt.Errorf("commit: %w", err)
	}
	return event, nil
}

// ListEvents returns the session's event log joined with the referenced
// players' nicknames, ordered by sequence.
func (s *Store) ListEvents(ctx context.Context, sessionID string) ([]storage.EventView, error) {
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
		`SELECT e.session_id, e.seq, e.event_type, e.actor_player_id, e.checked_player_id,
		        e.result, e.created_at,
		        COALESCE(actor.nickname, ''), COALESCE(checked.nickname, '')
		   FROM events e
		   LEFT JOIN players actor ON actor.id = e.actor_player_id
		   LEFT JOIN players checked ON checked.id = e.checked_player_id
		  WHERE e.session_id = ?
		  ORDER BY e.seq ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []storage.EventView
	for rows.Next() {
		var view storage.EventView
		var seq int64
		var eventType string
		var actorPlayerID sql.NullString
		var checkedPlayerID sql.NullString
		var createdAt int64
		if err := rows.Scan(
			&view.Event.SessionID,
			&seq,
			&eventType,
			&actorPlayerID,
			&checkedPlayerID,
			&view.Event.Result,
			&createdAt,
			&view.ActorNickname,
			&view.CheckedNickname,
		); err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		view.Event.Seq = uint64(seq)
		view.Event.Type = domain.EventType(eventType)
		view.Event.ActorPlayerID = actorPlayerID.String
		view.Event.CheckedPlayerID = checkedPlayerID.String
		view.Event.CreatedAt = fromMillis(createdAt)
		events = append(events, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// DeleteLastEvent removes the event holding the session's current maximum
// sequence number. Deleting from an empty ledger is a no-op, not an error,
// so the remaining numbering stays contiguous from 1.
func (s *Store) DeleteLastEvent(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM events
		  WHERE session_id = ?
		    AND seq = (SELECT MAX(seq) FROM events WHERE session_id = ?)`,
		sessionID,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("delete last event: %w", err)
	}
	return nil
}
