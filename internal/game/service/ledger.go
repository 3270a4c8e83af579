package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tenchairs/stage/internal/game/domain"
)

// EventLedger owns the append-only, per-session ordered log of game
// actions. The only mutation besides append is removing the most recent
// entry.
type EventLedger struct {
	stores Stores
	clock  func() time.Time
}

// NewEventLedger creates an EventLedger with default dependencies.
func NewEventLedger(stores Stores) *EventLedger {
	return &EventLedger{
		stores: stores,
		clock:  time.Now,
	}
}

// Append records a game action and returns it with its sequence number
// stamped. Player references are accepted as given; the operator console
// owns game-rule discipline.
func (l *EventLedger) Append(ctx context.Context, input domain.AppendEventInput) (domain.Event, error) {
	if l == nil || l.stores.Events == nil {
		return domain.Event{}, fmt.Errorf("event store is not configured")
	}

	normalized, err := domain.NormalizeAppendEventInput(input)
	if err != nil {
		return domain.Event{}, err
	}

	event, err := l.stores.Events.AppendEvent(ctx, domain.Event{
		SessionID:       normalized.SessionID,
		Type:            normalized.Type,
		ActorPlayerID:   normalized.ActorPlayerID,
		CheckedPlayerID: normalized.CheckedPlayerID,
		Result:          normalized.Result,
		CreatedAt:       l.clock().UTC(),
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("append event: %w", err)
	}
	return event, nil
}

// DeleteLast removes the most recent event of the session. Calling it on a
// session with no events is a no-op.
func (l *EventLedger) DeleteLast(ctx context.Context, sessionID string) error {
	if l == nil || l.stores.Events == nil {
		return fmt.Errorf("event store is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return domain.ErrEmptySessionID
	}
	if err := l.stores.Events.DeleteLastEvent(ctx, sessionID); err != nil {
		return fmt.Errorf("delete last event: %w", err)
	}
	return nil
}
