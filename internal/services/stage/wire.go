package stage

import (
	"time"

	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/game/service"
	"github.com/tenchairs/stage/internal/game/storage"
)

// Wire types for the JSON API. Field names are stable contract with the
// overlay and console scripts.

type sessionJSON struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournament_id,omitempty"`
	GameNumber   int       `json:"game_number"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type seatJSON struct {
	PlayerID   string  `json:"player_id"`
	Position   int     `json:"position"`
	Role       string  `json:"role,omitempty"`
	Status     string  `json:"status"`
	ExitReason string  `json:"exit_reason,omitempty"`
	ExitSeq    *uint64 `json:"exit_seq,omitempty"`
	Nickname   string  `json:"nickname"`
	PhotoURL   string  `json:"photo_url,omitempty"`
}

type eventJSON struct {
	SessionID       string    `json:"session_id"`
	Seq             uint64    `json:"seq"`
	Type            string    `json:"type"`
	ActorPlayerID   string    `json:"actor_player_id,omitempty"`
	ActorNickname   string    `json:"actor_nickname,omitempty"`
	CheckedPlayerID string    `json:"checked_player_id,omitempty"`
	CheckedNickname string    `json:"checked_nickname,omitempty"`
	Result          string    `json:"result,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type playerJSON struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"external_id,omitempty"`
	Nickname   string    `json:"nickname"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type sessionViewJSON struct {
	Session sessionJSON `json:"session"`
	Seats   []seatJSON  `json:"seats"`
	Events  []eventJSON `json:"events"`
}

type createSessionRequest struct {
	GameNumber   int      `json:"game_number"`
	TournamentID string   `json:"tournament_id"`
	PlayerIDs    []string `json:"player_ids"`
}

type seatRoleRequest struct {
	SessionID string `json:"session_id"`
	PlayerID  string `json:"player_id"`
	Role      string `json:"role"`
}

type seatStatusRequest struct {
	SessionID  string `json:"session_id"`
	PlayerID   string `json:"player_id"`
	Status     string `json:"status"`
	ExitReason string `json:"exit_reason"`
}

type seatStatusResponse struct {
	ExitSeq uint64 `json:"exit_seq,omitempty"`
}

type appendEventRequest struct {
	SessionID       string `json:"session_id"`
	Type            string `json:"type"`
	ActorPlayerID   string `json:"actor_player_id"`
	CheckedPlayerID string `json:"checked_player_id"`
	Result          string `json:"result"`
}

type playerRequest struct {
	Nickname   string `json:"nickname"`
	ExternalID string `json:"external_id"`
	PhotoURL   string `json:"photo_url"`
}

func toSessionJSON(session domain.Session) sessionJSON {
	return sessionJSON{
		ID:           session.ID,
		TournamentID: session.TournamentID,
		GameNumber:   session.GameNumber,
		Status:       session.Status.String(),
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

func toSeatJSON(seat storage.SeatView) seatJSON {
	return seatJSON{
		PlayerID:   seat.Seat.PlayerID,
		Position:   seat.Seat.Position,
		Role:       seat.Seat.Role,
		Status:     seat.Seat.Status.String(),
		ExitReason: string(seat.Seat.ExitReason),
		ExitSeq:    seat.Seat.ExitSeq,
		Nickname:   seat.Nickname,
		PhotoURL:   seat.PhotoURL,
	}
}

func toEventJSON(event storage.EventView) eventJSON {
	return eventJSON{
		SessionID:       event.Event.SessionID,
		Seq:             event.Event.Seq,
		Type:            string(event.Event.Type),
		ActorPlayerID:   event.Event.ActorPlayerID,
		ActorNickname:   event.ActorNickname,
		CheckedPlayerID: event.Event.CheckedPlayerID,
		CheckedNickname: event.CheckedNickname,
		Result:          event.Event.Result,
		CreatedAt:       event.Event.CreatedAt,
	}
}

func toPlayerJSON(player domain.Player) playerJSON {
	return playerJSON{
		ID:         player.ID,
		ExternalID: player.ExternalID,
		Nickname:   player.Nickname,
		PhotoURL:   player.PhotoURL,
		CreatedAt:  player.CreatedAt,
		UpdatedAt:  player.UpdatedAt,
	}
}

func toSessionViewJSON(view service.SessionView) sessionViewJSON {
	seats := make([]seatJSON, 0, len(view.Seats))
	for _, seat := range view.Seats {
		seats = append(seats, toSeatJSON(seat))
	}
	events := make([]eventJSON, 0, len(view.Events))
	for _, event := range view.Events {
		events = append(events, toEventJSON(event))
	}
	return sessionViewJSON{
		Session: toSessionJSON(view.Session),
		Seats:   seats,
		Events:  events,
	}
}
