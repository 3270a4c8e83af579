package service

import (
	"context"

	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/game/storage"
)

type fakePlayerStore struct {
	created     []domain.Player
	createErr   error
	getPlayer   domain.Player
	getErr      error
	updated     []domain.Player
	updateErr   error
	listPlayers []domain.Player
	listErr     error
}

func (f *fakePlayerStore) CreatePlayer(ctx context.Context, player domain.Player) error {
	f.created = append(f.created, player)
	return f.createErr
}

func (f *fakePlayerStore) GetPlayer(ctx context.Context, id string) (domain.Player, error) {
	return f.getPlayer, f.getErr
}

func (f *fakePlayerStore) UpdatePlayer(ctx context.Context, player domain.Player) error {
	f.updated = append(f.updated, player)
	return f.updateErr
}

func (f *fakePlayerStore) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	return f.listPlayers, f.listErr
}

type fakeSessionStore struct {
	createdSession domain.Session
	createdSeats   []string
	createErr      error

	getSession domain.Session
	getErr     error

	activeSession domain.Session
	activeErr     error

	seats    []storage.SeatView
	seatsErr error

	roleSessionID string
	rolePlayerID  string
	role          string
	roleErr       error

	exitSeq         uint64
	eliminateErr    error
	eliminatedSeats []string

	inGameSeats []string
	inGameErr   error
}

func (f *fakeSessionStore) CreateSessionWithSeats(ctx context.Context, session domain.Session, playerIDs []string) error {
	f.createdSession = session
	f.createdSeats = append([]string(nil), playerIDs...)
	return f.createErr
}

func (f *fakeSessionStore) GetSession(ctx context.Context, id string) (domain.Session, error) {
	return f.getSession, f.getErr
}

func (f *fakeSessionStore) GetActiveSession(ctx context.Context) (domain.Session, error) {
	return f.activeSession, f.activeErr
}

func (f *fakeSessionStore) ListSeats(ctx context.Context, sessionID string) ([]storage.SeatView, error) {
	return f.seats, f.seatsErr
}

func (f *fakeSessionStore) SetSeatRole(ctx context.Context, sessionID, playerID, role string) error {
	f.roleSessionID = sessionID
	f.rolePlayerID = playerID
	f.role = role
	return f.roleErr
}

func (f *fakeSessionStore) EliminateSeat(ctx context.Context, sessionID, playerID string, reason domain.ExitReason) (uint64, error) {
	f.eliminatedSeats = append(f.eliminatedSeats, playerID)
	return f.exitSeq, f.eliminateErr
}

func (f *fakeSessionStore) SetSeatInGame(ctx context.Context, sessionID, playerID string) error {
	f.inGameSeats = append(f.inGameSeats, playerID)
	return f.inGameErr
}

type fakeEventStore struct {
	appended  []domain.Event
	appendSeq uint64
	appendErr error

	events  []storage.EventView
	listErr error

	deletedSessions []string
	deleteErr       error
}

func (f *fakeEventStore) AppendEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	f.appended = append(f.appended, event)
	event.Seq = f.appendSeq
	return event, f.appendErr
}

func (f *fakeEventStore) ListEvents(ctx context.Context, sessionID string) ([]storage.EventView, error) {
	return f.events, f.listErr
}

func (f *fakeEventStore) DeleteLastEvent(ctx context.Context, sessionID string) error {
	f.deletedSessions = append(f.deletedSessions, sessionID)
	return f.deleteErr
}
