package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/game/storage"
)

func TestPlayerRegistryRegister(t *testing.T) {
	t.Parallel()

	players := &fakePlayerStore{}
	registry := NewPlayerRegistry(Stores{Players: players})
	registry.clock = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	registry.idGenerator = func() (string, error) { return "player-1", nil }

	player, err := registry.Register(context.Background(), domain.CreatePlayerInput{
		Nickname: " Ada ",
		PhotoURL: "https://example.com/ada.png",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if player.ID != "player-1" {
		t.Fatalf("id = %q, want player-1", player.ID)
	}
	if player.Nickname != "Ada" {
		t.Fatalf("nickname = %q, want Ada", player.Nickname)
	}
	if len(players.created) != 1 {
		t.Fatal("expected one create call")
	}
	if !players.created[0].CreatedAt.Equal(players.created[0].UpdatedAt) {
		t.Fatal("created and updated timestamps must match on registration")
	}
}

func TestPlayerRegistryRegisterRequiresNickname(t *testing.T) {
	t.Parallel()

	players := &fakePlayerStore{}
	registry := NewPlayerRegistry(Stores{Players: players})

	_, err := registry.Register(context.Background(), domain.CreatePlayerInput{Nickname: "   "})
	if !errors.Is(err, domain.ErrEmptyNickname) {
		t.Fatalf("error = %v, want %v", err, domain.ErrEmptyNickname)
	}
	if len(players.created) != 0 {
		t.Fatal("store must not be called on validation failure")
	}
}

func TestPlayerRegistryUpdate(t *testing.T) {
	t.Parallel()

	players := &fakePlayerStore{
		getPlayer: domain.Player{ID: "player-1", Nickname: "Ada", PhotoURL: "old.png"},
	}
	registry := NewPlayerRegistry(Stores{Players: players})
	frozen := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	registry.clock = func() time.Time { return frozen }

	player, err := registry.Update(context.Background(), "player-1", " Grace ", " new.png ")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if player.Nickname != "Grace" || player.PhotoURL != "new.png" {
		t.Fatalf("player = %+v, want trimmed nickname and photo", player)
	}
	if !player.UpdatedAt.Equal(frozen) {
		t.Fatalf("updated at = %v, want %v", player.UpdatedAt, frozen)
	}
	if len(players.updated) != 1 {
		t.Fatal("expected one update call")
	}
}

func TestPlayerRegistryUpdateNotFoundPassthrough(t *testing.T) {
	t.Parallel()

	players := &fakePlayerStore{getErr: storage.ErrNotFound}
	registry := NewPlayerRegistry(Stores{Players: players})

	_, err := registry.Update(context.Background(), "player-1", "Grace", "")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want %v", err, storage.ErrNotFound)
	}
	if len(players.updated) != 0 {
		t.Fatal("update must not be called when the player is missing")
	}
}

func TestPlayerRegistryUpdateValidation(t *testing.T) {
	t.Parallel()

	registry := NewPlayerRegistry(Stores{Players: &fakePlayerStore{}})

	if _, err := registry.Update(context.Background(), " ", "Grace", ""); !errors.Is(err, domain.ErrEmptyPlayerID) {
		t.Fatalf("error = %v, want %v", err, domain.ErrEmptyPlayerID)
	}
	if _, err := registry.Update(context.Background(), "player-1", "", ""); !errors.Is(err, domain.ErrEmptyNickname) {
		t.Fatalf("error = %v, want %v", err, domain.ErrEmptyNickname)
	}
}

func TestPlayerRegistryGetRequiresID(t *testing.T) {
	t.Parallel()

	registry := NewPlayerRegistry(Stores{Players: &fakePlayerStore{}})

	if _, err := registry.Get(context.Background(), ""); !errors.Is(err, domain.ErrEmptyPlayerID) {
		t.Fatalf("error = %v, want %v", err, domain.ErrEmptyPlayerID)
	}
}

func TestPlayerRegistryList(t *testing.T) {
	t.Parallel()

	players := &fakePlayerStore{
		listPlayers: []domain.Player{
			{ID: "player-1", Nickname: "Ada"},
			{ID: "player-2", Nickname: "Grace"},
		},
	}
	registry := NewPlayerRegistry(Stores{Players: players})

	list, err := registry.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
}
