package routepath

import "testing"

func TestTopLevelRoutes(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Admin != "/admin" {
		t.Fatalf("Admin = %q", Admin)
	}
	if Roster != "/roster" {
		t.Fatalf("Roster = %q", Roster)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
	if APIGameActive != "/api/game/active" {
		t.Fatalf("APIGameActive = %q", APIGameActive)
	}
	if APISessions != "/api/sessions" {
		t.Fatalf("APISessions = %q", APISessions)
	}
	if APISeatRole != "/api/seats/role" {
		t.Fatalf("APISeatRole = %q", APISeatRole)
	}
	if APISeatStatus != "/api/seats/status" {
		t.Fatalf("APISeatStatus = %q", APISeatStatus)
	}
	if APIEvents != "/api/events" {
		t.Fatalf("APIEvents = %q", APIEvents)
	}
}

func TestPlayerEscapesSegment(t *testing.T) {
	t.Parallel()

	if got := Player("player-1"); got != "/api/players/player-1" {
		t.Fatalf("Player = %q", got)
	}
	if got := Player(" p/1 "); got != "/api/players/p%2F1" {
		t.Fatalf("Player with slash = %q", got)
	}
}
