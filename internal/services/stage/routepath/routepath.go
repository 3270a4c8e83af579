// Package routepath centralizes the stage service's route constants so
// handlers, pages, and tests agree on the URL space.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root   = "/"
	Admin  = "/admin"
	Roster = "/roster"
)

const (
	StaticPrefix = "/static/"
)

const (
	APIGameActive = "/api/game/active"
	APISessions   = "/api/sessions"
	APISeatRole   = "/api/seats/role"
	APISeatStatus = "/api/seats/status"
	APIEvents     = "/api/events"
)

const (
	APIPlayers       = "/api/players"
	APIPlayersPrefix = "/api/players/"
)

// Player returns the API path for one player.
func Player(playerID string) string {
	return APIPlayers + "/" + escapeSegment(playerID)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
