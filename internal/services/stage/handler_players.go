package stage

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/services/stage/routepath"
)

func (h *Handler) handlePlayers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listPlayers(w, r)
	case http.MethodPost:
		h.registerPlayer(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) listPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.players.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	payload := make([]playerJSON, 0, len(players))
	for _, player := range players {
		payload = append(payload, toPlayerJSON(player))
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) registerPlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	player, err := h.players.Register(r.Context(), domain.CreatePlayerInput{
		Nickname:   req.Nickname,
		ExternalID: req.ExternalID,
		PhotoURL:   req.PhotoURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPlayerJSON(player))
}

func (h *Handler) handlePlayerRoutes(w http.ResponseWriter, r *http.Request) {
	playerID := playerIDFromPath(r.URL.Path)
	if playerID == "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		player, err := h.players.Get(r.Context(), playerID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPlayerJSON(player))
	case http.MethodPut:
		var req playerRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		player, err := h.players.Update(r.Context(), playerID, req.Nickname, req.PhotoURL)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPlayerJSON(player))
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func playerIDFromPath(path string) string {
	rest := strings.TrimPrefix(path, routepath.APIPlayersPrefix)
	if rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	playerID, err := url.PathUnescape(rest)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(playerID)
}
