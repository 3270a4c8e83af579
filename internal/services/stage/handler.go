package stage

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tenchairs/stage/internal/game/domain"
	"github.com/tenchairs/stage/internal/game/service"
	"github.com/tenchairs/stage/internal/game/storage"
	"github.com/tenchairs/stage/internal/services/stage/routepath"
	"github.com/tenchairs/stage/internal/services/stage/static"
	"github.com/tenchairs/stage/internal/services/stage/transport/httpmux"
)

// Handler routes overlay, console, and API requests to the game services.
type Handler struct {
	sessions *service.SessionManager
	ledger   *service.EventLedger
	players  *service.PlayerRegistry
	mux      *http.ServeMux
}

// NewHandler builds the stage HTTP handler over the given services.
func NewHandler(sessions *service.SessionManager, ledger *service.EventLedger, players *service.PlayerRegistry) *Handler {
	h := &Handler{
		sessions: sessions,
		ledger:   ledger,
		players:  players,
	}

	stageMux := http.NewServeMux()
	stageMux.Handle(routepath.Root, http.HandlerFunc(h.handleOverlayPage))
	stageMux.Handle(routepath.Admin, http.HandlerFunc(h.handleAdminPage))
	stageMux.Handle(routepath.Roster, http.HandlerFunc(h.handleRosterPage))
	stageMux.Handle(routepath.APIGameActive, http.HandlerFunc(h.handleActiveGame))
	stageMux.Handle(routepath.APISessions, http.HandlerFunc(h.handleSessions))
	stageMux.Handle(routepath.APISeatRole, http.HandlerFunc(h.handleSeatRole))
	stageMux.Handle(routepath.APISeatStatus, http.HandlerFunc(h.handleSeatStatus))
	stageMux.Handle(routepath.APIEvents, http.HandlerFunc(h.handleEvents))
	stageMux.Handle(routepath.APIPlayers, http.HandlerFunc(h.handlePlayers))
	stageMux.Handle(routepath.APIPlayersPrefix, http.HandlerFunc(h.handlePlayerRoutes))

	rootMux := http.NewServeMux()
	httpmux.MountStatic(rootMux, static.FS)
	httpmux.MountStageRoutes(rootMux, stageMux)
	h.mux = rootMux
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleOverlayPage(w http.ResponseWriter, r *http.Request) {
	// The root pattern catches every unmatched path.
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	servePage(w, r, "overlay.html")
}

func (h *Handler) handleAdminPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "admin.html")
}

func (h *Handler) handleRosterPage(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "roster.html")
}

func servePage(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	http.ServeFileFS(w, r, static.FS, name)
}

func (h *Handler) handleActiveGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	view, err := h.sessions.Active(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionViewJSON(view))
}

func (h *Handler) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req createSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	session, err := h.sessions.Create(r.Context(), domain.CreateSessionInput{
		GameNumber:   req.GameNumber,
		TournamentID: req.TournamentID,
		PlayerIDs:    req.PlayerIDs,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionJSON(session))
}

func (h *Handler) handleSeatRole(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req seatRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.sessions.SetSeatRole(r.Context(), req.SessionID, req.PlayerID, req.Role); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (h *Handler) handleSeatStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req seatStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status := domain.ParseSeatStatus(req.Status)
	exitSeq, err := h.sessions.SetSeatStatus(r.Context(), req.SessionID, req.PlayerID, status, domain.ExitReason(req.ExitReason))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seatStatusResponse{ExitSeq: exitSeq})
}

func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.appendEvent(w, r)
	case http.MethodDelete:
		h.deleteLastEvent(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) appendEvent(w http.ResponseWriter, r *http.Request) {
	var req appendEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	event, err := h.ledger.Append(r.Context(), domain.AppendEventInput{
		SessionID:       req.SessionID,
		Type:            domain.EventType(req.Type),
		ActorPlayerID:   req.ActorPlayerID,
		CheckedPlayerID: req.CheckedPlayerID,
		Result:          req.Result,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventJSON(storage.EventView{Event: event}))
}

func (h *Handler) deleteLastEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.DeleteLast(r.Context(), r.URL.Query().Get("session_id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

type errorResponse struct {
	Error string `json:"error"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
}

// statusForError maps service errors to HTTP statuses: missing records to
// 404, uniqueness conflicts to 409, input validation to 400, the rest to
// 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		return http.StatusConflict
	case isValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	validation := []error{
		domain.ErrSeatCount,
		domain.ErrDuplicatePlayer,
		domain.ErrInvalidGameNumber,
		domain.ErrEmptyNickname,
		domain.ErrEmptyPlayerID,
		domain.ErrEmptySessionID,
		domain.ErrInvalidSeatStatus,
		domain.ErrInvalidExitReason,
		domain.ErrInvalidEventType,
	}
	for _, sentinel := range validation {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
