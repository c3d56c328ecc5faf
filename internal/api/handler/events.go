package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
	"github.com/MarinVandelet/qr-game-backend/internal/services/room"
	"github.com/MarinVandelet/qr-game-backend/internal/sse"
)

// EventsHandler handles the per-room event stream endpoint
type EventsHandler struct {
	roomController room.ControllerInterface
	hubManager     *sse.HubManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(roomController room.ControllerInterface, hubManager *sse.HubManager) *EventsHandler {
	return &EventsHandler{
		roomController: roomController,
		hubManager:     hubManager,
	}
}

// Stream handles GET /api/v1/rooms/{code}/events
// The optional player_id query parameter tags the connection in logs.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	found, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	playerID := model.PlayerID(r.URL.Query().Get("player_id"))
	hub := h.hubManager.GetOrCreateHub(found.Code)
	sse.ServeSSE(w, r, hub, playerID)
}
