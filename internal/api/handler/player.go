package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarinVandelet/qr-game-backend/internal/api/request"
	"github.com/MarinVandelet/qr-game-backend/internal/api/response"
	"github.com/MarinVandelet/qr-game-backend/internal/model"
	"github.com/MarinVandelet/qr-game-backend/internal/services/room"
)

// PlayerHandler handles player registration endpoints
type PlayerHandler struct {
	roomController room.ControllerInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(roomController room.ControllerInterface) *PlayerHandler {
	return &PlayerHandler{roomController: roomController}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.roomController.RegisterPlayer(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Get handles GET /api/v1/players/{player_id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	player, err := h.roomController.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
