package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/MarinVandelet/qr-game-backend/internal/api/request"
	"github.com/MarinVandelet/qr-game-backend/internal/api/response"
	"github.com/MarinVandelet/qr-game-backend/internal/model"
	"github.com/MarinVandelet/qr-game-backend/internal/services/hunt"
	"github.com/MarinVandelet/qr-game-backend/internal/services/room"
)

// qrImageSize is the pixel width of generated QR code images
const qrImageSize = 256

// HuntHandler handles scavenger hunt endpoints
type HuntHandler struct {
	roomController room.ControllerInterface
	huntController hunt.ControllerInterface
}

// NewHuntHandler creates a new hunt handler
func NewHuntHandler(roomController room.ControllerInterface, huntController hunt.ControllerInterface) *HuntHandler {
	return &HuntHandler{
		roomController: roomController,
		huntController: huntController,
	}
}

// Start handles POST /api/v1/rooms/{code}/hunt/start
func (h *HuntHandler) Start(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	found, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.roomController.Players(r.Context(), found.Code)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.huntController.StartHunt(r.Context(), found.Code, players); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

// Scan handles POST /api/v1/rooms/{code}/hunt/scan
func (h *HuntHandler) Scan(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Token == "" {
		WriteError(w, NewInvalidRequestError("token is required"))
		return
	}

	found, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	result := h.huntController.ValidateScan(r.Context(), found.Code, model.PlayerID(req.PlayerID), req.Token)
	response.JSON(w, http.StatusOK, response.ScanResultFromService(result))
}

// ItemQR handles GET /api/v1/hunt/items/{token}/qr.png
func (h *HuntHandler) ItemQR(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	item, err := h.huntController.Item(token)
	if err != nil {
		WriteError(w, err)
		return
	}

	png, err := qrcode.Encode(item.Token, qrcode.Medium, qrImageSize)
	if err != nil {
		WriteError(w, NewInternalError())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
