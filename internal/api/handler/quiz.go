package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarinVandelet/qr-game-backend/internal/api/request"
	"github.com/MarinVandelet/qr-game-backend/internal/api/response"
	"github.com/MarinVandelet/qr-game-backend/internal/model"
	"github.com/MarinVandelet/qr-game-backend/internal/services/quiz"
	"github.com/MarinVandelet/qr-game-backend/internal/services/room"
)

// QuizHandler handles quiz endpoints
type QuizHandler struct {
	roomController room.ControllerInterface
	quizController quiz.ControllerInterface
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(roomController room.ControllerInterface, quizController quiz.ControllerInterface) *QuizHandler {
	return &QuizHandler{
		roomController: roomController,
		quizController: quizController,
	}
}

// Start handles POST /api/v1/rooms/{code}/quiz/start
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
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

	if err := h.quizController.StartQuiz(r.Context(), found.Code, players); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

// Answer handles POST /api/v1/rooms/{code}/quiz/answer
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	code := model.RoomCode(mux.Vars(r)["code"])

	var req request.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.ChosenIndex == nil {
		WriteError(w, NewInvalidRequestError("chosen_index is required"))
		return
	}

	found, err := h.roomController.GetRoom(r.Context(), code)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.quizController.SubmitAnswer(r.Context(), found.Code, model.PlayerID(req.PlayerID), *req.ChosenIndex); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
