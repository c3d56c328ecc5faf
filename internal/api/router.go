package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarinVandelet/qr-game-backend/internal/api/handler"
	apimiddleware "github.com/MarinVandelet/qr-game-backend/internal/api/middleware"
	"github.com/MarinVandelet/qr-game-backend/internal/middleware"
	"github.com/MarinVandelet/qr-game-backend/internal/services/hunt"
	"github.com/MarinVandelet/qr-game-backend/internal/services/quiz"
	"github.com/MarinVandelet/qr-game-backend/internal/services/room"
	"github.com/MarinVandelet/qr-game-backend/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	RoomController room.ControllerInterface
	QuizController quiz.ControllerInterface
	HuntController hunt.ControllerInterface
	HubManager     *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.RoomController)
	roomHandler := handler.NewRoomHandler(cfg.RoomController)
	quizHandler := handler.NewQuizHandler(cfg.RoomController, cfg.QuizController)
	huntHandler := handler.NewHuntHandler(cfg.RoomController, cfg.HuntController)
	eventsHandler := handler.NewEventsHandler(cfg.RoomController, cfg.HubManager)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{player_id}", playerHandler.Get).Methods(http.MethodGet)

	// Room routes
	api.HandleFunc("/rooms", roomHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}", roomHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{code}/join", roomHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/players", roomHandler.Players).Methods(http.MethodGet)

	// Quiz routes
	api.HandleFunc("/rooms/{code}/quiz/start", quizHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/quiz/answer", quizHandler.Answer).Methods(http.MethodPost)

	// Hunt routes
	api.HandleFunc("/rooms/{code}/hunt/start", huntHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/rooms/{code}/hunt/scan", huntHandler.Scan).Methods(http.MethodPost)
	api.HandleFunc("/hunt/items/{token}/qr.png", huntHandler.ItemQR).Methods(http.MethodGet)

	// Event stream
	api.HandleFunc("/rooms/{code}/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
