package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
)

// Broadcaster publishes named game events with JSON payloads to every
// subscriber of a room. It satisfies the Publisher interfaces of the quiz
// and hunt controllers.
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish marshals payload and broadcasts it under the event name to all
// current subscribers of the room. Rooms without a hub (no subscribers
// yet) are skipped silently.
func (b *Broadcaster) Publish(roomCode model.RoomCode, event model.EventName, payload any) {
	hub := b.hubManager.GetHub(roomCode)
	if hub == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error("failed to marshal event payload",
			slog.String("room", string(roomCode)),
			slog.String("event", string(event)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(event), string(data))
}
