package redis

import (
	"fmt"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "qrgame"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// roomKey returns the Redis key for a Room, keyed by join code
func roomKey(code model.RoomCode) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, code)
}

// membersKey returns the Redis key for a room's member list
func membersKey(roomID model.RoomID) string {
	return fmt.Sprintf("%s:members:%s", keyPrefix, roomID)
}
