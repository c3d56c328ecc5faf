package storage

import (
	"context"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
)

// Storage defines the interface for the room directory: durable players,
// rooms, and room membership. Ephemeral game state never passes through
// here; it lives in the session store.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)

	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	GetRoomByCode(ctx context.Context, code model.RoomCode) (*model.Room, error)
	RoomCodeExists(ctx context.Context, code model.RoomCode) (bool, error)
	DeleteRoom(ctx context.Context, code model.RoomCode) error

	// Membership operations. AddRoomMember is a no-op when the player is
	// already a member; ListRoomMembers returns members in join order.
	AddRoomMember(ctx context.Context, roomID model.RoomID, member model.RoomMember) error
	ListRoomMembers(ctx context.Context, roomID model.RoomID) ([]model.RoomMember, error)
}
