package room

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/MarinVandelet/qr-game-backend/internal/dependencies/clock"
	"github.com/MarinVandelet/qr-game-backend/internal/dependencies/random"
	"github.com/MarinVandelet/qr-game-backend/internal/model"
	"github.com/MarinVandelet/qr-game-backend/internal/storage"
)

const (
	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 5
	// RoomCodeAlphabet is the characters used in room codes (avoid confusing chars)
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller manages player registration, rooms, and membership
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
	}
}

// RegisterPlayer creates a new player with a fresh ID
func (c *Controller) RegisterPlayer(ctx context.Context, firstName, lastName string) (*model.Player, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" {
		return nil, model.ErrInvalidPlayerName
	}

	player := &model.Player{
		ID:        model.PlayerID(uuid.NewString()),
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: c.clock.Now(),
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// GetPlayer retrieves a player by ID
func (c *Controller) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return c.storage.GetPlayer(ctx, id)
}

// CreateRoom creates a new room owned by the given player, who becomes its
// first member
func (c *Controller) CreateRoom(ctx context.Context, ownerID model.PlayerID) (*model.Room, error) {
	owner, err := c.storage.GetPlayer(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()

	// Generate unique room code
	var code model.RoomCode
	for {
		code = model.RoomCode(c.random.String(RoomCodeLength, RoomCodeAlphabet))
		exists, err := c.storage.RoomCodeExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	room := &model.Room{
		ID:        model.RoomID(uuid.NewString()),
		Code:      code,
		OwnerID:   owner.ID,
		CreatedAt: now,
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	member := model.RoomMember{
		Player:   *owner,
		IsOwner:  true,
		JoinedAt: now,
	}
	if err := c.storage.AddRoomMember(ctx, room.ID, member); err != nil {
		return nil, err
	}

	return room, nil
}

// GetRoom retrieves a room by code. Codes are matched case-insensitively.
func (c *Controller) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	return c.storage.GetRoomByCode(ctx, normalizeCode(code))
}

// JoinRoom adds a player to a room. Joining a room the player is already a
// member of succeeds without effect.
func (c *Controller) JoinRoom(ctx context.Context, code model.RoomCode, playerID model.PlayerID) (*model.Room, error) {
	room, err := c.storage.GetRoomByCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, err
	}

	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	member := model.RoomMember{
		Player:   *player,
		IsOwner:  player.ID == room.OwnerID,
		JoinedAt: c.clock.Now(),
	}
	if err := c.storage.AddRoomMember(ctx, room.ID, member); err != nil {
		return nil, err
	}

	return room, nil
}

// Roster returns a room's members in join order, owner first
func (c *Controller) Roster(ctx context.Context, code model.RoomCode) ([]model.RoomMember, error) {
	room, err := c.storage.GetRoomByCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, err
	}
	return c.storage.ListRoomMembers(ctx, room.ID)
}

// Players returns a room's members as a plain player list in join order
func (c *Controller) Players(ctx context.Context, code model.RoomCode) ([]model.Player, error) {
	members, err := c.Roster(ctx, code)
	if err != nil {
		return nil, err
	}

	players := make([]model.Player, len(members))
	for i, m := range members {
		players[i] = m.Player
	}
	return players, nil
}

func normalizeCode(code model.RoomCode) model.RoomCode {
	return model.RoomCode(strings.ToUpper(string(code)))
}

// Interface for dependency injection
type ControllerInterface interface {
	RegisterPlayer(ctx context.Context, firstName, lastName string) (*model.Player, error)
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	CreateRoom(ctx context.Context, ownerID model.PlayerID) (*model.Room, error)
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	JoinRoom(ctx context.Context, code model.RoomCode, playerID model.PlayerID) (*model.Room, error)
	Roster(ctx context.Context, code model.RoomCode) ([]model.RoomMember, error)
	Players(ctx context.Context, code model.RoomCode) ([]model.Player, error)
}

var _ ControllerInterface = (*Controller)(nil)
