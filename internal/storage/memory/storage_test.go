package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "player-1",
		FirstName: "Alice",
		LastName:  "Martin",
		CreatedAt: time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.FirstName, retrieved.FirstName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Room tests

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := &model.Room{
		ID:        "room-1",
		Code:      "ABCDE",
		OwnerID:   "player-1",
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveRoom(s.ctx, room)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRoomByCode(s.ctx, "ABCDE")
	s.Require().NoError(err)
	s.Equal(room.ID, retrieved.ID)
	s.Equal(room.OwnerID, retrieved.OwnerID)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoomByCode(s.ctx, "NOPE1")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomCodeExists() {
	exists, err := s.storage.RoomCodeExists(s.ctx, "ABCDE")
	s.Require().NoError(err)
	s.False(exists)

	err = s.storage.SaveRoom(s.ctx, &model.Room{ID: "room-1", Code: "ABCDE"})
	s.Require().NoError(err)

	exists, err = s.storage.RoomCodeExists(s.ctx, "ABCDE")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestDeleteRoomRemovesMembers() {
	room := &model.Room{ID: "room-1", Code: "ABCDE"}
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	member := model.RoomMember{Player: model.Player{ID: "player-1"}, IsOwner: true}
	s.Require().NoError(s.storage.AddRoomMember(s.ctx, room.ID, member))

	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "ABCDE"))

	_, err := s.storage.GetRoomByCode(s.ctx, "ABCDE")
	s.ErrorIs(err, model.ErrRoomNotFound)

	members, err := s.storage.ListRoomMembers(s.ctx, room.ID)
	s.Require().NoError(err)
	s.Empty(members)
}

// Membership tests

func (s *StorageSuite) TestAddRoomMemberPreservesJoinOrder() {
	roomID := model.RoomID("room-1")

	for _, id := range []string{"a", "b", "c"} {
		member := model.RoomMember{Player: model.Player{ID: model.PlayerID(id)}}
		s.Require().NoError(s.storage.AddRoomMember(s.ctx, roomID, member))
	}

	members, err := s.storage.ListRoomMembers(s.ctx, roomID)
	s.Require().NoError(err)
	s.Require().Len(members, 3)
	s.Equal(model.PlayerID("a"), members[0].Player.ID)
	s.Equal(model.PlayerID("b"), members[1].Player.ID)
	s.Equal(model.PlayerID("c"), members[2].Player.ID)
}

func (s *StorageSuite) TestAddRoomMemberIsIdempotent() {
	roomID := model.RoomID("room-1")
	member := model.RoomMember{Player: model.Player{ID: "player-1"}}

	s.Require().NoError(s.storage.AddRoomMember(s.ctx, roomID, member))
	s.Require().NoError(s.storage.AddRoomMember(s.ctx, roomID, member))

	members, err := s.storage.ListRoomMembers(s.ctx, roomID)
	s.Require().NoError(err)
	s.Len(members, 1)
}

func (s *StorageSuite) TestListRoomMembersEmptyRoom() {
	members, err := s.storage.ListRoomMembers(s.ctx, "no-such-room")
	s.Require().NoError(err)
	s.Empty(members)
}
