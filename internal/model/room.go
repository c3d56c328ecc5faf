package model

import "time"

// RoomID uniquely identifies a room
type RoomID string

// RoomCode is the short human-readable join code for a room.
// Codes are case-insensitive; the canonical form is upper case.
type RoomCode string

// Room represents a joinable game session
type Room struct {
	ID        RoomID
	Code      RoomCode
	OwnerID   PlayerID
	CreatedAt time.Time
}

// RoomMember records a player's membership in a room
type RoomMember struct {
	Player   Player
	IsOwner  bool
	JoinedAt time.Time
}
