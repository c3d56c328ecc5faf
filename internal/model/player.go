package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a registered participant. Players are immutable once
// created; they are owned by the room directory.
type Player struct {
	ID        PlayerID
	FirstName string
	LastName  string
	CreatedAt time.Time
}
