package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInvalidPlayerName = errors.New("player first name must not be empty")

	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomEmpty    = errors.New("room has no members")

	// Content errors
	ErrNoQuestions  = errors.New("quiz content set is empty")
	ErrNoHuntItems  = errors.New("hunt content set is empty")
	ErrItemNotFound = errors.New("hunt item not found")
)
