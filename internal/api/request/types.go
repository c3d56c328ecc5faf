package request

// CreatePlayerRequest is the request body for registering a player
type CreatePlayerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreateRoomRequest is the request body for creating a room
type CreateRoomRequest struct {
	PlayerID string `json:"player_id"`
}

// JoinRoomRequest is the request body for joining a room
type JoinRoomRequest struct {
	PlayerID string `json:"player_id"`
}

// SubmitAnswerRequest is the request body for submitting a quiz answer
type SubmitAnswerRequest struct {
	PlayerID    string `json:"player_id"`
	ChosenIndex *int   `json:"chosen_index"`
}

// ScanRequest is the request body for validating a hunt scan
type ScanRequest struct {
	PlayerID string `json:"player_id"`
	Token    string `json:"token"`
}
