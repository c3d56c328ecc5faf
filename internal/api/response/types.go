package response

import (
	"time"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
	"github.com/MarinVandelet/qr-game-backend/internal/services/hunt"
)

// Player represents a player in API responses
type Player struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
	}
}

// Room represents a room in API responses
type Room struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomFromModel converts a model.Room to a response Room
func RoomFromModel(r *model.Room) Room {
	return Room{
		ID:        string(r.ID),
		Code:      string(r.Code),
		OwnerID:   string(r.OwnerID),
		CreatedAt: r.CreatedAt,
	}
}

// RoomMember represents a room member
type RoomMember struct {
	Player   Player    `json:"player"`
	IsOwner  bool      `json:"is_owner"`
	JoinedAt time.Time `json:"joined_at"`
}

// RoomMemberFromModel converts a model.RoomMember
func RoomMemberFromModel(m model.RoomMember) RoomMember {
	return RoomMember{
		Player:   PlayerFromModel(&m.Player),
		IsOwner:  m.IsOwner,
		JoinedAt: m.JoinedAt,
	}
}

// Roster is the member list of a room
type Roster struct {
	Members []RoomMember `json:"members"`
}

// RosterFromModel converts a member list
func RosterFromModel(members []model.RoomMember) Roster {
	out := make([]RoomMember, len(members))
	for i, m := range members {
		out[i] = RoomMemberFromModel(m)
	}
	return Roster{Members: out}
}

// ScanResult reports the outcome of a hunt scan attempt
type ScanResult struct {
	Success  bool     `json:"success"`
	Status   string   `json:"status"`
	Message  string   `json:"message"`
	Found    []string `json:"found"`
	Progress int      `json:"progress"`
	Total    int      `json:"total"`

	NextPlayerID   string `json:"next_player_id,omitempty"`
	NextPlayerName string `json:"next_player_name,omitempty"`
	Hint           string `json:"hint,omitempty"`
}

var scanMessages = map[hunt.ScanStatus]string{
	hunt.ScanOK:              "item found",
	hunt.ScanNotStarted:      "no hunt in progress",
	hunt.ScanAlreadyComplete: "the hunt is already complete",
	hunt.ScanWrongItem:       "that is not the item to find right now",
	hunt.ScanWrongTurn:       "it is not your turn to scan",
}

// ScanResultFromService converts a hunt.ScanResult
func ScanResultFromService(r hunt.ScanResult) ScanResult {
	return ScanResult{
		Success:        r.Status == hunt.ScanOK,
		Status:         string(r.Status),
		Message:        scanMessages[r.Status],
		Found:          r.Found,
		Progress:       r.Progress,
		Total:          r.Total,
		NextPlayerID:   string(r.NextPlayerID),
		NextPlayerName: r.NextPlayerName,
		Hint:           r.Hint,
	}
}
