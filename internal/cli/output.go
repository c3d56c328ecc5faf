package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Room:
		o.printRoom(v)
	case Roster:
		o.printRoster(v)
	case ScanResult:
		o.printScanResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Room response type
type Room struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomMember response type
type RoomMember struct {
	Player   Player    `json:"player"`
	IsOwner  bool      `json:"is_owner"`
	JoinedAt time.Time `json:"joined_at"`
}

// Roster response type
type Roster struct {
	Members []RoomMember `json:"members"`
}

// ScanResult response type
type ScanResult struct {
	Success        bool     `json:"success"`
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	Found          []string `json:"found"`
	Progress       int      `json:"progress"`
	Total          int      `json:"total"`
	NextPlayerID   string   `json:"next_player_id,omitempty"`
	NextPlayerName string   `json:"next_player_name,omitempty"`
	Hint           string   `json:"hint,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s %s (%s)\n", p.FirstName, p.LastName, p.ID)
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s\n", r.Code)
	fmt.Printf("ID: %s\n", r.ID)
	fmt.Printf("Owner: %s\n", r.OwnerID)
}

func (o *Output) printRoster(r Roster) {
	fmt.Printf("Members (%d):\n", len(r.Members))
	for _, m := range r.Members {
		ownerStr := ""
		if m.IsOwner {
			ownerStr = " [owner]"
		}
		fmt.Printf("  - %s %s (%s)%s\n", m.Player.FirstName, m.Player.LastName, m.Player.ID, ownerStr)
	}
}

func (o *Output) printScanResult(s ScanResult) {
	fmt.Printf("Status: %s\n", s.Status)
	if s.Message != "" {
		fmt.Printf("Message: %s\n", s.Message)
	}
	fmt.Printf("Progress: %d/%d\n", s.Progress, s.Total)
	if len(s.Found) > 0 {
		fmt.Printf("Found: %s\n", strings.Join(s.Found, ", "))
	}
	if s.NextPlayerName != "" {
		fmt.Printf("Next: %s (%s)\n", s.NextPlayerName, s.NextPlayerID)
	}
	if s.Hint != "" {
		fmt.Printf("Hint: %s\n", s.Hint)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
