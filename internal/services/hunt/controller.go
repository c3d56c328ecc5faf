package hunt

import (
	"context"
	"log/slog"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
	"github.com/MarinVandelet/qr-game-backend/internal/session"
)

// Publisher broadcasts named events to all subscribers of a room
type Publisher interface {
	Publish(roomCode model.RoomCode, event model.EventName, payload any)
}

// ScanStatus classifies the outcome of a scan attempt. Rejections are
// ordinary outcomes reported to the scanning player, not errors.
type ScanStatus string

const (
	ScanOK              ScanStatus = "ok"
	ScanNotStarted      ScanStatus = "not_started"
	ScanAlreadyComplete ScanStatus = "already_complete"
	ScanWrongItem       ScanStatus = "wrong_item"
	ScanWrongTurn       ScanStatus = "wrong_turn"
)

// ScanResult reports the outcome of a scan attempt and, for accepted scans,
// the hunt's position afterwards
type ScanResult struct {
	Status   ScanStatus
	Found    []string
	Progress int
	Total    int

	// Next expected scanner; unset when the hunt is complete or the scan
	// was rejected
	NextPlayerID   model.PlayerID
	NextPlayerName string
	Hint           string
}

// Controller runs the QR scavenger hunt: it deals items out to a room's
// roster, enforces the scan order, and broadcasts progress
type Controller struct {
	sessions  *session.Store
	publisher Publisher
	items     []model.HuntItem
	logger    *slog.Logger
}

// NewController creates a new hunt Controller
func NewController(
	sessions *session.Store,
	publisher Publisher,
	items []model.HuntItem,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		sessions:  sessions,
		publisher: publisher,
		items:     items,
		logger:    logger.With(slog.String("component", "hunt")),
	}
}

// Item looks up a hunt item by its QR token
func (c *Controller) Item(token string) (model.HuntItem, error) {
	for _, item := range c.items {
		if item.Token == token {
			return item, nil
		}
	}
	return model.HuntItem{}, model.ErrItemNotFound
}

// StartHunt deals the items out across the roster and opens the hunt.
// players must be in join order with the room owner first; starting again
// resets any hunt already in progress.
func (c *Controller) StartHunt(ctx context.Context, code model.RoomCode, players []model.Player) error {
	if len(players) == 0 {
		return model.ErrRoomEmpty
	}
	if len(c.items) == 0 {
		return model.ErrNoHuntItems
	}

	order := assignmentOrder(players, len(c.items))
	c.sessions.StartHunt(code, order, c.items)

	c.logger.Info("hunt started",
		slog.String("room", string(code)),
		slog.Int("players", len(players)),
		slog.Int("items", len(c.items)))

	first := order[0]
	c.publisher.Publish(code, model.EventHuntStart, model.HuntStartEvent{
		NextPlayerID:   first.ID,
		NextPlayerName: first.FirstName,
		Hint:           c.items[0].Hint,
		Progress:       0,
		Total:          len(c.items),
		Found:          []string{},
	})
	return nil
}

// ValidateScan judges a scan attempt against the room's hunt state. An
// accepted scan advances the cursor and broadcasts progress. Everything is
// judged against the current cursor position, so re-scanning an item the
// cursor has moved past reads as a wrong item rather than a repeat success.
func (c *Controller) ValidateScan(ctx context.Context, code model.RoomCode, playerID model.PlayerID, token string) ScanResult {
	result := ScanResult{Status: ScanNotStarted}

	ok := c.sessions.WithHunt(code, func(sess *session.HuntSession) {
		result.Found = append([]string{}, sess.Found...)
		result.Progress = sess.Cursor
		result.Total = len(sess.Items)

		if sess.Complete() {
			result.Status = ScanAlreadyComplete
			return
		}

		if sess.Items[sess.Cursor].Token != token {
			result.Status = ScanWrongItem
			return
		}
		if sess.Order[sess.Cursor].ID != playerID {
			result.Status = ScanWrongTurn
			return
		}

		sess.Found = append(sess.Found, token)
		sess.Cursor++

		result.Status = ScanOK
		result.Found = append([]string{}, sess.Found...)
		result.Progress = sess.Cursor
		result.fillNext(sess)
	})
	if !ok {
		return result
	}

	c.logger.Info("scan validated",
		slog.String("room", string(code)),
		slog.String("player_id", string(playerID)),
		slog.String("token", token),
		slog.String("status", string(result.Status)),
		slog.Int("progress", result.Progress))

	c.broadcastProgress(code, result)
	return result
}

// fillNext records the next expected scanner and hint on an accepted,
// not-yet-complete result
func (r *ScanResult) fillNext(sess *session.HuntSession) {
	if sess.Complete() {
		return
	}
	next := sess.Order[sess.Cursor]
	r.NextPlayerID = next.ID
	r.NextPlayerName = next.FirstName
	r.Hint = sess.Items[sess.Cursor].Hint
}

// broadcastProgress publishes the room-wide event for an accepted scan
func (c *Controller) broadcastProgress(code model.RoomCode, result ScanResult) {
	if result.Status != ScanOK {
		return
	}

	if result.Progress >= result.Total {
		c.publisher.Publish(code, model.EventHuntComplete, model.HuntCompleteEvent{
			Found: result.Found,
			Total: result.Total,
		})
		return
	}

	c.publisher.Publish(code, model.EventHuntProgress, model.HuntProgressEvent{
		Found:          result.Found,
		Progress:       result.Progress,
		Total:          result.Total,
		NextPlayerID:   result.NextPlayerID,
		NextPlayerName: result.NextPlayerName,
		Hint:           result.Hint,
	})
}

// distributeItems splits k items across n players. The first player is the
// room owner.
//
//	n == 1        everything goes to the owner
//	n == 2        an even split, owner taking the odd item
//	2 < n < k     everyone gets one, the owner absorbs the remainder
//	n >= k        one each in roster order until items run out
func distributeItems(n, k int) []int {
	counts := make([]int, n)
	switch {
	case n == 1:
		counts[0] = k
	case n == 2:
		counts[0] = (k + 1) / 2
		counts[1] = k / 2
	case n < k:
		counts[0] = k - (n - 1)
		for i := 1; i < n; i++ {
			counts[i] = 1
		}
	default:
		for i := 0; i < k; i++ {
			counts[i] = 1
		}
	}
	return counts
}

// assignmentOrder expands the distribution into a per-item scanner list:
// the player at index i scans item i
func assignmentOrder(players []model.Player, k int) []model.Player {
	counts := distributeItems(len(players), k)

	order := make([]model.Player, 0, k)
	for i, count := range counts {
		for j := 0; j < count; j++ {
			order = append(order, players[i])
		}
	}
	return order
}

// Interface for dependency injection
type ControllerInterface interface {
	Item(token string) (model.HuntItem, error)
	StartHunt(ctx context.Context, code model.RoomCode, players []model.Player) error
	ValidateScan(ctx context.Context, code model.RoomCode, playerID model.PlayerID, token string) ScanResult
}

var _ ControllerInterface = (*Controller)(nil)
