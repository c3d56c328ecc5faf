package hunt

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
	"github.com/MarinVandelet/qr-game-backend/internal/session"
	"github.com/MarinVandelet/qr-game-backend/internal/testutil"
)

type publishedEvent struct {
	room    model.RoomCode
	name    model.EventName
	payload any
}

// fakePublisher records published events in order
type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) Publish(room model.RoomCode, name model.EventName, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{room: room, name: name, payload: payload})
}

func (p *fakePublisher) Events() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]publishedEvent, len(p.events))
	copy(out, p.events)
	return out
}

type ControllerSuite struct {
	suite.Suite
	sessions  *session.Store
	publisher *fakePublisher
	items     []model.HuntItem
	ctx       context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.sessions = session.New()
	s.publisher = &fakePublisher{}
	s.items = []model.HuntItem{
		{Token: "t0", Hint: "hint zero"},
		{Token: "t1", Hint: "hint one"},
		{Token: "t2", Hint: "hint two"},
		{Token: "t3", Hint: "hint three"},
	}
	s.ctx = context.Background()
}

func (s *ControllerSuite) newController() *Controller {
	return NewController(s.sessions, s.publisher, s.items, testutil.NopLogger())
}

func (s *ControllerSuite) players(ids ...string) []model.Player {
	out := make([]model.Player, len(ids))
	for i, id := range ids {
		out[i] = model.Player{ID: model.PlayerID(id), FirstName: id}
	}
	return out
}

// Distribution tests

func (s *ControllerSuite) TestDistributeSinglePlayerTakesEverything() {
	s.Equal([]int{4}, distributeItems(1, 4))
}

func (s *ControllerSuite) TestDistributeTwoPlayersSplitEvenly() {
	s.Equal([]int{2, 2}, distributeItems(2, 4))
	s.Equal([]int{3, 2}, distributeItems(2, 5))
}

func (s *ControllerSuite) TestDistributeOwnerAbsorbsRemainder() {
	s.Equal([]int{2, 1, 1}, distributeItems(3, 4))
}

func (s *ControllerSuite) TestDistributeMorePlayersThanItems() {
	s.Equal([]int{1, 1, 1, 1}, distributeItems(4, 4))
	s.Equal([]int{1, 1, 1, 1, 0}, distributeItems(5, 4))
}

func (s *ControllerSuite) TestAssignmentOrderExpandsCounts() {
	players := s.players("owner", "b", "c")
	order := assignmentOrder(players, 4)

	s.Require().Len(order, 4)
	s.Equal(model.PlayerID("owner"), order[0].ID)
	s.Equal(model.PlayerID("owner"), order[1].ID)
	s.Equal(model.PlayerID("b"), order[2].ID)
	s.Equal(model.PlayerID("c"), order[3].ID)
}

// StartHunt tests

func (s *ControllerSuite) TestStartHuntEmptyRoom() {
	c := s.newController()
	err := c.StartHunt(s.ctx, "AAAAA", nil)
	s.ErrorIs(err, model.ErrRoomEmpty)
}

func (s *ControllerSuite) TestStartHuntNoItems() {
	c := NewController(s.sessions, s.publisher, nil, testutil.NopLogger())
	err := c.StartHunt(s.ctx, "AAAAA", s.players("a"))
	s.ErrorIs(err, model.ErrNoHuntItems)
}

func (s *ControllerSuite) TestStartHuntBroadcastsOpening() {
	c := s.newController()
	s.Require().NoError(c.StartHunt(s.ctx, "AAAAA", s.players("owner", "b", "c")))

	events := s.publisher.Events()
	s.Require().Len(events, 1)
	s.Equal(model.EventHuntStart, events[0].name)

	start := events[0].payload.(model.HuntStartEvent)
	s.Equal(model.PlayerID("owner"), start.NextPlayerID)
	s.Equal("owner", start.NextPlayerName)
	s.Equal("hint zero", start.Hint)
	s.Equal(0, start.Progress)
	s.Equal(4, start.Total)
	s.Empty(start.Found)
}

// ValidateScan tests

func (s *ControllerSuite) startHunt(playerIDs ...string) *Controller {
	c := s.newController()
	s.Require().NoError(c.StartHunt(s.ctx, "AAAAA", s.players(playerIDs...)))
	return c
}

func (s *ControllerSuite) TestScanWithoutHunt() {
	c := s.newController()
	result := c.ValidateScan(s.ctx, "AAAAA", "a", "t0")
	s.Equal(ScanNotStarted, result.Status)
}

func (s *ControllerSuite) TestScanAcceptedAdvancesAndBroadcasts() {
	c := s.startHunt("owner", "b", "c")

	result := c.ValidateScan(s.ctx, "AAAAA", "owner", "t0")
	s.Equal(ScanOK, result.Status)
	s.Equal([]string{"t0"}, result.Found)
	s.Equal(1, result.Progress)
	s.Equal(4, result.Total)
	s.Equal(model.PlayerID("owner"), result.NextPlayerID)
	s.Equal("hint one", result.Hint)

	events := s.publisher.Events()
	s.Require().Len(events, 2) // game2Start + game2Progress
	s.Equal(model.EventHuntProgress, events[1].name)

	progress := events[1].payload.(model.HuntProgressEvent)
	s.Equal([]string{"t0"}, progress.Found)
	s.Equal(1, progress.Progress)
	s.Equal(model.PlayerID("owner"), progress.NextPlayerID)
	s.Equal("hint one", progress.Hint)
}

func (s *ControllerSuite) TestScanWrongTurn() {
	c := s.startHunt("owner", "b", "c")

	result := c.ValidateScan(s.ctx, "AAAAA", "b", "t0")
	s.Equal(ScanWrongTurn, result.Status)
	s.Equal(0, result.Progress)

	// Rejections are not broadcast
	s.Len(s.publisher.Events(), 1)
}

func (s *ControllerSuite) TestScanWrongItem() {
	c := s.startHunt("owner", "b", "c")

	result := c.ValidateScan(s.ctx, "AAAAA", "owner", "t2")
	s.Equal(ScanWrongItem, result.Status)
	s.Len(s.publisher.Events(), 1)
}

func (s *ControllerSuite) TestScanUnknownToken() {
	c := s.startHunt("owner")

	result := c.ValidateScan(s.ctx, "AAAAA", "owner", "bogus")
	s.Equal(ScanWrongItem, result.Status)
}

func (s *ControllerSuite) TestRescanFoundItemIsWrongItem() {
	c := s.startHunt("owner")

	first := c.ValidateScan(s.ctx, "AAAAA", "owner", "t0")
	s.Require().Equal(ScanOK, first.Status)

	// The cursor has moved past t0, so a re-scan no longer matches the
	// expected item and must not grow the found list
	again := c.ValidateScan(s.ctx, "AAAAA", "owner", "t0")
	s.Equal(ScanWrongItem, again.Status)
	s.Equal(1, again.Progress)
	s.Equal([]string{"t0"}, again.Found)

	// Rejections are not broadcast
	s.Len(s.publisher.Events(), 2)
}

func (s *ControllerSuite) TestFullHuntTurnOrder() {
	// 3 players, 4 items: owner scans t0 and t1, then b, then c
	c := s.startHunt("owner", "b", "c")

	s.Equal(ScanOK, c.ValidateScan(s.ctx, "AAAAA", "owner", "t0").Status)
	s.Equal(ScanOK, c.ValidateScan(s.ctx, "AAAAA", "owner", "t1").Status)

	// Owner is done; b is up next
	s.Equal(ScanWrongTurn, c.ValidateScan(s.ctx, "AAAAA", "owner", "t2").Status)
	s.Equal(ScanOK, c.ValidateScan(s.ctx, "AAAAA", "b", "t2").Status)
	s.Equal(ScanOK, c.ValidateScan(s.ctx, "AAAAA", "c", "t3").Status)
}

func (s *ControllerSuite) TestTwoPlayerHandoff() {
	// 2 players, 4 items: distribution [2,2], so b takes over at cursor 2
	c := s.startHunt("owner", "b")

	s.Equal(ScanOK, c.ValidateScan(s.ctx, "AAAAA", "owner", "t0").Status)

	handoff := c.ValidateScan(s.ctx, "AAAAA", "owner", "t1")
	s.Require().Equal(ScanOK, handoff.Status)
	s.Equal(model.PlayerID("b"), handoff.NextPlayerID)
	s.Equal("hint two", handoff.Hint)

	s.Equal(ScanOK, c.ValidateScan(s.ctx, "AAAAA", "b", "t2").Status)
	final := c.ValidateScan(s.ctx, "AAAAA", "b", "t3")
	s.Require().Equal(ScanOK, final.Status)
	s.Equal([]string{"t0", "t1", "t2", "t3"}, final.Found)

	events := s.publisher.Events()
	s.Equal(model.EventHuntComplete, events[len(events)-1].name)
}

func (s *ControllerSuite) TestCompletionBroadcast() {
	c := s.startHunt("owner")

	for _, token := range []string{"t0", "t1", "t2", "t3"} {
		s.Require().Equal(ScanOK, c.ValidateScan(s.ctx, "AAAAA", "owner", token).Status)
	}

	events := s.publisher.Events()
	last := events[len(events)-1]
	s.Equal(model.EventHuntComplete, last.name)

	complete := last.payload.(model.HuntCompleteEvent)
	s.Equal([]string{"t0", "t1", "t2", "t3"}, complete.Found)
	s.Equal(4, complete.Total)

	// Final accepted scan reports no next player
	result := c.ValidateScan(s.ctx, "AAAAA", "owner", "t0")
	s.Equal(ScanAlreadyComplete, result.Status)
}

func (s *ControllerSuite) TestRestartResetsProgress() {
	c := s.startHunt("owner")
	s.Require().Equal(ScanOK, c.ValidateScan(s.ctx, "AAAAA", "owner", "t0").Status)

	s.Require().NoError(c.StartHunt(s.ctx, "AAAAA", s.players("owner")))

	result := c.ValidateScan(s.ctx, "AAAAA", "owner", "t0")
	s.Equal(ScanOK, result.Status)
	s.Equal(1, result.Progress)
}

// Item lookup tests

func (s *ControllerSuite) TestItemLookup() {
	c := s.newController()

	item, err := c.Item("t1")
	s.Require().NoError(err)
	s.Equal("hint one", item.Hint)

	_, err = c.Item("bogus")
	s.ErrorIs(err, model.ErrItemNotFound)
}
