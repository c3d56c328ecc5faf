package sse

import (
	"testing"
	"time"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
	"github.com/MarinVandelet/qr-game-backend/internal/testutil"
)

func TestBroadcasterPublishesJSONEvent(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	b := NewBroadcaster(m, testutil.NopLogger())

	hub := m.GetOrCreateHub("ABCDE")
	defer m.RemoveHub("ABCDE")

	client := NewClient(hub, "player-1")
	hub.Register(client)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	b.Publish("ABCDE", model.EventQuizEnd, model.QuizEndEvent{Score: 5, Success: true})

	select {
	case msg := <-client.send:
		want := "event: quizEnd\ndata: {\"score\":5,\"success\":true}\n\n"
		if string(msg) != want {
			t.Errorf("got %q, want %q", string(msg), want)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBroadcasterSkipsRoomsWithoutHub(t *testing.T) {
	m := NewHubManager(testutil.NopLogger())
	b := NewBroadcaster(m, testutil.NopLogger())

	// Must not panic or create a hub
	b.Publish("ZZZZZ", model.EventGameStart, model.GameStartEvent{})

	if m.GetHub("ZZZZZ") != nil {
		t.Error("publish must not create a hub")
	}
}
