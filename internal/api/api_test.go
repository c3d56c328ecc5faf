package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarinVandelet/qr-game-backend/internal/api"
	"github.com/MarinVandelet/qr-game-backend/internal/api/response"
	"github.com/MarinVandelet/qr-game-backend/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		RoomController: app.RoomController,
		QuizController: app.QuizController,
		HuntController: app.HuntController,
		HubManager:     app.HubManager,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createPlayer(t *testing.T, first, last string) response.Player {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{
		"first_name": first,
		"last_name":  last,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	return player
}

func (ts *testServer) createRoom(t *testing.T, ownerID string) response.Room {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/rooms", map[string]string{"player_id": ownerID})
	require.Equal(t, http.StatusCreated, rr.Code)

	var room response.Room
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &room))
	return room
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
	return errResp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestCreatePlayer(t *testing.T) {
	ts := newTestServer(t)

	player := ts.createPlayer(t, "Alice", "Martin")
	assert.NotEmpty(t, player.ID)
	assert.Equal(t, "Alice", player.FirstName)
	assert.Equal(t, "Martin", player.LastName)

	rr := ts.request(http.MethodGet, "/api/v1/players/"+player.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCreatePlayerEmptyName(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"first_name": "  "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_PLAYER_NAME", errorCode(t, rr))
}

func TestGetPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "PLAYER_NOT_FOUND", errorCode(t, rr))
}

func TestCreateAndGetRoom(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.createPlayer(t, "Alice", "Martin")

	room := ts.createRoom(t, owner.ID)
	assert.Len(t, room.Code, 5)
	assert.Equal(t, owner.ID, room.OwnerID)

	rr := ts.request(http.MethodGet, "/api/v1/rooms/"+room.Code, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetRoomNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/rooms/NOPE1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "ROOM_NOT_FOUND", errorCode(t, rr))
}

func TestCreateRoomRequiresPlayer(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rooms", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, rr))
}

func TestJoinRoomAndListPlayers(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.createPlayer(t, "Alice", "Martin")
	room := ts.createRoom(t, owner.ID)

	bob := ts.createPlayer(t, "Bob", "Durand")
	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+room.Code+"/join", map[string]string{"player_id": bob.ID})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/rooms/"+room.Code+"/players", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var roster response.Roster
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &roster))
	require.Len(t, roster.Members, 2)
	assert.Equal(t, owner.ID, roster.Members[0].Player.ID)
	assert.True(t, roster.Members[0].IsOwner)
	assert.Equal(t, bob.ID, roster.Members[1].Player.ID)
	assert.False(t, roster.Members[1].IsOwner)
}

func TestStartQuiz(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.createPlayer(t, "Alice", "Martin")
	room := ts.createRoom(t, owner.ID)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+room.Code+"/quiz/start", nil)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestStartQuizRoomNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/NOPE1/quiz/start", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSubmitAnswerRequiresChosenIndex(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.createPlayer(t, "Alice", "Martin")
	room := ts.createRoom(t, owner.ID)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+room.Code+"/quiz/answer",
		map[string]string{"player_id": owner.ID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, rr))
}

func TestSubmitAnswerWithoutActiveQuiz(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.createPlayer(t, "Alice", "Martin")
	room := ts.createRoom(t, owner.ID)

	// Silently accepted; the submission is simply ignored
	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+room.Code+"/quiz/answer",
		map[string]any{"player_id": owner.ID, "chosen_index": 1})
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestHuntStartAndScan(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.createPlayer(t, "Alice", "Martin")
	room := ts.createRoom(t, owner.ID)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+room.Code+"/hunt/start", nil)
	require.Equal(t, http.StatusAccepted, rr.Code)

	// First default item is hunt-keyboard; the owner scans everything solo
	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+room.Code+"/hunt/scan",
		map[string]string{"player_id": owner.ID, "token": "hunt-keyboard"})
	require.Equal(t, http.StatusOK, rr.Code)

	var result response.ScanResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, 1, result.Progress)
	assert.Equal(t, 4, result.Total)

	// Wrong item for the next scan
	rr = ts.request(http.MethodPost, "/api/v1/rooms/"+room.Code+"/hunt/scan",
		map[string]string{"player_id": owner.ID, "token": "hunt-coffee"})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "wrong_item", result.Status)
}

func TestHuntScanWithoutHunt(t *testing.T) {
	ts := newTestServer(t)
	owner := ts.createPlayer(t, "Alice", "Martin")
	room := ts.createRoom(t, owner.ID)

	rr := ts.request(http.MethodPost, "/api/v1/rooms/"+room.Code+"/hunt/scan",
		map[string]string{"player_id": owner.ID, "token": "hunt-keyboard"})
	require.Equal(t, http.StatusOK, rr.Code)

	var result response.ScanResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, "not_started", result.Status)
}

func TestHuntItemQR(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/hunt/items/hunt-keyboard/qr.png", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Body.Bytes())
}

func TestHuntItemQRNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/hunt/items/bogus/qr.png", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "ITEM_NOT_FOUND", errorCode(t, rr))
}

func TestEventsRoomNotFound(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/rooms/NOPE1/events", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
