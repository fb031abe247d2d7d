package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moodbot/events"
	"moodbot/ledger"
	"moodbot/models"
	"moodbot/router"
	"moodbot/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(responder *router.MockResponder) (http.Handler, *ledger.Ledger) {
	l := ledger.New(100, events.NewBus())
	rng := service.NewSource(time.Now().UnixNano())
	cmds := router.New(l, service.NewGamesService(l, rng), service.NewBlackjackService(l, rng), responder)
	return NewRouter(cmds, l), l
}

func postChat(t *testing.T, handler http.Handler, body any) (*httptest.ResponseRecorder, models.GameResponse) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var resp models.GameResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestChatEndpoint_GameCommand(t *testing.T) {
	handler, l := newTestHandler(new(router.MockResponder))

	rec, resp := postChat(t, handler, map[string]any{"input": "!daily", "user_id": "bob"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(150), resp.NewBalance)
	assert.Contains(t, resp.Message, "coins collected")
	assert.Equal(t, int64(150), l.Balance("bob"))
}

func TestChatEndpoint_DefaultsUserID(t *testing.T) {
	handler, l := newTestHandler(new(router.MockResponder))

	rec, _ := postChat(t, handler, map[string]any{"input": "!daily"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(150), l.Balance("user1"))
}

func TestChatEndpoint_CoinsSeedOnlyNewUsers(t *testing.T) {
	responder := new(router.MockResponder)
	responder.On("Respond", mock.Anything, "hello there", "", "").Return("hi!", nil)
	handler, l := newTestHandler(responder)

	rec, resp := postChat(t, handler, map[string]any{"input": "hello there", "user_id": "carol", "coins": 500})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(500), resp.NewBalance)

	// A later request cannot reset the balance.
	rec, resp = postChat(t, handler, map[string]any{"input": "hello there", "user_id": "carol", "coins": 9999})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(500), resp.NewBalance)
	assert.Equal(t, int64(500), l.Balance("carol"))
}

func TestChatEndpoint_BadJSON(t *testing.T) {
	handler, _ := newTestHandler(new(router.MockResponder))

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	handler, _ := newTestHandler(new(router.MockResponder))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
