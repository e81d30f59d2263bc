package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlyupgames/onlyup-backend/internal/entity"
	"github.com/onlyupgames/onlyup-backend/internal/tictactoe"
	"github.com/onlyupgames/onlyup-backend/internal/usecase"
)

func newTestHandlers() Handlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, tictactoe.NewGame(entity.PlayerX), nil)
	return NewHandlers(manager)
}

func decodeState(t *testing.T, body *bytes.Buffer) *usecase.GameState {
	t.Helper()
	var state usecase.GameState
	require.NoError(t, json.NewDecoder(body).Decode(&state))
	return &state
}

func TestHandlers_Ping(t *testing.T) {
	handlers := newTestHandlers()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	handlers.Ping(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandlers_GameState(t *testing.T) {
	t.Run("Returns the full snapshot", func(t *testing.T) {
		handlers := newTestHandlers()

		// When: fetching the game state
		req := httptest.NewRequest(http.MethodGet, "/game", nil)
		rec := httptest.NewRecorder()
		handlers.GameState(rec, req)

		// Then: all 27 cells and the derived fields are present
		require.Equal(t, http.StatusOK, rec.Code)
		state := decodeState(t, rec.Body)
		assert.Len(t, state.Cells, entity.TotalCells)
		assert.Equal(t, entity.PlayerX, state.CurrentPlayer)
		assert.Equal(t, 0, state.MoveCount)
		assert.False(t, state.Done)
	})

	t.Run("Rejects non-GET requests", func(t *testing.T) {
		handlers := newTestHandlers()

		req := httptest.NewRequest(http.MethodPost, "/game", nil)
		rec := httptest.NewRecorder()
		handlers.GameState(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandlers_Move(t *testing.T) {
	post := func(handlers Handlers, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/game/move", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		handlers.Move(rec, req)
		return rec
	}

	t.Run("Applies a valid move", func(t *testing.T) {
		handlers := newTestHandlers()

		// When: X claims a corner
		rec := post(handlers, `{"x":0,"y":0,"z":0}`)

		// Then: the move shows up in the returned snapshot
		require.Equal(t, http.StatusOK, rec.Code)
		state := decodeState(t, rec.Body)
		assert.Equal(t, 1, state.MoveCount)
		assert.Equal(t, entity.PlayerO, state.CurrentPlayer)
	})

	t.Run("Conflicts on a taken cell", func(t *testing.T) {
		handlers := newTestHandlers()
		require.Equal(t, http.StatusOK, post(handlers, `{"x":0,"y":0,"z":0}`).Code)

		rec := post(handlers, `{"x":0,"y":0,"z":0}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Rejects the wrong level", func(t *testing.T) {
		handlers := newTestHandlers()

		rec := post(handlers, `{"x":0,"y":0,"z":2}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Rejects an off-board cell", func(t *testing.T) {
		handlers := newTestHandlers()

		rec := post(handlers, `{"x":7,"y":0,"z":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Rejects a malformed body", func(t *testing.T) {
		handlers := newTestHandlers()

		rec := post(handlers, `{"x":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Rejects non-POST requests", func(t *testing.T) {
		handlers := newTestHandlers()

		req := httptest.NewRequest(http.MethodGet, "/game/move", nil)
		rec := httptest.NewRecorder()
		handlers.Move(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandlers_Reset(t *testing.T) {
	t.Run("Restarts with a chosen opener", func(t *testing.T) {
		handlers := newTestHandlers()

		// Given: a move already made
		moveReq := httptest.NewRequest(http.MethodPost, "/game/move", bytes.NewBufferString(`{"x":0,"y":0,"z":0}`))
		handlers.Move(httptest.NewRecorder(), moveReq)

		// When: resetting with O opening
		req := httptest.NewRequest(http.MethodPost, "/game/reset", bytes.NewBufferString(`{"first_player":"O"}`))
		rec := httptest.NewRecorder()
		handlers.Reset(rec, req)

		// Then: the board is fresh and O is on turn
		require.Equal(t, http.StatusOK, rec.Code)
		state := decodeState(t, rec.Body)
		assert.Equal(t, 0, state.MoveCount)
		assert.Equal(t, entity.PlayerO, state.CurrentPlayer)
	})

	t.Run("Accepts an empty body", func(t *testing.T) {
		handlers := newTestHandlers()

		req := httptest.NewRequest(http.MethodPost, "/game/reset", nil)
		rec := httptest.NewRecorder()
		handlers.Reset(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		state := decodeState(t, rec.Body)
		assert.Equal(t, 0, state.MoveCount)
	})

	t.Run("Rejects an unknown mark", func(t *testing.T) {
		handlers := newTestHandlers()

		req := httptest.NewRequest(http.MethodPost, "/game/reset", bytes.NewBufferString(`{"first_player":"Z"}`))
		rec := httptest.NewRecorder()
		handlers.Reset(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
