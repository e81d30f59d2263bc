package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/onlyupgames/onlyup-backend/internal/apperror"
	"github.com/onlyupgames/onlyup-backend/internal/entity"
	"github.com/onlyupgames/onlyup-backend/internal/usecase"
)

// Handlers is the HTTP surface of the single hot-seat session: both players
// share one game, the API is presentation only.
type Handlers interface {
	Ping(w http.ResponseWriter, _ *http.Request)

	GameState(w http.ResponseWriter, r *http.Request)
	Move(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type gameManager interface {
	MakeTurn(ctx context.Context, pos entity.Position) error
	Restart(firstPlayer string)
	Snapshot() *usecase.GameState
}

type handlers struct {
	manager gameManager
}

func NewHandlers(manager gameManager) Handlers {
	return &handlers{
		manager: manager,
	}
}

func (that *handlers) GameState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, that.manager.Snapshot())
}

type moveRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func (that *handlers) Move(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	pos := entity.Position{X: req.X, Y: req.Y, Z: req.Z}
	if err := that.manager.MakeTurn(r.Context(), pos); err != nil {
		switch {
		case errors.Is(err, apperror.ErrCellTaken):
			http.Error(w, "cell is already taken", http.StatusConflict)
		case errors.Is(err, apperror.ErrWrongLevel):
			http.Error(w, "move targets the wrong level", http.StatusUnprocessableEntity)
		case errors.Is(err, apperror.ErrInvalidCell):
			http.Error(w, "invalid cell position", http.StatusBadRequest)
		default:
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, that.manager.Snapshot())
}

type resetRequest struct {
	FirstPlayer string `json:"first_player"`
}

func (that *handlers) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	// The body is optional; an empty one means a random opener.
	var req resetRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if req.FirstPlayer != "" && req.FirstPlayer != entity.PlayerX && req.FirstPlayer != entity.PlayerO {
		http.Error(w, "unknown player mark", http.StatusBadRequest)
		return
	}

	that.manager.Restart(req.FirstPlayer)
	writeJSON(w, http.StatusOK, that.manager.Snapshot())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
