package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/onlyupgames/onlyup-backend/internal/entity"
	"github.com/onlyupgames/onlyup-backend/internal/pkg"
	"github.com/onlyupgames/onlyup-backend/internal/tictactoe"
)

// archive is the slice of the archive repository the manager needs.
type archive interface {
	Save(ctx context.Context, record *entity.Record) error
}

// GameManager owns the single game session. The engine itself is not safe
// for concurrent callers, so every mutation and snapshot goes through one
// mutex.
type GameManager struct {
	logger  *slog.Logger
	archive archive

	mu   sync.Mutex
	game *tictactoe.Game
}

// NewGameManager wraps game. archiveRepo may be nil to disable archival of
// finished games.
func NewGameManager(logger *slog.Logger, game *tictactoe.Game, archiveRepo archive) *GameManager {
	manager := &GameManager{
		logger:  logger,
		archive: archiveRepo,
		game:    game,
	}
	manager.subscribe()

	return manager
}

// subscribe wires debug logging to every engine notification.
func (that *GameManager) subscribe() {
	log := that.logger.With("component", "game")

	that.game.OnBoardChanged(func() {
		log.Debug("board changed")
	})
	that.game.OnScoreChanged(func(highlighted []entity.Position) {
		log.Debug("score changed", "highlighted", len(highlighted))
	})
	that.game.OnPlayerChanged(func() {
		log.Debug("player changed")
	})
	that.game.OnLevelChanged(func() {
		log.Debug("level changed")
	})
	that.game.OnStatusChanged(func() {
		log.Debug("status changed")
	})
}

// MakeTurn applies one move for the current player. When the move finishes
// the game, the result is archived.
func (that *GameManager) MakeTurn(ctx context.Context, pos entity.Position) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.game.Move(pos); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if that.game.Done() {
		that.archiveResult(ctx)
	}

	return nil
}

// archiveResult is best-effort: a storage failure must not break the game.
func (that *GameManager) archiveResult(ctx context.Context) {
	if that.archive == nil {
		return
	}

	record := &entity.Record{
		ID:         pkg.NewRecordID(),
		Winner:     that.game.Winner(),
		Scores:     that.game.Scores(),
		MoveCount:  that.game.MoveCount(),
		FinishedAt: time.Now().UTC(),
	}

	if err := that.archive.Save(ctx, record); err != nil {
		that.logger.Error("could not archive game result", "error", err)
		return
	}

	that.logger.Info("game result archived", "record", record.ID, "winner", record.Winner)
}

// Restart resets the session. firstPlayer may be empty to pick the opener
// at random. Restart never fails.
func (that *GameManager) Restart(firstPlayer string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game.Reset(firstPlayer)
}

// Render returns the engine's textual board dump.
func (that *GameManager) Render() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.String()
}

// StatusLine joins the current status messages into one printable line, or
// returns the empty string when there are none.
func (that *GameManager) StatusLine() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	messages := that.game.Status()
	if len(messages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(messages))
	for _, message := range messages {
		parts = append(parts, message.String())
	}

	return strings.Join(parts, " ")
}

func (that *GameManager) Done() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Done()
}

func (that *GameManager) CurrentLevel() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.CurrentLevel()
}

func (that *GameManager) CurrentPlayer() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.CurrentPlayer()
}

// CellState is one board cell in a snapshot.
type CellState struct {
	Position entity.Position `json:"position"`
	Value    string          `json:"value"`
	Special  bool            `json:"special"`
}

// GameState is a read-only snapshot of the session for presentation.
type GameState struct {
	Cells         []CellState    `json:"cells"`
	Scores        map[string]int `json:"scores"`
	MoveCount     int            `json:"move_count"`
	CurrentLevel  int            `json:"current_level"`
	CurrentPlayer string         `json:"current_player"`
	SpecialMove   bool           `json:"special_move"`
	Done          bool           `json:"done"`
	Winner        string         `json:"winner,omitempty"`
	Status        []string       `json:"status,omitempty"`
}

// Snapshot captures the whole session state in one locked read.
func (that *GameManager) Snapshot() *GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	state := &GameState{
		Cells:         make([]CellState, 0, entity.TotalCells),
		Scores:        that.game.Scores(),
		MoveCount:     that.game.MoveCount(),
		CurrentLevel:  that.game.CurrentLevel(),
		CurrentPlayer: that.game.CurrentPlayer(),
		SpecialMove:   that.game.IsCurrentMoveSpecial(),
		Done:          that.game.Done(),
	}
	if state.Done {
		state.Winner = that.game.Winner()
	}

	for _, pos := range entity.Positions() {
		cell := that.game.Cell(pos)
		state.Cells = append(state.Cells, CellState{
			Position: pos,
			Value:    cell.Value,
			Special:  cell.Special,
		})
	}

	for _, message := range that.game.Status() {
		state.Status = append(state.Status, message.String())
	}

	return state
}
