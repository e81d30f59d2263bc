package tictactoe

import (
	"fmt"
	"strings"

	"github.com/onlyupgames/onlyup-backend/internal/apperror"
	"github.com/onlyupgames/onlyup-backend/internal/entity"
)

const (
	// LineValue is awarded for a completed line.
	LineValue = 1
	// SpecialLineValue is awarded instead when every cell of the line is
	// special.
	SpecialLineValue = 2
)

// Game is the engine for one stacked tic-tac-toe session. Players
// alternately claim cells on the current level; completed lines score
// points, and after TotalCells moves the higher score wins.
//
// The engine is single-threaded: Move and Reset run to completion,
// including notification delivery, before returning. Callers that share a
// game between goroutines must serialize access themselves.
type Game struct {
	Events

	board       *entity.Board
	scores      map[string]int
	moveCount   int
	firstPlayer string
	status      []StatusMessage
}

// NewGame creates a game and resets it. firstPlayer may be empty, in which
// case the opener is chosen at random.
func NewGame(firstPlayer string) *Game {
	game := &Game{
		board:  entity.NewBoard(),
		scores: make(map[string]int, 2),
	}
	game.Reset(firstPlayer)

	return game
}

// Reset returns the game to its initial state: every cell empty and
// non-special, scores zero, move count zero, status empty. firstPlayer may
// be empty to pick the opener at random. All five change notifications fire
// once each. Reset never fails.
func (that *Game) Reset(firstPlayer string) {
	if firstPlayer == "" {
		firstPlayer = entity.RandomPlayer()
	}
	that.firstPlayer = firstPlayer

	that.board.Reset()
	that.scores[entity.PlayerX] = 0
	that.scores[entity.PlayerO] = 0
	that.moveCount = 0
	that.status = nil

	that.emitLevelChanged()
	that.emitScoreChanged(nil)
	that.emitBoardChanged()
	that.emitPlayerChanged()
	that.emitStatusChanged()
}

// Move lets the current player claim pos on the current level. It fails
// with apperror.ErrWrongLevel when pos.Z is not the current level and with
// apperror.ErrCellTaken when the cell is occupied; a failed move leaves the
// game untouched.
func (that *Game) Move(pos entity.Position) error {
	if pos.Z != that.CurrentLevel() {
		return fmt.Errorf("%w: z=%d, current level is %d", apperror.ErrWrongLevel, pos.Z, that.CurrentLevel())
	}

	cell := that.board.Cell(pos)
	if cell == nil {
		return fmt.Errorf("%w: %v", apperror.ErrInvalidCell, pos)
	}

	if !cell.IsEmpty() {
		return fmt.Errorf("%w: %v", apperror.ErrCellTaken, pos)
	}

	that.status = nil
	cell.Value = that.CurrentPlayer()
	cell.Special = that.IsCurrentMoveSpecial()
	that.emitBoardChanged()

	that.scoreCompletedLines(pos)

	that.moveCount++
	that.emitPlayerChanged()

	newLevel := that.moveCount%entity.CellsPerLevel == 0
	if newLevel {
		that.emitLevelChanged()
	}
	if newLevel && !that.Done() {
		that.status = append(that.status, StatusMessage{Kind: StatusAscend})
	}

	if that.Done() {
		if winner := that.Winner(); winner == "" {
			that.status = append(that.status, StatusMessage{Kind: StatusTie})
		} else {
			that.status = append(that.status, StatusMessage{Kind: StatusWinner, Player: winner})
		}
	}
	that.emitStatusChanged()

	return nil
}

// scoreCompletedLines scans the winning-path table for lines completed by
// the move at pos, scores them for the current player and reports every
// cell of every completed line in a single score-changed batch.
func (that *Game) scoreCompletedLines(pos entity.Position) {
	player := that.CurrentPlayer()

	pointsEarned := 0
	var highlighted []entity.Position
	seen := make(map[entity.Position]bool)

	for _, path := range WinningPaths() {
		if pos.Z < path[0].Z {
			// The line reaches above the current level, so it cannot be
			// complete yet.
			continue
		}
		if !path.Contains(pos) {
			continue
		}

		hits := 0
		specialHits := 0
		for _, member := range path {
			cell := that.board.Cell(member)
			if cell.Value != player {
				continue
			}
			hits++
			if cell.Special {
				specialHits++
			}
		}

		if hits == entity.Size {
			for _, member := range path {
				if !seen[member] {
					seen[member] = true
					highlighted = append(highlighted, member)
				}
			}
		}

		// An all-special line is worth more, so check it first.
		if specialHits == entity.Size {
			pointsEarned += SpecialLineValue
		} else if hits == entity.Size {
			pointsEarned += LineValue
		}
	}

	if pointsEarned == 0 {
		return
	}

	that.scores[player] += pointsEarned
	that.emitScoreChanged(highlighted)
	that.status = append(that.status, StatusMessage{Kind: StatusPointsEarned, Points: pointsEarned})
}

// Done reports whether the board is full.
func (that *Game) Done() bool {
	return that.moveCount == entity.TotalCells
}

// MoveCount returns the number of moves made so far.
func (that *Game) MoveCount() int {
	return that.moveCount
}

// CurrentLevel returns the level the game is filling.
func (that *Game) CurrentLevel() int {
	return that.moveCount / entity.CellsPerLevel
}

// FirstPlayer returns the player who opened the game.
func (that *Game) FirstPlayer() string {
	return that.firstPlayer
}

// CurrentPlayer returns whose turn it is.
func (that *Game) CurrentPlayer() string {
	if that.moveCount%2 == 1 {
		return entity.OtherPlayer(that.firstPlayer)
	}

	return that.firstPlayer
}

// IsCurrentMoveSpecial reports whether the cell filled by the next move
// becomes special.
func (that *Game) IsCurrentMoveSpecial() bool {
	return entity.IsSpecialMoveOffset(that.moveCount % entity.CellsPerLevel)
}

// Winner returns the player with the strictly higher score, or the empty
// string when the scores are level. Meaningful once Done, but computable at
// any time.
func (that *Game) Winner() string {
	difference := that.scores[entity.PlayerX] - that.scores[entity.PlayerO]
	switch {
	case difference > 0:
		return entity.PlayerX
	case difference < 0:
		return entity.PlayerO
	default:
		return ""
	}
}

// Scores returns a copy of the score table.
func (that *Game) Scores() map[string]int {
	scores := make(map[string]int, len(that.scores))
	for player, points := range that.scores {
		scores[player] = points
	}

	return scores
}

// Cell returns a copy of the cell at pos.
func (that *Game) Cell(pos entity.Position) entity.Cell {
	return *that.board.Cell(pos)
}

// Status returns the messages produced by the most recent move.
func (that *Game) Status() []StatusMessage {
	return append([]StatusMessage(nil), that.status...)
}

// String dumps the board as text, levels from highest to lowest (the only
// way is up), each level a grid of two-character cells, followed by the
// turn line while the game is running and the running score.
func (that *Game) String() string {
	var buf strings.Builder

	for z := entity.Size - 1; z >= 0; z-- {
		fmt.Fprintf(&buf, "Level: %d\n", z+1)
		buf.WriteString("--------\n")
		for y := 0; y < entity.Size; y++ {
			for x := 0; x < entity.Size; x++ {
				buf.WriteString(that.board.Cell(entity.Position{X: x, Y: y, Z: z}).String())
				buf.WriteByte(' ')
			}
			buf.WriteByte('\n')
		}
		buf.WriteByte('\n')
	}

	if !that.Done() {
		fmt.Fprintf(&buf, "[Level: %d] ", that.CurrentLevel()+1)
		fmt.Fprintf(&buf, "[%s's turn] ", that.CurrentPlayer())
		special := entity.EmptyCell
		if that.IsCurrentMoveSpecial() {
			special = entity.SpecialMark
		}
		fmt.Fprintf(&buf, "[Special: %s] ", special)
	}
	fmt.Fprintf(&buf, "[Score %s:%02d %s:%02d] \n",
		entity.PlayerX, that.scores[entity.PlayerX],
		entity.PlayerO, that.scores[entity.PlayerO])

	return buf.String()
}
