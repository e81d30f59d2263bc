package tictactoe

import "github.com/onlyupgames/onlyup-backend/internal/entity"

// Events holds the registered observers of a game, one callback slot per
// notification kind. Delivery is synchronous: callbacks run inside Move and
// Reset, in registration order, before the call returns. An observer must
// not mutate the game it is observing while a notification is being
// delivered.
type Events struct {
	boardChanged  []func()
	scoreChanged  []func(highlighted []entity.Position)
	playerChanged []func()
	levelChanged  []func()
	statusChanged []func()
}

// OnBoardChanged fires immediately after a cell's value and special flag
// are set.
func (that *Events) OnBoardChanged(fn func()) {
	that.boardChanged = append(that.boardChanged, fn)
}

// OnScoreChanged fires when one or more lines complete and points are
// awarded. The payload is every cell of every completed line, for
// highlighting.
func (that *Events) OnScoreChanged(fn func(highlighted []entity.Position)) {
	that.scoreChanged = append(that.scoreChanged, fn)
}

// OnPlayerChanged fires after the move count advances and the turn passes.
func (that *Events) OnPlayerChanged(fn func()) {
	that.playerChanged = append(that.playerChanged, fn)
}

// OnLevelChanged fires when the move count crosses a multiple of
// CellsPerLevel.
func (that *Events) OnLevelChanged(fn func()) {
	that.levelChanged = append(that.levelChanged, fn)
}

// OnStatusChanged fires after the status messages for a move are finalized.
func (that *Events) OnStatusChanged(fn func()) {
	that.statusChanged = append(that.statusChanged, fn)
}

func (that *Events) emitBoardChanged() {
	for _, fn := range that.boardChanged {
		fn()
	}
}

func (that *Events) emitScoreChanged(highlighted []entity.Position) {
	for _, fn := range that.scoreChanged {
		fn(highlighted)
	}
}

func (that *Events) emitPlayerChanged() {
	for _, fn := range that.playerChanged {
		fn()
	}
}

func (that *Events) emitLevelChanged() {
	for _, fn := range that.levelChanged {
		fn()
	}
}

func (that *Events) emitStatusChanged() {
	for _, fn := range that.statusChanged {
		fn()
	}
}
