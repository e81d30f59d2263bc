package tictactoe

import "fmt"

// StatusKind discriminates the structured status messages that a move
// produces.
type StatusKind int

const (
	// StatusAscend - the board just moved up a level.
	StatusAscend StatusKind = iota
	// StatusTie - the game ended with equal scores.
	StatusTie
	// StatusWinner - the game ended and Player won.
	StatusWinner
	// StatusPointsEarned - the move completed lines worth Points.
	StatusPointsEarned
)

const (
	textAscend = "The only way is up!"
	textTie    = "A tie!"
)

// StatusMessage is one entry of the per-move status list. Player is set for
// StatusWinner, Points for StatusPointsEarned.
type StatusMessage struct {
	Kind   StatusKind
	Player string
	Points int
}

// String renders the display text of the message.
func (that StatusMessage) String() string {
	switch that.Kind {
	case StatusAscend:
		return textAscend
	case StatusTie:
		return textTie
	case StatusWinner:
		return fmt.Sprintf("%s wins!!!", that.Player)
	case StatusPointsEarned:
		plural := ""
		if that.Points != 1 {
			plural = "s"
		}
		return fmt.Sprintf("%d point%s!", that.Points, plural)
	default:
		return ""
	}
}
