package entity

import "math/rand"

const (
	PlayerX = "X"
	PlayerO = "O"
)

// OtherPlayer returns the opponent's mark.
func OtherPlayer(player string) string {
	if player == PlayerX {
		return PlayerO
	}

	return PlayerX
}

// RandomPlayer picks the opening player for a fresh game.
func RandomPlayer() string {
	if rand.Intn(2) == 0 { //nolint: gosec // a coin flip, not a secret
		return PlayerX
	}

	return PlayerO
}
