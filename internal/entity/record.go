package entity

import "time"

// Record is the archived outcome of a finished game. Winner is empty when
// the game ended in a tie.
type Record struct {
	ID         string         `json:"id"`
	Winner     string         `json:"winner,omitempty"`
	Scores     map[string]int `json:"scores"`
	MoveCount  int            `json:"move_count"`
	FinishedAt time.Time      `json:"finished_at"`
}
