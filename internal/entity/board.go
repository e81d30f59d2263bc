package entity

// Board holds all 27 cells for the lifetime of a game. Cells are created
// once at construction; only their Value and Special fields change
// afterwards.
type Board struct {
	cells map[Position]*Cell
}

func NewBoard() *Board {
	board := &Board{cells: make(map[Position]*Cell, TotalCells)}
	for _, pos := range Positions() {
		board.cells[pos] = &Cell{Value: EmptyCell}
	}

	return board
}

// Cell returns the cell at pos, or nil when pos is off the board.
func (that *Board) Cell(pos Position) *Cell {
	return that.cells[pos]
}

// Reset empties every cell.
func (that *Board) Reset() {
	for _, cell := range that.cells {
		cell.Reset()
	}
}
