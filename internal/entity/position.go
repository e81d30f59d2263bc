package entity

// Size is the width of the board along each axis.
const (
	Size          = 3
	CellsPerLevel = Size * Size
	TotalCells    = Size * Size * Size
)

// Position locates a cell in the cube. Z is the level, counted from the
// bottom; X and Y address the cell within its level.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// OnBoard reports whether every coordinate is within [0, Size).
func (that Position) OnBoard() bool {
	return that.X >= 0 && that.X < Size &&
		that.Y >= 0 && that.Y < Size &&
		that.Z >= 0 && that.Z < Size
}

// Invert mirrors a coordinate: Size - 1 - i.
func Invert(i int) int {
	return Size - 1 - i
}

var positions = buildPositions()

func buildPositions() []Position {
	out := make([]Position, 0, TotalCells)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				out = append(out, Position{X: x, Y: y, Z: z})
			}
		}
	}

	return out
}

// Positions returns every position on the board in a fixed order: x outer,
// y middle, z inner. The order is stable so that textual dumps and
// snapshots are deterministic. Callers must not modify the returned slice.
func Positions() []Position {
	return positions
}
