package entity

const (
	EmptyCell   = "_"
	SpecialMark = "*"
)

// SpecialMoveOffsets are the in-level move indexes (move count modulo
// CellsPerLevel) whose cells become special when filled.
var SpecialMoveOffsets = [...]int{1, 2, 6, 7}

// IsSpecialMoveOffset reports whether a cell filled at the given in-level
// offset becomes special.
func IsSpecialMoveOffset(offset int) bool {
	for _, special := range SpecialMoveOffsets {
		if offset == special {
			return true
		}
	}

	return false
}

// Cell is one square of the board. Value is EmptyCell, PlayerX or PlayerO.
// Special is only meaningful once the cell is filled.
type Cell struct {
	Value   string `json:"value"`
	Special bool   `json:"special"`
}

func (that *Cell) Reset() {
	that.Value = EmptyCell
	that.Special = false
}

func (that Cell) IsEmpty() bool {
	return that.Value == EmptyCell
}

// String renders the two-character console form: the value followed by the
// special marker, or a space.
func (that *Cell) String() string {
	if that.Special {
		return that.Value + SpecialMark
	}

	return that.Value + " "
}
