package tictactoe

import (
	"sync"

	"github.com/onlyupgames/onlyup-backend/internal/entity"
)

// TotalWinningPaths is the number of straight lines of Size cells in the
// cube: per level 3 rows + 3 columns + 2 diagonals, across levels 9
// verticals + 12 stairs + 4 cube diagonals.
const TotalWinningPaths = 49

// Path is one straight line of Size cells. The highest-Z member comes
// first, so a scan can drop the whole path as soon as it sees that the line
// reaches above the level of the move being checked.
type Path [entity.Size]entity.Position

// Contains reports whether pos is a member of the path.
func (that Path) Contains(pos entity.Position) bool {
	for _, member := range that {
		if member == pos {
			return true
		}
	}

	return false
}

var (
	winningPathsOnce sync.Once
	winningPaths     []Path
)

// WinningPaths returns the table of all 49 winning lines. The table is
// built on first use and shared read-only for the rest of the process.
func WinningPaths() []Path {
	winningPathsOnce.Do(func() {
		winningPaths = calcWinningPaths()
	})

	return winningPaths
}

func calcWinningPaths() []Path {
	p := func(x, y, z int) entity.Position {
		return entity.Position{X: x, Y: y, Z: z}
	}

	paths := make([]Path, 0, TotalWinningPaths)

	// Lines within a single level.
	for z := 0; z < entity.Size; z++ {
		for y := 0; y < entity.Size; y++ {
			paths = append(paths, Path{p(0, y, z), p(1, y, z), p(2, y, z)})
		}
		for x := 0; x < entity.Size; x++ {
			paths = append(paths, Path{p(x, 0, z), p(x, 1, z), p(x, 2, z)})
		}
		paths = append(paths,
			Path{p(0, 0, z), p(1, 1, z), p(2, 2, z)},
			Path{p(2, 0, z), p(1, 1, z), p(0, 2, z)},
		)
	}

	// Lines spanning all three levels, highest level first.
	for x := 0; x < entity.Size; x++ {
		for y := 0; y < entity.Size; y++ {
			paths = append(paths, Path{p(x, y, 2), p(x, y, 1), p(x, y, 0)})
		}
		// Column stairs: diagonal in y-z with x fixed.
		paths = append(paths,
			Path{p(x, 2, 2), p(x, 1, 1), p(x, 0, 0)},
			Path{p(x, 0, 2), p(x, 1, 1), p(x, 2, 0)},
		)
	}
	for y := 0; y < entity.Size; y++ {
		// Row stairs: diagonal in x-z with y fixed.
		paths = append(paths,
			Path{p(2, y, 2), p(1, y, 1), p(0, y, 0)},
			Path{p(0, y, 2), p(1, y, 1), p(2, y, 0)},
		)
	}
	// Cube diagonals.
	paths = append(paths,
		Path{p(2, 2, 2), p(1, 1, 1), p(0, 0, 0)},
		Path{p(2, 0, 2), p(1, 1, 1), p(0, 2, 0)},
		Path{p(0, 2, 2), p(1, 1, 1), p(2, 0, 0)},
		Path{p(0, 0, 2), p(1, 1, 1), p(2, 2, 0)},
	)

	return paths
}
