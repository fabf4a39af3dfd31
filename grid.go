package astar

import (
	"fmt"
	"math"
)

// Cell is a grid coordinate. Cells are compared structurally.
type Cell struct {
	Row int
	Col int
}

// Connectivity selects the neighborhood relation of a grid.
type Connectivity int

const (
	// Conn4 allows orthogonal moves only.
	Conn4 Connectivity = 4
	// Conn8 additionally allows the four diagonals.
	Conn8 Connectivity = 8
)

// Layout tag codes, as accepted by FromLayout.
const (
	TagFree     = 0
	TagStart    = 1
	TagGoal     = 2
	TagObstacle = 3
)

// Orthogonal moves first, then diagonals; Conn4 uses the first four entries.
// The order is fixed so frontier insertion order, and with it the FIFO
// tie-break, is reproducible.
var directions = [8]Cell{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Grid is an immutable rectangular occupancy map. Construct it once via
// NewGrid or FromLayout; it is safe to share across concurrent searches.
type Grid struct {
	width   int
	height  int
	blocked []bool // row-major
}

// NewGrid builds a grid from a rectangular occupancy table, where true
// marks a blocked cell. The table must be non-empty and non-ragged.
func NewGrid(occupancy [][]bool) (*Grid, error) {
	if len(occupancy) == 0 || len(occupancy[0]) == 0 {
		return nil, fmt.Errorf("%w: empty occupancy table", ErrInvalidLayout)
	}
	height := len(occupancy)
	width := len(occupancy[0])
	g := &Grid{width: width, height: height, blocked: make([]bool, width*height)}
	for r, row := range occupancy {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidLayout, r, len(row), width)
		}
		for c, b := range row {
			g.blocked[r*width+c] = b
		}
	}
	return g, nil
}

// FromLayout builds a grid from a tagged layout (TagFree, TagStart, TagGoal,
// TagObstacle) and returns the grid together with the start and goal cells.
// Only the passability projection of the tags is retained; if a tag occurs
// more than once the last occurrence wins.
func FromLayout(layout [][]int) (*Grid, Cell, Cell, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, Cell{}, Cell{}, fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	}
	occupancy := make([][]bool, len(layout))
	var start, goal Cell
	haveStart, haveGoal := false, false
	width := len(layout[0])
	for r, row := range layout {
		if len(row) != width {
			return nil, Cell{}, Cell{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidLayout, r, len(row), width)
		}
		occupancy[r] = make([]bool, width)
		for c, tag := range row {
			switch tag {
			case TagFree:
			case TagStart:
				start = Cell{r, c}
				haveStart = true
			case TagGoal:
				goal = Cell{r, c}
				haveGoal = true
			case TagObstacle:
				occupancy[r][c] = true
			default:
				return nil, Cell{}, Cell{}, fmt.Errorf("%w: unknown tag %d at (%d,%d)", ErrInvalidLayout, tag, r, c)
			}
		}
	}
	if !haveStart {
		return nil, Cell{}, Cell{}, fmt.Errorf("%w: no start found", ErrInvalidLayout)
	}
	if !haveGoal {
		return nil, Cell{}, Cell{}, fmt.Errorf("%w: no goal found", ErrInvalidLayout)
	}
	g, err := NewGrid(occupancy)
	if err != nil {
		return nil, Cell{}, Cell{}, err
	}
	return g, start, goal, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid's dimensions.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// IsPassable reports whether c is free. It fails with ErrOutOfBounds for
// cells outside the grid.
func (g *Grid) IsPassable(c Cell) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.Row, c.Col)
	}
	return !g.blocked[c.Row*g.width+c.Col], nil
}

// Neighbors returns the in-bounds cells reachable from c in one step under
// conn. Blocked cells are included: filtering by passability is the
// caller's concern, so "adjacent but blocked" stays distinguishable from
// "out of range".
func (g *Grid) Neighbors(c Cell, conn Connectivity) []Cell {
	n := 4
	if conn == Conn8 {
		n = 8
	}
	out := make([]Cell, 0, n)
	for _, d := range directions[:n] {
		nc := Cell{c.Row + d.Row, c.Col + d.Col}
		if g.InBounds(nc) {
			out = append(out, nc)
		}
	}
	return out
}

// StepCost returns the cost of moving between adjacent cells: 1 for
// orthogonal moves, √2 for diagonal moves under Conn8. It fails with
// ErrNotAdjacent if a and b are not neighbors under conn.
func (g *Grid) StepCost(a, b Cell, conn Connectivity) (float64, error) {
	dr, dc := abs(b.Row-a.Row), abs(b.Col-a.Col)
	switch {
	case dr+dc == 1:
		return 1, nil
	case dr == 1 && dc == 1 && conn == Conn8:
		return math.Sqrt2, nil
	default:
		return 0, fmt.Errorf("%w: (%d,%d) and (%d,%d)", ErrNotAdjacent, a.Row, a.Col, b.Row, b.Col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
