package astar

import "math"

// Heuristic returns the estimated cost from one cell to another. It must
// never overestimate the true cost for the search to stay optimal.
type Heuristic func(from, to Cell) float64

// Euclidean is the straight-line distance. Admissible and consistent for
// both Conn4 and Conn8 step costs; the default heuristic.
func Euclidean(from, to Cell) float64 {
	dr := float64(from.Row - to.Row)
	dc := float64(from.Col - to.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Octile is the exact distance on an open grid under Conn8: diagonal moves
// cover the shorter axis, orthogonal moves the remainder. A tighter bound
// than Euclidean for 8-connected grids.
func Octile(from, to Cell) float64 {
	dr := float64(abs(from.Row - to.Row))
	dc := float64(abs(from.Col - to.Col))
	if dr < dc {
		dr, dc = dc, dr
	}
	return dr + (math.Sqrt2-1)*dc
}
