package astar

import "errors"

// Sentinel errors for grid and search operations.
var (
	// ErrOutOfBounds indicates a cell outside the grid's dimensions.
	ErrOutOfBounds = errors.New("astar: cell out of bounds")

	// ErrNotAdjacent indicates a step cost was requested for two cells that
	// are not neighbors under the given connectivity.
	ErrNotAdjacent = errors.New("astar: cells not adjacent")

	// ErrInvalidEndpoint indicates a start or goal that is blocked or out of
	// bounds.
	ErrInvalidEndpoint = errors.New("astar: invalid endpoint")

	// ErrNoPathFound indicates the frontier was exhausted without reaching
	// the goal. This is a normal outcome for grids with no solution.
	ErrNoPathFound = errors.New("astar: no path found")

	// ErrSearchAborted indicates the iteration ceiling was hit before the
	// search could conclude either way.
	ErrSearchAborted = errors.New("astar: search aborted")

	// ErrBrokenChain indicates malformed predecessor data during path
	// reconstruction. It should be unreachable given correct engine state.
	ErrBrokenChain = errors.New("astar: broken predecessor chain")

	// ErrInvalidLayout indicates an occupancy table or tagged layout that
	// does not describe a valid rectangular grid.
	ErrInvalidLayout = errors.New("astar: invalid layout")
)
