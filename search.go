package astar

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gridnav/astar/internal"
)

// Result contains the outcome of a search.
type Result struct {
	Path          []Cell
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	Heuristic     Heuristic
	MaxIterations int
	Logger        *zap.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the default Euclidean heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(options *Options) { options.Heuristic = h }
}

// WithMaxIterations caps the number of expansion loop iterations. A search
// that hits the cap fails with ErrSearchAborted instead of running to
// exhaustion.
func WithMaxIterations(n int) Option {
	return func(options *Options) { options.MaxIterations = n }
}

// WithLogger attaches a logger for debug-level search tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// FindPath runs an A* search over grid from start to goal under the given
// connectivity. It returns the cheapest path from start to goal inclusive,
// or an error: ErrInvalidEndpoint if either endpoint is blocked or out of
// bounds, ErrNoPathFound if the goal is unreachable, ErrSearchAborted if an
// iteration cap was set and hit.
//
// Each call owns its search state, so a single grid may serve concurrent
// FindPath calls.
func FindPath(grid *Grid, start, goal Cell, conn Connectivity, options ...Option) (Result, error) {
	// --- Apply options ---
	searchOptions := Options{
		Heuristic: Euclidean,
		Logger:    zap.NewNop(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	logger := searchOptions.Logger
	heuristic := searchOptions.Heuristic

	if err := validateEndpoints(grid, start, goal); err != nil {
		return Result{}, err
	}

	logger.Debug("starting search",
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.Int("connectivity", int(conn)))

	// --- Initialize state ---
	open := newFrontier()
	open.upsert(start, 0, heuristic(start, goal))

	cameFrom := make(map[Cell]Cell)
	pathCostFromStart := map[Cell]float64{start: 0}
	closedSet := make(map[Cell]bool)

	// --- Expansion loop ---
	expandedNodes := 0
	iterations := 0
	for open.Len() > 0 {
		if searchOptions.MaxIterations > 0 && iterations >= searchOptions.MaxIterations {
			logger.Debug("search aborted", zap.Int("iterations", iterations))
			return Result{ExpandedNodes: expandedNodes}, fmt.Errorf("%w: after %d iterations", ErrSearchAborted, iterations)
		}
		iterations++

		current := open.pop()

		// Skip stale duplicates. Unreachable with in-place frontier updates,
		// kept as a guard.
		if closedSet[current.cell] {
			continue
		}
		closedSet[current.cell] = true
		expandedNodes++

		// Goal check
		if current.cell == goal {
			path, ok := internal.ReconstructPath(cameFrom, current.cell, start, grid.Width()*grid.Height())
			if !ok {
				return Result{}, fmt.Errorf("%w: walk from (%d,%d) did not reach start", ErrBrokenChain, goal.Row, goal.Col)
			}
			logger.Debug("goal reached",
				zap.Float64("cost", current.g),
				zap.Int("expanded", expandedNodes))
			return Result{
				Path:          path,
				TotalCost:     current.g,
				ExpandedNodes: expandedNodes,
				Found:         true,
			}, nil
		}

		for _, neighbor := range grid.Neighbors(current.cell, conn) {
			passable, err := grid.IsPassable(neighbor)
			if err != nil || !passable || closedSet[neighbor] {
				continue
			}
			stepCost, err := grid.StepCost(current.cell, neighbor, conn)
			if err != nil {
				continue
			}
			tentativeG := current.g + stepCost
			if knownG, exists := pathCostFromStart[neighbor]; !exists || tentativeG < knownG {
				pathCostFromStart[neighbor] = tentativeG
				cameFrom[neighbor] = current.cell
				open.upsert(neighbor, tentativeG, heuristic(neighbor, goal))
			}
		}
	}

	logger.Debug("frontier exhausted", zap.Int("expanded", expandedNodes))
	return Result{ExpandedNodes: expandedNodes}, fmt.Errorf("%w: from (%d,%d) to (%d,%d)",
		ErrNoPathFound, start.Row, start.Col, goal.Row, goal.Col)
}

func validateEndpoints(grid *Grid, start, goal Cell) error {
	for _, endpoint := range [2]Cell{start, goal} {
		passable, err := grid.IsPassable(endpoint)
		if err != nil {
			return fmt.Errorf("%w: (%d,%d) out of bounds", ErrInvalidEndpoint, endpoint.Row, endpoint.Col)
		}
		if !passable {
			return fmt.Errorf("%w: (%d,%d) is blocked", ErrInvalidEndpoint, endpoint.Row, endpoint.Col)
		}
	}
	return nil
}
