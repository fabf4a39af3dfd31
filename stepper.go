package astar

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gridnav/astar/internal"
)

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	Current   Cell
	Open      map[Cell]bool
	Closed    map[Cell]bool
	CameFrom  map[Cell]Cell
	Done      bool
	Found     bool
	Path      []Cell
	StepIndex int
}

// Stepper drives the same search as FindPath one expansion at a time, for
// UIs and debugging tools. It is not safe for concurrent use; run one
// Stepper per goroutine.
type Stepper struct {
	grid      *Grid
	start     Cell
	goal      Cell
	conn      Connectivity
	heuristic Heuristic
	logger    *zap.Logger

	open              *frontier
	closedSet         map[Cell]bool
	cameFrom          map[Cell]Cell
	pathCostFromStart map[Cell]float64

	stepCount int
	done      bool
	found     bool
}

// NewStepper creates a stepper over grid from start to goal. Endpoints are
// validated the same way FindPath validates them.
func NewStepper(grid *Grid, start, goal Cell, conn Connectivity, options ...Option) (*Stepper, error) {
	opts := Options{Heuristic: Euclidean, Logger: zap.NewNop()}
	for _, o := range options {
		o(&opts)
	}
	if err := validateEndpoints(grid, start, goal); err != nil {
		return nil, err
	}

	s := &Stepper{
		grid: grid, start: start, goal: goal, conn: conn,
		heuristic:         opts.Heuristic,
		logger:            opts.Logger,
		open:              newFrontier(),
		closedSet:         make(map[Cell]bool),
		cameFrom:          make(map[Cell]Cell),
		pathCostFromStart: map[Cell]float64{start: 0},
	}
	s.open.upsert(start, 0, s.heuristic(start, goal))
	return s, nil
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the snapshot reports Done, further calls return the final state
// unchanged.
func (s *Stepper) Step() (StepSnapshot, error) {
	if s.done {
		return s.snapshot(Cell{}, nil), nil
	}
	if s.open.Len() == 0 {
		s.done = true
		return s.snapshot(Cell{}, nil), nil
	}

	s.stepCount++
	current := s.open.pop()
	if s.closedSet[current.cell] {
		return s.Step()
	}
	s.closedSet[current.cell] = true

	if current.cell == s.goal {
		s.done = true
		path, ok := internal.ReconstructPath(s.cameFrom, current.cell, s.start, s.grid.Width()*s.grid.Height())
		if !ok {
			return StepSnapshot{}, fmt.Errorf("%w: walk from (%d,%d) did not reach start",
				ErrBrokenChain, s.goal.Row, s.goal.Col)
		}
		s.found = true
		s.logger.Debug("goal reached", zap.Int("steps", s.stepCount), zap.Float64("cost", current.g))
		return s.snapshot(current.cell, path), nil
	}

	for _, neighbor := range s.grid.Neighbors(current.cell, s.conn) {
		passable, err := s.grid.IsPassable(neighbor)
		if err != nil || !passable || s.closedSet[neighbor] {
			continue
		}
		stepCost, err := s.grid.StepCost(current.cell, neighbor, s.conn)
		if err != nil {
			continue
		}
		tentativeG := current.g + stepCost
		if knownG, exists := s.pathCostFromStart[neighbor]; !exists || tentativeG < knownG {
			s.pathCostFromStart[neighbor] = tentativeG
			s.cameFrom[neighbor] = current.cell
			s.open.upsert(neighbor, tentativeG, s.heuristic(neighbor, s.goal))
		}
	}

	return s.snapshot(current.cell, nil), nil
}

func (s *Stepper) snapshot(current Cell, path []Cell) StepSnapshot {
	return StepSnapshot{
		Current:   current,
		Open:      s.open.cells(),
		Closed:    copyBoolMap(s.closedSet),
		CameFrom:  copyCameFrom(s.cameFrom),
		Done:      s.done,
		Found:     s.found,
		Path:      path,
		StepIndex: s.stepCount,
	}
}

func copyBoolMap(m map[Cell]bool) map[Cell]bool {
	c := make(map[Cell]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func copyCameFrom(m map[Cell]Cell) map[Cell]Cell {
	c := make(map[Cell]Cell, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
