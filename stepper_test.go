package astar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStepper_MatchesFindPath(t *testing.T) {
	g, start, goal := exampleGrid(t)

	want, err := FindPath(g, start, goal, Conn8)
	require.NoError(t, err)

	s, err := NewStepper(g, start, goal, Conn8, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	var final StepSnapshot
	prevClosed := 0
	for i := 0; i < g.Width()*g.Height()+1; i++ {
		snap, err := s.Step()
		require.NoError(t, err)
		// closed set only grows
		assert.GreaterOrEqual(t, len(snap.Closed), prevClosed)
		prevClosed = len(snap.Closed)
		if snap.Done {
			final = snap
			break
		}
	}

	require.True(t, final.Done)
	assert.True(t, final.Found)
	assert.Equal(t, goal, final.Current)
	if diff := cmp.Diff(want.Path, final.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want.ExpandedNodes, final.StepIndex)

	// stepping past completion keeps reporting the final state
	again, err := s.Step()
	require.NoError(t, err)
	assert.True(t, again.Done)
	assert.True(t, again.Found)
	assert.Equal(t, final.StepIndex, again.StepIndex)
}

func TestStepper_NoPath(t *testing.T) {
	g, err := NewGrid([][]bool{
		{false, true, false},
		{false, true, false},
	})
	require.NoError(t, err)

	s, err := NewStepper(g, Cell{0, 0}, Cell{0, 2}, Conn4)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		snap, err := s.Step()
		require.NoError(t, err)
		if snap.Done {
			assert.False(t, snap.Found)
			assert.Empty(t, snap.Path)
			return
		}
	}
	t.Fatal("stepper never finished")
}

func TestStepper_InvalidEndpoint(t *testing.T) {
	g, start, _ := exampleGrid(t)

	_, err := NewStepper(g, start, Cell{1, 3}, Conn4)
	assert.ErrorIs(t, err, ErrInvalidEndpoint)
}

func TestStepper_SnapshotIsolation(t *testing.T) {
	g, start, goal := exampleGrid(t)

	s, err := NewStepper(g, start, goal, Conn4)
	require.NoError(t, err)

	snap, err := s.Step()
	require.NoError(t, err)

	// mutating the snapshot must not affect later steps
	for c := range snap.Closed {
		delete(snap.Closed, c)
	}
	snap.Open[Cell{-1, -1}] = true

	next, err := s.Step()
	require.NoError(t, err)
	assert.Contains(t, next.Closed, start)
	assert.NotContains(t, next.Open, Cell{-1, -1})
}
