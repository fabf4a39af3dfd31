package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontierOrdering(t *testing.T) {
	t.Run("ascending f", func(t *testing.T) {
		f := newFrontier()
		f.upsert(Cell{0, 0}, 3, 0)
		f.upsert(Cell{0, 1}, 1, 0)
		f.upsert(Cell{0, 2}, 2, 0)

		assert.Equal(t, Cell{0, 1}, f.pop().cell)
		assert.Equal(t, Cell{0, 2}, f.pop().cell)
		assert.Equal(t, Cell{0, 0}, f.pop().cell)
	})

	t.Run("equal f prefers smaller h", func(t *testing.T) {
		f := newFrontier()
		f.upsert(Cell{0, 0}, 1, 4)
		f.upsert(Cell{0, 1}, 3, 2)

		assert.Equal(t, Cell{0, 1}, f.pop().cell)
		assert.Equal(t, Cell{0, 0}, f.pop().cell)
	})

	t.Run("equal f and h falls back to insertion order", func(t *testing.T) {
		f := newFrontier()
		f.upsert(Cell{2, 2}, 3, 2)
		f.upsert(Cell{1, 1}, 3, 2)
		f.upsert(Cell{0, 0}, 3, 2)

		assert.Equal(t, Cell{2, 2}, f.pop().cell)
		assert.Equal(t, Cell{1, 1}, f.pop().cell)
		assert.Equal(t, Cell{0, 0}, f.pop().cell)
	})
}

func TestFrontierUpsert(t *testing.T) {
	f := newFrontier()
	f.upsert(Cell{0, 0}, 5, 1)
	f.upsert(Cell{0, 1}, 4, 1)
	require.True(t, f.contains(Cell{0, 0}))

	// improving a cell reconciles in place, never duplicates
	f.upsert(Cell{0, 0}, 2, 1)
	assert.Equal(t, 2, f.Len())

	best := f.pop()
	assert.Equal(t, Cell{0, 0}, best.cell)
	assert.Equal(t, 2.0, best.g)
	assert.False(t, f.contains(Cell{0, 0}))
}

func TestFrontierUpdateKeepsInsertionOrder(t *testing.T) {
	f := newFrontier()
	f.upsert(Cell{0, 0}, 6, 0)
	f.upsert(Cell{0, 1}, 5, 0)

	// after the update both entries tie on f and h; the first-inserted wins
	f.upsert(Cell{0, 0}, 5, 0)

	assert.Equal(t, Cell{0, 0}, f.pop().cell)
	assert.Equal(t, Cell{0, 1}, f.pop().cell)
}
