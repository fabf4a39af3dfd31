package astar

import "container/heap"

// frontierEntry is the live frontier record for one cell.
type frontierEntry struct {
	cell  Cell
	g     float64
	h     float64
	f     float64
	seq   int // insertion order, for the FIFO tie-break
	index int // position in the heap
}

// frontier is a min-heap of cells keyed by f, with ties broken by smaller h
// and then by insertion order. It holds at most one entry per cell: updates
// reconcile in place via heap.Fix rather than re-inserting.
type frontier struct {
	entries []*frontierEntry
	byCell  map[Cell]*frontierEntry
	nextSeq int
}

func newFrontier() *frontier {
	f := &frontier{byCell: make(map[Cell]*frontierEntry)}
	heap.Init(f)
	return f
}

func (f *frontier) Len() int { return len(f.entries) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.entries[i], f.entries[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (f *frontier) Swap(i, j int) {
	f.entries[i], f.entries[j] = f.entries[j], f.entries[i]
	f.entries[i].index = i
	f.entries[j].index = j
}

func (f *frontier) Push(x any) {
	e := x.(*frontierEntry)
	e.index = len(f.entries)
	f.entries = append(f.entries, e)
}

func (f *frontier) Pop() any {
	old := f.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	f.entries = old[:n-1]
	return e
}

// contains reports whether cell has a live frontier entry.
func (f *frontier) contains(cell Cell) bool {
	_, ok := f.byCell[cell]
	return ok
}

// upsert records the scores for cell, inserting a new entry or improving
// the existing one in place. An updated entry keeps its original insertion
// sequence.
func (f *frontier) upsert(cell Cell, g, h float64) {
	if e, ok := f.byCell[cell]; ok {
		e.g = g
		e.h = h
		e.f = g + h
		heap.Fix(f, e.index)
		return
	}
	e := &frontierEntry{cell: cell, g: g, h: h, f: g + h, seq: f.nextSeq}
	f.nextSeq++
	heap.Push(f, e)
	f.byCell[cell] = e
}

// pop removes and returns the best entry.
func (f *frontier) pop() *frontierEntry {
	e := heap.Pop(f).(*frontierEntry)
	delete(f.byCell, e.cell)
	return e
}

// cells returns the set of cells currently on the frontier.
func (f *frontier) cells() map[Cell]bool {
	m := make(map[Cell]bool, len(f.byCell))
	for c := range f.byCell {
		m[c] = true
	}
	return m
}
