// Package astar computes shortest paths between two cells of a 2-D
// occupancy grid using A* search with a Euclidean-distance heuristic.
//
// It exposes two main entry points:
//
//   - FindPath: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or
//     debugging tools.
//
// A Grid is immutable once constructed and may be shared by concurrent
// FindPath calls; all mutable search state is private to each call.
package astar
