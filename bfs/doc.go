// SPDX-License-Identifier: MIT

// Package bfs provides a bounded breadth-first search over an implicit state
// space: states are produced on demand by an expand function and the search
// stops at the first state accepted by a goal predicate.
//
// What
//
//   - Explore states in non-decreasing depth (number of expansions) from a
//     start state; the first goal state found is therefore one of minimal
//     depth.
//   - Returns a Result with the goal State, its Depth and the number of
//     states Visited.
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a state joins the frontier)
//   - OnVisit   (when a state is dequeued; may abort with an error)
//   - Honors MaxDepth (d>0): states at depth d are tested but never expanded.
//
// Why
//
//   - Implicit spaces (e.g. chains of pairwise operators over a number
//     sequence) have an unbounded branching depth; an explicit frontier with
//     a hard depth cap always terminates.
//
// Determinism
//
//	Children are enqueued in the order expand returns them, so the visit
//	sequence and the returned goal are fully reproducible.
//
// Complexity (b = branching factor, d = MaxDepth)
//
//   - Time:   O(b^d) expansions in the worst case.
//   - Memory: O(b^d) for the frontier.
//
// Usage
//
//	res, err := bfs.Search(start, expand, isGoal, bfs.WithMaxDepth(4))
//	if errors.Is(err, bfs.ErrNotFound) {
//		// no goal within the depth cap
//	}
//
// Errors
//
//   - ErrNilFunc          if expand or goal is nil.
//   - ErrNotFound         if the frontier empties without reaching a goal.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err().
package bfs
