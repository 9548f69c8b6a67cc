// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a state with its depth.
type queueItem[S any] struct {
	state S
	depth int
}

// walker encapsulates mutable search state.
type walker[S any] struct {
	opts    Options
	ctx     context.Context
	expand  func(S) []S
	goal    func(S) bool
	queue   []queueItem[S]
	visited int
}

// Search runs breadth-first search from start, expanding states with expand
// until goal accepts one.
// Returns ErrNilFunc for nil functions, ErrOptionViolation for bad options,
// ErrNotFound when the frontier is exhausted, ctx.Err() on cancellation, or
// any user-supplied hook error.
func Search[S any](start S, expand func(S) []S, goal func(S) bool, opts ...Option) (Result[S], error) {
	if expand == nil || goal == nil {
		return Result[S]{}, ErrNilFunc
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[S]{}, o.err
	}

	w := &walker[S]{
		opts:   o,
		ctx:    o.Ctx,
		expand: expand,
		goal:   goal,
	}
	w.enqueue(start, 0)

	return w.loop()
}

// enqueue calls OnEnqueue and appends the state to the frontier.
func (w *walker[S]) enqueue(s S, d int) {
	w.opts.OnEnqueue(d)
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// dequeue pops the first item.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	var zero queueItem[S]
	w.queue[0] = zero
	w.queue = w.queue[1:]

	return item
}

// loop processes the frontier until a goal, error, exhaustion or cancellation.
func (w *walker[S]) loop() (Result[S], error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return Result[S]{}, w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.visited++
		if err := w.opts.OnVisit(item.depth); err != nil {
			return Result[S]{}, fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
		}
		if w.goal(item.state) {
			return Result[S]{State: item.state, Depth: item.depth, Visited: w.visited}, nil
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		for _, child := range w.expand(item.state) {
			w.enqueue(child, item.depth+1)
		}
	}

	return Result[S]{}, ErrNotFound
}
