// SPDX-License-Identifier: MIT

package ref

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// Reference identifies a primitive, group or pattern within one session.
type Reference = int

// Unassigned marks a node that has not received a reference yet.
const Unassigned Reference = -1

// ErrReferenceInUse is returned by Reserve when the reference is already taken.
var ErrReferenceInUse = errors.New("ref: reference already in use")

// Allocator hands out references with free-list reuse.
type Allocator struct {
	counter Reference   // highest reference ever issued, -1 when none
	free    []Reference // released references, kept sorted ascending
	log     *slog.Logger
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithLogger routes misuse reports to l instead of slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Allocator) {
		if l != nil {
			a.log = l
		}
	}
}

// New returns an empty Allocator.
func New(opts ...Option) *Allocator {
	a := &Allocator{counter: Unassigned, log: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Next returns the smallest free reference.
func (a *Allocator) Next() Reference {
	if len(a.free) > 0 {
		r := a.free[0]
		a.free = a.free[1:]
		return r
	}
	a.counter++

	return a.counter
}

// Release makes r available again. Negative references are ignored, as are
// references that were never issued or are already free.
func (a *Allocator) Release(r Reference) {
	if r < 0 || r > a.counter {
		return
	}
	i := sort.SearchInts(a.free, r)
	if i < len(a.free) && a.free[i] == r {
		return
	}
	a.free = append(a.free, 0)
	copy(a.free[i+1:], a.free[i:])
	a.free[i] = r
}

// Reserve marks r as in use. A reference above the high-water mark extends
// it and releases every reference in between. Reserving a reference that is
// already in use returns ErrReferenceInUse and leaves the state untouched.
func (a *Allocator) Reserve(r Reference) error {
	if r < 0 {
		return nil
	}
	if r > a.counter {
		for gap := a.counter + 1; gap < r; gap++ {
			a.free = append(a.free, gap)
		}
		a.counter = r
		return nil
	}
	i := sort.SearchInts(a.free, r)
	if i < len(a.free) && a.free[i] == r {
		a.free = append(a.free[:i], a.free[i+1:]...)
		return nil
	}
	a.log.Warn("reference already used", "reference", r)

	return fmt.Errorf("reserve %d: %w", r, ErrReferenceInUse)
}

// IsFree reports whether r could be returned by Next or claimed by Reserve.
func (a *Allocator) IsFree(r Reference) bool {
	if r < 0 {
		return false
	}
	if r > a.counter {
		return true
	}
	i := sort.SearchInts(a.free, r)

	return i < len(a.free) && a.free[i] == r
}

// InUse returns the number of references currently handed out.
func (a *Allocator) InUse() int {
	return a.counter + 1 - len(a.free)
}

// Reset forgets every issued reference.
func (a *Allocator) Reset() {
	a.counter = Unassigned
	a.free = a.free[:0]
}
