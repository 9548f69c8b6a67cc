// SPDX-License-Identifier: MIT
//
// api.go: the Build orchestrator and the named sketch registry.
// Constructors are implemented in impl_*.go.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// Constructor appends primitives or groups to root using references from
// alloc. Constructors validate their parameters first and return sentinel
// errors; they never panic.
type Constructor func(root *primitive.Group, alloc *ref.Allocator, cfg builderConfig) error

// Build creates a root group, resolves the configuration from opts and runs
// every constructor in order. Errors are wrapped with "Build: %w" and
// returned immediately; the partially built tree is discarded.
func Build(alloc *ref.Allocator, opts []Option, cons ...Constructor) (*primitive.Group, error) {
	if alloc == nil {
		return nil, fmt.Errorf("Build: nil allocator: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	root := primitive.NewGroup(alloc.Next())

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(root, alloc, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return root, nil
}

// sketches maps demo names to a constructor taking one size argument.
var sketches = map[string]func(n int) Constructor{
	"row":       Row,
	"staircase": func(n int) Constructor { return Staircase(n, MinStaircaseFirst) },
	"wave":      Wave,
	"doubling":  Doubling,
	"pulse":     Pulse,
	"checker":   func(n int) Constructor { return Checker(n, n) },
}

// Sketch returns the named constructor sized by n.
func Sketch(name string, n int) (Constructor, error) {
	mk, ok := sketches[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSketch, name)
	}

	return mk(n), nil
}

// Sketches lists the names Sketch accepts, sorted.
func Sketches() []string {
	names := make([]string, 0, len(sketches))
	for n := range sketches {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
