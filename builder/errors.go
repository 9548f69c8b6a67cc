// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPrimitives indicates a count (n, groups, rows, cols) below the
// constructor's minimum.
var ErrTooFewPrimitives = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates noise was requested without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil allocator or constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownSketch is returned by Sketch for a name it does not know.
var ErrUnknownSketch = errors.New("builder: unknown sketch")

// builderErrorf prefixes an error with the constructor name, keeping %w.
func builderErrorf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
