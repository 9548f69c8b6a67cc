// SPDX-License-Identifier: MIT

package param

import (
	"log/slog"

	"github.com/katalvlaran/sketchrule/primitive"
)

// SearchParameters fits each of kinds to values in order and returns the
// best-scoring Pattern, or nil when none fits. A fit with confidence 1 ends
// the search. For numeric columns tol.Absolute is scaled by the column range.
//
// Errors:
//   - ErrOptionViolation for an invalid Option.
func SearchParameters(values []primitive.Value, kinds []Kind, tol Tolerance, opts ...Option) (Pattern, error) {
	o := newOptions(opts)
	if o.err != nil {
		return nil, o.err
	}
	flags := NewFlags(values)
	if flags.Numeric() {
		if xs, ok := floats(values); ok {
			tol.Absolute *= ptp(xs)
		}
	}

	var (
		best      Pattern
		bestScore float64
	)
	for _, k := range kinds {
		if len(values) < k.MinimumParameters() {
			continue
		}
		p, ok := k.Apply(values, flags, tol, opts...)
		if !ok {
			continue
		}
		if s := Score(p); best == nil || s > bestScore {
			best, bestScore = p, s
		}
		if p.Confidence() >= 1 {
			break
		}
	}
	if best != nil {
		o.log.Debug("parameter pattern",
			slog.Int("values", len(values)),
			slog.String("dtype", flags.Dtype.String()),
			slog.String("pattern", best.String()),
			slog.Float64("score", bestScore))
	}

	return best, nil
}
