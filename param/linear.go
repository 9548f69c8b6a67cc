// SPDX-License-Identifier: MIT

package param

import (
	"github.com/katalvlaran/sketchrule/primitive"
)

// Linear predicts start + nth·delta.
type Linear struct {
	Start      primitive.Value
	Delta      primitive.Value
	confidence float64
}

// NewLinear returns a Linear with confidence 1.
func NewLinear(start, delta primitive.Value) *Linear {
	return &Linear{Start: start, Delta: delta, confidence: 1}
}

func (*Linear) Kind() Kind             { return KindLinear }
func (l *Linear) Confidence() float64 { return l.confidence }
func (l *Linear) String() string      { return call(KindLinear, l.Start, l.Delta) }

// Next returns (start ?? fitted start) + nth·delta. Int inputs give Int.
func (l *Linear) Next(start primitive.Value, nth int) primitive.Value {
	base := l.Start
	if start.IsNumeric() {
		base = start
	}

	return add(base, scale(l.Delta, nth))
}

// fitLinear takes start and delta from the first pair and accepts numeric
// columns whose every first difference is within tolerance of delta.
func fitLinear(values []primitive.Value, flags Flags, tol Tolerance) (Pattern, bool) {
	if !flags.Numeric() {
		return nil, false
	}
	xs, ok := floats(values)
	if !ok {
		return nil, false
	}
	d := xs[1] - xs[0]
	for i := 2; i < len(xs); i++ {
		if !EqualTolerant(xs[i]-xs[i-1], d, tol) {
			return nil, false
		}
	}
	predicted := make([]float64, len(xs))
	for i := range predicted {
		predicted[i] = xs[0] + float64(i)*d
	}

	return &Linear{
		Start:      values[0],
		Delta:      diff(values[1], values[0]),
		confidence: confidence(mse(xs, predicted), tol),
	}, true
}
