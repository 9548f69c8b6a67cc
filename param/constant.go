// SPDX-License-Identifier: MIT

package param

import (
	"math"

	"github.com/katalvlaran/sketchrule/primitive"
)

// Constant predicts the same value at every index.
type Constant struct {
	Value      primitive.Value
	confidence float64
}

// NewConstant returns a Constant with confidence 1.
func NewConstant(v primitive.Value) *Constant { return &Constant{Value: v, confidence: 1} }

func (*Constant) Kind() Kind             { return KindConstant }
func (c *Constant) Confidence() float64 { return c.confidence }
func (c *Constant) String() string      { return call(KindConstant, c.Value) }

// Next echoes start when it is set; the fitted value is only the fallback.
func (c *Constant) Next(start primitive.Value, _ int) primitive.Value {
	if !start.IsNone() {
		return start
	}

	return c.Value
}

// fitConstant accepts numeric columns whose values all sit within tolerance
// of their mean, and other columns whose values are identical.
func fitConstant(values []primitive.Value, flags Flags, tol Tolerance) (Pattern, bool) {
	if !flags.Numeric() {
		for _, v := range values[1:] {
			if !v.Equal(values[0]) {
				return nil, false
			}
		}
		return &Constant{Value: values[0], confidence: 1}, true
	}

	xs, ok := floats(values)
	if !ok {
		return nil, false
	}
	m := mean(xs)
	for _, x := range xs {
		if !EqualTolerant(x, m, tol) {
			return nil, false
		}
	}
	value := primitive.Float(m)
	if flags.Dtype == DtypeInt {
		m = math.Round(m)
		value = primitive.Int(int(m))
	}
	predicted := make([]float64, len(xs))
	for i := range predicted {
		predicted[i] = m
	}

	return &Constant{Value: value, confidence: confidence(mse(xs, predicted), tol)}, true
}
