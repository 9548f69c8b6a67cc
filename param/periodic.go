// SPDX-License-Identifier: MIT

package param

import (
	"slices"

	"github.com/katalvlaran/sketchrule/primitive"
)

// Periodic repeats a block. Numeric blocks are replayed relative to start.
type Periodic struct {
	Block      []primitive.Value
	numeric    bool
	confidence float64
}

// NewPeriodic returns a Periodic with confidence 1.
func NewPeriodic(block ...primitive.Value) *Periodic {
	numeric := len(block) > 0
	for _, v := range block {
		numeric = numeric && v.IsNumeric()
	}

	return &Periodic{Block: block, numeric: numeric, confidence: 1}
}

func (*Periodic) Kind() Kind             { return KindPeriodic }
func (p *Periodic) Confidence() float64 { return p.confidence }
func (p *Periodic) String() string      { return call(KindPeriodic, p.Block...) }

// Next returns start + block[nth mod len] − block[0] for numeric blocks and a
// numeric start, and block[nth mod len] verbatim otherwise.
func (p *Periodic) Next(start primitive.Value, nth int) primitive.Value {
	n := len(p.Block)
	if n == 0 {
		return start
	}
	v := p.Block[((nth%n)+n)%n]
	if p.numeric && start.IsNumeric() {
		return add(start, diff(v, p.Block[0]))
	}

	return v
}

// fitPeriodic scans for the shortest block b such that every value equals
// b[i mod len(b)]. A column with no repetition is its own block and
// reports confidence 0.5.
func fitPeriodic(values []primitive.Value, flags Flags, tol Tolerance) (Pattern, bool) {
	numeric := flags.Numeric()
	var xs []float64
	if numeric {
		xs, numeric = floats(values)
	}
	equal := func(i, j int) bool {
		if numeric {
			return EqualTolerant(xs[i], xs[j], tol)
		}
		return values[i].Equal(values[j])
	}

	n := len(values)
	period := n
	for l := 1; l < n; l++ {
		ok := true
		for i := l; i < n && ok; i++ {
			ok = equal(i, i%l)
		}
		if ok {
			period = l
			break
		}
	}

	p := &Periodic{Block: slices.Clone(values[:period]), numeric: numeric}
	switch {
	case period == n:
		p.confidence = 0.5
	case !numeric:
		p.confidence = 1
	default:
		predicted := make([]float64, n)
		for i := range predicted {
			predicted[i] = xs[i%period]
		}
		p.confidence = confidence(mse(xs, predicted), tol)
	}

	return p, true
}
