// SPDX-License-Identifier: MIT

package param

import (
	"math"
	"slices"

	"github.com/katalvlaran/sketchrule/bfs"
	"github.com/katalvlaran/sketchrule/primitive"
)

// Op is a pairwise transform between consecutive values.
type Op byte

const (
	OpMinus Op = '-' // d[i] = a[i+1] − a[i]
	OpPlus  Op = '+' // d[i] = a[i+1] + a[i]
	OpMul   Op = '*' // d[i] = a[i+1] · a[i]
	OpDiv   Op = '/' // d[i] = a[i+1] / a[i]
)

// zeroSafeOps may run on sequences containing zero; the rest divide by a[i]
// when inverted or produced.
var (
	zeroSafeOps   = []Op{OpMinus, OpPlus}
	zeroUnsafeOps = []Op{OpMinus, OpPlus, OpDiv, OpMul}
)

func (o Op) String() string { return string(o) }

// ParseOp maps "+", "-", "*", "/" to an Op.
func ParseOp(s string) (Op, bool) {
	if len(s) != 1 {
		return 0, false
	}
	switch op := Op(s[0]); op {
	case OpMinus, OpPlus, OpMul, OpDiv:
		return op, true
	}

	return 0, false
}

// generate derives the next level from a.
func (o Op) generate(a []float64) []float64 {
	out := make([]float64, len(a)-1)
	for i := range out {
		switch o {
		case OpMinus:
			out[i] = a[i+1] - a[i]
		case OpPlus:
			out[i] = a[i+1] + a[i]
		case OpMul:
			out[i] = a[i+1] * a[i]
		case OpDiv:
			out[i] = a[i+1] / a[i]
		}
	}

	return out
}

// step inverts generate: given a[i] and d[i], return a[i+1].
func (o Op) step(d, a float64) float64 {
	switch o {
	case OpMinus:
		return d + a
	case OpPlus:
		return d - a
	case OpMul:
		return d / a
	default:
		return d * a
	}
}

// Operator replays a chain of pairwise transforms. Seeds[i] is the current
// value of level i; the last seed is the constant the chain collapses to.
type Operator struct {
	Ops        []Op
	Seeds      []float64
	integral   bool
	confidence float64
}

// NewOperator returns an Operator with confidence 1. len(seeds) must be
// len(ops)+1. integral makes Next return Int for whole results.
func NewOperator(ops []Op, seeds []float64, integral bool) *Operator {
	return &Operator{Ops: ops, Seeds: seeds, integral: integral, confidence: 1}
}

func (*Operator) Kind() Kind             { return KindOperator }
func (o *Operator) Confidence() float64 { return o.confidence }

func (o *Operator) String() string {
	parts := make([]string, 0, len(o.Ops)+len(o.Seeds))
	for _, op := range o.Ops {
		parts = append(parts, op.String())
	}
	for _, s := range o.Seeds {
		parts = append(parts, primitive.Number(s, o.integral).String())
	}

	return callText(KindOperator, parts)
}

// Next advances the chain nth times from its seeds, with start replacing the
// base seed when numeric, and returns the base cell.
func (o *Operator) Next(start primitive.Value, nth int) primitive.Value {
	cells := slices.Clone(o.Seeds)
	integral := o.integral
	if f, ok := start.Float64(); ok {
		cells[0] = f
		integral = integral && start.Kind() == primitive.IntValue
	}
	for ; nth > 0; nth-- {
		o.advance(cells)
	}

	return primitive.Number(cells[0], integral)
}

func (o *Operator) advance(cells []float64) {
	for i, op := range o.Ops {
		cells[i] = op.step(cells[i+1], cells[i])
	}
}

// replay returns the first n base values from the seeds.
func (o *Operator) replay(n int) []float64 {
	cells := slices.Clone(o.Seeds)
	out := make([]float64, n)
	for i := range out {
		out[i] = cells[0]
		o.advance(cells)
	}

	return out
}

// opState is one node of the operator search: the current transformed
// sequence plus the chain that produced it.
type opState struct {
	seq   []float64
	ops   []Op
	seeds []float64
}

// divergenceSteps and divergenceFactor bound post-fit growth: the chain is run
// divergenceSteps past the column and must stay within divergenceFactor times
// the observed span.
const (
	divergenceSteps  = 3
	divergenceFactor = 1000
)

// fitOperator searches breadth-first over operator chains until a level is
// constant within tolerance.
func fitOperator(values []primitive.Value, flags Flags, tol Tolerance, maxDepth int) (Pattern, bool) {
	if !flags.Numeric() {
		return nil, false
	}
	xs, ok := floats(values)
	if !ok {
		return nil, false
	}

	goal := func(s opState) bool {
		if len(s.ops) == 0 || len(s.seq) < 2 || !allFinite(s.seq) {
			return false
		}
		for _, x := range s.seq[1:] {
			if !EqualTolerant(x, s.seq[0], tol) {
				return false
			}
		}
		return true
	}
	expand := func(s opState) []opState {
		// two non-constant values cannot shrink into a constant run
		if len(s.seq) <= 2 || !allFinite(s.seq) {
			return nil
		}
		ops := zeroUnsafeOps
		if slices.Contains(s.seq, 0) {
			ops = zeroSafeOps
		}
		children := make([]opState, 0, len(ops))
		for _, op := range ops {
			children = append(children, opState{
				seq:   op.generate(s.seq),
				ops:   append(slices.Clone(s.ops), op),
				seeds: append(slices.Clone(s.seeds), s.seq[0]),
			})
		}
		return children
	}

	res, err := bfs.Search(opState{seq: xs}, expand, goal, bfs.WithMaxDepth(maxDepth))
	if err != nil {
		return nil, false
	}
	p := &Operator{
		Ops:      res.State.ops,
		Seeds:    append(res.State.seeds, res.State.seq[0]),
		integral: flags.Dtype == DtypeInt,
	}

	replayed := p.replay(len(xs) + divergenceSteps)
	span := math.Max(ptp(xs), 1)
	for _, x := range xs {
		span = math.Max(span, math.Abs(x))
	}
	for _, y := range replayed {
		if math.IsNaN(y) || math.IsInf(y, 0) || math.Abs(y) > divergenceFactor*span {
			return nil, false
		}
	}
	p.confidence = confidence(mse(xs, replayed[:len(xs)]), tol)

	return p, true
}
