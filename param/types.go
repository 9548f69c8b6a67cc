// SPDX-License-Identifier: MIT

package param

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/sketchrule/primitive"
)

// Tolerance is the (absolute, relative) pair used by every comparison.
type Tolerance struct {
	Absolute float64
	Relative float64
}

// DefaultTolerance is {0, 0.1}.
var DefaultTolerance = Tolerance{Absolute: 0, Relative: 0.1}

// noiseFloor absorbs float round-off when both tolerances are zero.
const noiseFloor = 1e-9

// EqualTolerant reports |x − y| ≤ abs + rel·|y|, plus a round-off floor.
func EqualTolerant(x, y float64, tol Tolerance) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if x == y {
		return true
	}

	return math.Abs(x-y) <= tol.Absolute+tol.Relative*math.Abs(y)+noiseFloor
}

// Dtype is the merged storage type of a column: None ⊂ Int ⊂ Float ⊂ Object.
// String alone stays String; String mixed with numbers is Object.
type Dtype int

const (
	DtypeNone Dtype = iota
	DtypeInt
	DtypeFloat
	DtypeString
	DtypeObject
)

func (d Dtype) String() string {
	return [...]string{"none", "int", "float", "string", "object"}[d]
}

const (
	flagInt uint8 = 1 << iota
	flagFloat
	flagString
)

// Flags records which value variants a column holds.
type Flags struct {
	bits  uint8
	Dtype Dtype
}

// NewFlags scans values. None values are ignored.
func NewFlags(values []primitive.Value) Flags {
	var f Flags
	for _, v := range values {
		switch v.Kind() {
		case primitive.IntValue:
			f.bits |= flagInt
			switch f.Dtype {
			case DtypeNone:
				f.Dtype = DtypeInt
			case DtypeString:
				f.Dtype = DtypeObject
			}
		case primitive.FloatValue:
			f.bits |= flagFloat
			switch f.Dtype {
			case DtypeNone, DtypeInt:
				f.Dtype = DtypeFloat
			case DtypeString:
				f.Dtype = DtypeObject
			}
		case primitive.StringValue:
			f.bits |= flagString
			switch f.Dtype {
			case DtypeNone:
				f.Dtype = DtypeString
			case DtypeInt, DtypeFloat:
				f.Dtype = DtypeObject
			}
		}
	}

	return f
}

func (f Flags) HasInt() bool    { return f.bits&flagInt != 0 }
func (f Flags) HasFloat() bool  { return f.bits&flagFloat != 0 }
func (f Flags) HasString() bool { return f.bits&flagString != 0 }

// Numeric reports an Int or Float column.
func (f Flags) Numeric() bool { return f.Dtype == DtypeInt || f.Dtype == DtypeFloat }

// Kind enumerates the model families.
type Kind int

const (
	KindConstant Kind = iota
	KindLinear
	KindPeriodic
	KindOperator
	KindSinusoidal
)

// AllKinds lists every kind in preference order.
var AllKinds = []Kind{KindConstant, KindLinear, KindPeriodic, KindOperator, KindSinusoidal}

var kindInfo = [...]struct {
	name    string
	aliases []string
	weight  float64
	minimum int
}{
	KindConstant:   {"cte", []string{"Constant"}, 1.0, 2},
	KindLinear:     {"lin", []string{"Linear"}, 0.95, 2},
	KindPeriodic:   {"prd", []string{"Period", "Periodic"}, 0.9, 2},
	KindOperator:   {"op", []string{"Operator"}, 0.85, 3},
	KindSinusoidal: {"sine", []string{"Sinus", "Sinusoidal"}, 0.8, 4},
}

// String returns the DSL name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindInfo) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindInfo[k].name
}

// Weight is the fixed preference used to break confidence ties.
func (k Kind) Weight() float64 { return kindInfo[k].weight }

// MinimumParameters is the shortest column the kind can fit.
func (k Kind) MinimumParameters() int { return kindInfo[k].minimum }

// ParseKind resolves a DSL name or one of its long aliases.
func ParseKind(name string) (Kind, bool) {
	for k, info := range kindInfo {
		if name == info.name || slices.Contains(info.aliases, name) {
			return Kind(k), true
		}
	}

	return 0, false
}

// Pattern is a fitted column model.
type Pattern interface {
	Kind() Kind
	// Next returns the nth value of the continued sequence anchored at start.
	Next(start primitive.Value, nth int) primitive.Value
	// Confidence is in (0, 1].
	Confidence() float64
	// String renders the DSL call, e.g. "lin(0, 10)".
	String() string
}

// Score is confidence × weight.
func Score(p Pattern) float64 { return p.Confidence() * p.Kind().Weight() }

// Option configures fitting.
type Option func(*options)

type options struct {
	maxDepth int
	log      *slog.Logger
	err      error
}

// DefaultMaxDepth bounds the operator chain length.
const DefaultMaxDepth = 4

func newOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth, log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithMaxDepth bounds the operator search. d must be positive.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be positive (%d)", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithLogger routes debug output to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Apply fits kind k to values. Columns shorter than MinimumParameters and
// unsupported variants return false.
func (k Kind) Apply(values []primitive.Value, flags Flags, tol Tolerance, opts ...Option) (Pattern, bool) {
	if len(values) < k.MinimumParameters() {
		return nil, false
	}
	o := newOptions(opts)
	if o.err != nil {
		o.maxDepth = DefaultMaxDepth
	}
	switch k {
	case KindConstant:
		return fitConstant(values, flags, tol)
	case KindLinear:
		return fitLinear(values, flags, tol)
	case KindPeriodic:
		return fitPeriodic(values, flags, tol)
	case KindOperator:
		return fitOperator(values, flags, tol, o.maxDepth)
	case KindSinusoidal:
		return fitSinusoidal(values, flags, tol)
	}

	return nil, false
}
