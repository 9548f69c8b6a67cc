// SPDX-License-Identifier: MIT

package pattern

import (
	"math"
	"slices"

	"github.com/katalvlaran/sketchrule/param"
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// InstancePattern is a *None, *PrimitivePattern or *GroupPattern.
type InstancePattern interface {
	Reference() ref.Reference
	// Level is the number of extrapolation counts Next expects.
	Level() int
	sealed()
}

// None is the explicit "no structure" leaf. Extrapolation copies its starts.
type None struct {
	Ref ref.Reference
}

func (n *None) Reference() ref.Reference { return n.Ref }
func (*None) Level() int                 { return 1 }
func (*None) sealed()                    {}

// Entry binds one selector to its parameter pattern.
type Entry struct {
	Selector primitive.Selector
	Pattern  param.Pattern
}

// PrimitivePattern describes a run of sibling primitives: one parameter
// pattern per selector (NameSelector predicts the name) and the repeating
// arity sequence.
type PrimitivePattern struct {
	Ref     ref.Reference
	Arities []int
	entries []Entry
}

// NewPrimitivePattern returns a pattern without entries.
func NewPrimitivePattern(r ref.Reference, arities []int) *PrimitivePattern {
	return &PrimitivePattern{Ref: r, Arities: arities}
}

func (p *PrimitivePattern) Reference() ref.Reference { return p.Ref }
func (*PrimitivePattern) Level() int                 { return 1 }
func (*PrimitivePattern) sealed()                    {}

// Set binds sel to pp, replacing an earlier binding in place.
func (p *PrimitivePattern) Set(sel primitive.Selector, pp param.Pattern) {
	for i := range p.entries {
		if p.entries[i].Selector == sel {
			p.entries[i].Pattern = pp
			return
		}
	}
	p.entries = append(p.entries, Entry{sel, pp})
}

// Pattern returns the parameter pattern bound to sel.
func (p *PrimitivePattern) Pattern(sel primitive.Selector) (param.Pattern, bool) {
	for _, e := range p.entries {
		if e.Selector == sel {
			return e.Pattern, true
		}
	}

	return nil, false
}

// Entries returns the bindings in insertion order.
func (p *PrimitivePattern) Entries() []Entry { return slices.Clone(p.entries) }

// arity returns the arity of the nth generated primitive.
func (p *PrimitivePattern) arity(nth, fallback int) int {
	if len(p.Arities) == 0 {
		return fallback
	}

	return p.Arities[nth%len(p.Arities)]
}

// GroupPattern describes a run of sibling groups. Intergroup extrapolates the
// groups' masters (nil passes the start through); child i of the nth
// generated group follows Children()[n mod len]; the size pattern grows the
// child budget.
type GroupPattern struct {
	Ref        ref.Reference
	Intergroup *PrimitivePattern

	children []InstancePattern
	sizes    []int
	size     param.Pattern
	level    int

	periodicSizes bool
}

// NewGroupPattern returns a group pattern without children.
func NewGroupPattern(r ref.Reference, intergroup *PrimitivePattern) *GroupPattern {
	return &GroupPattern{Ref: r, Intergroup: intergroup, level: 1}
}

func (g *GroupPattern) Reference() ref.Reference { return g.Ref }

// Level is 1 + the largest child level.
func (g *GroupPattern) Level() int { return g.level }
func (*GroupPattern) sealed()      {}

// Children returns the child patterns in order.
func (g *GroupPattern) Children() []InstancePattern { return slices.Clone(g.children) }

// Sizes returns the observed child-list sizes.
func (g *GroupPattern) Sizes() []int { return slices.Clone(g.sizes) }

// SizePattern returns the fitted size pattern, nil before the first Append.
func (g *GroupPattern) SizePattern() param.Pattern { return g.size }

// Append adds a child pattern with the observed size of its group and refits
// the size pattern: Constant or Linear when either fits exactly, Periodic
// otherwise.
func (g *GroupPattern) Append(child InstancePattern, size int) {
	g.push(child, size)
	g.size = fitSizes(g.sizes, !g.periodicSizes)
}

// AppendWithSize adds a child pattern and sets the size pattern explicitly.
func (g *GroupPattern) AppendWithSize(child InstancePattern, size int, sizePattern param.Pattern) {
	g.push(child, size)
	g.size = sizePattern
}

func (g *GroupPattern) push(child InstancePattern, size int) {
	g.children = append(g.children, child)
	g.sizes = append(g.sizes, size)
	g.level = max(g.level, child.Level()+1)
}

var exact = param.Tolerance{}

func fitSizes(sizes []int, preferSimple bool) param.Pattern {
	values := make([]primitive.Value, len(sizes))
	for i, s := range sizes {
		values[i] = primitive.Int(s)
	}
	flags := param.NewFlags(values)
	if preferSimple {
		for _, k := range []param.Kind{param.KindConstant, param.KindLinear} {
			if p, ok := k.Apply(values, flags, exact); ok && p.Confidence() == 1 {
				return p
			}
		}
	}
	if p, ok := param.KindPeriodic.Apply(values, flags, exact); ok {
		return p
	}

	return param.NewPeriodic(values...)
}

// sizeAt predicts the child-list size of the nth generated group.
func (g *GroupPattern) sizeAt(nth int) int {
	if g.size == nil {
		return 1
	}
	start := primitive.None()
	if len(g.sizes) > 0 {
		start = primitive.Int(g.sizes[0])
	}
	f, ok := g.size.Next(start, nth).Float64()
	if !ok {
		return 1
	}

	return int(math.Round(f))
}
