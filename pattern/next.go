// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"

	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// Next generates count primitives continuing the run described by p, the
// first anchored at start (nth = 0 reproduces start when p was fitted on a
// run beginning with it).
//
// For each generated primitive the name and arity are predicted first; then
// every selector present in that (name, arity) layout takes the value of its
// pattern at the number of earlier generated primitives carrying the same
// selector, seeded with start's value when start's own layout has it. A
// position no selector covers is copied from start.
//
// Errors:
//   - ErrNegativeCount for count < 0.
//   - ErrUnresolvedParameter when such a position lies beyond start's arity.
func (p *PrimitivePattern) Next(start *primitive.Primitive, count int, table primitive.SelectorTable, alloc *ref.Allocator) ([]*primitive.Primitive, error) {
	if count < 0 {
		return nil, fmt.Errorf("count %d: %w", count, ErrNegativeCount)
	}
	type shape struct {
		name  string
		arity int
	}
	shapes := make([]shape, count)
	namePattern, hasName := p.Pattern(primitive.NameSelector)
	for i := range shapes {
		shapes[i] = shape{start.Name, p.arity(i, start.Arity())}
		if hasName {
			v := namePattern.Next(primitive.String(start.Name), i)
			if v.Kind() == primitive.StringValue {
				shapes[i].name = v.AsString()
			} else if !v.IsNone() {
				shapes[i].name = v.String()
			}
		}
	}

	seen := make(map[primitive.Selector]int, len(p.entries))
	out := make([]*primitive.Primitive, 0, count)
	for i, s := range shapes {
		params := make([]primitive.Value, s.arity)
		set := make([]bool, s.arity)
		for _, e := range p.entries {
			if e.Selector == primitive.NameSelector {
				continue
			}
			idx, ok := table.Index(s.name, s.arity, e.Selector)
			if !ok {
				continue
			}
			seed := primitive.None()
			if j, ok := table.Index(start.Name, start.Arity(), e.Selector); ok {
				seed = start.Params[j]
			}
			params[idx] = e.Pattern.Next(seed, seen[e.Selector])
			set[idx] = true
			seen[e.Selector]++
		}
		for j := range params {
			if set[j] {
				continue
			}
			if j >= start.Arity() {
				return nil, fmt.Errorf("%s/%d position %d (index %d): %w", s.name, s.arity, j, i, ErrUnresolvedParameter)
			}
			params[j] = start.Params[j]
		}
		out = append(out, primitive.New(alloc.Next(), s.name, params...))
	}

	return out, nil
}

// Next extrapolates p from each start primitive in turn. counts holds one
// entry per level of p: counts[0] instances at p's own level, counts[1] per
// child, and so on. A child group's budget is grown by its predicted size
// minus one.
//
// Errors:
//   - ErrLevelMismatch when len(counts) != p.Level() at any level.
//   - ErrNegativeCount when an entry of counts is negative.
//   - ErrNilPattern for a nil p.
//   - ErrUnresolvedParameter from PrimitivePattern.Next.
func Next(starts []*primitive.Primitive, p InstancePattern, table primitive.SelectorTable, counts []int, alloc *ref.Allocator) ([]*primitive.Primitive, error) {
	nodes, err := extrapolate(starts, p, table, counts, alloc)
	if err != nil {
		return nil, err
	}
	var out []*primitive.Primitive
	for _, n := range nodes {
		switch x := n.(type) {
		case *primitive.Primitive:
			out = append(out, x)
		case *primitive.Group:
			out = append(out, x.Primitives()...)
		}
	}

	return out, nil
}

// NextGroup is Next with the output nested the way p nests it: every
// generated group instance becomes one child group of the returned root.
func NextGroup(starts []*primitive.Primitive, p InstancePattern, table primitive.SelectorTable, counts []int, alloc *ref.Allocator) (*primitive.Group, error) {
	nodes, err := extrapolate(starts, p, table, counts, alloc)
	if err != nil {
		return nil, err
	}

	return primitive.NewGroup(alloc.Next(), nodes...), nil
}

func extrapolate(starts []*primitive.Primitive, p InstancePattern, table primitive.SelectorTable, counts []int, alloc *ref.Allocator) ([]primitive.Node, error) {
	if p == nil {
		return nil, ErrNilPattern
	}
	if len(counts) != p.Level() {
		return nil, fmt.Errorf("pattern %d has level %d, got %d counts: %w", p.Reference(), p.Level(), len(counts), ErrLevelMismatch)
	}
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("counts[%d] = %d: %w", i, c, ErrNegativeCount)
		}
	}

	var out []primitive.Node
	switch x := p.(type) {
	case *None:
		for _, s := range starts {
			out = append(out, s.Copy(alloc))
		}

	case *PrimitivePattern:
		for _, s := range starts {
			prims, err := x.Next(s, counts[0], table, alloc)
			if err != nil {
				return nil, err
			}
			for _, pr := range prims {
				out = append(out, pr)
			}
		}

	case *GroupPattern:
		for _, s := range starts {
			instances := []*primitive.Primitive{s}
			if x.Intergroup != nil {
				var err error
				if instances, err = x.Intergroup.Next(s, counts[0], table, alloc); err != nil {
					return nil, err
				}
			}
			if len(x.children) == 0 {
				if x.Intergroup == nil {
					instances = []*primitive.Primitive{s.Copy(alloc)}
				}
				for _, in := range instances {
					out = append(out, in)
				}
				continue
			}
			for i, in := range instances {
				child := x.children[i%len(x.children)]
				budget := make([]int, child.Level())
				copy(budget, counts[1:])
				budget[0] = max(budget[0]+x.sizeAt(i)-1, 0)
				nodes, err := extrapolate([]*primitive.Primitive{in}, child, table, budget, alloc)
				if err != nil {
					return nil, err
				}
				// Intergroup instances only seed the child; s belongs to the caller.
				if x.Intergroup != nil {
					alloc.Release(in.Ref)
				}
				if _, leaf := child.(*None); leaf {
					out = append(out, nodes...)
					continue
				}
				out = append(out, primitive.NewGroup(alloc.Next(), nodes...))
			}
		}
	}

	return out, nil
}
