// SPDX-License-Identifier: MIT

package pattern

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sketchrule/param"
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// Search builds the structural pattern of group depth-first. A group whose
// nested children all come back as None is described by its flat
// PrimitivePattern (or None); otherwise the result is a GroupPattern with one
// child pattern and observed size per child.
//
// Errors:
//   - ErrEmptyGroup, ErrMissingMaster for malformed groups at any depth.
//   - ErrOptionViolation for an invalid Option.
func Search(group *primitive.Group, table primitive.SelectorTable, kinds []param.Kind, tol param.Tolerance, alloc *ref.Allocator, opts ...Option) (InstancePattern, error) {
	o := newOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	return searchRecursive(group, table, kinds, tol, alloc, o)
}

func searchRecursive(group *primitive.Group, table primitive.SelectorTable, kinds []param.Kind, tol param.Tolerance, alloc *ref.Allocator, o options) (InstancePattern, error) {
	own, err := searchGroup(group, table, kinds, tol, alloc, o)
	if err != nil {
		return nil, err
	}

	type slot struct {
		pattern InstancePattern
		size    int
	}
	slots := make([]slot, 0, group.Len())
	nested := false
	for _, c := range group.Children() {
		switch n := c.(type) {
		case *primitive.Primitive:
			slots = append(slots, slot{&None{Ref: alloc.Next()}, 1})
		case *primitive.Group:
			sub, err := searchRecursive(n, table, kinds, tol, alloc, o)
			if err != nil {
				return nil, err
			}
			if _, ok := sub.(*None); !ok {
				nested = true
			}
			slots = append(slots, slot{sub, n.Len()})
		}
	}
	if !nested {
		for _, s := range slots {
			release(alloc, s.pattern)
		}
		return own, nil
	}

	var intergroup *PrimitivePattern
	switch p := own.(type) {
	case *PrimitivePattern:
		intergroup = p
	case *None:
		alloc.Release(p.Ref)
	}
	gp := NewGroupPattern(alloc.Next(), intergroup)
	gp.periodicSizes = !o.sizeFit
	for _, s := range slots {
		gp.Append(s.pattern, s.size)
	}
	o.log.Debug("group pattern",
		slog.Int("group", group.Ref),
		slog.Int("children", len(slots)),
		slog.Int("level", gp.Level()),
		slog.String("sizes", gp.size.String()))

	return gp, nil
}

// SearchGroup fits the direct children of group: one column per selector of
// the children's masters (resolved through each master's own layout in
// table) plus the name column and the arity sequence. If any column fits no
// kind the result is None.
//
// Errors:
//   - ErrEmptyGroup when group has no children.
//   - ErrMissingMaster when a child has no master.
//   - ErrOptionViolation for an invalid Option.
func SearchGroup(group *primitive.Group, table primitive.SelectorTable, kinds []param.Kind, tol param.Tolerance, alloc *ref.Allocator, opts ...Option) (InstancePattern, error) {
	o := newOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	return searchGroup(group, table, kinds, tol, alloc, o)
}

func searchGroup(group *primitive.Group, table primitive.SelectorTable, kinds []param.Kind, tol param.Tolerance, alloc *ref.Allocator, o options) (InstancePattern, error) {
	if group.Len() == 0 {
		return nil, fmt.Errorf("group %d: %w", group.Ref, ErrEmptyGroup)
	}

	arities := make([]primitive.Value, 0, group.Len())
	order := []primitive.Selector{primitive.NameSelector}
	columns := map[primitive.Selector][]primitive.Value{}
	for i := 0; i < group.Len(); i++ {
		m := group.At(i).Master()
		if m == nil {
			return nil, fmt.Errorf("group %d child %d: %w", group.Ref, i, ErrMissingMaster)
		}
		arities = append(arities, primitive.Int(m.Arity()))
		columns[primitive.NameSelector] = append(columns[primitive.NameSelector], primitive.String(m.Name))
		for j, sel := range table.Lookup(m.Name, m.Arity()) {
			if _, ok := columns[sel]; !ok {
				order = append(order, sel)
			}
			columns[sel] = append(columns[sel], m.Params[j])
		}
	}

	pp := NewPrimitivePattern(ref.Unassigned, compressArities(arities))
	for _, sel := range order {
		found, err := param.SearchParameters(columns[sel], kinds, tol, o.params()...)
		if err != nil {
			return nil, err
		}
		if found == nil {
			o.log.Debug("column has no pattern",
				slog.Int("group", group.Ref),
				slog.String("selector", sel.String()))
			return &None{Ref: alloc.Next()}, nil
		}
		pp.Set(sel, found)
	}
	pp.Ref = alloc.Next()

	return pp, nil
}

// compressArities keeps the shortest repeating block of the arity sequence.
func compressArities(arities []primitive.Value) []int {
	block := arities
	if p, ok := param.KindPeriodic.Apply(arities, param.NewFlags(arities), exact); ok {
		block = p.(*param.Periodic).Block
	}
	out := make([]int, len(block))
	for i, v := range block {
		out[i] = v.AsInt()
	}

	return out
}

// release returns every reference held by p to alloc.
func release(alloc *ref.Allocator, p InstancePattern) {
	if g, ok := p.(*GroupPattern); ok {
		if g.Intergroup != nil {
			alloc.Release(g.Intergroup.Ref)
		}
		for _, c := range g.children {
			release(alloc, c)
		}
	}
	alloc.Release(p.Reference())
}
