// SPDX-License-Identifier: MIT

package primitive

import (
	"fmt"

	"github.com/katalvlaran/sketchrule/ref"
)

// Group is an ordered collection of nodes with a cached master and arity range.
type Group struct {
	Ref      ref.Reference
	children []Node
	master   *Primitive
	explicit bool // master was chosen with SetMaster
	minArity int
	maxArity int
}

// NewGroup returns a group holding children in order.
func NewGroup(r ref.Reference, children ...Node) *Group {
	g := &Group{Ref: r}
	for _, c := range children {
		g.Append(c)
	}

	return g
}

func (g *Group) Reference() ref.Reference { return g.Ref }

// Master returns the group's representative primitive, nil when empty.
func (g *Group) Master() *Primitive { return g.master }

func (*Group) sealed() {}

// Len returns the number of direct children.
func (g *Group) Len() int { return len(g.children) }

// At returns the i-th direct child.
func (g *Group) At(i int) Node { return g.children[i] }

// Children returns a copy of the direct children.
func (g *Group) Children() []Node { return append([]Node(nil), g.children...) }

// ExplicitMaster reports whether the master was set with SetMaster.
func (g *Group) ExplicitMaster() bool { return g.explicit }

// ArityRange returns the smallest and largest master arity among the
// children. Both are 0 for an empty group.
func (g *Group) ArityRange() (lo, hi int) { return g.minArity, g.maxArity }

// Append adds n as the last child. Children without a master (empty groups)
// are kept but do not affect the master or the arity range.
func (g *Group) Append(n Node) {
	g.children = append(g.children, n)
	g.track(n)
}

func (g *Group) track(n Node) {
	m := n.Master()
	if m == nil {
		return
	}
	if g.master == nil {
		g.master = m
		g.minArity, g.maxArity = m.Arity(), m.Arity()
		return
	}
	g.minArity = min(g.minArity, m.Arity())
	g.maxArity = max(g.maxArity, m.Arity())
}

// SetMaster makes p the group's master. p must be the master of one of the
// group's direct children.
func (g *Group) SetMaster(p *Primitive) error {
	for _, c := range g.children {
		if c.Master() == p {
			g.master = p
			g.explicit = true
			return nil
		}
	}

	return fmt.Errorf("set master %d in group %d: %w", p.Ref, g.Ref, ErrNotChild)
}

// Remove deletes the direct children with the given references and releases
// every reference inside them. Unknown references are ignored.
func (g *Group) Remove(alloc *ref.Allocator, refs ...ref.Reference) {
	drop := make(map[ref.Reference]bool, len(refs))
	for _, r := range refs {
		drop[r] = true
	}
	kept := g.children[:0]
	for _, c := range g.children {
		if !drop[c.Reference()] {
			kept = append(kept, c)
			continue
		}
		release(alloc, c)
		if g.explicit && c.Master() == g.master {
			g.explicit = false
		}
	}
	for i := len(kept); i < len(g.children); i++ {
		g.children[i] = nil
	}
	g.children = kept
	g.recompute()
}

func release(alloc *ref.Allocator, n Node) {
	if grp, ok := n.(*Group); ok {
		for _, c := range grp.children {
			release(alloc, c)
		}
	}
	alloc.Release(n.Reference())
}

func (g *Group) recompute() {
	explicit := g.master
	keep := g.explicit
	g.master, g.minArity, g.maxArity = nil, 0, 0
	for _, c := range g.children {
		g.track(c)
	}
	if keep {
		g.master = explicit
	}
}

// Find returns the node with reference r, searching depth-first. The group
// itself matches too.
func (g *Group) Find(r ref.Reference) Node {
	if g.Ref == r {
		return g
	}
	for _, c := range g.children {
		if c.Reference() == r {
			return c
		}
		if sub, ok := c.(*Group); ok {
			if n := sub.Find(r); n != nil {
				return n
			}
		}
	}

	return nil
}

// Depth returns how many levels below g the node r sits (0 for g itself).
func (g *Group) Depth(r ref.Reference) (int, bool) {
	if g.Ref == r {
		return 0, true
	}
	for _, c := range g.children {
		if c.Reference() == r {
			return 1, true
		}
		if sub, ok := c.(*Group); ok {
			if d, ok := sub.Depth(r); ok {
				return d + 1, true
			}
		}
	}

	return 0, false
}

// Parent returns the group directly holding r, or nil.
func (g *Group) Parent(r ref.Reference) *Group {
	for _, c := range g.children {
		if c.Reference() == r {
			return g
		}
		if sub, ok := c.(*Group); ok {
			if p := sub.Parent(r); p != nil {
				return p
			}
		}
	}

	return nil
}

// Copy returns a deep copy with fresh references. An explicit master is
// carried over to the matching copied child.
func (g *Group) Copy(alloc *ref.Allocator) *Group {
	out := &Group{Ref: alloc.Next()}
	for _, c := range g.children {
		var cp Node
		switch n := c.(type) {
		case *Primitive:
			cp = n.Copy(alloc)
		case *Group:
			cp = n.Copy(alloc)
		}
		out.Append(cp)
		if g.explicit && c.Master() == g.master {
			out.master = cp.Master()
			out.explicit = true
		}
	}

	return out
}

// Walk visits g and its descendants in document order. fn receives each
// node with its depth below g; returning false skips the node's children.
func (g *Group) Walk(fn func(n Node, depth int) bool) {
	g.walk(fn, 0)
}

func (g *Group) walk(fn func(Node, int) bool, depth int) {
	if !fn(g, depth) {
		return
	}
	for _, c := range g.children {
		switch n := c.(type) {
		case *Group:
			n.walk(fn, depth+1)
		default:
			fn(n, depth+1)
		}
	}
}

// Primitives returns every primitive below g in document order.
func (g *Group) Primitives() []*Primitive {
	var out []*Primitive
	g.Walk(func(n Node, _ int) bool {
		if p, ok := n.(*Primitive); ok {
			out = append(out, p)
		}
		return true
	})

	return out
}
