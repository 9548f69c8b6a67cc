// SPDX-License-Identifier: MIT

package primitive

import (
	"slices"
	"strings"

	"github.com/katalvlaran/sketchrule/ref"
)

// Kind is the recognized shape of a primitive.
type Kind int

const (
	Generic Kind = iota
	Rect
	Line
	Vector
	Circle
)

var kindSpecs = []struct {
	kind    Kind
	name    string
	arities []int
}{
	{Rect, "rect", []int{2, 3, 4, 5}},
	{Line, "line", []int{4, 5}},
	{Vector, "vector", []int{4, 5}},
	{Circle, "circle", []int{2, 3, 4}},
}

func (k Kind) String() string {
	for _, s := range kindSpecs {
		if s.kind == k {
			return s.name
		}
	}

	return "generic"
}

// Arities returns the accepted arities of k, nil for Generic.
func (k Kind) Arities() []int {
	for _, s := range kindSpecs {
		if s.kind == k {
			return s.arities
		}
	}

	return nil
}

// KindOf resolves (name, arity) to a kind. A known name with an arity the
// kind does not accept resolves to Generic.
func KindOf(name string, arity int) Kind {
	for _, s := range kindSpecs {
		if s.name == name && slices.Contains(s.arities, arity) {
			return s.kind
		}
	}

	return Generic
}

// Node is a *Primitive or a *Group.
type Node interface {
	Reference() ref.Reference
	// Master is the primitive that stands for the node in its parent's
	// pattern search. It is nil only for an empty group.
	Master() *Primitive
	sealed()
}

// Primitive is a named object with ordered parameters.
type Primitive struct {
	Ref    ref.Reference
	Name   string
	Kind   Kind
	Params []Value
}

// New builds a primitive and resolves its kind.
func New(r ref.Reference, name string, params ...Value) *Primitive {
	return &Primitive{
		Ref:    r,
		Name:   name,
		Kind:   KindOf(name, len(params)),
		Params: params,
	}
}

func (p *Primitive) Reference() ref.Reference { return p.Ref }

// Master returns p itself.
func (p *Primitive) Master() *Primitive { return p }

func (*Primitive) sealed() {}

// Arity is the parameter count.
func (p *Primitive) Arity() int { return len(p.Params) }

// Key returns the selector-table key of p.
func (p *Primitive) Key() Key { return Key{p.Name, len(p.Params)} }

// Copy returns a deep copy with a fresh reference from alloc.
func (p *Primitive) Copy(alloc *ref.Allocator) *Primitive {
	return New(alloc.Next(), p.Name, slices.Clone(p.Params)...)
}

// String renders p in DSL form, e.g. "rect(0, 0, 10, 10).".
func (p *Primitive) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteByte('(')
	for i, v := range p.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteString(").")

	return b.String()
}

// Equal reports structural equality of two nodes, ignoring references.
// Groups must also agree on their masters.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *Primitive:
		y, ok := b.(*Primitive)
		if !ok {
			return false
		}
		return equalPrimitive(x, y)
	case *Group:
		y, ok := b.(*Group)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i := range x.children {
			if !Equal(x.children[i], y.children[i]) {
				return false
			}
		}
		return equalPrimitive(x.master, y.master)
	}

	return a == nil && b == nil
}

func equalPrimitive(x, y *Primitive) bool {
	if x == nil || y == nil {
		return x == y
	}
	if x.Name != y.Name || len(x.Params) != len(y.Params) {
		return false
	}
	for i := range x.Params {
		if !x.Params[i].Equal(y.Params[i]) {
			return false
		}
	}

	return true
}
