// SPDX-License-Identifier: MIT

package primitive

import (
	"sort"
	"strconv"
	"strings"
)

// Selector names one parameter slot, either by position or by label.
// Selectors are comparable and usable as map keys.
type Selector struct {
	label string
	pos   int
	named bool
}

// NameSelector is reserved for the primitive's own name.
var NameSelector = Named("name")

// Pos returns a positional selector.
func Pos(i int) Selector { return Selector{pos: i} }

// Named returns a symbolic selector.
func Named(label string) Selector { return Selector{label: label, named: true} }

// Position returns the index of a positional selector.
func (s Selector) Position() (int, bool) { return s.pos, !s.named }

// Label returns the label of a symbolic selector.
func (s Selector) Label() (string, bool) { return s.label, s.named }

func (s Selector) String() string {
	if s.named {
		return s.label
	}

	return strconv.Itoa(s.pos)
}

// Less orders positional selectors before symbolic ones.
func (s Selector) Less(o Selector) bool {
	if s.named != o.named {
		return !s.named
	}
	if s.named {
		return s.label < o.label
	}

	return s.pos < o.pos
}

// Key identifies a family of primitives sharing a selector layout.
type Key struct {
	Name  string
	Arity int
}

func (k Key) String() string { return k.Name + "/" + strconv.Itoa(k.Arity) }

// SelectorTable maps (name, arity) to the ordered selectors of its parameters.
type SelectorTable map[Key][]Selector

// Positional returns 0..arity-1 as selectors.
func Positional(arity int) []Selector {
	out := make([]Selector, arity)
	for i := range out {
		out[i] = Pos(i)
	}

	return out
}

// Lookup returns the selectors for (name, arity), positional when undeclared.
func (t SelectorTable) Lookup(name string, arity int) []Selector {
	if sels, ok := t[Key{name, arity}]; ok {
		return sels
	}

	return Positional(arity)
}

// Index returns the parameter position sel maps to for (name, arity).
func (t SelectorTable) Index(name string, arity int, sel Selector) (int, bool) {
	for i, s := range t.Lookup(name, arity) {
		if s == sel {
			return i, true
		}
	}

	return 0, false
}

// IsPositional reports whether sels is exactly 0..len-1.
func IsPositional(sels []Selector) bool {
	for i, s := range sels {
		if p, ok := s.Position(); !ok || p != i {
			return false
		}
	}

	return true
}

// Keys returns the table keys sorted by name then arity.
func (t SelectorTable) Keys() []Key {
	keys := make([]Key, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Arity < keys[j].Arity
	})

	return keys
}

// Clone returns a deep copy.
func (t SelectorTable) Clone() SelectorTable {
	out := make(SelectorTable, len(t))
	for k, v := range t {
		out[k] = append([]Selector(nil), v...)
	}

	return out
}

// Declaration renders "$name(sel, ...)".
func Declaration(name string, sels []Selector) string {
	parts := make([]string, len(sels))
	for i, s := range sels {
		parts[i] = s.String()
	}

	return "$" + name + "(" + strings.Join(parts, ", ") + ")"
}
