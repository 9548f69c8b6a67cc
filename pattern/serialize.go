// SPDX-License-Identifier: MIT

package pattern

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/sketchrule/primitive"
)

// Serialize renders p in the pattern DSL without references.
func Serialize(p InstancePattern) string {
	w := &writer{}
	w.instance(p, 0)

	return w.b.String()
}

// SerializeWithIDs renders p with a "#ref" prefix on every node.
func SerializeWithIDs(p InstancePattern) string {
	w := &writer{ids: true}
	w.instance(p, 0)

	return w.b.String()
}

type writer struct {
	b   strings.Builder
	ids bool
}

func (w *writer) id(p InstancePattern) {
	if w.ids && p.Reference() >= 0 {
		w.b.WriteByte('#')
		w.b.WriteString(strconv.Itoa(p.Reference()))
	}
}

func (w *writer) instance(p InstancePattern, depth int) {
	w.b.WriteString(strings.Repeat("\t", depth))
	w.id(p)
	switch x := p.(type) {
	case *None:
		w.b.WriteString("none")
	case *PrimitivePattern:
		w.primitive(x)
	case *GroupPattern:
		w.group(x, depth)
	}
}

// primitive writes @arities[sel, sel:call, ...]. Selectors whose patterns
// print the same share one entry.
func (w *writer) primitive(p *PrimitivePattern) {
	if len(p.Arities) > 0 {
		w.b.WriteByte('@')
		for i, a := range p.Arities {
			if i > 0 {
				w.b.WriteByte(',')
			}
			w.b.WriteString(strconv.Itoa(a))
		}
	}

	type entry struct {
		sels []primitive.Selector
		call string
	}
	var entries []entry
	index := map[string]int{}
	for _, e := range p.entries {
		call := e.Pattern.String()
		if i, ok := index[call]; ok {
			entries[i].sels = append(entries[i].sels, e.Selector)
			continue
		}
		index[call] = len(entries)
		entries = append(entries, entry{[]primitive.Selector{e.Selector}, call})
	}

	w.b.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			w.b.WriteString(", ")
		}
		for j, s := range e.sels {
			if j > 0 {
				w.b.WriteByte(',')
			}
			w.b.WriteString(s.String())
		}
		w.b.WriteByte(':')
		w.b.WriteString(e.call)
	}
	w.b.WriteByte(']')
}

func (w *writer) group(g *GroupPattern, depth int) {
	if g.size != nil {
		w.b.WriteByte('#')
		w.b.WriteString(g.size.String())
	}
	w.b.WriteByte('(')
	if g.Intergroup != nil {
		w.id(g.Intergroup)
		w.primitive(g.Intergroup)
	} else {
		w.b.WriteString("none")
	}
	w.b.WriteString(") {\n")
	for i, c := range g.children {
		if i > 0 {
			w.b.WriteString(",\n")
		}
		w.instance(c, depth+1)
	}
	if len(g.children) > 0 {
		w.b.WriteByte('\n')
	}
	w.b.WriteString(strings.Repeat("\t", depth))
	w.b.WriteByte('}')
}
