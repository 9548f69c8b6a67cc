// SPDX-License-Identifier: MIT

package primitive

import (
	"strings"
)

// Serialize renders g as a primitive document. The root's children are
// written at top level without braces; nested groups are indented with tabs.
func Serialize(g *Group) string {
	var b strings.Builder
	writeChildren(&b, g, 0)

	return b.String()
}

// SerializeDocument is Serialize preceded by a "$name(...)" line for every
// table entry that is not plain positional.
func SerializeDocument(g *Group, table SelectorTable) string {
	var b strings.Builder
	for _, k := range table.Keys() {
		sels := table[k]
		if IsPositional(sels) {
			continue
		}
		b.WriteString(Declaration(k.Name, sels))
		b.WriteByte('\n')
	}
	writeChildren(&b, g, 0)

	return b.String()
}

func writeChildren(b *strings.Builder, g *Group, depth int) {
	// '!' is only needed when the master is not what Append would pick.
	mark := g.explicit && len(g.children) > 0 && g.children[0].Master() != g.master
	for _, c := range g.children {
		indent(b, depth)
		switch n := c.(type) {
		case *Primitive:
			if mark && n == g.master {
				b.WriteByte('!')
			}
			b.WriteString(n.String())
			b.WriteByte('\n')
		case *Group:
			b.WriteString("{\n")
			writeChildren(b, n, depth+1)
			indent(b, depth)
			b.WriteString("}\n")
		}
	}
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteByte('\t')
	}
}
