// SPDX-License-Identifier: MIT

package primitive

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sketchrule/lexer"
	"github.com/katalvlaran/sketchrule/ref"
)

// parser reads the primitive DSL with one token of lookahead and no comments.
type parser struct {
	lex    *lexer.Lexer
	peeked *lexer.Token
	alloc  *ref.Allocator
	errs   []error

	declared SelectorTable
	seen     []Key
}

func (p *parser) next() lexer.Token {
	if p.peeked != nil {
		t := *p.peeked
		p.peeked = nil
		return t
	}
	for {
		t := p.lex.Next()
		if t.Kind != lexer.Comment {
			return t
		}
	}
}

func (p *parser) peek() lexer.Token {
	if p.peeked == nil {
		t := p.next()
		p.peeked = &t
	}

	return *p.peeked
}

func (p *parser) fail(t lexer.Token, format string, args ...any) {
	p.errs = append(p.errs, &ParseError{Pos: t.Start, Msg: fmt.Sprintf(format, args...)})
}

// Parse reads a primitive document into a root group and the selector table.
// The returned tree is usable even when err is non-nil.
func Parse(src string, alloc *ref.Allocator) (*Group, SelectorTable, error) {
	p := &parser{lex: lexer.New(src), alloc: alloc, declared: SelectorTable{}}
	root := NewGroup(alloc.Next())
	p.items(root)

	table := SelectorTable{}
	for _, k := range p.seen {
		if _, ok := table[k]; !ok {
			table[k] = Positional(k.Arity)
		}
	}
	for k, sels := range p.declared {
		table[k] = sels
	}

	return root, table, errors.Join(p.errs...)
}

func (p *parser) items(root *Group) {
	stack := []*Group{root}
	master := false
	for {
		t := p.next()
		top := stack[len(stack)-1]
		switch t.Kind {
		case lexer.End:
			for len(stack) > 1 {
				p.fail(t, "unterminated group")
				g := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				stack[len(stack)-1].Append(g)
			}
			return
		case lexer.Exclamation:
			master = true
		case lexer.Dollar:
			p.declaration()
		case lexer.Identifier:
			prim := p.primitive(t)
			if prim == nil {
				continue
			}
			top.Append(prim)
			p.seen = append(p.seen, prim.Key())
			if master {
				_ = top.SetMaster(prim)
				master = false
			}
		case lexer.LeftCurl:
			stack = append(stack, NewGroup(p.alloc.Next()))
		case lexer.RightCurl:
			if len(stack) == 1 {
				p.fail(t, "unmatched '}'")
				return
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].Append(top)
		default:
			p.fail(t, "unexpected %s %q", t.Kind, p.lex.Text(t))
			for len(stack) > 1 {
				g := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				stack[len(stack)-1].Append(g)
			}
			return
		}
	}
}

// primitive reads name(params). after the name token. On a malformed item it
// records an error, resynchronizes and returns nil.
func (p *parser) primitive(name lexer.Token) *Primitive {
	if t := p.next(); t.Kind != lexer.LeftParen {
		p.fail(t, "expected '(' after %q", p.lex.Text(name))
		p.skip(t)
		return nil
	}
	var params []Value
	expectValue := true
	for {
		t := p.next()
		switch {
		case t.Kind == lexer.RightParen && (!expectValue || len(params) == 0):
			if d := p.next(); d.Kind != lexer.Dot {
				p.fail(d, "expected '.' after %q", p.lex.Text(name))
				p.skip(d)
				return nil
			}
			return New(p.alloc.Next(), p.lex.Text(name), params...)
		case t.Kind == lexer.Comma && !expectValue:
			expectValue = true
		case expectValue && isParam(t.Kind):
			text := p.lex.Text(t)
			if t.Kind == lexer.String && text == "" {
				p.fail(t, "empty string parameter")
				p.skip(t)
				return nil
			}
			v, err := ValueFromToken(t.Kind, text)
			if err != nil {
				p.fail(t, "%v", err)
				p.skip(t)
				return nil
			}
			params = append(params, v)
			expectValue = false
		default:
			p.fail(t, "unexpected %s %q in %q", t.Kind, p.lex.Text(t), p.lex.Text(name))
			p.skip(t)
			return nil
		}
	}
}

func isParam(k lexer.Kind) bool {
	return k == lexer.Identifier || k == lexer.Int || k == lexer.Float || k == lexer.String
}

// skip discards tokens up to and including the next '.', leaving structural
// tokens ('{', '}', '!', '$', end) for the item loop.
func (p *parser) skip(t lexer.Token) {
	for {
		switch t.Kind {
		case lexer.Dot:
			return
		case lexer.End, lexer.LeftCurl, lexer.RightCurl, lexer.Exclamation, lexer.Dollar:
			p.peeked = &t
			return
		}
		t = p.next()
	}
}

// declaration reads name(sel, ...) after '$'.
func (p *parser) declaration() {
	name := p.next()
	if name.Kind != lexer.Identifier {
		p.fail(name, "expected a name after '$'")
		p.skip(name)
		return
	}
	if t := p.next(); t.Kind != lexer.LeftParen {
		p.fail(t, "expected '(' in declaration of %q", p.lex.Text(name))
		p.skip(t)
		return
	}
	var sels []Selector
	expectSel := true
	for {
		t := p.next()
		switch {
		case t.Kind == lexer.RightParen && (!expectSel || len(sels) == 0):
			if d := p.peek(); d.Kind == lexer.Dot {
				p.next()
			}
			p.declared[Key{p.lex.Text(name), len(sels)}] = sels
			return
		case t.Kind == lexer.Comma && !expectSel:
			expectSel = true
		case expectSel && t.Kind == lexer.Identifier:
			sel := Named(p.lex.Text(t))
			if sel == NameSelector {
				p.fail(t, "selector %q is reserved for the primitive name", p.lex.Text(t))
				p.skip(t)
				return
			}
			sels = append(sels, sel)
			expectSel = false
		case expectSel && t.Kind == lexer.Int:
			v, err := ValueFromToken(t.Kind, p.lex.Text(t))
			if err != nil || v.AsInt() < 0 {
				p.fail(t, "invalid selector %q", p.lex.Text(t))
				p.skip(t)
				return
			}
			sels = append(sels, Pos(v.AsInt()))
			expectSel = false
		default:
			p.fail(t, "unexpected %s in declaration of %q", t.Kind, p.lex.Text(name))
			p.skip(t)
			return
		}
	}
}
