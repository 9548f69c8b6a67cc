// SPDX-License-Identifier: MIT

package pattern

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sketchrule/lexer"
	"github.com/katalvlaran/sketchrule/param"
	"github.com/katalvlaran/sketchrule/primitive"
	"github.com/katalvlaran/sketchrule/ref"
)

// literal is the value side of a "$name = value" assignment.
type literal struct {
	kind lexer.Kind
	text string
}

// parser reads the pattern DSL with one token of lookahead and no comments.
type parser struct {
	lex    *lexer.Lexer
	peeked *lexer.Token
	alloc  *ref.Allocator
	errs   []error
	vars   map[string]literal
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

func (p *parser) expect(k lexer.Kind, context string) bool {
	if t := p.next(); t.Kind != k {
		p.fail(t, "expected %s %s, got %s", k, context, t.Kind)
		return false
	}

	return true
}

// Parse reads a pattern document. Nodes without an explicit "#n" or "&n"
// reference receive fresh references depth-first once parsing succeeds.
// Pattern calls with an unknown name or bad arguments are reported and
// dropped from their primitive pattern; structural errors abort and return a
// nil pattern.
func Parse(src string, alloc *ref.Allocator) (InstancePattern, error) {
	p := &parser{lex: lexer.New(src), alloc: alloc, vars: map[string]literal{}}
	inst, ok := p.instance()
	if ok {
		if t := p.next(); t.Kind != lexer.End {
			p.fail(t, "unexpected %s after pattern", t.Kind)
		}
		assignRefs(inst, alloc)
	}

	return inst, errors.Join(p.errs...)
}

func assignRefs(inst InstancePattern, alloc *ref.Allocator) {
	switch x := inst.(type) {
	case *None:
		if x.Ref < 0 {
			x.Ref = alloc.Next()
		}
	case *PrimitivePattern:
		if x.Ref < 0 {
			x.Ref = alloc.Next()
		}
	case *GroupPattern:
		if x.Ref < 0 {
			x.Ref = alloc.Next()
		}
		if x.Intergroup != nil && x.Intergroup.Ref < 0 {
			x.Intergroup.Ref = alloc.Next()
		}
		for _, c := range x.children {
			assignRefs(c, alloc)
		}
	}
}

// assignments reads any "$name = value" lines.
func (p *parser) assignments() bool {
	for p.peek().Kind == lexer.Dollar {
		p.next()
		name := p.next()
		if name.Kind != lexer.Identifier {
			p.fail(name, "expected a variable name after '$'")
			return false
		}
		if !p.expect(lexer.Equal, "in assignment") {
			return false
		}
		v := p.next()
		switch v.Kind {
		case lexer.Identifier, lexer.Int, lexer.Float:
			p.vars[p.lex.Text(name)] = literal{v.Kind, p.lex.Text(v)}
		default:
			p.fail(v, "variable %q: expected identifier or number, got %s", p.lex.Text(name), v.Kind)
			return false
		}
	}

	return true
}

// resolve expands an identifier through the variables, stopping on a cycle.
func (p *parser) resolve(t lexer.Token) literal {
	orig := literal{t.Kind, p.lex.Text(t)}
	if t.Kind != lexer.Identifier {
		return orig
	}
	cur := orig
	seen := map[string]bool{cur.text: true}
	for {
		v, ok := p.vars[cur.text]
		if !ok {
			return cur
		}
		if v.kind != lexer.Identifier {
			return v
		}
		if seen[v.text] {
			if v.text == orig.text {
				return orig
			}
			return cur
		}
		seen[v.text] = true
		cur = v
	}
}

// reference reads the int after '#' or '&' and reserves it.
func (p *parser) reference() ref.Reference {
	t := p.next()
	v, err := primitive.ValueFromToken(t.Kind, p.lex.Text(t))
	if err != nil || v.AsInt() < 0 {
		p.fail(t, "invalid reference %q", p.lex.Text(t))
		return ref.Unassigned
	}
	if err := p.alloc.Reserve(v.AsInt()); err != nil {
		p.fail(t, "%v", err)
		return ref.Unassigned
	}

	return v.AsInt()
}

func (p *parser) instance() (InstancePattern, bool) {
	if !p.assignments() {
		return nil, false
	}
	r := ref.Unassigned
	t := p.next()
	if (t.Kind == lexer.Hashtag || t.Kind == lexer.Ampersand) && p.peek().Kind == lexer.Int {
		r = p.reference()
		t = p.next()
	}

	switch {
	case t.Kind == lexer.Identifier && p.lex.Text(t) == "none":
		return &None{Ref: r}, true
	case t.Kind == lexer.Address || t.Kind == lexer.LeftBrack:
		pp, ok := p.primitive(t)
		if !ok {
			return nil, false
		}
		pp.Ref = r
		return pp, true
	case t.Kind == lexer.Hashtag || t.Kind == lexer.LeftParen:
		g, ok := p.group(t)
		if !ok {
			return nil, false
		}
		g.Ref = r
		return g, true
	}
	p.fail(t, "expected a pattern, got %s %q", t.Kind, p.lex.Text(t))

	return nil, false
}

// group reads [#size(args)] '(' intergroup ')' '{' children '}'.
func (p *parser) group(t lexer.Token) (*GroupPattern, bool) {
	var size param.Pattern
	if t.Kind == lexer.Hashtag {
		var ok bool
		if size, ok = p.call(); !ok {
			return nil, false
		}
		t = p.next()
	}
	if t.Kind != lexer.LeftParen {
		p.fail(t, "expected '(' before the intergroup pattern, got %s", t.Kind)
		return nil, false
	}

	var inter *PrimitivePattern
	ir := ref.Unassigned
	t = p.next()
	if (t.Kind == lexer.Hashtag || t.Kind == lexer.Ampersand) && p.peek().Kind == lexer.Int {
		ir = p.reference()
		t = p.next()
	}
	switch {
	case t.Kind == lexer.Identifier && p.lex.Text(t) == "none":
	case t.Kind == lexer.Address || t.Kind == lexer.LeftBrack:
		var ok bool
		if inter, ok = p.primitive(t); !ok {
			return nil, false
		}
		inter.Ref = ir
	default:
		p.fail(t, "expected an intergroup pattern or none, got %s", t.Kind)
		return nil, false
	}
	if !p.expect(lexer.RightParen, "after the intergroup pattern") || !p.expect(lexer.LeftCurl, "before group children") {
		return nil, false
	}

	var children []InstancePattern
	if p.peek().Kind == lexer.RightCurl {
		p.next()
	} else {
		for {
			child, ok := p.instance()
			if !ok {
				return nil, false
			}
			children = append(children, child)
			t = p.next()
			if t.Kind == lexer.RightCurl {
				break
			}
			if t.Kind != lexer.Comma {
				p.fail(t, "expected ',' or '}' between group children, got %s", t.Kind)
				return nil, false
			}
		}
	}

	if size == nil {
		size = param.NewConstant(primitive.Int(1))
	}
	g := NewGroupPattern(ref.Unassigned, inter)
	for i, c := range children {
		g.AppendWithSize(c, predictedSize(size, i), size)
	}

	return g, true
}

func predictedSize(size param.Pattern, nth int) int {
	f, ok := size.Next(primitive.None(), nth).Float64()
	if !ok {
		return 1
	}

	return int(math.Round(f))
}

// primitive reads [@a,b,...] '[' entries ']' starting at t.
func (p *parser) primitive(t lexer.Token) (*PrimitivePattern, bool) {
	var arities []int
	if t.Kind == lexer.Address {
		for {
			a := p.next()
			lit := p.resolve(a)
			v, err := primitive.ValueFromToken(lit.kind, lit.text)
			if err != nil || v.Kind() != primitive.IntValue || v.AsInt() < 0 {
				p.fail(a, "invalid arity %q", p.lex.Text(a))
				return nil, false
			}
			arities = append(arities, v.AsInt())
			if p.peek().Kind != lexer.Comma {
				break
			}
			p.next()
		}
		t = p.next()
	}
	if t.Kind != lexer.LeftBrack {
		p.fail(t, "expected '[', got %s", t.Kind)
		return nil, false
	}

	pp := NewPrimitivePattern(ref.Unassigned, arities)
	if p.peek().Kind == lexer.RightBrack {
		p.next()
		return pp, true
	}
	for {
		var sels []primitive.Selector
		for {
			sel, ok := p.selector()
			if !ok {
				return nil, false
			}
			sels = append(sels, sel)
			t = p.next()
			if t.Kind == lexer.Colon {
				break
			}
			if t.Kind != lexer.Comma {
				p.fail(t, "expected ',' or ':' after selector, got %s", t.Kind)
				return nil, false
			}
		}
		found, ok := p.call()
		if !ok {
			return nil, false
		}
		if found != nil {
			for _, s := range sels {
				pp.Set(s, found)
			}
		}
		t = p.next()
		if t.Kind == lexer.RightBrack {
			return pp, true
		}
		if t.Kind != lexer.Comma {
			p.fail(t, "expected ',' or ']' between entries, got %s", t.Kind)
			return nil, false
		}
	}
}

func (p *parser) selector() (primitive.Selector, bool) {
	t := p.next()
	lit := p.resolve(t)
	switch lit.kind {
	case lexer.Identifier:
		return primitive.Named(lit.text), true
	case lexer.Int:
		v, err := primitive.ValueFromToken(lit.kind, lit.text)
		if err == nil && v.AsInt() >= 0 {
			return primitive.Pos(v.AsInt()), true
		}
	}
	p.fail(t, "invalid selector %q", p.lex.Text(t))

	return primitive.Selector{}, false
}

// call reads name(args). A syntactically valid call that param.FromArgs
// rejects is reported and yields a nil pattern with ok = true.
func (p *parser) call() (param.Pattern, bool) {
	name := p.next()
	if name.Kind != lexer.Identifier {
		p.fail(name, "expected a pattern name, got %s", name.Kind)
		return nil, false
	}
	if !p.expect(lexer.LeftParen, "after pattern name") {
		return nil, false
	}
	var args []primitive.Value
	if p.peek().Kind == lexer.RightParen {
		p.next()
	} else {
		for {
			v, ok := p.arg()
			if !ok {
				return nil, false
			}
			args = append(args, v)
			t := p.next()
			if t.Kind == lexer.RightParen {
				break
			}
			if t.Kind != lexer.Comma {
				p.fail(t, "expected ',' or ')' in %q, got %s", p.lex.Text(name), t.Kind)
				return nil, false
			}
		}
	}

	found, err := param.FromArgs(p.resolve(name).text, args)
	if err != nil {
		p.fail(name, "%v", err)
		return nil, true
	}

	return found, true
}

func (p *parser) arg() (primitive.Value, bool) {
	t := p.next()
	switch t.Kind {
	case lexer.Operator:
		return primitive.String(p.lex.Text(t)), true
	case lexer.String:
		if p.lex.Text(t) == "" {
			p.fail(t, "empty string argument")
			return primitive.None(), false
		}
	case lexer.Identifier, lexer.Int, lexer.Float:
	default:
		p.fail(t, "unexpected %s in arguments", t.Kind)
		return primitive.None(), false
	}
	lit := p.resolve(t)
	v, err := primitive.ValueFromToken(lit.kind, lit.text)
	if err != nil {
		p.fail(t, "%v", err)
		return primitive.None(), false
	}

	return v, true
}
