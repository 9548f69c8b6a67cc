// SPDX-License-Identifier: MIT

package lexer

import (
	"fmt"
	"sort"
	"strings"
)

// Tokenize scans src to the end and returns every token except End.
func Tokenize(src string) []Token {
	l := New(src)
	var out []Token
	for t := l.Next(); t.Kind != End; t = l.Next() {
		out = append(out, t)
	}

	return out
}

// Constant is a literal and how often it occurs.
type Constant struct {
	Text  string
	Kind  Kind
	Count int
}

// Constants counts identifier and number literals in src, most frequent first.
// Ties keep source order.
func Constants(src string) []Constant {
	l := New(src)
	index := map[string]int{}
	var out []Constant
	for t := l.Next(); t.Kind != End; t = l.Next() {
		if !isLiteral(t.Kind) {
			continue
		}
		text := l.Text(t)
		if i, ok := index[text]; ok {
			out[i].Count++
			continue
		}
		index[text] = len(out)
		out = append(out, Constant{Text: text, Kind: t.Kind, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	return out
}

func isLiteral(k Kind) bool { return k == Identifier || k == Int || k == Float }

type opener int

const (
	openCall opener = iota
	openParen
	openOther
)

// Factor rewrites a pattern document so that every call argument literal
// occurring at least min times is replaced by a variable, defined once with
// "$name = literal" at the top. Literals outside call arguments (selectors,
// arities, identifiers) are never touched. Documents without such repeats
// come back unchanged.
func Factor(src string, min int) string {
	if min < 2 {
		min = 2
	}
	l := New(src)
	var (
		args  []Token
		stack []opener
		prev  = Token{Kind: End}
		taken = map[string]bool{}
	)
	for t := l.Next(); t.Kind != End; t = l.Next() {
		switch t.Kind {
		case Identifier:
			taken[l.Text(t)] = true
		case LeftParen:
			if prev.Kind == Identifier {
				stack = append(stack, openCall)
			} else {
				stack = append(stack, openParen)
			}
		case LeftBrack, LeftCurl:
			stack = append(stack, openOther)
		case RightParen, RightBrack, RightCurl:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
		if isLiteral(t.Kind) && len(stack) > 0 && stack[len(stack)-1] == openCall {
			if next := l.Peek(); next.Kind != LeftParen {
				args = append(args, t)
			}
		}
		if t.Kind != Comment {
			prev = t
		}
	}

	counts := map[string]int{}
	var order []string
	for _, t := range args {
		text := l.Text(t)
		if counts[text] == 0 {
			order = append(order, text)
		}
		counts[text]++
	}
	names := map[string]string{}
	var defs strings.Builder
	n := 0
	for _, text := range order {
		if counts[text] < min {
			continue
		}
		name := fmt.Sprintf("c%d", n)
		for taken[name] {
			n++
			name = fmt.Sprintf("c%d", n)
		}
		n++
		names[text] = name
		fmt.Fprintf(&defs, "$%s = %s\n", name, text)
	}
	if len(names) == 0 {
		return src
	}

	var b strings.Builder
	b.WriteString(defs.String())
	last := 0
	for _, t := range args {
		name, ok := names[l.Text(t)]
		if !ok {
			continue
		}
		b.WriteString(src[last:t.Start])
		b.WriteString(name)
		last = t.Start + t.Length
	}
	b.WriteString(src[last:])

	return b.String()
}
