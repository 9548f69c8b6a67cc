// SPDX-License-Identifier: MIT

package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sketchrule/lexer"
)

type tok struct {
	Kind lexer.Kind
	Text string
}

func scan(src string) []tok {
	l := lexer.New(src)
	var out []tok
	for _, t := range lexer.Tokenize(src) {
		out = append(out, tok{t.Kind, l.Text(t)})
	}

	return out
}

func TestLexer_Primitive(t *testing.T) {
	got := scan(`rect(1, -2.5, abc, "hi there").`)
	want := []tok{
		{lexer.Identifier, "rect"},
		{lexer.LeftParen, "("},
		{lexer.Int, "1"},
		{lexer.Comma, ","},
		{lexer.Float, "-2.5"},
		{lexer.Comma, ","},
		{lexer.Identifier, "abc"},
		{lexer.Comma, ","},
		{lexer.String, "hi there"},
		{lexer.RightParen, ")"},
		{lexer.Dot, "."},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestLexer_Numbers(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []tok
	}{
		{"second dot ends float", "1.2.3", []tok{{lexer.Float, "1.2"}, {lexer.Dot, "."}, {lexer.Int, "3"}}},
		{"trailing dot", "7.", []tok{{lexer.Int, "7"}, {lexer.Dot, "."}}},
		{"sign before digit", "5-3", []tok{{lexer.Int, "5"}, {lexer.Int, "-3"}}},
		{"plus sign", "+4", []tok{{lexer.Int, "+4"}}},
		{"detached sign", "a - b", []tok{{lexer.Identifier, "a"}, {lexer.Operator, "-"}, {lexer.Identifier, "b"}}},
		{"operator run", "x<>y", []tok{{lexer.Identifier, "x"}, {lexer.Operator, "<>"}, {lexer.Identifier, "y"}}},
		{"run stops at signed number", "*-2", []tok{{lexer.Operator, "*"}, {lexer.Int, "-2"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, scan(tc.src)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexer_CommentsAreTokens(t *testing.T) {
	got := scan("a // line\nb /* block */ c")
	want := []tok{
		{lexer.Identifier, "a"},
		{lexer.Comment, " line"},
		{lexer.Identifier, "b"},
		{lexer.Comment, " block "},
		{lexer.Identifier, "c"},
	}
	assert.Equal(t, want, got)
}

func TestLexer_ErrorTokenContinues(t *testing.T) {
	got := scan("a % b")
	require.Len(t, got, 3)
	assert.Equal(t, lexer.Error, got[1].Kind)
	assert.Equal(t, "b", got[2].Text)
}

func TestLexer_Punctuation(t *testing.T) {
	l := lexer.New("{}[]:;=#@$&!'")
	kinds := []lexer.Kind{
		lexer.LeftCurl, lexer.RightCurl, lexer.LeftBrack, lexer.RightBrack,
		lexer.Colon, lexer.Semicolon, lexer.Equal, lexer.Hashtag, lexer.Address,
		lexer.Dollar, lexer.Ampersand, lexer.Exclamation, lexer.SingleQuote,
	}
	for _, k := range kinds {
		assert.Equal(t, k, l.Next().Kind)
	}
	assert.Equal(t, lexer.End, l.Next().Kind)
	assert.Equal(t, lexer.End, l.Next().Kind, "End repeats")
}

func TestLexer_ResetAndPeek(t *testing.T) {
	l := lexer.New("foo(1)")
	first := l.Next()
	assert.Equal(t, lexer.LeftParen, l.Peek().Kind)
	assert.Equal(t, lexer.LeftParen, l.Next().Kind)
	l.Reset()
	assert.Equal(t, 0, l.Pos())
	assert.Equal(t, first, l.Next())
}

func TestLexer_UnterminatedString(t *testing.T) {
	got := scan(`"abc`)
	assert.Equal(t, []tok{{lexer.String, "abc"}}, got)
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, lexer.IsIdentifier("rect_2"))
	assert.True(t, lexer.IsIdentifier("_x"))
	assert.False(t, lexer.IsIdentifier("2x"))
	assert.False(t, lexer.IsIdentifier("a b"))
	assert.False(t, lexer.IsIdentifier(""))
}

func TestConstants(t *testing.T) {
	got := lexer.Constants("rect(1, 2). rect(1, 3). line(1, 2, x, y).")
	require.NotEmpty(t, got)
	assert.Equal(t, "1", got[0].Text)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, "rect", got[1].Text)
	assert.Equal(t, 2, got[1].Count)
}

func TestFactor(t *testing.T) {
	src := "[0:lin(10, 10), 1:lin(10, 5)]"
	want := "$c0 = 10\n[0:lin(c0, c0), 1:lin(c0, 5)]"
	assert.Equal(t, want, lexer.Factor(src, 2))
	assert.Equal(t, src, lexer.Factor(src, 4), "nothing repeats four times")
}
