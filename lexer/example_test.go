// SPDX-License-Identifier: MIT

package lexer_test

import (
	"fmt"

	"github.com/katalvlaran/sketchrule/lexer"
)

// ExampleLexer walks a primitive declaration token by token.
func ExampleLexer() {
	l := lexer.New("circle(4, -1.5).")
	for t := l.Next(); t.Kind != lexer.End; t = l.Next() {
		fmt.Printf("%s %q\n", t.Kind, l.Text(t))
	}
	// Output:
	// identifier "circle"
	// '(' "("
	// int "4"
	// ',' ","
	// float "-1.5"
	// ')' ")"
	// '.' "."
}
