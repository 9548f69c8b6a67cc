// SPDX-License-Identifier: MIT

// Package lexer turns primitive and pattern documents into a flat stream of
// typed tokens.
//
// What
//
//   - Identifiers: [A-Za-z_][A-Za-z0-9_]*.
//   - Numbers: an optional sign directly followed by digits, with at most one
//     fractional part. A sign is part of a number only when a digit follows
//     it, otherwise it starts an Operator run. A second '.' ends the number
//     and is returned as its own Dot token, which is how "rect(1, 2)." closes
//     a primitive.
//   - Strings: double-quoted; the token range excludes the quotes.
//   - Punctuation: ( ) { } [ ] . , : ; = # @ $ & ! '
//   - Operators: greedy runs of + - * / < > ~ | ?
//   - Comments: "// ..." to end of line and "/* ... */", returned as Comment
//     tokens. Callers skip them.
//   - Anything else is a one-byte Error token; the stream continues after it.
//
// The lexer holds only the source and a cursor. Reset rewinds to 0 without
// reallocating, which the pattern parser relies on when it probes ahead.
//
// Helpers
//
//   - Tokenize(src) drains a lexer into a slice (End excluded).
//   - Constants(src) counts identifier and number literals.
//   - Factor(src, min) hoists literals repeated at least min times into
//     "$vN = literal" definitions at the top of a pattern document.
package lexer
