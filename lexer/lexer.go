// SPDX-License-Identifier: MIT

package lexer

// Kind classifies a Token.
type Kind int

const (
	Error Kind = iota
	End
	Identifier
	Int
	Float
	String
	Comment
	Operator
	LeftParen   // (
	RightParen  // )
	LeftCurl    // {
	RightCurl   // }
	LeftBrack   // [
	RightBrack  // ]
	Dot         // .
	Comma       // ,
	Colon       // :
	Semicolon   // ;
	Equal       // =
	Hashtag     // #
	Address     // @
	Dollar      // $
	Ampersand   // &
	Exclamation // !
	SingleQuote // '
)

var kindNames = [...]string{
	Error:       "error",
	End:         "end",
	Identifier:  "identifier",
	Int:         "int",
	Float:       "float",
	String:      "string",
	Comment:     "comment",
	Operator:    "operator",
	LeftParen:   "'('",
	RightParen:  "')'",
	LeftCurl:    "'{'",
	RightCurl:   "'}'",
	LeftBrack:   "'['",
	RightBrack:  "']'",
	Dot:         "'.'",
	Comma:       "','",
	Colon:       "':'",
	Semicolon:   "';'",
	Equal:       "'='",
	Hashtag:     "'#'",
	Address:     "'@'",
	Dollar:      "'$'",
	Ampersand:   "'&'",
	Exclamation: "'!'",
	SingleQuote: "'''",
}

// String returns a human-readable kind name for error messages.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Token is a half-open byte range [Start, Start+Length) of the source.
// For String tokens the range covers the content without the quotes.
type Token struct {
	Kind   Kind
	Start  int
	Length int
}

var punctuation = map[byte]Kind{
	'(':  LeftParen,
	')':  RightParen,
	'{':  LeftCurl,
	'}':  RightCurl,
	'[':  LeftBrack,
	']':  RightBrack,
	'.':  Dot,
	',':  Comma,
	':':  Colon,
	';':  Semicolon,
	'=':  Equal,
	'#':  Hashtag,
	'@':  Address,
	'$':  Dollar,
	'&':  Ampersand,
	'!':  Exclamation,
	'\'': SingleQuote,
}

// Lexer scans one source string.
type Lexer struct {
	src string
	pos int
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Reset rewinds to position 0.
func (l *Lexer) Reset() { l.pos = 0 }

// Pos returns the current byte offset.
func (l *Lexer) Pos() int { return l.pos }

// Source returns the scanned text.
func (l *Lexer) Source() string { return l.src }

// Text returns the source slice covered by t.
func (l *Lexer) Text(t Token) string {
	end := t.Start + t.Length
	if t.Start < 0 || t.Start > len(l.src) {
		return ""
	}
	if end > len(l.src) {
		end = len(l.src)
	}

	return l.src[t.Start:end]
}

// Next scans and returns the next token. At the end of input it keeps
// returning End tokens.
func (l *Lexer) Next() Token {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return Token{Kind: End, Start: l.pos, Length: 0}
	}

	c := l.src[l.pos]
	switch {
	case isIdentifierPrefix(c):
		return l.identifier()
	case isDigit(c):
		return l.number()
	case isOperator(c):
		return l.operatorOrComment()
	case c == '"':
		return l.str()
	}
	if k, ok := punctuation[c]; ok {
		return l.char(k)
	}

	return l.char(Error)
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	pos := l.pos
	t := l.Next()
	l.pos = pos

	return t
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	i := l.pos + offset
	if i >= len(l.src) {
		return 0, false
	}

	return l.src[i], true
}

func (l *Lexer) char(k Kind) Token {
	l.pos++
	return Token{Kind: k, Start: l.pos - 1, Length: 1}
}

func (l *Lexer) identifier() Token {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) && isIdentifierBody(l.src[l.pos]) {
		l.pos++
	}

	return Token{Kind: Identifier, Start: start, Length: l.pos - start}
}

// number scans [sign] digits [. digits]. A second '.' ends the token and is
// left for the caller, so "1.2.3" is Float("1.2") followed by Dot.
func (l *Lexer) number() Token {
	start := l.pos
	if c := l.src[l.pos]; c == '-' || c == '+' {
		l.pos++
	}
	dot := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '.' {
			if dot {
				break
			}
			// "1." followed by a non-digit terminates a primitive, it is not a float.
			if next, ok := l.peekAt(1); !ok || !isDigit(next) {
				break
			}
			dot = true
		} else if !isDigit(c) {
			break
		}
		l.pos++
	}
	if dot {
		return Token{Kind: Float, Start: start, Length: l.pos - start}
	}

	return Token{Kind: Int, Start: start, Length: l.pos - start}
}

func (l *Lexer) operatorOrComment() Token {
	if l.src[l.pos] == '/' {
		if next, ok := l.peekAt(1); ok {
			switch next {
			case '/':
				l.pos += 2
				return l.lineComment()
			case '*':
				l.pos += 2
				return l.blockComment()
			}
		}
	}
	if c := l.src[l.pos]; c == '-' || c == '+' {
		if next, ok := l.peekAt(1); ok && isDigit(next) {
			return l.number()
		}
	}
	start := l.pos
	l.pos++
	for l.pos < len(l.src) && isOperator(l.src[l.pos]) {
		if c := l.src[l.pos]; c == '-' || c == '+' {
			if next, ok := l.peekAt(1); ok && isDigit(next) {
				break
			}
		}
		l.pos++
	}

	return Token{Kind: Operator, Start: start, Length: l.pos - start}
}

func (l *Lexer) lineComment() Token {
	start := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '\n' {
		l.pos++
	}

	return Token{Kind: Comment, Start: start, Length: l.pos - start}
}

func (l *Lexer) blockComment() Token {
	start := l.pos
	for l.pos < len(l.src) {
		if l.src[l.pos] == '*' {
			if next, ok := l.peekAt(1); ok && next == '/' {
				l.pos += 2
				return Token{Kind: Comment, Start: start, Length: l.pos - start - 2}
			}
		}
		l.pos++
	}

	return Token{Kind: Comment, Start: start, Length: l.pos - start}
}

// str scans a double-quoted string. An unterminated string runs to the end
// of input.
func (l *Lexer) str() Token {
	l.pos++
	start := l.pos
	for l.pos < len(l.src) && l.src[l.pos] != '"' {
		l.pos++
	}
	t := Token{Kind: String, Start: start, Length: l.pos - start}
	if l.pos < len(l.src) {
		l.pos++
	}

	return t
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isIdentifierPrefix(c byte) bool { return isLetter(c) || c == '_' }

func isIdentifierBody(c byte) bool { return isIdentifierPrefix(c) || isDigit(c) }

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '<', '>', '~', '|', '?':
		return true
	}

	return false
}

// IsIdentifier reports whether s would scan as a single Identifier token.
func IsIdentifier(s string) bool {
	if s == "" || !isIdentifierPrefix(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentifierBody(s[i]) {
			return false
		}
	}

	return true
}
