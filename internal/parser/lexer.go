/*
File    : eli/internal/parser/lexer.go

Lexer turns source text into the three-token vocabulary the grammar in
spec §4.1 needs. Comments (`{ ... }`) and whitespace are transparent to
the parser: NextToken swallows any number of them before returning the
next real token, which is how the original recursive `parse()` handles
a comment appearing anywhere an expression is expected, without the
parser ever seeing a comment token.

There is deliberately no line/column tracking here (spec §1: "no
line/column tracking" is out of scope) and no lookahead buffer beyond
the single current byte — the grammar never needs more than that.
*/
package parser

// Lexer scans src one byte at a time. Source text is ASCII-oriented
// (whitespace, parens, braces, and otherwise-opaque token bytes), so
// byte-at-a-time scanning is sufficient; token text itself is sliced
// out of src verbatim and may contain any bytes the host's source uses.
type Lexer struct {
	src string
	pos int
}

// NewLexer returns a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) current() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isTokenSeparator(c byte) bool {
	return c == 0 || isWhitespace(c) || c == '(' || c == ')' || c == '{'
}

// skipWhitespaceAndComments advances past any run of whitespace and
// `{ ... }` comments. An unterminated comment runs to end of input,
// same tolerant treatment as an unterminated list (spec §4.1).
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for isWhitespace(l.current()) {
			l.pos++
		}
		if l.current() != '{' {
			return
		}
		l.pos++ // consume '{'
		for l.current() != 0 && l.current() != '}' {
			l.pos++
		}
		if l.current() == '}' {
			l.pos++
		}
	}
}

// NextToken returns the next token, consuming it from the stream.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	switch l.current() {
	case 0:
		return Token{Type: EOF}
	case '(':
		l.pos++
		return Token{Type: LPAREN, Literal: "("}
	case ')':
		l.pos++
		return Token{Type: RPAREN, Literal: ")"}
	default:
		start := l.pos
		for !isTokenSeparator(l.current()) {
			l.pos++
		}
		return Token{Type: ATOM, Literal: l.src[start:l.pos]}
	}
}
