/*
File    : eli/internal/parser/parser.go

Package parser implements the S-expression reader from spec §4.1: a
single-lookahead recursive-descent parser over the three-token stream
Lexer produces. It is deliberately tolerant of malformed input — an
unbalanced `(` is not diagnosed, end-of-input simply terminates the
list being built — because the grammar has no error productions to
report through (spec §1: no line/column tracking, coarse-grained
errors only surface from evaluation, never from parsing).
*/
package parser

import "github.com/yekhlakov/eli-go/internal/value"

// Parser reads a single Value tree from a fixed source string.
type Parser struct {
	lex *Lexer
	tok Token
}

// New returns a Parser ready to read from src.
func New(src string) *Parser {
	p := &Parser{lex: NewLexer(src)}
	p.advance()
	return p
}

// Parse reads and returns one Value tree, per the grammar:
//
//	expr := '(' list ')' | token | ε
//
// (comments are handled transparently by the lexer, not by this
// grammar). End-of-input at the top level yields the empty Atom.
func Parse(src string) value.Value {
	return New(src).parseExpr()
}

func (p *Parser) advance() {
	p.tok = p.lex.NextToken()
}

// parseExpr reads one expression from the current token. A stray `)`
// is treated exactly like end-of-input: it yields the empty Atom
// without being consumed, so that the enclosing parseList can notice
// it and close the list.
func (p *Parser) parseExpr() value.Value {
	switch p.tok.Type {
	case EOF, RPAREN:
		return value.Empty()
	case LPAREN:
		p.advance()
		return p.parseList()
	default: // ATOM
		lit := p.tok.Literal
		p.advance()
		return value.NewAtom(lit)
	}
}

// parseList reads expressions until a `)` or end-of-input, per
// spec §4.1's tolerant parse_list: a child that turns out to be the
// empty-Atom end-of-input sentinel terminates the list instead of
// being pushed onto it.
func (p *Parser) parseList() *value.List {
	list := value.NewEmptyList()
	for {
		el := p.parseExpr()
		if el.IsAtom() && el.IsEmpty() {
			if p.tok.Type == RPAREN {
				p.advance()
			}
			return list
		}
		list.Items = append(list.Items, el)
		if p.tok.Type == RPAREN {
			p.advance()
			return list
		}
	}
}
