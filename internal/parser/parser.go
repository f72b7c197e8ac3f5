// Package parser implements a small recursive-descent parser for Rill
// (spec.md §6's grammar), producing the AST in internal/ast.
//
// Grounded on the teacher's internal/parser/parser.go for overall shape
// (a Parser struct wrapping a lexer, two-token lookahead, expectPeek
// helpers) but fails fast on the first syntax error (spec.md §4.1)
// rather than accumulating errors and attempting recovery — Rill's
// grammar is small enough that panic-mode recovery buys nothing.
package parser

import (
	"fmt"

	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/lexer"
	"github.com/rill-lang/rillc/internal/token"
)

// Parser turns a token stream into an *ast.Program, or fails with the
// first *diag.Error encountered.
type Parser struct {
	l    *lexer.Lexer
	cur  token.Token
	peek token.Token
	src  string
}

// New creates a Parser over src.
func New(src string) *Parser {
	p := &Parser{l: lexer.New(src), src: src}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

func (p *Parser) errorf(kind diag.Kind, pos token.Position, format string, args ...any) *diag.Error {
	e := diag.New(kind, pos, fmt.Sprintf(format, args...))
	e.Source = p.src
	return e
}

// expect advances past cur if it matches t, otherwise returns a ParseError.
func (p *Parser) expect(t token.Type) (token.Token, *diag.Error) {
	if !p.curIs(t) {
		return token.Token{}, p.errorf(diag.ParseError, p.cur.Pos,
			"expected %s, got %s instead", t, describe(p.cur))
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

func describe(tok token.Token) string {
	if tok.Type == token.IDENT || tok.Type == token.INT || tok.Type == token.FLOAT || tok.Type == token.STRING {
		return fmt.Sprintf("%s %q", tok.Type, tok.Literal)
	}
	return tok.Type.String()
}

// Parse parses the whole program: program := decl*.
func Parse(src string) (*ast.Program, *diag.Error) {
	p := New(src)
	prog := &ast.Program{}
	if lerr := p.l.Err(); lerr != nil {
		return nil, p.errorf(diag.LexError, lerr.Pos, "%s", lerr.Message)
	}
	for !p.curIs(token.EOF) {
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, decl)
		if lerr := p.l.Err(); lerr != nil {
			return nil, p.errorf(diag.LexError, lerr.Pos, "%s", lerr.Message)
		}
	}
	return prog, nil
}
