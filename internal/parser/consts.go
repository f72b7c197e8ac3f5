package parser

import (
	"strconv"

	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/token"
)

// parseConst parses the `const` production: `INT | FLOAT | BOOL | STRING
// | "[" const,* "]" | ID? "{" (ID "=" const),* "}"`.
func (p *Parser) parseConst() (ast.Const, *diag.Error) {
	startPos := p.cur.Pos

	switch p.cur.Type {
	case token.INT:
		v, convErr := strconv.ParseInt(p.cur.Literal, 10, 64)
		if convErr != nil {
			return nil, p.errorf(diag.ParseError, startPos, "invalid integer literal %q", p.cur.Literal)
		}
		p.advance()
		return &ast.IntConst{Value: v, StartPos: startPos}, nil

	case token.FLOAT:
		v, convErr := strconv.ParseFloat(p.cur.Literal, 64)
		if convErr != nil {
			return nil, p.errorf(diag.ParseError, startPos, "invalid float literal %q", p.cur.Literal)
		}
		p.advance()
		return &ast.FloatConst{Value: v, StartPos: startPos}, nil

	case token.TRUE:
		p.advance()
		return &ast.BoolConst{Value: true, StartPos: startPos}, nil

	case token.FALSE:
		p.advance()
		return &ast.BoolConst{Value: false, StartPos: startPos}, nil

	case token.STRING:
		v := p.cur.Literal
		p.advance()
		return &ast.StringConst{Value: v, StartPos: startPos}, nil

	case token.LBRACKET:
		return p.parseListConst()

	case token.LBRACE:
		return p.parseStructConst("", startPos)

	case token.IDENT:
		if !p.peekIs(token.LBRACE) {
			return nil, p.errorf(diag.ParseError, p.cur.Pos, "expected a constant, got %s instead", describe(p.cur))
		}
		typeName := p.cur.Literal
		p.advance()
		return p.parseStructConst(typeName, startPos)

	default:
		return nil, p.errorf(diag.ParseError, p.cur.Pos, "expected a constant, got %s instead", describe(p.cur))
	}
}

// parseListConst parses `"[" const,* "]"`.
func (p *Parser) parseListConst() (*ast.ListConst, *diag.Error) {
	startPos := p.cur.Pos
	p.advance() // "["

	var elems []ast.Const
	if !p.curIs(token.RBRACKET) {
		for {
			el, err := p.parseConst()
			if err != nil {
				return nil, err
			}
			elems = append(elems, el)
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.ListConst{Elems: elems, StartPos: startPos}, nil
}

// parseStructConst parses `"{" (ID "=" const),* "}"`, having already
// consumed the optional leading type name.
func (p *Parser) parseStructConst(typeName string, startPos token.Position) (*ast.StructConst, *diag.Error) {
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}

	var fields []ast.StructField
	if !p.curIs(token.RBRACE) {
		for {
			nameTok, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.ASSIGN); err != nil {
				return nil, err
			}
			val, err := p.parseConst()
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.StructField{Name: nameTok.Literal, Value: val})
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.StructConst{TypeName: typeName, Fields: fields, StartPos: startPos}, nil
}
