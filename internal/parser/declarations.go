package parser

import (
	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/token"
)

// parseDecl parses `decl := "type" ID "=" type ";" | funcdef`.
func (p *Parser) parseDecl() (ast.Decl, *diag.Error) {
	if p.curIs(token.TYPE) {
		return p.parseTypeAliasDecl()
	}
	return p.parseFuncDef()
}

func (p *Parser) parseTypeAliasDecl() (*ast.TypeAliasDecl, *diag.Error) {
	startPos := p.cur.Pos
	p.advance() // "type"

	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.TypeAliasDecl{Name: name.Literal, Type: typ, StartPos: startPos}, nil
}

// parseFuncDef parses `funcdef := ID graph_type "{" inst* "}"`.
func (p *Parser) parseFuncDef() (*ast.FuncDef, *diag.Error) {
	startPos := p.cur.Pos
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	sig, err := p.parseGraphType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseInstructions()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.FuncDef{Name: name.Literal, Signature: sig, Body: body, StartPos: startPos}, nil
}

// parseGraphType parses `graph_type := "(" params ")" "->" "(" params ")"`.
func (p *Parser) parseGraphType() (*ast.Signature, *diag.Error) {
	startPos := p.cur.Pos
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	inputs, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ARROW); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	outputs, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Signature{Inputs: inputs, Outputs: outputs, StartPos: startPos}, nil
}

// parseParams parses `params := (ID ":" type ("," ID ":" type)*)?`.
func (p *Parser) parseParams() ([]ast.Param, *diag.Error) {
	var params []ast.Param
	if p.curIs(token.RPAREN) {
		return params, nil
	}
	for {
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: name.Literal, Type: typ})
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return params, nil
}

// primitiveKinds are the ID literals recognized as primitive type
// keywords. They are not lexer keywords (Rill keeps its reserved-word
// set minimal, per spec.md §6) — the parser recognizes them
// contextually, the same way it recognizes "Pair"/"Vec"/"Map"/"Struct".
var primitiveKinds = map[string]bool{
	"Int": true, "Bool": true, "Float": true, "Str": true,
}

// parseType parses the `type` production.
func (p *Parser) parseType() (ast.TypeExpr, *diag.Error) {
	startPos := p.cur.Pos

	if p.curIs(token.LPAREN) {
		sig, err := p.parseGraphType()
		if err != nil {
			return nil, err
		}
		return &ast.GraphType{Signature: sig, StartPos: startPos}, nil
	}

	if !p.curIs(token.IDENT) {
		return nil, p.errorf(diag.ParseError, p.cur.Pos, "expected a type, got %s instead", describe(p.cur))
	}
	name := p.cur.Literal

	switch {
	case primitiveKinds[name]:
		p.advance()
		return &ast.Primitive{Kind: name, StartPos: startPos}, nil
	case name == "Pair":
		p.advance()
		if _, err := p.expect(token.LT); err != nil {
			return nil, err
		}
		first, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		second, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.GT); err != nil {
			return nil, err
		}
		return &ast.PairType{First: first, Second: second, StartPos: startPos}, nil
	case name == "Vec":
		p.advance()
		if _, err := p.expect(token.LT); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.GT); err != nil {
			return nil, err
		}
		return &ast.VecType{Elem: elem, StartPos: startPos}, nil
	case name == "Map":
		p.advance()
		if _, err := p.expect(token.LT); err != nil {
			return nil, err
		}
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COMMA); err != nil {
			return nil, err
		}
		val, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.GT); err != nil {
			return nil, err
		}
		return &ast.MapType{Key: key, Value: val, StartPos: startPos}, nil
	case name == "Struct":
		p.advance()
		if _, err := p.expect(token.LBRACE); err != nil {
			return nil, err
		}
		fields, err := p.parseStructParams()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACE); err != nil {
			return nil, err
		}
		return &ast.StructType{Fields: fields, StartPos: startPos}, nil
	default:
		p.advance()
		return &ast.AliasRef{Name: name, StartPos: startPos}, nil
	}
}

// parseStructParams parses the `params` production inside `Struct { ... }`,
// which uses the same comma-separated "ID : type" shape but is delimited
// by braces rather than parens, so it cannot reuse parseParams directly.
func (p *Parser) parseStructParams() ([]ast.Param, *diag.Error) {
	var params []ast.Param
	if p.curIs(token.RBRACE) {
		return params, nil
	}
	for {
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: name.Literal, Type: typ})
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return params, nil
}
