package parser

import (
	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/token"
)

// parseOutport parses the `outport` production: `const | callexpr | ID |
// ID "." ID`. A leading IDENT needs one extra token of lookahead to pick
// among a bare identifier, a var.port reference, a call, and a named
// struct literal; everything else is settled by cur alone.
func (p *Parser) parseOutport() (ast.Outport, *diag.Error) {
	if p.curIs(token.BANG) {
		return p.parseThunkCall()
	}

	if p.curIs(token.IDENT) {
		switch {
		case p.peekIs(token.LPAREN):
			return p.parseCallExpr("")
		case p.peekIs(token.DOUBLECOLON):
			return p.parseQualifiedCallExpr()
		case p.peekIs(token.DOT):
			return p.parseVarPort()
		case p.peekIs(token.LBRACE):
			c, err := p.parseConst()
			if err != nil {
				return nil, err
			}
			return &ast.InlineConst{Value: c, StartPos: c.Pos()}, nil
		default:
			tok := p.cur
			p.advance()
			return &ast.Ident{Name: tok.Literal, StartPos: tok.Pos}, nil
		}
	}

	switch p.cur.Type {
	case token.INT, token.FLOAT, token.STRING, token.TRUE, token.FALSE, token.LBRACKET, token.LBRACE:
		c, err := p.parseConst()
		if err != nil {
			return nil, err
		}
		return &ast.InlineConst{Value: c, StartPos: c.Pos()}, nil
	default:
		return nil, p.errorf(diag.ParseError, p.cur.Pos, "expected an outport, got %s instead", describe(p.cur))
	}
}

// parseCondOutport parses the outport directly in front of an "if"
// binder's "(" named ")" clause. It deliberately excludes callexpr: the
// binder's own "(" follows immediately after the condition, and a
// generic outport parse would otherwise swallow it as that call's
// argument list (spec.md §8's Conditional example writes the condition
// as a bare identifier, `if p (...)`, never a call).
func (p *Parser) parseCondOutport() (ast.Outport, *diag.Error) {
	if p.curIs(token.IDENT) {
		if p.peekIs(token.DOT) {
			return p.parseVarPort()
		}
		tok := p.cur
		p.advance()
		return &ast.Ident{Name: tok.Literal, StartPos: tok.Pos}, nil
	}
	switch p.cur.Type {
	case token.INT, token.FLOAT, token.STRING, token.TRUE, token.FALSE, token.LBRACKET:
		c, err := p.parseConst()
		if err != nil {
			return nil, err
		}
		return &ast.InlineConst{Value: c, StartPos: c.Pos()}, nil
	default:
		return nil, p.errorf(diag.ParseError, p.cur.Pos, "expected an if condition, got %s instead", describe(p.cur))
	}
}

// parseVarPort parses `ID "." ID`.
func (p *Parser) parseVarPort() (*ast.VarPort, *diag.Error) {
	startPos := p.cur.Pos
	varTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOT); err != nil {
		return nil, err
	}
	portTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.VarPort{Var: varTok.Literal, Port: portTok.Literal, StartPos: startPos}, nil
}

// parseCallExprOrThunk parses the `callexpr` production: `(ID "::")? ID
// "(" args ")" | "!" outport "(" named ")"`.
func (p *Parser) parseCallExprOrThunk() (ast.Outport, *diag.Error) {
	if p.curIs(token.BANG) {
		return p.parseThunkCall()
	}
	if p.peekIs(token.DOUBLECOLON) {
		return p.parseQualifiedCallExpr()
	}
	return p.parseCallExpr("")
}

// parseCallExpr parses `ID "(" args ")"`, already knowing namespace (""
// for an unqualified call).
func (p *Parser) parseCallExpr(namespace string) (*ast.CallExpr, *diag.Error) {
	startPos := p.cur.Pos
	nameTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CallExpr{Namespace: namespace, Name: nameTok.Literal, Args: args, StartPos: startPos}, nil
}

// parseQualifiedCallExpr parses `ID "::" ID "(" args ")"`.
func (p *Parser) parseQualifiedCallExpr() (*ast.CallExpr, *diag.Error) {
	startPos := p.cur.Pos
	nsTok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.DOUBLECOLON); err != nil {
		return nil, err
	}
	call, err := p.parseCallExpr(nsTok.Literal)
	if err != nil {
		return nil, err
	}
	call.StartPos = startPos
	return call, nil
}

// parseThunkCall parses `"!" outport "(" named ")"`. An identifier
// directly followed by "(" is the thunk's target, not a call: that "("
// opens the thunk's own named-argument list.
func (p *Parser) parseThunkCall() (*ast.ThunkCall, *diag.Error) {
	startPos := p.cur.Pos
	p.advance() // "!"

	var target ast.Outport
	if p.curIs(token.IDENT) && p.peekIs(token.LPAREN) {
		tok := p.cur
		p.advance()
		target = &ast.Ident{Name: tok.Literal, StartPos: tok.Pos}
	} else {
		var err *diag.Error
		target, err = p.parseOutport()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	named, err := p.parseNamedArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.ThunkCall{
		Target:   target,
		Args:     &ast.ArgList{Named: named, StartPos: startPos},
		StartPos: startPos,
	}, nil
}

// parseArgs parses `args := named | positional | ε`, distinguishing
// named from positional by peeking past a leading IDENT for "=" — no
// outport alternative can produce that shape, so one token of lookahead
// past cur suffices.
func (p *Parser) parseArgs() (*ast.ArgList, *diag.Error) {
	startPos := p.cur.Pos
	if p.curIs(token.RPAREN) {
		return &ast.ArgList{StartPos: startPos}, nil
	}
	if p.curIs(token.IDENT) && p.peekIs(token.ASSIGN) {
		named, err := p.parseNamedArgs()
		if err != nil {
			return nil, err
		}
		return &ast.ArgList{Named: named, StartPos: startPos}, nil
	}
	positional, err := p.parsePositionalArgs()
	if err != nil {
		return nil, err
	}
	return &ast.ArgList{Positional: positional, StartPos: startPos}, nil
}

// parseNamedArgs parses `named := ID "=" outport ("," ID "=" outport)*`,
// treating an immediately-closing ")" as the empty list: the "if"/"loop"
// binder forms reuse this production for their "(" named ")" clause and
// spec.md's literal examples include a no-input loop/if binder.
func (p *Parser) parseNamedArgs() ([]ast.NamedArg, *diag.Error) {
	var named []ast.NamedArg
	if p.curIs(token.RPAREN) {
		return named, nil
	}
	for {
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ASSIGN); err != nil {
			return nil, err
		}
		val, err := p.parseOutport()
		if err != nil {
			return nil, err
		}
		named = append(named, ast.NamedArg{Port: nameTok.Literal, Value: val})
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return named, nil
}

// parsePositionalArgs parses `positional := outport ("," outport)*`.
func (p *Parser) parsePositionalArgs() ([]ast.Outport, *diag.Error) {
	var args []ast.Outport
	for {
		val, err := p.parseOutport()
		if err != nil {
			return nil, err
		}
		args = append(args, val)
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return args, nil
}
