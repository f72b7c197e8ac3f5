package parser

import (
	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/token"
)

// parseInstructions parses `inst*` up to (not consuming) the closing "}".
func (p *Parser) parseInstructions() ([]ast.Instruction, *diag.Error) {
	var insts []ast.Instruction
	for !p.curIs(token.RBRACE) {
		inst, err := p.parseInstruction()
		if err != nil {
			return nil, err
		}
		insts = append(insts, inst)
	}
	return insts, nil
}

// parseInstruction dispatches on the two tokens of lookahead the grammar
// needs to tell its six alternatives apart: a leading keyword settles
// "const"/"output" outright, and an IDENT followed by "=" settles the
// three assignment forms from the portref edge form.
func (p *Parser) parseInstruction() (ast.Instruction, *diag.Error) {
	switch {
	case p.curIs(token.CONST):
		return p.parseConstDecl()
	case p.curIs(token.OUTPUT):
		return p.parseOutputStmt()
	case p.curIs(token.IDENT) && p.peekIs(token.ASSIGN):
		return p.parseAssignInstruction()
	case p.curIs(token.IDENT):
		return p.parseEdgeDecl()
	default:
		return nil, p.errorf(diag.ParseError, p.cur.Pos, "expected an instruction, got %s instead", describe(p.cur))
	}
}

// parseConstDecl parses `"const" ID "=" const ";"`.
func (p *Parser) parseConstDecl() (*ast.ConstDecl, *diag.Error) {
	startPos := p.cur.Pos
	p.advance() // "const"

	name, err := p.expect(token.IDENT)
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
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.ConstDecl{Name: name.Literal, Value: val, StartPos: startPos}, nil
}

// parseOutputStmt parses `"output" "(" args ")" ";"`.
func (p *Parser) parseOutputStmt() (*ast.OutputStmt, *diag.Error) {
	startPos := p.cur.Pos
	p.advance() // "output"

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
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.OutputStmt{Args: args, StartPos: startPos}, nil
}

// parseAssignInstruction parses the three `ID "=" ...` forms: a plain
// call/thunk bind, an if/else bind, and a loop/while bind.
func (p *Parser) parseAssignInstruction() (ast.Instruction, *diag.Error) {
	startPos := p.cur.Pos
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}

	switch {
	case p.curIs(token.IF):
		return p.parseIfAssign(name.Literal, startPos)
	case p.curIs(token.LOOP):
		return p.parseLoopAssign(name.Literal, startPos)
	default:
		call, err := p.parseCallExprOrThunk()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.CallAssign{Target: name.Literal, Call: call, StartPos: startPos}, nil
	}
}

// parseIfAssign parses the tail of `ID "=" "if" outport "(" named ")"
// "{" inst* "}" "else" "{" inst* "}"`, including the trailing ";" that
// the literal examples in spec.md §8 use even though the informal
// grammar in §6 omits it.
func (p *Parser) parseIfAssign(target string, startPos token.Position) (*ast.IfAssign, *diag.Error) {
	p.advance() // "if"

	cond, err := p.parseCondOutport()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	inputs, err := p.parseNamedArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	thenInsts, err := p.parseInstructions()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ELSE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	elseInsts, err := p.parseInstructions()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.IfAssign{
		Target:   target,
		Cond:     cond,
		Inputs:   inputs,
		Then:     thenInsts,
		Else:     elseInsts,
		StartPos: startPos,
	}, nil
}

// parseLoopAssign parses the tail of `ID "=" "loop" "(" named ")"
// "{" inst* "}" "while" "{" inst* "}"`.
func (p *Parser) parseLoopAssign(target string, startPos token.Position) (*ast.LoopAssign, *diag.Error) {
	p.advance() // "loop"

	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	inputs, err := p.parseNamedArgs()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
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
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	cond, err := p.parseInstructions()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.LoopAssign{
		Target:   target,
		Inputs:   inputs,
		Body:     body,
		Cond:     cond,
		StartPos: startPos,
	}, nil
}

// parsePortRef parses `ID` (a bare boundary port reference) or `ID "." ID`
// (a var.port reference) — the shape the grammar's edge form uses on
// either side of "->", informally named portref in spec.md §6.
func (p *Parser) parsePortRef() (ast.PortRef, *diag.Error) {
	startPos := p.cur.Pos
	first, err := p.expect(token.IDENT)
	if err != nil {
		return ast.PortRef{}, err
	}
	if !p.curIs(token.DOT) {
		return ast.PortRef{Port: first.Literal, StartPos: startPos}, nil
	}
	p.advance() // "."
	second, err := p.expect(token.IDENT)
	if err != nil {
		return ast.PortRef{}, err
	}
	return ast.PortRef{Var: first.Literal, Port: second.Literal, StartPos: startPos}, nil
}

// parseEdgeDecl parses `portref "->" portref ";"`.
func (p *Parser) parseEdgeDecl() (*ast.EdgeDecl, *diag.Error) {
	startPos := p.cur.Pos
	src, err := p.parsePortRef()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ARROW); err != nil {
		return nil, err
	}
	tgt, err := p.parsePortRef()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.EdgeDecl{Src: src, Tgt: tgt, StartPos: startPos}, nil
}
