// Package ast defines the abstract syntax tree produced by the Rill
// parser (spec.md §3). Nodes are immutable once built and are walked
// by internal/lower, which walks a function's body again each time that
// function is called or referenced as a value.
package ast

import (
	"github.com/rill-lang/rillc/internal/token"
)

// Node is the base interface every AST node satisfies, matching the
// teacher's TokenLiteral/String/Pos shape.
type Node interface {
	Pos() token.Position
}

// Decl is a top-level declaration: a TypeAliasDecl or a FuncDef.
type Decl interface {
	Node
	declNode()
}

// Instruction is one statement inside a function body.
type Instruction interface {
	Node
	instructionNode()
}

// TypeExpr is a parsed type expression, not yet resolved against the
// current Context's alias table.
type TypeExpr interface {
	Node
	typeExprNode()
}

// Const is a parsed literal constant.
type Const interface {
	Node
	constNode()
}

// Outport is anything spec.md §3 allows as an "outport source": a bare
// identifier, an explicit var.port reference, a nested call, or an
// inline constant.
type Outport interface {
	Node
	outportNode()
}

// Program is the parsed translation unit: an ordered list of declarations.
type Program struct {
	Decls []Decl
}

func (p *Program) Pos() token.Position {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Param is one entry of a Signature's ordered input or output port list.
type Param struct {
	Name string
	Type TypeExpr
}

// Signature is a function's ordered input and output port lists.
// Order is semantically significant: spec.md §3 invariant 4.
type Signature struct {
	Inputs  []Param
	Outputs []Param
	StartPos token.Position
}

func (s *Signature) Pos() token.Position { return s.StartPos }

// InputNames returns the declared input port names, in declaration order.
func (s *Signature) InputNames() []string {
	names := make([]string, len(s.Inputs))
	for i, p := range s.Inputs {
		names[i] = p.Name
	}
	return names
}

// OutputNames returns the declared output port names, in declaration order.
func (s *Signature) OutputNames() []string {
	names := make([]string, len(s.Outputs))
	for i, p := range s.Outputs {
		names[i] = p.Name
	}
	return names
}
