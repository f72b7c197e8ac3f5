package ast

import "github.com/rill-lang/rillc/internal/token"

// TypeAliasDecl is `type Name = TypeExpr ;`.
type TypeAliasDecl struct {
	Name     string
	Type     TypeExpr
	StartPos token.Position
}

func (d *TypeAliasDecl) Pos() token.Position { return d.StartPos }
func (*TypeAliasDecl) declNode()             {}

// FuncDef is `Name graph_type { inst* }`.
type FuncDef struct {
	Name      string
	Signature *Signature
	Body      []Instruction
	StartPos  token.Position
}

func (d *FuncDef) Pos() token.Position { return d.StartPos }
func (*FuncDef) declNode()             {}
