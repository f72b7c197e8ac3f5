package ast

import "github.com/rill-lang/rillc/internal/token"

// IntConst, FloatConst, BoolConst, StringConst are the scalar literals.
type IntConst struct {
	Value    int64
	StartPos token.Position
}

func (c *IntConst) Pos() token.Position { return c.StartPos }
func (*IntConst) constNode()            {}

type FloatConst struct {
	Value    float64
	StartPos token.Position
}

func (c *FloatConst) Pos() token.Position { return c.StartPos }
func (*FloatConst) constNode()            {}

type BoolConst struct {
	Value    bool
	StartPos token.Position
}

func (c *BoolConst) Pos() token.Position { return c.StartPos }
func (*BoolConst) constNode()            {}

type StringConst struct {
	Value    string
	StartPos token.Position
}

func (c *StringConst) Pos() token.Position { return c.StartPos }
func (*StringConst) constNode()            {}

// ListConst is `[ const,* ]`.
type ListConst struct {
	Elems    []Const
	StartPos token.Position
}

func (c *ListConst) Pos() token.Position { return c.StartPos }
func (*ListConst) constNode()            {}

// StructField is one `name = value` entry of a StructConst, kept as a
// slice (not a map) so field insertion order survives into the lowered
// constant node's payload — spec.md §9's "no nominal identity tracked,
// insertion order preserved" rule.
type StructField struct {
	Name  string
	Value Const
}

// StructConst is an optionally-named anonymous struct literal:
// `ID? "{" (ID = const),* "}"`.
type StructConst struct {
	TypeName string // optional; "" when the literal omits it
	Fields   []StructField
	StartPos token.Position
}

func (c *StructConst) Pos() token.Position { return c.StartPos }
func (*StructConst) constNode()            {}
