package ast

import "github.com/rill-lang/rillc/internal/token"

// Primitive is one of Rill's four built-in scalar types.
type Primitive struct {
	Kind     string // "Int", "Bool", "Float", "Str"
	StartPos token.Position
}

func (t *Primitive) Pos() token.Position { return t.StartPos }
func (*Primitive) typeExprNode()         {}

// PairType is `Pair<A, B>`.
type PairType struct {
	First, Second TypeExpr
	StartPos      token.Position
}

func (t *PairType) Pos() token.Position { return t.StartPos }
func (*PairType) typeExprNode()         {}

// VecType is `Vec<A>`.
type VecType struct {
	Elem     TypeExpr
	StartPos token.Position
}

func (t *VecType) Pos() token.Position { return t.StartPos }
func (*VecType) typeExprNode()         {}

// MapType is `Map<K, V>`.
type MapType struct {
	Key, Value TypeExpr
	StartPos   token.Position
}

func (t *MapType) Pos() token.Position { return t.StartPos }
func (*MapType) typeExprNode()         {}

// StructType is `Struct { field: type, ... }`. Field order is the
// declaration order, carried through per spec.md §9's struct-literal
// field-order requirement.
type StructType struct {
	Fields   []Param
	StartPos token.Position
}

func (t *StructType) Pos() token.Position { return t.StartPos }
func (*StructType) typeExprNode()         {}

// GraphType is a graph_type used as a type expression: `(params) -> (params)`.
type GraphType struct {
	Signature *Signature
	StartPos  token.Position
}

func (t *GraphType) Pos() token.Position { return t.StartPos }
func (*GraphType) typeExprNode()         {}

// AliasRef is a bare identifier in type position, resolved against the
// current Context's alias table by internal/lower.
type AliasRef struct {
	Name     string
	StartPos token.Position
}

func (t *AliasRef) Pos() token.Position { return t.StartPos }
func (*AliasRef) typeExprNode()         {}

// InferPlaceholder is the bare type-variable placeholder (no explicit
// type given); it lowers to a fresh, never-shared type variable.
type InferPlaceholder struct {
	StartPos token.Position
}

func (t *InferPlaceholder) Pos() token.Position { return t.StartPos }
func (*InferPlaceholder) typeExprNode()         {}
