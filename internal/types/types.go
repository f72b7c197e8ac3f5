// Package types is the closed value system internal/lower resolves
// ast.TypeExpr nodes into (spec.md §4.3). It carries no knowledge of
// syntax; it only models the four primitives and the composite shapes
// spec.md §2 lists (Pair, Vec, Map, Struct, Graph), plus the fresh,
// never-shared placeholder spec.md calls for when a port's type is
// left for the downstream type checker to infer.
//
// Grounded on the shape implied by the teacher's internal/types/*_test.go
// (Type/TypeKind/Equals/String, package-level primitive singletons).
package types

// Type is a resolved Rill type term.
type Type interface {
	TypeKind() string
	String() string
	Equals(Type) bool
}

type primitive struct {
	kind string
}

func (p *primitive) TypeKind() string { return p.kind }
func (p *primitive) String() string   { return p.kind }
func (p *primitive) Equals(other Type) bool {
	o, ok := other.(*primitive)
	return ok && o.kind == p.kind
}

// The four scalar primitives, singletons so pointer identity already
// implies equality; Equals still compares by kind for safety against
// accidental re-construction.
var (
	INTEGER = &primitive{kind: "INTEGER"}
	FLOAT   = &primitive{kind: "FLOAT"}
	STRING  = &primitive{kind: "STRING"}
	BOOLEAN = &primitive{kind: "BOOLEAN"}
)

// IsPrimitive reports whether t is one of the four scalar types.
func IsPrimitive(t Type) bool {
	_, ok := t.(*primitive)
	return ok
}
