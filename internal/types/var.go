package types

import "sync/atomic"

var nextVarID int64

// varType is a type-inference placeholder: spec.md §3 requires that
// every unannotated port get its own identity, never shared with any
// other placeholder, so the downstream type checker can unify them
// independently.
type varType struct {
	id int64
}

// NewVar returns a fresh placeholder type, distinct from every other
// value NewVar has ever returned.
func NewVar() Type {
	return &varType{id: atomic.AddInt64(&nextVarID, 1)}
}

func (t *varType) TypeKind() string { return "VAR" }
func (t *varType) String() string   { return "?" }
func (t *varType) Equals(other Type) bool {
	o, ok := other.(*varType)
	return ok && o.id == t.id
}
