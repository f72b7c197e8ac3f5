package ir

import (
	"fmt"
	"strings"
)

// StructField is one named entry of a struct constant's payload. It is
// a slice element, not a map value: spec.md §9 requires struct-literal
// field order to survive into the emitted constant, since no nominal
// identity is tracked for anonymous struct values.
type StructField struct {
	Name  string     `json:"name"`
	Value ConstValue `json:"value"`
}

// ConstValue is the payload carried by a constant node (spec.md §4.1
// invariant 5). Exactly one of the scalar/composite fields is
// meaningful, selected by Kind; it is tagged this way (rather than a Go
// interface) so it round-trips through JSON field-for-field for the
// type-check bridge without any decode step on the front-end's part.
type ConstValue struct {
	Kind string `json:"kind"` // "int", "float", "bool", "string", "list", "struct", "graph"

	Int    int64  `json:"int,omitempty"`
	Float  float64 `json:"float,omitempty"`
	Bool   bool   `json:"bool,omitempty"`
	String string `json:"string,omitempty"`

	List   []ConstValue  `json:"list,omitempty"`
	Struct []StructField `json:"struct,omitempty"`

	// Graph carries a locally defined function's body when it is
	// referenced as a value (spec.md §9's graph-valued constants).
	Graph *Graph `json:"graph,omitempty"`
}

func IntValue(v int64) ConstValue      { return ConstValue{Kind: "int", Int: v} }
func FloatValue(v float64) ConstValue  { return ConstValue{Kind: "float", Float: v} }
func BoolValue(v bool) ConstValue      { return ConstValue{Kind: "bool", Bool: v} }
func StringValue(v string) ConstValue  { return ConstValue{Kind: "string", String: v} }
func ListValue(elems []ConstValue) ConstValue {
	return ConstValue{Kind: "list", List: elems}
}
func StructValue(fields []StructField) ConstValue {
	return ConstValue{Kind: "struct", Struct: fields}
}
func GraphValue(g *Graph) ConstValue { return ConstValue{Kind: "graph", Graph: g} }

// debugRepr renders v for Graph.DebugRepr; it is not a parseable format.
func (v ConstValue) debugRepr() string {
	switch v.Kind {
	case "int":
		return fmt.Sprintf("%d", v.Int)
	case "float":
		return fmt.Sprintf("%g", v.Float)
	case "bool":
		return fmt.Sprintf("%t", v.Bool)
	case "string":
		return fmt.Sprintf("%q", v.String)
	case "list":
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.debugRepr()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case "struct":
		parts := make([]string, len(v.Struct))
		for i, f := range v.Struct {
			parts[i] = f.Name + "=" + f.Value.debugRepr()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case "graph":
		return "<graph>"
	default:
		return "?"
	}
}
