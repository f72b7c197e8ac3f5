package types

import "strings"

// pairType is `Pair<First, Second>`.
type pairType struct {
	First, Second Type
}

func Pair(first, second Type) Type { return &pairType{First: first, Second: second} }

func (t *pairType) TypeKind() string { return "PAIR" }
func (t *pairType) String() string   { return "Pair<" + t.First.String() + ", " + t.Second.String() + ">" }
func (t *pairType) Equals(other Type) bool {
	o, ok := other.(*pairType)
	return ok && t.First.Equals(o.First) && t.Second.Equals(o.Second)
}

// vecType is `Vec<Elem>`.
type vecType struct {
	Elem Type
}

func Vec(elem Type) Type { return &vecType{Elem: elem} }

func (t *vecType) TypeKind() string { return "VEC" }
func (t *vecType) String() string   { return "Vec<" + t.Elem.String() + ">" }
func (t *vecType) Equals(other Type) bool {
	o, ok := other.(*vecType)
	return ok && t.Elem.Equals(o.Elem)
}

// mapType is `Map<Key, Value>`.
type mapType struct {
	Key, Value Type
}

func Map(key, value Type) Type { return &mapType{Key: key, Value: value} }

func (t *mapType) TypeKind() string { return "MAP" }
func (t *mapType) String() string   { return "Map<" + t.Key.String() + ", " + t.Value.String() + ">" }
func (t *mapType) Equals(other Type) bool {
	o, ok := other.(*mapType)
	return ok && t.Key.Equals(o.Key) && t.Value.Equals(o.Value)
}

// Field is one named, ordered member of a struct type.
type Field struct {
	Name string
	Type Type
}

// structType is `Struct { field: type, ... }`; field order is
// significant for String() but not for Equals, which checks the field
// set by name the way a structural type system would.
type structType struct {
	Fields []Field
}

func Struct(fields []Field) Type { return &structType{Fields: fields} }

func (t *structType) TypeKind() string { return "STRUCT" }
func (t *structType) String() string {
	var sb strings.Builder
	sb.WriteString("Struct{")
	for i, f := range t.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(f.Type.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
func (t *structType) Equals(other Type) bool {
	o, ok := other.(*structType)
	if !ok || len(o.Fields) != len(t.Fields) {
		return false
	}
	byName := make(map[string]Type, len(o.Fields))
	for _, f := range o.Fields {
		byName[f.Name] = f.Type
	}
	for _, f := range t.Fields {
		ot, ok := byName[f.Name]
		if !ok || !f.Type.Equals(ot) {
			return false
		}
	}
	return true
}

// Port is one named, ordered input or output of a graph type.
type Port struct {
	Name string
	Type Type
}

// graphType is a graph_type used as a value type: `(ins) -> (outs)`.
// Order is significant (spec.md §3's port-order invariant carries into
// the type system: two graph types with the same ports in a different
// order are different types, since they bind positionally).
type graphType struct {
	Inputs, Outputs []Port
}

func Graph(inputs, outputs []Port) Type { return &graphType{Inputs: inputs, Outputs: outputs} }

func (t *graphType) TypeKind() string { return "GRAPH" }
func (t *graphType) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	writePorts(&sb, t.Inputs)
	sb.WriteString(") -> (")
	writePorts(&sb, t.Outputs)
	sb.WriteByte(')')
	return sb.String()
}
func (t *graphType) Equals(other Type) bool {
	o, ok := other.(*graphType)
	if !ok {
		return false
	}
	return portsEqual(t.Inputs, o.Inputs) && portsEqual(t.Outputs, o.Outputs)
}

func writePorts(sb *strings.Builder, ports []Port) {
	for i, p := range ports {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteString(": ")
		sb.WriteString(p.Type.String())
	}
}

func portsEqual(a, b []Port) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || !a[i].Type.Equals(b[i].Type) {
			return false
		}
	}
	return true
}
