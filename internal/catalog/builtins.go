package catalog

import (
	"encoding/json"

	"github.com/rill-lang/rillc/internal/types"
)

// NewBuiltins returns a Catalog seeding the three operations lowering
// requires to exist (spec.md §4.2) plus a small reference
// arithmetic/comparison namespace used by the worked examples of
// spec.md §8 and by this repository's own test suite. Every entry
// carries a Scheme built from internal/types, so a consumer of
// Catalog.Entries() (the type-check bridge, primarily) sees the same
// closed type language internal/lower resolves declared signatures
// into, not just bare port names.
func NewBuiltins() *Catalog {
	c := New()

	thunk := types.Graph(nil, nil)
	c.Add(FunctionEntry{
		Namespace: "builtin", Name: "eval",
		Inputs: []string{"thunk"}, Variadic: true,
		Scheme: scheme([]types.Port{{Name: "thunk", Type: thunk}}, nil),
	})
	c.Add(FunctionEntry{
		Namespace: "builtin", Name: "switch",
		Inputs: []string{"pred", "if_true", "if_false"}, Outputs: []string{"value"},
		Scheme: scheme(
			[]types.Port{{Name: "pred", Type: types.BOOLEAN}, {Name: "if_true", Type: thunk}, {Name: "if_false", Type: thunk}},
			[]types.Port{{Name: "value", Type: types.NewVar()}},
		),
	})
	c.Add(FunctionEntry{
		Namespace: "builtin", Name: "loop",
		Inputs: []string{"condition", "body"}, Variadic: true,
		Scheme: scheme([]types.Port{{Name: "condition", Type: thunk}, {Name: "body", Type: thunk}}, nil),
	})

	for _, op := range []string{"iadd", "isub", "imul"} {
		c.Add(FunctionEntry{
			Namespace: "builtin", Name: op, Inputs: []string{"a", "b"}, Outputs: []string{"c"},
			Scheme: binaryScheme(types.INTEGER, types.INTEGER, types.INTEGER),
		})
	}
	for _, op := range []string{"ieq", "ilt"} {
		c.Add(FunctionEntry{
			Namespace: "builtin", Name: op, Inputs: []string{"a", "b"}, Outputs: []string{"c"},
			Scheme: binaryScheme(types.INTEGER, types.INTEGER, types.BOOLEAN),
		})
	}
	c.Add(FunctionEntry{
		Namespace: "builtin", Name: "fadd", Inputs: []string{"a", "b"}, Outputs: []string{"c"},
		Scheme: binaryScheme(types.FLOAT, types.FLOAT, types.FLOAT),
	})
	c.Add(FunctionEntry{
		Namespace: "builtin", Name: "concat", Inputs: []string{"a", "b"}, Outputs: []string{"c"},
		Scheme: binaryScheme(types.STRING, types.STRING, types.STRING),
	})

	return c
}

func binaryScheme(a, b, c types.Type) json.RawMessage {
	return scheme(
		[]types.Port{{Name: "a", Type: a}, {Name: "b", Type: b}},
		[]types.Port{{Name: "c", Type: c}},
	)
}

// scheme renders a graph-typed opaque scheme document the same way
// internal/lower's schemeJSON helper does for a resolved signature, so
// a builtin entry and a user-declared function carry the same shape of
// Scheme through to the type-check bridge.
func scheme(inputs, outputs []types.Port) json.RawMessage {
	t := types.Graph(inputs, outputs)
	raw, err := json.Marshal(struct {
		Kind string `json:"kind"`
		Type string `json:"type"`
	}{Kind: t.TypeKind(), Type: t.String()})
	if err != nil {
		return nil
	}
	return raw
}
