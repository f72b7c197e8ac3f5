package lower

import (
	"encoding/json"
	"fmt"

	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/scope"
	"github.com/rill-lang/rillc/internal/types"
)

// resolveType translates a parsed ast.TypeExpr into the IR's type
// language (spec.md §4.3). Composite kinds recurse; an alias reference
// is looked up in ctx's alias table and resolved transitively.
func resolveType(ctx scope.Context, t ast.TypeExpr) (types.Type, *diag.Error) {
	return resolveTypeChain(ctx, t, map[string]bool{})
}

// resolveTypeChain is resolveType plus a seen-alias set, so a chain of
// aliases that loops back on itself (`type A = B; type B = A;`) reports
// UnknownTypeAlias instead of recursing forever — this front-end has no
// separate alias-cycle diagnostic, and spec.md's closed kind set has no
// room to add one, so a self-referential chain is treated the same as
// an alias that was never declared.
func resolveTypeChain(ctx scope.Context, t ast.TypeExpr, seen map[string]bool) (types.Type, *diag.Error) {
	switch te := t.(type) {
	case *ast.Primitive:
		switch te.Kind {
		case "Int":
			return types.INTEGER, nil
		case "Bool":
			return types.BOOLEAN, nil
		case "Float":
			return types.FLOAT, nil
		case "Str":
			return types.STRING, nil
		default:
			return nil, diag.New(diag.ParseError, te.Pos(), fmt.Sprintf("unknown primitive type %q", te.Kind))
		}

	case *ast.PairType:
		first, err := resolveTypeChain(ctx, te.First, seen)
		if err != nil {
			return nil, err
		}
		second, err := resolveTypeChain(ctx, te.Second, seen)
		if err != nil {
			return nil, err
		}
		return types.Pair(first, second), nil

	case *ast.VecType:
		elem, err := resolveTypeChain(ctx, te.Elem, seen)
		if err != nil {
			return nil, err
		}
		return types.Vec(elem), nil

	case *ast.MapType:
		key, err := resolveTypeChain(ctx, te.Key, seen)
		if err != nil {
			return nil, err
		}
		val, err := resolveTypeChain(ctx, te.Value, seen)
		if err != nil {
			return nil, err
		}
		return types.Map(key, val), nil

	case *ast.StructType:
		fields := make([]types.Field, len(te.Fields))
		for i, p := range te.Fields {
			ft, err := resolveTypeChain(ctx, p.Type, seen)
			if err != nil {
				return nil, err
			}
			fields[i] = types.Field{Name: p.Name, Type: ft}
		}
		return types.Struct(fields), nil

	case *ast.GraphType:
		inputs, err := resolvePorts(ctx, te.Signature.Inputs)
		if err != nil {
			return nil, err
		}
		outputs, err := resolvePorts(ctx, te.Signature.Outputs)
		if err != nil {
			return nil, err
		}
		return types.Graph(inputs, outputs), nil

	case *ast.AliasRef:
		if seen[te.Name] {
			return nil, diag.New(diag.UnknownTypeAlias, te.Pos(), fmt.Sprintf("type alias %q is defined in terms of itself", te.Name))
		}
		target, ok := ctx.LookupAlias(te.Name)
		if !ok {
			return nil, diag.New(diag.UnknownTypeAlias, te.Pos(), fmt.Sprintf("undefined type alias %q", te.Name))
		}
		chained := make(map[string]bool, len(seen)+1)
		for k := range seen {
			chained[k] = true
		}
		chained[te.Name] = true
		return resolveTypeChain(ctx, target, chained)

	case *ast.InferPlaceholder:
		return types.NewVar(), nil

	default:
		return nil, diag.New(diag.ParseError, t.Pos(), "unsupported type expression")
	}
}

func resolvePorts(ctx scope.Context, params []ast.Param) ([]types.Port, *diag.Error) {
	ports := make([]types.Port, len(params))
	for i, p := range params {
		t, err := resolveType(ctx, p.Type)
		if err != nil {
			return nil, err
		}
		ports[i] = types.Port{Name: p.Name, Type: t}
	}
	return ports, nil
}

// schemeJSON renders t as spec.md §4.2's opaque type scheme document —
// the same {kind, type} shape catalog.NewBuiltins uses for its own
// entries, so a catalog-sourced scheme and a signature-resolved one are
// indistinguishable to anything downstream that only forwards Scheme
// without parsing it.
func schemeJSON(t types.Type) json.RawMessage {
	raw, err := json.Marshal(struct {
		Kind string `json:"kind"`
		Type string `json:"type"`
	}{Kind: t.TypeKind(), Type: t.String()})
	if err != nil {
		return nil
	}
	return raw
}
