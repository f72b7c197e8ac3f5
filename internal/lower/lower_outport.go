package lower

import (
	"encoding/json"
	"fmt"

	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/scope"
	"github.com/rill-lang/rillc/internal/types"
)

// resolvePorts implements spec.md §4.5's "Outport resolution": given an
// Outport source, it returns the ordered list of (node, port) pairs
// that source exposes.
func (l *Lowering) resolvePorts(g *ir.Graph, ctx scope.Context, o ast.Outport) ([]PortRef, *diag.Error) {
	switch src := o.(type) {
	case *ast.CallExpr:
		nodeID, outputs, err := l.lowerCallExpr(g, ctx, src)
		if err != nil {
			return nil, err
		}
		return portRefs(nodeID, outputs), nil

	case *ast.ThunkCall:
		nodeID, outputs, err := l.lowerThunkCall(g, ctx, src)
		if err != nil {
			return nil, err
		}
		return portRefs(nodeID, outputs), nil

	case *ast.Ident:
		return l.resolveIdent(g, ctx, src)

	case *ast.VarPort:
		b, ok := ctx.ResolveOutputVar(src.Var)
		if !ok {
			return nil, diag.New(diag.NameNotInScope, src.Pos(), fmt.Sprintf("%q is not bound in this scope", src.Var))
		}
		for _, p := range b.Ports {
			if p == src.Port {
				return []PortRef{{Node: b.NodeID, Port: src.Port}}, nil
			}
		}
		return nil, diag.New(diag.PortNotFound, src.Pos(), fmt.Sprintf("%q has no output port %q", src.Var, src.Port))

	case *ast.InlineConst:
		nodeID := g.NextNodeID()
		cv := toConstValue(src.Value)
		g.AddNode(ir.NewConstNode(nodeID, cv, schemeJSON(constValueType(cv))))
		return []PortRef{{Node: nodeID, Port: ir.ConstNodeOutputPort}}, nil

	default:
		return nil, diag.New(diag.ParseError, o.Pos(), "unsupported outport source")
	}
}

// resolveSingle resolves o to exactly one (node, port) pair, the form
// every single argument slot, thunk target, if condition, and edge
// endpoint needs.
func (l *Lowering) resolveSingle(g *ir.Graph, ctx scope.Context, o ast.Outport) (PortRef, *diag.Error) {
	refs, err := l.resolvePorts(g, ctx, o)
	if err != nil {
		return PortRef{}, err
	}
	if len(refs) == 0 {
		return PortRef{}, diag.New(diag.PortNotFound, o.Pos(), "outport resolves to no output ports")
	}
	return refs[0], nil
}

// resolveIdent resolves a bare identifier in spec.md §4.5's priority
// order: declared input port, bound call result, declared function
// (materialized as a boxed constant), declared constant.
func (l *Lowering) resolveIdent(g *ir.Graph, ctx scope.Context, id *ast.Ident) ([]PortRef, *diag.Error) {
	name := id.Name

	if ctx.IsInput(name) {
		return []PortRef{{Node: ir.BoundaryInputNode, Port: name}}, nil
	}

	if b, ok := ctx.ResolveOutputVar(name); ok {
		return portRefs(b.NodeID, b.Ports), nil
	}

	if fn, ok := ctx.LookupFunction(name); ok {
		boxedGraph, boxedScheme, err := l.lowerBoxedFunction(ctx, fn)
		if err != nil {
			return nil, err
		}
		nodeID := g.NextNodeID()
		g.AddNode(ir.NewBoxedNode(nodeID, boxedGraph, boxedScheme))
		return []PortRef{{Node: nodeID, Port: ir.ConstNodeOutputPort}}, nil
	}

	if c, ok := ctx.ResolveConstant(name); ok {
		nodeID := g.NextNodeID()
		cv := toConstValue(c)
		g.AddNode(ir.NewConstNode(nodeID, cv, schemeJSON(constValueType(cv))))
		return []PortRef{{Node: nodeID, Port: ir.ConstNodeOutputPort}}, nil
	}

	return nil, diag.New(diag.NameNotInScope, id.Pos(), fmt.Sprintf("%q is not in scope", name))
}

// lowerBoxedFunction lowers fn's body as a standalone Graph so it can
// be carried into the enclosing graph as a graph-valued constant
// (spec.md §4.5: "materialize a constant graph-valued node"). The
// inner Context forks from the reference site, so a function that
// itself references a later-declared sibling still resolves it.
//
// It also resolves fn's declared signature through resolveType/
// resolvePorts, the same way LowerFuncDef does for a top-level
// function, so a boxed reference to a function with an undeclared
// type alias in its signature fails here rather than silently passing
// an untyped value through, and so the returned scheme describes the
// boxed graph's actual port types rather than being left opaque.
func (l *Lowering) lowerBoxedFunction(ctx scope.Context, fn *ast.FuncDef) (*ir.Graph, json.RawMessage, *diag.Error) {
	inner := ctx.Fork()
	for _, name := range fn.Signature.InputNames() {
		inner.DeclareInput(name)
	}
	for _, name := range fn.Signature.OutputNames() {
		inner.DeclareOutput(name)
	}

	inputPorts, err := resolvePorts(ctx, fn.Signature.Inputs)
	if err != nil {
		return nil, nil, err
	}
	outputPorts, err := resolvePorts(ctx, fn.Signature.Outputs)
	if err != nil {
		return nil, nil, err
	}

	g := ir.NewGraph(fn.Name, fn.Signature.InputNames(), fn.Signature.OutputNames())
	if err := l.lowerBlock(g, inner, fn.Body); err != nil {
		return nil, nil, err
	}
	return g, schemeJSON(types.Graph(inputPorts, outputPorts)), nil
}

func portRefs(nodeID string, ports []string) []PortRef {
	refs := make([]PortRef, len(ports))
	for i, p := range ports {
		refs[i] = PortRef{Node: nodeID, Port: p}
	}
	return refs
}
