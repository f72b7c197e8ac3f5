package lower

import (
	"fmt"

	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/catalog"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/scope"
)

// lowerCallAssign lowers `target = callexpr;` — either an ordinary
// call/thunk, and binds target to the emitted node's output ports.
func (l *Lowering) lowerCallAssign(g *ir.Graph, ctx scope.Context, inst *ast.CallAssign) *diag.Error {
	refs, err := l.resolvePorts(g, ctx, inst.Call)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return diag.New(diag.PortNotFound, inst.Pos(), "call produces no output ports")
	}
	nodeID := refs[0].Node
	ports := make([]string, len(refs))
	for i, r := range refs {
		ports[i] = r.Port
	}
	ctx.BindOutput(inst.Target, scope.Binding{NodeID: nodeID, Ports: ports})
	return nil
}

// lowerCallExpr implements spec.md §4.5's "Call lowering": resolve the
// qualified name against the signature catalog first (the unqualified
// namespace is "builtin", per spec.md §4.2), then the local functions
// table.
func (l *Lowering) lowerCallExpr(g *ir.Graph, ctx scope.Context, call *ast.CallExpr) (string, []string, *diag.Error) {
	namespace := call.Namespace
	if namespace == "" {
		namespace = "builtin"
	}

	if entry, ok := l.Catalog.Lookup(namespace, call.Name); ok {
		return l.lowerCatalogCall(g, ctx, call, entry)
	}

	if call.Namespace == "" {
		if fn, ok := ctx.LookupFunction(call.Name); ok {
			return l.lowerLocalCall(g, ctx, call, fn)
		}
	}

	return "", nil, diag.New(diag.UnknownFunction, call.Pos(), fmt.Sprintf("unknown function %q", call.Name))
}

// lowerCatalogCall emits a plain operation node under the catalog
// entry's canonical name and wires its arguments.
func (l *Lowering) lowerCatalogCall(g *ir.Graph, ctx scope.Context, call *ast.CallExpr, entry catalog.FunctionEntry) (string, []string, *diag.Error) {
	nodeID := g.NextNodeID()
	g.AddNode(ir.NewOpNode(nodeID, entry.QualifiedName(), entry.Inputs, entry.Outputs, entry.Scheme))

	if err := l.bindArgs(g, ctx, call.Args, entry.Inputs, nodeID, entry.Variadic); err != nil {
		return "", nil, err
	}
	return nodeID, entry.Outputs, nil
}

// lowerLocalCall emits a locally defined function as a boxed
// graph-valued constant node, then applies it with a builtin/eval
// node — the same mechanism spec.md §4.5 describes for thunk
// lowering, since calling a local function and evaluating its boxed
// value are the same operation.
func (l *Lowering) lowerLocalCall(g *ir.Graph, ctx scope.Context, call *ast.CallExpr, fn *ast.FuncDef) (string, []string, *diag.Error) {
	boxedGraph, boxedScheme, err := l.lowerBoxedFunction(ctx, fn)
	if err != nil {
		return "", nil, err
	}
	boxedID := g.NextNodeID()
	g.AddNode(ir.NewBoxedNode(boxedID, boxedGraph, boxedScheme))

	evalEntry, ok := l.Catalog.Lookup("builtin", "eval")
	if !ok {
		return "", nil, diag.New(diag.UnknownFunction, call.Pos(), "builtin/eval is not registered in the signature catalog")
	}

	evalID := g.NextNodeID()
	inputNames := fn.Signature.InputNames()
	evalInputs := append([]string{"thunk"}, inputNames...)
	g.AddNode(ir.NewOpNode(evalID, evalEntry.QualifiedName(), evalInputs, fn.Signature.OutputNames(), evalEntry.Scheme))
	g.AddEdge(ir.NewEdge(boxedID, ir.ConstNodeOutputPort, evalID, "thunk"))

	if err := l.bindArgs(g, ctx, call.Args, inputNames, evalID, true); err != nil {
		return "", nil, err
	}
	return evalID, fn.Signature.OutputNames(), nil
}

// lowerThunkCall implements "Thunk lowering": `!expr(named args)`
// resolves expr to a single graph-valued outport, then emits a
// builtin/eval node wired from that port with the named args forwarded.
//
// When expr resolves to a boxed graph-valued constant node in g (a bare
// reference to a local function), eval's fixed ports are taken from
// that sub-graph's own signature instead of the catalog's generic
// (necessarily empty) builtin/eval entry, so the call's result can
// still be bound by name without waiting on the type checker. Any other
// target (an input port, or an output of an operation node such as a
// previously bound if/loop result) gives an eval node with no output
// ports.
func (l *Lowering) lowerThunkCall(g *ir.Graph, ctx scope.Context, t *ast.ThunkCall) (string, []string, *diag.Error) {
	target, err := l.resolveSingle(g, ctx, t.Target)
	if err != nil {
		return "", nil, err
	}

	evalEntry, ok := l.Catalog.Lookup("builtin", "eval")
	if !ok {
		return "", nil, diag.New(diag.UnknownFunction, t.Pos(), "builtin/eval is not registered in the signature catalog")
	}

	var declaredInputs, declaredOutputs []string
	if node, ok := g.Node(target.Node); ok && node.Const != nil && node.Const.Kind == "graph" && node.Const.Graph != nil {
		declaredInputs = node.Const.Graph.InputPorts
		declaredOutputs = node.Const.Graph.OutputPorts
	}

	evalID := g.NextNodeID()
	evalInputs := append([]string{"thunk"}, declaredInputs...)
	g.AddNode(ir.NewOpNode(evalID, evalEntry.QualifiedName(), evalInputs, declaredOutputs, evalEntry.Scheme))
	g.AddEdge(ir.NewEdge(target.Node, target.Port, evalID, "thunk"))

	if err := l.bindArgs(g, ctx, t.Args, declaredInputs, evalID, true); err != nil {
		return "", nil, err
	}
	return evalID, declaredOutputs, nil
}
