package lower

import (
	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/scope"
)

// lowerIfAssign implements spec.md §4.5's Conditional rule: `target =
// if cond (inputs) { then } else { else }`. then/else each lower as
// their own sub-graph sharing the parent's functions/aliases; their
// output port sets union into the synthetic result bound at target.
func (l *Lowering) lowerIfAssign(g *ir.Graph, ctx scope.Context, inst *ast.IfAssign) *diag.Error {
	cond, err := l.resolveSingle(g, ctx, inst.Cond)
	if err != nil {
		return err
	}

	forwarded := make([]string, len(inst.Inputs))
	for i, na := range inst.Inputs {
		forwarded[i] = na.Port
	}

	thenGraph, err := l.lowerSubBlock(ctx, forwarded, inst.Then)
	if err != nil {
		return err
	}
	elseGraph, err := l.lowerSubBlock(ctx, forwarded, inst.Else)
	if err != nil {
		return err
	}
	outputs := unionPorts(thenGraph.OutputPorts, elseGraph.OutputPorts)

	thenID := g.NextNodeID()
	g.AddNode(ir.NewBoxedNode(thenID, thenGraph, nil))
	elseID := g.NextNodeID()
	g.AddNode(ir.NewBoxedNode(elseID, elseGraph, nil))

	switchEntry, ok := l.Catalog.Lookup("builtin", "switch")
	if !ok {
		return diag.New(diag.UnknownFunction, inst.Pos(), "builtin/switch is not registered in the signature catalog")
	}
	switchID := g.NextNodeID()
	g.AddNode(ir.NewOpNode(switchID, switchEntry.QualifiedName(), switchEntry.Inputs, switchEntry.Outputs, switchEntry.Scheme))
	g.AddEdge(ir.NewEdge(cond.Node, cond.Port, switchID, "pred"))
	g.AddEdge(ir.NewEdge(thenID, ir.ConstNodeOutputPort, switchID, "if_true"))
	g.AddEdge(ir.NewEdge(elseID, ir.ConstNodeOutputPort, switchID, "if_false"))

	evalEntry, ok := l.Catalog.Lookup("builtin", "eval")
	if !ok {
		return diag.New(diag.UnknownFunction, inst.Pos(), "builtin/eval is not registered in the signature catalog")
	}
	evalID := g.NextNodeID()
	evalInputs := append([]string{"thunk"}, forwarded...)
	g.AddNode(ir.NewOpNode(evalID, evalEntry.QualifiedName(), evalInputs, outputs, evalEntry.Scheme))
	g.AddEdge(ir.NewEdge(switchID, "value", evalID, "thunk"))

	if err := l.bindArgs(g, ctx, &ast.ArgList{Named: inst.Inputs, StartPos: inst.Pos()}, forwarded, evalID, true); err != nil {
		return err
	}

	ctx.BindOutput(inst.Target, scope.Binding{NodeID: evalID, Ports: outputs})
	return nil
}
