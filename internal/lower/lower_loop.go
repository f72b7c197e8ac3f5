package lower

import (
	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/scope"
)

// lowerLoopAssign implements spec.md §4.5's Loop rule: `target = loop
// (inputs) { body } while { cond }`. body and cond each see the same
// forwarded state names and share the parent's functions/aliases; the
// loop's outputs are the body sub-graph's own output port set.
func (l *Lowering) lowerLoopAssign(g *ir.Graph, ctx scope.Context, inst *ast.LoopAssign) *diag.Error {
	stateNames := make([]string, len(inst.Inputs))
	for i, na := range inst.Inputs {
		stateNames[i] = na.Port
	}

	bodyGraph, err := l.lowerSubBlock(ctx, stateNames, inst.Body)
	if err != nil {
		return err
	}
	condGraph, err := l.lowerSubBlock(ctx, stateNames, inst.Cond)
	if err != nil {
		return err
	}

	bodyID := g.NextNodeID()
	g.AddNode(ir.NewBoxedNode(bodyID, bodyGraph, nil))
	condID := g.NextNodeID()
	g.AddNode(ir.NewBoxedNode(condID, condGraph, nil))

	loopEntry, ok := l.Catalog.Lookup("builtin", "loop")
	if !ok {
		return diag.New(diag.UnknownFunction, inst.Pos(), "builtin/loop is not registered in the signature catalog")
	}
	loopID := g.NextNodeID()
	loopInputs := append([]string{"condition", "body"}, stateNames...)
	g.AddNode(ir.NewOpNode(loopID, loopEntry.QualifiedName(), loopInputs, bodyGraph.OutputPorts, loopEntry.Scheme))
	g.AddEdge(ir.NewEdge(condID, ir.ConstNodeOutputPort, loopID, "condition"))
	g.AddEdge(ir.NewEdge(bodyID, ir.ConstNodeOutputPort, loopID, "body"))

	if err := l.bindArgs(g, ctx, &ast.ArgList{Named: inst.Inputs, StartPos: inst.Pos()}, stateNames, loopID, true); err != nil {
		return err
	}

	ctx.BindOutput(inst.Target, scope.Binding{NodeID: loopID, Ports: bodyGraph.OutputPorts})
	return nil
}
