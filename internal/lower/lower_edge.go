package lower

import (
	"fmt"

	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/scope"
)

// lowerEdgeDecl implements spec.md §4.5's explicit "Edge declaration":
// `src.port -> tgt.port;`, wiring two already-bound locals (or a
// boundary port, for the bare ID form on either side) directly,
// bypassing argument binding entirely.
func (l *Lowering) lowerEdgeDecl(g *ir.Graph, ctx scope.Context, inst *ast.EdgeDecl) *diag.Error {
	srcNode, srcPort, err := l.resolveEdgeSrc(ctx, inst.Src)
	if err != nil {
		return err
	}
	tgtNode, tgtPort, err := l.resolveEdgeTgt(g, ctx, inst.Tgt)
	if err != nil {
		return err
	}
	if g.HasEdgeTo(tgtNode, tgtPort) {
		return diag.New(diag.PortDoubleWired, inst.Pos(), fmt.Sprintf("input port %q is wired more than once", tgtPort))
	}
	g.AddEdge(ir.NewEdge(srcNode, srcPort, tgtNode, tgtPort))
	return nil
}

// resolveEdgeSrc resolves the read side of an EdgeDecl: a bare
// reference names one of the enclosing graph's own input ports, a
// "var.port" reference names a previously bound local's output port.
func (l *Lowering) resolveEdgeSrc(ctx scope.Context, ref ast.PortRef) (string, string, *diag.Error) {
	if ref.Var == "" {
		if !ctx.IsInput(ref.Port) {
			return "", "", diag.New(diag.NameNotInScope, ref.StartPos, fmt.Sprintf("%q is not a declared input port", ref.Port))
		}
		return ir.BoundaryInputNode, ref.Port, nil
	}
	b, ok := ctx.ResolveOutputVar(ref.Var)
	if !ok {
		return "", "", diag.New(diag.NameNotInScope, ref.StartPos, fmt.Sprintf("%q is not bound in this scope", ref.Var))
	}
	for _, p := range b.Ports {
		if p == ref.Port {
			return b.NodeID, ref.Port, nil
		}
	}
	return "", "", diag.New(diag.PortNotFound, ref.StartPos, fmt.Sprintf("%q has no output port %q", ref.Var, ref.Port))
}

// resolveEdgeTgt resolves the write side of an EdgeDecl: a bare
// reference names one of the enclosing graph's own output ports, a
// "var.port" reference names a previously bound local's input port.
func (l *Lowering) resolveEdgeTgt(g *ir.Graph, ctx scope.Context, ref ast.PortRef) (string, string, *diag.Error) {
	if ref.Var == "" {
		if !ctx.IsOutput(ref.Port) {
			return "", "", diag.New(diag.NameNotInScope, ref.StartPos, fmt.Sprintf("%q is not a declared output port", ref.Port))
		}
		return ir.BoundaryOutputNode, ref.Port, nil
	}
	b, ok := ctx.ResolveOutputVar(ref.Var)
	if !ok {
		return "", "", diag.New(diag.NameNotInScope, ref.StartPos, fmt.Sprintf("%q is not bound in this scope", ref.Var))
	}
	node, ok := g.Node(b.NodeID)
	if !ok {
		return "", "", diag.New(diag.PortNotFound, ref.StartPos, fmt.Sprintf("%q has no input port %q", ref.Var, ref.Port))
	}
	for _, p := range node.InputPorts {
		if p == ref.Port {
			return b.NodeID, ref.Port, nil
		}
	}
	return "", "", diag.New(diag.PortNotFound, ref.StartPos, fmt.Sprintf("%q has no input port %q", ref.Var, ref.Port))
}
