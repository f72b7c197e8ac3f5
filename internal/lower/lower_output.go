package lower

import (
	"fmt"

	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/scope"
)

// lowerOutputStmt implements spec.md §4.5's "Output statement" rule
// for a FuncDef's own body: its arglist is processed as for a call,
// with expected_ports equal to the function's already-declared output
// order, so arity and unknown-port checks are the ordinary call ones.
func (l *Lowering) lowerOutputStmt(g *ir.Graph, ctx scope.Context, stmt *ast.OutputStmt) *diag.Error {
	return l.bindArgs(g, ctx, stmt.Args, g.OutputPorts, ir.BoundaryOutputNode, false)
}

// lowerDynamicOutputStmt lowers an "output(...)" statement inside an
// if/loop sub-block, where no output signature is declared up front:
// each named argument both wires an edge and (on first use) appends
// its name to the sub-graph's OutputPorts, in the order it appears.
func (l *Lowering) lowerDynamicOutputStmt(g *ir.Graph, ctx scope.Context, stmt *ast.OutputStmt) *diag.Error {
	if stmt.Args.IsEmpty() {
		return nil
	}
	if len(stmt.Args.Named) == 0 {
		return diag.New(diag.ParseError, stmt.Pos(), "output inside a conditional or loop block must name its ports")
	}
	for _, na := range stmt.Args.Named {
		ref, err := l.resolveSingle(g, ctx, na.Value)
		if err != nil {
			return err
		}
		if g.HasEdgeTo(ir.BoundaryOutputNode, na.Port) {
			return diag.New(diag.PortDoubleWired, stmt.Pos(), fmt.Sprintf("output port %q is wired more than once", na.Port))
		}
		g.OutputPorts = append(g.OutputPorts, na.Port)
		g.AddEdge(ir.NewEdge(ref.Node, ref.Port, ir.BoundaryOutputNode, na.Port))
	}
	return nil
}
