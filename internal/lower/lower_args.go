package lower

import (
	"fmt"

	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/scope"
)

// bindArgs implements spec.md §4.5's "Argument binding": args is
// either a named map, a positional list zipped against declaredInputs,
// or empty (permitted so a later EdgeDecl can wire the rest). variadic
// callees (builtin/eval, builtin/loop, and local-function application,
// which both reuse builtin/eval) skip the UnknownPort/ArityMismatch
// checks, since declaredInputs there names only the fixed control ports.
func (l *Lowering) bindArgs(g *ir.Graph, ctx scope.Context, args *ast.ArgList, declaredInputs []string, targetNode string, variadic bool) *diag.Error {
	if args.IsEmpty() {
		return nil
	}

	if len(args.Named) > 0 {
		allowed := make(map[string]bool, len(declaredInputs))
		for _, p := range declaredInputs {
			allowed[p] = true
		}
		for _, na := range args.Named {
			if !variadic && !allowed[na.Port] {
				return diag.New(diag.UnknownPort, args.Pos(), fmt.Sprintf("port %q is not declared by this callee", na.Port))
			}
			ref, err := l.resolveSingle(g, ctx, na.Value)
			if err != nil {
				return err
			}
			if g.HasEdgeTo(targetNode, na.Port) {
				return diag.New(diag.PortDoubleWired, args.Pos(), fmt.Sprintf("input port %q is wired more than once", na.Port))
			}
			g.AddEdge(ir.NewEdge(ref.Node, ref.Port, targetNode, na.Port))
		}
		return nil
	}

	if !variadic && len(args.Positional) != len(declaredInputs) {
		return diag.New(diag.ArityMismatch, args.Pos(),
			fmt.Sprintf("expected %d positional argument(s), got %d", len(declaredInputs), len(args.Positional)))
	}
	n := len(args.Positional)
	if n > len(declaredInputs) {
		n = len(declaredInputs)
	}
	for i := 0; i < n; i++ {
		ref, err := l.resolveSingle(g, ctx, args.Positional[i])
		if err != nil {
			return err
		}
		port := declaredInputs[i]
		if g.HasEdgeTo(targetNode, port) {
			return diag.New(diag.PortDoubleWired, args.Pos(), fmt.Sprintf("input port %q is wired more than once", port))
		}
		g.AddEdge(ir.NewEdge(ref.Node, ref.Port, targetNode, port))
	}
	return nil
}
