// Package lower implements the single lowering visitor spec.md §4.5
// describes: it walks a parsed *ast.Program and emits an
// internal/ir.Graph per function, never mutating the AST it reads. A
// function's body is walked once for its own graph and once more each
// time another body calls it or references it as a value.
//
// Grounded on the teacher's internal/semantic pass architecture (a
// struct wrapping the collaborators a pass needs, one exported entry
// point per unit of work), adapted from semantic's "annotate, don't
// rewrite" style to an AST-to-graph transform.
package lower

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rill-lang/rillc/internal/ast"
	"github.com/rill-lang/rillc/internal/catalog"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/scope"
)

// Lowering carries the one collaborator the visitor needs beyond the
// AST and scope it is handed per call: the signature catalog it
// resolves call sites against.
type Lowering struct {
	Catalog *catalog.Catalog
}

// New returns a Lowering resolving calls against cat.
func New(cat *catalog.Catalog) *Lowering {
	return &Lowering{Catalog: cat}
}

// PortRef identifies one (node, port) pair produced while resolving an
// outport source (spec.md §4.5's "Outport resolution").
type PortRef struct {
	Node string
	Port string
}

// LowerProgram indexes prog's top-level declarations into a shared
// Context, then lowers every FuncDef into its own Graph. Two type
// aliases, or two functions, sharing a name is DuplicateDeclaration;
// aliases and functions are indexed separately, so a type alias and a
// function may share a name.
func (l *Lowering) LowerProgram(prog *ast.Program) (map[string]*ir.Graph, *diag.Error) {
	return l.LowerProgramContext(context.Background(), prog)
}

// LowerProgramContext is LowerProgram with cancellation: ctx.Err() is
// checked before lowering each top-level function, matching spec.md
// §5's "cancellation aborts before emitting the next node; partial
// graphs are discarded" — the graph already built for an earlier
// function is dropped along with the rest of the map.
func (l *Lowering) LowerProgramContext(ctx context.Context, prog *ast.Program) (map[string]*ir.Graph, *diag.Error) {
	global := scope.New()

	for _, d := range prog.Decls {
		switch decl := d.(type) {
		case *ast.TypeAliasDecl:
			if _, exists := global.LookupAlias(decl.Name); exists {
				return nil, diag.New(diag.DuplicateDeclaration, decl.Pos(),
					fmt.Sprintf("type %q is already declared", decl.Name))
			}
			global.DeclareAlias(decl.Name, decl.Type)
		case *ast.FuncDef:
			if _, exists := global.LookupFunction(decl.Name); exists {
				return nil, diag.New(diag.DuplicateDeclaration, decl.Pos(),
					fmt.Sprintf("function %q is already declared", decl.Name))
			}
			global.DeclareFunction(decl.Name, decl)
		}
	}

	for _, d := range prog.Decls {
		alias, ok := d.(*ast.TypeAliasDecl)
		if !ok {
			continue
		}
		// Resolve every declared alias's target eagerly, at the point
		// the program is indexed, rather than waiting for some
		// signature to reference it: an alias chain that bottoms out
		// on an undefined name (or loops back on itself) is
		// UnknownTypeAlias regardless of whether anything ever uses
		// the alias.
		if _, err := resolveType(global, alias.Type); err != nil {
			return nil, err
		}
	}

	graphs := make(map[string]*ir.Graph)
	for _, d := range prog.Decls {
		fn, ok := d.(*ast.FuncDef)
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, diag.New(diag.ParseError, fn.Pos(), "lowering canceled: "+err.Error())
		}
		g, err := l.LowerFuncDef(fn, global)
		if err != nil {
			return nil, err
		}
		graphs[fn.Name] = g
	}
	return graphs, nil
}

// LowerFuncDef lowers one top-level function definition into its own
// Graph, whose boundary ports are fixed by fn's declared signature.
//
// fn.Signature is resolved through resolveType/resolvePorts before the
// body is lowered, so a declared input/output referencing an unknown
// type alias is reported as UnknownTypeAlias here rather than passing
// through unchecked; the resolved port types are attached to the
// Graph's boundary as PortTypes (spec.md §4.2's opaque type scheme),
// since a boundary port has no materialized *ir.Node of its own to
// carry a Scheme field on.
func (l *Lowering) LowerFuncDef(fn *ast.FuncDef, global scope.Context) (*ir.Graph, *diag.Error) {
	ctx := global.Fork()
	for _, name := range fn.Signature.InputNames() {
		ctx.DeclareInput(name)
	}
	for _, name := range fn.Signature.OutputNames() {
		ctx.DeclareOutput(name)
	}

	inputPorts, err := resolvePorts(ctx, fn.Signature.Inputs)
	if err != nil {
		return nil, err
	}
	outputPorts, err := resolvePorts(ctx, fn.Signature.Outputs)
	if err != nil {
		return nil, err
	}

	g := ir.NewGraph(fn.Name, fn.Signature.InputNames(), fn.Signature.OutputNames())
	g.PortTypes = make(map[string]json.RawMessage, len(inputPorts)+len(outputPorts))
	for _, p := range inputPorts {
		g.PortTypes[p.Name] = schemeJSON(p.Type)
	}
	for _, p := range outputPorts {
		g.PortTypes[p.Name] = schemeJSON(p.Type)
	}

	if err := l.lowerBlock(g, ctx, fn.Body); err != nil {
		return nil, err
	}
	return g, nil
}

// lowerBlock lowers a straight-line instruction list in source order.
func (l *Lowering) lowerBlock(g *ir.Graph, ctx scope.Context, body []ast.Instruction) *diag.Error {
	for _, inst := range body {
		if err := l.lowerInstruction(g, ctx, inst); err != nil {
			return err
		}
	}
	return nil
}

func (l *Lowering) lowerInstruction(g *ir.Graph, ctx scope.Context, inst ast.Instruction) *diag.Error {
	switch i := inst.(type) {
	case *ast.ConstDecl:
		l.lowerConstDecl(ctx, i)
		return nil
	case *ast.CallAssign:
		return l.lowerCallAssign(g, ctx, i)
	case *ast.IfAssign:
		return l.lowerIfAssign(g, ctx, i)
	case *ast.LoopAssign:
		return l.lowerLoopAssign(g, ctx, i)
	case *ast.OutputStmt:
		return l.lowerOutputStmt(g, ctx, i)
	case *ast.EdgeDecl:
		return l.lowerEdgeDecl(g, ctx, i)
	default:
		return diag.New(diag.ParseError, inst.Pos(), "unsupported instruction")
	}
}

// lowerSubBlock lowers a conditional branch or loop body/condition as
// its own Graph: forwardedInputs become that sub-graph's boundary
// input ports (spec.md §4.4's "freshly specified inputs"), and its
// output ports are discovered, in first-use order, from the block's
// own "output(...)" statements rather than fixed up front — a nested
// construct declares no signature of its own, unlike a FuncDef.
func (l *Lowering) lowerSubBlock(parent scope.Context, forwardedInputs []string, body []ast.Instruction) (*ir.Graph, *diag.Error) {
	inner := parent.Fork()
	for _, name := range forwardedInputs {
		inner.DeclareInput(name)
	}

	g := ir.NewGraph("", forwardedInputs, nil)
	for _, inst := range body {
		if out, ok := inst.(*ast.OutputStmt); ok {
			if err := l.lowerDynamicOutputStmt(g, inner, out); err != nil {
				return nil, err
			}
			continue
		}
		if err := l.lowerInstruction(g, inner, inst); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// unionPorts returns a's entries followed by any of b's entries not
// already present, preserving first-seen order (spec.md §4.5's
// Conditional rule: "the outputs are the union of both branches'
// output names").
func unionPorts(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, p := range a {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, p := range b {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
