// Package rillc is the compiler front-end's library entry point: parse,
// lower, and (for the named entry function) hand the result to an
// external type checker. It is deliberately thin — spec.md §1 places
// the CLI driver and the checker itself out of scope, so this file
// only wires the pipeline together.
package rillc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rill-lang/rillc/internal/catalog"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/lower"
	"github.com/rill-lang/rillc/internal/parser"
	"github.com/rill-lang/rillc/internal/typecheck"
)

// CompileAll parses and lowers every declaration in src against cat,
// returning one *ir.Graph per function name. It does not invoke the
// type checker; callers that need a typed result for a specific entry
// function should use Compile instead.
func CompileAll(src string, cat *catalog.Catalog) (map[string]*ir.Graph, error) {
	prog, perr := parser.Parse(src)
	if perr != nil {
		perr.Source = src
		return nil, perr
	}
	graphs, lerr := lower.New(cat).LowerProgram(prog)
	if lerr != nil {
		lerr.Source = src
		return nil, lerr
	}
	return graphs, nil
}

// Compile parses and lowers src, then type-checks the named entry
// function via checker. It returns the entry's graph as checked only
// on success; on any failure (syntax, lowering, or type-check) no
// partial graph is returned, per spec.md §6's exit behavior.
func Compile(ctx context.Context, src string, cat *catalog.Catalog, entry string, checker typecheck.Checker) (*ir.Graph, error) {
	prog, perr := parser.Parse(src)
	if perr != nil {
		perr.Source = src
		return nil, perr
	}

	graphs, lerr := lower.New(cat).LowerProgramContext(ctx, prog)
	if lerr != nil {
		lerr.Source = src
		return nil, lerr
	}

	g, ok := graphs[entry]
	if !ok {
		return nil, fmt.Errorf("rillc: no function named %q in program", entry)
	}

	resp, err := checker.Check(ctx, typecheck.NewRequest(g, cat))
	if err != nil {
		return nil, fmt.Errorf("rillc: type checker request failed: %w", err)
	}
	if !resp.Ok() {
		errs := make([]diag.TypeError, len(resp.Errors))
		for i, e := range resp.Errors {
			errs[i] = diag.TypeError{Pos: e.Pos, Message: e.Message}
		}
		return nil, diag.NewTypeCheckFailed(errs)
	}

	typed := new(ir.Graph)
	if err := json.Unmarshal(resp.TypedGraph, typed); err != nil {
		return nil, fmt.Errorf("rillc: decode checker's typed graph: %w", err)
	}
	return typed, nil
}
