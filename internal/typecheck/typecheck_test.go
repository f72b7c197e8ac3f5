package typecheck

import (
	"context"
	"testing"

	"github.com/rill-lang/rillc/internal/catalog"
	"github.com/rill-lang/rillc/internal/ir"
)

func TestPassthroughRoundTripsGraph(t *testing.T) {
	g := ir.NewGraph("identity", []string{"x"}, []string{"x"})
	g.AddEdge(ir.NewEdge(ir.BoundaryInputNode, "x", ir.BoundaryOutputNode, "x"))

	req := NewRequest(g, catalog.NewBuiltins())
	resp, err := Passthrough{}.Check(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Ok() {
		t.Fatalf("expected Ok response, got errors: %+v", resp.Errors)
	}
	if len(resp.TypedGraph) == 0 {
		t.Error("expected a non-empty typed graph payload")
	}
}

func TestNewRequestFlattensCatalog(t *testing.T) {
	cat := catalog.NewBuiltins()
	req := NewRequest(ir.NewGraph("main", nil, nil), cat)
	if len(req.Catalog) != len(cat.Entries()) {
		t.Errorf("request catalog has %d entries, want %d", len(req.Catalog), len(cat.Entries()))
	}
}

func TestResponseOkReportsFalseWithErrors(t *testing.T) {
	resp := Response{Errors: []TypeError{{Message: "boom"}}}
	if resp.Ok() {
		t.Error("response with errors should not be Ok")
	}
}
