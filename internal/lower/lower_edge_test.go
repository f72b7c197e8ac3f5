package lower

import (
	"testing"

	"github.com/rill-lang/rillc/internal/diag"
)

func TestExplicitEdgeDeclWiresOmittedPort(t *testing.T) {
	graphs, err := lowerSource(t, `main(a: Int, b: Int) -> (r: Int) {
		s = iadd(a = a);
		b -> s.b;
		output(r = s.c);
	}`)
	if err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}
	g := graphs["main"]
	if len(g.Nodes) != 1 {
		t.Fatalf("expected one node, got %d", len(g.Nodes))
	}
	n := g.Nodes[0]
	if !g.HasEdgeTo(n.ID, "a") || !g.HasEdgeTo(n.ID, "b") {
		t.Errorf("expected both a and b wired into %s; edges = %+v", n.ID, g.Edges)
	}
}

func TestPortDoubleWiredFails(t *testing.T) {
	_, err := lowerSource(t, `main(a: Int, b: Int) -> (r: Int) {
		s = iadd(a = a, b = b);
		b -> s.b;
		output(r = s.c);
	}`)
	if err == nil {
		t.Fatal("expected a PortDoubleWired error")
	}
	if err.Kind != diag.PortDoubleWired {
		t.Errorf("kind = %v, want PortDoubleWired", err.Kind)
	}
}

func TestArityMismatchFails(t *testing.T) {
	_, err := lowerSource(t, `main(a: Int) -> (r: Int) { s = iadd(a); output(r = s.c); }`)
	if err == nil {
		t.Fatal("expected an ArityMismatch error")
	}
	if err.Kind != diag.ArityMismatch {
		t.Errorf("kind = %v, want ArityMismatch", err.Kind)
	}
}

func TestUnknownPortFails(t *testing.T) {
	_, err := lowerSource(t, `main(a: Int, b: Int) -> (r: Int) {
		s = iadd(a = a, bogus = b);
		output(r = s.c);
	}`)
	if err == nil {
		t.Fatal("expected an UnknownPort error")
	}
	if err.Kind != diag.UnknownPort {
		t.Errorf("kind = %v, want UnknownPort", err.Kind)
	}
}

func TestPortNotFoundFails(t *testing.T) {
	_, err := lowerSource(t, `main(a: Int, b: Int) -> (r: Int) {
		s = iadd(a, b);
		output(r = s.bogus);
	}`)
	if err == nil {
		t.Fatal("expected a PortNotFound error")
	}
	if err.Kind != diag.PortNotFound {
		t.Errorf("kind = %v, want PortNotFound", err.Kind)
	}
}
