package lower

import (
	"testing"

	"github.com/rill-lang/rillc/internal/catalog"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/parser"
)

// lowerSource parses and lowers src against the builtin catalog,
// failing the test on any syntax error.
func lowerSource(t *testing.T, src string) (map[string]*ir.Graph, *diag.Error) {
	t.Helper()
	prog, perr := parser.Parse(src)
	if perr != nil {
		t.Fatalf("unexpected parse error: %v", perr)
	}
	return New(catalog.NewBuiltins()).LowerProgram(prog)
}

func TestIdentityScenario(t *testing.T) {
	graphs, err := lowerSource(t, `main(x: Int) -> (x: Int) { output(x = x); }`)
	if err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}
	g := graphs["main"]
	if len(g.Nodes) != 0 {
		t.Errorf("expected zero operation nodes, got %d", len(g.Nodes))
	}
	if len(g.Edges) != 1 {
		t.Fatalf("expected one edge, got %d", len(g.Edges))
	}
	e := g.Edges[0]
	if e.FromNode != ir.BoundaryInputNode || e.FromPort != "x" || e.ToNode != ir.BoundaryOutputNode || e.ToPort != "x" {
		t.Errorf("edge = %+v", e)
	}
}

func TestAddScenarioNamedArgs(t *testing.T) {
	graphs, err := lowerSource(t, `main(a: Int, b: Int) -> (r: Int) {
		s = iadd(a=a, b=b);
		output(r = s.c);
	}`)
	if err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}
	assertAddGraph(t, graphs["main"])
}

func TestPositionalScenarioMatchesNamed(t *testing.T) {
	graphs, err := lowerSource(t, `main(a: Int, b: Int) -> (r: Int) {
		s = iadd(a, b);
		output(r = s.c);
	}`)
	if err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}
	assertAddGraph(t, graphs["main"])
}

func assertAddGraph(t *testing.T, g *ir.Graph) {
	t.Helper()
	if len(g.Nodes) != 1 {
		t.Fatalf("expected one node, got %d", len(g.Nodes))
	}
	n := g.Nodes[0]
	if n.Op != "builtin/iadd" {
		t.Errorf("node op = %q, want builtin/iadd", n.Op)
	}
	want := map[string]bool{
		"input.a -> " + n.ID + ".a":   false,
		"input.b -> " + n.ID + ".b":   false,
		n.ID + ".c -> output.r":       false,
	}
	for _, e := range g.Edges {
		key := e.FromNode + "." + e.FromPort + " -> " + e.ToNode + "." + e.ToPort
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Errorf("missing expected edge %q; got edges %+v", k, g.Edges)
		}
	}
}

func TestConditionalScenario(t *testing.T) {
	graphs, err := lowerSource(t, `main(p: Bool) -> (v: Int) {
		r = if p () { output(v = 1); } else { output(v = 2); };
		output(v = r.v);
	}`)
	if err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}
	g := graphs["main"]

	var switchNode, evalNode *ir.Node
	for _, n := range g.Nodes {
		switch n.Op {
		case "builtin/switch":
			switchNode = n
		case "builtin/eval":
			evalNode = n
		}
	}
	if switchNode == nil {
		t.Fatal("expected a builtin/switch node")
	}
	if evalNode == nil {
		t.Fatal("expected a builtin/eval node")
	}

	boxedCount := 0
	for _, n := range g.Nodes {
		if n.Const != nil && n.Const.Kind == "graph" {
			boxedCount++
		}
	}
	if boxedCount != 2 {
		t.Errorf("expected 2 boxed sub-graph constants (then/else), got %d", boxedCount)
	}

	if !g.HasEdgeTo(switchNode.ID, "pred") {
		t.Error("expected switch.pred wired from the condition")
	}
	if !g.HasEdgeTo(evalNode.ID, "thunk") {
		t.Error("expected eval.thunk wired from switch.value")
	}
}

func TestLoopScenario(t *testing.T) {
	graphs, err := lowerSource(t, `main(start: Int) -> (x: Int) {
		r = loop (x = start) {
			y = iadd(x, 1);
			output(x = y.c);
		} while {
			c = ilt(x, 10);
			output(pred = c.c);
		};
		output(x = r.x);
	}`)
	if err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}
	g := graphs["main"]

	var loopNode *ir.Node
	for _, n := range g.Nodes {
		if n.Op == "builtin/loop" {
			loopNode = n
		}
	}
	if loopNode == nil {
		t.Fatal("expected a builtin/loop node")
	}
	if !g.HasEdgeTo(loopNode.ID, "condition") {
		t.Error("expected loop.condition wired")
	}
	if !g.HasEdgeTo(loopNode.ID, "body") {
		t.Error("expected loop.body wired")
	}
	if !g.HasEdgeTo(loopNode.ID, "x") {
		t.Error("expected loop.x state input wired")
	}
}

func TestUnknownFunctionFails(t *testing.T) {
	_, err := lowerSource(t, `main(x: Int) -> (r: Int) { q = frobnicate(x); output(r = q); }`)
	if err == nil {
		t.Fatal("expected an UnknownFunction error")
	}
	if err.Kind != diag.UnknownFunction {
		t.Errorf("kind = %v, want UnknownFunction", err.Kind)
	}
}

func TestNameNotInScopeFails(t *testing.T) {
	_, err := lowerSource(t, `main() -> (r: Int) { output(r = missing); }`)
	if err == nil {
		t.Fatal("expected a NameNotInScope error")
	}
	if err.Kind != diag.NameNotInScope {
		t.Errorf("kind = %v, want NameNotInScope", err.Kind)
	}
}

func TestDuplicateDeclarationFails(t *testing.T) {
	_, err := lowerSource(t, `
main() -> (r: Int) { output(r = 1); }
main() -> (r: Int) { output(r = 2); }
`)
	if err == nil {
		t.Fatal("expected a DuplicateDeclaration error")
	}
	if err.Kind != diag.DuplicateDeclaration {
		t.Errorf("kind = %v, want DuplicateDeclaration", err.Kind)
	}
}

// TestUnknownTypeAliasCaughtEagerly checks that LowerProgramContext
// validates every declared type alias up front, even one nothing in
// the program ever references — the eager pass described in comment
// 2's fix, without which an unreferenced bad alias would silently pass
// lowering and diag.UnknownTypeAlias could never fire.
func TestUnknownTypeAliasCaughtEagerly(t *testing.T) {
	_, err := lowerSource(t, `
type Bogus = Missing;
main() -> (r: Int) { output(r = 1); }
`)
	if err == nil {
		t.Fatal("expected an UnknownTypeAlias error for an alias nobody references")
	}
	if err.Kind != diag.UnknownTypeAlias {
		t.Errorf("kind = %v, want UnknownTypeAlias", err.Kind)
	}
}

// TestSelfReferentialTypeAliasFails is the program-level counterpart
// to resolveType's own TestResolveTypeAliasCycleFails: a two-alias
// cycle declared at the top level must be rejected by
// LowerProgramContext's eager validation pass rather than recursing
// forever.
func TestSelfReferentialTypeAliasFails(t *testing.T) {
	_, err := lowerSource(t, `
type A = B;
type B = A;
main() -> (r: Int) { output(r = 1); }
`)
	if err == nil {
		t.Fatal("expected a self-referential alias chain to fail rather than recurse forever")
	}
	if err.Kind != diag.UnknownTypeAlias {
		t.Errorf("kind = %v, want UnknownTypeAlias", err.Kind)
	}
}

// TestValidTypeAliasChainLowersCleanly is the positive counterpart:
// a multi-level alias chain declared at the top level (SPEC_FULL.md
// §9's supplemented "aliases may chain" feature) must not trip the new
// eager validation pass when every link genuinely resolves.
func TestValidTypeAliasChainLowersCleanly(t *testing.T) {
	_, err := lowerSource(t, `
type Num = Int;
type Pair = Num;
main() -> (r: Int) { output(r = 1); }
`)
	if err != nil {
		t.Fatalf("unexpected lowering error for a valid alias chain: %v", err)
	}
}

func TestIdempotenceOfLowering(t *testing.T) {
	src := `main(a: Int, b: Int) -> (r: Int) { s = iadd(a, b); output(r = s.c); }`
	g1, err := lowerSource(t, src)
	if err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}
	g2, err := lowerSource(t, src)
	if err != nil {
		t.Fatalf("unexpected lowering error: %v", err)
	}
	if g1["main"].DebugRepr() != g2["main"].DebugRepr() {
		t.Errorf("lowering the same source twice produced different graphs:\n%s\n---\n%s",
			g1["main"].DebugRepr(), g2["main"].DebugRepr())
	}
}
