package ir

import "testing"

func TestNextNodeIDIsDeterministicSequence(t *testing.T) {
	g := NewGraph("main", nil, nil)
	ids := []string{g.NextNodeID(), g.NextNodeID(), g.NextNodeID()}
	want := []string{"n1", "n2", "n3"}
	for i, id := range ids {
		if id != want[i] {
			t.Errorf("id[%d] = %q, want %q", i, id, want[i])
		}
	}
}

func TestAddNodeAndEdge(t *testing.T) {
	g := NewGraph("main", []string{"a", "b"}, []string{"r"})
	n := g.AddNode(NewOpNode(g.NextNodeID(), "builtin/iadd", []string{"a", "b"}, []string{"c"}, nil))
	g.AddEdge(NewEdge(BoundaryInputNode, "a", n.ID, "a"))
	g.AddEdge(NewEdge(BoundaryInputNode, "b", n.ID, "b"))
	g.AddEdge(NewEdge(n.ID, "c", BoundaryOutputNode, "r"))

	if len(g.Nodes) != 1 || len(g.Edges) != 3 {
		t.Fatalf("nodes=%d edges=%d, want 1/3", len(g.Nodes), len(g.Edges))
	}
}

func TestHasEdgeToDetectsDoubleWire(t *testing.T) {
	g := NewGraph("main", []string{"a"}, nil)
	n := g.AddNode(NewOpNode(g.NextNodeID(), "builtin/iadd", []string{"a", "b"}, []string{"c"}, nil))
	g.AddEdge(NewEdge(BoundaryInputNode, "a", n.ID, "a"))

	if !g.HasEdgeTo(n.ID, "a") {
		t.Error("expected HasEdgeTo to report the existing edge")
	}
	if g.HasEdgeTo(n.ID, "b") {
		t.Error("port b has no edge yet, HasEdgeTo should report false")
	}
}

func TestDebugReprIncludesNodesAndEdges(t *testing.T) {
	g := NewGraph("identity", []string{"x"}, []string{"x"})
	g.AddEdge(NewEdge(BoundaryInputNode, "x", BoundaryOutputNode, "x"))

	repr := g.DebugRepr()
	if repr != "input.x -> output.x\n" {
		t.Errorf("DebugRepr() = %q", repr)
	}
}

func TestDebugReprRendersConstNode(t *testing.T) {
	g := NewGraph("main", nil, []string{"r"})
	n := g.AddNode(NewConstNode(g.NextNodeID(), IntValue(42), nil))
	g.AddEdge(NewEdge(n.ID, ConstNodeOutputPort, BoundaryOutputNode, "r"))

	repr := g.DebugRepr()
	if repr == "" {
		t.Fatal("expected a non-empty debug repr")
	}
}
