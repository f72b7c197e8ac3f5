package scope

import "testing"

func TestForkSharesFunctionsAndAliases(t *testing.T) {
	parent := New()
	parent.DeclareFunction("f", nil)
	parent.DeclareAlias("A", nil)

	child := parent.Fork()

	if _, ok := child.LookupFunction("f"); !ok {
		t.Error("child should see parent's declared functions")
	}
	if _, ok := child.LookupAlias("A"); !ok {
		t.Error("child should see parent's declared aliases")
	}
}

func TestForkResetsOutputVarsConstantsAndPorts(t *testing.T) {
	parent := New()
	parent.BindOutput("s", Binding{NodeID: "n1", Ports: []string{"c"}})
	parent.BindConstant("k", nil)
	parent.DeclareInput("a")
	parent.DeclareOutput("r")

	child := parent.Fork()

	if _, ok := child.ResolveOutputVar("s"); ok {
		t.Error("child should not see parent's output-var bindings")
	}
	if _, ok := child.ResolveConstant("k"); ok {
		t.Error("child should not see parent's local constants")
	}
	if child.IsInput("a") {
		t.Error("child should not inherit parent's input ports")
	}
	if child.IsOutput("r") {
		t.Error("child should not inherit parent's output ports")
	}
}

func TestChildMutationsDoNotLeakToParent(t *testing.T) {
	parent := New()
	child := parent.Fork()

	child.BindOutput("x", Binding{NodeID: "n2"})
	child.DeclareInput("y")

	if _, ok := parent.ResolveOutputVar("x"); ok {
		t.Error("parent should not observe child's output-var bindings")
	}
	if parent.IsInput("y") {
		t.Error("parent should not observe child's input ports")
	}
}

func TestBindAndResolveRoundTrip(t *testing.T) {
	c := New()
	c.BindOutput("s", Binding{NodeID: "n1", Ports: []string{"c", "d"}})

	b, ok := c.ResolveOutputVar("s")
	if !ok {
		t.Fatal("expected binding for s")
	}
	if b.NodeID != "n1" || len(b.Ports) != 2 {
		t.Errorf("binding = %+v", b)
	}

	if _, ok := c.ResolveOutputVar("missing"); ok {
		t.Error("unbound name should not resolve")
	}
}
