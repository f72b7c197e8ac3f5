package catalog

import "testing"

func TestNewBuiltinsHasRequiredOps(t *testing.T) {
	c := NewBuiltins()

	for _, name := range []string{"eval", "switch", "loop"} {
		if _, ok := c.Lookup("builtin", name); !ok {
			t.Errorf("builtin/%s missing from NewBuiltins catalog", name)
		}
	}
}

func TestBuiltinIaddPorts(t *testing.T) {
	c := NewBuiltins()
	e, ok := c.Lookup("builtin", "iadd")
	if !ok {
		t.Fatal("builtin/iadd missing")
	}
	if len(e.Inputs) != 2 || e.Inputs[0] != "a" || e.Inputs[1] != "b" {
		t.Errorf("inputs = %v, want [a b]", e.Inputs)
	}
	if len(e.Outputs) != 1 || e.Outputs[0] != "c" {
		t.Errorf("outputs = %v, want [c]", e.Outputs)
	}
	if e.QualifiedName() != "builtin/iadd" {
		t.Errorf("QualifiedName() = %q", e.QualifiedName())
	}
}

func TestEvalAndLoopAreVariadic(t *testing.T) {
	c := NewBuiltins()
	eval, _ := c.Lookup("builtin", "eval")
	if !eval.Variadic {
		t.Error("builtin/eval should be Variadic")
	}
	loop, _ := c.Lookup("builtin", "loop")
	if !loop.Variadic {
		t.Error("builtin/loop should be Variadic")
	}
}

func TestLookupMissingNamespaceOrName(t *testing.T) {
	c := NewBuiltins()
	if _, ok := c.Lookup("nope", "iadd"); ok {
		t.Error("expected missing namespace to report not found")
	}
	if _, ok := c.Lookup("builtin", "frobnicate"); ok {
		t.Error("expected missing name to report not found")
	}
}

func TestMergeOverwritesCollidingEntries(t *testing.T) {
	base := New()
	base.Add(FunctionEntry{Namespace: "builtin", Name: "iadd", Inputs: []string{"a", "b"}, Outputs: []string{"c"}})

	override := New()
	override.Add(FunctionEntry{Namespace: "builtin", Name: "iadd", Inputs: []string{"x", "y"}, Outputs: []string{"z"}})

	base.Merge(override)
	e, _ := base.Lookup("builtin", "iadd")
	if e.Inputs[0] != "x" {
		t.Errorf("expected merge to overwrite, got inputs = %v", e.Inputs)
	}
}
