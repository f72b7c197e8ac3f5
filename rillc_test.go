package rillc

import (
	"context"
	"errors"
	"testing"

	"github.com/rill-lang/rillc/internal/catalog"
	"github.com/rill-lang/rillc/internal/diag"
	"github.com/rill-lang/rillc/internal/typecheck"
)

func TestCompileAllReturnsOneGraphPerFunction(t *testing.T) {
	graphs, err := CompileAll(`
double(x: Int) -> (y: Int) { output(y = x); }
main(a: Int) -> (r: Int) { s = double(x = a); output(r = s.y); }
`, catalog.NewBuiltins())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := graphs["double"]; !ok {
		t.Error("expected a graph for double")
	}
	if _, ok := graphs["main"]; !ok {
		t.Error("expected a graph for main")
	}
}

func TestCompileAllPropagatesParseErrors(t *testing.T) {
	_, err := CompileAll(`main(a: Int -> (r: Int) { output(r = a); }`, catalog.NewBuiltins())
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var derr *diag.Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected a *diag.Error, got %T", err)
	}
	if derr.Kind != diag.ParseError {
		t.Errorf("kind = %v, want ParseError", derr.Kind)
	}
}

func TestCompileChecksTheNamedEntry(t *testing.T) {
	g, err := Compile(context.Background(),
		`main(x: Int) -> (x: Int) { output(x = x); }`,
		catalog.NewBuiltins(), "main", typecheck.Passthrough{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name != "main" {
		t.Errorf("g.Name = %q, want main", g.Name)
	}
}

func TestCompileUnknownEntryFails(t *testing.T) {
	_, err := Compile(context.Background(),
		`main() -> (r: Int) { output(r = 1); }`,
		catalog.NewBuiltins(), "missing", typecheck.Passthrough{})
	if err == nil {
		t.Fatal("expected an error for an undeclared entry function")
	}
}

func TestCompileSurfacesTypeCheckFailures(t *testing.T) {
	_, err := Compile(context.Background(),
		`main() -> (r: Int) { output(r = 1); }`,
		catalog.NewBuiltins(), "main", rejectingChecker{})
	if err == nil {
		t.Fatal("expected a TypeCheckFailed error")
	}
	var derr *diag.Error
	if !errors.As(err, &derr) {
		t.Fatalf("expected a *diag.Error, got %T", err)
	}
	if derr.Kind != diag.TypeCheckFailed {
		t.Errorf("kind = %v, want TypeCheckFailed", derr.Kind)
	}
}

func TestCompileAbortsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Compile(ctx,
		`main() -> (r: Int) { output(r = 1); }`,
		catalog.NewBuiltins(), "main", typecheck.Passthrough{})
	if err == nil {
		t.Fatal("expected lowering to abort on a canceled context")
	}
}

type rejectingChecker struct{}

func (rejectingChecker) Check(_ context.Context, req typecheck.Request) (typecheck.Response, error) {
	return typecheck.Response{Errors: []typecheck.TypeError{{Message: "rejected for test"}}}, nil
}
