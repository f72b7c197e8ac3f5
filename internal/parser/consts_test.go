package parser

import (
	"testing"

	"github.com/rill-lang/rillc/internal/ast"
)

func parseConstDeclValue(t *testing.T, literal string) ast.Const {
	t.Helper()
	insts := parseFuncBody(t, "const k = "+literal+";")
	return insts[0].(*ast.ConstDecl).Value
}

func TestParseScalarConsts(t *testing.T) {
	if c, ok := parseConstDeclValue(t, "42").(*ast.IntConst); !ok || c.Value != 42 {
		t.Errorf("int const = %+v", c)
	}
	if c, ok := parseConstDeclValue(t, "3.5").(*ast.FloatConst); !ok || c.Value != 3.5 {
		t.Errorf("float const = %+v", c)
	}
	if c, ok := parseConstDeclValue(t, "true").(*ast.BoolConst); !ok || c.Value != true {
		t.Errorf("bool const = %+v", c)
	}
	if c, ok := parseConstDeclValue(t, "'hi'").(*ast.StringConst); !ok || c.Value != "hi" {
		t.Errorf("string const = %+v", c)
	}
}

func TestParseListConst(t *testing.T) {
	lc, ok := parseConstDeclValue(t, "[1, 2, 3]").(*ast.ListConst)
	if !ok {
		t.Fatalf("got %T, want *ast.ListConst", lc)
	}
	if len(lc.Elems) != 3 {
		t.Fatalf("len = %d, want 3", len(lc.Elems))
	}
	for i, want := range []int64{1, 2, 3} {
		ic, ok := lc.Elems[i].(*ast.IntConst)
		if !ok || ic.Value != want {
			t.Errorf("elem[%d] = %+v, want %d", i, lc.Elems[i], want)
		}
	}
}

func TestParseEmptyListConst(t *testing.T) {
	lc := parseConstDeclValue(t, "[]").(*ast.ListConst)
	if len(lc.Elems) != 0 {
		t.Errorf("len = %d, want 0", len(lc.Elems))
	}
}

func TestParseAnonymousStructConst(t *testing.T) {
	sc, ok := parseConstDeclValue(t, "{ x = 1, y = 2 }").(*ast.StructConst)
	if !ok {
		t.Fatalf("got %T, want *ast.StructConst", sc)
	}
	if sc.TypeName != "" {
		t.Errorf("type name = %q, want empty", sc.TypeName)
	}
	if len(sc.Fields) != 2 || sc.Fields[0].Name != "x" || sc.Fields[1].Name != "y" {
		t.Errorf("fields = %+v, want ordered [x y]", sc.Fields)
	}
}

func TestParseNamedStructConst(t *testing.T) {
	sc := parseConstDeclValue(t, "Point { x = 1, y = 2 }").(*ast.StructConst)
	if sc.TypeName != "Point" {
		t.Errorf("type name = %q, want Point", sc.TypeName)
	}
}

func TestParseNestedListOfStructs(t *testing.T) {
	lc := parseConstDeclValue(t, "[Point { x = 1, y = 2 }, Point { x = 3, y = 4 }]").(*ast.ListConst)
	if len(lc.Elems) != 2 {
		t.Fatalf("len = %d, want 2", len(lc.Elems))
	}
	first := lc.Elems[0].(*ast.StructConst)
	if first.TypeName != "Point" {
		t.Errorf("first.TypeName = %q, want Point", first.TypeName)
	}
}

func TestParseInvalidConstIsError(t *testing.T) {
	_, err := Parse("main() -> () { const k = if; }")
	if err == nil {
		t.Fatal("expected a parse error, got nil")
	}
}
