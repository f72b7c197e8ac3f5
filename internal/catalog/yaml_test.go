package catalog

import (
	"strings"
	"testing"
)

func TestLoadYAMLBasic(t *testing.T) {
	doc := `
functions:
  - namespace: builtin
    name: iadd
    inputs: [a, b]
    outputs: [c]
  - namespace: math
    name: pow
    inputs: [base, exp]
    outputs: [result]
    variadic: false
`
	c, err := LoadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	iadd, ok := c.Lookup("builtin", "iadd")
	if !ok {
		t.Fatal("builtin/iadd missing")
	}
	if len(iadd.Inputs) != 2 || iadd.Outputs[0] != "c" {
		t.Errorf("iadd = %+v", iadd)
	}

	pow, ok := c.Lookup("math", "pow")
	if !ok {
		t.Fatal("math/pow missing")
	}
	if pow.Inputs[0] != "base" {
		t.Errorf("pow = %+v", pow)
	}
}

func TestLoadYAMLRejectsEntryMissingNameOrNamespace(t *testing.T) {
	doc := `
functions:
  - name: iadd
    inputs: [a, b]
    outputs: [c]
`
	if _, err := LoadYAML(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for an entry missing namespace")
	}
}

func TestLoadYAMLMalformedDocument(t *testing.T) {
	if _, err := LoadYAML(strings.NewReader("not: [valid yaml for our schema: :")); err == nil {
		t.Fatal("expected a decode error")
	}
}
