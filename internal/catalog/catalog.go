// Package catalog implements the read-only signature directory spec.md
// §4.2 treats as an external collaborator: lowering never constructs
// one itself, only consults one a caller supplies.
//
// Grounded on the registry shape used by the trpc-agent-go DSL
// compiler's node-kind lookup (other_examples), adapted from a
// workflow-node registry to Rill's namespace/name/FunctionEntry shape.
package catalog

import (
	"encoding/json"
	"fmt"
)

// FunctionEntry is one operation's interface contract.
type FunctionEntry struct {
	Namespace string
	Name      string
	Inputs    []string
	Outputs   []string

	// Variadic marks an entry whose actual port set is wider than
	// Inputs/Outputs describe: builtin/eval forwards arbitrary named
	// inputs to its thunk and exposes whatever that thunk's graph
	// produces, and builtin/loop does the same for its state inputs
	// and final state. Lowering treats Inputs/Outputs on a Variadic
	// entry as the fixed "control" ports only, never as the complete
	// arity to validate a call against.
	Variadic bool

	// Scheme is spec.md §4.2's opaque type scheme: the catalog carries
	// it without ever inspecting it, attaches it to every IR node built
	// from this entry, and forwards it to the type-check bridge's
	// Request via Entries(). A nil Scheme (a YAML-loaded entry that
	// omits the field) is a valid, if degenerate, scheme — the checker
	// decides what that means, not this package.
	Scheme json.RawMessage
}

// QualifiedName renders "namespace/name", the form spec.md §8 uses in
// its worked examples ("builtin/iadd").
func (e FunctionEntry) QualifiedName() string {
	return fmt.Sprintf("%s/%s", e.Namespace, e.Name)
}

// Catalog is the namespace -> name -> FunctionEntry directory.
type Catalog struct {
	entries map[string]map[string]FunctionEntry
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{entries: map[string]map[string]FunctionEntry{}}
}

// Add indexes e by its Namespace and Name, replacing any existing
// entry at that key.
func (c *Catalog) Add(e FunctionEntry) {
	ns, ok := c.entries[e.Namespace]
	if !ok {
		ns = map[string]FunctionEntry{}
		c.entries[e.Namespace] = ns
	}
	ns[e.Name] = e
}

// Lookup resolves (namespace, name) to its FunctionEntry.
func (c *Catalog) Lookup(namespace, name string) (FunctionEntry, bool) {
	ns, ok := c.entries[namespace]
	if !ok {
		return FunctionEntry{}, false
	}
	e, ok := ns[name]
	return e, ok
}

// Merge adds every entry of other into c, overwriting entries that
// collide on (namespace, name). Used to layer a YAML-loaded catalog on
// top of (or in place of) NewBuiltins.
func (c *Catalog) Merge(other *Catalog) {
	for _, ns := range other.entries {
		for _, e := range ns {
			c.Add(e)
		}
	}
}

// Entries returns every FunctionEntry in the catalog, in no particular
// order (namespace/name ordering carries no semantic meaning). Used to
// flatten a Catalog for forwarding to the type-check bridge.
func (c *Catalog) Entries() []FunctionEntry {
	var all []FunctionEntry
	for _, ns := range c.entries {
		for _, e := range ns {
			all = append(all, e)
		}
	}
	return all
}
