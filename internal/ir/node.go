package ir

import "encoding/json"

// Node is one graph vertex: an operation invocation, a constant, or a
// boxed sub-graph. Op names a catalog entry ("builtin/iadd",
// "builtin/eval", "builtin/switch", "builtin/loop") for an operation
// node, and is "const" for both a constant node and a boxed node
// carrying a sub-graph as a graph value.
//
// Grounded on the Node/Edge JSON-tagged shape in the trpc-agent-go DSL
// compiler reference file, adapted from its workflow-graph domain to
// spec.md's typed dataflow graph.
type Node struct {
	ID string `json:"id"`
	Op string `json:"op"`

	// Const is set only for constant nodes (Op == "const"); its value
	// is exposed on the node's single conventional "value" output port.
	// A boxed node (a locally defined function referenced as a value)
	// is a constant node whose ConstValue.Kind is "graph".
	Const *ConstValue `json:"const,omitempty"`

	InputPorts  []string `json:"input_ports,omitempty"`
	OutputPorts []string `json:"output_ports,omitempty"`

	// Scheme is spec.md §4.2's opaque type scheme, carried through
	// unchanged from the catalog.FunctionEntry this node was built from
	// (for an operation node) or derived from the resolved Rill type of
	// its own value (for a constant or boxed node). internal/lower
	// never inspects it; it exists so the type-check bridge's Request
	// sees a scheme for every node, not just a bare port-name shape.
	Scheme json.RawMessage `json:"scheme,omitempty"`
}

// ConstNodeOutputPort is the conventional single output port a
// constant node exposes its value on (spec.md §4.1 invariant 5).
const ConstNodeOutputPort = "value"

// NewOpNode builds an operation node invoking a catalog entry or a
// locally defined function, with its declared port names attached for
// PortNotFound/ArityMismatch validation during lowering, and scheme
// carried through from the catalog entry (or nil, for a call site with
// no fixed catalog scheme of its own).
func NewOpNode(id, op string, inputPorts, outputPorts []string, scheme json.RawMessage) *Node {
	return &Node{ID: id, Op: op, InputPorts: inputPorts, OutputPorts: outputPorts, Scheme: scheme}
}

// NewConstNode builds a constant node carrying v, exposed on the
// conventional "value" output port, with scheme describing v's
// resolved Rill type.
func NewConstNode(id string, v ConstValue, scheme json.RawMessage) *Node {
	return &Node{ID: id, Op: "const", Const: &v, OutputPorts: []string{ConstNodeOutputPort}, Scheme: scheme}
}

// NewBoxedNode builds a constant node carrying a locally defined
// function's body as a graph-valued constant (spec.md §4.5's "boxed
// node"), exposed on the same conventional "value" output port as any
// other constant, with scheme describing the boxed graph's own
// input/output port types where known (nil for an if/loop branch,
// which declares no signature of its own).
func NewBoxedNode(id string, g *Graph, scheme json.RawMessage) *Node {
	v := GraphValue(g)
	return &Node{ID: id, Op: "const", Const: &v, OutputPorts: []string{ConstNodeOutputPort}, Scheme: scheme}
}
