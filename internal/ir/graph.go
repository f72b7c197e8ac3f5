package ir

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Graph is one function's (or nested construct's) lowered body: a set
// of nodes, a set of edges, and the input/output port names exposed by
// its two implicit boundary nodes (spec.md §3's Graph entity).
type Graph struct {
	Name        string   `json:"name,omitempty"`
	InputPorts  []string `json:"input_ports"`
	OutputPorts []string `json:"output_ports"`
	Nodes       []*Node  `json:"nodes"`
	Edges       []*Edge  `json:"edges"`

	// PortTypes carries each boundary port's resolved opaque type
	// scheme (spec.md §4.2), keyed by port name. Populated once a
	// FuncDef's declared signature has been resolved by
	// internal/lower's resolveType/resolvePorts; a nested if/loop
	// sub-graph leaves this nil, since its output ports are discovered
	// from first use rather than declared, and so have no static type
	// of their own to attach — the downstream type checker infers them.
	PortTypes map[string]json.RawMessage `json:"port_types,omitempty"`

	nextNodeSeq int
}

// NewGraph creates an empty Graph exposing the given boundary ports.
func NewGraph(name string, inputPorts, outputPorts []string) *Graph {
	return &Graph{Name: name, InputPorts: inputPorts, OutputPorts: outputPorts}
}

// NextNodeID returns a fresh node identifier, unique within g, in the
// deterministic sequence n1, n2, n3, ... that spec.md §8's idempotence
// property relies on: re-lowering identical source must yield
// identical IDs assigned in identical order.
func (g *Graph) NextNodeID() string {
	g.nextNodeSeq++
	return fmt.Sprintf("n%d", g.nextNodeSeq)
}

// AddNode appends n to the graph and returns it, for call-site chaining.
func (g *Graph) AddNode(n *Node) *Node {
	g.Nodes = append(g.Nodes, n)
	return n
}

// AddEdge appends e to the graph.
func (g *Graph) AddEdge(e *Edge) {
	g.Edges = append(g.Edges, e)
}

// Node looks up a node already added to g by ID.
func (g *Graph) Node(id string) (*Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// HasEdgeTo reports whether any edge already targets (nodeID, port) —
// the check internal/lower uses to raise PortDoubleWired before adding
// a second edge to the same input port.
func (g *Graph) HasEdgeTo(nodeID, port string) bool {
	for _, e := range g.Edges {
		if e.ToNode == nodeID && e.ToPort == port {
			return true
		}
	}
	return false
}

// DebugRepr renders a concise, human-readable text form for tests and
// debugging: one line per node (with its const payload indented below,
// if any), a blank line, then one line per edge. It is not a parseable
// or wire format and its exact layout may change.
//
// Grounded on the opentofu execgraph package's Graph.DebugRepr shape
// (index-numbered operation lines, each line a call form over its
// operands), adapted to spec.md's node/edge vocabulary.
func (g *Graph) DebugRepr() string {
	var sb strings.Builder
	for _, n := range g.Nodes {
		fmt.Fprintf(&sb, "%s = %s(%s) -> (%s)\n", n.ID, n.Op,
			strings.Join(n.InputPorts, ", "), strings.Join(n.OutputPorts, ", "))
		if n.Const != nil {
			fmt.Fprintf(&sb, "  const %s\n", n.Const.debugRepr())
		}
	}
	if len(g.Nodes) > 0 && len(g.Edges) > 0 {
		sb.WriteByte('\n')
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "%s.%s -> %s.%s\n", e.FromNode, e.FromPort, e.ToNode, e.ToPort)
	}
	return sb.String()
}
