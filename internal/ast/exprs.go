package ast

import "github.com/rill-lang/rillc/internal/token"

// Ident is a bare identifier used as an outport source; spec.md §4.5
// resolves it in priority order (input port, bound call result,
// declared function, declared constant).
type Ident struct {
	Name     string
	StartPos token.Position
}

func (o *Ident) Pos() token.Position { return o.StartPos }
func (*Ident) outportNode()          {}

// VarPort is an explicit `var.port` reference.
type VarPort struct {
	Var      string
	Port     string
	StartPos token.Position
}

func (o *VarPort) Pos() token.Position { return o.StartPos }
func (*VarPort) outportNode()          {}

// InlineConst is a literal constant used directly as an outport source.
type InlineConst struct {
	Value    Const
	StartPos token.Position
}

func (o *InlineConst) Pos() token.Position { return o.StartPos }
func (*InlineConst) outportNode()          {}

// NamedArg is one `port = outport` entry of a named argument list.
// Order is preserved (it is insignificant for lowering, which looks
// each port up by name, but preserving it keeps re-lowering
// deterministic per spec.md §8's Idempotence property).
type NamedArg struct {
	Port  string
	Value Outport
}

// ArgList is a call site's argument list: spec.md §6 allows named,
// positional, or empty (ε) — never mixed, per spec.md §9's Open
// Question resolution (positional-zip is canonical; mixing is rejected
// by the parser, not deferred to lowering).
type ArgList struct {
	Named      []NamedArg // nil when the call used positional args
	Positional []Outport  // nil when the call used named args
	StartPos   token.Position
}

func (a *ArgList) Pos() token.Position { return a.StartPos }

// IsEmpty reports the ε (no-argument) production.
func (a *ArgList) IsEmpty() bool {
	return a == nil || (len(a.Named) == 0 && len(a.Positional) == 0)
}

// CallExpr is `(ID "::")? ID "(" args ")"` — a call to a catalog
// operation or a locally defined function.
type CallExpr struct {
	Namespace string // "" for an unqualified call: the "builtin" namespace is tried first, then local functions
	Name      string
	Args      *ArgList
	StartPos  token.Position
}

func (o *CallExpr) Pos() token.Position { return o.StartPos }
func (*CallExpr) outportNode()          {}

// ThunkCall is `"!" outport "(" named ")"` — applies a graph-valued
// outport via builtin/eval.
type ThunkCall struct {
	Target   Outport
	Args     *ArgList
	StartPos token.Position
}

func (o *ThunkCall) Pos() token.Position { return o.StartPos }
func (*ThunkCall) outportNode()          {}
