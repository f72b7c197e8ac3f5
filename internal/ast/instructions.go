package ast

import "github.com/rill-lang/rillc/internal/token"

// ConstDecl is `"const" ID "=" const ";"`.
type ConstDecl struct {
	Name     string
	Value    Const
	StartPos token.Position
}

func (i *ConstDecl) Pos() token.Position { return i.StartPos }
func (*ConstDecl) instructionNode()      {}

// CallAssign is `ID "=" callexpr ";"` — the ordinary call/bind form.
// callexpr covers both a named/positional call and a thunk (`!expr(...)`),
// both of which are Outport values, so Call is typed as Outport rather
// than narrowed to *CallExpr.
type CallAssign struct {
	Target   string
	Call     Outport
	StartPos token.Position
}

func (i *CallAssign) Pos() token.Position { return i.StartPos }
func (*CallAssign) instructionNode()      {}

// IfAssign is `ID "=" "if" outport "(" named ")" "{" inst* "}" "else" "{" inst* "}"`.
type IfAssign struct {
	Target    string
	Cond      Outport
	Inputs    []NamedArg
	Then      []Instruction
	Else      []Instruction
	StartPos  token.Position
}

func (i *IfAssign) Pos() token.Position { return i.StartPos }
func (*IfAssign) instructionNode()      {}

// LoopAssign is `ID "=" "loop" "(" named ")" "{" inst* "}" "while" "{" inst* "}"`.
type LoopAssign struct {
	Target    string
	Inputs    []NamedArg
	Body      []Instruction
	Cond      []Instruction
	StartPos  token.Position
}

func (i *LoopAssign) Pos() token.Position { return i.StartPos }
func (*LoopAssign) instructionNode()      {}

// OutputStmt is `"output" "(" args ")" ";"`.
type OutputStmt struct {
	Args     *ArgList
	StartPos token.Position
}

func (i *OutputStmt) Pos() token.Position { return i.StartPos }
func (*OutputStmt) instructionNode()      {}

// PortRef is the `ID` or `ID "." ID` form used on either side of an
// explicit edge declaration.
type PortRef struct {
	Var      string // "" when the reference is bare (boundary input/output)
	Port     string
	StartPos token.Position
}

// EdgeDecl is the explicit `src.port -> tgt.port ;` wiring form.
type EdgeDecl struct {
	Src, Tgt PortRef
	StartPos token.Position
}

func (i *EdgeDecl) Pos() token.Position { return i.StartPos }
func (*EdgeDecl) instructionNode()      {}
