// Package scope implements the lexical environment internal/lower
// threads through a function body and its nested conditionals and
// loops (spec.md §4.4).
//
// Grounded on the teacher's internal/parser/context.go (a small value
// type bundling related state behind accessor methods, built with a
// constructor rather than a bare struct literal) and the enclosing,
// non-mutating scope idea implied by internal/semantic's symbol table
// helpers.
package scope

import "github.com/rill-lang/rillc/internal/ast"

// Binding records where a name bound by a CallAssign, IfAssign, or
// LoopAssign came from: the emitted node's identifier, and the output
// port names that node exposes, so a later `name.port` reference can be
// resolved and validated against spec.md's PortNotFound rule.
type Binding struct {
	NodeID string
	Ports  []string
}

// Context is the environment visible while lowering one function body
// or one nested construct's block. It is a value type: passing it by
// value and forking it for a nested construct can never let that
// construct's bindings leak back into its parent's.
type Context struct {
	Functions  map[string]*ast.FuncDef
	Aliases    map[string]ast.TypeExpr
	OutputVars map[string]Binding
	Constants  map[string]ast.Const
	Inputs     map[string]bool
	Outputs    map[string]bool
}

// New returns an empty Context, the starting point for a top-level
// FuncDef's body.
func New() Context {
	return Context{
		Functions:  map[string]*ast.FuncDef{},
		Aliases:    map[string]ast.TypeExpr{},
		OutputVars: map[string]Binding{},
		Constants:  map[string]ast.Const{},
		Inputs:     map[string]bool{},
		Outputs:    map[string]bool{},
	}
}

// Fork returns the Context a nested construct (an if branch, a loop's
// body, or a loop's condition) starts with: Functions and Aliases carry
// over by reference (they are never mutated after a program's
// top-level declarations are indexed, so sharing them is safe), while
// OutputVars, Constants, Inputs, and Outputs reset to empty — spec.md
// §4.4's "shallow copy of functions and aliases, fresh everything else"
// rule.
func (c Context) Fork() Context {
	return Context{
		Functions:  c.Functions,
		Aliases:    c.Aliases,
		OutputVars: map[string]Binding{},
		Constants:  map[string]ast.Const{},
		Inputs:     map[string]bool{},
		Outputs:    map[string]bool{},
	}
}

// DeclareInput marks name as one of the enclosing graph's input ports.
func (c Context) DeclareInput(name string) { c.Inputs[name] = true }

// DeclareOutput marks name as one of the enclosing graph's output ports.
func (c Context) DeclareOutput(name string) { c.Outputs[name] = true }

// IsInput reports whether name is a declared input port.
func (c Context) IsInput(name string) bool { return c.Inputs[name] }

// IsOutput reports whether name is a declared output port.
func (c Context) IsOutput(name string) bool { return c.Outputs[name] }

// BindOutput records that name now refers to b, typically right after
// lowering a CallAssign, IfAssign, or LoopAssign.
func (c Context) BindOutput(name string, b Binding) { c.OutputVars[name] = b }

// ResolveOutputVar looks up a previously bound call/thunk/conditional/loop result.
func (c Context) ResolveOutputVar(name string) (Binding, bool) {
	b, ok := c.OutputVars[name]
	return b, ok
}

// BindConstant records a local `const name = ...;` declaration.
func (c Context) BindConstant(name string, v ast.Const) { c.Constants[name] = v }

// ResolveConstant looks up a local constant declaration.
func (c Context) ResolveConstant(name string) (ast.Const, bool) {
	v, ok := c.Constants[name]
	return v, ok
}

// DeclareFunction indexes a top-level function definition by name.
func (c Context) DeclareFunction(name string, fn *ast.FuncDef) { c.Functions[name] = fn }

// LookupFunction resolves a locally defined function by name.
func (c Context) LookupFunction(name string) (*ast.FuncDef, bool) {
	fn, ok := c.Functions[name]
	return fn, ok
}

// DeclareAlias indexes a top-level type alias by name.
func (c Context) DeclareAlias(name string, t ast.TypeExpr) { c.Aliases[name] = t }

// LookupAlias resolves a type alias by name.
func (c Context) LookupAlias(name string) (ast.TypeExpr, bool) {
	t, ok := c.Aliases[name]
	return t, ok
}
