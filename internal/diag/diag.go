// Package diag implements the eleven error kinds of spec.md §7, each
// carrying a source span where applicable, formatted with a file
// header and a caret-under-token source excerpt.
//
// Grounded on the teacher's internal/errors/errors.go (CompilerError +
// Format), renamed to diag to avoid shadowing the standard library's
// errors package in call sites that also need errors.As/errors.Is.
package diag

import (
	"fmt"
	"strings"

	"github.com/rill-lang/rillc/internal/token"
)

// Kind enumerates spec.md §7's error kinds.
type Kind int

const (
	LexError Kind = iota
	ParseError
	UnknownTypeAlias
	UnknownFunction
	NameNotInScope
	PortNotFound
	UnknownPort
	ArityMismatch
	PortDoubleWired
	DuplicateDeclaration
	TypeCheckFailed
)

var kindNames = [...]string{
	"LexError",
	"ParseError",
	"UnknownTypeAlias",
	"UnknownFunction",
	"NameNotInScope",
	"PortNotFound",
	"UnknownPort",
	"ArityMismatch",
	"PortDoubleWired",
	"DuplicateDeclaration",
	"TypeCheckFailed",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UnknownKind"
}

// Error is a single compilation failure: its kind, where it occurred,
// and a human-readable message. Compilation is fail-fast (spec.md §7):
// the first Error aborts the enclosing function's compilation.
type Error struct {
	Kind    Kind
	Pos     token.Position
	Message string
	Source  string // the full source text, for Format's source excerpt
	File    string
}

func New(kind Kind, pos token.Position, message string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: message}
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic with a line/column header, the offending
// source line, and a caret pointing at the column — the same shape as
// the teacher's CompilerError.Format, with an added error-kind tag.
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s: %s:%d:%d: %s\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column, e.Message)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d: %s\n", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
	}

	line := e.sourceLine(e.Pos.Line)
	if line == "" {
		return sb.String()
	}

	lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
	sb.WriteString(lineNumStr)
	sb.WriteString(line)
	sb.WriteByte('\n')

	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
	if color {
		sb.WriteString("\033[1;31m^\033[0m")
	} else {
		sb.WriteByte('^')
	}
	sb.WriteByte('\n')

	return sb.String()
}

func (e *Error) sourceLine(line int) string {
	if e.Source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// TypeError is one entry of the bundle the external type checker
// returns on failure (spec.md §4.6, §7's TypeCheckFailed).
type TypeError struct {
	Pos     token.Position
	Message string
}

// NewTypeCheckFailed wraps a type checker's error bundle as a single
// *Error, matching spec.md's "TypeCheckFailed — bundle returned by the
// external type checker" kind.
func NewTypeCheckFailed(errs []TypeError) *Error {
	var sb strings.Builder
	for i, e := range errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	pos := token.Position{}
	if len(errs) > 0 {
		pos = errs[0].Pos
	}
	return &Error{Kind: TypeCheckFailed, Pos: pos, Message: sb.String()}
}
