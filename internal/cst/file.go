package cst

import (
	"strings"

	"github.com/xmamo/craftlangc/internal/walker"
)

// Node is the base interface implemented by every CST node: it can report
// its source position for error messages.
type Node interface {
	Pos() walker.Position
}

// File is the root CST node: a namespace declaration plus an ordered list
// of function definitions with unique identifiers.
type File struct {
	Namespace NamespaceDecl
	FuncDefs  []*FuncDef
}

func (f *File) Pos() walker.Position { return f.Namespace.Pos() }

func (f *File) String() string {
	var sb strings.Builder
	sb.WriteString(f.Namespace.String())
	for _, fd := range f.FuncDefs {
		sb.WriteString("\r\n\r\n")
		sb.WriteString(fd.String())
	}
	return sb.String()
}

// FuncByName returns the function definition named name, if any.
func (f *File) FuncByName(name string) (*FuncDef, bool) {
	for _, fd := range f.FuncDefs {
		if fd.Identifier.Literal() == name {
			return fd, true
		}
	}
	return nil, false
}

// NamespaceDecl is a non-empty, dot-separated sequence of identifier
// tokens: `namespace a.b.c`.
type NamespaceDecl struct {
	Components []Token
}

func (n NamespaceDecl) Pos() walker.Position { return n.Components[0].Pos() }

func (n NamespaceDecl) String() string {
	parts := make([]string, len(n.Components))
	for i, c := range n.Components {
		parts[i] = c.Literal()
	}
	return "namespace " + strings.Join(parts, ".")
}

// Param is a single function parameter: `identifier: type`.
type Param struct {
	Identifier Token
	Type       Token
}

func (p Param) String() string { return p.Identifier.Literal() + ": " + p.Type.Literal() }

// FuncDef is a top-level function definition:
// `identifier(params...): return-type` followed by an indented block.
type FuncDef struct {
	Identifier Token
	Params     []Param
	ReturnType Token
	Statements []Statement
}

func (fd *FuncDef) Pos() walker.Position { return fd.Identifier.Pos() }

func (fd *FuncDef) String() string {
	parts := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		parts[i] = p.String()
	}

	var sb strings.Builder
	sb.WriteString(fd.Identifier.Literal())
	sb.WriteString("(")
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString("): ")
	sb.WriteString(fd.ReturnType.Literal())

	for _, s := range fd.Statements {
		sb.WriteString("\r\n")
		sb.WriteString(stmtString(s, 1))
	}

	return sb.String()
}
