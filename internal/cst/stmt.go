package cst

import (
	"strings"

	"github.com/xmamo/craftlangc/internal/walker"
)

// Statement is any CST node that performs an action without producing a
// value (FuncCall is the one exception that is both a Statement and an
// Expr).
type Statement interface {
	Node
	stmtNode()
	stmtString(indent int) string
}

// stmtString renders s at the given tab-indent level; used for blocks.
func stmtString(s Statement, indent int) string { return s.stmtString(indent) }

func tabs(n int) string { return strings.Repeat("\t", n) }

func blockString(statements []Statement, indent int) string {
	parts := make([]string, len(statements))
	for i, s := range statements {
		parts[i] = s.stmtString(indent)
	}
	return strings.Join(parts, "\r\n")
}

// NopStatement does nothing; it exists so `nop` compiles to a well-formed,
// debuggable no-op.
type NopStatement struct {
	Token Token
}

func (s *NopStatement) Pos() walker.Position      { return s.Token.Pos() }
func (s *NopStatement) stmtNode()                 {}
func (s *NopStatement) stmtString(indent int) string { return tabs(indent) + "nop" }
func (s *NopStatement) String() string            { return s.stmtString(0) }

// CommandComponent is either a verbatim Token slice of a command line or
// an interpolated Arg (`$(expr)` / `$(ref name)`).
type CommandComponent struct {
	Verbatim *Token
	Arg      *Arg
}

// CommandStatement captures one `/...` line verbatim, splitting out any
// `$(...)` interpolations as Args.
type CommandStatement struct {
	Slash      Token
	Components []CommandComponent
}

func (s *CommandStatement) Pos() walker.Position { return s.Slash.Pos() }

func (s *CommandStatement) stmtString(indent int) string {
	var sb strings.Builder
	sb.WriteString(tabs(indent))
	sb.WriteString("/")
	for _, c := range s.Components {
		if c.Verbatim != nil {
			sb.WriteString(c.Verbatim.Literal())
		} else {
			sb.WriteString("$(")
			sb.WriteString(c.Arg.String())
			sb.WriteString(")")
		}
	}
	return sb.String()
}

func (s *CommandStatement) String() string { return s.stmtString(0) }
func (*CommandStatement) stmtNode()        {}

// AssignStatement is `identifier op expr` for op in
// `= *= /= %= += -= &= ^= |=`.
type AssignStatement struct {
	Identifier Token
	Operator   Token
	Expr       Expr
}

func (s *AssignStatement) Pos() walker.Position { return s.Identifier.Pos() }
func (s *AssignStatement) stmtString(indent int) string {
	return tabs(indent) + s.Identifier.Literal() + " " + s.Operator.Literal() + " " + s.Expr.String()
}
func (s *AssignStatement) String() string { return s.stmtString(0) }
func (*AssignStatement) stmtNode()        {}

// SwapStatement is `left >< right`.
type SwapStatement struct {
	Left, Right Token
}

func (s *SwapStatement) Pos() walker.Position { return s.Left.Pos() }
func (s *SwapStatement) stmtString(indent int) string {
	return tabs(indent) + s.Left.Literal() + " >< " + s.Right.Literal()
}
func (s *SwapStatement) String() string { return s.stmtString(0) }
func (*SwapStatement) stmtNode()        {}

// ReturnStatement is `return expr`.
type ReturnStatement struct {
	Keyword Token
	Expr    Expr
}

func (s *ReturnStatement) Pos() walker.Position { return s.Keyword.Pos() }
func (s *ReturnStatement) stmtString(indent int) string {
	return tabs(indent) + "return " + s.Expr.String()
}
func (s *ReturnStatement) String() string { return s.stmtString(0) }
func (*ReturnStatement) stmtNode()        {}

// IfStatement is `if condition` followed by a then-block and an optional
// sibling `else` block at the same indent.
type IfStatement struct {
	Keyword   Token
	Condition Expr
	Then      []Statement
	Else      []Statement
}

func (s *IfStatement) Pos() walker.Position { return s.Keyword.Pos() }
func (s *IfStatement) stmtString(indent int) string {
	var sb strings.Builder
	sb.WriteString(tabs(indent))
	sb.WriteString("if ")
	sb.WriteString(s.Condition.String())
	if len(s.Then) > 0 {
		sb.WriteString("\r\n")
		sb.WriteString(blockString(s.Then, indent+1))
	}
	if len(s.Else) > 0 {
		sb.WriteString("\r\n")
		sb.WriteString(tabs(indent))
		sb.WriteString("else\r\n")
		sb.WriteString(blockString(s.Else, indent+1))
	}
	return sb.String()
}
func (s *IfStatement) String() string { return s.stmtString(0) }
func (*IfStatement) stmtNode()        {}

// WhileStatement is `while condition` followed by a body block.
type WhileStatement struct {
	Keyword   Token
	Condition Expr
	Body      []Statement
}

func (s *WhileStatement) Pos() walker.Position { return s.Keyword.Pos() }
func (s *WhileStatement) stmtString(indent int) string {
	var sb strings.Builder
	sb.WriteString(tabs(indent))
	sb.WriteString("while ")
	sb.WriteString(s.Condition.String())
	if len(s.Body) > 0 {
		sb.WriteString("\r\n")
		sb.WriteString(blockString(s.Body, indent+1))
	}
	return sb.String()
}
func (s *WhileStatement) String() string { return s.stmtString(0) }
func (*WhileStatement) stmtNode()        {}

// DoWhileStatement is `do` followed by a body block, then a sibling
// `while condition` at the same indent.
type DoWhileStatement struct {
	Keyword   Token
	Body      []Statement
	Condition Expr
}

func (s *DoWhileStatement) Pos() walker.Position { return s.Keyword.Pos() }
func (s *DoWhileStatement) stmtString(indent int) string {
	var sb strings.Builder
	sb.WriteString(tabs(indent))
	sb.WriteString("do")
	if len(s.Body) > 0 {
		sb.WriteString("\r\n")
		sb.WriteString(blockString(s.Body, indent+1))
	}
	sb.WriteString("\r\n")
	sb.WriteString(tabs(indent))
	sb.WriteString("while ")
	sb.WriteString(s.Condition.String())
	return sb.String()
}
func (s *DoWhileStatement) String() string { return s.stmtString(0) }
func (*DoWhileStatement) stmtNode()        {}
