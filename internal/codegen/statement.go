package codegen

import (
	"fmt"
	"io"

	"github.com/xmamo/craftlangc/internal/cst"
	"github.com/xmamo/craftlangc/internal/errors"
	"github.com/xmamo/craftlangc/internal/scope"
)

func scopeGet(sc *scope.Scope, name string) (*scope.Item, error) {
	item, ok := sc.Get(name, true)
	if !ok {
		return nil, errors.New(cst.Token{}.Pos(), fmt.Sprintf("Undeclared identifier '%s'", name), "", "")
	}
	return item, nil
}

// compileStatement lowers one statement to out, which is either a
// function's own file or an auxiliary branch/loop-body file. Every call
// starts with an empty expression stack and must leave it empty again.
func compileStatement(ctx *funcCtx, statement cst.Statement, out io.Writer, sc *scope.Scope) error {
	ts := &typeStack{}

	switch s := statement.(type) {
	case *cst.NopStatement:
		fmt.Fprintf(out, "# %s\r\n", s.String())
		return nil

	case *cst.CommandStatement:
		return compileCommandStatement(ctx, s, out, sc, ts)

	case *cst.SwapStatement:
		return compileSwapStatement(s, out, sc)

	case *cst.AssignStatement:
		return compileAssignStatement(ctx, s, out, sc, ts)

	case *cst.ReturnStatement:
		fmt.Fprintf(out, "# %s\r\n", s.String())
		if err := compileExpr(ctx, s.Expr, out, sc, ts); err != nil {
			return err
		}
		if t := ts.pop(); t != ctx.retType {
			return errors.New(s.Pos(), "Return expression type does not match the declared return type", "", "")
		}
		fmt.Fprintf(out, "scoreboard players operation %s craftlang = stack.%d craftlang\r\n", ctx.ret, ts.depth())
		return nil

	case *cst.IfStatement:
		return compileIfStatement(ctx, s, out, sc)

	case *cst.WhileStatement:
		return compileWhileStatement(ctx, s, out, sc)

	case *cst.DoWhileStatement:
		return compileDoWhileStatement(ctx, s, out, sc)

	case *cst.FuncCall:
		fmt.Fprintf(out, "# %s\r\n", s.String())
		_, err := compileFunctionCall(ctx, s, out, sc, ts)
		return err

	default:
		return errors.New(statement.Pos(), "Unsupported statement", "", "")
	}
}

func compileCommandStatement(ctx *funcCtx, s *cst.CommandStatement, out io.Writer, sc *scope.Scope, ts *typeStack) error {
	fmt.Fprintf(out, "# %s\r\n", s.String())

	// By-reference arguments resolve to their variable's own internal id,
	// so only by-value arguments occupy stack slots.
	for i := len(s.Components) - 1; i >= 0; i-- {
		if c := s.Components[i]; c.Arg != nil && !c.Arg.ByRef {
			if err := compileExpr(ctx, c.Arg.Expr, out, sc, ts); err != nil {
				return err
			}
		}
	}

	for _, c := range s.Components {
		switch {
		case c.Verbatim != nil:
			io.WriteString(out, c.Verbatim.Literal())
		case c.Arg.ByRef:
			item, err := scopeGet(sc, c.Arg.Expr.String())
			if err != nil {
				return err
			}
			io.WriteString(out, item.IID)
		default:
			ts.pop()
			fmt.Fprintf(out, "stack.%d", ts.depth())
		}
	}

	io.WriteString(out, "\r\n")
	return nil
}

func compileSwapStatement(s *cst.SwapStatement, out io.Writer, sc *scope.Scope) error {
	fmt.Fprintf(out, "# %s\r\n", s.String())

	left, err := scopeGet(sc, s.Left.Literal())
	if err != nil {
		return err
	}
	right, err := scopeGet(sc, s.Right.Literal())
	if err != nil {
		return err
	}

	switch {
	case (left.Type == cst.Boolean && right.Type == cst.Boolean) || (left.Type == cst.Score && right.Type == cst.Score):
		fmt.Fprintf(out, "scoreboard players operation %s craftlang >< %s craftlang\r\n", left.IID, right.IID)
	case left.Type == cst.Entity && right.Type == cst.Entity:
		fmt.Fprintf(out,
			"tag @e remove stack.0\r\n"+
				"tag @e[tag=%s] add stack.0\r\n"+
				"tag @e remove %s\r\n"+
				"tag @e[tag=%s] add %s\r\n"+
				"tag @e remove %s\r\n"+
				"tag @e[tag=stack.0] add %s\r\n",
			left.IID, left.IID, right.IID, left.IID, right.IID, right.IID)
	default:
		return errors.New(s.Pos(), "Mismatched types in swap statement", "", "")
	}
	return nil
}

func compileAssignStatement(ctx *funcCtx, s *cst.AssignStatement, out io.Writer, sc *scope.Scope, ts *typeStack) error {
	fmt.Fprintf(out, "# %s\r\n", s.String())

	if err := compileExpr(ctx, s.Expr, out, sc, ts); err != nil {
		return err
	}
	local := s.Identifier.Literal()
	operator := s.Operator.Literal()
	t := ts.pop()
	depth := ts.depth()

	switch operator {
	case "=":
		switch t {
		case cst.Boolean, cst.Score:
			item := sc.SetTyped(local, t, ctx.nextIID, true)
			fmt.Fprintf(out, "scoreboard players operation %s craftlang = stack.%d craftlang\r\n", item.IID, depth)
		case cst.Entity:
			item := sc.SetTyped(local, cst.Entity, ctx.nextIID, true)
			fmt.Fprintf(out, "tag @e remove %s\r\ntag @e[tag=stack.%d] add %s\r\n", item.IID, depth, item.IID)
		default:
			return errors.New(s.Pos(), "Cannot assign a void expression", "", "")
		}
		return nil

	case "*=", "/=", "%=", "+=":
		item, err := scopeGet(sc, local)
		if err != nil {
			return err
		}
		if item.Type != cst.Score || t != cst.Score {
			return errors.New(s.Pos(), "Compound arithmetic assignment requires score operands", "", "")
		}
		fmt.Fprintf(out, "scoreboard players operation %s craftlang %s stack.%d craftlang\r\n", item.IID, operator, depth)
		return nil

	case "-=":
		item, err := scopeGet(sc, local)
		if err != nil {
			return err
		}
		switch {
		case item.Type == cst.Score && t == cst.Score:
			fmt.Fprintf(out, "scoreboard players operation %s craftlang -= stack.%d craftlang\r\n", item.IID, depth)
		case item.Type == cst.Entity && t == cst.Entity:
			fmt.Fprintf(out, "tag @e[tag=stack.%d] remove %s\r\n", depth, item.IID)
		default:
			return errors.New(s.Pos(), "Mismatched types in '-=' assignment", "", "")
		}
		return nil

	case "&=":
		item, err := scopeGet(sc, local)
		if err != nil {
			return err
		}
		switch {
		case item.Type == cst.Boolean && t == cst.Boolean:
			fmt.Fprintf(out,
				"scoreboard players operation %s craftlang += stack.%d craftlang\r\n"+
					"execute if score %s craftlang matches 1 run scoreboard players set %s craftlang 0\r\n",
				item.IID, depth, item.IID, item.IID)
		case item.Type == cst.Entity && t == cst.Entity:
			fmt.Fprintf(out, "tag @e[tag=%s,tag=!stack.%d] remove %s\r\n", item.IID, depth, item.IID)
		default:
			return errors.New(s.Pos(), "Mismatched types in '&=' assignment", "", "")
		}
		return nil

	case "^=":
		item, err := scopeGet(sc, local)
		if err != nil {
			return err
		}
		switch {
		case item.Type == cst.Boolean && t == cst.Boolean:
			fmt.Fprintf(out,
				"scoreboard players operation %s craftlang += stack.%d craftlang\r\n"+
					"execute if score %s craftlang matches 2 run scoreboard players set %s craftlang 0\r\n",
				item.IID, depth, item.IID, item.IID)
		case item.Type == cst.Entity && t == cst.Entity:
			fmt.Fprintf(out,
				"tag @e remove stack.%d\r\n"+
					"tag @e[tag=%s,tag=stack.%d] add stack.%d\r\n"+
					"tag @e[tag=stack.%d] add %s\r\n"+
					"tag @e[tag=stack.%d] remove %s\r\n",
				depth+1, item.IID, depth, depth+1, depth, item.IID, depth+1, item.IID)
		default:
			return errors.New(s.Pos(), "Mismatched types in '^=' assignment", "", "")
		}
		return nil

	case "|=":
		item, err := scopeGet(sc, local)
		if err != nil {
			return err
		}
		switch {
		case item.Type == cst.Boolean && t == cst.Boolean:
			fmt.Fprintf(out,
				"scoreboard players operation %s craftlang += stack.%d craftlang\r\n"+
					"execute if score %s craftlang matches 2 run scoreboard players set %s craftlang 1\r\n",
				item.IID, depth, item.IID, item.IID)
		case item.Type == cst.Entity && t == cst.Entity:
			fmt.Fprintf(out, "tag @e[tag=stack.%d] add %s\r\n", depth, item.IID)
		default:
			return errors.New(s.Pos(), "Mismatched types in '|=' assignment", "", "")
		}
		return nil

	default:
		return errors.New(s.Pos(), fmt.Sprintf("Unknown assignment operator '%s'", operator), "", "")
	}
}

func compileIfStatement(ctx *funcCtx, s *cst.IfStatement, out io.Writer, sc *scope.Scope) error {
	fmt.Fprintf(out, "# if %s\r\n", s.Condition.String())

	ts := &typeStack{}
	if err := compileExpr(ctx, s.Condition, out, sc, ts); err != nil {
		return err
	}
	if ts.pop() != cst.Boolean {
		return errors.New(s.Pos(), "'if' condition must be boolean", "", "")
	}

	if len(s.Then) > 0 {
		aux, err := ctx.aux.next()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "execute if score stack.%d craftlang matches 1 run function %s\r\n", ts.depth(), aux.id)
		for _, child := range s.Then {
			if err := compileStatement(ctx, child, aux.out, sc); err != nil {
				aux.out.Close()
				return err
			}
		}
		if err := aux.out.Close(); err != nil {
			return err
		}
	}

	if len(s.Else) > 0 {
		aux, err := ctx.aux.next()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "execute if score stack.%d craftlang matches 0 run function %s\r\n", ts.depth(), aux.id)
		for _, child := range s.Else {
			if err := compileStatement(ctx, child, aux.out, sc); err != nil {
				aux.out.Close()
				return err
			}
		}
		if err := aux.out.Close(); err != nil {
			return err
		}
	}

	return nil
}

func compileWhileStatement(ctx *funcCtx, s *cst.WhileStatement, out io.Writer, sc *scope.Scope) error {
	fmt.Fprintf(out, "# while %s\r\n", s.Condition.String())

	ts := &typeStack{}
	if err := compileExpr(ctx, s.Condition, out, sc, ts); err != nil {
		return err
	}
	if ts.pop() != cst.Boolean {
		return errors.New(s.Pos(), "'while' condition must be boolean", "", "")
	}

	if len(s.Body) == 0 {
		return nil
	}

	aux, err := ctx.aux.next()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "execute if score stack.%d craftlang matches 1 run function %s\r\n", ts.depth(), aux.id)

	closeErr := func() error {
		for _, child := range s.Body {
			if err := compileStatement(ctx, child, aux.out, sc); err != nil {
				return err
			}
		}

		bodyTS := &typeStack{}
		if err := compileExpr(ctx, s.Condition, aux.out, sc, bodyTS); err != nil {
			return err
		}
		if bodyTS.pop() != cst.Boolean {
			return errors.New(s.Pos(), "'while' condition must be boolean", "", "")
		}
		fmt.Fprintf(aux.out, "execute if score stack.%d craftlang matches 1 run function %s\r\n", bodyTS.depth(), aux.id)
		return nil
	}()

	if cerr := aux.out.Close(); closeErr == nil {
		closeErr = cerr
	}
	return closeErr
}

func compileDoWhileStatement(ctx *funcCtx, s *cst.DoWhileStatement, out io.Writer, sc *scope.Scope) error {
	io.WriteString(out, "# do\r\n")

	if len(s.Body) == 0 {
		return nil
	}

	aux, err := ctx.aux.next()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "function %s\r\n", aux.id)

	bodyErr := func() error {
		for _, child := range s.Body {
			if err := compileStatement(ctx, child, aux.out, sc); err != nil {
				return err
			}
		}

		ts := &typeStack{}
		if err := compileExpr(ctx, s.Condition, aux.out, sc, ts); err != nil {
			return err
		}
		if ts.pop() != cst.Boolean {
			return errors.New(s.Pos(), "'do'/'while' condition must be boolean", "", "")
		}
		fmt.Fprintf(aux.out, "execute if score stack.%d craftlang matches 1 run function %s\r\n", ts.depth(), aux.id)
		return nil
	}()

	if cerr := aux.out.Close(); bodyErr == nil {
		bodyErr = cerr
	}
	return bodyErr
}
