package codegen

import (
	"fmt"
	"io"

	"github.com/xmamo/craftlangc/internal/cst"
	"github.com/xmamo/craftlangc/internal/errors"
	"github.com/xmamo/craftlangc/internal/scope"
)

// compileExpr lowers expr onto the expression stack: it emits the commands
// that leave expr's value in stack.<d> craftlang (score/boolean) or tagged
// as stack.<d> (entity), where d is the stack depth at entry, and pushes
// expr's VarType onto ts to record that slot's type.
func compileExpr(ctx *funcCtx, expr cst.Expr, out io.Writer, sc *scope.Scope, ts *typeStack) error {
	switch e := expr.(type) {
	case *cst.ParensExpr:
		return compileExpr(ctx, e.Inner, out, sc, ts)

	case *cst.UnaryExpr:
		return compileUnaryExpr(ctx, e, out, sc, ts)

	case *cst.BinaryExpr:
		return compileBinaryExpr(ctx, e, out, sc, ts)

	case *cst.IdentifierExpr:
		name := e.Token.Literal()
		item, ok := sc.Get(name, true)
		if !ok {
			// "true" and "false" are not reserved words; they only mean
			// boolean literals when no variable shadows them.
			switch name {
			case "false":
				fmt.Fprintf(out, "scoreboard players set stack.%d craftlang 0\r\n", ts.depth())
			case "true":
				fmt.Fprintf(out, "scoreboard players set stack.%d craftlang 1\r\n", ts.depth())
			default:
				return errors.New(e.Pos(), fmt.Sprintf("Undeclared identifier '%s'", name), "", "")
			}
			ts.push(cst.Boolean)
			return nil
		}
		emitCopyToStack(out, item.Type, item.IID, ts.depth())
		ts.push(item.Type)
		return nil

	case *cst.LiteralExpr:
		d := ts.depth()
		if e.Type == cst.Entity {
			fmt.Fprintf(out, "tag @e remove stack.%d\r\n", d)
			if e.Token.Len() > 0 {
				fmt.Fprintf(out, "tag %s add stack.%d\r\n", e.Token.Literal(), d)
			}
		} else {
			fmt.Fprintf(out, "scoreboard players set stack.%d craftlang %s\r\n", d, e.Token.Literal())
		}
		ts.push(e.Type)
		return nil

	case *cst.FuncCall:
		callee, err := compileFunctionCall(ctx, e, out, sc, ts)
		if err != nil {
			return err
		}
		retType, ok := cst.VarTypeFromString(callee.ReturnType.Literal())
		if !ok || retType == cst.Void {
			return errors.New(e.Pos(), fmt.Sprintf("Cannot use the result of void function '%s' as an expression", callee.Identifier.Literal()), "", "")
		}
		d := ts.depth()
		emitCopyToStack(out, retType, retIID(ctx.nc, callee), d)
		ts.push(retType)
		return nil

	default:
		return errors.New(expr.Pos(), "Unsupported expression", "", "")
	}
}

// emitCopyToStack emits the command(s) that copy srcIID's current value
// into stack.<depth>.
func emitCopyToStack(out io.Writer, t cst.VarType, srcIID string, depth int) {
	if t == cst.Entity {
		fmt.Fprintf(out, "tag @e remove stack.%d\r\n", depth)
		fmt.Fprintf(out, "tag @e[tag=%s] add stack.%d\r\n", srcIID, depth)
	} else {
		fmt.Fprintf(out, "scoreboard players operation stack.%d craftlang = %s craftlang\r\n", depth, srcIID)
	}
}

// emitCopyFromStack emits the command(s) that copy stack.<depth>'s current
// value into dstIID.
func emitCopyFromStack(out io.Writer, t cst.VarType, dstIID string, depth int) {
	if t == cst.Entity {
		fmt.Fprintf(out, "tag @e remove %s\r\n", dstIID)
		fmt.Fprintf(out, "tag @e[tag=stack.%d] add %s\r\n", depth, dstIID)
	} else {
		fmt.Fprintf(out, "scoreboard players operation %s craftlang = stack.%d craftlang\r\n", dstIID, depth)
	}
}

// emitCopyIIDToIID emits the command(s) that copy srcIID's current value
// into dstIID directly, without going through a stack slot; used to pass
// by-reference call arguments and to write them back after the call.
func emitCopyIIDToIID(out io.Writer, t cst.VarType, dstIID, srcIID string) {
	if t == cst.Entity {
		fmt.Fprintf(out, "tag @e remove %s\r\n", dstIID)
		fmt.Fprintf(out, "tag @e[tag=%s] add %s\r\n", srcIID, dstIID)
	} else {
		fmt.Fprintf(out, "scoreboard players operation %s craftlang = %s craftlang\r\n", dstIID, srcIID)
	}
}

func compileUnaryExpr(ctx *funcCtx, e *cst.UnaryExpr, out io.Writer, sc *scope.Scope, ts *typeStack) error {
	d := ts.depth()
	if err := compileExpr(ctx, e.Inner, out, sc, ts); err != nil {
		return err
	}
	t := ts.pop()
	op := e.Operator.Literal()

	switch op {
	case "!":
		if t != cst.Boolean {
			return errors.New(e.Pos(), "'!' requires a boolean operand", "", "")
		}
		fmt.Fprintf(out, "scoreboard players add stack.%d craftlang 1\r\n", d)
		fmt.Fprintf(out, "execute if score stack.%d craftlang matches 2 run scoreboard players set stack.%d craftlang 0\r\n", d, d)
		ts.push(cst.Boolean)
		return nil

	case "+":
		if t != cst.Score {
			return errors.New(e.Pos(), "Unary '+' requires a score operand", "", "")
		}
		ts.push(cst.Score)
		return nil

	case "-":
		if t != cst.Score {
			return errors.New(e.Pos(), "Unary '-' requires a score operand", "", "")
		}
		fmt.Fprintf(out, "scoreboard players set stack.%d craftlang -1\r\n", d+1)
		fmt.Fprintf(out, "scoreboard players operation stack.%d craftlang *= stack.%d craftlang\r\n", d, d+1)
		ts.push(cst.Score)
		return nil

	default:
		return errors.New(e.Pos(), fmt.Sprintf("Unknown unary operator '%s'", op), "", "")
	}
}

func compileBinaryExpr(ctx *funcCtx, e *cst.BinaryExpr, out io.Writer, sc *scope.Scope, ts *typeStack) error {
	d := ts.depth()
	if err := compileExpr(ctx, e.Left, out, sc, ts); err != nil {
		return err
	}
	if err := compileExpr(ctx, e.Right, out, sc, ts); err != nil {
		return err
	}
	rightType := ts.pop()
	leftType := ts.pop()
	op := e.Operator.Literal()

	resultType, err := emitBinaryOp(out, op, leftType, rightType, d, e)
	if err != nil {
		return err
	}
	ts.push(resultType)
	return nil
}

var scoreArithOp = map[string]string{"+": "+=", "-": "-=", "*": "*=", "/": "/=", "%": "%="}

// emitRelational emits the LHS-to-temp compare-and-set pattern shared by
// score and boolean relational operators: the LHS is copied to a scratch
// slot at d+2, the result slot d is reset to 0, then conditionally set to 1
// by comparing the scratch against the already-evaluated RHS at d+1.
func emitRelational(out io.Writer, op string, d int) bool {
	var clause string
	switch op {
	case "==":
		clause = fmt.Sprintf("if score stack.%d craftlang = stack.%d craftlang", d+2, d+1)
	case "!=":
		clause = fmt.Sprintf("unless score stack.%d craftlang = stack.%d craftlang", d+2, d+1)
	case "<":
		clause = fmt.Sprintf("if score stack.%d craftlang < stack.%d craftlang", d+2, d+1)
	case ">":
		clause = fmt.Sprintf("if score stack.%d craftlang > stack.%d craftlang", d+2, d+1)
	case "<=":
		clause = fmt.Sprintf("if score stack.%d craftlang <= stack.%d craftlang", d+2, d+1)
	case ">=":
		clause = fmt.Sprintf("if score stack.%d craftlang >= stack.%d craftlang", d+2, d+1)
	default:
		return false
	}

	fmt.Fprintf(out, "scoreboard players operation stack.%d craftlang = stack.%d craftlang\r\n", d+2, d)
	fmt.Fprintf(out, "scoreboard players set stack.%d craftlang 0\r\n", d)
	fmt.Fprintf(out, "execute %s run scoreboard players set stack.%d craftlang 1\r\n", clause, d)
	return true
}

func emitBinaryOp(out io.Writer, op string, leftType, rightType cst.VarType, d int, e *cst.BinaryExpr) (cst.VarType, error) {
	switch {
	case leftType == cst.Score && rightType == cst.Score:
		if mcOp, ok := scoreArithOp[op]; ok {
			fmt.Fprintf(out, "scoreboard players operation stack.%d craftlang %s stack.%d craftlang\r\n", d, mcOp, d+1)
			return cst.Score, nil
		}
		if emitRelational(out, op, d) {
			return cst.Boolean, nil
		}

	case leftType == cst.Boolean && rightType == cst.Boolean:
		switch op {
		case "==":
			emitRelational(out, op, d)
			return cst.Boolean, nil
		case "&":
			fmt.Fprintf(out, "scoreboard players operation stack.%d craftlang += stack.%d craftlang\r\n", d, d+1)
			fmt.Fprintf(out, "execute if score stack.%d craftlang matches 1 run scoreboard players set stack.%d craftlang 0\r\n", d, d)
			return cst.Boolean, nil
		case "|":
			fmt.Fprintf(out, "scoreboard players operation stack.%d craftlang += stack.%d craftlang\r\n", d, d+1)
			fmt.Fprintf(out, "execute if score stack.%d craftlang matches 2 run scoreboard players set stack.%d craftlang 1\r\n", d, d)
			return cst.Boolean, nil
		case "^":
			fmt.Fprintf(out, "scoreboard players operation stack.%d craftlang += stack.%d craftlang\r\n", d, d+1)
			fmt.Fprintf(out, "execute if score stack.%d craftlang matches 2 run scoreboard players set stack.%d craftlang 0\r\n", d, d)
			return cst.Boolean, nil
		}

	case leftType == cst.Entity && rightType == cst.Entity:
		switch op {
		case "+", "|":
			fmt.Fprintf(out, "tag @e[tag=stack.%d] add stack.%d\r\n", d+1, d)
			return cst.Entity, nil
		case "-":
			fmt.Fprintf(out, "tag @e[tag=stack.%d] remove stack.%d\r\n", d+1, d)
			return cst.Entity, nil
		case "&":
			fmt.Fprintf(out, "tag @e[tag=stack.%d,tag=!stack.%d] remove stack.%d\r\n", d, d+1, d)
			return cst.Entity, nil
		case "^":
			// Symmetric difference via a scratch tag at d+2: scratch holds
			// the intersection, then LHS is unioned with RHS and the
			// intersection is subtracted back out.
			fmt.Fprintf(out, "tag @e remove stack.%d\r\n", d+2)
			fmt.Fprintf(out, "tag @e[tag=stack.%d,tag=stack.%d] add stack.%d\r\n", d, d+1, d+2)
			fmt.Fprintf(out, "tag @e[tag=stack.%d] add stack.%d\r\n", d+1, d)
			fmt.Fprintf(out, "tag @e[tag=stack.%d] remove stack.%d\r\n", d+2, d)
			return cst.Entity, nil
		case "==", "!=", "<", ">", "<=", ">=":
			emitEntitySetOp(out, op, d)
			return cst.Boolean, nil
		}
	}

	return cst.Void, errors.New(e.Pos(), fmt.Sprintf("Operator '%s' is not defined for %s and %s", op, leftType, rightType), "", "")
}

// emitEntitySetOp implements the entity subset-lattice comparisons by
// probing "does an entity tagged X lack tag Y" with execute if/unless
// entity, writing the boolean result into stack.<d>.
func emitEntitySetOp(out io.Writer, op string, d int) {
	lhsNotRhs := fmt.Sprintf("@e[tag=stack.%d,tag=!stack.%d]", d, d+1)
	rhsNotLhs := fmt.Sprintf("@e[tag=stack.%d,tag=!stack.%d]", d+1, d)

	switch op {
	case "<=":
		fmt.Fprintf(out, "scoreboard players set stack.%d craftlang 1\r\n", d)
		fmt.Fprintf(out, "execute if entity %s run scoreboard players set stack.%d craftlang 0\r\n", lhsNotRhs, d)
	case ">=":
		fmt.Fprintf(out, "scoreboard players set stack.%d craftlang 1\r\n", d)
		fmt.Fprintf(out, "execute if entity %s run scoreboard players set stack.%d craftlang 0\r\n", rhsNotLhs, d)
	case "==":
		fmt.Fprintf(out, "scoreboard players set stack.%d craftlang 1\r\n", d)
		fmt.Fprintf(out, "execute if entity %s run scoreboard players set stack.%d craftlang 0\r\n", lhsNotRhs, d)
		fmt.Fprintf(out, "execute if entity %s run scoreboard players set stack.%d craftlang 0\r\n", rhsNotLhs, d)
	case "!=":
		fmt.Fprintf(out, "scoreboard players set stack.%d craftlang 0\r\n", d)
		fmt.Fprintf(out, "execute if entity %s run scoreboard players set stack.%d craftlang 1\r\n", lhsNotRhs, d)
		fmt.Fprintf(out, "execute if entity %s run scoreboard players set stack.%d craftlang 1\r\n", rhsNotLhs, d)
	case "<":
		fmt.Fprintf(out, "scoreboard players set stack.%d craftlang 0\r\n", d)
		fmt.Fprintf(out, "execute unless entity %s run execute if entity %s run scoreboard players set stack.%d craftlang 1\r\n", lhsNotRhs, rhsNotLhs, d)
	case ">":
		fmt.Fprintf(out, "scoreboard players set stack.%d craftlang 0\r\n", d)
		fmt.Fprintf(out, "execute unless entity %s run execute if entity %s run scoreboard players set stack.%d craftlang 1\r\n", rhsNotLhs, lhsNotRhs, d)
	}
}

// compileFunctionCall validates and lowers a call to one of the current
// file's functions: it resolves arguments into the callee's parameter
// slots (copying by-ref identifiers' internal ids directly, by-value
// expressions through the stack), emits the `function` invocation, and
// copies by-ref parameter slots back into the caller's variables to
// simulate mutation through the reference. It returns the resolved callee
// so expression-position callers can read its return slot.
func compileFunctionCall(ctx *funcCtx, call *cst.FuncCall, out io.Writer, sc *scope.Scope, ts *typeStack) (*cst.FuncDef, error) {
	calleeName := call.Identifier.Literal()
	callee, ok := ctx.file.FuncByName(calleeName)
	if !ok {
		return nil, errors.New(call.Pos(), fmt.Sprintf("Undefined function '%s'", calleeName), "", "")
	}
	if len(call.Args) != len(callee.Params) {
		return nil, errors.New(call.Pos(), fmt.Sprintf(
			"Function '%s' expects %d argument(s), got %d", calleeName, len(callee.Params), len(call.Args)), "", "")
	}

	paramTypes := make([]cst.VarType, len(callee.Params))
	for i, param := range callee.Params {
		t, ok := cst.VarTypeFromString(param.Type.Literal())
		if !ok {
			return nil, errors.New(param.Identifier.Pos(), fmt.Sprintf("Unknown type '%s'", param.Type.Literal()), "", "")
		}
		paramTypes[i] = t
	}

	for i, arg := range call.Args {
		argIID := callArgIID(ctx.nc, calleeName, i)

		if arg.ByRef {
			identExpr, ok := arg.Expr.(*cst.IdentifierExpr)
			if !ok {
				return nil, errors.New(arg.Expr.Pos(), "A by-reference argument must be a plain identifier", "", "")
			}
			item, err := scopeGet(sc, identExpr.Token.Literal())
			if err != nil {
				return nil, err
			}
			if item.Type != paramTypes[i] {
				return nil, errors.New(arg.Expr.Pos(), "Argument type does not match parameter type", "", "")
			}
			emitCopyIIDToIID(out, paramTypes[i], argIID, item.IID)
			continue
		}

		if err := compileExpr(ctx, arg.Expr, out, sc, ts); err != nil {
			return nil, err
		}
		argType := ts.pop()
		if argType != paramTypes[i] {
			return nil, errors.New(arg.Expr.Pos(), "Argument type does not match parameter type", "", "")
		}
		emitCopyFromStack(out, argType, argIID, ts.depth())
	}

	fmt.Fprintf(out, "function %s\r\n", calleeFunctionRef(ctx.nc, calleeName))

	for i, arg := range call.Args {
		if !arg.ByRef {
			continue
		}
		identExpr := arg.Expr.(*cst.IdentifierExpr)
		item, err := scopeGet(sc, identExpr.Token.Literal())
		if err != nil {
			return nil, err
		}
		argIID := callArgIID(ctx.nc, calleeName, i)
		emitCopyIIDToIID(out, paramTypes[i], item.IID, argIID)
	}

	return callee, nil
}
