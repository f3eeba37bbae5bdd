package parser

import (
	"github.com/xmamo/craftlangc/internal/charclass"
	"github.com/xmamo/craftlangc/internal/cst"
)

// compoundAssignOperators is the set of two-rune compound assignment
// operators recognized after an identifier.
var compoundAssignOperators = map[string]bool{
	"*=": true, "/=": true, "%=": true, "+=": true,
	"-=": true, "&=": true, "^=": true, "|=": true,
}

// parseStatement parses a single statement at currentIndent: the
// indentation level its caller has already established for this block.
func (p *Parser) parseStatement(currentIndent int) (cst.Statement, error) {
	if r, ok := peekRune(p.w); ok && r == '/' {
		return p.parseCommandStatement()
	}

	initialPos := p.w.Pos()
	identifier := p.parseIdentifier()
	if identifier.Len() == 0 {
		return nil, p.err("Invalid statement")
	}

	afterIdentifier := p.w.Pos()
	identifierLexeme := identifier.Literal()
	p.skipWhitespace()
	ahead2 := p.w.Ahead(2)
	var ahead string
	if len(ahead2) > 0 {
		ahead = string([]rune(ahead2)[0])
	}

	if ahead == "=" {
		opStart := p.w.Pos()
		p.w.Advance(1)
		operator := cst.NewToken(p.w, opStart, p.w.Pos())
		p.skipWhitespace()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &cst.AssignStatement{Identifier: identifier, Operator: operator, Expr: expr}, nil
	}

	if compoundAssignOperators[ahead2] {
		opStart := p.w.Pos()
		p.w.Advance(2)
		operator := cst.NewToken(p.w, opStart, p.w.Pos())
		p.skipWhitespace()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &cst.AssignStatement{Identifier: identifier, Operator: operator, Expr: expr}, nil
	}

	if ahead2 == "><" {
		p.w.Advance(2)
		p.skipWhitespace()
		second := p.parseIdentifier()
		if second.Len() == 0 {
			return nil, p.err("Illegal second identifier for swap statement")
		}
		return &cst.SwapStatement{Left: identifier, Right: second}, nil
	}

	if identifierLexeme == "nop" {
		r, ok := peekRune(p.w)
		if !ok || charclass.IsNewline(r) {
			return &cst.NopStatement{Token: identifier}, nil
		}
	}

	if ahead == "(" {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}

		isCallStatement := true

		if (identifierLexeme == "if" || identifierLexeme == "while") && len(args) == 1 && !args[0].ByRef {
			snapshot := p.w.Pos()
			p.skipWhitespace()

			if r, ok := peekRune(p.w); !ok {
				// EOF right after the call: nothing can be indented beneath
				// it, so it stays a call statement.
			} else if !charclass.IsNewline(r) {
				isCallStatement = false
			} else {
				p.w.Advance(1)
				if p.parseIndent() > currentIndent {
					isCallStatement = false
				}
			}

			p.w.SetPos(snapshot)
		}

		if isCallStatement {
			return &cst.FuncCall{Identifier: identifier, Args: args}, nil
		}
	}

	p.w.SetPos(afterIdentifier)

	switch identifierLexeme {
	case "return":
		ws := p.skipWhitespace()
		if r, ok := peekRune(p.w); ws == "" && (!ok || r != '(') {
			return nil, p.err("Expected return expression")
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &cst.ReturnStatement{Keyword: identifier, Expr: expr}, nil

	case "if":
		ws := p.skipWhitespace()
		if r, ok := peekRune(p.w); ws == "" && (!ok || r != '(') {
			return nil, p.err("Expected if condition")
		}
		condition, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if r, ok := peekRune(p.w); !ok || !charclass.IsNewline(r) {
			return nil, p.err("Expected newline after if condition")
		}
		p.w.Advance(1)

		ifTrue, err := p.parseBlock(currentIndent)
		if err != nil {
			return nil, err
		}

		var ifFalse []cst.Statement
		snapshot := p.w.Pos()
		p.skipWhitespace()
		matchedElse := false
		if r, ok := peekRune(p.w); ok && charclass.IsNewline(r) {
			p.w.Advance(1)
			if p.parseIndent() == currentIndent {
				if _, ok := p.w.MatchLiteral("else"); ok {
					p.skipWhitespace()
					if r2, ok2 := peekRune(p.w); ok2 && charclass.IsNewline(r2) {
						p.w.Advance(1)
						block, err := p.parseBlock(currentIndent)
						if err != nil {
							return nil, err
						}
						ifFalse = block
						matchedElse = true
					}
				}
			}
		}
		if !matchedElse {
			p.w.SetPos(snapshot)
		}

		return &cst.IfStatement{Keyword: identifier, Condition: condition, Then: ifTrue, Else: ifFalse}, nil

	case "while":
		ws := p.skipWhitespace()
		if r, ok := peekRune(p.w); ws == "" && (!ok || r != '(') {
			return nil, p.err("Expected while condition")
		}
		condition, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if r, ok := peekRune(p.w); !ok || !charclass.IsNewline(r) {
			return nil, p.err("Expected newline after while condition")
		}
		p.w.Advance(1)

		body, err := p.parseBlock(currentIndent)
		if err != nil {
			return nil, err
		}
		return &cst.WhileStatement{Keyword: identifier, Condition: condition, Body: body}, nil

	case "do":
		p.skipWhitespace()
		if r, ok := peekRune(p.w); !ok || !charclass.IsNewline(r) {
			return nil, p.err("Expected newline after 'do'")
		}
		p.w.Advance(1)

		body, err := p.parseBlock(currentIndent)
		if err != nil {
			return nil, err
		}

		snapshot := p.w.Pos()
		if p.parseIndent() == currentIndent {
			kw := p.parseIdentifier()
			if kw.Literal() == "while" {
				r, ok := peekRune(p.w)
				if !ok || (!charclass.IsWhitespace(r) && r != '(') {
					return nil, p.err("Expected condition for do-while statement")
				}
				p.skipWhitespace()
				condition, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				return &cst.DoWhileStatement{Keyword: identifier, Body: body, Condition: condition}, nil
			}
		}
		p.w.SetPos(snapshot)
		return nil, p.err("Expected condition for do-while statement")
	}

	p.w.SetPos(initialPos)
	return nil, p.err("Illegal statement")
}

// parseBlock parses an indented run of statements strictly deeper than
// currentIndent, all sharing the same (greater) indentation.
func (p *Parser) parseBlock(currentIndent int) ([]cst.Statement, error) {
	newIndent := p.parseIndent()
	if newIndent <= currentIndent {
		return nil, p.err("Expected indent")
	}

	first, err := p.parseStatement(newIndent)
	if err != nil {
		return nil, err
	}
	block := []cst.Statement{first}

	for {
		snapshot := p.w.Pos()
		p.skipWhitespace()

		if _, ok := peekRune(p.w); !ok {
			p.w.SetPos(snapshot)
			break
		}

		r, ok := peekRune(p.w)
		if !ok || !charclass.IsNewline(r) {
			return nil, p.err("Expected newline")
		}
		p.w.Advance(1)

		continueIndent := p.parseIndent()

		if continueIndent == newIndent {
			stmt, err := p.parseStatement(newIndent)
			if err != nil {
				return nil, err
			}
			block = append(block, stmt)
		} else if continueIndent <= currentIndent {
			p.w.SetPos(snapshot)
			break
		} else {
			return nil, p.err("Invalid indentation level")
		}
	}

	return block, nil
}

// parseCommandStatement parses a `/`-prefixed command line, splitting out
// `$(expr)` / `$(ref name)` interpolations from the verbatim text between
// them.
func (p *Parser) parseCommandStatement() (*cst.CommandStatement, error) {
	slashStart := p.w.Pos()
	p.w.Advance(1)
	slash := cst.NewToken(p.w, slashStart, p.w.Pos())

	var components []cst.CommandComponent
	verbatimStart := p.w.Pos()

	flushVerbatim := func() {
		if p.w.Pos() > verbatimStart {
			tok := cst.NewToken(p.w, verbatimStart, p.w.Pos())
			components = append(components, cst.CommandComponent{Verbatim: &tok})
		}
	}

	for {
		r, ok := peekRune(p.w)
		if !ok || charclass.IsNewline(r) {
			break
		}

		if r == '$' && p.w.Ahead(2) == "$(" {
			flushVerbatim()
			p.w.Advance(2)
			p.skipWhitespace()

			arg, err := p.parseArg()
			if err != nil {
				return nil, err
			}
			p.skipWhitespace()

			if r2, ok2 := peekRune(p.w); !ok2 || r2 != ')' {
				return nil, p.err("Expected ')'")
			}
			p.w.Advance(1)

			components = append(components, cst.CommandComponent{Arg: &arg})
			verbatimStart = p.w.Pos()
			continue
		}

		p.w.Advance(1)
	}

	flushVerbatim()
	return &cst.CommandStatement{Slash: slash, Components: components}, nil
}
