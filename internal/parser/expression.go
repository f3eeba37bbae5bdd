package parser

import (
	"strconv"

	"github.com/xmamo/craftlangc/internal/charclass"
	"github.com/xmamo/craftlangc/internal/cst"
	"github.com/xmamo/craftlangc/internal/walker"
)

// parseExpr parses a full expression at the lowest precedence level (`|`).
func (p *Parser) parseExpr() (cst.Expr, error) {
	return p.parseOrExpr()
}

func (p *Parser) parseBinaryLevel(
	next func() (cst.Expr, error),
	isOperator func() bool,
	consumeOperator func() cst.Token,
) (cst.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}

	for {
		snapshot := p.w.Pos()
		p.skipWhitespace()

		if !isOperator() {
			p.w.SetPos(snapshot)
			break
		}

		operator := consumeOperator()
		p.skipWhitespace()

		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &cst.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *Parser) ahead1Is(set string) bool {
	r, ok := peekRune(p.w)
	if !ok {
		return false
	}
	for _, c := range set {
		if r == c {
			return true
		}
	}
	return false
}

func (p *Parser) consumeOneRuneOperator() cst.Token {
	start := p.w.Pos()
	p.w.Advance(1)
	return cst.NewToken(p.w, start, p.w.Pos())
}

func (p *Parser) parseOrExpr() (cst.Expr, error) {
	return p.parseBinaryLevel(p.parseXorExpr, func() bool { return p.ahead1Is("|") }, p.consumeOneRuneOperator)
}

func (p *Parser) parseXorExpr() (cst.Expr, error) {
	return p.parseBinaryLevel(p.parseAndExpr, func() bool { return p.ahead1Is("^") }, p.consumeOneRuneOperator)
}

func (p *Parser) parseAndExpr() (cst.Expr, error) {
	return p.parseBinaryLevel(p.parseEqualityExpr, func() bool { return p.ahead1Is("&") }, p.consumeOneRuneOperator)
}

func (p *Parser) parseEqualityExpr() (cst.Expr, error) {
	return p.parseBinaryLevel(
		p.parseRelationalExpr,
		func() bool { a := p.w.Ahead(2); return a == "==" || a == "!=" },
		func() cst.Token {
			start := p.w.Pos()
			p.w.Advance(2)
			return cst.NewToken(p.w, start, p.w.Pos())
		},
	)
}

func (p *Parser) parseRelationalExpr() (cst.Expr, error) {
	return p.parseBinaryLevel(
		p.parseAdditiveExpr,
		func() bool { return p.ahead1Is("<>") },
		func() cst.Token {
			start := p.w.Pos()
			p.w.Advance(1)
			if r, ok := peekRune(p.w); ok && r == '=' {
				p.w.Advance(1)
			}
			return cst.NewToken(p.w, start, p.w.Pos())
		},
	)
}

func (p *Parser) parseAdditiveExpr() (cst.Expr, error) {
	return p.parseBinaryLevel(p.parseMultiplicativeExpr, func() bool { return p.ahead1Is("+-") }, p.consumeOneRuneOperator)
}

func (p *Parser) parseMultiplicativeExpr() (cst.Expr, error) {
	return p.parseBinaryLevel(p.parsePrimaryExpr, func() bool { return p.ahead1Is("*/%") }, p.consumeOneRuneOperator)
}

func (p *Parser) parsePrimaryExpr() (cst.Expr, error) {
	ahead2 := []rune(p.w.Ahead(2))
	var ahead, ahead1 rune
	if len(ahead2) > 0 {
		ahead = ahead2[0]
	}
	if len(ahead2) > 1 {
		ahead1 = ahead2[1]
	}

	if ahead == '!' || ((ahead == '+' || ahead == '-') && !charclass.IsDigit(ahead1)) {
		start := p.w.Pos()
		p.w.Advance(1)
		operator := cst.NewToken(p.w, start, p.w.Pos())
		p.skipWhitespace()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &cst.UnaryExpr{Operator: operator, Inner: inner}, nil
	}

	if ahead == '(' {
		p.w.Advance(1)
		lparenEnd := p.w.Pos()
		lparen := cst.NewToken(p.w, lparenEnd-1, lparenEnd)
		p.skipWhitespace()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipWhitespace()
		if r, ok := peekRune(p.w); !ok || r != ')' {
			return nil, p.err("Unbalanced parenthesis")
		}
		p.w.Advance(1)
		return &cst.ParensExpr{LParen: lparen, Inner: inner}, nil
	}

	if charclass.IsDigit(ahead) || ((ahead == '+' || ahead == '-') && charclass.IsDigit(ahead1)) {
		tok, err := p.parseInteger()
		if err != nil {
			return nil, err
		}
		return &cst.LiteralExpr{Token: tok, Type: cst.Score}, nil
	}

	if ahead == '<' {
		p.w.Advance(1)
		start := p.w.Pos()
		for {
			r, ok := peekRune(p.w)
			if ok && r == '>' {
				tok := cst.NewToken(p.w, start, p.w.Pos())
				p.w.Advance(1)
				return &cst.LiteralExpr{Token: tok, Type: cst.Entity}, nil
			}
			if !ok {
				return nil, p.err("Unexpected EOF")
			}
			if charclass.IsNewline(r) {
				return nil, p.err("Illegal newline")
			}
			p.w.Advance(1)
		}
	}

	identifier := p.parseIdentifier()
	if identifier.Len() == 0 {
		return nil, p.err("Invalid expression")
	}

	snapshot := p.w.Pos()
	p.skipWhitespace()

	if r, ok := peekRune(p.w); ok && r == '(' {
		return p.parseArgsInto(identifier)
	}
	p.w.SetPos(snapshot)
	return &cst.IdentifierExpr{Token: identifier}, nil
}

// parseArgsInto finishes parsing a function call whose identifier has
// already been consumed.
func (p *Parser) parseArgsInto(identifier cst.Token) (*cst.FuncCall, error) {
	p.skipWhitespace()
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &cst.FuncCall{Identifier: identifier, Args: args}, nil
}

// parseFuncCall parses a full function call: identifier then arguments.
func (p *Parser) parseFuncCall() (*cst.FuncCall, error) {
	identifier := p.parseIdentifier()
	if identifier.Len() == 0 {
		return nil, p.err("Invalid function name")
	}
	p.skipWhitespace()
	return p.parseArgsInto(identifier)
}

// parseArgs parses a parenthesized, comma-separated argument list,
// starting at the opening '('.
func (p *Parser) parseArgs() ([]cst.Arg, error) {
	if r, ok := peekRune(p.w); !ok || r != '(' {
		return nil, p.err("Expected '('")
	}
	p.w.Advance(1)

	var args []cst.Arg

	for {
		p.skipWhitespace()

		if r, ok := peekRune(p.w); ok && r == ')' {
			p.w.Advance(1)
			break
		}
		if r, ok := peekRune(p.w); ok && r == ',' && len(args) > 0 {
			p.w.Advance(1)
			p.skipWhitespace()
		}

		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return args, nil
}

// parseArg parses one call argument: `ref identifier`, or a plain
// expression. "ref" only introduces a by-reference argument when followed
// by whitespace; if it isn't, the leading "ref" stays consumed and
// whatever follows parses as a plain expression rather than backtracking,
// so an identifier that merely starts with "ref" (e.g. "refund") loses its
// prefix and parses as if the source had read "und" instead.
func (p *Parser) parseArg() (cst.Arg, error) {
	if _, ok := p.w.MatchLiteral("ref"); ok {
		if ws := p.skipWhitespace(); ws != "" {
			id := p.parseIdentifier()
			if id.Len() == 0 {
				return cst.Arg{}, p.err("Illegal identifier")
			}
			return cst.Arg{Expr: &cst.IdentifierExpr{Token: id}, ByRef: true}, nil
		}
	}

	expr, err := p.parseExpr()
	if err != nil {
		return cst.Arg{}, err
	}
	return cst.Arg{Expr: expr, ByRef: false}, nil
}

// parseInteger consumes an optional sign followed by one or more digits,
// and validates the result fits a signed 32-bit range (Minecraft
// scoreboard scores are 32-bit).
func (p *Parser) parseInteger() (cst.Token, error) {
	start := p.w.Pos()

	p.w.MatchWhileOffset(func(offset int, r rune) walker.MatchResult {
		if offset == 0 {
			if charclass.IsDigit(r) || r == '+' || r == '-' {
				return walker.MatchContinue
			}
		} else if charclass.IsDigit(r) {
			return walker.MatchContinue
		}
		return walker.MatchStop
	})

	tok := cst.NewToken(p.w, start, p.w.Pos())

	n, convErr := strconv.ParseInt(tok.Literal(), 10, 64)
	if convErr != nil {
		p.w.SetPos(start)
		return cst.Token{}, p.err("Invalid integer value")
	}
	if n < -(1<<31) || n >= (1<<31) {
		p.w.SetPos(start)
		return cst.Token{}, p.err("Integer out of range")
	}

	return tok, nil
}
