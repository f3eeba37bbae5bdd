package parser

import (
	"github.com/xmamo/craftlangc/internal/charclass"
	"github.com/xmamo/craftlangc/internal/cst"
)

// ParseFile parses an entire CraftLang source file: a namespace
// declaration followed by zero or more function definitions, each at
// top-level (zero) indentation.
func (p *Parser) ParseFile() (*cst.File, error) {
	if p.parseIndent() > 0 {
		return nil, p.err("Unexpected indent")
	}

	namespace, err := p.parseNamespaceDecl()
	if err != nil {
		return nil, err
	}

	var funcDefs []*cst.FuncDef

	for {
		indent := p.parseIndent()

		if _, ok := peekRune(p.w); !ok {
			break
		}
		if indent > 0 {
			return nil, p.err("Unexpected indent")
		}

		snapshot := p.w.Pos()
		funcDef, err := p.parseFuncDef()
		if err != nil {
			return nil, err
		}
		for _, existing := range funcDefs {
			if existing.Identifier.Literal() == funcDef.Identifier.Literal() {
				p.w.SetPos(snapshot)
				return nil, p.err("Function '%s' already defined", funcDef.Identifier.Literal())
			}
		}
		funcDefs = append(funcDefs, funcDef)
	}

	return &cst.File{Namespace: namespace, FuncDefs: funcDefs}, nil
}

func (p *Parser) parseNamespaceDecl() (cst.NamespaceDecl, error) {
	if _, ok := p.w.MatchLiteral("namespace"); !ok {
		return cst.NamespaceDecl{}, p.err("Expected namespace declaration")
	}
	if p.skipWhitespace() == "" {
		return cst.NamespaceDecl{}, p.err("Expected whitespace")
	}

	var components []cst.Token

	for {
		component := p.parseIdentifier()
		if component.Len() == 0 {
			return cst.NamespaceDecl{}, p.err("Illegal namespace identifier")
		}
		components = append(components, component)

		snapshot := p.w.Pos()
		p.skipWhitespace()
		if r, ok := peekRune(p.w); ok && r == '.' {
			p.w.Advance(1)
			p.skipWhitespace()
		} else {
			p.w.SetPos(snapshot)
			break
		}
	}

	return cst.NamespaceDecl{Components: components}, nil
}

func (p *Parser) parseFuncDef() (*cst.FuncDef, error) {
	identifier := p.parseIdentifier()
	if identifier.Len() == 0 {
		return nil, p.err("Illegal function identifier")
	}

	p.skipWhitespace()
	if r, ok := peekRune(p.w); !ok || r != '(' {
		return nil, p.err("Expected '('")
	}
	p.w.Advance(1)
	p.skipWhitespace()

	var params []cst.Param

	for {
		if r, ok := peekRune(p.w); ok && r == ')' {
			p.w.Advance(1)
			break
		}

		paramIdentifier := p.parseIdentifier()
		if paramIdentifier.Len() == 0 {
			return nil, p.err("Illegal function parameter identifier")
		}

		p.skipWhitespace()
		if r, ok := peekRune(p.w); !ok || r != ':' {
			return nil, p.err("Expected ':'")
		}
		p.w.Advance(1)
		p.skipWhitespace()

		paramType := p.parseIdentifier()
		if paramType.Len() == 0 {
			return nil, p.err("Illegal function parameter type")
		}

		params = append(params, cst.Param{Identifier: paramIdentifier, Type: paramType})

		if r, ok := peekRune(p.w); ok && r == ',' {
			p.w.Advance(1)
			p.skipWhitespace()
			if r2, ok2 := peekRune(p.w); ok2 && r2 == ')' {
				return nil, p.err("Unexpected ')'")
			}
		}
	}

	p.skipWhitespace()
	if r, ok := peekRune(p.w); !ok || r != ':' {
		return nil, p.err("Expected ':'")
	}
	p.w.Advance(1)
	p.skipWhitespace()

	returnType := p.parseIdentifier()
	if returnType.Len() == 0 {
		return nil, p.err("Illegal function return type")
	}

	p.skipWhitespace()
	if r, ok := peekRune(p.w); !ok || !charclass.IsNewline(r) {
		return nil, p.err("Expected newline")
	}

	statements, err := p.parseBlock(0)
	if err != nil {
		return nil, err
	}

	return &cst.FuncDef{
		Identifier: identifier,
		Params:     params,
		ReturnType: returnType,
		Statements: statements,
	}, nil
}
