package parser

import "github.com/xmamo/craftlangc/internal/charclass"

// parseIndent skips any blank (all-whitespace) lines, then measures the
// indentation of the next non-blank line: a tab rounds the running count up
// to the next multiple of 4 columns, anything else counts as 1.
func (p *Parser) parseIndent() int {
	indent := 0

	for {
		p.matchNewlineRun()

		indent = 0
		for {
			r, ok := peekRune(p.w)
			if !ok || !charclass.IsWhitespace(r) {
				break
			}
			p.w.Advance(1)
			if r == '\t' {
				indent = (indent + 4) / 4 * 4
			} else {
				indent++
			}
		}

		r, ok := peekRune(p.w)
		if !ok || !charclass.IsNewline(r) {
			break
		}
	}

	return indent
}
