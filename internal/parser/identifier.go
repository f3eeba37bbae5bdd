package parser

import (
	"github.com/xmamo/craftlangc/internal/charclass"
	"github.com/xmamo/craftlangc/internal/cst"
	"github.com/xmamo/craftlangc/internal/walker"
)

// parseIdentifier consumes an identifier-start rune followed by zero or
// more identifier-continue runes. A zero-length Token means no identifier
// was present; callers check Len() and raise their own contextual error.
func (p *Parser) parseIdentifier() cst.Token {
	start := p.w.Pos()

	p.w.MatchWhileOffset(func(offset int, r rune) walker.MatchResult {
		if offset == 0 {
			if charclass.IsIdentifierStart(r) {
				return walker.MatchContinue
			}
		} else if charclass.IsIdentifierContinue(r) {
			return walker.MatchContinue
		}
		return walker.MatchStop
	})

	return cst.NewToken(p.w, start, p.w.Pos())
}
