// Package parser implements CraftLang's recursive-descent, indentation-
// sensitive parser. Every production follows the same convention as the
// reference implementation it is grounded on: it starts parsing at the
// current walker position and advances only as far as its feature
// requires; if it must look ahead to disambiguate, it restores the
// walker position on every non-committing path before returning.
package parser

import (
	"fmt"

	"github.com/xmamo/craftlangc/internal/charclass"
	"github.com/xmamo/craftlangc/internal/errors"
	"github.com/xmamo/craftlangc/internal/walker"
)

// Parser holds the walker being consumed and the file name used for error
// messages; it carries no other state; productions are plain methods on
// it and, aside from the walker cursor, are stateless.
type Parser struct {
	w    *walker.Walker
	file string
}

// New creates a Parser over w. file is used only to label error messages
// and may be empty.
func New(w *walker.Walker, file string) *Parser {
	return &Parser{w: w, file: file}
}

func (p *Parser) errAt(pos walker.Position, format string, args ...any) *errors.CraftError {
	return errors.New(pos, fmt.Sprintf(format, args...), p.w.Source(), p.file)
}

func (p *Parser) err(format string, args ...any) *errors.CraftError {
	return p.errAt(p.w.Position(), format, args...)
}

func isWhitespacePred(r rune) walker.MatchResult {
	if charclass.IsWhitespace(r) {
		return walker.MatchContinue
	}
	return walker.MatchStop
}

func isNewlinePred(r rune) walker.MatchResult {
	if charclass.IsNewline(r) {
		return walker.MatchContinue
	}
	return walker.MatchStop
}

// skipWhitespace consumes zero or more whitespace runes and returns what
// was consumed; it never fails.
func (p *Parser) skipWhitespace() string {
	s, _ := p.w.MatchWhile(isWhitespacePred)
	return s
}

// matchNewlineRun consumes zero or more newline runes and returns what was
// consumed; it never fails.
func (p *Parser) matchNewlineRun() string {
	s, _ := p.w.MatchWhile(isNewlinePred)
	return s
}

// peekRune returns the rune immediately ahead of the cursor, without
// consuming it, and whether one exists (false at EOF).
func peekRune(w *walker.Walker) (rune, bool) {
	s := w.Ahead(1)
	if s == "" {
		return 0, false
	}
	return []rune(s)[0], true
}
