// Package walker provides a cursor abstraction over a CraftLang source
// string. The walker never throws: every operation returns an empty or
// zero result once it runs past the end of input, and look-ahead never
// mutates the cursor.
package walker

import (
	"unicode"

	"github.com/xmamo/craftlangc/internal/charclass"
)

// Position is a human-facing location in the source: a 1-indexed line and
// column pair. Column counts printable characters since the start of the
// line; a CR immediately followed by an LF counts as a single newline.
type Position struct {
	Line   int
	Column int
}

// Walker traverses the rune sequence of a CraftLang source file, tracking
// an immutable source and a mutable (position, line, column) triple.
// Position is a zero-based rune index.
type Walker struct {
	runes  []rune
	pos    int
	line   int
	column int
}

// New creates a Walker positioned at the start of source.
func New(source string) *Walker {
	return &Walker{runes: []rune(source), line: 1, column: 1}
}

// Source returns the full source text being traversed.
func (w *Walker) Source() string { return string(w.runes) }

// Pos returns the current 0-indexed rune position.
func (w *Walker) Pos() int { return w.pos }

// Line returns the 1-indexed line number at the current cursor position.
func (w *Walker) Line() int { return w.line }

// Column returns the 1-indexed column number at the current cursor
// position.
func (w *Walker) Column() int { return w.column }

// Position returns the current (line, column) as a Position value.
func (w *Walker) Position() Position { return Position{Line: w.line, Column: w.column} }

// PositionAt computes the Position a given rune index would have, without
// disturbing the walker's current cursor. Tokens use this to compute their
// own line/column lazily from a shared walker rather than caching a
// position at construction time.
func (w *Walker) PositionAt(pos int) Position {
	saved := w.pos
	savedLine, savedColumn := w.line, w.column
	w.SetPos(pos)
	result := w.Position()
	w.pos, w.line, w.column = saved, savedLine, savedColumn
	return result
}

// SetPos moves the cursor to an arbitrary rune index, clamping to
// [0, len(source)], and re-derives line/column by scanning the characters
// crossed.
func (w *Walker) SetPos(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(w.runes) {
		pos = len(w.runes)
	}

	for w.pos < pos {
		r := w.runes[w.pos]
		w.pos++
		if unicode.IsPrint(r) {
			w.column++
		}
		// The CR half of a CRLF pair does not advance the line counter;
		// the LF half does.
		if charclass.IsNewline(r) && !isCRLF(r, w.peekAt(w.pos)) {
			w.line++
			w.column = 1
		}
	}

	recompute := false
	for w.pos > pos {
		w.pos--
		r := w.runes[w.pos]
		if unicode.IsPrint(r) {
			w.column--
		}
		if charclass.IsNewline(r) && !isCRLF(r, w.peekAt(w.pos+1)) {
			w.line--
			recompute = true
		}
	}
	if recompute {
		w.column = w.columnOfLineStart(w.pos)
	}
}

// peekAt returns the rune at rune index i, or 0 if i is out of range.
func (w *Walker) peekAt(i int) rune {
	if i < 0 || i >= len(w.runes) {
		return 0
	}
	return w.runes[i]
}

// isCRLF reports whether cur is a CR immediately followed by next == LF;
// such a pair counts as a single newline.
func isCRLF(cur, next rune) bool {
	return cur == '\r' && next == '\n'
}

// columnOfLineStart recomputes the 1-indexed column for rune index pos by
// scanning backwards to the previous newline, counting only printable
// runes. Used only when retreating across a newline, where the
// forward-accumulated column cannot simply be decremented.
func (w *Walker) columnOfLineStart(pos int) int {
	column := 1
	for i := pos; i > 0; i-- {
		prev := w.runes[i-1]
		if charclass.IsNewline(prev) && !isCRLF(prev, w.peekAt(i)) {
			break
		}
		if unicode.IsPrint(prev) {
			column++
		}
	}
	return column
}

// Ahead returns, without moving the cursor, the count runes starting at the
// current position. The result may be shorter than count near EOF. A
// negative count behaves like Behind(-count).
func (w *Walker) Ahead(count int) string {
	if count < 0 {
		return w.Behind(-count)
	}
	end := w.pos + count
	if end > len(w.runes) {
		end = len(w.runes)
	}
	return string(w.runes[w.pos:end])
}

// Behind returns, without moving the cursor, the count runes immediately
// before the current position. A negative count behaves like Ahead(-count).
func (w *Walker) Behind(count int) string {
	if count < 0 {
		return w.Ahead(-count)
	}
	start := w.pos - count
	if start < 0 {
		start = 0
	}
	return string(w.runes[start:w.pos])
}

// Advance moves the cursor forward by up to count runes and returns the
// traversed text. A negative count behaves like Retreat(-count).
func (w *Walker) Advance(count int) string {
	if count < 0 {
		return w.Retreat(-count)
	}
	result := w.Ahead(count)
	w.SetPos(w.pos + len([]rune(result)))
	return result
}

// Retreat moves the cursor backward by up to count runes and returns the
// traversed text. A negative count behaves like Advance(-count).
func (w *Walker) Retreat(count int) string {
	if count < 0 {
		return w.Advance(-count)
	}
	result := w.Behind(count)
	w.SetPos(w.pos - len([]rune(result)))
	return result
}

// MatchResult is the tri-state outcome of a predicate passed to MatchWhile
// or MatchWhileOffset:
// continue traversing, stop (and keep what was traversed), or abort (and
// restore the cursor as if Match had never been called).
type MatchResult int

const (
	MatchContinue MatchResult = iota
	MatchStop
	MatchAbort
)

// CharPredicate decides, for a single rune, whether a Match traversal
// should continue, stop, or abort.
type CharPredicate func(r rune) MatchResult

// OffsetCharPredicate is like CharPredicate but also receives the
// zero-based offset of r within the current Match traversal — used to
// distinguish an identifier's first character from its continuations.
type OffsetCharPredicate func(offset int, r rune) MatchResult

// MatchLiteral advances the cursor past literal if the upcoming characters
// equal it exactly, returning literal. If they don't match, the cursor is
// left unchanged and ok is false.
func (w *Walker) MatchLiteral(literal string) (string, bool) {
	if w.Ahead(len([]rune(literal))) == literal {
		w.Advance(len([]rune(literal)))
		return literal, true
	}
	return "", false
}

// MatchWhile advances the cursor while predicate returns MatchContinue for
// each traversed rune, and returns the traversed text. If predicate returns
// MatchStop, the traversal ends before that rune and the text traversed so
// far is returned. If predicate returns MatchAbort, the cursor is reset to
// where it was before MatchWhile was called and ok is false.
func (w *Walker) MatchWhile(predicate CharPredicate) (string, bool) {
	return w.MatchWhileOffset(func(_ int, r rune) MatchResult { return predicate(r) })
}

// MatchWhileOffset is MatchWhile with a predicate that also receives the
// zero-based offset into the traversal.
func (w *Walker) MatchWhileOffset(predicate OffsetCharPredicate) (string, bool) {
	initial := w.pos
	offset := 0

	for {
		if w.pos >= len(w.runes) {
			break
		}
		r := w.runes[w.pos]
		switch predicate(offset, r) {
		case MatchContinue:
			w.SetPos(w.pos + 1)
			offset++
		case MatchStop:
			goto done
		case MatchAbort:
			w.SetPos(initial)
			return "", false
		}
	}

done:
	return string(w.runes[initial:w.pos]), true
}
