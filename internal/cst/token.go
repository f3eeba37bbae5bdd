// Package cst defines the concrete syntax tree produced by the parser.
// Every node keeps a span into the original source (via Token) rather than
// a decoded value, so that error messages and the canonical stringifier
// (used for the parser's round-trip property) are always exact.
package cst

import "github.com/xmamo/craftlangc/internal/walker"

// Token is a half-open [Start, End) rune span into a Walker's source. Two
// tokens are value-equal by their lexeme (Literal), not by their span.
type Token struct {
	Walker     *walker.Walker
	Start, End int
}

// NewToken builds a Token spanning [start, end) of w's source.
func NewToken(w *walker.Walker, start, end int) Token {
	return Token{Walker: w, Start: start, End: end}
}

// Literal returns the token's textual content.
func (t Token) Literal() string {
	if t.Walker == nil || t.Start >= t.End {
		return ""
	}
	runes := []rune(t.Walker.Source())
	start, end := t.Start, t.End
	if end > len(runes) {
		end = len(runes)
	}
	if start > end {
		start = end
	}
	return string(runes[start:end])
}

// Pos returns the position of the token's first rune.
func (t Token) Pos() walker.Position {
	if t.Walker == nil {
		return walker.Position{Line: 1, Column: 1}
	}
	return t.Walker.PositionAt(t.Start)
}

// Len returns the number of runes spanned by the token.
func (t Token) Len() int { return t.End - t.Start }

// String implements fmt.Stringer by returning the token's literal text.
func (t Token) String() string { return t.Literal() }

// Equal reports whether two tokens have the same lexeme.
func (t Token) Equal(other Token) bool { return t.Literal() == other.Literal() }
