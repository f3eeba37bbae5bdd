// Package charclass provides the Unicode-aware character predicates shared
// by the walker and parser: newline, whitespace, identifier-start,
// identifier-continue, and digit.
package charclass

import "unicode"

// IsNewline reports whether r is one of the newline characters recognized
// by CraftLang: LF, CR, VT, FF, NEL, LS, PS. A CR immediately followed by an
// LF is treated as a single newline by the walker, not by this predicate.
func IsNewline(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// IsWhitespace reports whether r is source whitespace: the ASCII and
// Unicode space separators used between tokens, excluding newlines.
func IsWhitespace(r rune) bool {
	switch r {
	case '\t', '\u0011', ' ', '\u00a0', '\u1680', '\u2000', '\u2001',
		'\u2002', '\u2003', '\u2004', '\u2005', '\u2006', '\u2007',
		'\u2008', '\u2009', '\u200a', '\u202f', '\u205f', '\u3000':
		return true
	default:
		return false
	}
}

// IsIdentifierStart reports whether r may begin a CraftLang identifier:
// Unicode categories Lu, Ll, Lt, Lm, Lo, or Pc.
func IsIdentifierStart(r rune) bool {
	return unicode.In(r, unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Pc)
}

// IsIdentifierContinue reports whether r may continue an identifier past
// its first character: identifier-start categories plus Mn, Mc, Nd, Nl.
func IsIdentifierContinue(r rune) bool {
	if IsIdentifierStart(r) {
		return true
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Nl)
}

// IsDigit reports whether r is an ASCII digit 0-9.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
