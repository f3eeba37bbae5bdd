// Package asciifold folds arbitrary Unicode identifiers into the ASCII
// subset Minecraft accepts for namespace, function, and tag names.
package asciifold

import "golang.org/x/text/unicode/norm"

// Fold NFKD-normalizes s and drops every rune outside the ASCII range. A
// letter with a combining diacritic decomposes into its bare ASCII letter
// plus a combining mark, which this then strips, e.g. "café" folds to
// "cafe".
func Fold(s string) string {
	decomposed := norm.NFKD.String(s)
	out := make([]byte, 0, len(decomposed))
	for _, r := range decomposed {
		if r < 0x80 {
			out = append(out, byte(r))
		}
	}
	return string(out)
}
