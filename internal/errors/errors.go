// Package errors defines the error type shared by CraftLang's parser and
// code generator. A CraftError pins a message to a source position and can
// render itself with the offending line and a caret marker.
package errors

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/xmamo/craftlangc/internal/walker"
)

// CraftError is a single parse or compile error. CraftLang has no error
// recovery, so one value describes the whole failed compile.
type CraftError struct {
	Message string
	Source  string
	File    string
	Pos     walker.Position
}

// New creates a CraftError at pos. source and file may be empty; the
// rendered output degrades gracefully without them.
func New(pos walker.Position, message, source, file string) *CraftError {
	return &CraftError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *CraftError) Error() string { return e.Format(false) }

// Format renders the error as "<file>:<line>:<column>: <message>",
// followed, when source text is available, by the offending line and a
// caret under the reported column. Columns count printable runes only, so
// the caret padding mirrors the line's tabs to stay aligned in
// tab-indented files. If color is true, the caret and message are
// highlighted with ANSI codes.
func (e *CraftError) Format(color bool) string {
	const (
		bold    = "\033[1m"
		boldRed = "\033[1;31m"
		reset   = "\033[0m"
	)

	message := e.Message
	if color {
		message = bold + message + reset
	}

	location := fmt.Sprintf("%d:%d", e.Pos.Line, e.Pos.Column)
	if e.File != "" {
		location = e.File + ":" + location
	}

	lines := []string{location + ": " + message}

	if snippet, ok := e.sourceLine(); ok {
		caret := "^"
		if color {
			caret = boldRed + caret + reset
		}
		lines = append(lines,
			"  | "+snippet,
			"  | "+caretPadding(snippet, e.Pos.Column)+caret,
		)
	}

	return strings.Join(lines, "\n")
}

// sourceLine returns the line of source the error points at, without its
// line terminator, and whether a non-empty one could be extracted.
func (e *CraftError) sourceLine() (string, bool) {
	remaining := e.Source
	for n := e.Pos.Line; n > 1; n-- {
		i := strings.IndexByte(remaining, '\n')
		if i < 0 {
			return "", false
		}
		remaining = remaining[i+1:]
	}
	if i := strings.IndexByte(remaining, '\n'); i >= 0 {
		remaining = remaining[:i]
	}
	remaining = strings.TrimSuffix(remaining, "\r")
	return remaining, remaining != ""
}

// caretPadding builds the blank run preceding the caret. The walker counts
// only printable runes toward the column, so padding walks the line until
// column-1 printable runes have passed, copying tabs through verbatim and
// widening everything else to a single space.
func caretPadding(line string, column int) string {
	var pad strings.Builder
	printable := 0
	for _, r := range line {
		if printable >= column-1 {
			break
		}
		if r == '\t' {
			pad.WriteRune('\t')
			continue
		}
		pad.WriteRune(' ')
		if unicode.IsPrint(r) {
			printable++
		}
	}
	return pad.String()
}
