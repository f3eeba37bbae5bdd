package errors

import (
	"strings"
	"testing"

	"github.com/xmamo/craftlangc/internal/walker"
)

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = New(walker.Position{Line: 1, Column: 1}, "bad thing", "", "")
	if err.Error() == "" {
		t.Fatal("expected a non-empty error message")
	}
}

func TestFormatIncludesFileAndPosition(t *testing.T) {
	e := New(walker.Position{Line: 3, Column: 5}, "Unexpected token", "a\nb\nc bad\n", "test.cl")
	out := e.Format(false)
	if !strings.Contains(out, "test.cl:3:5") {
		t.Fatalf("expected file:line:column header, got:\n%s", out)
	}
	if !strings.Contains(out, "c bad") {
		t.Fatalf("expected the offending source line, got:\n%s", out)
	}
	if !strings.Contains(out, "Unexpected token") {
		t.Fatalf("expected the message, got:\n%s", out)
	}
}

func TestFormatWithoutFileUsesBarePosition(t *testing.T) {
	e := New(walker.Position{Line: 1, Column: 1}, "msg", "", "")
	out := e.Format(false)
	if !strings.HasPrefix(out, "1:1: msg") {
		t.Fatalf("got %q", out)
	}
}

func TestFormatCaretMirrorsTabs(t *testing.T) {
	// Tabs don't count toward the column, but the caret padding must keep
	// them so the marker renders under the right rune.
	e := New(walker.Position{Line: 1, Column: 3}, "msg", "\tab cd\n", "f")
	out := e.Format(false)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header, snippet, and caret lines, got %q", out)
	}
	if lines[2] != "  | \t  ^" {
		t.Fatalf("unexpected caret line %q", lines[2])
	}
}

func TestFormatColorAddsANSICodes(t *testing.T) {
	e := New(walker.Position{Line: 1, Column: 1}, "msg", "x\n", "f")
	out := e.Format(true)
	if !strings.Contains(out, "\033[") {
		t.Fatal("expected ANSI escape codes when color is true")
	}
}

func TestFormatCaretColumnAlignment(t *testing.T) {
	e := New(walker.Position{Line: 1, Column: 3}, "msg", "abcdef\n", "f")
	out := e.Format(false)
	lines := strings.Split(out, "\n")
	var sourceLineIdx int
	for i, l := range lines {
		if strings.Contains(l, "abcdef") {
			sourceLineIdx = i
			break
		}
	}
	caretLine := lines[sourceLineIdx+1]
	if !strings.HasSuffix(caretLine, "^") {
		t.Fatalf("expected caret line to end in '^', got %q", caretLine)
	}
	if caretLine != "  |   ^" {
		t.Fatalf("expected the caret under column 3 ('c'), got %q", caretLine)
	}
}
