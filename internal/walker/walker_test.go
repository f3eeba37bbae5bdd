package walker

import "testing"

func TestPositionRoundTrip(t *testing.T) {
	source := "ab\ncd\r\nef"
	w := New(source)

	for p := 0; p <= len([]rune(source)); p++ {
		w.SetPos(p)
		if w.Pos() != p {
			t.Fatalf("SetPos(%d): Pos() = %d", p, w.Pos())
		}
	}
}

func TestCRLFCountsAsOneNewline(t *testing.T) {
	w := New("a\r\nb")
	w.SetPos(3) // just before 'b'
	if w.Line() != 2 {
		t.Fatalf("expected line 2 after CRLF, got %d", w.Line())
	}
	if w.Column() != 1 {
		t.Fatalf("expected column 1 at start of second line, got %d", w.Column())
	}
}

func TestLineColumnAfterLF(t *testing.T) {
	w := New("ab\ncd")
	w.SetPos(3) // 'c'
	if w.Line() != 2 || w.Column() != 1 {
		t.Fatalf("got line=%d column=%d, want 2,1", w.Line(), w.Column())
	}
	w.SetPos(5) // end, after 'd'
	if w.Line() != 2 || w.Column() != 3 {
		t.Fatalf("got line=%d column=%d, want 2,3", w.Line(), w.Column())
	}
}

func TestNonPrintableDoesNotAdvanceColumn(t *testing.T) {
	// Tabs are not printable; only 'a' and 'b' count toward the column.
	w := New("\ta\tb")
	w.SetPos(4)
	if w.Column() != 3 {
		t.Fatalf("expected column 3 after two printable runes, got %d", w.Column())
	}
}

func TestRetreatAcrossNewlineRecomputesColumn(t *testing.T) {
	w := New("ab\r\ncd")
	w.SetPos(6)
	forward := w.Position()

	w.SetPos(0)
	w.SetPos(6)
	if w.Position() != forward {
		t.Fatalf("forward re-derivation disagrees: %+v vs %+v", w.Position(), forward)
	}

	w.SetPos(1) // back into the first line
	if w.Line() != 1 || w.Column() != 2 {
		t.Fatalf("got line=%d column=%d, want 1,2", w.Line(), w.Column())
	}
}

func TestAdvanceRetreatIdempotent(t *testing.T) {
	w := New("hello world")
	start := w.Pos()
	advanced := w.Advance(5)
	if advanced != "hello" {
		t.Fatalf("Advance(5) = %q", advanced)
	}
	retreated := w.Retreat(5)
	if retreated != "hello" {
		t.Fatalf("Retreat(5) = %q", retreated)
	}
	if w.Pos() != start {
		t.Fatalf("position not restored: got %d want %d", w.Pos(), start)
	}
}

func TestAheadThenAdvanceAgree(t *testing.T) {
	w := New("hello world")
	ahead := w.Ahead(5)
	before := w.Pos()
	advanced := w.Advance(5)
	if ahead != advanced {
		t.Fatalf("Ahead(5)=%q but Advance(5)=%q", ahead, advanced)
	}
	w.Retreat(5)
	if w.Pos() != before {
		t.Fatalf("position not restored after Retreat")
	}
}

func TestMatchLiteral(t *testing.T) {
	w := New("namespace foo")
	lexeme, ok := w.MatchLiteral("namespace")
	if !ok || lexeme != "namespace" {
		t.Fatalf("MatchLiteral failed: lexeme=%q ok=%v", lexeme, ok)
	}
	if w.Pos() != 9 {
		t.Fatalf("expected position 9, got %d", w.Pos())
	}

	// No match leaves cursor unchanged.
	_, ok = w.MatchLiteral("bar")
	if ok {
		t.Fatalf("expected no match")
	}
	if w.Pos() != 9 {
		t.Fatalf("cursor moved on failed match: %d", w.Pos())
	}
}

func TestMatchWhileAbortRestoresCursor(t *testing.T) {
	w := New("abc123")
	start := w.Pos()

	result, ok := w.MatchWhile(func(r rune) MatchResult {
		if r == 'a' {
			return MatchAbort
		}
		return MatchContinue
	})

	if ok || result != "" {
		t.Fatalf("expected abort to report no match, got %q ok=%v", result, ok)
	}
	if w.Pos() != start {
		t.Fatalf("abort did not restore cursor: got %d want %d", w.Pos(), start)
	}
}

func TestMatchWhileStopKeepsTraversed(t *testing.T) {
	w := New("abc123")
	result, ok := w.MatchWhile(func(r rune) MatchResult {
		if r >= '0' && r <= '9' {
			return MatchStop
		}
		return MatchContinue
	})
	if !ok || result != "abc" {
		t.Fatalf("got %q ok=%v, want \"abc\" true", result, ok)
	}
	if w.Pos() != 3 {
		t.Fatalf("expected position 3, got %d", w.Pos())
	}
}

func TestMatchWhileOffsetDistinguishesFirstChar(t *testing.T) {
	w := New("a1b2")
	result, ok := w.MatchWhileOffset(func(offset int, r rune) MatchResult {
		if offset == 0 {
			if r == 'a' {
				return MatchContinue
			}
			return MatchAbort
		}
		if r >= '0' && r <= '9' || r == 'b' {
			return MatchContinue
		}
		return MatchStop
	})
	if !ok || result != "a1b2" {
		t.Fatalf("got %q ok=%v", result, ok)
	}
}

func TestPastEOFNeverThrows(t *testing.T) {
	w := New("x")
	w.SetPos(100)
	if w.Pos() != 1 {
		t.Fatalf("SetPos should clamp to source length, got %d", w.Pos())
	}
	if s := w.Ahead(5); s != "" {
		t.Fatalf("Ahead past EOF should be empty, got %q", s)
	}
	if s := w.Advance(5); s != "" {
		t.Fatalf("Advance past EOF should be empty, got %q", s)
	}
}
