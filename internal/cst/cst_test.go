package cst_test

import (
	"testing"

	"github.com/xmamo/craftlangc/internal/cst"
	"github.com/xmamo/craftlangc/internal/parser"
	"github.com/xmamo/craftlangc/internal/walker"
)

// parse is a thin helper so every round-trip case goes through the real
// parser rather than hand-built trees, which is what actually exercises the
// String() methods' fidelity to source syntax.
func parse(t *testing.T, source string) *cst.File {
	t.Helper()
	w := walker.New(source)
	p := parser.New(w, "test.cl")
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile(%q) error: %v", source, err)
	}
	return file
}

// TestRoundTrip re-parses a file's own String() output and checks that a
// second String() call produces byte-identical text: the canonical
// stringifier is a fixed point once source is reduced to CRLF-joined,
// single-spaced canonical form.
func TestRoundTrip(t *testing.T) {
	sources := []string{
		"namespace test\n\nmain():void\n\tnop\n",
		"namespace a.b.c\n\nf(x: score, y: entity): boolean\n\treturn x == x\n",
		"namespace test\n\nmain():void\n\tx = 1\n\tx += 2\n\treturn x\n",
		"namespace test\n\nmain():void\n\tif(1 == 1)\n\t\tx = 1\n\telse\n\t\tx = 2\n",
		"namespace test\n\nmain():void\n\twhile(1 == 1)\n\t\tx += 1\n",
		"namespace test\n\nmain():void\n\tdo\n\t\tx += 1\n\twhile(x < 10)\n",
		"namespace test\n\nmain():void\n\ta ><b\n",
		"namespace test\n\nf(n: score):void\n\tnop\n\nmain():void\n\tf(1)\n\tf(ref x)\n",
		"namespace test\n\nmain():void\n\t/say $(ref x) and $(1 + 2)\n",
	}

	for _, source := range sources {
		file := parse(t, source)
		first := file.String()

		reparsed := parse(t, first)
		second := reparsed.String()

		if first != second {
			t.Errorf("round-trip not a fixed point for %q:\nfirst:\n%q\nsecond:\n%q", source, first, second)
		}
	}
}

func TestLiteralExprEntityRoundTrip(t *testing.T) {
	source := "namespace test\n\nmain():void\n\tx = <@e[type=cow]>\n"
	file := parse(t, source)
	assign := file.FuncDefs[0].Statements[0].(*cst.AssignStatement)
	lit, ok := assign.Expr.(*cst.LiteralExpr)
	if !ok {
		t.Fatalf("expected a LiteralExpr, got %T", assign.Expr)
	}
	if lit.Type != cst.Entity {
		t.Fatalf("expected Entity type, got %v", lit.Type)
	}
	if lit.String() != "<@e[type=cow]>" {
		t.Fatalf("got %q", lit.String())
	}
}

func TestVarTypeFromString(t *testing.T) {
	cases := map[string]cst.VarType{
		"void":    cst.Void,
		"boolean": cst.Boolean,
		"score":   cst.Score,
		"entity":  cst.Entity,
	}
	for name, want := range cases {
		got, ok := cst.VarTypeFromString(name)
		if !ok || got != want {
			t.Errorf("VarTypeFromString(%q) = %v, %v; want %v, true", name, got, ok, want)
		}
	}
	if _, ok := cst.VarTypeFromString("nonsense"); ok {
		t.Error("expected 'nonsense' to not resolve to a VarType")
	}
}

func TestTokenEqual(t *testing.T) {
	w := walker.New("foo foo bar")
	a := cst.NewToken(w, 0, 3)
	b := cst.NewToken(w, 4, 7)
	c := cst.NewToken(w, 8, 11)
	if !a.Equal(b) {
		t.Error("tokens with the same literal should be Equal")
	}
	if a.Equal(c) {
		t.Error("tokens with different literals should not be Equal")
	}
}
