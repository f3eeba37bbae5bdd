package parser

import (
	"testing"

	"github.com/xmamo/craftlangc/internal/cst"
	"github.com/xmamo/craftlangc/internal/walker"
)

func TestParseIndent(t *testing.T) {
	cases := []struct {
		source string
		want   int
	}{
		{"", 0},
		{"    x", 4},
		{"\tx", 4},
		{"\t\tx", 8},
		{"  \tx", 4}, // 2 then tab rounds up to 4
		{"\t  x", 6}, // tab rounds to 4, then +2
		{"\n\n   x", 3},
	}
	for _, c := range cases {
		w := walker.New(c.source)
		p := New(w, "")
		got := p.parseIndent()
		if got != c.want {
			t.Errorf("parseIndent(%q) = %d, want %d", c.source, got, c.want)
		}
	}
}

func TestParseIdentifier(t *testing.T) {
	w := walker.New("foo_bar2 rest")
	p := New(w, "")
	tok := p.parseIdentifier()
	if tok.Literal() != "foo_bar2" {
		t.Fatalf("got %q", tok.Literal())
	}

	w2 := walker.New("2bad")
	p2 := New(w2, "")
	tok2 := p2.parseIdentifier()
	if tok2.Len() != 0 {
		t.Fatalf("expected no identifier starting with a digit, got %q", tok2.Literal())
	}
}

func TestParseFileRoundTrip(t *testing.T) {
	source := "namespace test\n\nmain():void\n\tx = 1\n\treturn x\n"
	w := walker.New(source)
	p := New(w, "test.cl")
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if file.Namespace.Components[0].Literal() != "test" {
		t.Fatalf("unexpected namespace: %v", file.Namespace.Components)
	}
	if len(file.FuncDefs) != 1 || file.FuncDefs[0].Identifier.Literal() != "main" {
		t.Fatalf("unexpected funcdefs: %v", file.FuncDefs)
	}

	first := file.String()
	reparsed, err := New(walker.New(first), "test.cl").ParseFile()
	if err != nil {
		t.Fatalf("re-parsing %q: %v", first, err)
	}
	if second := reparsed.String(); second != first {
		t.Fatalf("round trip changed the source:\nfirst:\n%q\nsecond:\n%q", first, second)
	}
}

func TestParseFuncDefParams(t *testing.T) {
	source := "namespace test\n\nadd(a: score, b: score): score\n\treturn a + b\n"
	w := walker.New(source)
	p := New(w, "test.cl")
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	fd := file.FuncDefs[0]
	if len(fd.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fd.Params))
	}
	if fd.Params[0].Identifier.Literal() != "a" || fd.Params[0].Type.Literal() != "score" {
		t.Fatalf("unexpected first param: %+v", fd.Params[0])
	}
	if fd.ReturnType.Literal() != "score" {
		t.Fatalf("unexpected return type: %q", fd.ReturnType.Literal())
	}
}

// TestIfAmbiguityAsStatement exercises the call-vs-if-statement ambiguity:
// `if(x)` on its own line with nothing indented beneath it parses as a
// plain call to a function named "if".
func TestIfAmbiguityAsStatement(t *testing.T) {
	source := "namespace test\n\nmain():void\n\tif(ready)\n\tnop\n"
	w := walker.New(source)
	p := New(w, "test.cl")
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	stmts := file.FuncDefs[0].Statements
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(stmts), stmts)
	}
	if _, ok := stmts[0].(*cst.FuncCall); !ok {
		t.Fatalf("expected first statement to be a call to 'if', got %T", stmts[0])
	}
}

// TestIfAmbiguityAsControlFlow exercises the control-flow reading:
// `if(x)` followed by an indented block parses as an if-statement.
func TestIfAmbiguityAsControlFlow(t *testing.T) {
	source := "namespace test\n\nmain():void\n\tif(ready)\n\t\tnop\n"
	w := walker.New(source)
	p := New(w, "test.cl")
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	stmts := file.FuncDefs[0].Statements
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d: %v", len(stmts), stmts)
	}
	if _, ok := stmts[0].(*cst.IfStatement); !ok {
		t.Fatalf("expected an if-statement, got %T", stmts[0])
	}
}

func TestParseArgsByRef(t *testing.T) {
	source := "namespace test\n\nswap(a: score, b: score):void\n\tdoSwap(ref a, ref b)\n"
	w := walker.New(source)
	p := New(w, "test.cl")
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	stmts := file.FuncDefs[0].Statements
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
}

func TestParseSwapStatement(t *testing.T) {
	source := "namespace test\n\nmain():void\n\ta ><b\n"
	w := walker.New(source)
	p := New(w, "test.cl")
	_, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
}

func TestParseDoWhile(t *testing.T) {
	source := "namespace test\n\nmain():void\n\tdo\n\t\tx += 1\n\twhile(x < 10)\n"
	w := walker.New(source)
	p := New(w, "test.cl")
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(file.FuncDefs[0].Statements) != 1 {
		t.Fatalf("expected 1 statement (do-while), got %d", len(file.FuncDefs[0].Statements))
	}
}

func TestParseCommandInterpolation(t *testing.T) {
	source := "namespace test\n\nmain():void\n\t/say $(ref x) and $(1 + 2)\n"
	w := walker.New(source)
	p := New(w, "test.cl")
	file, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(file.FuncDefs[0].Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(file.FuncDefs[0].Statements))
	}
}

func TestParseUnexpectedIndentAtTopLevel(t *testing.T) {
	source := "  namespace test\n"
	w := walker.New(source)
	p := New(w, "test.cl")
	_, err := p.ParseFile()
	if err == nil {
		t.Fatal("expected an error for unexpected top-level indentation")
	}
}

func TestParseExprPrecedence(t *testing.T) {
	w := walker.New("1 + 2 * 3")
	p := New(w, "")
	expr, err := p.parseExpr()
	if err != nil {
		t.Fatalf("parseExpr error: %v", err)
	}
	bin, ok := expr.(*cst.BinaryExpr)
	if !ok {
		t.Fatalf("expected top-level BinaryExpr, got %T", expr)
	}
	if bin.Operator.Literal() != "+" {
		t.Fatalf("expected '+' at the top level (lowest precedence wins outermost), got %q", bin.Operator.Literal())
	}
	if _, ok := bin.Right.(*cst.BinaryExpr); !ok {
		t.Fatalf("expected the '*' subexpression on the right, got %T", bin.Right)
	}
}

func TestParseIntegerOutOfRange(t *testing.T) {
	w := walker.New("99999999999")
	p := New(w, "")
	_, err := p.parseInteger()
	if err == nil {
		t.Fatal("expected an out-of-range error")
	}
}

func TestParseIntegerSigned(t *testing.T) {
	w := walker.New("-42")
	p := New(w, "")
	tok, err := p.parseInteger()
	if err != nil {
		t.Fatalf("parseInteger error: %v", err)
	}
	if tok.Literal() != "-42" {
		t.Fatalf("got %q", tok.Literal())
	}
}

func TestParseDuplicateFunctionRejected(t *testing.T) {
	source := "namespace test\n\nf():void\n\tnop\n\nf():void\n\tnop\n"
	w := walker.New(source)
	p := New(w, "test.cl")
	_, err := p.ParseFile()
	if err == nil {
		t.Fatal("expected an error for duplicate function definitions")
	}
}
