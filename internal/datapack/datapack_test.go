package datapack

import "testing"

func TestEmitPackMeta(t *testing.T) {
	w := NewMemWriter()
	if err := EmitPackMeta(w); err != nil {
		t.Fatalf("EmitPackMeta error: %v", err)
	}
	content, ok := w.File("pack.mcmeta")
	if !ok {
		t.Fatal("pack.mcmeta was not written")
	}
	if content != packMcmeta {
		t.Fatalf("unexpected pack.mcmeta content:\n%s", content)
	}
}

func TestEmitNamespaceLoad(t *testing.T) {
	w := NewMemWriter()
	if err := EmitNamespaceLoad(w, []string{"mypack", "sub"}); err != nil {
		t.Fatalf("EmitNamespaceLoad error: %v", err)
	}
	content, ok := w.File("data/mypack/functions/sub/.load.mcfunction")
	if !ok {
		t.Fatal(".load.mcfunction was not written at the expected path")
	}
	if content != namespaceLoadFunction {
		t.Fatalf("unexpected .load content:\n%s", content)
	}
}

func TestEmitLoadTag(t *testing.T) {
	w := NewMemWriter()
	if err := EmitLoadTag(w, []string{"mypack", "sub"}); err != nil {
		t.Fatalf("EmitLoadTag error: %v", err)
	}
	content, ok := w.File("data/minecraft/tags/functions/load.json")
	if !ok {
		t.Fatal("load.json was not written")
	}
	want := "{\r\n\t\"values\": [\r\n\t\t\"mypack:sub/.load\"\r\n\t]\r\n}\r\n"
	if content != want {
		t.Fatalf("got %q, want %q", content, want)
	}
}

func TestFunctionPath(t *testing.T) {
	got := FunctionPath([]string{"mypack"}, "main")
	want := "data/mypack/functions/main.mcfunction"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
