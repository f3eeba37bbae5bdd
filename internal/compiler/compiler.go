// Package compiler wires the walker, parser, and code generator into the
// single-pass pipeline described by the CraftLang compiler: one source
// string in, one complete datapack directory out.
package compiler

import (
	"github.com/xmamo/craftlangc/internal/codegen"
	"github.com/xmamo/craftlangc/internal/cst"
	"github.com/xmamo/craftlangc/internal/datapack"
	"github.com/xmamo/craftlangc/internal/parser"
	"github.com/xmamo/craftlangc/internal/walker"
)

// Compile parses source (labeling errors with file, which may be empty)
// and, on success, lowers it to a complete datapack written through w.
func Compile(source, file string, w datapack.Writer) error {
	_, err := CompileFile(source, file, w)
	return err
}

// CompileFile is Compile but also returns the parsed CST. The tree is
// returned whenever parsing succeeds, even if code generation then fails.
func CompileFile(source, file string, w datapack.Writer) (*cst.File, error) {
	tree, err := Parse(source, file)
	if err != nil {
		return nil, err
	}
	if err := codegen.Compile(tree, w); err != nil {
		return tree, err
	}
	return tree, nil
}

// Parse runs the walker and parser over source without code generation.
func Parse(source, file string) (*cst.File, error) {
	w := walker.New(source)
	p := parser.New(w, file)
	return p.ParseFile()
}

// ToFSPath compiles source to a complete datapack directory rooted at dir.
func ToFSPath(source, file, dir string) error {
	return Compile(source, file, datapack.NewFSWriter(dir))
}
