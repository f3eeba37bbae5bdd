package codegen

import (
	"fmt"
	"strings"

	"github.com/xmamo/craftlangc/internal/asciifold"
	"github.com/xmamo/craftlangc/internal/cst"
)

// asciiNamespace folds every namespace component to its ASCII form, in
// order, for use in both filesystem paths and generated function ids.
func asciiNamespace(ns cst.NamespaceDecl) []string {
	out := make([]string, len(ns.Components))
	for i, c := range ns.Components {
		out[i] = asciifold.Fold(c.Literal())
	}
	return out
}

// funcName is a function's ASCII-folded identifier, used in ids and paths.
func funcName(fd *cst.FuncDef) string {
	return asciifold.Fold(fd.Identifier.Literal())
}

// dottedNamespace joins already ASCII-folded namespace components with
// '.' for use in locals/args/rets internal ids.
func dottedNamespace(nc []string) string {
	return strings.Join(nc, ".")
}

// paramIID is the internal id backing function parameter i.
func paramIID(nc []string, fd *cst.FuncDef, i int) string {
	return fmt.Sprintf("args.%s.%s.%d", dottedNamespace(nc), funcName(fd), i)
}

// callArgIID is the internal id backing argument slot i at a call site for
// the callee named callee.
func callArgIID(nc []string, callee string, i int) string {
	return fmt.Sprintf("args.%s.%s.%d", dottedNamespace(nc), asciifold.Fold(callee), i)
}

// retIID is the internal id backing a function's single return slot.
func retIID(nc []string, fd *cst.FuncDef) string {
	return fmt.Sprintf("rets.%s.%s.0", dottedNamespace(nc), funcName(fd))
}

// nextLocalIID returns a generator of fresh internal ids for a function's
// locally declared (non-parameter) variables.
func nextLocalIID(nc []string, fd *cst.FuncDef) func() string {
	i := -1
	return func() string {
		i++
		return fmt.Sprintf("locals.%s.%s.%d", dottedNamespace(nc), funcName(fd), i)
	}
}

// calleeFunctionRef is the `namespace:path/to/func` reference used in a
// `function ...` command: n0:n1/.../<callee>, all components ASCII-folded
// the same way the callee's own .mcfunction file path is, so the reference
// always resolves to the file actually emitted for it.
func calleeFunctionRef(nc []string, calleeIdentifierRaw string) string {
	segments := append([]string{}, nc[1:]...)
	segments = append(segments, asciifold.Fold(calleeIdentifierRaw))
	return nc[0] + ":" + strings.Join(segments, "/")
}
