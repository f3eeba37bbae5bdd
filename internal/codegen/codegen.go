// Package codegen lowers a parsed CraftLang file into Minecraft
// .mcfunction command text: one file per declared function, plus one
// auxiliary file per non-empty if/while/do-while branch or loop body.
package codegen

import (
	"fmt"
	"strings"

	"github.com/xmamo/craftlangc/internal/cst"
	"github.com/xmamo/craftlangc/internal/datapack"
	"github.com/xmamo/craftlangc/internal/errors"
	"github.com/xmamo/craftlangc/internal/scope"
)

// funcCtx bundles the state shared by every statement/expression lowered
// within a single function body: the enclosing file (for resolving
// function calls), the ASCII-folded namespace path, the function being
// compiled, its auxiliary-file allocator, and a fresh-local-id generator.
type funcCtx struct {
	file    *cst.File
	nc      []string
	fd      *cst.FuncDef
	aux     *auxGen
	nextIID func() string
	ret     string
	retType cst.VarType
}

// Compile lowers file to a complete datapack, writing pack.mcmeta, the
// vanilla load tag, the namespace's own load function, and one
// .mcfunction file per declared function (plus their auxiliaries) through
// w.
func Compile(file *cst.File, w datapack.Writer) error {
	nc := asciiNamespace(file.Namespace)

	if err := datapack.EmitPackMeta(w); err != nil {
		return err
	}
	if err := datapack.EmitNamespaceLoad(w, nc); err != nil {
		return err
	}
	if err := datapack.EmitLoadTag(w, nc); err != nil {
		return err
	}

	for _, fd := range file.FuncDefs {
		if err := compileFuncDef(file, fd, nc, w); err != nil {
			return err
		}
	}

	return nil
}

func compileFuncDef(file *cst.File, fd *cst.FuncDef, nc []string, w datapack.Writer) error {
	sc := scope.New(nil)
	for i, param := range fd.Params {
		t, ok := cst.VarTypeFromString(param.Type.Literal())
		if !ok {
			return errors.New(param.Identifier.Pos(), fmt.Sprintf("Unknown type '%s'", param.Type.Literal()), "", "")
		}
		sc.Set(param.Identifier.Literal(), &scope.Item{IID: paramIID(nc, fd, i), Type: t}, true)
	}

	retType, ok := cst.VarTypeFromString(fd.ReturnType.Literal())
	if !ok {
		return errors.New(fd.Pos(), fmt.Sprintf("Unknown type '%s'", fd.ReturnType.Literal()), "", "")
	}

	f, err := w.Create(datapack.FunctionPath(nc, funcName(fd)))
	if err != nil {
		return err
	}
	defer f.Close()

	params := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = p.String()
	}
	fmt.Fprintf(f, "# %s(%s): %s\r\n", fd.Identifier.Literal(), strings.Join(params, ", "), fd.ReturnType.Literal())

	ctx := &funcCtx{
		file:    file,
		nc:      nc,
		fd:      fd,
		aux:     newAuxGen(nc, fd, w),
		nextIID: nextLocalIID(nc, fd),
		ret:     retIID(nc, fd),
		retType: retType,
	}

	for _, s := range fd.Statements {
		fmt.Fprint(f, "\r\n")
		if err := compileStatement(ctx, s, f, sc); err != nil {
			return err
		}
	}

	return nil
}
