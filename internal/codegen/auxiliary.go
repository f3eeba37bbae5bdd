package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/xmamo/craftlangc/internal/cst"
	"github.com/xmamo/craftlangc/internal/datapack"
)

// auxiliary is one generated supporting .mcfunction file: the id used to
// invoke it via a `function` command, and the handle its body is written
// to. Minecraft has no intra-file control flow, so every if/while/do-while
// branch or loop body that actually contains statements is compiled into
// one of these.
type auxiliary struct {
	id  string
	out io.WriteCloser
}

// auxGen allocates auxiliary files for one function body, each with a
// monotonically increasing index unique within that function.
type auxGen struct {
	nc    []string
	fd    *cst.FuncDef
	w     datapack.Writer
	count int
}

func newAuxGen(nc []string, fd *cst.FuncDef, w datapack.Writer) *auxGen {
	return &auxGen{nc: nc, fd: fd, w: w}
}

// next opens the next auxiliary file for this function. The caller owns
// the returned auxiliary's out and must Close it once its body has been
// written.
func (g *auxGen) next() (*auxiliary, error) {
	i := g.count
	g.count++

	name := fmt.Sprintf("%s.%d", funcName(g.fd), i)
	f, err := g.w.Create(datapack.FunctionPath(g.nc, name))
	if err != nil {
		return nil, err
	}

	segments := append([]string{}, g.nc[1:]...)
	segments = append(segments, funcName(g.fd))
	id := fmt.Sprintf("%s:%s.%d", g.nc[0], strings.Join(segments, "/"), i)

	return &auxiliary{id: id, out: f}, nil
}
