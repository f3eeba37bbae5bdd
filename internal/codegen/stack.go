package codegen

import "github.com/xmamo/craftlangc/internal/cst"

// typeStack mirrors the compiler's notion of the expression stack depth:
// not actual runtime values, but the sequence of VarTypes currently
// occupying `stack.0`, `stack.1`, ... slots while an expression is being
// lowered. Every statement returns the stack to depth 0 once compiled.
type typeStack struct {
	types []cst.VarType
}

func (s *typeStack) push(t cst.VarType) { s.types = append(s.types, t) }

func (s *typeStack) pop() cst.VarType {
	t := s.types[len(s.types)-1]
	s.types = s.types[:len(s.types)-1]
	return t
}

// depth is the number of stack slots currently occupied, i.e. the index
// of the next free slot.
func (s *typeStack) depth() int { return len(s.types) }
