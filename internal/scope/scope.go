// Package scope implements the lexical environment used by the code
// generator to resolve identifiers to scoreboard/tag-bearing Items and to
// track (and retype) their declared VarType as assignments are compiled.
package scope

import "github.com/xmamo/craftlangc/internal/cst"

// Item is what an identifier resolves to: a unique internal id (used to
// derive the scoreboard objective or entity tag name) and its current
// VarType. A variable's Item is reused across re-assignment within a
// scope; only its Type may change, mirroring CraftLang's allowance for a
// bare assignment to rebind a name to a different type.
type Item struct {
	IID  string
	Type cst.VarType
}

// Scope is one lexical block: a function body, or a nested if/while/do
// block. Lookups walk up the parent chain unless told not to.
type Scope struct {
	parent *Scope
	items  map[string]*Item
}

// New creates a scope nested inside parent. parent may be nil for a
// function's root scope.
func New(parent *Scope) *Scope {
	return &Scope{parent: parent, items: make(map[string]*Item)}
}

// Root walks up to the outermost enclosing scope.
func (s *Scope) Root() *Scope {
	if s.parent != nil {
		return s.parent.Root()
	}
	return s
}

// Contains reports whether id is bound, searching enclosing scopes when
// recursive is true.
func (s *Scope) Contains(id string, recursive bool) bool {
	_, ok := s.Get(id, recursive)
	return ok
}

// Get looks up id, searching enclosing scopes when recursive is true.
func (s *Scope) Get(id string, recursive bool) (*Item, bool) {
	if item, ok := s.items[id]; ok {
		return item, true
	}
	if recursive && s.parent != nil {
		return s.parent.Get(id, true)
	}
	return nil, false
}

// Set installs an already-constructed Item under id. When recursive is
// true, it is stored in the nearest enclosing scope that already binds
// id, or in s itself if none does; when false, it is always stored in s.
func (s *Scope) Set(id string, item *Item, recursive bool) *Item {
	target := s
	if recursive {
		for scope := s; scope != nil; scope = scope.parent {
			if _, ok := scope.items[id]; ok {
				target = scope
				break
			}
		}
	}
	target.items[id] = item
	return target.items[id]
}

// SetTyped binds id to type t, reusing the existing Item's iid (and
// retyping it in place) if id is already bound in the searched scope
// chain, or allocating a fresh iid via nextIID otherwise. This is the
// operation the code generator uses for every assignment: a name may
// change VarType across its lifetime, but its backing iid is stable for
// as long as the name resolves to the same Item.
func (s *Scope) SetTyped(id string, t cst.VarType, nextIID func() string, recursive bool) *Item {
	if recursive {
		for scope := s; scope != nil; scope = scope.parent {
			if item, ok := scope.items[id]; ok {
				item.Type = t
				return item
			}
		}
		item := &Item{IID: nextIID(), Type: t}
		s.items[id] = item
		return item
	}

	if item, ok := s.items[id]; ok {
		item.Type = t
		return item
	}
	item := &Item{IID: nextIID(), Type: t}
	s.items[id] = item
	return item
}
