package runtime

import (
	"fmt"
	"sort"
	"strings"
)

// Environment is a persistent chain of name to (value, type) bindings.
// Binding never mutates: it prepends a node whose parent is the previous
// head, so every earlier handle stays valid and keeps observing exactly
// the bindings it saw when it was captured. Lookup resolves to the
// innermost binding for a name, which gives shadowing rather than
// overwrite semantics.
//
// The chain terminates in a distinguished empty node. A node is a binding
// iff it has a parent; the empty node is the only one without.
type Environment struct {
	name   string
	value  Value
	typ    Type
	parent *Environment
}

// NewEnvironment returns the empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Bind returns a new environment whose head binds name to (value, typ)
// and whose parent is e. e itself is unchanged. Bind always succeeds.
func (e *Environment) Bind(name string, value Value, typ Type) *Environment {
	return &Environment{name: name, value: value, typ: typ, parent: e}
}

// Lookup walks the chain and returns the innermost binding for name.
// The chain is acyclic and finite by construction, so the walk
// terminates.
func (e *Environment) Lookup(name string) (Value, Type, bool) {
	for node := e; node.parent != nil; node = node.parent {
		if node.name == name {
			return node.value, node.typ, true
		}
	}
	return nil, KindUnit, false
}

// Parent exposes the enclosing chain (nil only past the empty node).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Snapshot flattens the visible bindings into a map, innermost binding
// winning for shadowed names.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value)
	for node := e; node.parent != nil; node = node.parent {
		if _, ok := out[node.name]; !ok {
			out[node.name] = node.value
		}
	}
	return out
}

// Keys returns the visible binding names in sorted order (useful for
// determinism in tests and debug dumps).
func (e *Environment) Keys() []string {
	snapshot := e.Snapshot()
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the full chain innermost-first, shadowed nodes
// included.
func (e *Environment) String() string {
	var b strings.Builder
	for node := e; node.parent != nil; node = node.parent {
		fmt.Fprintf(&b, "%s: (%s, %s), ", node.name, FormatValue(node.value), node.typ)
	}
	return b.String()
}
