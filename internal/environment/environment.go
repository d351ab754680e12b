// Package environment implements the lexically-nested frames Bolt uses for
// variable scoping. Frames are plain pointers: Go's garbage collector
// already keeps a frame alive for as long as any closure or active call
// holds a reference to it, so there is no manual lifetime bookkeeping to
// do here.
package environment

import "github.com/boltlang/bolt/internal/value"

// Environment is one frame in the scope tree: a name-to-value mapping plus
// an optional pointer to the enclosing frame.
type Environment struct {
	parent *Environment
	values map[string]value.Value
}

// New returns a fresh frame whose parent is enclosing (nil for the root).
func New(enclosing *Environment) *Environment {
	return &Environment{parent: enclosing, values: make(map[string]value.Value)}
}

// Define writes name unconditionally into this frame, overwriting any
// existing binding. Define always succeeds.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get walks the parent chain for the nearest binding of name.
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, true
		}
	}
	return value.Value{}, false
}

// Assign walks the parent chain and overwrites the nearest existing
// binding of name. It never creates a new binding;
// it reports false if no frame in the chain defines name.
func (e *Environment) Assign(name string, v value.Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return true
		}
	}
	return false
}
