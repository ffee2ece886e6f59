// Package env implements value.Environment: a parent-chain binding table.
// A root environment carries a mutex the way t73f.de/r/sx's rootEnvironment
// does, even though this language evaluates single-threaded — the REPL's
// ".env" meta-command and a running "load" can still race on the same root
// from two goroutines in a future extension, and the pack's own root
// environment always defends against that regardless of whether the
// language promises concurrent evaluation.
package env

import (
	"sort"
	"sync"

	"github.com/unkiwii/ownlisp/internal/value"
)

// Root is the top-level environment: it owns the binding map outright and
// guards it with a mutex. Every child environment's Def ultimately reaches
// a Root by walking Parent().
type Root struct {
	mu   sync.RWMutex
	vars map[string]*value.Value
}

// NewRoot creates an empty root environment.
func NewRoot() *Root {
	return &Root{vars: make(map[string]*value.Value)}
}

func (r *Root) Get(name string) *value.Value {
	r.mu.RLock()
	v, ok := r.vars[name]
	r.mu.RUnlock()
	if !ok {
		return value.NewError("unbound symbol %s", name)
	}
	return value.Copy(v)
}

func (r *Root) Put(name string, v *value.Value) {
	r.mu.Lock()
	r.vars[name] = value.Copy(v)
	r.mu.Unlock()
}

// Def on a Root is identical to Put: a Root has no parent to walk to.
func (r *Root) Def(name string, v *value.Value) {
	r.Put(name, v)
}

func (r *Root) Parent() value.Environment { return nil }

// SetParent is a no-op on Root: the root of a chain has no parent, ever.
func (r *Root) SetParent(value.Environment) {}

func (r *Root) Copy() value.Environment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := NewRoot()
	for k, v := range r.vars {
		cp.vars[k] = value.Copy(v)
	}
	return cp
}

func (r *Root) Bindings() []value.Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]value.Binding, 0, len(r.vars))
	for k, v := range r.vars {
		out = append(out, value.Binding{Name: k, Value: value.Copy(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Child is a local scope: a lambda's captured environment, which becomes
// its call frame once re-parented to the call site. Unlike Root it carries
// no mutex — a Child is only ever touched by the single goroutine evaluating
// inside it.
type Child struct {
	name   string
	parent value.Environment
	vars   map[string]*value.Value
}

// NewChild creates a scope named name under parent. name is cosmetic (it
// shows up nowhere in this language yet) but mirrors sxpf's childEnvironment,
// which keeps one for diagnostics.
func NewChild(parent value.Environment, name string) *Child {
	return &Child{name: name, parent: parent, vars: make(map[string]*value.Value)}
}

func (c *Child) Get(name string) *value.Value {
	if v, ok := c.vars[name]; ok {
		return value.Copy(v)
	}
	if c.parent != nil {
		return c.parent.Get(name)
	}
	return value.NewError("unbound symbol %s", name)
}

// Put binds name in this environment only, replacing any existing local
// binding. It never touches the parent chain.
func (c *Child) Put(name string, v *value.Value) {
	c.vars[name] = value.Copy(v)
}

// Def walks to the root of the chain and binds there, making the binding
// visible to every other environment sharing that root.
func (c *Child) Def(name string, v *value.Value) {
	var e value.Environment = c
	for e.Parent() != nil {
		e = e.Parent()
	}
	e.Put(name, v)
}

func (c *Child) Parent() value.Environment { return c.parent }

func (c *Child) SetParent(parent value.Environment) { c.parent = parent }

// Copy deep-copies this scope's own bindings but keeps the SAME parent
// pointer (not a recursive copy of the parent chain), matching the
// original's lenv_copy.
func (c *Child) Copy() value.Environment {
	cp := &Child{name: c.name, parent: c.parent, vars: make(map[string]*value.Value, len(c.vars))}
	for k, v := range c.vars {
		cp.vars[k] = value.Copy(v)
	}
	return cp
}

func (c *Child) Bindings() []value.Binding {
	out := make([]value.Binding, 0, len(c.vars))
	for k, v := range c.vars {
		out = append(out, value.Binding{Name: k, Value: value.Copy(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
