/*
File    : eli/internal/global/global.go

Package global implements the interpreter-wide binding table that `def`
writes to and atom resolution reads from. It is the only mutable state
shared across concurrently-running scripts (spec §5): the builtin
table and host registries are populated once at setup and are read-only
from then on, but `def` can be called from any goroutine running `Run`
against the same interpreter.
*/
package global

import (
	"sync"

	"github.com/yekhlakov/eli-go/internal/value"
)

// Table is the global binding table, guarded by a mutex held for the
// duration of each write. Reads are taken under the read half of the
// lock so that a `def` in one goroutine cannot be observed half-written
// by a `run` in another; the contract from spec §5 only requires that a
// completed `def` be visible to `run`s started after it returns, and a
// shared map with an RWMutex satisfies that trivially.
type Table struct {
	mu   sync.RWMutex
	vars map[string]value.Value
}

// New returns an empty global table.
func New() *Table {
	return &Table{vars: make(map[string]value.Value)}
}

// Get looks up name, returning ok=false if it has never been bound.
func (t *Table) Get(name string) (value.Value, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.vars[name]
	return v, ok
}

// Set installs name ↦ v in the global table. Used by the `def` builtin
// under the interpreter's own mutex discipline — each call takes the
// write lock just long enough to install one binding.
func (t *Table) Set(name string, v value.Value) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vars[name] = v
}
