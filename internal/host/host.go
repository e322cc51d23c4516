/*
File    : eli/internal/host/host.go

Package host implements the HostBridge: the registry of named external
variables (typed pointers into host memory, in spec terms) and named
external string-list callbacks through which scripts observe and affect
host state (spec §4.4).

The original C++ design stores a raw typed pointer plus an element
count per variable. A Go-native rendering of "pointer into host memory"
is a slice: the host already owns the backing array, and indexing into
it mutates exactly the memory the host sees, with no unsafe pointer
arithmetic and no manual type-punning union. Variable wraps that slice
behind two closures (Get/Set in double-coerced terms) so the bridge
itself never needs a type switch per element kind — each constructor
below captures the narrowing rule for its element type once.
*/
package host

import (
	"sync"

	"github.com/yekhlakov/eli-go/internal/value"
)

// Variable is a registered external variable: a component-indexed
// accessor over host memory, a component count, and a readonly flag.
type Variable struct {
	Len      int
	ReadOnly bool
	get      func(i int) float64
	set      func(i int, f float64)
}

// Float64Var registers a []float64 slice as a host variable. Reads and
// writes touch the slice's backing array directly.
func Float64Var(s []float64, readonly bool) Variable {
	return Variable{
		Len: len(s), ReadOnly: readonly,
		get: func(i int) float64 { return s[i] },
		set: func(i int, f float64) { s[i] = f },
	}
}

// Float32Var registers a []float32 slice as a host variable.
func Float32Var(s []float32, readonly bool) Variable {
	return Variable{
		Len: len(s), ReadOnly: readonly,
		get: func(i int) float64 { return float64(s[i]) },
		set: func(i int, f float64) { s[i] = float32(f) },
	}
}

// Int64Var registers a []int64 slice as a host variable.
func Int64Var(s []int64, readonly bool) Variable {
	return Variable{
		Len: len(s), ReadOnly: readonly,
		get: func(i int) float64 { return float64(s[i]) },
		set: func(i int, f float64) { s[i] = int64(f) },
	}
}

// Uint64Var registers a []uint64 slice as a host variable. Narrowing
// from double to uint64 wraps the same way a C++ `(unsigned long
// long)(double)` cast of a negative value wraps, via the signed-int64
// round-trip: spec §8 scenario 8 depends on this (writing -123 into a
// 64-bit unsigned variable reads back as 18446744073709551493).
func Uint64Var(s []uint64, readonly bool) Variable {
	return Variable{
		Len: len(s), ReadOnly: readonly,
		get: func(i int) float64 { return float64(s[i]) },
		set: func(i int, f float64) { s[i] = uint64(int64(f)) },
	}
}

// Int32Var registers a []int32 slice as a host variable.
func Int32Var(s []int32, readonly bool) Variable {
	return Variable{
		Len: len(s), ReadOnly: readonly,
		get: func(i int) float64 { return float64(s[i]) },
		set: func(i int, f float64) { s[i] = int32(f) },
	}
}

// Uint32Var registers a []uint32 slice as a host variable.
func Uint32Var(s []uint32, readonly bool) Variable {
	return Variable{
		Len: len(s), ReadOnly: readonly,
		get: func(i int) float64 { return float64(s[i]) },
		set: func(i int, f float64) { s[i] = uint32(int64(f)) },
	}
}

// BoolVar registers a []bool slice as a host variable.
func BoolVar(s []bool, readonly bool) Variable {
	return Variable{
		Len: len(s), ReadOnly: readonly,
		get: func(i int) float64 {
			if s[i] {
				return 1
			}
			return 0
		},
		set: func(i int, f float64) { s[i] = f != 0 },
	}
}

// Callback is the signature of an external function callable from a
// script via `call`.
type Callback func(args []string) []string

// Bridge is the HostBridge: the pair of registries through which
// scripts reach host state. Variables and callbacks are meant to be
// registered once at setup, before any concurrent Run calls begin
// (spec §5); the registries are still guarded by an RWMutex so that
// registering late from another goroutine is serialized rather than
// racy: registration takes the write lock, and the Get/Set/Call lookups
// take the read lock only for the map access itself.
type Bridge struct {
	mu    sync.RWMutex
	vars  map[string]Variable
	funcs map[string]Callback
}

// New returns an empty HostBridge.
func New() *Bridge {
	return &Bridge{
		vars:  make(map[string]Variable),
		funcs: make(map[string]Callback),
	}
}

// RegisterVar installs v under name, overwriting any prior registration.
func (b *Bridge) RegisterVar(name string, v Variable) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.vars[name] = v
}

// RegisterFunc installs cb under name, overwriting any prior
// registration.
func (b *Bridge) RegisterFunc(name string, cb Callback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.funcs[name] = cb
}

// Get implements the `get` builtin: it reads every component of the
// named variable and returns them as a List of Atoms.
func (b *Bridge) Get(name string) (value.Value, error) {
	b.mu.RLock()
	v, ok := b.vars[name]
	b.mu.RUnlock()
	if !ok {
		return nil, &value.VarNotFoundError{Name: name}
	}

	items := make([]value.Value, v.Len)
	for i := 0; i < v.Len; i++ {
		items[i] = value.NewFloat(v.get(i))
	}
	return &value.List{Items: items}, nil
}

// Set implements the `set` builtin: val must be a List with at least as
// many elements as the variable has components; each element is
// coerced to double and narrowed into the variable's native element
// type. Excess elements are ignored.
func (b *Bridge) Set(name string, val value.Value) error {
	b.mu.RLock()
	v, ok := b.vars[name]
	b.mu.RUnlock()
	if !ok {
		return &value.VarNotFoundError{Name: name}
	}
	if v.ReadOnly {
		return &value.ReadOnlyVarError{Name: name}
	}
	if !val.IsList() {
		return &value.ArgError{Value: val}
	}
	list := val.(*value.List)
	if len(list.Items) < v.Len {
		return &value.InsufficientArgsError{Call: val}
	}
	for i := 0; i < v.Len; i++ {
		v.set(i, list.Items[i].Float())
	}
	return nil
}

// Call implements the `call` builtin: dispatches args to the named
// host callback and returns its result as a List of Atoms.
func (b *Bridge) Call(name string, args []string) ([]string, error) {
	b.mu.RLock()
	cb, ok := b.funcs[name]
	b.mu.RUnlock()
	if !ok {
		return nil, &value.FuncNotFoundError{Name: name}
	}
	return cb(args), nil
}
