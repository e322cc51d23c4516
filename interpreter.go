/*
File    : eli/interpreter.go

Package eli is the Interpreter facade from spec §2/§6: it owns the
global binding table, the host bridge, and the builtin library, wires
them together as a value.Interp, and exposes the embedding surface a
host application actually calls — RegisterVar/RegisterFunc to publish
host state and callbacks, and Run to execute a fragment of source text.
*/
package eli

import (
	"github.com/yekhlakov/eli-go/internal/builtins"
	"github.com/yekhlakov/eli-go/internal/global"
	"github.com/yekhlakov/eli-go/internal/host"
	"github.com/yekhlakov/eli-go/internal/parser"
	"github.com/yekhlakov/eli-go/internal/value"
)

// Interpreter is a single, independently embeddable instance of the
// language: its own global table, its own host bridge, and its own
// builtin table, built fresh by New and never mutated after that.
type Interpreter struct {
	globals  *global.Table
	host     *host.Bridge
	builtins map[string]value.BuiltinFn
}

// New returns an Interpreter with empty global state and an empty host
// bridge, ready to have variables and functions registered into it.
func New() *Interpreter {
	return &Interpreter{
		globals:  global.New(),
		host:     host.New(),
		builtins: builtins.Library(),
	}
}

// RegisterVar publishes a host variable under name, per spec §4.4 and
// §6's `register_var(name, pointer, components=1, readonly=false)`. The
// concrete element type is carried by the host.Variable value — build
// one with host.Float64Var, host.Int64Var, and so on for the host's
// native storage type.
func (in *Interpreter) RegisterVar(name string, v host.Variable) {
	in.host.RegisterVar(name, v)
}

// RegisterFunc publishes a host callback under name, callable from
// scripts via `(call name args)`.
func (in *Interpreter) RegisterFunc(name string, cb host.Callback) {
	in.host.RegisterFunc(name, cb)
}

// Run parses text as a single Value tree and evaluates it against an
// empty local scope, per spec §6: on success result holds the printed
// final Value and errMsg is empty; on failure result is empty and
// errMsg holds a human-readable message. Run never panics — any error
// raised during evaluation is caught here and converted, matching the
// original's catch-at-run-boundary error policy (spec §7).
func (in *Interpreter) Run(text string) (result string, errMsg string) {
	tree := parser.Parse(text)
	v, err := in.Eval(tree, value.Local{})
	if err != nil {
		return "", err.Error()
	}
	return v.Print(), ""
}

// Eval implements value.Interp's recursive entry point: the tree-walking
// evaluator from spec §4.2. Funcs and empty Atoms evaluate to
// themselves. Atoms resolve in order: local scope, global table,
// builtin table (wrapped fresh as a BuiltinFunc), and otherwise to
// themselves (an unbound name is not an error — it evaluates to its own
// literal text). A List evaluates its head in place — the head slot is
// overwritten with the evaluated value, exactly as the original mutates
// its call node — and, if that head is a Func, dispatches the call;
// otherwise the List (with its evaluated head) is returned unevaluated.
func (in *Interpreter) Eval(tree value.Value, local value.Local) (value.Value, error) {
	if tree.IsFunc() || tree.IsEmpty() {
		return tree, nil
	}

	switch t := tree.(type) {
	case *value.Atom:
		if v, ok := local[t.Raw]; ok {
			return v, nil
		}
		if v, ok := in.globals.Get(t.Raw); ok {
			return v, nil
		}
		if fn, ok := in.builtins[t.Raw]; ok {
			return &value.BuiltinFunc{Name: t.Raw, Fn: fn}, nil
		}
		return tree, nil

	case *value.List:
		head, err := in.Eval(t.Items[0], local)
		if err != nil {
			return nil, err
		}
		t.Items[0] = head
		if head.IsFunc() {
			return in.apply(head, t, local)
		}
		return t, nil
	}

	return tree, nil
}

// apply dispatches a call list to its already-evaluated, Func-shaped
// head.
func (in *Interpreter) apply(head value.Value, call *value.List, local value.Local) (value.Value, error) {
	switch fn := head.(type) {
	case *value.BuiltinFunc:
		return fn.Fn(call, local, in)
	case *value.UserFunc:
		return in.applyUserFunc(fn, call, local)
	default:
		return call, nil
	}
}

// applyUserFunc evaluates each positional argument against the caller's
// local scope, then evaluates the function body against a fresh scope
// extended from the caller's — never the caller's own map, so that
// bindings the callee makes are invisible once the call returns (spec
// §4.2, §8).
func (in *Interpreter) applyUserFunc(fn *value.UserFunc, call *value.List, local value.Local) (value.Value, error) {
	count := len(fn.Params)
	if len(call.Items) < count+1 {
		return nil, &value.InsufficientArgsError{Call: call}
	}

	args := make([]value.Value, count)
	for i := 0; i < count; i++ {
		v, err := in.Eval(call.Items[1+i], local)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return in.Eval(fn.Body, local.Extend(fn.Params, args))
}

// GlobalGet and GlobalSet implement value.Interp's global-table access
// for the `def` builtin and atom resolution.
func (in *Interpreter) GlobalGet(name string) (value.Value, bool) { return in.globals.Get(name) }
func (in *Interpreter) GlobalSet(name string, v value.Value)      { in.globals.Set(name, v) }

// HostGet, HostSet, HostCall implement value.Interp's HostBridge access
// for the `get`, `set`, and `call` builtins.
func (in *Interpreter) HostGet(name string) (value.Value, error) { return in.host.Get(name) }
func (in *Interpreter) HostSet(name string, v value.Value) error { return in.host.Set(name, v) }
func (in *Interpreter) HostCall(name string, args []string) ([]string, error) {
	return in.host.Call(name, args)
}
