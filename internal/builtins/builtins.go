/*
File    : eli/internal/builtins/builtins.go

Package builtins implements the BuiltinLibrary from spec §4.3: the fixed
table of native operators every Interpreter starts with. Each function
in this package has the value.BuiltinFn signature and is registered
under its script-visible name by Library.

The split across files (control, lists, bind, boolean, mathproxy,
hostbridge, higherorder) mirrors the concern-per-file layout the rest of
this module's teacher uses for its own standard library, even though
here one map ties them all together instead of one package-global slice.
*/
package builtins

import "github.com/yekhlakov/eli-go/internal/value"

// Library builds the complete builtin table from scratch. Interpreter
// construction calls this once; builtins are immutable after that, so
// nothing about this map needs to be concurrency-safe on its own.
func Library() map[string]value.BuiltinFn {
	lib := make(map[string]value.BuiltinFn)
	registerControl(lib)
	registerLists(lib)
	registerBind(lib)
	registerBoolean(lib)
	registerMath(lib)
	registerHost(lib)
	registerHigherOrder(lib)
	return lib
}

// checkArgCount enforces the minimum call-list length every builtin
// declares up front, mirroring CHECK_ARG_COUNT in the original: the
// count includes the builtin's own name at index 0.
func checkArgCount(call *value.List, n int) error {
	if len(call.Items) < n {
		return &value.InsufficientArgsError{Call: call}
	}
	return nil
}

// evalArg evaluates the call list's argument at idx against local.
func evalArg(call *value.List, idx int, local value.Local, interp value.Interp) (value.Value, error) {
	return interp.Eval(call.Items[idx], local)
}

func ensureAtom(v value.Value) error {
	if !v.IsAtom() {
		return &value.ArgError{Value: v}
	}
	return nil
}

func ensureList(v value.Value) error {
	if !v.IsList() {
		return &value.ArgError{Value: v}
	}
	return nil
}

func ensureFunc(v value.Value) error {
	if !v.IsFunc() {
		return &value.ArgError{Value: v}
	}
	return nil
}

func ensureNotEmpty(v value.Value) error {
	if v.IsEmpty() {
		return &value.ArgError{Value: v}
	}
	return nil
}
