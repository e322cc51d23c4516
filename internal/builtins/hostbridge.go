package builtins

import "github.com/yekhlakov/eli-go/internal/value"

// registerHost installs the three HostBridge-facing primitives: get,
// set, call (spec §4.4).
func registerHost(lib map[string]value.BuiltinFn) {
	lib["get"] = biGet
	lib["set"] = biSet
	lib["call"] = biCall
}

func biGet(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 2); err != nil {
		return nil, err
	}
	name := call.Items[1]
	if err := ensureAtom(name); err != nil {
		return nil, err
	}
	return interp.HostGet(name.(*value.Atom).Raw)
}

func biSet(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 3); err != nil {
		return nil, err
	}
	name := call.Items[1]
	if err := ensureAtom(name); err != nil {
		return nil, err
	}
	v, err := evalArg(call, 2, local, interp)
	if err != nil {
		return nil, err
	}
	if err := interp.HostSet(name.(*value.Atom).Raw, v); err != nil {
		return nil, err
	}
	return value.Empty(), nil
}

func biCall(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 3); err != nil {
		return nil, err
	}
	name := call.Items[1]
	if err := ensureAtom(name); err != nil {
		return nil, err
	}
	a1, err := evalArg(call, 2, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	result, err := interp.HostCall(name.(*value.Atom).Raw, a1.(*value.List).Strings())
	if err != nil {
		return nil, err
	}
	return value.NewStringList(result), nil
}
