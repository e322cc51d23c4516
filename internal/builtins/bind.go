package builtins

import "github.com/yekhlakov/eli-go/internal/value"

// registerBind installs the three binding-form primitives: fn, let, def.
func registerBind(lib map[string]value.BuiltinFn) {
	lib["fn"] = biFn
	lib["let"] = biLet
	lib["def"] = biDef
}

// biFn builds a UserFunc. Every argument between the name and the final
// body position that is not itself an Atom is silently skipped rather
// than rejected — the original tolerates stray non-atom parameter slots
// instead of raising Invalid_argument for them.
func biFn(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 2); err != nil {
		return nil, err
	}
	last := len(call.Items) - 1
	fn := &value.UserFunc{Body: call.Items[last]}
	for i := 1; i < last; i++ {
		a, ok := call.Items[i].(*value.Atom)
		if !ok {
			continue
		}
		fn.Params = append(fn.Params, a.Raw)
	}
	return fn, nil
}

// biLet binds a sequence of (name, value) pairs into a scope extended
// from the caller's, evaluating each value against the bindings visible
// so far, then evaluates and returns the final expression against the
// fully bound scope. Names that are not bare Atoms are skipped.
func biLet(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 4); err != nil {
		return nil, err
	}
	letLocal := local.Copy()
	last := len(call.Items) - 1
	for i := 1; i < last-1; i += 2 {
		a, ok := call.Items[i].(*value.Atom)
		if !ok {
			continue
		}
		v, err := interp.Eval(call.Items[i+1], letLocal)
		if err != nil {
			return nil, err
		}
		letLocal[a.Raw] = v
	}
	return interp.Eval(call.Items[last], letLocal)
}

// biDef writes a sequence of (name, value) pairs into the global table,
// evaluated against the caller's local scope rather than a def-local
// one. Each binding is installed before the next value is evaluated, so
// a later value in the same call sees an earlier name through the
// global table (unless the caller's local scope shadows it).
func biDef(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 3); err != nil {
		return nil, err
	}
	last := len(call.Items) - 1
	for i := 1; i < last; i += 2 {
		a, ok := call.Items[i].(*value.Atom)
		if !ok {
			continue
		}
		v, err := evalArg(call, i+1, local, interp)
		if err != nil {
			return nil, err
		}
		interp.GlobalSet(a.Raw, v)
	}
	return value.Empty(), nil
}
