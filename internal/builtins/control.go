package builtins

import "github.com/yekhlakov/eli-go/internal/value"

// registerControl installs the sequencing, quoting, and type-test
// primitives plus `if` and `id` (spec §4.3's control group).
func registerControl(lib map[string]value.BuiltinFn) {
	lib["seq"] = biSeq
	lib["val"] = biVal
	lib["empty"] = typeCheck(value.Value.IsEmpty)
	lib["atom"] = typeCheck(value.Value.IsAtom)
	lib["list"] = typeCheck(value.Value.IsList)
	lib["func"] = typeCheck(value.Value.IsFunc)
	lib["if"] = biIf
	lib["id"] = biID
}

// biSeq evaluates every argument in order, discarding all but the last,
// and returns the last one's value. `(seq)` alone returns the empty Atom.
func biSeq(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	n := len(call.Items)
	if n <= 1 {
		return value.Empty(), nil
	}
	for i := 1; i < n-1; i++ {
		if _, err := evalArg(call, i, local, interp); err != nil {
			return nil, err
		}
	}
	return evalArg(call, n-1, local, interp)
}

// biVal returns its arguments unevaluated, as a List — the language's
// quoting primitive.
func biVal(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	items := make([]value.Value, len(call.Items)-1)
	copy(items, call.Items[1:])
	return &value.List{Items: items}, nil
}

// typeCheck builds a unary builtin from one of Value's shape predicates.
func typeCheck(pred func(value.Value) bool) value.BuiltinFn {
	return func(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
		if err := checkArgCount(call, 2); err != nil {
			return nil, err
		}
		a0, err := evalArg(call, 1, local, interp)
		if err != nil {
			return nil, err
		}
		return value.NewBool(pred(a0)), nil
	}
}

// biIf evaluates (condition, consequent) pairs in order and returns the
// first consequent whose condition is true; the final, unpaired
// argument is the fallback returned if every condition was false.
func biIf(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 4); err != nil {
		return nil, err
	}
	maxCount := len(call.Items) - 1
	for i := 1; i < maxCount; i += 2 {
		cond, err := evalArg(call, i, local, interp)
		if err != nil {
			return nil, err
		}
		if cond.Bool() {
			return evalArg(call, i+1, local, interp)
		}
	}
	return evalArg(call, maxCount, local, interp)
}

func biID(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 2); err != nil {
		return nil, err
	}
	return evalArg(call, 1, local, interp)
}
