package builtins

import (
	"math"

	"github.com/yekhlakov/eli-go/internal/value"
)

// registerBoolean installs negation plus the binary boolean, arithmetic,
// and comparison operators (spec §4.3's operator group). None of the
// binary forms short-circuit: both operands are always evaluated.
func registerBoolean(lib map[string]value.BuiltinFn) {
	lib["!"] = biNot
	lib["&"] = binary(func(a, b value.Value) value.Value { return value.NewBool(a.Bool() && b.Bool()) })
	lib["|"] = binary(func(a, b value.Value) value.Value { return value.NewBool(a.Bool() || b.Bool()) })
	lib["^"] = binary(func(a, b value.Value) value.Value { return value.NewBool(a.Bool() != b.Bool()) })
	lib["+"] = binary(func(a, b value.Value) value.Value { return value.NewFloat(a.Float() + b.Float()) })
	lib["*"] = binary(func(a, b value.Value) value.Value { return value.NewFloat(a.Float() * b.Float()) })
	lib["-"] = binary(func(a, b value.Value) value.Value { return value.NewFloat(a.Float() - b.Float()) })
	lib["/"] = binary(func(a, b value.Value) value.Value { return value.NewFloat(a.Float() / b.Float()) })
	lib["%"] = binary(func(a, b value.Value) value.Value { return value.NewFloat(math.Mod(a.Float(), b.Float())) })
	lib["<"] = binary(func(a, b value.Value) value.Value { return value.NewBool(a.Float() < b.Float()) })
	lib[">"] = binary(func(a, b value.Value) value.Value { return value.NewBool(a.Float() > b.Float()) })
	lib["<="] = binary(func(a, b value.Value) value.Value { return value.NewBool(a.Float() <= b.Float()) })
	lib[">="] = binary(func(a, b value.Value) value.Value { return value.NewBool(a.Float() >= b.Float()) })
	lib["="] = binary(func(a, b value.Value) value.Value { return value.NewBool(a.Equal(b)) })
	lib["!="] = binary(func(a, b value.Value) value.Value { return value.NewBool(!a.Equal(b)) })
}

func biNot(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 2); err != nil {
		return nil, err
	}
	a0, err := evalArg(call, 1, local, interp)
	if err != nil {
		return nil, err
	}
	return value.NewBool(!a0.Bool()), nil
}

// binary builds a two-argument builtin out of a pure combining function.
func binary(combine func(a, b value.Value) value.Value) value.BuiltinFn {
	return func(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
		if err := checkArgCount(call, 3); err != nil {
			return nil, err
		}
		a0, err := evalArg(call, 1, local, interp)
		if err != nil {
			return nil, err
		}
		a1, err := evalArg(call, 2, local, interp)
		if err != nil {
			return nil, err
		}
		return combine(a0, a1), nil
	}
}
