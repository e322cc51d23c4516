package builtins

import (
	"math"

	"github.com/yekhlakov/eli-go/internal/value"
)

// registerMath installs the cmath proxy: thin wrappers over Go's math
// package, following the naming the original gives them rather than
// Go's own Title-case convention. pow and log both take their operands
// in reversed order from the math package's own — pow(a, b) computes
// b^a, and log(base, x) computes ln(x)/ln(base) — because that is the
// order the original C++ exposes them in and scripts may depend on it.
func registerMath(lib map[string]value.BuiltinFn) {
	lib["sqrt"] = unaryMath(math.Sqrt)
	lib["abs"] = unaryMath(math.Abs)
	lib["sin"] = unaryMath(math.Sin)
	lib["cos"] = unaryMath(math.Cos)
	lib["tan"] = unaryMath(math.Tan)
	lib["asin"] = unaryMath(math.Asin)
	lib["acos"] = unaryMath(math.Acos)
	lib["atan"] = unaryMath(math.Atan)
	lib["floor"] = unaryMath(math.Floor)
	lib["ceil"] = unaryMath(math.Ceil)
	lib["sinCos"] = biSinCos
	lib["atan2"] = binary(func(a, b value.Value) value.Value {
		return value.NewFloat(math.Atan2(a.Float(), b.Float()))
	})
	lib["pow"] = binary(func(a, b value.Value) value.Value {
		return value.NewFloat(math.Pow(b.Float(), a.Float()))
	})
	lib["log"] = binary(func(a, b value.Value) value.Value {
		return value.NewFloat(math.Log(b.Float()) / math.Log(a.Float()))
	})
}

func unaryMath(fn func(float64) float64) value.BuiltinFn {
	return func(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
		if err := checkArgCount(call, 2); err != nil {
			return nil, err
		}
		a0, err := evalArg(call, 1, local, interp)
		if err != nil {
			return nil, err
		}
		if err := ensureAtom(a0); err != nil {
			return nil, err
		}
		return value.NewFloat(fn(a0.Float())), nil
	}
}

func biSinCos(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 2); err != nil {
		return nil, err
	}
	a0, err := evalArg(call, 1, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureAtom(a0); err != nil {
		return nil, err
	}
	v := a0.Float()
	return value.NewList(value.NewFloat(math.Sin(v)), value.NewFloat(math.Cos(v))), nil
}
