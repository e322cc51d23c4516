package builtins

import "github.com/yekhlakov/eli-go/internal/value"

// registerHigherOrder installs the stdlib-style sequence functions from
// spec §4.3: length, reverse, concat, iota, take, drop, map, filter,
// zipWith, takeWhile, dropWhile, repeat, foldl, foldl1, foldr, foldr1.
func registerHigherOrder(lib map[string]value.BuiltinFn) {
	lib["length"] = biLength
	lib["reverse"] = biReverse
	lib["concat"] = biConcat
	lib["iota"] = biIota
	lib["take"] = biTake
	lib["drop"] = biDrop
	lib["map"] = biMap
	lib["filter"] = biFilter
	lib["zipWith"] = biZipWith
	lib["takeWhile"] = biTakeWhile
	lib["dropWhile"] = biDropWhile
	lib["repeat"] = biRepeat
	lib["foldl1"] = biFoldl1
	lib["foldl"] = biFoldl
	lib["foldr"] = biFoldr
	lib["foldr1"] = biFoldr1
}

func biLength(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 2); err != nil {
		return nil, err
	}
	a0, err := evalArg(call, 1, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureList(a0); err != nil {
		return nil, err
	}
	return value.NewUint(uint64(len(a0.(*value.List).Items))), nil
}

func biReverse(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 2); err != nil {
		return nil, err
	}
	a0, err := evalArg(call, 1, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureList(a0); err != nil {
		return nil, err
	}
	src := a0.(*value.List).Items
	items := make([]value.Value, len(src))
	for i, v := range src {
		items[len(src)-1-i] = v
	}
	return &value.List{Items: items}, nil
}

func biConcat(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
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
	if err := ensureList(a0); err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	l0, l1 := a0.(*value.List).Items, a1.(*value.List).Items
	items := make([]value.Value, 0, len(l0)+len(l1))
	items = append(items, l0...)
	items = append(items, l1...)
	return &value.List{Items: items}, nil
}

func biIota(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
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
	n := a0.Float()
	var items []value.Value
	for i := 0.0; i < n; i++ {
		items = append(items, value.NewUint(uint64(i)))
	}
	return &value.List{Items: items}, nil
}

func biTake(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
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
	if err := ensureAtom(a0); err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	if a1.IsEmpty() {
		return a1, nil
	}
	n := a0.Float()
	src := a1.(*value.List).Items
	var items []value.Value
	for i := 0; float64(i) < n && i < len(src); i++ {
		items = append(items, src[i])
	}
	return &value.List{Items: items}, nil
}

func biDrop(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
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
	if err := ensureAtom(a0); err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	if a1.IsEmpty() {
		return a1, nil
	}
	start := int(a0.Float())
	if start < 0 {
		start = 0
	}
	src := a1.(*value.List).Items
	var items []value.Value
	for i := start; i < len(src); i++ {
		items = append(items, src[i])
	}
	return &value.List{Items: items}, nil
}

// invoke builds a reusable call list (fn, placeholder...) and returns a
// closure that evaluates it against a fresh set of arguments each time,
// mirroring the original's habit of mutating one scratch invocation
// List in place across every loop iteration instead of allocating one
// per call.
func invoke(fn value.Value, argCount int, local value.Local, interp value.Interp) func(args ...value.Value) (value.Value, error) {
	items := make([]value.Value, argCount+1)
	items[0] = fn
	call := &value.List{Items: items}
	return func(args ...value.Value) (value.Value, error) {
		for i, a := range args {
			call.Items[1+i] = a
		}
		return interp.Eval(call, local)
	}
}

func biMap(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
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
	if err := ensureFunc(a0); err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	if a1.IsEmpty() {
		return a1, nil
	}
	apply := invoke(a0, 1, local, interp)
	src := a1.(*value.List).Items
	items := make([]value.Value, len(src))
	for i, v := range src {
		r, err := apply(v)
		if err != nil {
			return nil, err
		}
		items[i] = r
	}
	return &value.List{Items: items}, nil
}

func biFilter(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
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
	if err := ensureFunc(a0); err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	if a1.IsEmpty() {
		return a1, nil
	}
	apply := invoke(a0, 1, local, interp)
	var items []value.Value
	for _, v := range a1.(*value.List).Items {
		r, err := apply(v)
		if err != nil {
			return nil, err
		}
		if r.Bool() {
			items = append(items, v)
		}
	}
	return &value.List{Items: items}, nil
}

func biZipWith(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 4); err != nil {
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
	a2, err := evalArg(call, 3, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureFunc(a0); err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	if err := ensureList(a2); err != nil {
		return nil, err
	}
	if a1.IsEmpty() || a2.IsEmpty() {
		return value.NewEmptyList(), nil
	}
	apply := invoke(a0, 2, local, interp)
	l1, l2 := a1.(*value.List).Items, a2.(*value.List).Items
	n := len(l1)
	if len(l2) < n {
		n = len(l2)
	}
	items := make([]value.Value, n)
	for i := 0; i < n; i++ {
		r, err := apply(l1[i], l2[i])
		if err != nil {
			return nil, err
		}
		items[i] = r
	}
	return &value.List{Items: items}, nil
}

func biTakeWhile(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
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
	if err := ensureFunc(a0); err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	if a1.IsEmpty() {
		return a1, nil
	}
	apply := invoke(a0, 1, local, interp)
	var items []value.Value
	for _, v := range a1.(*value.List).Items {
		r, err := apply(v)
		if err != nil {
			return nil, err
		}
		if !r.Bool() {
			break
		}
		items = append(items, v)
	}
	return &value.List{Items: items}, nil
}

func biDropWhile(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
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
	if err := ensureFunc(a0); err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	if a1.IsEmpty() {
		return a1, nil
	}
	apply := invoke(a0, 1, local, interp)
	var items []value.Value
	dropping := true
	for _, v := range a1.(*value.List).Items {
		if dropping {
			r, err := apply(v)
			if err != nil {
				return nil, err
			}
			if r.Bool() {
				continue
			}
			dropping = false
		}
		items = append(items, v)
	}
	return &value.List{Items: items}, nil
}

func biRepeat(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 3); err != nil {
		return nil, err
	}
	a0, err := evalArg(call, 1, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureAtom(a0); err != nil {
		return nil, err
	}
	a1, err := evalArg(call, 2, local, interp)
	if err != nil {
		return nil, err
	}
	count := int(a0.Float())
	var items []value.Value
	for i := 0; i < count; i++ {
		items = append(items, a1)
	}
	return &value.List{Items: items}, nil
}

func biFoldl1(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
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
	if err := ensureFunc(a0); err != nil {
		return nil, err
	}
	if err := ensureNotEmpty(a1); err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	items := a1.(*value.List).Items
	if len(items) == 1 {
		return items[0], nil
	}
	apply := invoke(a0, 2, local, interp)
	accum, err := apply(items[0], items[1])
	if err != nil {
		return nil, err
	}
	for i := 2; i < len(items); i++ {
		accum, err = apply(accum, items[i])
		if err != nil {
			return nil, err
		}
	}
	return accum, nil
}

func biFoldl(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 4); err != nil {
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
	a2, err := evalArg(call, 3, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureFunc(a0); err != nil {
		return nil, err
	}
	if err := ensureList(a2); err != nil {
		return nil, err
	}
	if a2.IsEmpty() {
		return a1, nil
	}
	items := a2.(*value.List).Items
	apply := invoke(a0, 2, local, interp)
	accum, err := apply(a1, items[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(items); i++ {
		accum, err = apply(accum, items[i])
		if err != nil {
			return nil, err
		}
	}
	return accum, nil
}

func biFoldr(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 4); err != nil {
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
	a2, err := evalArg(call, 3, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureFunc(a0); err != nil {
		return nil, err
	}
	if err := ensureList(a2); err != nil {
		return nil, err
	}
	if a2.IsEmpty() {
		return a1, nil
	}
	items := a2.(*value.List).Items
	apply := invoke(a0, 2, local, interp)
	count := len(items)
	accum, err := apply(items[count-1], a1)
	if err != nil {
		return nil, err
	}
	for i := count - 2; i >= 0; i-- {
		accum, err = apply(items[i], accum)
		if err != nil {
			return nil, err
		}
	}
	return accum, nil
}

func biFoldr1(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
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
	if err := ensureFunc(a0); err != nil {
		return nil, err
	}
	if err := ensureNotEmpty(a1); err != nil {
		return nil, err
	}
	if err := ensureList(a1); err != nil {
		return nil, err
	}
	items := a1.(*value.List).Items
	count := len(items)
	if count == 1 {
		return items[0], nil
	}
	apply := invoke(a0, 2, local, interp)
	accum, err := apply(items[count-2], items[count-1])
	if err != nil {
		return nil, err
	}
	for i := count - 3; i >= 0; i-- {
		accum, err = apply(items[i], accum)
		if err != nil {
			return nil, err
		}
	}
	return accum, nil
}
