package builtins

import "github.com/yekhlakov/eli-go/internal/value"

// registerLists installs the three structural list primitives: head,
// tail, cons.
func registerLists(lib map[string]value.BuiltinFn) {
	lib["head"] = biHead
	lib["tail"] = biTail
	lib["cons"] = biCons
}

func biHead(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 2); err != nil {
		return nil, err
	}
	src, err := evalArg(call, 1, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureList(src); err != nil {
		return nil, err
	}
	if err := ensureNotEmpty(src); err != nil {
		return nil, err
	}
	return src.(*value.List).Items[0], nil
}

func biTail(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 2); err != nil {
		return nil, err
	}
	src, err := evalArg(call, 1, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureList(src); err != nil {
		return nil, err
	}
	if src.IsEmpty() {
		return value.NewEmptyList(), nil
	}
	items := src.(*value.List).Items
	rest := make([]value.Value, len(items)-1)
	copy(rest, items[1:])
	return &value.List{Items: rest}, nil
}

func biCons(call *value.List, local value.Local, interp value.Interp) (value.Value, error) {
	if err := checkArgCount(call, 3); err != nil {
		return nil, err
	}
	head, err := evalArg(call, 1, local, interp)
	if err != nil {
		return nil, err
	}
	tail, err := evalArg(call, 2, local, interp)
	if err != nil {
		return nil, err
	}
	if err := ensureList(tail); err != nil {
		return nil, err
	}
	tailItems := tail.(*value.List).Items
	items := make([]value.Value, 0, len(tailItems)+1)
	items = append(items, head)
	items = append(items, tailItems...)
	return &value.List{Items: items}, nil
}
