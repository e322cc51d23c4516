package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yekhlakov/eli-go/internal/host"
	"github.com/yekhlakov/eli-go/internal/value"
)

// fakeInterp is a minimal value.Interp good enough to drive a single
// builtin in isolation, without pulling in the root Interpreter and
// risking an import cycle from this package back up to it. Host calls
// delegate to a real host.Bridge so hostbridge_test.go can exercise the
// actual get/set/call semantics, not a stub.
type fakeInterp struct {
	globals map[string]value.Value
	host    *host.Bridge
}

func newFakeInterp() *fakeInterp {
	return &fakeInterp{globals: map[string]value.Value{}, host: host.New()}
}

func (f *fakeInterp) Eval(tree value.Value, local value.Local) (value.Value, error) {
	if tree.IsFunc() || tree.IsEmpty() {
		return tree, nil
	}
	if a, ok := tree.(*value.Atom); ok {
		if v, ok := local[a.Raw]; ok {
			return v, nil
		}
		if v, ok := f.globals[a.Raw]; ok {
			return v, nil
		}
		return tree, nil
	}
	if l, ok := tree.(*value.List); ok && len(l.Items) > 0 {
		head, err := f.Eval(l.Items[0], local)
		if err != nil {
			return nil, err
		}
		l.Items[0] = head
		switch fn := head.(type) {
		case *value.BuiltinFunc:
			return fn.Fn(l, local, f)
		case *value.UserFunc:
			return f.applyUserFunc(fn, l, local)
		}
	}
	return tree, nil
}

func (f *fakeInterp) applyUserFunc(fn *value.UserFunc, call *value.List, local value.Local) (value.Value, error) {
	count := len(fn.Params)
	if len(call.Items) < count+1 {
		return nil, &value.InsufficientArgsError{Call: call}
	}
	args := make([]value.Value, count)
	for i := 0; i < count; i++ {
		v, err := f.Eval(call.Items[1+i], local)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return f.Eval(fn.Body, local.Extend(fn.Params, args))
}
func (f *fakeInterp) GlobalGet(name string) (value.Value, bool) { v, ok := f.globals[name]; return v, ok }
func (f *fakeInterp) GlobalSet(name string, v value.Value)      { f.globals[name] = v }
func (f *fakeInterp) HostGet(name string) (value.Value, error) { return f.host.Get(name) }
func (f *fakeInterp) HostSet(name string, v value.Value) error { return f.host.Set(name, v) }
func (f *fakeInterp) HostCall(name string, args []string) ([]string, error) {
	return f.host.Call(name, args)
}

func TestSeqReturnsLastEvaluatedArg(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("seq"), value.NewAtom("1"), value.NewAtom("2"), value.NewAtom("3"))
	v, err := biSeq(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "3", v.Print())
}

func TestValQuotesArgsWithoutEvaluating(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("val"), value.NewList(value.NewAtom("+"), value.NewAtom("1"), value.NewAtom("2")))
	v, err := biVal(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "((+ 1 2))", v.Print())
}

func TestIfFallsBackToDefaultWhenNoPredicateHolds(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("if"),
		value.NewAtom("0"), value.NewAtom("1"),
		value.NewAtom("0"), value.NewAtom("2"),
		value.NewAtom("666"))
	v, err := biIf(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "666", v.Print())
}

func TestIfRequiresDefault(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("if"), value.NewAtom("1"), value.NewAtom("2"))
	_, err := biIf(call, value.Local{}, interp)
	assert.Error(t, err)
}

func TestEmptyCheckBuiltinOnEmptyList(t *testing.T) {
	interp := newFakeInterp()
	check := typeCheck(value.Value.IsEmpty)
	call := value.NewList(value.NewAtom("empty"), value.NewEmptyList())
	v, err := check(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "1", v.Print())
}
