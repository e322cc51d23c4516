package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yekhlakov/eli-go/internal/value"
)

func TestFnSkipsNonAtomParams(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("fn"),
		value.NewAtom("x"), value.NewEmptyList(), value.NewAtom("y"),
		value.NewAtom("body"))
	v, err := biFn(call, value.Local{}, interp)
	assert.NoError(t, err)
	fn := v.(*value.UserFunc)
	assert.Equal(t, []string{"x", "y"}, fn.Params)
	assert.Equal(t, "body", fn.Body.Print())
}

func TestLetBindingsAreVisibleInLaterBindingsAndBody(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("let"),
		value.NewAtom("x"), value.NewAtom("5"),
		value.NewAtom("y"), value.NewAtom("x"),
		value.NewAtom("y"))
	v, err := biLet(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "5", v.Print())
}

func TestLetDoesNotLeakIntoCallerScope(t *testing.T) {
	interp := newFakeInterp()
	caller := value.Local{}
	call := value.NewList(value.NewAtom("let"),
		value.NewAtom("x"), value.NewAtom("5"),
		value.NewAtom("x"))
	_, err := biLet(call, caller, interp)
	assert.NoError(t, err)
	_, bound := caller["x"]
	assert.False(t, bound)
}

func TestDefWritesToGlobalTable(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("def"), value.NewAtom("x"), value.NewAtom("41"))
	v, err := biDef(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.True(t, v.IsEmpty())

	got, ok := interp.GlobalGet("x")
	assert.True(t, ok)
	assert.Equal(t, "41", got.Print())
}
