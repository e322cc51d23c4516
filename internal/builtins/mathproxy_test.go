package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yekhlakov/eli-go/internal/value"
)

func TestPowReversesArgumentOrder(t *testing.T) {
	interp := newFakeInterp()
	pow := lib()["pow"]
	// pow(a, b) computes b^a, so (pow 3 2) is 2^3 = 8.
	call := value.NewList(value.NewAtom("pow"), value.NewAtom("3"), value.NewAtom("2"))
	v, err := pow(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "8", v.Print())
}

func TestLogReversesArgumentOrder(t *testing.T) {
	interp := newFakeInterp()
	logFn := lib()["log"]
	// log(base, x) computes ln(x)/ln(base), so (log 2 8) is log base 2 of 8 = 3.
	call := value.NewList(value.NewAtom("log"), value.NewAtom("2"), value.NewAtom("8"))
	v, err := logFn(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "3", v.Print())
}

func TestSinCosReturnsPairedList(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("sinCos"), value.NewAtom("0"))
	v, err := biSinCos(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(0 1)", v.Print())
}

func TestSqrtOfNegativeIsNaN(t *testing.T) {
	interp := newFakeInterp()
	sqrt := lib()["sqrt"]
	call := value.NewList(value.NewAtom("sqrt"), value.NewAtom("-1"))
	v, err := sqrt(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "nan", v.Print())
}
