package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yekhlakov/eli-go/internal/value"
)

func numList(vals ...string) *value.List {
	items := make([]value.Value, len(vals))
	for i, v := range vals {
		items[i] = value.NewAtom(v)
	}
	return &value.List{Items: items}
}

// incFn builds the UserFunc equivalent of `(fn x (+ x 1))`, using the
// real "+" builtin so invoke()'s reused call list exercises a genuine
// builtin dispatch, not a stub.
func incFn() *value.UserFunc {
	return &value.UserFunc{
		Params: []string{"x"},
		Body:   value.NewList(&value.BuiltinFunc{Name: "+", Fn: lib()["+"]}, value.NewAtom("x"), value.NewAtom("1")),
	}
}

func TestLengthConcatReverse(t *testing.T) {
	interp := newFakeInterp()
	xs := numList("1", "2", "3")

	lenCall := value.NewList(value.NewAtom("length"), xs)
	v, err := biLength(lenCall, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "3", v.Print())

	revCall := value.NewList(value.NewAtom("reverse"), xs)
	v, err = biReverse(revCall, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(3 2 1)", v.Print())

	concatCall := value.NewList(value.NewAtom("concat"), xs, numList("4", "5"))
	v, err = biConcat(concatCall, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(1 2 3 4 5)", v.Print())
}

func TestIota(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("iota"), value.NewAtom("4"))
	v, err := biIota(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(0 1 2 3)", v.Print())
}

func TestTakeBeyondLengthReturnsWholeList(t *testing.T) {
	interp := newFakeInterp()
	xs := numList("1", "2", "3")
	call := value.NewList(value.NewAtom("take"), value.NewAtom("10"), xs)
	v, err := biTake(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(1 2 3)", v.Print())
}

func TestDropBeyondLengthReturnsEmpty(t *testing.T) {
	interp := newFakeInterp()
	xs := numList("1", "2", "3")
	call := value.NewList(value.NewAtom("drop"), value.NewAtom("10"), xs)
	v, err := biDrop(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "()", v.Print())
}

func TestMapAppliesUserFuncToEachElement(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("map"), incFn(), numList("1", "2", "3"))
	v, err := biMap(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(2 3 4)", v.Print())
}

func TestMapOverEmptyListReturnsEmptyList(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("map"), incFn(), value.NewEmptyList())
	v, err := biMap(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func isEven() *value.UserFunc {
	return &value.UserFunc{
		Params: []string{"x"},
		Body: value.NewList(&value.BuiltinFunc{Name: "=", Fn: lib()["="]},
			value.NewList(&value.BuiltinFunc{Name: "%", Fn: lib()["%"]}, value.NewAtom("x"), value.NewAtom("2")),
			value.NewAtom("0")),
	}
}

func TestFilterKeepsMatchingElements(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("filter"), isEven(), numList("1", "2", "3", "4"))
	v, err := biFilter(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(2 4)", v.Print())
}

func addFn() *value.UserFunc {
	return &value.UserFunc{
		Params: []string{"a", "b"},
		Body:   value.NewList(&value.BuiltinFunc{Name: "+", Fn: lib()["+"]}, value.NewAtom("a"), value.NewAtom("b")),
	}
}

func TestZipWithCombinesPairwise(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("zipWith"), addFn(), numList("1", "2", "3"), numList("10", "20"))
	v, err := biZipWith(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(11 22)", v.Print())
}

func TestTakeWhileStopsAtFirstFalse(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("takeWhile"), isEven(), numList("2", "4", "5", "6"))
	v, err := biTakeWhile(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(2 4)", v.Print())
}

func TestDropWhileDropsUntilFirstFalse(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("dropWhile"), isEven(), numList("2", "4", "5", "6"))
	v, err := biDropWhile(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(5 6)", v.Print())
}

func TestRepeat(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("repeat"), value.NewAtom("3"), value.NewAtom("x"))
	v, err := biRepeat(call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "(x x x)", v.Print())
}

func TestFoldl1AndFoldr1(t *testing.T) {
	interp := newFakeInterp()

	l1Call := value.NewList(value.NewAtom("foldl1"), addFn(), numList("1", "2", "3", "4"))
	v, err := biFoldl1(l1Call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "10", v.Print())

	r1Call := value.NewList(value.NewAtom("foldr1"), addFn(), numList("1", "2", "3", "4"))
	v, err = biFoldr1(r1Call, value.Local{}, interp)
	assert.NoError(t, err)
	assert.Equal(t, "10", v.Print())
}

func TestFoldl1OnEmptyListIsInvalidArgument(t *testing.T) {
	interp := newFakeInterp()
	call := value.NewList(value.NewAtom("foldl1"), addFn(), value.NewEmptyList())
	_, err := biFoldl1(call, value.Local{}, interp)
	assert.Error(t, err)
}

func TestFoldlAndFoldrAgreeForAssociativeOp(t *testing.T) {
	interp := newFakeInterp()

	lCall := value.NewList(value.NewAtom("foldl"), addFn(), value.NewAtom("0"), numList("1", "2", "3", "4"))
	l, err := biFoldl(lCall, value.Local{}, interp)
	assert.NoError(t, err)

	rCall := value.NewList(value.NewAtom("foldr"), addFn(), value.NewAtom("0"), numList("1", "2", "3", "4"))
	r, err := biFoldr(rCall, value.Local{}, interp)
	assert.NoError(t, err)

	assert.Equal(t, l.Print(), r.Print())
}
