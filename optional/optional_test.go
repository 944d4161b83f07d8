package optional

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsSomeIsNone(t *testing.T) {
	x := Some(2)
	require.True(t, x.IsSome())
	require.False(t, x.IsNone())

	y := None[uint32]()
	require.False(t, y.IsSome())
	require.True(t, y.IsNone())
}

func TestZeroValueIsNone(t *testing.T) {
	var x Optional[string]
	require.True(t, x.IsNone())
}

func TestGet(t *testing.T) {
	v, ok := Some("air").Get()
	require.True(t, ok)
	require.Equal(t, "air", v)

	_, ok = None[string]().Get()
	require.False(t, ok)
}

func TestMap(t *testing.T) {
	maybeSomeString := Some("Hello, Map Test!")
	maybeSomeLen := Map(maybeSomeString, func(s string) int { return len(s) })
	require.Equal(t, Some(16), maybeSomeLen)
}

func TestMapOnNoneIgnoresFunc(t *testing.T) {
	out := Map(None[int](), func(int) int {
		t.Fatal("func must not be called on None")
		return 0
	})
	require.True(t, out.IsNone())
}

func TestMapOr(t *testing.T) {
	x := Some("foo")
	require.Equal(t, 3, MapOr(x, 42, func(v string) int { return len(v) }))

	y := None[string]()
	require.Equal(t, 42, MapOr(y, 42, func(v string) int { return len(v) }))
}

func TestMapOrElse(t *testing.T) {
	k := 21
	calls := 0
	def := func() int {
		calls++
		return 2 * k
	}

	x := Some("foo")
	require.Equal(t, 3, MapOrElse(x, def, func(v string) int { return len(v) }))
	require.Equal(t, 0, calls, "default must stay unevaluated on Some")

	y := None[string]()
	require.Equal(t, 42, MapOrElse(y, def, func(v string) int { return len(v) }))
	require.Equal(t, 1, calls)
}

func TestUnwrap(t *testing.T) {
	require.Equal(t, "air", Some("air").Unwrap())
}

func TestUnwrapOnNonePanics(t *testing.T) {
	require.PanicsWithValue(t, "called `Optional.Unwrap()` on a None value", func() {
		None[string]().Unwrap()
	})
}

func TestExpect(t *testing.T) {
	require.Equal(t, "air", Some("air").Expect("the world is ending"))
	require.PanicsWithValue(t, "the world is ending", func() {
		None[string]().Expect("the world is ending")
	})
}

func TestUnwrapOr(t *testing.T) {
	require.Equal(t, "car", Some("car").UnwrapOr("bike"))
	require.Equal(t, "bike", None[string]().UnwrapOr("bike"))
}

func TestUnwrapOrElse(t *testing.T) {
	k := 10
	require.Equal(t, 4, Some(4).UnwrapOrElse(func() int {
		t.Fatal("func must not be called on Some")
		return 0
	}))
	require.Equal(t, 20, None[int]().UnwrapOrElse(func() int { return 2 * k }))
}

func TestOkOr(t *testing.T) {
	x := OkOr(Some("foo"), 0)
	require.True(t, x.IsOk())
	require.Equal(t, "foo", x.Unwrap())

	y := OkOr(None[string](), 0)
	require.True(t, y.IsErr())
	require.Equal(t, 0, y.UnwrapErr())
}

func TestOkOrElse(t *testing.T) {
	calls := 0
	producer := func() int {
		calls++
		return -1
	}

	x := OkOrElse(Some("foo"), producer)
	require.True(t, x.IsOk())
	require.Equal(t, "foo", x.Unwrap())
	require.Equal(t, 0, calls)

	y := OkOrElse(None[string](), producer)
	require.True(t, y.IsErr())
	require.Equal(t, -1, y.UnwrapErr())
	require.Equal(t, 1, calls)
}

func TestAnd(t *testing.T) {
	require.Equal(t, None[string](), And(Some(2), None[string]()))
	require.Equal(t, None[string](), And(None[uint32](), Some("foo")))
	require.Equal(t, Some("foo"), And(Some(2), Some("foo")))
	require.Equal(t, None[string](), And(None[uint32](), None[string]()))
}

func TestAndThen(t *testing.T) {
	sq := func(x uint32) Optional[uint32] { return Some(x * x) }
	nope := func(uint32) Optional[uint32] { return None[uint32]() }

	require.Equal(t, Some(uint32(16)), AndThen(AndThen(Some(uint32(2)), sq), sq))
	require.Equal(t, None[uint32](), AndThen(AndThen(Some(uint32(2)), sq), nope))
	require.Equal(t, None[uint32](), AndThen(AndThen(Some(uint32(2)), nope), sq))
	require.Equal(t, None[uint32](), AndThen(AndThen(None[uint32](), sq), sq))
}

func TestAndThenAssociativity(t *testing.T) {
	f := func(x int) Optional[int] { return Some(x + 1) }
	g := func(x int) Optional[int] { return Some(x * 3) }

	for _, x := range []Optional[int]{Some(7), None[int]()} {
		left := AndThen(AndThen(x, f), g)
		right := AndThen(x, func(v int) Optional[int] { return AndThen(f(v), g) })
		require.Equal(t, left, right)
	}
}

func TestFilter(t *testing.T) {
	isEven := func(n int) bool { return n%2 == 0 }

	require.Equal(t, None[int](), None[int]().Filter(isEven))
	require.Equal(t, None[int](), Some(3).Filter(isEven))
	require.Equal(t, Some(4), Some(4).Filter(isEven))
	require.Equal(t, Some(2), Some(2).Filter(isEven))
}

func TestOr(t *testing.T) {
	require.Equal(t, Some(2), Some(2).Or(None[int]()))
	require.Equal(t, Some(100), None[int]().Or(Some(100)))
	require.Equal(t, Some(2), Some(2).Or(Some(100)))
	require.Equal(t, None[int](), None[int]().Or(None[int]()))
}

func TestOrElse(t *testing.T) {
	nobody := func() Optional[string] { return None[string]() }
	vikings := func() Optional[string] { return Some("vikings") }

	require.Equal(t, Some("barbarians"), Some("barbarians").OrElse(vikings))
	require.Equal(t, Some("vikings"), None[string]().OrElse(vikings))
	require.Equal(t, None[string](), None[string]().OrElse(nobody))
}

func TestOrElseLazy(t *testing.T) {
	calls := 0
	alt := func() Optional[int] {
		calls++
		return Some(9)
	}

	require.Equal(t, Some(1), Some(1).OrElse(alt))
	require.Equal(t, 0, calls, "alternative must stay unevaluated on Some")

	require.Equal(t, Some(9), None[int]().OrElse(alt))
	require.Equal(t, 1, calls)
}

func TestXor(t *testing.T) {
	require.Equal(t, Some(2), Some(2).Xor(None[int]()))
	require.Equal(t, Some(2), None[int]().Xor(Some(2)))
	require.Equal(t, None[int](), Some(2).Xor(Some(2)))
	require.Equal(t, None[int](), None[int]().Xor(None[int]()))
}

func TestAsRef(t *testing.T) {
	text := Some("Hello, Ref Test!")
	length := Map(text.AsRef(), func(s *string) int { return len(*s) })
	require.Equal(t, Some(16), length)
	// the original is still usable
	require.Equal(t, "Hello, Ref Test!", text.Unwrap())

	n := None[string]()
	require.True(t, n.AsRef().IsNone())
}

func TestAsMut(t *testing.T) {
	x := Some(2)
	if p, ok := x.AsMut().Get(); ok {
		*p = 42
	}
	require.Equal(t, 42, x.Unwrap())

	n := None[int]()
	require.True(t, n.AsMut().IsNone())
}

func TestString(t *testing.T) {
	require.Equal(t, "Some(2)", Some(2).String())
	require.Equal(t, "None", None[int]().String())
}
