package stream

import (
	"github.com/kabu1204/go-optional/types"
)

// From builds a stream over any lazy sequence. The drive loop pulls
// elements through the Iterator contract until it yields None.
func From[T any](it types.Iterator[T]) Stream[T] {
	src := &source{
		next: func() (any, bool) {
			if v, ok := it.Next().Get(); ok {
				return v, true
			}
			return nil, false
		},
		size: func() int {
			if sz, ok := it.(types.Sized); ok {
				return sz.Len()
			}
			return -1
		},
	}
	return wrap[T](&stage{
		src:     src,
		prev:    nil,
		wrapper: defaultWrapper,
		name:    "Source",
	})
}

func Of[T any](elems ...T) Stream[T] {
	return From[T](types.NewSliceIterator(elems))
}

func FromSlice[T any](s []T) Stream[T] {
	return From[T](types.NewSliceIterator(s))
}

func FromChan[T any](ch <-chan T) Stream[T] {
	return From[T](types.NewChanIterator(ch))
}

// MapTo transforms a Stream[T] into a Stream[U]. It lives at package level
// for the same reason as optional.Map: methods cannot add type parameters.
func MapTo[T, U any](s Stream[T], f types.Function[T, U]) Stream[U] {
	return wrap[U](s.tail().mapOp(func(e any) any { return f(e.(T)) }))
}

// MapField projects each struct (or struct pointer) element onto the field
// named by a dot-separated path. The element type is only known at runtime,
// so the result is a Stream[any].
func MapField[T any](s Stream[T], fieldPath string) Stream[any] {
	return wrap[any](s.tail().mapField(fieldPath))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
