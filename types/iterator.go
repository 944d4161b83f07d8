package types

import "github.com/kabu1204/go-optional/optional"

// Iterator is the minimal pull contract for a lazy sequence: Next yields
// the next element as Some, or None once the sequence is exhausted.
type Iterator[T any] interface {
	Next() optional.Optional[T]
}

// Sized is an optional capability of an Iterator.
// Len reports the number of remaining elements, or -1 when unknown
// (e.g. a channel-backed sequence).
type Sized interface {
	Len() int
}

type SliceIterator[T any] struct {
	index int
	slice []T
}

func NewSliceIterator[T any](s []T) *SliceIterator[T] {
	return &SliceIterator[T]{
		index: -1,
		slice: s,
	}
}

func (it *SliceIterator[T]) hasNext() bool {
	return it.index < len(it.slice)-1
}

func (it *SliceIterator[T]) Next() optional.Optional[T] {
	if it.hasNext() {
		it.index++
		return optional.Some(it.slice[it.index])
	}
	return optional.None[T]()
}

func (it *SliceIterator[T]) Len() int {
	return len(it.slice)
}

// At returns a pointer to the i-th element of the backing slice.
func (it *SliceIterator[T]) At(i int) *T {
	return &it.slice[i]
}

func (it *SliceIterator[T]) Seek(i int) bool {
	if i < 0 || i >= len(it.slice) {
		return false
	}
	it.index = i
	return true
}

type ChanIterator[T any] struct {
	ch <-chan T
}

func NewChanIterator[T any](ch <-chan T) *ChanIterator[T] {
	return &ChanIterator[T]{ch: ch}
}

func (it *ChanIterator[T]) Next() optional.Optional[T] {
	if v, ok := <-it.ch; ok {
		return optional.Some(v)
	}
	return optional.None[T]()
}

func (it *ChanIterator[T]) Len() int {
	return -1
}
