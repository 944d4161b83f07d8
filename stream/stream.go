package stream

import (
	"github.com/kabu1204/go-optional/optional"
	"github.com/kabu1204/go-optional/types"
)

// Stream is the typed facade over a lazy pipeline of T elements.
// Intermediate operations build up the stage chain; nothing runs until a
// termination pulls the source iterator. Map keeps the element type; use
// the package-level MapTo/MapField for type-changing transforms.
type Stream[T any] interface {
	// stateless (nothing to do with elements order)
	Filter(p types.Predicate[T]) Stream[T]
	Map(f types.UnaryOperator[T]) Stream[T]
	FlatMap(f func(T) Stream[T]) Stream[T]
	Peek(f types.Consumer[T]) Stream[T]

	Parallel(n int) Stream[T]

	// stateful
	Distinct(hash types.IntFunction[T]) Stream[T]                // custom hash, therefore the elements order may affect result
	Sorted(cmp types.Comparator[T], keepParallel bool) Stream[T] // non-stable
	Limit(n int64) Stream[T]                                     // first n elems
	Skip(n int64) Stream[T]                                      // skip first n elems

	ForEach(f types.Consumer[T])
	ToSlice() []T
	AllMatch(p types.Predicate[T]) bool
	NoneMatch(p types.Predicate[T]) bool
	AnyMatch(p types.Predicate[T]) bool
	Reduce(acc types.BinaryOperator[T]) optional.Optional[T]
	ReduceFrom(initValue T, acc types.BinaryOperator[T]) T
	FindFirst() optional.Optional[T]
	FindFirstMatch(p types.Predicate[T]) optional.Optional[T]
	Count() int64

	tail() *stage
}

type stream[T any] struct {
	last *stage
}

func wrap[T any](st *stage) Stream[T] {
	return &stream[T]{last: st}
}

func (s *stream[T]) tail() *stage { return s.last }

func (s *stream[T]) Filter(p types.Predicate[T]) Stream[T] {
	return wrap[T](s.last.filter(func(e any) bool { return p(e.(T)) }))
}

func (s *stream[T]) Map(f types.UnaryOperator[T]) Stream[T] {
	return wrap[T](s.last.mapOp(func(e any) any { return f(e.(T)) }))
}

func (s *stream[T]) FlatMap(f func(T) Stream[T]) Stream[T] {
	return wrap[T](s.last.flatMap(func(e any) *stage { return f(e.(T)).tail() }))
}

func (s *stream[T]) Peek(f types.Consumer[T]) Stream[T] {
	return wrap[T](s.last.peek(func(e any) { f(e.(T)) }))
}

func (s *stream[T]) Parallel(n int) Stream[T] {
	return wrap[T](s.last.parallelN(n))
}

func (s *stream[T]) Distinct(hash types.IntFunction[T]) Stream[T] {
	return wrap[T](s.last.distinct(func(e any) int { return hash(e.(T)) }))
}

func (s *stream[T]) Sorted(cmp types.Comparator[T], keepParallel bool) Stream[T] {
	return wrap[T](s.last.sorted(func(e1, e2 any) int { return cmp(e1.(T), e2.(T)) }, keepParallel))
}

func (s *stream[T]) Limit(n int64) Stream[T] {
	return wrap[T](s.last.limit(n))
}

func (s *stream[T]) Skip(n int64) Stream[T] {
	return wrap[T](s.last.skip(n))
}

func (s *stream[T]) ForEach(f types.Consumer[T]) {
	s.last.forEach(func(e any) { f(e.(T)) })
}

func (s *stream[T]) ToSlice() []T {
	elems := s.last.toSlice()
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		out = append(out, e.(T))
	}
	return out
}

func (s *stream[T]) AllMatch(p types.Predicate[T]) bool {
	return s.last.allMatch(func(e any) bool { return p(e.(T)) })
}

func (s *stream[T]) NoneMatch(p types.Predicate[T]) bool {
	return s.last.noneMatch(func(e any) bool { return p(e.(T)) })
}

func (s *stream[T]) AnyMatch(p types.Predicate[T]) bool {
	return s.last.anyMatch(func(e any) bool { return p(e.(T)) })
}

func (s *stream[T]) Reduce(acc types.BinaryOperator[T]) optional.Optional[T] {
	if v, ok := s.last.reduce(func(e1, e2 any) any { return acc(e1.(T), e2.(T)) }); ok {
		return optional.Some(v.(T))
	}
	return optional.None[T]()
}

func (s *stream[T]) ReduceFrom(initValue T, acc types.BinaryOperator[T]) T {
	return s.last.reduceFrom(initValue, func(e1, e2 any) any { return acc(e1.(T), e2.(T)) }).(T)
}

func (s *stream[T]) FindFirst() optional.Optional[T] {
	if v, ok := s.last.findFirst(); ok {
		return optional.Some(v.(T))
	}
	return optional.None[T]()
}

func (s *stream[T]) FindFirstMatch(p types.Predicate[T]) optional.Optional[T] {
	if v, ok := s.last.findFirstMatch(func(e any) bool { return p(e.(T)) }); ok {
		return optional.Some(v.(T))
	}
	return optional.None[T]()
}

func (s *stream[T]) Count() int64 {
	return s.last.count()
}
