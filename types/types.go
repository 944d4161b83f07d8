package types

type (
	Predicate[T any] func(T) bool

	Function[T, R any] func(T) R

	UnaryOperator[T any] func(T) T

	Consumer[T any] func(T)

	Supplier[T any] func() T

	IntFunction[T any] func(T) int

	Comparator[T any] func(e1, e2 T) int

	BinaryOperator[T any] func(e1, e2 T) T
)
