package optional

import (
	"fmt"

	"github.com/kabu1204/go-optional/result"
)

// Optional holds zero or one value of type T.
// The zero value is None.
type Optional[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsSome() bool { return o.ok }
func (o Optional[T]) IsNone() bool { return !o.ok }

// Get returns the contained value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// AsRef returns an optional pointer into the receiver without consuming it.
// The pointer is read-only by convention and must not be retained past the
// lifetime of the receiver.
func (o *Optional[T]) AsRef() Optional[*T] {
	if !o.ok {
		return None[*T]()
	}
	return Some(&o.value)
}

// AsMut returns an optional pointer into the receiver for in-place mutation
// of the contained value. Same aliasing rule as AsRef.
func (o *Optional[T]) AsMut() Optional[*T] {
	if !o.ok {
		return None[*T]()
	}
	return Some(&o.value)
}

// Unwrap returns the contained value, panicking when None.
func (o Optional[T]) Unwrap() T {
	if !o.ok {
		panic("called `Optional.Unwrap()` on a None value")
	}
	return o.value
}

// Expect returns the contained value, panicking with msg when None.
func (o Optional[T]) Expect(msg string) T {
	if !o.ok {
		panic(msg)
	}
	return o.value
}

// UnwrapOr returns the contained value or def. def is evaluated by the
// caller regardless of the variant; use UnwrapOrElse for expensive defaults.
func (o Optional[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value or computes one from f.
// f is invoked only when None.
func (o Optional[T]) UnwrapOrElse(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}

// Filter keeps the value only when p holds for it.
func (o Optional[T]) Filter(p func(T) bool) Optional[T] {
	if o.ok && p(o.value) {
		return o
	}
	return None[T]()
}

// Or returns o when Some, otherwise other.
func (o Optional[T]) Or(other Optional[T]) Optional[T] {
	if o.ok {
		return o
	}
	return other
}

// OrElse returns o when Some, otherwise the result of f.
// f is invoked only when None.
func (o Optional[T]) OrElse(f func() Optional[T]) Optional[T] {
	if o.ok {
		return o
	}
	return f()
}

// Xor returns Some exactly when exactly one of o and other is Some.
func (o Optional[T]) Xor(other Optional[T]) Optional[T] {
	if o.ok && !other.ok {
		return o
	}
	if !o.ok && other.ok {
		return other
	}
	return None[T]()
}

func (o Optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Type-changing combinators live at package level: a Go method set cannot
// introduce new type parameters. Each one logically consumes its input;
// the returned optional supersedes it.

// Map transforms the contained value with f; None maps to None.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.value))
}

// MapOr applies f to the contained value or returns def.
// def is evaluated by the caller regardless of the variant.
func MapOr[T, U any](o Optional[T], def U, f func(T) U) U {
	if !o.ok {
		return def
	}
	return f(o.value)
}

// MapOrElse applies f to the contained value or computes a default from def.
// def is invoked only when None.
func MapOrElse[T, U any](o Optional[T], def func() U, f func(T) U) U {
	if !o.ok {
		return def()
	}
	return f(o.value)
}

// And returns other when o is Some, otherwise None.
func And[T, U any](o Optional[T], other Optional[U]) Optional[U] {
	if !o.ok {
		return None[U]()
	}
	return other
}

// AndThen applies f to the contained value and flattens the result.
// None short-circuits.
func AndThen[T, U any](o Optional[T], f func(T) Optional[U]) Optional[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// OkOr converts the optional into a result, using err for the None case.
// err is evaluated by the caller regardless of the variant.
func OkOr[T, E any](o Optional[T], err E) result.Result[T, E] {
	if !o.ok {
		return result.Err[T, E](err)
	}
	return result.Ok[T, E](o.value)
}

// OkOrElse converts the optional into a result, computing the error from f.
// f is invoked only when None.
func OkOrElse[T, E any](o Optional[T], f func() E) result.Result[T, E] {
	if !o.ok {
		return result.Err[T, E](f())
	}
	return result.Ok[T, E](o.value)
}
