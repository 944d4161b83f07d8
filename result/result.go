package result

import "fmt"

// Result carries either a success value (Ok) or an error value (Err).
// The error side is a free type parameter so callers are not forced
// onto the builtin error interface.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

func (r Result[T, E]) IsOk() bool  { return r.ok }
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Get returns the success value and whether the result is Ok.
func (r Result[T, E]) Get() (T, bool) { return r.value, r.ok }

// GetErr returns the error value and whether the result is Err.
func (r Result[T, E]) GetErr() (E, bool) { return r.err, !r.ok }

// Unwrap returns the success value, panicking on Err.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic("called `Result.Unwrap()` on an Err value")
	}
	return r.value
}

// UnwrapErr returns the error value, panicking on Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("called `Result.UnwrapErr()` on an Ok value")
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Map applies f to the success value when Ok and leaves Err untouched.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f(r.value))
}
