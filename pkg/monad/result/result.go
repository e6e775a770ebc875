package result

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monad"
)

// Result holds either a value or an error, never both.
// The zero value is an Err with a nil error; construct through Ok/Err/Of.
type Result[T any] struct {
	value T
	err   error
	isOk  bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{
		value: value,
		isOk:  true,
	}
}

// Err panics when err is nil: an error variant without an error is a
// construction misuse, not a representable state.
func Err[T any](err error) Result[T] {
	if monad.IsNil(err) {
		panic("result: Err called with nil error")
	}
	return Result[T]{
		err:  err,
		isOk: false,
	}
}

// Of lifts a conventional (value, error) pair into a Result.
func Of[T any](value T, err error) Result[T] {
	if monad.IsNil(err) {
		return Ok(value)
	}
	return Err[T](err)
}

func (r Result[T]) IsOk() bool {
	return r.isOk
}

func (r Result[T]) IsErr() bool {
	return !r.isOk
}

// Get returns the value and whether the result is Ok.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.isOk
}

// MustGet returns the value or panics when the result is an Err.
func (r Result[T]) MustGet() T {
	if !r.isOk {
		panic(fmt.Sprintf("result: MustGet on %s", r))
	}
	return r.value
}

// MustErr returns the error or panics when the result is Ok.
func (r Result[T]) MustErr() error {
	if r.isOk {
		panic(fmt.Sprintf("result: MustErr on %s", r))
	}
	return r.err
}

// Error returns the error for an Err result and nil for an Ok result.
func (r Result[T]) Error() error {
	return r.err
}

// OrElse returns the value for an Ok result, fallback otherwise.
func (r Result[T]) OrElse(fallback T) T {
	if r.isOk {
		return r.value
	}
	return fallback
}

// OrZero returns the value for an Ok result, the zero value otherwise.
func (r Result[T]) OrZero() T {
	return r.value
}

// Match eliminates the result through exactly one of the two handlers.
func (r Result[T]) Match(onOk func(value T), onErr func(err error)) {
	if r.isOk {
		onOk(r.value)
	} else {
		onErr(r.err)
	}
}

func (r Result[T]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
