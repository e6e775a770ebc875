package result

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monad"
)

// Sequence folds results into a single result holding every value in input
// order. It fails fast: the first Err wins and later elements are ignored.
// An empty input yields Ok of an empty slice.
func Sequence[T any](rs []Result[T]) Result[[]T] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsErr() {
			return Err[[]T](r.Error())
		}
		values = append(values, r.MustGet())
	}
	return Ok(values)
}

// Traverse maps each element through f and sequences the outcome. f is not
// invoked past the first element it fails on.
func Traverse[In, Out any](in []In, f func(in In) Result[Out]) Result[[]Out] {
	values := make([]Out, 0, len(in))
	for _, v := range in {
		r := f(v)
		if r.IsErr() {
			return Err[[]Out](r.Error())
		}
		values = append(values, r.MustGet())
	}
	return Ok(values)
}

// Partition splits results into the Ok values and the Err errors,
// keeping input order within each side.
func Partition[T any](rs []Result[T]) ([]T, []error) {
	values := make([]T, 0, len(rs))
	errs := make([]error, 0)
	for _, r := range rs {
		if r.IsOk() {
			values = append(values, r.MustGet())
		} else {
			errs = append(errs, r.Error())
		}
	}
	return values, errs
}

// CollectOk keeps the Ok values, dropping every Err.
func CollectOk[T any](rs []Result[T]) []T {
	values, _ := Partition(rs)
	return values
}

// CollectErr keeps the errors, dropping every Ok.
func CollectErr[T any](rs []Result[T]) []error {
	_, errs := Partition(rs)
	return errs
}

// FirstOk returns the first Ok result, or the first element when no Ok
// exists. An empty input has nothing to report and is an error.
func FirstOk[T any](rs []Result[T]) (Result[T], error) {
	if len(rs) == 0 {
		return Result[T]{}, fmt.Errorf("result: FirstOk: %w", monad.ErrEmptySequence)
	}
	for _, r := range rs {
		if r.IsOk() {
			return r, nil
		}
	}
	return rs[0], nil
}
