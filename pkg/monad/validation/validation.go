package validation

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monad/result"
)

// Validation accumulates errors across independent checks. A container is
// either Valid with a value or Invalid with one or more errors in the order
// they were recorded. The zero value is not meaningful; construct through
// Valid/Invalid.
type Validation[T, E any] struct {
	value T
	errs  []E
	valid bool
}

func Valid[T, E any](value T) Validation[T, E] {
	return Validation[T, E]{value: value, valid: true}
}

// Invalid panics when called with no errors: an Invalid without errors is a
// construction misuse, not a representable state.
func Invalid[T, E any](errs ...E) Validation[T, E] {
	if len(errs) == 0 {
		panic("validation: Invalid called with no errors")
	}
	own := make([]E, len(errs))
	copy(own, errs)
	return Validation[T, E]{errs: own}
}

func (v Validation[T, E]) IsValid() bool {
	return v.valid
}

func (v Validation[T, E]) IsInvalid() bool {
	return !v.valid
}

func (v Validation[T, E]) Get() (T, bool) {
	return v.value, v.valid
}

// MustGet returns the value or panics when the validation is Invalid.
func (v Validation[T, E]) MustGet() T {
	if !v.valid {
		panic(fmt.Sprintf("validation: MustGet on %s", v))
	}
	return v.value
}

func (v Validation[T, E]) OrElse(fallback T) T {
	if v.valid {
		return v.value
	}
	return fallback
}

// Errors returns the recorded errors in insertion order, empty for Valid.
func (v Validation[T, E]) Errors() []E {
	errs := make([]E, len(v.errs))
	copy(errs, v.errs)
	return errs
}

func (v Validation[T, E]) Match(onValid func(value T), onInvalid func(errs []E)) {
	if v.valid {
		onValid(v.value)
	} else {
		onInvalid(v.Errors())
	}
}

func (v Validation[T, E]) String() string {
	if v.valid {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	return fmt.Sprintf("Invalid(%v)", v.errs)
}

func Map[T, T2, E any](v Validation[T, E], onValid func(value T) T2) Validation[T2, E] {
	if v.valid {
		return Valid[T2, E](onValid(v.value))
	}
	return Validation[T2, E]{errs: v.errs}
}

func MapErrors[T, E, E2 any](v Validation[T, E], onErr func(err E) E2) Validation[T, E2] {
	if v.valid {
		return Valid[T, E2](v.value)
	}
	errs := make([]E2, len(v.errs))
	for i, e := range v.errs {
		errs[i] = onErr(e)
	}
	return Validation[T, E2]{errs: errs}
}

// Bind chains a validation-returning step. Bind is fail-fast: an Invalid
// input passes through and the step never runs, so errors do not accumulate
// across a Bind chain. Use Combine2/Combine3 or Sequence to accumulate.
func Bind[T, T2, E any](v Validation[T, E], onValid func(value T) Validation[T2, E]) Validation[T2, E] {
	if v.valid {
		return onValid(v.value)
	}
	return Validation[T2, E]{errs: v.errs}
}

// Combine2 merges two independent validations, accumulating the errors of
// both sides in argument order.
func Combine2[A, B, C, E any](va Validation[A, E], vb Validation[B, E], merge func(a A, b B) C) Validation[C, E] {
	if va.valid && vb.valid {
		return Valid[C, E](merge(va.value, vb.value))
	}
	errs := make([]E, 0, len(va.errs)+len(vb.errs))
	errs = append(errs, va.errs...)
	errs = append(errs, vb.errs...)
	return Validation[C, E]{errs: errs}
}

// Combine3 merges three independent validations, accumulating the errors of
// every side in argument order.
func Combine3[A, B, C, D, E any](va Validation[A, E], vb Validation[B, E], vc Validation[C, E],
	merge func(a A, b B, c C) D) Validation[D, E] {

	if va.valid && vb.valid && vc.valid {
		return Valid[D, E](merge(va.value, vb.value, vc.value))
	}
	errs := make([]E, 0, len(va.errs)+len(vb.errs)+len(vc.errs))
	errs = append(errs, va.errs...)
	errs = append(errs, vb.errs...)
	errs = append(errs, vc.errs...)
	return Validation[D, E]{errs: errs}
}

// ToResult reduces an Invalid's errors to a single error through join.
func ToResult[T, E any](v Validation[T, E], join func(errs []E) error) result.Result[T] {
	if v.valid {
		return result.Ok(v.value)
	}
	return result.Err[T](join(v.Errors()))
}

// FromResult turns Ok into Valid and Err into a single-error Invalid.
func FromResult[T any](r result.Result[T]) Validation[T, error] {
	if r.IsOk() {
		return Valid[T, error](r.MustGet())
	}
	return Invalid[T, error](r.Error())
}
