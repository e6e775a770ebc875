package option

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monad"
	"github.com/ib-77/monads/pkg/monad/result"
)

// Option holds a value or nothing. The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](value T) Option[T] {
	return Option[T]{
		value:   value,
		present: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Of lifts a conventional (value, ok) pair into an Option.
func Of[T any](value T, ok bool) Option[T] {
	if ok {
		return Some(value)
	}
	return None[T]()
}

// FromPtr is None for a nil pointer, Some of the pointed-to value otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the value or panics when the option is None.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic(fmt.Sprintf("option: MustGet on %s", o))
	}
	return o.value
}

func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Option[T]) OrZero() T {
	return o.value
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) Match(onSome func(value T), onNone func()) {
	if o.present {
		onSome(o.value)
	} else {
		onNone()
	}
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// ToResult turns Some into Ok and None into Err with the given error.
func ToResult[T any](o Option[T], err error) result.Result[T] {
	if o.present {
		return result.Ok(o.value)
	}
	return result.Err[T](err)
}

// OfResult keeps the value of an Ok result and drops the error of an Err.
func OfResult[T any](r result.Result[T]) Option[T] {
	return Of(r.Get())
}

func Map[In, Out any](o Option[In], onSome func(value In) Out) Option[Out] {
	if o.IsPresent() {
		return Some(onSome(o.MustGet()))
	}
	return None[Out]()
}

// Bind chains an option-returning step, short-circuiting on None.
func Bind[In, Out any](o Option[In], onSome func(value In) Option[Out]) Option[Out] {
	if o.IsPresent() {
		return onSome(o.MustGet())
	}
	return None[Out]()
}

// Filter keeps a Some only while keep holds.
func Filter[T any](o Option[T], keep func(value T) bool) Option[T] {
	if o.IsPresent() && !keep(o.MustGet()) {
		return None[T]()
	}
	return o
}

// Tap runs a side effect on the value of a Some and returns the input
// unchanged.
func Tap[T any](o Option[T], onSome func(value T)) Option[T] {
	if o.IsPresent() {
		onSome(o.MustGet())
	}
	return o
}

// Sequence folds options into a single option holding every value in input
// order, fail-fast on the first None. An empty input yields Some of an
// empty slice.
func Sequence[T any](os []Option[T]) Option[[]T] {
	values := make([]T, 0, len(os))
	for _, o := range os {
		if o.IsAbsent() {
			return None[[]T]()
		}
		values = append(values, o.MustGet())
	}
	return Some(values)
}

// Traverse maps each element through f and sequences the outcome. f is not
// invoked past the first element it yields None for.
func Traverse[In, Out any](in []In, f func(in In) Option[Out]) Option[[]Out] {
	values := make([]Out, 0, len(in))
	for _, v := range in {
		o := f(v)
		if o.IsAbsent() {
			return None[[]Out]()
		}
		values = append(values, o.MustGet())
	}
	return Some(values)
}

// Partition splits options into the present values, in order, and the
// count of absent elements. None carries no payload, so a count is all
// there is to report.
func Partition[T any](os []Option[T]) ([]T, int) {
	values := make([]T, 0, len(os))
	absent := 0
	for _, o := range os {
		if o.IsPresent() {
			values = append(values, o.MustGet())
		} else {
			absent++
		}
	}
	return values, absent
}

// CollectSome keeps the present values, dropping every None.
func CollectSome[T any](os []Option[T]) []T {
	values, _ := Partition(os)
	return values
}

// FirstSome returns the first Some, or None when no value is present.
// An empty input has nothing to report and is an error.
func FirstSome[T any](os []Option[T]) (Option[T], error) {
	if len(os) == 0 {
		return Option[T]{}, fmt.Errorf("option: FirstSome: %w", monad.ErrEmptySequence)
	}
	for _, o := range os {
		if o.IsPresent() {
			return o, nil
		}
	}
	return os[0], nil
}
